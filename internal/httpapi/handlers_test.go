package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitin-engine/internal/csvdata"
	"recruitin-engine/internal/report"
)

const prospectsCSV = `company_name,industry,company_size,location,job_title,salary_min,salary_max,days_open,contact_name,contact_title,tier_score
Acme Corp,Software Development,50-100,Amsterdam,Backend Developer,60000,80000,12,Jan,CTO,70
Beta BV,Healthcare Technology,10-25,Utrecht,DevOps Engineer,55000,70000,30,Kim,Lead,95
`

const marketCSV = `sector,average_salary,open_positions,growth_percentage,top_skills,market_trend
Software Development,72000,1840,12.5,"Go, Python",Rising
`

type stubLLM struct{}

func (stubLLM) Generate(ctx context.Context, prompt, block string) (string, error) {
	return "generated text", nil
}

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	source := csvdata.New(write("p.csv", prospectsCSV), write("m.csv", marketCSV))
	runStatus := &atomic.Value{}
	runStatus.Store(RunStatus{})

	return Deps{
		Generator: &report.Generator{
			Source:    source,
			LLM:       stubLLM{},
			OutputDir: filepath.Join(dir, "reports"),
			Now:       func() time.Time { return time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC) },
		},
		Source:    source,
		RunStatus: runStatus,
	}
}

func doRequest(d Deps, method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	NewMux(d).ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestHealth_MissingCSVsStillHealthy(t *testing.T) {
	d := newTestDeps(t)
	d.Source = csvdata.New("/nonexistent/p.csv", "/nonexistent/m.csv")

	rr := doRequest(d, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decode(t, rr)
	assert.Equal(t, "healthy", body["status"])
	files := body["csv_files"].(map[string]any)
	assert.Equal(t, false, files["prospects"])
	assert.Equal(t, false, files["market_data"])
}

func TestHealth_PresentCSVs(t *testing.T) {
	d := newTestDeps(t)

	body := decode(t, doRequest(d, http.MethodGet, "/health"))
	files := body["csv_files"].(map[string]any)
	assert.Equal(t, true, files["prospects"])
	assert.Equal(t, true, files["market_data"])
}

func TestWeekly_GeneratesReports(t *testing.T) {
	d := newTestDeps(t)

	rr := doRequest(d, http.MethodGet, "/weekly?prospects=2")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decode(t, rr)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, "Generated 2 weekly reports", body["message"])
	assert.Len(t, body["reports"].([]any), 2)

	st := d.RunStatus.Load().(RunStatus)
	assert.False(t, st.Running)
	assert.Equal(t, 2, st.LastCount)
	assert.Empty(t, st.LastError)
}

func TestWeekly_DefaultsToTenProspects(t *testing.T) {
	d := newTestDeps(t)

	body := decode(t, doRequest(d, http.MethodPost, "/weekly"))
	assert.Equal(t, true, body["success"])
	// only two prospects in the dataset
	assert.Equal(t, float64(2), body["count"])
}

func TestWeekly_InvalidProspectsParam(t *testing.T) {
	d := newTestDeps(t)

	rr := doRequest(d, http.MethodGet, "/weekly?prospects=banana")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "invalid prospects value")
}

func TestWeekly_GeneratorFailureReturns500(t *testing.T) {
	d := newTestDeps(t)
	// Point the output dir below a regular file so MkdirAll fails.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	d.Generator.OutputDir = filepath.Join(blocker, "reports")

	rr := doRequest(d, http.MethodGet, "/weekly")
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	body := decode(t, rr)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])

	st := d.RunStatus.Load().(RunStatus)
	assert.NotEmpty(t, st.LastError)
}

func TestMonthly_GeneratesReport(t *testing.T) {
	d := newTestDeps(t)

	rr := doRequest(d, http.MethodPost, "/monthly?sector=software")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decode(t, rr)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Generated monthly report for software", body["message"])
	assert.Contains(t, body["report"], "Monthly_Report_software_202603.md")
}

func TestMonthly_DefaultsToAll(t *testing.T) {
	d := newTestDeps(t)

	body := decode(t, doRequest(d, http.MethodGet, "/monthly"))
	assert.Equal(t, "Generated monthly report for all", body["message"])
}

func TestMethodNotAllowed(t *testing.T) {
	d := newTestDeps(t)

	rr := doRequest(d, http.MethodDelete, "/weekly")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestStatus_InitiallyIdle(t *testing.T) {
	d := newTestDeps(t)

	rr := doRequest(d, http.MethodGet, "/status")
	require.Equal(t, http.StatusOK, rr.Code)

	var st RunStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &st))
	assert.False(t, st.Running)
}

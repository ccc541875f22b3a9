package analytics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend_WritesHeaderOnceAndKeepsOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report_analytics.csv")
	w := NewWriter(path)

	ts := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	require.NoError(t, w.Append(Record{
		Timestamp:      ts,
		ReportType:     "weekly",
		CompanyName:    "Acme Corp",
		FilePath:       "/tmp/Weekly_Report_Acme_Corp_20260314.md",
		Success:        true,
		ProcessingTime: 1.5,
	}))
	require.NoError(t, w.Append(Record{
		Timestamp:   ts.Add(time.Minute),
		ReportType:  "monthly",
		CompanyName: "Sector_all",
		Success:     false,
	}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "timestamp,report_type,company_name,file_path,success,processing_time", lines[0])
	assert.Equal(t, "2026-03-14T10:30:00Z,weekly,Acme Corp,/tmp/Weekly_Report_Acme_Corp_20260314.md,true,1.5", lines[1])
	assert.Equal(t, "2026-03-14T10:31:00Z,monthly,Sector_all,,false,0", lines[2])
}

func TestAppend_CreatesFileOnFirstUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report_analytics.csv")
	w := NewWriter(path)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, w.Append(Record{Timestamp: time.Now(), ReportType: "weekly"}))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

package csvdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prospectsCSV = `company_name,industry,company_size,location,job_title,salary_min,salary_max,days_open,contact_name,contact_title,tier_score
Acme,Software Development,50-100,Amsterdam,Backend Developer,60000,80000,12,Jan,CTO,70
Beta,Healthcare Technology,10-25,Utrecht,DevOps Engineer,55000,70000,30,Kim,Lead,95
Gamma,Financial Services,250-500,Rotterdam,Data Engineer,70000,90000,8,Lars,VP,82
`

const marketCSV = `sector,average_salary,open_positions,growth_percentage,top_skills,market_trend
Software Development,72000,1840,12.5,"Go, Python",Rising
Healthcare Technology,68000,620,18.2,"FHIR, React",Rapid growth
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProspects_TopNByTierScore(t *testing.T) {
	src := New(writeFile(t, "p.csv", prospectsCSV), "")

	got := src.Prospects(2)
	require.Len(t, got, 2)
	assert.Equal(t, "Beta", got[0].CompanyName)
	assert.Equal(t, 95, got[0].TierScore)
	assert.Equal(t, "Gamma", got[1].CompanyName)
	assert.Equal(t, 82, got[1].TierScore)
}

func TestProspects_LimitLargerThanDataset(t *testing.T) {
	src := New(writeFile(t, "p.csv", prospectsCSV), "")

	got := src.Prospects(50)
	require.Len(t, got, 3)
	assert.Equal(t, []int{95, 82, 70}, []int{got[0].TierScore, got[1].TierScore, got[2].TierScore})
}

func TestProspects_MissingFileReturnsEmpty(t *testing.T) {
	src := New(filepath.Join(t.TempDir(), "nope.csv"), "")
	assert.Empty(t, src.Prospects(10))
}

func TestProspects_MalformedNumbersDefaultToZero(t *testing.T) {
	csv := `company_name,industry,salary_min,tier_score
Acme,Software,not-a-number,
`
	src := New(writeFile(t, "p.csv", csv), "")

	got := src.Prospects(10)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].SalaryMin)
	assert.Equal(t, 0, got[0].TierScore)
	assert.Equal(t, "Acme", got[0].CompanyName)
}

func TestMarketData(t *testing.T) {
	src := New("", writeFile(t, "m.csv", marketCSV))

	got := src.MarketData()
	require.Len(t, got, 2)
	assert.Equal(t, "Software Development", got[0].Sector)
	assert.Equal(t, 72000, got[0].AverageSalary)
	assert.Equal(t, 18.2, got[1].GrowthPercentage)
	assert.Equal(t, "FHIR, React", got[1].TopSkills)
}

func TestMarketData_MissingFileReturnsEmpty(t *testing.T) {
	src := New("", filepath.Join(t.TempDir(), "nope.csv"))
	assert.Empty(t, src.MarketData())
}

func TestFileExistenceChecks(t *testing.T) {
	p := writeFile(t, "p.csv", prospectsCSV)
	src := New(p, filepath.Join(t.TempDir(), "missing.csv"))

	assert.True(t, src.ProspectsExist())
	assert.False(t, src.MarketDataExists())
}

// Package csvdata loads the prospect and market-sector datasets from flat
// CSV files. Read failures are logged and surface as empty slices so a
// missing or malformed file never aborts a report run.
package csvdata

import (
	"encoding/csv"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"recruitin-engine/internal/domain"
)

type Source struct {
	ProspectsPath  string
	MarketDataPath string
}

func New(prospectsPath, marketDataPath string) *Source {
	return &Source{ProspectsPath: prospectsPath, MarketDataPath: marketDataPath}
}

// Prospects returns at most limit records, ordered by tier score descending.
func (s *Source) Prospects(limit int) []domain.Prospect {
	rows, header, err := readAll(s.ProspectsPath)
	if err != nil {
		log.Printf("level=error msg=\"read prospects csv\" path=%s err=%v", s.ProspectsPath, err)
		return nil
	}

	out := make([]domain.Prospect, 0, len(rows))
	for _, row := range rows {
		get := fieldGetter(header, row)
		out = append(out, domain.Prospect{
			CompanyName:  get("company_name"),
			Industry:     get("industry"),
			CompanySize:  get("company_size"),
			Location:     get("location"),
			JobTitle:     get("job_title"),
			SalaryMin:    atoi(get("salary_min")),
			SalaryMax:    atoi(get("salary_max")),
			DaysOpen:     atoi(get("days_open")),
			ContactName:  get("contact_name"),
			ContactTitle: get("contact_title"),
			TierScore:    atoi(get("tier_score")),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TierScore > out[j].TierScore
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// MarketData returns every sector row in file order.
func (s *Source) MarketData() []domain.MarketSector {
	rows, header, err := readAll(s.MarketDataPath)
	if err != nil {
		log.Printf("level=error msg=\"read market data csv\" path=%s err=%v", s.MarketDataPath, err)
		return nil
	}

	out := make([]domain.MarketSector, 0, len(rows))
	for _, row := range rows {
		get := fieldGetter(header, row)
		out = append(out, domain.MarketSector{
			Sector:           get("sector"),
			AverageSalary:    atoi(get("average_salary")),
			OpenPositions:    atoi(get("open_positions")),
			GrowthPercentage: atof(get("growth_percentage")),
			TopSkills:        get("top_skills"),
			MarketTrend:      get("market_trend"),
		})
	}
	return out
}

// ProspectsExist reports whether the prospects CSV is present on disk.
func (s *Source) ProspectsExist() bool { return fileExists(s.ProspectsPath) }

// MarketDataExists reports whether the market data CSV is present on disk.
func (s *Source) MarketDataExists() bool { return fileExists(s.MarketDataPath) }

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func readAll(path string) (rows [][]string, header map[string]int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate short rows
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, map[string]int{}, nil
	}

	header = make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		header[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return all[1:], header, nil
}

func fieldGetter(header map[string]int, row []string) func(string) string {
	return func(col string) string {
		i, ok := header[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func atof(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

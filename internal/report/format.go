package report

import (
	"fmt"
	"strings"

	"recruitin-engine/internal/domain"
)

// SectorAggregate is the subject of a monthly report: simple rollups over
// the (possibly filtered) datasets.
type SectorAggregate struct {
	Sector         string `json:"sector"`
	TotalProspects int    `json:"total_prospects"`
	MarketSegments int    `json:"market_segments"`
	AvgSalary      int    `json:"avg_salary"`
	TotalPositions int    `json:"total_positions"`
}

// MatchesSector reports whether the sector name appears in the subject
// string. Substring matching is case-insensitive everywhere in the engine.
func MatchesSector(subject, sector string) bool {
	if sector == "" {
		return false
	}
	return strings.Contains(strings.ToLower(subject), strings.ToLower(sector))
}

// ProspectContext renders the prompt context for a weekly report: the
// prospect's fields followed by every market row whose sector matches the
// prospect's industry. A prospect can match zero, one, or many rows; matches
// keep their source order.
func ProspectContext(p domain.Prospect, market []domain.MarketSector) string {
	var b strings.Builder

	b.WriteString("PROSPECT DATA:\n")
	fmt.Fprintf(&b, "Company: %s\n", orNA(p.CompanyName))
	fmt.Fprintf(&b, "Industry: %s\n", orNA(p.Industry))
	fmt.Fprintf(&b, "Size: %s\n", orNA(p.CompanySize))
	fmt.Fprintf(&b, "Location: %s\n", orNA(p.Location))
	fmt.Fprintf(&b, "Role: %s\n", orNA(p.JobTitle))
	fmt.Fprintf(&b, "Salary Range: €%d - €%d\n", p.SalaryMin, p.SalaryMax)
	fmt.Fprintf(&b, "Days Open: %d\n", p.DaysOpen)
	fmt.Fprintf(&b, "Contact: %s (%s)\n", orNA(p.ContactName), orNA(p.ContactTitle))
	fmt.Fprintf(&b, "Tier Score: %d/100\n", p.TierScore)

	b.WriteString("\nMARKET CONTEXT:\n")
	for _, sec := range market {
		if !MatchesSector(p.Industry, sec.Sector) {
			continue
		}
		writeSector(&b, sec)
	}

	return b.String()
}

// SectorContext renders the prompt context for a monthly report from the
// aggregates plus every row of the already-filtered market data.
func SectorContext(agg SectorAggregate, market []domain.MarketSector) string {
	var b strings.Builder

	b.WriteString("SECTOR ANALYSIS:\n")
	fmt.Fprintf(&b, "Sector: %s\n", orNA(agg.Sector))
	fmt.Fprintf(&b, "Total Prospects: %d\n", agg.TotalProspects)
	fmt.Fprintf(&b, "Market Segments: %d\n", agg.MarketSegments)
	fmt.Fprintf(&b, "Average Salary: €%d\n", agg.AvgSalary)
	fmt.Fprintf(&b, "Total Open Positions: %d\n", agg.TotalPositions)

	b.WriteString("\nMARKET CONTEXT:\n")
	for _, sec := range market {
		writeSector(&b, sec)
	}

	return b.String()
}

func writeSector(b *strings.Builder, sec domain.MarketSector) {
	fmt.Fprintf(b, "\nSector: %s\n", sec.Sector)
	fmt.Fprintf(b, "Average Salary: €%d\n", sec.AverageSalary)
	fmt.Fprintf(b, "Open Positions: %d\n", sec.OpenPositions)
	fmt.Fprintf(b, "Growth: %g%%\n", sec.GrowthPercentage)
	fmt.Fprintf(b, "Skills in Demand: %s\n", orNA(sec.TopSkills))
	fmt.Fprintf(b, "Market Trend: %s\n", orNA(sec.MarketTrend))
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

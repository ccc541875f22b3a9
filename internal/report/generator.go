package report

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"recruitin-engine/internal/analytics"
	"recruitin-engine/internal/domain"
	"recruitin-engine/internal/events"
	"recruitin-engine/internal/llm"
	"recruitin-engine/internal/store"
)

// DataSource is the slice of csvdata.Source the generator needs.
type DataSource interface {
	Prospects(limit int) []domain.Prospect
	MarketData() []domain.MarketSector
}

// Notifier delivers a finished report out-of-band (email). Implementations
// must not fail the run.
type Notifier interface {
	ReportGenerated(subject, path, body string)
}

// Generator runs the report workflow: load data, build context, call the
// model, persist output and metadata. One instance is built at startup and
// shared by the CLI and the HTTP surface.
type Generator struct {
	Source    DataSource
	LLM       llm.Generator
	Analytics *analytics.Writer
	History   *store.DB    // optional
	Hub       *events.Hub  // optional
	Notify    Notifier     // optional
	OutputDir string
	Now       func() time.Time
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// WeeklyReports generates one report per top prospect, strictly in tier
// order, one at a time. A single prospect's failure is logged and skipped;
// the batch never aborts. Returns the paths of the files it wrote.
func (g *Generator) WeeklyReports(ctx context.Context, prospectCount int) ([]string, error) {
	start := g.now()
	log.Printf("level=info msg=\"weekly run\" prospects=%d", prospectCount)

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	prospects := g.Source.Prospects(prospectCount)
	market := g.Source.MarketData()

	var files []string
	for i, p := range prospects {
		log.Printf("level=info msg=\"processing prospect\" n=%d/%d company=%q", i+1, len(prospects), p.CompanyName)

		content, genErr := g.LLM.Generate(ctx, weeklyPrompt, ProspectContext(p, market))
		if genErr != nil {
			log.Printf("level=error msg=\"generate failed\" company=%q err=%v", p.CompanyName, genErr)
			content = fmt.Sprintf("Error generating report: %v", genErr)
		}

		now := g.now()
		name := fmt.Sprintf("Weekly_Report_%s_%s.md",
			strings.ReplaceAll(p.CompanyName, " ", "_"), now.Format("20060102"))
		path := filepath.Join(g.OutputDir, name)
		heading := fmt.Sprintf("# Weekly Recruitment Report - %s", p.CompanyName)

		if err := writeReport(path, heading, now, content); err != nil {
			log.Printf("level=error msg=\"write report\" company=%q err=%v", p.CompanyName, err)
			continue
		}
		files = append(files, path)

		g.record("weekly", p.CompanyName, path, genErr == nil, start)
		if g.Hub != nil {
			g.Hub.Publish(events.Make(events.TypeReportCreated, "weekly", p.CompanyName, path, 0))
		}
		if g.Notify != nil {
			g.Notify.ReportGenerated(p.CompanyName, path, content)
		}
		log.Printf("level=info msg=\"report saved\" path=%s", path)
	}

	elapsed := g.now().Sub(start)
	log.Printf("level=info msg=\"weekly run done\" generated=%d dur_s=%.2f", len(files), elapsed.Seconds())
	if g.Hub != nil {
		g.Hub.Publish(events.Make(events.TypeRunFinished, "weekly", "", "", len(files)))
	}
	return files, nil
}

// MonthlyReport generates a single aggregated sector report. sector "all"
// (the sentinel) skips filtering.
func (g *Generator) MonthlyReport(ctx context.Context, sector string) (string, error) {
	start := g.now()
	log.Printf("level=info msg=\"monthly run\" sector=%q", sector)

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("output dir: %w", err)
	}

	market := g.Source.MarketData()
	prospects := g.Source.Prospects(50) // wider slice for sector analysis

	if sector != "all" {
		market = filterMarket(market, sector)
		prospects = filterProspects(prospects, sector)
	}

	agg := SectorAggregate{
		Sector:         sector,
		TotalProspects: len(prospects),
		MarketSegments: len(market),
		AvgSalary:      avgSalary(market),
		TotalPositions: totalPositions(market),
	}

	content, genErr := g.LLM.Generate(ctx, monthlyPrompt, SectorContext(agg, market))
	if genErr != nil {
		log.Printf("level=error msg=\"generate failed\" sector=%q err=%v", sector, genErr)
		content = fmt.Sprintf("Error generating report: %v", genErr)
	}

	now := g.now()
	name := fmt.Sprintf("Monthly_Report_%s_%s.md", sector, now.Format("200601"))
	path := filepath.Join(g.OutputDir, name)
	heading := fmt.Sprintf("# Monthly Sector Report - %s", titleCase(sector))

	if err := writeReport(path, heading, now, content); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	g.record("monthly", "Sector_"+sector, path, genErr == nil, start)
	if g.Hub != nil {
		g.Hub.Publish(events.Make(events.TypeReportCreated, "monthly", sector, path, 0))
	}
	if g.Notify != nil {
		g.Notify.ReportGenerated(titleCase(sector), path, content)
	}

	log.Printf("level=info msg=\"monthly report saved\" path=%s", path)
	return path, nil
}

func (g *Generator) record(reportType, subject, path string, success bool, start time.Time) {
	elapsed := g.now().Sub(start).Seconds()

	if g.Analytics != nil {
		err := g.Analytics.Append(analytics.Record{
			Timestamp:      g.now(),
			ReportType:     reportType,
			CompanyName:    subject,
			FilePath:       path,
			Success:        success,
			ProcessingTime: elapsed,
		})
		if err != nil {
			log.Printf("level=error msg=\"append analytics\" err=%v", err)
		}
	}

	if g.History != nil {
		err := store.InsertReport(context.Background(), g.History.Pool, store.Report{
			ID:              uuid.NewString(),
			Type:            reportType,
			Subject:         subject,
			FilePath:        path,
			Success:         success,
			DurationSeconds: elapsed,
		})
		if err != nil {
			log.Printf("level=error msg=\"insert report history\" err=%v", err)
		}
	}
}

func writeReport(path, heading string, now time.Time, content string) error {
	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", now.Format("02-01-2006 15:04"))
	b.WriteString(content)
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func filterMarket(in []domain.MarketSector, sector string) []domain.MarketSector {
	var out []domain.MarketSector
	for _, m := range in {
		if MatchesSector(m.Sector, sector) {
			out = append(out, m)
		}
	}
	return out
}

func filterProspects(in []domain.Prospect, sector string) []domain.Prospect {
	var out []domain.Prospect
	for _, p := range in {
		if MatchesSector(p.Industry, sector) {
			out = append(out, p)
		}
	}
	return out
}

// avgSalary uses integer division and returns 0 for an empty set so an
// unknown sector filter cannot crash the run.
func avgSalary(market []domain.MarketSector) int {
	if len(market) == 0 {
		return 0
	}
	sum := 0
	for _, m := range market {
		sum += m.AverageSalary
	}
	return sum / len(market)
}

func totalPositions(market []domain.MarketSector) int {
	sum := 0
	for _, m := range market {
		sum += m.OpenPositions
	}
	return sum
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Report is one generated report as recorded in history. Unlike the
// analytics CSV this table is queryable over HTTP.
type Report struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"` // weekly | monthly
	Subject         string  `json:"subject"`
	FilePath        string  `json:"file_path"`
	Success         bool    `json:"success"`
	DurationSeconds float64 `json:"duration_seconds"`
	CreatedAt       string  `json:"created_at"` // RFC3339
}

type ListReportsOpts struct {
	Type  string // weekly | monthly | "" for all
	Sort  string // created_at | subject | duration
	Limit int
}

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS reports (
  id TEXT PRIMARY KEY,
  type TEXT NOT NULL,
  subject TEXT NOT NULL,
  file_path TEXT NOT NULL,
  success INTEGER NOT NULL DEFAULT 0,
  duration_seconds REAL NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_reports_created_at
ON reports(created_at DESC);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

func InsertReport(ctx context.Context, db *sql.DB, r Report) error {
	if r.CreatedAt == "" {
		r.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO reports (id, type, subject, file_path, success, duration_seconds, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?);`,
		r.ID, r.Type, r.Subject, r.FilePath, boolToInt(r.Success), r.DurationSeconds, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func ListReports(ctx context.Context, db *sql.DB, opts ListReportsOpts) ([]Report, error) {
	if opts.Limit <= 0 || opts.Limit > 500 {
		opts.Limit = 100
	}

	// whitelist sort columns (prevents SQL injection)
	sortCol := map[string]string{
		"created_at": "created_at",
		"subject":    "subject",
		"duration":   "duration_seconds",
	}[opts.Sort]
	if sortCol == "" {
		sortCol = "created_at"
	}

	where := ""
	args := []any{}
	if opts.Type != "" {
		where = "WHERE type = ?"
		args = append(args, opts.Type)
	}
	args = append(args, opts.Limit)

	q := fmt.Sprintf(`
SELECT id, type, subject, file_path, success, duration_seconds, created_at
FROM reports
%s
ORDER BY %s DESC
LIMIT ?;`, where, sortCol)

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		var r Report
		var success int
		if err := rows.Scan(&r.ID, &r.Type, &r.Subject, &r.FilePath, &success, &r.DurationSeconds, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Success = success != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

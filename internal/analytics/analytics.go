// Package analytics appends one row per generated report to an append-only
// CSV so runs can be analyzed in a spreadsheet. The file is never rewritten.
package analytics

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gofrs/flock"
)

var header = []string{"timestamp", "report_type", "company_name", "file_path", "success", "processing_time"}

type Record struct {
	Timestamp      time.Time
	ReportType     string // weekly | monthly
	CompanyName    string
	FilePath       string
	Success        bool
	ProcessingTime float64 // seconds since run start
}

type Writer struct {
	Path string
}

func NewWriter(path string) *Writer {
	return &Writer{Path: path}
}

// Append writes the header on first use, then one data row. A file lock
// guards the append so two engine processes pointed at the same output dir
// cannot interleave rows.
func (w *Writer) Append(rec Record) error {
	lock := flock.New(w.Path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock analytics file: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	needHeader := false
	if _, err := os.Stat(w.Path); os.IsNotExist(err) {
		needHeader = true
	}

	f, err := os.OpenFile(w.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open analytics file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needHeader {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{
		rec.Timestamp.Format(time.RFC3339),
		rec.ReportType,
		rec.CompanyName,
		rec.FilePath,
		strconv.FormatBool(rec.Success),
		strconv.FormatFloat(rec.ProcessingTime, 'f', -1, 64),
	}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

package httpapi

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"recruitin-engine/internal/report"
)

type ReportHandler struct {
	Generator *report.Generator
	RunStatus *atomic.Value // stores httpapi.RunStatus
}

// Weekly handles GET|POST /weekly?prospects=N.
// Runs synchronously: the webhook caller wants the file list in the response.
func (h ReportHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	prospects := 10
	if v := r.URL.Query().Get("prospects"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			WriteFailure(w, http.StatusBadRequest, fmt.Errorf("invalid prospects value %q", v))
			return
		}
		prospects = n
	}
	log.Printf("level=info msg=\"api weekly\" prospects=%d", prospects)

	h.markRunning("weekly")
	files, err := h.Generator.WeeklyReports(r.Context(), prospects)
	h.markDone("weekly", len(files), err)
	if err != nil {
		WriteFailure(w, http.StatusInternalServerError, err)
		return
	}

	if files == nil {
		files = []string{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"reports": files,
		"count":   len(files),
		"message": fmt.Sprintf("Generated %d weekly reports", len(files)),
	})
}

// Monthly handles GET|POST /monthly?sector=S.
func (h ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	sector := r.URL.Query().Get("sector")
	if sector == "" {
		sector = "all"
	}
	log.Printf("level=info msg=\"api monthly\" sector=%q", sector)

	h.markRunning("monthly")
	file, err := h.Generator.MonthlyReport(r.Context(), sector)
	count := 0
	if err == nil {
		count = 1
	}
	h.markDone("monthly", count, err)
	if err != nil {
		WriteFailure(w, http.StatusInternalServerError, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"report":  file,
		"message": fmt.Sprintf("Generated monthly report for %s", sector),
	})
}

func (h ReportHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.RunStatus.Load().(RunStatus)
	WriteJSON(w, http.StatusOK, st)
}

func (h ReportHandler) markRunning(typ string) {
	prev := h.RunStatus.Load().(RunStatus)
	h.RunStatus.Store(RunStatus{
		Running:   true,
		LastRunAt: time.Now().Format(time.RFC3339),
		LastOkAt:  prev.LastOkAt,
		LastType:  typ,
	})
}

func (h ReportHandler) markDone(typ string, count int, err error) {
	now := time.Now().Format(time.RFC3339)
	next := h.RunStatus.Load().(RunStatus)
	next.Running = false
	next.LastRunAt = now
	next.LastCount = count
	next.LastType = typ
	if err != nil {
		next.LastError = err.Error()
	} else {
		next.LastError = ""
		next.LastOkAt = now
	}
	h.RunStatus.Store(next)
}

package httpapi

import (
	"net/http"
	"strconv"

	"recruitin-engine/internal/store"
)

type HistoryHandler struct {
	History *store.DB
}

// List handles GET /reports?type=&sort=&limit= against the sqlite history.
func (h HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := store.ListReportsOpts{
		Type: q.Get("type"),
		Sort: q.Get("sort"),
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.Limit = n
		}
	}

	reports, err := store.ListReports(r.Context(), h.History.Pool, opts)
	if err != nil {
		WriteFailure(w, http.StatusInternalServerError, err)
		return
	}
	if reports == nil {
		reports = []store.Report{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"reports": reports,
		"count":   len(reports),
	})
}

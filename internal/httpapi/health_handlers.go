package httpapi

import (
	"net/http"
	"time"

	"recruitin-engine/internal/csvdata"
)

type HealthHandler struct {
	Source *csvdata.Source
}

// Health always returns 200; missing CSVs show up as false booleans so the
// webhook platform can alert without treating the engine itself as down.
func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"csv_files": map[string]bool{
			"prospects":   h.Source.ProspectsExist(),
			"market_data": h.Source.MarketDataExists(),
		},
	})
}

package httpapi

import (
	"sync/atomic"

	"recruitin-engine/internal/csvdata"
	"recruitin-engine/internal/events"
	"recruitin-engine/internal/report"
	"recruitin-engine/internal/store"
)

// Deps is everything the HTTP surface needs, built once in main and passed
// by reference. Handlers never construct their own dependencies.
type Deps struct {
	Generator *report.Generator
	Source    *csvdata.Source

	History *store.DB
	Hub     *events.Hub

	// RunStatus stores httpapi.RunStatus snapshots
	RunStatus *atomic.Value
}

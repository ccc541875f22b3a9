// Package events fans report lifecycle events out to SSE subscribers.
package events

import (
	"encoding/json"
	"sync"
	"time"
)

const (
	TypeReportCreated = "report_created"
	TypeRunFinished   = "run_finished"
)

type Event struct {
	Type    string    `json:"type"`
	At      time.Time `json:"at"`
	Report  string    `json:"report,omitempty"`  // weekly | monthly
	Subject string    `json:"subject,omitempty"` // company or sector name
	Path    string    `json:"path,omitempty"`
	Count   int       `json:"count,omitempty"`
}

// Make serializes an event for the SSE wire.
func Make(typ, report, subject, path string, count int) string {
	e := Event{
		Type:    typ,
		At:      time.Now().UTC(),
		Report:  report,
		Subject: subject,
		Path:    path,
		Count:   count,
	}
	b, _ := json.Marshal(e)
	return string(b)
}

type Hub struct {
	mu      sync.Mutex
	clients map[chan string]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan string]struct{})}
}

func (h *Hub) Subscribe() chan string {
	ch := make(chan string, 10)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
	close(ch)
}

func (h *Hub) Publish(evt string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- evt:
		default:
			// drop if slow
		}
	}
}

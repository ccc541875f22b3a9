package httpapi

import "net/http"

// NewMux wires every route against the injected Deps.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	rh := ReportHandler{Generator: d.Generator, RunStatus: d.RunStatus}
	mux.HandleFunc("/weekly", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  rh.Weekly,
		http.MethodPost: rh.Weekly,
	}))
	mux.HandleFunc("/monthly", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  rh.Monthly,
		http.MethodPost: rh.Monthly,
	}))
	mux.HandleFunc("/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Status,
	}))

	hh := HealthHandler{Source: d.Source}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	if d.History != nil {
		lh := HistoryHandler{History: d.History}
		mux.HandleFunc("/reports", methodMux(map[string]http.HandlerFunc{
			http.MethodGet: lh.List,
		}))
	}

	if d.Hub != nil {
		eh := EventsHandler{Hub: d.Hub}
		mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
			http.MethodGet: eh.ServeSSE,
		}))
	}

	sh := SecretsHandler{}
	mux.HandleFunc("/api/secrets/llm", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetLLMKey,
	}))

	return mux
}

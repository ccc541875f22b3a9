package httpapi

// RunStatus is a snapshot of the most recent report run, stored in an
// atomic.Value and read by GET /status.
type RunStatus struct {
	Running   bool   `json:"running"`
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	LastCount int    `json:"last_count"`
	LastType  string `json:"last_type"`
}

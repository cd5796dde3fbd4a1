package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

const healthCheckTimeout = 3 * time.Second

// HealthCheck is one dependency probed by /ready and /health.
// A failing critical check takes the service down; any other failure only
// marks it degraded.
type HealthCheck struct {
	Name     string
	Ping     func(ctx context.Context) error
	Critical bool
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	version string
	checks  []HealthCheck
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{version: version, checks: checks}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the result of one HealthCheck.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 while a critical dependency is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.probe(r.Context())
	code := http.StatusOK
	if status == "down" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health reports every dependency with its latency, plus the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.probe(r.Context())
	code := http.StatusOK
	if status == "down" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// probe runs all checks concurrently and folds them into "ok", "degraded"
// or "down".
func (h *HealthHandler) probe(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	results := make([]CompStatus, len(h.checks))
	var wg sync.WaitGroup
	for i, c := range h.checks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			if err := c.Ping(ctx); err != nil {
				results[i] = CompStatus{Status: "down", Error: err.Error()}
				return
			}
			results[i] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
		}()
	}
	wg.Wait()

	overall := "ok"
	components := make(map[string]CompStatus, len(h.checks))
	for i, c := range h.checks {
		components[c.Name] = results[i]
		if results[i].Status == "ok" {
			continue
		}
		if c.Critical {
			overall = "down"
		} else if overall == "ok" {
			overall = "degraded"
		}
	}
	return overall, components
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// wordCounter reports the size of the word store.
type wordCounter interface {
	Count(ctx context.Context) (int, error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	words   wordCounter
	version string
}

// NewHealthHandler creates a HealthHandler. words may be nil.
func NewHealthHandler(db dbPinger, words wordCounter, version string) *HealthHandler {
	return &HealthHandler{db: db, words: words, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	status, body := http.StatusOK, "ok"
	if err := h.db.Ping(ctx); err != nil {
		status, body = http.StatusServiceUnavailable, "down"
	}
	writeJSON(w, status, HealthResponse{Status: body, Timestamp: time.Now()})
}

// Health is the full health check: DB latency, word store size and version.
// An empty word store is reported but does not fail the check; generation
// simply returns no couplets until words are seeded.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus)
	overall := "ok"

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: "down"}
		overall = "down"
	} else {
		components["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	if h.words != nil && overall == "ok" {
		n, err := h.words.Count(ctx)
		switch {
		case err != nil:
			components["words"] = CompStatus{Status: "down"}
			overall = "down"
		case n == 0:
			components["words"] = CompStatus{Status: "empty", Count: &n}
		default:
			components["words"] = CompStatus{Status: "ok", Count: &n}
		}
	}

	status := http.StatusOK
	if overall != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

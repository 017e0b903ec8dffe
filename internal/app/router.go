package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/padagalu-backend/internal/config"
	"github.com/heartmarshall/padagalu-backend/internal/observe"
	"github.com/heartmarshall/padagalu-backend/internal/transport/middleware"
	"github.com/heartmarshall/padagalu-backend/internal/transport/rest"
)

// RouterDeps are the handlers and infrastructure the HTTP router needs.
type RouterDeps struct {
	Health   *rest.HealthHandler
	Words    *rest.WordHandler
	Prosody  *rest.ProsodyHandler
	Couplets *rest.CoupletHandler

	// MetricsHandler serves the Prometheus scrape endpoint. Nil disables it.
	MetricsHandler http.Handler
	Metrics        *observe.Metrics
	Limiter        *middleware.RateLimiter
	Logger         *slog.Logger
}

const unmatchedRoute = "unmatched"

// NewRouter registers all routes and wraps them in the middleware chain:
// Recovery, RequestID, tracing and metrics, access log, CORS.
func NewRouter(d RouterDeps, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	mux.HandleFunc("POST /words/lookup", d.Words.Lookup)
	mux.HandleFunc("POST /words", d.Words.Add)
	mux.HandleFunc("GET /words/count", d.Words.Count)

	mux.HandleFunc("GET /prosody/analyze", d.Prosody.Analyze)
	mux.HandleFunc("POST /prosody/rhyme", d.Prosody.Rhyme)

	generate := http.Handler(http.HandlerFunc(d.Couplets.Generate))
	if d.Limiter != nil {
		generate = middleware.When(cfg.RateLimit.Enabled, d.Limiter.Limit(cfg.RateLimit.GeneratePerMin))(generate)
	}
	mux.Handle("POST /couplets/generate", generate)
	mux.HandleFunc("POST /couplets", d.Couplets.Save)
	mux.HandleFunc("GET /couplets", d.Couplets.List)
	mux.HandleFunc("GET /couplets/{id}", d.Couplets.Get)
	mux.HandleFunc("DELETE /couplets/{id}", d.Couplets.Delete)

	if d.MetricsHandler != nil {
		mux.Handle("GET "+cfg.Metrics.Path, d.MetricsHandler)
	}

	route := func(r *http.Request) string {
		if _, pattern := mux.Handler(r); pattern != "" {
			return pattern
		}
		return unmatchedRoute
	}

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		observe.Middleware(d.Metrics, route),
		middleware.Logger(d.Logger, "/live", "/ready", cfg.Metrics.Path),
		middleware.CORS(cfg.CORS),
	)(mux)
}

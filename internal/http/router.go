// Package httpapi assembles the public HTTP surface: the shared middleware
// chain, the per-module handlers, and the operational endpoints.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookswap/internal/platform/metrics"
	"bookswap/internal/platform/middleware"
	"bookswap/pkg/platform/httputil"
)

// Registrar is a module handler that mounts its own routes.
type Registrar interface {
	Register(r chi.Router)
}

// Deps carries everything the router assembly needs.
type Deps struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Auth     middleware.SubjectValidator
	Health   func(r *http.Request) error
	Handlers []Registrar
	Timeout  time.Duration
}

// NewRouter builds the chi router. All module routes sit behind the
// authentication gate; health and metrics stay open for probes.
func NewRouter(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Timeout <= 0 {
		deps.Timeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(deps.Timeout))
	r.Use(middleware.Latency(deps.Metrics))

	r.Get("/healthz", healthHandler(deps.Health))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(api chi.Router) {
		api.Use(middleware.ContentTypeJSON)
		if deps.Auth != nil {
			api.Use(middleware.RequireAuth(deps.Auth, deps.Logger))
		}
		for _, h := range deps.Handlers {
			h.Register(api)
		}
	})

	return r
}

func healthHandler(check func(r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"petitionpay/internal/platform/health"
	"petitionpay/internal/platform/metrics"
	"petitionpay/internal/platform/middleware"
)

// RouterConfig bundles the dependencies the router wires together. The
// handlers stay thin; everything request-scoped lives in middleware.
type RouterConfig struct {
	Auth        *AuthHandler
	Petitioners *PetitionerHandler
	Verifier    middleware.TokenVerifier
	Revocations middleware.RevocationChecker
	Health      *health.Handler
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
}

// NewRouter wires all endpoints with the shared middleware stack. The
// dashboard is a separate static frontend, so CORS runs first and answers
// preflight requests before anything else can reject them.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(endpointLatency(cfg.Metrics))
	r.Use(middleware.Timeout(30 * time.Second))

	if cfg.Health != nil {
		cfg.Health.Register(r)
	}
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	cfg.Auth.Register(r)

	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth(cfg.Verifier, cfg.Revocations, cfg.Logger))
		cfg.Auth.RegisterProtected(pr)
		cfg.Petitioners.RegisterProtected(pr)
	})

	return r
}

// endpointLatency records per-route latency using the chi route pattern, so
// paths with parameters do not explode the label cardinality.
func endpointLatency(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			endpoint := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					endpoint = pattern
				}
			}
			m.ObserveEndpointLatency(endpoint, time.Since(start).Seconds())
		})
	}
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterDeps struct {
	Suggestions *SuggestionHandler
	Health      *HealthHandler
	RateLimiter *RateLimiter
	Metrics     http.Handler

	// TrustProxyHeaders rewrites RemoteAddr from X-Forwarded-For / X-Real-IP.
	TrustProxyHeaders bool
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	if deps.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", deps.Health.Liveness)
	r.Get("/readyz", deps.Health.Readiness)
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics)
	}

	r.Route("/refinance", func(r chi.Router) {
		r.Use(RateLimitMiddleware(deps.RateLimiter))
		r.Get("/suggestions", deps.Suggestions.Suggestions)
	})

	return r
}

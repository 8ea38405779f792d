package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meatfest/lead-service/internal/domain"
)

type RouterDeps struct {
	Handler *Handler

	// Optional rate limiting; nil Cache disables it.
	Cache    domain.CacheRepository
	RLLimit  int
	RLWindow time.Duration

	MaxBodyBytes int64
}

func NewRouter(d RouterDeps) http.Handler {
	if d.Handler == nil {
		panic("rest.NewRouter: nil handler")
	}

	r := chi.NewRouter()

	// Request ID + structured access log
	r.Use(RequestID)
	r.Use(HTTPLogger)

	// Panic recovery
	r.Use(middleware.Recoverer)

	// Cross-cutting
	r.Use(CORS)
	r.Use(SecurityHeaders)
	r.Use(BodyLimit(d.MaxBodyBytes))

	r.Get("/healthz", d.Handler.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	// The limiter meters submissions only; probes and scrapes stay out of
	// the per-IP budget.
	if d.Cache != nil {
		r.With(RateLimitMiddleware(d.Cache, d.RLLimit, d.RLWindow)).Post("/submit", d.Handler.Submit)
	} else {
		r.Post("/submit", d.Handler.Submit)
	}

	return r
}

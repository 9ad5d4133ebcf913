package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"workout-api/internal/http/handlers"
	"workout-api/internal/http/middleware"
	"workout-api/internal/http/middleware/ratelimit"
	"workout-api/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	base *handlers.Handlers,
	tc *handlers.TrainingCenterHandler,
	logger logx.Logger,
	rl *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observability(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(5 * time.Second))
	r.Use(rl.Handler())

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/centros_treinamento", func(r chi.Router) {
		r.Post("/", tc.Create)
		r.Get("/", tc.List)
		r.Get("/{id}", tc.GetByID)
		r.Patch("/{id}", tc.Update)
		r.Delete("/{id}", tc.Delete)
	})

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}

package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/chosung-quiz/internal/config"
	"github.com/heartmarshall/chosung-quiz/internal/transport/middleware"
)

// RouterDeps are the handlers and settings the router is built from.
type RouterDeps struct {
	Quiz    *QuizHandler
	Health  *HealthHandler
	Limiter *middleware.RateLimiter
	Server  config.ServerConfig
	CORS    config.CORSConfig
	Logger  *slog.Logger
}

// NewRouter mounts the quiz API, health probes and /metrics. The shared
// middleware wraps the whole mux so preflight requests reach CORS even
// for unknown paths.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		var searchLimit middleware.Middleware
		if d.Limiter != nil {
			searchLimit = d.Limiter.Limit(d.Server.SearchRateLimit)
		}

		r.Get("/ping", d.Quiz.Ping)
		r.Method(http.MethodGet, "/search", middleware.Chain(searchLimit)(http.HandlerFunc(d.Quiz.Search)))
		r.Get("/newbatch", d.Quiz.NewBatch)
		r.Get("/clear-pool", d.Quiz.ClearPool)
		r.Get("/add-word", d.Quiz.AddWord)
	})

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
	)(r)
}

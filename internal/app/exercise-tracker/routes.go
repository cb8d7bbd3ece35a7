// Package exercisetracker собирает HTTP-приложение трекера упражнений.
package exercisetracker

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/exercise-tracker/internal/config"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/handlers/exercise/add"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/handlers/exercise/logs"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/handlers/health"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/handlers/user/create"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/handlers/user/list"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/middlewarectx"
	exerciseservice "github.com/magabrotheeeer/exercise-tracker/internal/services/exercise"

	_ "github.com/magabrotheeeer/exercise-tracker/docs" // swagger
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	cfg *config.Config,
	service *exerciseservice.Service,
	store health.Pinger,
	reg prometheus.Registerer,
	gatherer prometheus.Gatherer,
) {
	metrics := middlewarectx.NewMetrics(reg)

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.CORS(),
		metrics.Middleware,
	)

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, cfg.RPS, cfg.Burst))

		r.Post("/users", create.New(logger, service).ServeHTTP)
		r.Get("/users", list.New(logger, service).ServeHTTP)
		r.Post("/users/{_id}/exercises", add.New(logger, service).ServeHTTP)
		r.Get("/users/{_id}/logs", logs.New(logger, service).ServeHTTP)
	})

	r.Get("/health", health.New(logger, store))
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)

	// Стартовая страница с формами
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
}

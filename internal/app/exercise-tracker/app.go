package exercisetracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/exercise-tracker/internal/cache"
	"github.com/magabrotheeeer/exercise-tracker/internal/config"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/exercise-tracker/internal/migrations"
	exerciseservice "github.com/magabrotheeeer/exercise-tracker/internal/services/exercise"
	"github.com/magabrotheeeer/exercise-tracker/internal/storage/mongodb"
	"github.com/magabrotheeeer/exercise-tracker/internal/storage/postgresql"
)

const (
	driverMongo    = "mongo"
	driverPostgres = "postgres"
)

// Store объединяет операции хранилища, нужные приложению.
type Store interface {
	exerciseservice.Repository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// App HTTP-приложение трекера упражнений.
type App struct {
	server *http.Server
	logger *slog.Logger
	store  Store
	cache  *cache.Cache
}

// New поднимает хранилище и кеш, собирает сервис и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.exercisetracker.New"

	store, err := newStore(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("storage is ready", slog.String("driver", cfg.Driver))

	var (
		svcCache   exerciseservice.Cache = cache.Noop{}
		cacheRedis *cache.Cache
	)
	if cfg.AddressRedis != "" {
		cacheRedis, err = cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			_ = store.Close(ctx)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		svcCache = cacheRedis
		logger.Info("redis cache enabled", slog.String("address", cfg.AddressRedis))
	} else {
		logger.Info("redis address is empty, caching disabled")
	}

	service := exerciseservice.NewService(store, svcCache, cfg.TTL, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, service, store, reg, reg)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		store:  store,
		cache:  cacheRedis,
	}, nil
}

func newStore(ctx context.Context, cfg config.Storage) (Store, error) {
	switch cfg.Driver {
	case driverMongo:
		db, err := mongodb.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return db, nil
	case driverPostgres:
		db, err := postgresql.New(cfg.ConnectionString, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
			_ = db.Close(ctx)
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// Run запускает HTTP-сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		a.logger.Info("shutting down HTTP server gracefully")
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.store.Close(ctx); err != nil {
		a.logger.Error("failed to close storage", sl.Err(err))
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("failed to close redis", sl.Err(err))
		}
	}
}

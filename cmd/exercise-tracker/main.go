// Package main Exercise Tracker API
//
// @title           Exercise Tracker API
// @version         1.0
// @description     API для учёта пользователей и их упражнений
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:3000
// @BasePath  /api
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	exercisetracker "github.com/magabrotheeeer/exercise-tracker/internal/app/exercise-tracker"
	"github.com/magabrotheeeer/exercise-tracker/internal/config"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	logger := sl.New(cfg.Env, os.Stdout)

	logger.Info("starting exercise-tracker", slog.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")
	logger.Debug("config loaded", slog.String("config", cfg.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := exercisetracker.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("exercise-tracker stopped gracefully")
}

// Package app wires the application together: configuration, logging, local
// storage, the remote gateway and the services, plus the run loop.
package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/DiogoPalharini/mtfa/internal/adapter"
	"github.com/DiogoPalharini/mtfa/internal/config"
	"github.com/DiogoPalharini/mtfa/internal/logger"
	"github.com/DiogoPalharini/mtfa/internal/service"
	"github.com/DiogoPalharini/mtfa/internal/store"
)

type App struct {
	cfg      *config.AppConfig
	logger   *logger.Logger
	storages *store.Storages
	services *service.Services
}

// New reads configuration and builds the full dependency graph. The SQLite
// database initializes in the background; the first store operation waits
// for it.
func New() (*App, error) {
	cfg, err := config.GetAppConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := newAppLogger(cfg)

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	gateway := adapter.NewHTTPGateway(cfg.Remote, log)
	services := service.NewServices(storages, gateway, *cfg, log)

	return &App{
		cfg:      cfg,
		logger:   log,
		storages: storages,
		services: services,
	}, nil
}

func newAppLogger(cfg *config.AppConfig) *logger.Logger {
	if cfg.App.LogFile != "" {
		return logger.NewFileLogger("app", cfg.App.LogFile)
	}
	return logger.NewLogger("app")
}

// Services exposes the service layer to the presentation code.
func (a *App) Services() *service.Services {
	return a.services
}

// Run starts the background sync job, performs an initial connectivity
// probe, and blocks until the process receives an interrupt.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	online := a.services.Sync.ProbeConnectivity(ctx)
	a.logger.Info().
		Bool("online", online).
		Msg("application started")

	a.services.Job.Start(ctx)
	defer a.services.Job.Stop()

	<-ctx.Done()

	a.logger.Info().Msg("shutdown signal received")
	return a.Close()
}

// Close releases all resources held by the app.
func (a *App) Close() error {
	a.services.Auth.Close()

	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("failed to close local storage")
		return fmt.Errorf("close storage: %w", err)
	}

	return nil
}

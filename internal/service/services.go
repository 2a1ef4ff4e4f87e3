package service

import (
	"github.com/DiogoPalharini/mtfa/internal/adapter"
	"github.com/DiogoPalharini/mtfa/internal/config"
	"github.com/DiogoPalharini/mtfa/internal/logger"
	"github.com/DiogoPalharini/mtfa/internal/store"
)

// Services bundles the application services behind one value.
type Services struct {
	Sync SyncEngine
	Auth AuthService
	Job  *SyncJob
}

// NewServices wires the service layer on top of the storages and the remote
// gateway.
func NewServices(storages *store.Storages, gateway adapter.RemoteGateway, cfg config.AppConfig, log *logger.Logger) *Services {
	log.Info().Msg("creating services...")

	policy := SyncPolicy{MaxAttempts: cfg.Sync.MaxAttempts}

	engine := NewSyncEngine(storages, gateway, policy, log)
	auth := NewAuthService(storages, gateway, cfg, log)
	job := NewSyncJob(engine, cfg.Sync.Interval, log)

	return &Services{
		Sync: engine,
		Auth: auth,
		Job:  job,
	}
}

package service

import (
	"context"
	"sync"
	"time"

	"github.com/DiogoPalharini/mtfa/internal/logger"
)

// SyncJob periodically runs a batch sync in the background. The engine's
// single-flight flag makes an overlap with a user-triggered sync harmless.
type SyncJob struct {
	engine   SyncEngine
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSyncJob(engine SyncEngine, interval time.Duration, log *logger.Logger) *SyncJob {
	return &SyncJob{
		engine:   engine,
		interval: interval,
		logger:   log,
	}
}

// Start launches the background loop. Calling Start on a running job is a
// no-op.
func (j *SyncJob) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	j.wg.Add(1)
	go j.run(ctx)

	j.logger.Info().
		Str("func", "SyncJob.Start").
		Dur("interval", j.interval).
		Msg("background sync job started")
}

func (j *SyncJob) run(ctx context.Context) {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result := j.engine.SyncAllPending(ctx)
			j.logger.Debug().
				Str("func", "SyncJob.run").
				Bool("success", result.Success).
				Int("synced", result.Synced).
				Int("failed", result.Failed).
				Str("message", result.Message).
				Msg("background sync pass finished")
		}
	}
}

// Stop cancels the loop and waits for the current pass to finish.
func (j *SyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	j.wg.Wait()

	j.logger.Info().
		Str("func", "SyncJob.Stop").
		Msg("background sync job stopped")
}

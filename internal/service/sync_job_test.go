package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DiogoPalharini/mtfa/internal/logger"
	"github.com/DiogoPalharini/mtfa/models"
)

// stubSyncEngine counts batch-sync passes; the remaining SyncEngine methods
// are inert. Avoids mockgen for a test that only cares about call counts.
type stubSyncEngine struct {
	passes atomic.Int32
}

func (s *stubSyncEngine) SaveLoad(context.Context, models.LoadForm) models.SaveResult {
	return models.SaveResult{}
}

func (s *stubSyncEngine) SyncAllPending(context.Context) models.SyncResult {
	s.passes.Add(1)
	return models.SyncResult{Message: "nothing to sync"}
}

func (s *stubSyncEngine) ProbeConnectivity(context.Context) bool { return false }

func (s *stubSyncEngine) IsOnline() bool { return false }

func (s *stubSyncEngine) SaveDropdownValue(context.Context, models.LookupType, string) (bool, error) {
	return false, nil
}

func (s *stubSyncEngine) DropdownValues(context.Context, models.LookupType) ([]string, error) {
	return nil, nil
}

func (s *stubSyncEngine) AllDropdownValues(context.Context) (map[models.LookupType][]string, error) {
	return nil, nil
}

func (s *stubSyncEngine) Loads(context.Context) ([]models.LoadRecord, error) { return nil, nil }

func (s *stubSyncEngine) Stats(context.Context) (models.LoadStats, error) {
	return models.LoadStats{}, nil
}

func (s *stubSyncEngine) DeleteLoad(context.Context, string) error { return nil }

func (s *stubSyncEngine) CleanupOldLoads(context.Context, int) error { return nil }

func (s *stubSyncEngine) LastSyncAt() (time.Time, error) { return time.Time{}, nil }

func TestSyncJob_RunsPeriodically(t *testing.T) {
	engine := &stubSyncEngine{}
	job := NewSyncJob(engine, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	assert.Eventually(t, func() bool { return engine.passes.Load() >= 2 }, time.Second, 10*time.Millisecond)
}

func TestSyncJob_StartIsIdempotent(t *testing.T) {
	engine := &stubSyncEngine{}
	job := NewSyncJob(engine, time.Hour, logger.Nop())

	job.Start(context.Background())
	job.Start(context.Background())
	job.Stop()
}

func TestSyncJob_StopWithoutStart(t *testing.T) {
	job := NewSyncJob(&stubSyncEngine{}, time.Hour, logger.Nop())
	job.Stop()
}

func TestSyncJob_StopHaltsTheLoop(t *testing.T) {
	engine := &stubSyncEngine{}
	job := NewSyncJob(engine, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	assert.Eventually(t, func() bool { return engine.passes.Load() >= 1 }, time.Second, 10*time.Millisecond)
	job.Stop()

	after := engine.passes.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, engine.passes.Load())
}

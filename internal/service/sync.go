package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DiogoPalharini/mtfa/internal/adapter"
	"github.com/DiogoPalharini/mtfa/internal/logger"
	"github.com/DiogoPalharini/mtfa/internal/store"
	"github.com/DiogoPalharini/mtfa/models"
)

const defaultCleanupDays = 30

// SyncPolicy bounds how persistently the engine retries a pending record.
type SyncPolicy struct {
	// MaxAttempts is the per-record attempt ceiling; records at or above it
	// are skipped during batch sync. Zero means unlimited.
	MaxAttempts int
	// Backoff, when set, returns the pause inserted after a failed
	// submission before the next record is tried.
	Backoff func(attempt int) time.Duration
}

// DefaultSyncPolicy retries every pending record on every batch sync with
// no pause between failures.
func DefaultSyncPolicy() SyncPolicy {
	return SyncPolicy{}
}

type syncEngine struct {
	loads   store.LoadRepository
	lookups store.LookupRepository
	state   store.StateStore
	gateway adapter.RemoteGateway
	policy  SyncPolicy
	logger  *logger.Logger

	// syncMu guards the single-flight flag for batch syncs.
	syncMu  sync.Mutex
	syncing bool

	online atomic.Bool
}

func NewSyncEngine(storages *store.Storages, gateway adapter.RemoteGateway, policy SyncPolicy, log *logger.Logger) SyncEngine {
	return &syncEngine{
		loads:   storages.Loads,
		lookups: storages.Lookups,
		state:   storages.State,
		gateway: gateway,
		policy:  policy,
		logger:  log,
	}
}

func (s *syncEngine) SaveLoad(ctx context.Context, form models.LoadForm) models.SaveResult {
	id, err := s.loads.SaveLoad(ctx, form)
	if err != nil {
		s.logger.Err(err).
			Str("func", "syncEngine.SaveLoad").
			Msg("local save failed")
		return models.SaveResult{
			Success: false,
			Message: "failed to save load locally",
		}
	}

	// Custom "other" entries feed the dropdowns independently of the record
	// itself; a failure here never fails the save.
	s.captureCustomEntries(ctx, form)

	if !s.online.Load() {
		return models.SaveResult{
			Success: true,
			ID:      id,
			Message: "saved locally, will sync when online",
		}
	}

	if err = s.gateway.SubmitLoad(ctx, form); err != nil {
		s.logger.Warn().
			Str("func", "syncEngine.SaveLoad").
			Str("id", id).
			Err(err).
			Msg("immediate push failed, record stays pending")

		if incErr := s.loads.IncrementSyncAttempts(ctx, id); incErr != nil {
			s.logger.Err(incErr).
				Str("func", "syncEngine.SaveLoad").
				Str("id", id).
				Msg("failed to record sync attempt")
		}
		if errors.Is(err, adapter.ErrNetworkError) {
			s.online.Store(false)
		}

		return models.SaveResult{
			Success: true,
			ID:      id,
			Message: "saved locally, will sync later",
		}
	}

	if err = s.loads.MarkSynced(ctx, id, time.Now().UTC()); err != nil {
		s.logger.Err(err).
			Str("func", "syncEngine.SaveLoad").
			Str("id", id).
			Msg("failed to mark record synced after push")
		return models.SaveResult{
			Success: true,
			ID:      id,
			Message: "saved locally, will sync later",
		}
	}

	return models.SaveResult{
		Success: true,
		ID:      id,
		Message: "saved and synced",
		Synced:  true,
	}
}

func (s *syncEngine) SyncAllPending(ctx context.Context) models.SyncResult {
	s.syncMu.Lock()
	if s.syncing {
		s.syncMu.Unlock()
		return models.SyncResult{
			Success: false,
			Message: "sync already in progress",
		}
	}
	s.syncing = true
	s.syncMu.Unlock()

	defer func() {
		s.syncMu.Lock()
		s.syncing = false
		s.syncMu.Unlock()
	}()

	if !s.ProbeConnectivity(ctx) {
		return models.SyncResult{
			Success: false,
			Message: "no connection to server",
		}
	}

	pending, err := s.loads.GetPendingLoads(ctx)
	if err != nil {
		s.logger.Err(err).
			Str("func", "syncEngine.SyncAllPending").
			Msg("failed to list pending records")
		return models.SyncResult{
			Success: false,
			Message: "failed to read pending records",
		}
	}

	result := s.submitSequentially(ctx, pending)

	if err = s.state.SetLastSyncAt(time.Now().UTC()); err != nil {
		s.logger.Err(err).
			Str("func", "syncEngine.SyncAllPending").
			Msg("failed to persist last sync timestamp")
	}

	return result
}

// submitSequentially pushes records one at a time in the order given. A
// per-record failure is counted and the loop moves on; one bad record never
// aborts the batch.
func (s *syncEngine) submitSequentially(ctx context.Context, pending []models.LoadRecord) models.SyncResult {
	var synced, failed, skipped int

	for _, record := range pending {
		if s.policy.MaxAttempts > 0 && record.SyncAttempts >= s.policy.MaxAttempts {
			skipped++
			continue
		}

		if err := s.gateway.SubmitLoad(ctx, record.LoadForm); err != nil {
			failed++
			s.logger.Warn().
				Str("func", "syncEngine.SyncAllPending").
				Str("id", record.ID).
				Err(err).
				Msg("record submission failed")

			if incErr := s.loads.IncrementSyncAttempts(ctx, record.ID); incErr != nil {
				s.logger.Err(incErr).
					Str("func", "syncEngine.SyncAllPending").
					Str("id", record.ID).
					Msg("failed to record sync attempt")
			}

			if !s.pauseAfterFailure(ctx, record.SyncAttempts+1) {
				break
			}
			continue
		}

		if err := s.loads.MarkSynced(ctx, record.ID, time.Now().UTC()); err != nil {
			failed++
			s.logger.Err(err).
				Str("func", "syncEngine.SyncAllPending").
				Str("id", record.ID).
				Msg("failed to mark record synced")
			continue
		}
		synced++
	}

	switch {
	case synced > 0:
		return models.SyncResult{
			Success: true,
			Synced:  synced,
			Failed:  failed,
			Message: fmt.Sprintf("synced %d record(s), %d failed", synced, failed),
		}
	case failed > 0:
		return models.SyncResult{
			Failed:  failed,
			Message: fmt.Sprintf("all %d submission(s) failed", failed),
		}
	case skipped > 0:
		return models.SyncResult{
			Message: fmt.Sprintf("%d record(s) exceeded the retry limit", skipped),
		}
	default:
		return models.SyncResult{
			Message: "nothing to sync",
		}
	}
}

// pauseAfterFailure sleeps for the policy backoff, if any. Returns false
// when the context was cancelled during the pause.
func (s *syncEngine) pauseAfterFailure(ctx context.Context, attempt int) bool {
	if s.policy.Backoff == nil {
		return true
	}
	pause := s.policy.Backoff(attempt)
	if pause <= 0 {
		return true
	}

	timer := time.NewTimer(pause)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (s *syncEngine) ProbeConnectivity(ctx context.Context) bool {
	online := s.gateway.Ping(ctx)
	s.online.Store(online)

	s.logger.Debug().
		Str("func", "syncEngine.ProbeConnectivity").
		Bool("online", online).
		Msg("connectivity probed")

	return online
}

func (s *syncEngine) IsOnline() bool {
	return s.online.Load()
}

func (s *syncEngine) SaveDropdownValue(ctx context.Context, typ models.LookupType, value string) (bool, error) {
	return s.lookups.UpsertValue(ctx, typ, value)
}

func (s *syncEngine) DropdownValues(ctx context.Context, typ models.LookupType) ([]string, error) {
	return s.lookups.GetValues(ctx, typ)
}

func (s *syncEngine) AllDropdownValues(ctx context.Context) (map[models.LookupType][]string, error) {
	return s.lookups.GetAllValues(ctx)
}

// captureCustomEntries turns the form's non-empty "other" companions into
// dropdown options so hand-typed values are offered next time.
func (s *syncEngine) captureCustomEntries(ctx context.Context, form models.LoadForm) {
	entries := map[models.LookupType]string{
		models.LookupTruck:       form.OtherTruck,
		models.LookupFarm:        form.OtherFarm,
		models.LookupField:       form.OtherField,
		models.LookupVariety:     form.OtherVariety,
		models.LookupDriver:      form.OtherDriver,
		models.LookupDestination: form.OtherDestination,
		models.LookupAgreement:   form.OtherAgreement,
	}

	for typ, value := range entries {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, err := s.lookups.UpsertValue(ctx, typ, value); err != nil {
			s.logger.Warn().
				Str("func", "syncEngine.captureCustomEntries").
				Str("type", string(typ)).
				Err(err).
				Msg("failed to store custom dropdown entry")
		}
	}
}

func (s *syncEngine) Loads(ctx context.Context) ([]models.LoadRecord, error) {
	return s.loads.GetAllLoads(ctx)
}

func (s *syncEngine) Stats(ctx context.Context) (models.LoadStats, error) {
	return s.loads.Stats(ctx)
}

func (s *syncEngine) DeleteLoad(ctx context.Context, id string) error {
	return s.loads.DeleteLoad(ctx, id)
}

func (s *syncEngine) CleanupOldLoads(ctx context.Context, daysToKeep int) error {
	if daysToKeep <= 0 {
		daysToKeep = defaultCleanupDays
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -daysToKeep)
	return s.loads.CleanupOldLoads(ctx, cutoff)
}

func (s *syncEngine) LastSyncAt() (time.Time, error) {
	return s.state.LastSyncAt()
}

package store

import (
	"fmt"

	"github.com/DiogoPalharini/mtfa/internal/config"
	"github.com/DiogoPalharini/mtfa/internal/logger"
)

// Storages groups all local storage repositories into a single value that
// can be passed around the service layer.
type Storages struct {
	// Loads is the SQLite-backed repository for truck-load records.
	Loads LoadRepository
	// Lookups is the repository for dropdown option values.
	Lookups LookupRepository
	// Credentials is the repository for cached login material.
	Credentials CredentialRepository
	// State is the JSON file mirroring session and sync bookkeeping.
	State StateStore

	db *DB
}

// NewStorages initializes the local storage layer. Database initialization
// (file creation, connection, schema migration) runs asynchronously; the
// repositories block on the readiness gate when used before it completes,
// bounded by the store's ready timeout.
func NewStorages(cfg config.AppStorage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating local storages...")

	db := NewDB(cfg, log)

	state, err := NewStateFile(cfg.StateFilePath)
	if err != nil {
		return nil, fmt.Errorf("state file error: %w", err)
	}

	return &Storages{
		Loads:       NewLoadRepository(db, log),
		Lookups:     NewLookupRepository(db, log),
		Credentials: NewCredentialRepository(db, log),
		State:       state,
		db:          db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/DiogoPalharini/mtfa/internal/config"
	"github.com/DiogoPalharini/mtfa/internal/logger"
	"github.com/DiogoPalharini/mtfa/migrations"
)

// readyTimeout bounds how long an operation waits for the asynchronous
// schema initialization before giving up with [ErrStoreNotReady].
const readyTimeout = 10 * time.Second

// DB owns the SQLite connection and its readiness gate. Initialization
// (open + migrate) runs in the background; every repository operation first
// waits on the gate so no query ever runs against a half-created schema.
type DB struct {
	logger *logger.Logger

	ready   chan struct{}
	conn    *sql.DB
	initErr error
}

// NewDB starts asynchronous initialization of the local database and
// returns immediately. Operations issued before initialization completes
// block on the readiness gate, bounded by readyTimeout.
func NewDB(cfg config.AppStorage, log *logger.Logger) *DB {
	db := &DB{
		logger: log,
		ready:  make(chan struct{}),
	}

	go db.init(cfg)

	return db
}

func (db *DB) init(cfg config.AppStorage) {
	defer close(db.ready)

	conn, err := openSQLite(context.Background(), cfg.DSN, db.logger)
	if err != nil {
		db.initErr = err
		return
	}

	if err := migrations.Migrate(conn); err != nil {
		db.logger.Err(err).Str("func", "DB.init").Msg("migration failed")
		conn.Close()
		db.initErr = fmt.Errorf("migration failed: %w", err)
		return
	}

	db.conn = conn
	db.logger.Debug().Str("func", "DB.init").Msg("local database initialized")
}

// handle returns the underlying connection once initialization has
// completed. It fails with [ErrStoreNotReady] when the gate does not open
// within readyTimeout, or with the recorded init error when initialization
// itself failed.
func (db *DB) handle(ctx context.Context) (*sql.DB, error) {
	t := time.NewTimer(readyTimeout)
	defer t.Stop()

	select {
	case <-db.ready:
		if db.initErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreNotReady, db.initErr)
		}
		return db.conn, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-t.C:
		return nil, ErrStoreNotReady
	}
}

// Close releases the database connection. Safe to call before
// initialization completed; it waits for the gate first.
func (db *DB) Close() error {
	<-db.ready
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

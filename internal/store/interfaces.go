package store

import (
	"context"
	"time"

	"github.com/DiogoPalharini/mtfa/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

// LoadRepository is the durable home of truck-load records and the single
// source of truth for their sync status.
type LoadRepository interface {
	// SaveLoad persists a new load record with a fresh locally generated
	// id, status pending, and created_at set to the current time. All form
	// fields are stored verbatim (empty strings for absent "other"
	// companions). Returns the new record id.
	SaveLoad(ctx context.Context, form models.LoadForm) (string, error)

	// GetAllLoads returns every load record ordered by creation time
	// descending (most recent first, for display).
	GetAllLoads(ctx context.Context) ([]models.LoadRecord, error)

	// GetPendingLoads returns pending records ordered by creation time
	// ascending, so batch sync pushes them in submission order.
	GetPendingLoads(ctx context.Context) ([]models.LoadRecord, error)

	// MarkSynced transitions exactly one record from pending to synced and
	// records syncedAt. Calling it for an id that does not exist, or for a
	// record that is already synced, is a no-op, not an error.
	MarkSynced(ctx context.Context, id string, syncedAt time.Time) error

	// IncrementSyncAttempts bumps the failed-delivery counter of one
	// record. Consulted by the sync policy.
	IncrementSyncAttempts(ctx context.Context, id string) error

	// DeleteLoad removes one record. Maintenance operation; the normal
	// flow never deletes.
	DeleteLoad(ctx context.Context, id string) error

	// CleanupOldLoads removes synced records created before the cutoff.
	// Pending records are never cleaned up.
	CleanupOldLoads(ctx context.Context, cutoff time.Time) error

	// Stats returns total/pending/synced counts over the load table.
	Stats(ctx context.Context) (models.LoadStats, error)
}

// LookupRepository stores the selectable options of the categorical load
// fields.
type LookupRepository interface {
	// UpsertValue inserts a (type, value) pair unless it already exists.
	// Returns true when a new row was inserted, false when the pair was
	// already present. Duplicates are a no-op, never an error.
	UpsertValue(ctx context.Context, typ models.LookupType, value string) (bool, error)

	// GetValues returns all stored values of one type, sorted. An unknown
	// or empty type yields an empty slice, not an error.
	GetValues(ctx context.Context, typ models.LookupType) ([]string, error)

	// GetAllValues returns the values of every known lookup type. Types
	// without rows map to empty slices.
	GetAllValues(ctx context.Context) (map[models.LookupType][]string, error)
}

// CredentialRepository stores locally cached login material for offline
// authentication. At most one credential exists per email.
type CredentialRepository interface {
	// UpsertCredential inserts a credential row for email or, when one
	// already exists, replaces its hash, session id, and last-login
	// timestamp in place.
	UpsertCredential(ctx context.Context, email, passwordHash, sessionID string) error

	// GetCredential returns the credential cached for email, or
	// [ErrCredentialNotFound].
	GetCredential(ctx context.Context, email string) (models.CachedCredential, error)

	// GetMostRecentCredential returns the credential with the latest
	// last_login, or [ErrCredentialNotFound] when none is cached. Used for
	// single-user-device fallback when the exact email has no row.
	GetMostRecentCredential(ctx context.Context) (models.CachedCredential, error)

	// HasAnyCredential reports whether at least one credential is cached.
	HasAnyCredential(ctx context.Context) (bool, error)

	// ClearCredentials deletes all cached credentials. Invoked only on
	// explicit logout, never by automatic session expiry.
	ClearCredentials(ctx context.Context) error

	// UpdateSessionID refreshes the stored legacy session id and the
	// last-login timestamp of one credential.
	UpdateSessionID(ctx context.Context, email, sessionID string) error
}

// StateStore mirrors small pieces of in-memory state (the current session
// and the last-sync-attempt timestamp) to durable storage so they survive a
// process restart.
type StateStore interface {
	// Session returns the persisted session mirror, or
	// [ErrSessionStateNotFound] when none is stored.
	Session() (models.Session, error)

	// SaveSession persists the session mirror.
	SaveSession(session models.Session) error

	// ClearSession removes the persisted session mirror. Missing state is
	// a no-op.
	ClearSession() error

	// SetLastSyncAt records when the last batch sync pass finished.
	SetLastSyncAt(t time.Time) error

	// LastSyncAt returns the recorded last-sync timestamp; the zero time
	// means no batch sync has run yet.
	LastSyncAt() (time.Time, error)
}

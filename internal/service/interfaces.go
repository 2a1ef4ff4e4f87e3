package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

import (
	"context"
	"time"

	"github.com/DiogoPalharini/mtfa/models"
)

// SyncEngine is the facade the UI layer talks to for everything around load
// records and dropdown data: local persistence, opportunistic pushes, batch
// synchronization and connectivity state.
type SyncEngine interface {
	// SaveLoad writes the form to local storage first, then attempts an
	// immediate push when the engine believes it is online. The local write
	// decides Success; the push outcome only sets Synced.
	SaveLoad(ctx context.Context, form models.LoadForm) models.SaveResult

	// SyncAllPending pushes every pending record sequentially, oldest first.
	// Only one batch runs at a time; a concurrent call returns immediately
	// with a "sync already in progress" result.
	SyncAllPending(ctx context.Context) models.SyncResult

	// ProbeConnectivity checks server reachability and refreshes the
	// engine's cached online belief.
	ProbeConnectivity(ctx context.Context) bool

	// IsOnline reports the engine's current belief, as of the last probe.
	IsOnline() bool

	// SaveDropdownValue stores one dropdown option; reports whether the
	// value was newly inserted.
	SaveDropdownValue(ctx context.Context, typ models.LookupType, value string) (bool, error)

	// DropdownValues lists the stored options of one dropdown type.
	DropdownValues(ctx context.Context, typ models.LookupType) ([]string, error)

	// AllDropdownValues lists options for every known dropdown type.
	AllDropdownValues(ctx context.Context) (map[models.LookupType][]string, error)

	// Loads returns all load records, newest first.
	Loads(ctx context.Context) ([]models.LoadRecord, error)

	// Stats returns total/pending/synced record counts.
	Stats(ctx context.Context) (models.LoadStats, error)

	// DeleteLoad removes a single record by id.
	DeleteLoad(ctx context.Context, id string) error

	// CleanupOldLoads deletes synced records older than daysToKeep days.
	CleanupOldLoads(ctx context.Context, daysToKeep int) error

	// LastSyncAt returns the timestamp of the last completed batch-sync
	// attempt, zero when none happened yet.
	LastSyncAt() (time.Time, error)
}

// AuthService authenticates the user against the remote system when it is
// reachable and against locally cached credentials when it is not, and
// tracks the lifetime of the resulting session.
type AuthService interface {
	// Login authenticates against the remote system when reachable, falling
	// back to cached credentials otherwise. The returned result never wraps
	// an error; failures are reported through Success and Message.
	Login(ctx context.Context, email, password string) models.LoginResult

	// Logout clears the session, its persisted mirror and all cached
	// credentials, and disarms the expiry monitor.
	Logout(ctx context.Context) error

	// IsLoggedIn reports whether a current, non-expired session exists.
	IsLoggedIn() bool

	// CurrentUser returns the logged-in user, if any.
	CurrentUser() (models.User, bool)

	// CanLoginOffline reports whether a cached credential exists that is
	// still inside its validity window.
	CanLoginOffline(ctx context.Context) (bool, error)

	// OnSessionExpired registers the callback invoked when the monitor
	// detects that the session expired.
	OnSessionExpired(fn func())

	// Close disarms the expiry monitor without touching session state.
	Close()
}

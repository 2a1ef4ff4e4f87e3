package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStoreNotReady is returned when an operation is invoked before the
	// asynchronous store initialization completed within its bounded wait.
	// This is a hard failure; every other failure mode is reported through
	// structured results.
	ErrStoreNotReady = errors.New("local store is not ready")

	// ErrCredentialNotFound is returned when no cached credential exists
	// for the requested email (or at all, for the most-recent lookup).
	// Callers must treat this as "no data", not as a storage fault.
	ErrCredentialNotFound = errors.New("cached credential not found")

	// ErrSessionStateNotFound is returned when the state file holds no
	// persisted session mirror.
	ErrSessionStateNotFound = errors.New("persisted session not found")
)

package service

import "errors"

var (
	// ErrNoOfflineCredentials means no cached credential exists on this
	// device; the user has to log in online at least once.
	ErrNoOfflineCredentials = errors.New("no offline credentials available, login online first")

	// ErrCredentialsExpired means the cached credential is older than the
	// offline validity window.
	ErrCredentialsExpired = errors.New("credentials expired, login online again")

	// ErrIncorrectPassword means the entered password does not match the
	// cached credential hash.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrRemoteAuthFailed means the remote dual-call authentication did not
	// fully succeed.
	ErrRemoteAuthFailed = errors.New("remote authentication failed")
)

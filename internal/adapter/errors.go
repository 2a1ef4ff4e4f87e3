package adapter

import "errors"

var (
	// ErrSessionExpired means the server rejected the request because the
	// session cookie is no longer valid. The caller should re-authenticate.
	ErrSessionExpired = errors.New("session expired")

	// ErrServerError means the server answered with a 5xx status.
	ErrServerError = errors.New("server error")

	// ErrNetworkError means no HTTP response was received at all.
	ErrNetworkError = errors.New("network error")

	// ErrUnexpectedResponse means the server answered, but not in any form
	// recognized as success or a known failure.
	ErrUnexpectedResponse = errors.New("unexpected server response")

	// ErrAuthFailed means the server rejected the supplied credentials.
	ErrAuthFailed = errors.New("authentication failed")
)

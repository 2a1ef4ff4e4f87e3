package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mocks.go -package=mock

import (
	"context"

	"github.com/DiogoPalharini/mtfa/models"
)

// RemoteGateway is the HTTP boundary to the legacy farm-management server.
// Implementations carry the session cookie across calls.
type RemoteGateway interface {
	// SubmitLoad posts a single truck-load form to the server. A nil return
	// means the server accepted the record.
	SubmitLoad(ctx context.Context, form models.LoadForm) error

	// ModernLogin authenticates against the JSON login endpoint and returns
	// the user profile on success.
	ModernLogin(ctx context.Context, email, password string) (models.User, error)

	// LegacyLogin authenticates against the form-based login page and
	// returns the session id to carry on subsequent requests.
	LegacyLogin(ctx context.Context, email, password string) (string, error)

	// Ping reports whether the server is currently reachable.
	Ping(ctx context.Context) bool

	// SetSessionID installs the session cookie used by SubmitLoad.
	SetSessionID(sessionID string)

	// SessionID returns the currently installed session cookie value.
	SessionID() string
}

package models

import "time"

// CachedCredential is one user's locally cached login material. It enables
// offline authentication after at least one successful remote login. At most
// one row exists per email; PasswordHash is an irreversible digest, never
// the plaintext.
type CachedCredential struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	SessionID    string    `json:"session_id,omitempty"`
	LastLogin    time.Time `json:"last_login"`
	IsValidated  bool      `json:"is_validated"`
	CreatedAt    time.Time `json:"created_at"`
}

package models

import "time"

// Session is the in-memory authentication state, mirrored to durable storage
// so it survives a process restart.
//
// A zero ExpiresAt means the session carries no expiry timestamp and is
// treated as valid indefinitely until explicitly cleared. This matches the
// behavior of earlier session-state generations that never wrote an expiry.
type Session struct {
	User      User      `json:"user"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// Expired reports whether the session's expiry timestamp has passed. A
// session without an expiry timestamp never expires.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

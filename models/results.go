package models

// SaveResult is the outcome of a save-and-maybe-sync call. Success reflects
// only the local write; Synced tells whether the record also reached the
// remote system in the same call.
type SaveResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
	Synced  bool   `json:"synced"`
}

// SyncResult is the aggregate outcome of one batch sync pass. Success is
// true iff at least one record was synced.
type SyncResult struct {
	Success bool   `json:"success"`
	Synced  int    `json:"synced"`
	Failed  int    `json:"failed"`
	Message string `json:"message"`
}

// LoginResult is the outcome of an authentication attempt, whether it was
// satisfied remotely or from the local credential cache.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
	// Offline is true when the login was validated against cached
	// credentials rather than the remote system.
	Offline bool `json:"offline"`
}

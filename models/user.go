package models

// User is the authenticated account as reported by the remote credential
// check. For offline logins the profile is synthesized from the cached
// email: the local part becomes the name and the ID stays zero.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Level string `json:"level,omitempty"`
}

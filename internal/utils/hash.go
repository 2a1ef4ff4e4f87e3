package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"
)

const (
	hashIterations = 4096
	hashKeyLen     = 32
)

// HashPassword derives an irreversible digest from a plaintext password
// using PBKDF2-HMAC-SHA256 with the application pepper as salt. The digest
// is deterministic for a given (password, pepper) pair, which allows
// offline verification by recomputing and comparing.
func HashPassword(password, pepper string) string {
	key := pbkdf2.Key([]byte(password), []byte(pepper), hashIterations, hashKeyLen, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}

// VerifyPassword reports whether password hashes to the stored digest under
// the same pepper. Comparison is constant-time.
func VerifyPassword(password, pepper, storedHash string) bool {
	computed := HashPassword(password, pepper)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

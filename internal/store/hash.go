package store

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of the raw password
// bytes. Equality is checked by comparing digests.
//
// The digest is unsalted, a known limitation of the on-disk format.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

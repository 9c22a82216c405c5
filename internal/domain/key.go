package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// DailyCacheKey derives the cache key for one identity on one calendar day:
// the hex-encoded SHA-256 of name + "-" + dob + "-" + today. The key is
// stable for identical inputs and rolls over at midnight.
//
// Inputs containing the "-" delimiter are not unambiguously separated, so
// two identities whose concatenations collide share a key. That is accepted
// for a best-effort daily cache; do not "fix" it without migrating stored
// keys.
func DailyCacheKey(name, dob, today string) string {
	sum := sha256.Sum256([]byte(name + "-" + dob + "-" + today))
	return hex.EncodeToString(sum[:])
}

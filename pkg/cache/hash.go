package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash is the hex SHA-256 of data. The pipeline hashes the canonical layout
// with it, and the file cache hashes keys into file names.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds "<kind>:<sha256>" over parts. Parts are NUL-terminated so
// ("ab", "c") and ("a", "bc") hash differently.
func hashKey(kind string, parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return kind + ":" + hex.EncodeToString(h.Sum(nil))
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a typed key: "<kind>:<digest>". The parts are the
// inputs that distinguish one derivation from another (manifest hash,
// grid mode, anti pattern, and so on); hashing them keeps keys a
// fixed length no matter how many options the pipeline grows. The
// digest is truncated to 128 bits so listed keys stay readable.
func hashKey(kind string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return kind + ":" + hex.EncodeToString(sum[:16])
}

// Hash returns the full SHA-256 hex digest of data. Sequence and
// placement hashes use the full digest because they are exposed in
// API responses and artifacts, where collisions would be visible.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

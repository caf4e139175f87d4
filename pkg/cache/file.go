package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileCache stores entries under a local directory, one file per key.
// It backs the CLI, where a single process owns the cache and derived
// placements survive between invocations.
//
// Entries are grouped by the key's type segment (sequence, placement,
// artifact, http) so `pictoplace cache clear` output and manual
// inspection stay navigable.
type FileCache struct {
	dir string
}

// NewFileCache opens a cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// fileEntry is the on-disk shape. Expires is a unix timestamp in
// seconds; zero means the entry never expires.
type fileEntry struct {
	Payload []byte `json:"payload"`
	Expires int64  `json:"expires,omitempty"`
}

// Get reads an entry. A corrupt or expired file is removed and
// reported as a miss, never as an error.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if entry.Expires != 0 && time.Now().Unix() > entry.Expires {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return entry.Payload, true, nil
}

// Set writes an entry. A zero ttl stores it without expiry.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{Payload: data}
	if ttl > 0 {
		entry.Expires = time.Now().Add(ttl).Unix()
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// Delete removes an entry. A missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; files need no teardown.
func (c *FileCache) Close() error {
	return nil
}

// path maps a key to dir/<kind>/<hash>.json, where kind is the key's
// type segment. Keys without a type segment land in "misc".
func (c *FileCache) path(key string) string {
	kind := "misc"
	if i := strings.IndexByte(key, ':'); i > 0 {
		kind = key[:i]
	}
	return filepath.Join(c.dir, kind, Hash([]byte(key))+".json")
}

var _ Cache = (*FileCache)(nil)

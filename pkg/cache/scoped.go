package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// This is useful in hosted deployments where different users or contexts
// need separate cache namespaces.
//
// Example usage:
//
//	// User-specific keys for private sequence libraries
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "user:abc123:")
//
//	// Global keys for shared placement data
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// SequenceKey generates a prefixed key for loaded sequence caching.
func (k *ScopedKeyer) SequenceKey(source string, opts SequenceKeyOpts) string {
	return k.prefix + k.inner.SequenceKey(source, opts)
}

// PlacementKey generates a prefixed key for derived placement caching.
func (k *ScopedKeyer) PlacementKey(sequenceHash string, opts PlacementKeyOpts) string {
	return k.prefix + k.inner.PlacementKey(sequenceHash, opts)
}

// ArtifactKey generates a prefixed key for encoded artifact caching.
func (k *ScopedKeyer) ArtifactKey(placementHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(placementHash, opts)
}

package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pictoplace/pictoplace/pkg/adjust"
	"github.com/pictoplace/pictoplace/pkg/cache"
	"github.com/pictoplace/pictoplace/pkg/errors"
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/httputil"
	"github.com/pictoplace/pictoplace/pkg/observability"
	"github.com/pictoplace/pictoplace/pkg/sequence"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// HTTP fetches remote adjustment tables. When nil, remote refs are
	// fetched with an uncached default client.
	HTTP *httputil.Client
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → derive → encode pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	seq, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Sequence = seq
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.BeatCount = len(seq.Beats)
	result.CacheInfo.LoadHit = loadHit

	// Compute sequence hash for cache keys and API responses
	if seqData, err := json.Marshal(seq); err == nil {
		result.SequenceHash = cache.Hash(seqData)
	}

	r.Logger.Info("loaded sequence",
		"name", seq.Name,
		"beats", len(seq.Beats),
		"duration", result.Stats.LoadTime)

	// Stage 2: Derive
	deriveStart := time.Now()
	placements, deriveHit, err := r.DeriveWithCacheInfo(ctx, seq, result.SequenceHash, opts)
	if err != nil {
		return nil, fmt.Errorf("derive: %w", err)
	}
	result.Placements = placements
	result.Stats.DeriveTime = time.Since(deriveStart)
	result.CacheInfo.DeriveHit = deriveHit

	r.Logger.Info("derived placements",
		"beats", len(placements),
		"duration", result.Stats.DeriveTime)

	// Stage 3: Encode
	encodeStart := time.Now()
	artifacts, encodeHit, err := r.EncodeWithCacheInfo(ctx, seq, placements, opts)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.EncodeTime = time.Since(encodeStart)
	result.CacheInfo.EncodeHit = encodeHit

	r.Logger.Info("encoded outputs",
		"formats", opts.Formats,
		"duration", result.Stats.EncodeTime)

	return result, nil
}

// LoadWithCacheInfo loads a sequence with caching and returns cache hit info.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (*sequence.Sequence, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	source := "inline"
	observability.Pipeline().OnLoadStart(ctx, sourceName(opts))
	start := time.Now()

	// The cache key hashes the raw manifest bytes, so edited files are
	// never served stale.
	var raw []byte
	if len(opts.ManifestJSON) > 0 {
		raw = opts.ManifestJSON
	} else {
		source = opts.Manifest
		data, err := os.ReadFile(opts.Manifest)
		if err != nil {
			if os.IsNotExist(err) {
				err = errors.New(errors.ErrCodeFileNotFound, "manifest not found: %s", opts.Manifest)
			}
			observability.Pipeline().OnLoadComplete(ctx, source, 0, time.Since(start), err)
			return nil, false, err
		}
		raw = data
	}
	cacheKey := r.Keyer.SequenceKey(cache.Hash(raw), opts.SequenceKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var seq sequence.Sequence
			if err := json.Unmarshal(data, &seq); err == nil {
				observability.Cache().OnCacheHit(ctx, "sequence")
				observability.Pipeline().OnLoadComplete(ctx, source, len(seq.Beats), time.Since(start), nil)
				return &seq, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "sequence")
	}

	// Load
	var seq *sequence.Sequence
	var err error
	if len(opts.ManifestJSON) > 0 {
		seq, err = sequence.LoadJSON(opts.ManifestJSON)
	} else {
		seq, err = sequence.Load(opts.Manifest)
	}
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, source, 0, time.Since(start), err)
		return nil, false, err
	}

	if opts.GridMode != "" {
		mode, err := grid.ParseMode(opts.GridMode)
		if err != nil {
			return nil, false, errors.Wrap(errors.ErrCodeInvalidGridMode, err, "grid mode option")
		}
		seq.GridMode = mode
		for i := range seq.Beats {
			seq.Beats[i].GridMode = mode
		}
	}

	// Cache the result
	if !opts.Refresh {
		if data, err := json.Marshal(seq); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLSequence)
			observability.Cache().OnCacheSet(ctx, "sequence", len(data))
		}
	}

	observability.Pipeline().OnLoadComplete(ctx, source, len(seq.Beats), time.Since(start), nil)
	return seq, false, nil // Cache miss
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (*sequence.Sequence, error) {
	seq, _, err := r.LoadWithCacheInfo(ctx, opts)
	return seq, err
}

// DeriveWithCacheInfo derives placements with caching and returns cache hit info.
func (r *Runner) DeriveWithCacheInfo(ctx context.Context, seq *sequence.Sequence, seqHash string, opts Options) ([]BeatPlacement, bool, error) {
	if err := opts.ValidateForDerive(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	if seqHash == "" {
		if data, err := json.Marshal(seq); err == nil {
			seqHash = cache.Hash(data)
		}
	}
	cacheKey := r.Keyer.PlacementKey(seqHash, opts.PlacementKeyOpts())

	// Try cache first
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var cached []BeatPlacement
		if err := json.Unmarshal(data, &cached); err == nil {
			observability.Cache().OnCacheHit(ctx, "placement")
			return cached, true, nil // Cache hit
		}
		// If deserialization fails, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "placement")

	observability.Pipeline().OnDeriveStart(ctx, seq.Name, len(seq.Beats))
	start := time.Now()

	table, err := adjust.Resolve(ctx, opts.AdjustRef, r.HTTP)
	if err != nil {
		observability.Pipeline().OnDeriveComplete(ctx, seq.Name, time.Since(start), err)
		return nil, false, err
	}

	placements := Derive(seq, table, opts.RotationOptions(), opts.SkipBeta)
	observability.Pipeline().OnDeriveComplete(ctx, seq.Name, time.Since(start), nil)

	// Cache the result
	if data, err := json.Marshal(placements); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPlacement)
		observability.Cache().OnCacheSet(ctx, "placement", len(data))
	}

	return placements, false, nil // Cache miss
}

// EncodeWithCacheInfo encodes artifacts with caching and returns cache hit info.
func (r *Runner) EncodeWithCacheInfo(ctx context.Context, seq *sequence.Sequence, placements []BeatPlacement, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForEncode(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from placement data
	placementData, err := json.Marshal(placements)
	if err != nil {
		return nil, false, fmt.Errorf("serialize placements for cache key: %w", err)
	}
	placementHash := cache.Hash(placementData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(placementHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	observability.Pipeline().OnEncodeStart(ctx, opts.Formats)
	start := time.Now()

	// Encode all formats
	rendered := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := Encode(seq, placements, format, opts.Pretty)
		if err != nil {
			observability.Pipeline().OnEncodeComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, false, err
		}
		rendered[format] = data
	}
	observability.Pipeline().OnEncodeComplete(ctx, opts.Formats, time.Since(start), nil)

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(placementHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func sourceName(opts Options) string {
	if opts.Manifest != "" {
		return opts.Manifest
	}
	return "inline"
}

// Package pipeline provides the core placement pipeline for pictoplace.
//
// This package implements the complete load → derive → encode pipeline that
// can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate a sequence manifest (TOML or JSON)
//  2. Derive: Compute glyph placements for every beat
//  3. Encode: Serialize the placements in various formats (JSON, CSV)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Manifest: "sequence.toml",
//	    Formats:  []string{"json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := result.Artifacts["json"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pictoplace/pictoplace/pkg/cache"
	"github.com/pictoplace/pictoplace/pkg/errors"
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/placement"
	"github.com/pictoplace/pictoplace/pkg/sequence"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// Anti pattern names accepted in options.
const (
	AntiPatternRegular   = "regular"
	AntiPatternAlternate = "alternate"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatCSV:  true,
}

// validAntiPatterns is the set of supported anti table selections.
var validAntiPatterns = map[string]bool{
	AntiPatternRegular:   true,
	AntiPatternAlternate: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the placement pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Manifest     string `json:"manifest,omitempty"`  // Path to a manifest file
	ManifestJSON []byte `json:"-"`                   // Inline manifest payload (API)
	GridMode     string `json:"grid_mode,omitempty"` // Override every beat's grid mode
	Refresh      bool   `json:"refresh,omitempty"`

	// Derive options
	AdjustRef    string `json:"adjust,omitempty"`       // Adjustment table path or URL
	AntiPattern  string `json:"anti_pattern,omitempty"` // "regular" or "alternate"
	DashOverride bool   `json:"dash_override,omitempty"`
	SkipBeta     bool   `json:"skip_beta,omitempty"` // Skip beta separation offsets

	// Encode options
	Formats []string `json:"formats,omitempty"`
	Pretty  bool     `json:"pretty,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Sequence is the loaded and validated sequence.
	Sequence *sequence.Sequence

	// SequenceHash is the content hash of the loaded sequence.
	SequenceHash string

	// Placements holds one derived placement per beat.
	Placements []BeatPlacement

	// Artifacts contains encoded outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BeatCount  int
	LoadTime   time.Duration
	DeriveTime time.Duration
	EncodeTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the loaded sequence came from cache
	DeriveHit bool // Whether the derived placements came from cache
	EncodeHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, csv)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAntiPattern checks that an anti pattern name is valid.
func ValidateAntiPattern(name string) error {
	if !validAntiPatterns[name] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid anti pattern: %q (must be regular or alternate)", name)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForDerive(); err != nil {
		return err
	}
	if err := o.ValidateForEncode(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Manifest == "" && len(o.ManifestJSON) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "manifest is required")
	}
	if o.GridMode != "" {
		if _, err := grid.ParseMode(o.GridMode); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidGridMode, err, "grid mode option")
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForDerive validates and sets defaults for derivation.
func (o *Options) ValidateForDerive() error {
	if o.AntiPattern == "" {
		o.AntiPattern = AntiPatternRegular
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return ValidateAntiPattern(o.AntiPattern)
}

// ValidateForEncode validates and sets defaults for encoding.
func (o *Options) ValidateForEncode() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return ValidateFormats(o.Formats)
}

// RotationOptions converts the string-typed options into engine values.
func (o *Options) RotationOptions() placement.RotationOptions {
	opts := placement.RotationOptions{DashOverride: o.DashOverride}
	if o.AntiPattern == AntiPatternAlternate {
		opts.AntiPattern = placement.AntiAlternate
	}
	return opts
}

// SequenceKeyOpts returns cache key options for sequence loading.
func (o *Options) SequenceKeyOpts() cache.SequenceKeyOpts {
	return cache.SequenceKeyOpts{
		GridMode: o.GridMode,
	}
}

// PlacementKeyOpts returns cache key options for placement derivation.
func (o *Options) PlacementKeyOpts() cache.PlacementKeyOpts {
	return cache.PlacementKeyOpts{
		GridMode:     o.GridMode,
		AntiPattern:  o.AntiPattern,
		DashOverride: o.DashOverride,
		AdjustRef:    o.AdjustRef,
	}
}

// ArtifactKeyOpts returns cache key options for artifact encoding.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Pretty: o.Pretty,
	}
}

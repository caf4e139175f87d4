package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pictoplace/pictoplace/pkg/pipeline"
)

// placeOpts holds the command-line flags for the place command.
// These options control grid mode overrides, table selection, and output.
type placeOpts struct {
	gridMode     string   // override every beat's grid mode
	antiPattern  string   // "regular" or "alternate" anti rotation table
	adjust       string   // adjustment table path or URL
	dashOverride bool     // force dash placement onto the shift axis
	skipBeta     bool     // skip beta separation offsets
	formats      []string // output formats (json, csv)
	pretty       bool     // indent JSON output
	refresh      bool     // bypass cache reads
	noCache      bool     // disable the cache entirely
	output       string   // output file path (stdout if empty)
}

// pipelineOptions converts placeOpts into pipeline.Options.
func (o *placeOpts) pipelineOptions(manifest string) pipeline.Options {
	return pipeline.Options{
		Manifest:     manifest,
		GridMode:     o.gridMode,
		AntiPattern:  o.antiPattern,
		AdjustRef:    o.adjust,
		DashOverride: o.dashOverride,
		SkipBeta:     o.skipBeta,
		Formats:      o.formats,
		Pretty:       o.pretty,
		Refresh:      o.refresh,
	}
}

// newPlaceCmd creates the place command.
// It loads a sequence manifest, derives glyph placements for every beat,
// and writes the encoded artifacts.
//
// Default options:
//   - formats: json
//   - anti pattern: regular
//   - adjustment table: built-in defaults
func newPlaceCmd() *cobra.Command {
	opts := placeOpts{formats: []string{pipeline.FormatJSON}}

	cmd := &cobra.Command{
		Use:   "place <manifest>",
		Short: "Derive glyph placements for a sequence manifest",
		Long: `Derive glyph placements for a sequence manifest.

The manifest may be TOML or JSON; the format is detected from the file
extension.

Examples:
  pictoplace place sequence.toml                         # JSON to stdout
  pictoplace place sequence.toml -o out.json             # JSON to file
  pictoplace place sequence.toml -f json -f csv -o out   # out.json and out.csv
  pictoplace place sequence.toml --grid-mode box         # force box mode
  pictoplace place sequence.toml --adjust tables.toml    # custom adjustments`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlace(cmd, &opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.gridMode, "grid-mode", "", "override grid mode (diamond, box, full)")
	cmd.Flags().StringVar(&opts.antiPattern, "anti-pattern", "", "anti rotation table (regular, alternate)")
	cmd.Flags().StringVar(&opts.adjust, "adjust", "", "adjustment table file or URL")
	cmd.Flags().BoolVar(&opts.dashOverride, "dash-override", false, "force dash placement onto the shift axis")
	cmd.Flags().BoolVar(&opts.skipBeta, "skip-beta", false, "skip beta separation offsets")
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", opts.formats, "output formats (json, csv)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent JSON output")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching entirely")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runPlace executes the pipeline and writes the resulting artifacts.
func runPlace(cmd *cobra.Command, opts *placeOpts, manifest string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.output == "" && len(opts.formats) > 1 {
		return fmt.Errorf("multiple formats require --output")
	}

	runner, err := newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	logger.Infof("Placing %s", manifest)
	prog := newProgress(logger)

	result, err := runner.Execute(ctx, opts.pipelineOptions(manifest))
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Derived placements for %d beats", result.Stats.BeatCount))

	for _, format := range opts.formats {
		path := outputPath(opts.output, format, len(opts.formats) > 1)
		if err := writeArtifact(result.Artifacts[format], path); err != nil {
			return err
		}
		if path != "" {
			printFile(path)
		}
	}

	betaCount := 0
	for _, b := range result.Placements {
		if b.EndsBeta {
			betaCount++
		}
	}
	printStats(result.Stats.BeatCount, betaCount, result.CacheInfo.DeriveHit)

	if opts.output != "" {
		printNextStep("Inspect placements", fmt.Sprintf("%s inspect %s", appName, manifest))
	}
	return nil
}

// outputPath derives the file path for one format. With multiple formats
// the base path gets the format as its extension; a single format uses
// the base path unchanged.
func outputPath(base, format string, multi bool) string {
	if base == "" {
		return ""
	}
	if !multi {
		return base
	}
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "." + format
}

// writeArtifact writes data to path, or stdout if path is empty.
func writeArtifact(data []byte, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.Write(data)
	return err
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

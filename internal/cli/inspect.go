package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pictoplace/pictoplace/pkg/pipeline"
)

// newInspectCmd creates the inspect command, an interactive browser for
// derived placements. With --plain it prints every beat to stdout
// instead, which suits pipes and CI logs.
func newInspectCmd() *cobra.Command {
	opts := placeOpts{formats: []string{pipeline.FormatJSON}}
	var plain bool

	cmd := &cobra.Command{
		Use:   "inspect <manifest>",
		Short: "Browse derived placements beat by beat",
		Long: `Browse derived placements beat by beat in the terminal.

Examples:
  pictoplace inspect sequence.toml
  pictoplace inspect sequence.toml --grid-mode box
  pictoplace inspect sequence.toml --plain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, &opts, args[0], plain)
		},
	}

	cmd.Flags().StringVar(&opts.gridMode, "grid-mode", "", "override grid mode (diamond, box, full)")
	cmd.Flags().StringVar(&opts.antiPattern, "anti-pattern", "", "anti rotation table (regular, alternate)")
	cmd.Flags().StringVar(&opts.adjust, "adjust", "", "adjustment table file or URL")
	cmd.Flags().BoolVar(&opts.dashOverride, "dash-override", false, "force dash placement onto the shift axis")
	cmd.Flags().BoolVar(&opts.skipBeta, "skip-beta", false, "skip beta separation offsets")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching entirely")
	cmd.Flags().BoolVar(&plain, "plain", false, "print all beats instead of the interactive browser")

	return cmd
}

func runInspect(cmd *cobra.Command, opts *placeOpts, manifest string, plain bool) error {
	ctx := cmd.Context()

	runner, err := newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := newSpinnerWithContext(ctx, "Deriving placements")
	if !plain {
		spin.Start()
	}

	result, err := runner.Execute(ctx, opts.pipelineOptions(manifest))
	if !plain {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	if plain {
		for i, beat := range result.Placements {
			printKeyValue(fmt.Sprintf("beat %d", i+1), fmt.Sprintf("%s (%s)", beat.Letter, beat.GridMode))
			fmt.Println(renderBeatTable(beat))
			printNewline()
		}
		return nil
	}

	model := NewBeatModel(result.Sequence.Word, result.Placements)
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}

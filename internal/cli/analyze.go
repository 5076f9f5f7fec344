package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/treetop/pkg/config"
	terrors "github.com/matzehuels/treetop/pkg/errors"
	"github.com/matzehuels/treetop/pkg/pipeline"
	"github.com/matzehuels/treetop/pkg/report"
)

// analyzeFlags holds the command-line flags shared by the root and analyze
// commands. Empty strings defer to the config file.
type analyzeFlags struct {
	format      string // output format: "text" or "json"
	orientation string // scenic scan orientation: "natural" or "flipped"
	part        int    // 0 for both answers, or 1 / 2
	noCache     bool   // skip the result cache entirely
	refresh     bool   // recompute even when cached
	output      string // also write the JSON result to this file
}

func defaultAnalyzeFlags() *analyzeFlags {
	return &analyzeFlags{}
}

func bindAnalyzeFlags(cmd *cobra.Command, f *analyzeFlags) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: text or json (default from config, text)")
	cmd.Flags().StringVar(&f.orientation, "orientation", "", "scenic scan orientation: natural or flipped")
	cmd.Flags().IntVarP(&f.part, "part", "p", 0, "print only part 1 or part 2 (0 prints both)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even if a cached result exists")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "also write the JSON result to this file")
}

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	flags := defaultAnalyzeFlags()

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Count visible trees and find the best scenic score",
		Long: `Analyze a grid of tree heights and print both answers.

Examples:
  treetop analyze                  # reads input.txt
  treetop analyze grid.txt -p 2    # only the scenic score
  cat grid.txt | treetop analyze - --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd, inputArg(args), flags)
		},
	}

	bindAnalyzeFlags(cmd, flags)
	return cmd
}

func (c *CLI) runAnalyze(cmd *cobra.Command, path string, f *analyzeFlags) error {
	ctx := cmd.Context()

	format := f.format
	if format == "" {
		format = c.cfg.Output.Format
	}
	if err := config.ValidateFormat(format); err != nil {
		return err
	}
	orientation := f.orientation
	if orientation == "" {
		orientation = c.cfg.Analysis.Orientation
	}
	if f.part < 0 || f.part > 2 {
		return terrors.New(terrors.ErrCodeInvalidInput, "--part must be 0, 1 or 2, got %d", f.part)
	}

	data, source, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	runner := c.newRunner(ctx, f.noCache)
	defer runner.Close()

	prog := newProgress(c.Logger)
	res, err := runner.Execute(ctx, pipeline.Options{
		Input:       data,
		Source:      source,
		Orientation: orientation,
		Refresh:     f.refresh,
		TTL:         c.cfg.Cache.TTL.Duration,
		Logger:      c.Logger,
	})
	if err != nil {
		return err
	}
	if res.CacheHit {
		prog.done("Loaded cached result for " + source)
	} else {
		prog.done("Analyzed " + source)
	}

	if f.output != "" {
		if err := report.ExportJSON(res, f.output); err != nil {
			return err
		}
		c.Logger.Info("Wrote result", "path", f.output)
	}

	w := cmd.OutOrStdout()
	if format == config.FormatJSON {
		return report.WriteJSON(w, res)
	}
	return report.WriteText(w, res, f.part)
}

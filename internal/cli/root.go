package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/treetop/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Run without a subcommand, treetop analyzes a grid file (input.txt by
// default) and prints both answers.
func (c *CLI) RootCommand() *cobra.Command {
	flags := defaultAnalyzeFlags()

	root := &cobra.Command{
		Use:   "treetop [file]",
		Short: "Treetop finds visible trees and scenic spots in height grids",
		Long: `Treetop reads a grid of single-digit tree heights and reports:

  Part1  how many trees are visible from outside the grid
  Part2  the highest scenic score of any tree

The grid is read from input.txt unless a file (or "-" for stdin) is given.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd, inputArg(args), flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/treetop/config.toml)")
	bindAnalyzeFlags(root, flags)

	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.scoreCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return defaultInput
	}
	return args[0]
}

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treetop/pkg/forest"
	"github.com/matzehuels/treetop/pkg/report"
)

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Render the grid with hidden trees dimmed",
		Long: `Render the grid, highlighting trees visible from outside it and marking
the tree with the best scenic score.

With --plain, hidden trees are replaced by '.' and no styling is applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrid(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			visible := forest.VisiblePositions(g)
			if plain {
				return report.WriteGrid(cmd.OutOrStdout(), g, visible)
			}
			best, score := forest.BestScenic(g)
			renderGrid(cmd.OutOrStdout(), g, visible, best, score)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "unstyled output with hidden trees shown as '.'")
	return cmd
}

// renderGrid prints g styled by visibility followed by a stats line.
func renderGrid(w io.Writer, g forest.Grid, visible map[forest.Coord]struct{}, best forest.Coord, score int) {
	for r, row := range g {
		var b strings.Builder
		for col, h := range row {
			b.WriteString(treeStyle(forest.Coord{Row: r, Col: col}, visible, best, score).Render(strconv.Itoa(h)))
		}
		fmt.Fprintln(w, b.String())
	}
	fmt.Fprintln(w)
	printStats(w, g.Rows(), g.Cols(), len(visible), score)
}

func treeStyle(c forest.Coord, visible map[forest.Coord]struct{}, best forest.Coord, score int) lipgloss.Style {
	if score > 0 && c == best {
		return styleTreeBest
	}
	if _, ok := visible[c]; ok {
		return styleTreeVisible
	}
	return styleTreeHidden
}

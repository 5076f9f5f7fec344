package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	terrors "github.com/matzehuels/treetop/pkg/errors"
	"github.com/matzehuels/treetop/pkg/forest"
)

// scoreCommand creates the score command.
func (c *CLI) scoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <file> <row> <col>",
		Short: "Print the viewing distances and scenic score of one tree",
		Long: `Print how far one tree can see in each direction and its scenic score.

Rows and columns are zero-based, counted from the top-left corner.
Arguments after the file are never read as flags, so negative
coordinates are reported as out of range.

Example:
  treetop score input.txt 3 2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[1])
			if err != nil {
				return terrors.New(terrors.ErrCodeInvalidInput, "row %q is not a number", args[1])
			}
			col, err := strconv.Atoi(args[2])
			if err != nil {
				return terrors.New(terrors.ErrCodeInvalidInput, "col %q is not a number", args[2])
			}

			g, err := loadGrid(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			if err := terrors.ValidateCoordinate(row, col, g.Rows(), g.Cols()); err != nil {
				return err
			}

			at := forest.Coord{Row: row, Col: col}
			dists := forest.ViewingDistances(g, at)
			_, visible := forest.VisiblePositions(g)[at]

			w := cmd.OutOrStdout()
			printKeyValue(w, "tree", fmt.Sprintf("(%d, %d)", row, col))
			printKeyValue(w, "height", strconv.Itoa(g.At(at)))
			printKeyValue(w, "visible", strconv.FormatBool(visible))
			for d := forest.Left; d <= forest.Down; d++ {
				printKeyValue(w, d.String(), strconv.Itoa(dists[d]))
			}
			printKeyValue(w, "score", strconv.Itoa(forest.ScenicScore(g, at)))
			return nil
		},
	}

	// Keep "-1" positional once the file argument has been seen.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// exploreCommand creates the explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore <file>",
		Short: "Browse the grid interactively",
		Long: `Browse the grid tree by tree. The panel below the grid shows the viewing
distances and scenic score of the tree under the cursor.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrid(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(NewExploreModel(g),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}

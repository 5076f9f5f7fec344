package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/treetop/pkg/forest"
)

var exploreDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// ExploreModel - Interactive grid browser
// =============================================================================

// ExploreModel is the bubbletea model for browsing a grid tree by tree.
type ExploreModel struct {
	Grid      forest.Grid
	Visible   map[forest.Coord]struct{}
	Best      forest.Coord
	BestScore int
	Cursor    forest.Coord
}

// NewExploreModel creates an explore model with the cursor on the top-left tree.
func NewExploreModel(g forest.Grid) ExploreModel {
	best, score := forest.BestScenic(g)
	return ExploreModel{
		Grid:      g,
		Visible:   forest.VisiblePositions(g),
		Best:      best,
		BestScore: score,
	}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1, 0)
		case "down", "j":
			m.move(1, 0)
		case "left", "h":
			m.move(0, -1)
		case "right", "l":
			m.move(0, 1)
		case "b":
			m.Cursor = m.Best
		}
	}
	return m, nil
}

// move shifts the cursor, clamped to the grid.
func (m *ExploreModel) move(dr, dc int) {
	next := forest.Coord{Row: m.Cursor.Row + dr, Col: m.Cursor.Col + dc}
	if m.Grid.Contains(next) {
		m.Cursor = next
	}
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Explore Grid"))
	b.WriteString("\n")
	b.WriteString(exploreDimStyle.Render("arrows/hjkl: move  b: best spot  q: quit"))
	b.WriteString("\n\n")

	for r, row := range m.Grid {
		for c, h := range row {
			at := forest.Coord{Row: r, Col: c}
			style := treeStyle(at, m.Visible, m.Best, m.BestScore)
			if at == m.Cursor {
				style = style.Inherit(styleCursor)
			}
			b.WriteString(style.Render(strconv.Itoa(h)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.detailTable())
	b.WriteString("\n")
	b.WriteString(exploreDimStyle.Render(fmt.Sprintf("  best %d at (%d, %d)",
		m.BestScore, m.Best.Row, m.Best.Col)))

	return b.String()
}

// detailTable renders the viewing distances of the tree under the cursor.
func (m ExploreModel) detailTable() string {
	dists := forest.ViewingDistances(m.Grid, m.Cursor)
	_, visible := m.Visible[m.Cursor]

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Tree", "Height", "Visible", "Left", "Right", "Up", "Down", "Score").
		Row(
			fmt.Sprintf("(%d, %d)", m.Cursor.Row, m.Cursor.Col),
			strconv.Itoa(m.Grid.At(m.Cursor)),
			strconv.FormatBool(visible),
			strconv.Itoa(dists[forest.Left]),
			strconv.Itoa(dists[forest.Right]),
			strconv.Itoa(dists[forest.Up]),
			strconv.Itoa(dists[forest.Down]),
			strconv.Itoa(forest.ScenicScore(m.Grid, m.Cursor)),
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 7 {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return t.Render()
}

package forest

import (
	"strings"

	terrors "github.com/matzehuels/treetop/pkg/errors"
)

// MaxHeight is the tallest tree a grid can hold.
const MaxHeight = 9

// Grid is a rectangular, row-major matrix of tree heights.
type Grid [][]int

// Coord addresses one cell of a [Grid].
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Rows returns the number of rows in g.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns in g, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Contains reports whether c addresses a cell of g.
func (g Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows() && c.Col >= 0 && c.Col < g.Cols()
}

// At returns the height at c. It panics if c is outside g.
func (g Grid) At(c Coord) int { return g[c.Row][c.Col] }

// String renders g back to its text form.
func (g Grid) String() string {
	var b strings.Builder
	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, h := range row {
			b.WriteByte(byte('0' + h))
		}
	}
	return b.String()
}

// Parse converts text into a Grid.
// Surrounding whitespace (including blank leading and trailing lines) is
// ignored and Windows line endings are accepted. The result is non-empty and
// rectangular; otherwise an INVALID_GRID error names the offending line.
func Parse(text string) (Grid, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, terrors.New(terrors.ErrCodeInvalidGrid, "grid is empty")
	}

	lines := strings.Split(text, "\n")
	g := make(Grid, 0, len(lines))
	for i, line := range lines {
		row, err := ParseRow(strings.TrimSuffix(line, "\r"))
		if err != nil {
			return nil, terrors.New(terrors.ErrCodeInvalidGrid, "line %d: %s", i+1, terrors.UserMessage(err))
		}
		if len(row) == 0 {
			return nil, terrors.New(terrors.ErrCodeInvalidGrid, "line %d: row is empty", i+1)
		}
		if i > 0 && len(row) != len(g[0]) {
			return nil, terrors.New(terrors.ErrCodeInvalidGrid,
				"line %d: expected %d columns, got %d", i+1, len(g[0]), len(row))
		}
		g = append(g, row)
	}
	return g, nil
}

// ParseRow converts one line of digits into heights.
// The line is not trimmed; any non-digit character is an error.
func ParseRow(line string) ([]int, error) {
	row := make([]int, 0, len(line))
	for i, r := range line {
		if r < '0' || r > '9' {
			return nil, terrors.New(terrors.ErrCodeInvalidGrid, "column %d: %q is not a digit", i+1, r)
		}
		row = append(row, int(r-'0'))
	}
	return row, nil
}

// Transpose returns a new grid with rows and columns swapped, so that
// Transpose(g)[j][i] == g[i][j]. It returns nil if g is empty or jagged.
func Transpose(g Grid) Grid {
	if !rectangular(g) {
		return nil
	}
	out := make(Grid, g.Cols())
	for j := range out {
		out[j] = make([]int, g.Rows())
		for i := range g {
			out[j][i] = g[i][j]
		}
	}
	return out
}

// FlipVertical returns a new grid with the row order reversed, putting the
// last input line at row 0.
func FlipVertical(g Grid) Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[len(g)-1-i] = append([]int(nil), row...)
	}
	return out
}

func rectangular(g Grid) bool {
	if len(g) == 0 || len(g[0]) == 0 {
		return false
	}
	for _, row := range g[1:] {
		if len(row) != len(g[0]) {
			return false
		}
	}
	return true
}

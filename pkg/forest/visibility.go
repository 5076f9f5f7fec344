package forest

// VisibleIndices returns the positions in row that can be seen from either
// end. A position is visible when its height is strictly greater than every
// height before it in one of the two sweep directions, so both ends of a
// non-empty row are always included.
func VisibleIndices(row []int) map[int]struct{} {
	visible := make(map[int]struct{}, len(row))

	// -1 sits below every real height.
	tallest := -1
	for i, h := range row {
		if h > tallest {
			tallest = h
			visible[i] = struct{}{}
		}
	}

	tallest = -1
	for i := len(row) - 1; i >= 0; i-- {
		if h := row[i]; h > tallest {
			tallest = h
			visible[i] = struct{}{}
		}
	}
	return visible
}

// VisiblePositions returns every cell of g visible from outside the grid.
// Rows are scanned directly; columns are scanned as rows of the transposed
// grid and mapped back to (row, col).
func VisiblePositions(g Grid) map[Coord]struct{} {
	visible := make(map[Coord]struct{})
	for i, row := range g {
		for j := range VisibleIndices(row) {
			visible[Coord{Row: i, Col: j}] = struct{}{}
		}
	}
	for j, col := range Transpose(g) {
		for i := range VisibleIndices(col) {
			visible[Coord{Row: i, Col: j}] = struct{}{}
		}
	}
	return visible
}

// CountVisible parses text and returns the number of trees visible from
// outside the grid.
func CountVisible(text string) (int, error) {
	g, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return len(VisiblePositions(g)), nil
}

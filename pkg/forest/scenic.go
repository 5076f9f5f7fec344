package forest

// Direction is one of the four cardinal directions a tree can look in.
type Direction int

// Directions in the order [ViewingDistances] reports them.
const (
	Left Direction = iota
	Right
	Up
	Down
)

var steps = [...]Coord{
	Left:  {Row: 0, Col: -1},
	Right: {Row: 0, Col: 1},
	Up:    {Row: -1, Col: 0},
	Down:  {Row: 1, Col: 0},
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// ViewingDistance counts the trees seen from c looking in direction d.
// The walk stops at the grid edge or after the first tree at least as tall
// as the one at c, which is counted.
func ViewingDistance(g Grid, c Coord, d Direction) int {
	origin := g.At(c)
	step := steps[d]

	n := 0
	p := Coord{Row: c.Row + step.Row, Col: c.Col + step.Col}
	for g.Contains(p) {
		n++
		if g.At(p) >= origin {
			break
		}
		p.Row += step.Row
		p.Col += step.Col
	}
	return n
}

// ViewingDistances returns the viewing distances from c, indexed by
// [Direction].
func ViewingDistances(g Grid, c Coord) [4]int {
	var out [4]int
	for d := range steps {
		out[d] = ViewingDistance(g, c, Direction(d))
	}
	return out
}

// ScenicScore returns the product of the four viewing distances from c.
// Cells on the grid boundary always score 0.
func ScenicScore(g Grid, c Coord) int {
	score := 1
	for _, n := range ViewingDistances(g, c) {
		score *= n
	}
	return score
}

// BestScenic returns the highest scenic score in g and the first cell, in
// row-major order, that achieves it. A grid where every score is 0 reports
// (0,0).
func BestScenic(g Grid) (Coord, int) {
	var best Coord
	bestScore := 0
	for i := range g {
		for j := range g[i] {
			c := Coord{Row: i, Col: j}
			if s := ScenicScore(g, c); s > bestScore {
				best, bestScore = c, s
			}
		}
	}
	return best, bestScore
}

// MaxScenicScore parses text and returns the highest scenic score of any
// tree.
func MaxScenicScore(text string) (int, error) {
	g, err := Parse(text)
	if err != nil {
		return 0, err
	}
	_, score := BestScenic(g)
	return score, nil
}

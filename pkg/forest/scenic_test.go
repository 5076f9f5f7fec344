package forest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, text string) Grid {
	t.Helper()
	g, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", text, err)
	}
	return g
}

func TestViewingDistances(t *testing.T) {
	g := mustParse(t, sample)

	tests := []struct {
		at   Coord
		want [4]int
	}{
		{Coord{Row: 3, Col: 2}, [4]int{Left: 2, Right: 2, Up: 2, Down: 1}},
		{Coord{Row: 1, Col: 2}, [4]int{Left: 1, Right: 2, Up: 1, Down: 2}},
		{Coord{Row: 0, Col: 0}, [4]int{Left: 0, Right: 2, Up: 0, Down: 2}},
		{Coord{Row: 4, Col: 4}, [4]int{Left: 1, Right: 0, Up: 1, Down: 0}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ViewingDistances(g, tt.at)); diff != "" {
			t.Errorf("ViewingDistances(%v) mismatch (-want +got):\n%s", tt.at, diff)
		}
	}
}

func TestViewingDistanceCountsBlockingTree(t *testing.T) {
	g := mustParse(t, "35553")
	c := Coord{Row: 0, Col: 2}
	if got := ViewingDistance(g, c, Left); got != 1 {
		t.Errorf("ViewingDistance(left) = %d, want 1", got)
	}
	if got := ViewingDistance(g, c, Right); got != 1 {
		t.Errorf("ViewingDistance(right) = %d, want 1", got)
	}

	g = mustParse(t, "15321")
	if got := ViewingDistance(g, Coord{Row: 0, Col: 1}, Right); got != 3 {
		t.Errorf("ViewingDistance(right) = %d, want 3", got)
	}
}

func TestScenicScore(t *testing.T) {
	g := mustParse(t, sample)

	tests := []struct {
		name string
		grid Grid
		at   Coord
		want int
	}{
		{"best spot", g, Coord{Row: 3, Col: 2}, 8},
		{"upper middle", g, Coord{Row: 1, Col: 2}, 4},
		{"best spot flipped", FlipVertical(g), Coord{Row: 1, Col: 2}, 8},
		{"upper middle flipped", FlipVertical(g), Coord{Row: 3, Col: 2}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScenicScore(tt.grid, tt.at); got != tt.want {
				t.Errorf("ScenicScore(%v) = %d, want %d", tt.at, got, tt.want)
			}
		})
	}
}

func TestScenicScoreBoundaryIsZero(t *testing.T) {
	g := mustParse(t, sample)
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			if i != 0 && j != 0 && i != g.Rows()-1 && j != g.Cols()-1 {
				continue
			}
			c := Coord{Row: i, Col: j}
			if got := ScenicScore(g, c); got != 0 {
				t.Errorf("ScenicScore(%v) = %d, want 0", c, got)
			}
		}
	}
}

func TestBestScenic(t *testing.T) {
	tests := []struct {
		name      string
		grid      string
		wantAt    Coord
		wantScore int
	}{
		{"sample", sample, Coord{Row: 3, Col: 2}, 8},
		{"single tree", "7", Coord{}, 0},
		{"two by two", "00\n00", Coord{}, 0},
		{"single row", "12345", Coord{}, 0},
		{"flat 3x3", "000\n000\n000", Coord{Row: 1, Col: 1}, 1},
		{"tall center", "11111\n11111\n11911\n11111\n11111", Coord{Row: 2, Col: 2}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, score := BestScenic(mustParse(t, tt.grid))
			if at != tt.wantAt || score != tt.wantScore {
				t.Errorf("BestScenic() = (%v, %d), want (%v, %d)", at, score, tt.wantAt, tt.wantScore)
			}
		})
	}
}

func TestMaxScenicScore(t *testing.T) {
	got, err := MaxScenicScore(sample)
	if err != nil {
		t.Fatalf("MaxScenicScore() error = %v", err)
	}
	if got != 8 {
		t.Errorf("MaxScenicScore() = %d, want 8", got)
	}

	if _, err := MaxScenicScore("12\nab"); err == nil {
		t.Error("MaxScenicScore() with non-digit grid should fail")
	}
}

func TestMaxScenicScoreIgnoresOrientation(t *testing.T) {
	g := mustParse(t, sample)
	_, natural := BestScenic(g)
	_, flipped := BestScenic(FlipVertical(g))
	if natural != flipped {
		t.Errorf("best score natural = %d, flipped = %d", natural, flipped)
	}
}

func TestDirectionString(t *testing.T) {
	want := map[Direction]string{Left: "left", Right: "right", Up: "up", Down: "down", Direction(7): "unknown"}
	for d, s := range want {
		if d.String() != s {
			t.Errorf("Direction(%d).String() = %q, want %q", int(d), d.String(), s)
		}
	}
}

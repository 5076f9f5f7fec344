package forest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	terrors "github.com/matzehuels/treetop/pkg/errors"
)

const sample = `30373
25512
65332
33549
35390`

func TestParseRow(t *testing.T) {
	got, err := ParseRow("30373")
	if err != nil {
		t.Fatalf("ParseRow() error = %v", err)
	}
	if diff := cmp.Diff([]int{3, 0, 3, 7, 3}, got); diff != "" {
		t.Errorf("ParseRow() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRowRejectsNonDigits(t *testing.T) {
	for _, line := range []string{"12a4", " 123", "123 ", "1-2", "１２"} {
		if _, err := ParseRow(line); !terrors.Is(err, terrors.ErrCodeInvalidGrid) {
			t.Errorf("ParseRow(%q) error = %v, want INVALID_GRID", line, err)
		}
	}
}

func TestParse(t *testing.T) {
	want := Grid{
		{3, 0, 3, 7, 3},
		{2, 5, 5, 1, 2},
		{6, 5, 3, 3, 2},
		{3, 3, 5, 4, 9},
		{3, 5, 3, 9, 0},
	}

	tests := []struct {
		name  string
		input string
	}{
		{"plain", sample},
		{"trailing newline", sample + "\n"},
		{"surrounding blank lines", "\n\n" + sample + "\n\n\n"},
		{"crlf", "30373\r\n25512\r\n65332\r\n33549\r\n35390\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty", "", "grid is empty"},
		{"whitespace only", "\n \n\t\n", "grid is empty"},
		{"non-digit", "123\n1x3\n123", `line 2: column 2: 'x' is not a digit`},
		{"jagged", "123\n12\n123", "line 2: expected 3 columns, got 2"},
		{"blank interior line", "123\n\n123", "line 2: row is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !terrors.Is(err, terrors.ErrCodeInvalidGrid) {
				t.Errorf("Parse() code = %v, want %v", terrors.GetCode(err), terrors.ErrCodeInvalidGrid)
			}
			if got := terrors.UserMessage(err); got != tt.wantMsg {
				t.Errorf("Parse() message = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestGridString(t *testing.T) {
	g, err := Parse(sample + "\n")
	if err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != sample {
		t.Errorf("String() = %q, want %q", got, sample)
	}
}

func TestGridDimensions(t *testing.T) {
	g := Grid{{1, 2, 3}, {4, 5, 6}}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Errorf("dims = %dx%d, want 2x3", g.Rows(), g.Cols())
	}
	if (Grid{}).Cols() != 0 {
		t.Error("empty grid should have 0 columns")
	}

	for _, c := range []Coord{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		if g.Contains(c) {
			t.Errorf("Contains(%v) = true, want false", c)
		}
	}
	if !g.Contains(Coord{Row: 1, Col: 2}) {
		t.Error("Contains({1 2}) = false, want true")
	}
	if got := g.At(Coord{Row: 1, Col: 2}); got != 6 {
		t.Errorf("At({1 2}) = %d, want 6", got)
	}
}

func TestTranspose(t *testing.T) {
	input := Grid{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}
	want := Grid{{0, 1, 2}, {0, 1, 2}, {0, 1, 2}}
	if diff := cmp.Diff(want, Transpose(input)); diff != "" {
		t.Errorf("Transpose() mismatch (-want +got):\n%s", diff)
	}

	// Input must be left untouched.
	if diff := cmp.Diff(Grid{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}, input); diff != "" {
		t.Errorf("Transpose() mutated input (-want +got):\n%s", diff)
	}
}

func TestTransposeNonSquare(t *testing.T) {
	input := Grid{{1, 2, 3}, {4, 5, 6}}
	want := Grid{{1, 4}, {2, 5}, {3, 6}}
	got := Transpose(input)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Transpose() mismatch (-want +got):\n%s", diff)
	}
	if got.Rows() != input.Cols() || got.Cols() != input.Rows() {
		t.Errorf("Transpose() dims = %dx%d, want %dx%d", got.Rows(), got.Cols(), input.Cols(), input.Rows())
	}
}

func TestTransposeIsInvolution(t *testing.T) {
	grids := []string{sample, "7", "123456", "1\n2\n3", "12\n34\n56"}
	for _, text := range grids {
		g, err := Parse(text)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(g, Transpose(Transpose(g))); diff != "" {
			t.Errorf("Transpose(Transpose(%q)) mismatch (-want +got):\n%s", text, diff)
		}
	}
}

func TestTransposeRejectsMalformed(t *testing.T) {
	for name, g := range map[string]Grid{
		"nil":       nil,
		"empty row": {{}},
		"jagged":    {{1, 2}, {3}},
	} {
		if got := Transpose(g); got != nil {
			t.Errorf("Transpose(%s) = %v, want nil", name, got)
		}
	}
}

func TestFlipVertical(t *testing.T) {
	g := Grid{{1, 2}, {3, 4}, {5, 6}}
	want := Grid{{5, 6}, {3, 4}, {1, 2}}
	flipped := FlipVertical(g)
	if diff := cmp.Diff(want, flipped); diff != "" {
		t.Errorf("FlipVertical() mismatch (-want +got):\n%s", diff)
	}

	flipped[0][0] = 9
	if g[2][0] != 5 {
		t.Error("FlipVertical() result shares storage with input")
	}

	if diff := cmp.Diff(g, FlipVertical(FlipVertical(g))); diff != "" {
		t.Errorf("double flip mismatch (-want +got):\n%s", diff)
	}
}

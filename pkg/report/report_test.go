package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/treetop/pkg/forest"
	"github.com/matzehuels/treetop/pkg/pipeline"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		InputHash:   "abc",
		Rows:        5,
		Cols:        5,
		Orientation: "natural",
		Visible:     21,
		Scenic:      8,
		ScenicAt:    forest.Coord{Row: 3, Col: 2},
	}
}

func TestWriteText(t *testing.T) {
	tests := []struct {
		part int
		want string
	}{
		{0, "Part1: 21\nPart2: 8\n"},
		{1, "Part1: 21\n"},
		{2, "Part2: 8\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		if err := WriteText(&buf, sampleResult(), tt.part); err != nil {
			t.Fatalf("WriteText(part=%d) error = %v", tt.part, err)
		}
		if buf.String() != tt.want {
			t.Errorf("WriteText(part=%d) = %q, want %q", tt.part, buf.String(), tt.want)
		}
	}

	if err := WriteText(&bytes.Buffer{}, sampleResult(), 3); err == nil {
		t.Error("WriteText(part=3) should fail")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got["visible"] != float64(21) || got["scenic"] != float64(8) {
		t.Errorf("unexpected JSON: %s", buf.String())
	}
	at, _ := got["scenic_at"].(map[string]any)
	if at["row"] != float64(3) || at["col"] != float64(2) {
		t.Errorf("scenic_at = %v", got["scenic_at"])
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	if err := ExportJSON(sampleResult(), path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got pipeline.Result
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(*sampleResult(), got); diff != "" {
		t.Errorf("ExportJSON() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteGrid(t *testing.T) {
	g, err := forest.Parse("30373\n25512\n65332\n33549\n35390")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteGrid(&buf, g, forest.VisiblePositions(g)); err != nil {
		t.Fatal(err)
	}

	want := "30373\n255.2\n65.32\n3.5.9\n35390\n"
	if buf.String() != want {
		t.Errorf("WriteGrid() =\n%s\nwant\n%s", buf.String(), want)
	}
}

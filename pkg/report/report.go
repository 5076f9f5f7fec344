// Package report writes analysis results for humans and machines.
//
// [WriteText] prints the classic two-line answer:
//
//	Part1: 21
//	Part2: 8
//
// [WriteJSON] emits the full [pipeline.Result] as indented JSON, and
// [WriteGrid] draws a plain map of which trees are visible.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/treetop/pkg/forest"
	"github.com/matzehuels/treetop/pkg/pipeline"
)

// WriteText writes "PartN: value" lines. part 0 writes both parts; 1 or 2
// writes only that part.
func WriteText(w io.Writer, r *pipeline.Result, part int) error {
	parts := []int{1, 2}
	if part != 0 {
		parts = []int{part}
	}
	for _, n := range parts {
		v, ok := r.Part(n)
		if !ok {
			return fmt.Errorf("unknown part %d", n)
		}
		if _, err := fmt.Fprintf(w, "Part%d: %d\n", n, v); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON encodes r as indented JSON.
func WriteJSON(w io.Writer, r *pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes r to a JSON file at path.
func ExportJSON(r *pipeline.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, r)
}

// WriteGrid draws g with visible trees as their height digit and hidden
// trees as '.'.
func WriteGrid(w io.Writer, g forest.Grid, visible map[forest.Coord]struct{}) error {
	line := make([]byte, 0, g.Cols()+1)
	for i, row := range g {
		line = line[:0]
		for j, h := range row {
			if _, ok := visible[forest.Coord{Row: i, Col: j}]; ok {
				line = append(line, byte('0'+h))
			} else {
				line = append(line, '.')
			}
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

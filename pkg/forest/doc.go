// Package forest analyzes rectangular grids of tree heights.
//
// A grid is read from text with one row per line, each character a decimal
// digit giving the height (0-9) of one tree. Two metrics are computed over a
// grid:
//
//   - Visibility: how many trees can be seen from outside the grid looking
//     along a row or a column. A tree is visible when it is strictly taller
//     than every tree between it and some edge.
//   - Scenic score: for one tree, the product of its four viewing distances.
//     A viewing distance counts the trees seen in one direction up to and
//     including the first tree at least as tall as the viewer.
//
// # Usage
//
//	g, err := forest.Parse(input)
//	if err != nil {
//	    return err
//	}
//	visible := len(forest.VisiblePositions(g))
//	at, score := forest.BestScenic(g)
//
// The one-shot helpers [CountVisible] and [MaxScenicScore] parse and reduce in
// a single call.
//
// # Orientation
//
// Grids are indexed [row][col] with row 0 at the top of the input text.
// [FlipVertical] produces the bottom-up view; neither metric depends on the
// orientation, so callers are free to use either.
//
// All functions are pure and safe for concurrent use on shared grids.
package forest

package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/treetop/pkg/config"
	"github.com/matzehuels/treetop/pkg/forest"
	"github.com/matzehuels/treetop/pkg/observability"
)

func parseStage(ctx context.Context, opts Options, stats *Stats) (forest.Grid, error) {
	hooks := observability.Analysis()
	hooks.OnParseStart(ctx, opts.Source)

	start := time.Now()
	g, err := forest.Parse(string(opts.Input))
	stats.ParseTime = time.Since(start)

	hooks.OnParseComplete(ctx, opts.Source, g.Rows(), g.Cols(), stats.ParseTime, err)
	return g, err
}

func visibilityStage(ctx context.Context, g forest.Grid, stats *Stats) int {
	start := time.Now()
	visible := len(forest.VisiblePositions(g))
	stats.VisibilityTime = time.Since(start)

	observability.Analysis().OnVisibilityComplete(ctx, visible, stats.VisibilityTime)
	return visible
}

// scenicStage finds the best scenic spot, scanning the grid in the given
// orientation. The returned coordinate is always in natural orientation.
func scenicStage(ctx context.Context, g forest.Grid, orientation string, stats *Stats) (forest.Coord, int) {
	start := time.Now()
	var (
		at    forest.Coord
		score int
	)
	if orientation == config.OrientationFlipped {
		at, score = forest.BestScenic(forest.FlipVertical(g))
		if score > 0 {
			at.Row = g.Rows() - 1 - at.Row
		}
	} else {
		at, score = forest.BestScenic(g)
	}
	stats.ScenicTime = time.Since(start)

	observability.Analysis().OnScenicComplete(ctx, score, stats.ScenicTime)
	return at, score
}

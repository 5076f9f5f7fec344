// Package pipeline runs the complete grid analysis for treetop.
//
// Every entry point (the CLI, the HTTP API) goes through a [Runner], which
// parses the grid, computes both metrics and caches the result keyed by the
// content hash of the input. Centralizing this keeps the stages, logging,
// hooks and caching identical across entry points.
//
// # Stages
//
//  1. Parse: text to [forest.Grid]
//  2. Visibility: count trees visible from outside the grid
//  3. Scenic: find the highest scenic score and where it occurs
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  data,
//	    Source: "input.txt",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Visible, result.Scenic)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treetop/pkg/cache"
	"github.com/matzehuels/treetop/pkg/config"
	"github.com/matzehuels/treetop/pkg/forest"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSource labels input that did not come from a named file.
	DefaultSource = "input"

	// DefaultOrientation is the orientation used when none is given.
	DefaultOrientation = config.OrientationNatural

	// DefaultTTL is how long results stay cached.
	DefaultTTL = 24 * time.Hour
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one analysis run.
type Options struct {
	// Input is the raw grid text.
	Input []byte `json:"-"`

	// Source names the input in logs and hooks (a path, "stdin", ...).
	Source string `json:"source,omitempty"`

	// Orientation selects how the scenic scan sees the grid: "natural"
	// (top row first) or "flipped" (bottom row first). Both give the same
	// metrics; coordinates in the result are always reported in natural
	// orientation.
	Orientation string `json:"orientation,omitempty"`

	// Refresh skips the cache lookup; the fresh result is still stored.
	Refresh bool `json:"refresh,omitempty"`

	// TTL is the cache lifetime of the result.
	TTL time.Duration `json:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Source == "" {
		o.Source = DefaultSource
	}
	if o.Orientation == "" {
		o.Orientation = DefaultOrientation
	}
	if err := config.ValidateOrientation(o.Orientation); err != nil {
		return err
	}
	if o.TTL == 0 {
		o.TTL = DefaultTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// keyOpts returns the cache key options for this run.
func (o *Options) keyOpts() cache.ResultKeyOpts {
	return cache.ResultKeyOpts{Orientation: o.Orientation}
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// InputHash is the SHA-256 of the input text.
	InputHash string `json:"input_hash"`

	// Rows and Cols are the grid dimensions.
	Rows int `json:"rows"`
	Cols int `json:"cols"`

	// Orientation is the orientation the scenic scan used.
	Orientation string `json:"orientation"`

	// Visible is the number of trees visible from outside the grid.
	Visible int `json:"visible"`

	// Scenic is the highest scenic score, achieved at ScenicAt.
	Scenic   int          `json:"scenic"`
	ScenicAt forest.Coord `json:"scenic_at"`

	// Stats contains timing information of the run that computed the
	// result (not of a cache lookup).
	Stats Stats `json:"stats"`

	// CacheHit reports whether the result came from the cache.
	CacheHit bool `json:"cache_hit"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ParseTime      time.Duration `json:"parse_ns"`
	VisibilityTime time.Duration `json:"visibility_ns"`
	ScenicTime     time.Duration `json:"scenic_ns"`
}

// Part returns the answer to part 1 (visible count) or part 2 (best scenic
// score). Any other part returns false.
func (r *Result) Part(n int) (int, bool) {
	switch n {
	case 1:
		return r.Visible, true
	case 2:
		return r.Scenic, true
	}
	return 0, false
}

package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treetop/pkg/cache"
	"github.com/matzehuels/treetop/pkg/observability"
)

// cacheKeyType labels result entries in cache hooks.
const cacheKeyType = "result"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can safely share one Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs parse → visibility → scenic with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	inputHash := cache.Hash(opts.Input)
	key := r.Keyer.ResultKey(inputHash, opts.keyOpts())

	if !opts.Refresh {
		if res, ok := r.lookup(ctx, key); ok {
			r.Logger.Debug("using cached result", "source", opts.Source, "hash", inputHash[:12])
			return res, nil
		}
	}

	result := &Result{InputHash: inputHash, Orientation: opts.Orientation}

	// Stage 1: Parse
	g, err := parseStage(ctx, opts, &result.Stats)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", opts.Source, err)
	}
	result.Rows, result.Cols = g.Rows(), g.Cols()
	r.Logger.Debug("parsed grid",
		"source", opts.Source,
		"rows", result.Rows,
		"cols", result.Cols,
		"duration", result.Stats.ParseTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Visibility
	result.Visible = visibilityStage(ctx, g, &result.Stats)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Scenic
	result.ScenicAt, result.Scenic = scenicStage(ctx, g, opts.Orientation, &result.Stats)

	r.Logger.Debug("analyzed grid",
		"source", opts.Source,
		"visible", result.Visible,
		"scenic", result.Scenic,
		"duration", result.Stats.total())

	r.store(ctx, key, result, opts.TTL)
	return result, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

func (r *Runner) lookup(ctx context.Context, key string) (*Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}

	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		// Undecodable entries are recomputed and overwritten.
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, cacheKeyType)
	res.CacheHit = true
	return &res, true
}

func (r *Runner) store(ctx context.Context, key string, res *Result, ttl time.Duration) {
	data, err := json.Marshal(res)
	if err != nil {
		r.Logger.Warn("encode result for cache", "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
}

func (s Stats) total() time.Duration {
	return s.ParseTime + s.VisibilityTime + s.ScenicTime
}

package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treetop/pkg/cache"
	"github.com/matzehuels/treetop/pkg/config"
	"github.com/matzehuels/treetop/pkg/observability"
	"github.com/matzehuels/treetop/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// defaultInput is the grid file read when none is given.
	defaultInput = "input.txt"

	// stdinPath reads the grid from standard input.
	stdinPath = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the config file selected by --config (or the default
// location) and, at debug level, routes observability events to the logger.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if c.Logger.GetLevel() <= log.DebugLevel {
		hooks := observability.NewLogHooks(c.Logger)
		observability.SetAnalysisHooks(hooks)
		observability.SetCacheHooks(hooks)
		observability.SetHTTPHooks(hooks)
	}
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(c.newCache(ctx, noCache), nil, c.Logger)
}

// newCache opens the configured cache backend. The cache only saves work,
// so a backend that cannot be opened degrades to no caching.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}

	switch c.cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache()
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, c.cfg.Cache.RedisAddr)
		if err != nil {
			c.Logger.Warn("Redis cache unavailable, caching disabled", "err", err)
			return cache.NewNullCache()
		}
		return rc
	default:
		fc, err := c.fileCache()
		if err != nil {
			c.Logger.Warn("File cache unavailable, caching disabled", "err", err)
			return cache.NewNullCache()
		}
		return fc
	}
}

func (c *CLI) fileCache() (*cache.FileCache, error) {
	dir, err := c.cfg.CacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}

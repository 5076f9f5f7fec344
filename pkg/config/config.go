// Package config loads treetop settings from a TOML file.
//
// All settings are optional; [Default] describes the behavior with no file.
// The default location follows the XDG base directory spec:
//
//	$XDG_CONFIG_HOME/treetop/config.toml
//	~/.config/treetop/config.toml
//
// Example file:
//
//	[cache]
//	backend = "redis"
//	redis_addr = "cache.internal:6379"
//	ttl = "168h"
//
//	[output]
//	format = "json"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	terrors "github.com/matzehuels/treetop/pkg/errors"
)

const appName = "treetop"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Grid orientations.
const (
	OrientationNatural = "natural"
	OrientationFlipped = "flipped"
)

// Config is the full set of user settings.
type Config struct {
	Cache    CacheConfig    `toml:"cache"`
	Output   OutputConfig   `toml:"output"`
	Analysis AnalysisConfig `toml:"analysis"`
	Server   ServerConfig   `toml:"server"`
}

// CacheConfig selects and tunes the result cache.
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	TTL       Duration `toml:"ttl"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `toml:"format"`
}

// AnalysisConfig controls how grids are analyzed.
type AnalysisConfig struct {
	Orientation string `toml:"orientation"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration that decodes from strings such as "24h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
			TTL:       Duration{24 * time.Hour},
		},
		Output:   OutputConfig{Format: FormatText},
		Analysis: AnalysisConfig{Orientation: OrientationNatural},
		Server:   ServerConfig{Addr: ":8080"},
	}
}

// Load reads the file at path on top of [Default].
// An empty path loads [DefaultPath] and tolerates its absence; an explicit
// path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	_, err := toml.DecodeFile(path, &cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return cfg, nil
	case errors.Is(err, fs.ErrNotExist):
		return cfg, terrors.Wrap(terrors.ErrCodeFileNotFound, err, "config file %s", path)
	case err != nil:
		return cfg, terrors.Wrap(terrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects unknown enum values and negative durations.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return terrors.New(terrors.ErrCodeInvalidConfig, "cache.backend: unknown backend %q (must be file, redis or none)", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		return terrors.New(terrors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
	}
	if c.Cache.TTL.Duration < 0 {
		return terrors.New(terrors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	if err := ValidateFormat(c.Output.Format); err != nil {
		return terrors.Wrap(terrors.ErrCodeInvalidConfig, err, "output.format")
	}
	if err := ValidateOrientation(c.Analysis.Orientation); err != nil {
		return terrors.Wrap(terrors.ErrCodeInvalidConfig, err, "analysis.orientation")
	}
	return nil
}

// ValidateFormat checks that format is a known output format.
func ValidateFormat(format string) error {
	if format != FormatText && format != FormatJSON {
		return terrors.New(terrors.ErrCodeInvalidFormat, "invalid format %q (must be text or json)", format)
	}
	return nil
}

// ValidateOrientation checks that o is a known grid orientation.
func ValidateOrientation(o string) error {
	if o != OrientationNatural && o != OrientationFlipped {
		return terrors.New(terrors.ErrCodeInvalidInput, "invalid orientation %q (must be natural or flipped)", o)
	}
	return nil
}

// DefaultPath returns the XDG config file location.
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the file cache directory: the configured dir, else
// $XDG_CACHE_HOME/treetop, else ~/.cache/treetop.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

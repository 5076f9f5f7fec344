// Package cache stores computed analysis results keyed by input content.
//
// Results are immutable for a given grid and orientation, so the cache is a
// plain byte store with optional expiry. Three backends are provided:
//
//   - [FileCache]: JSON entry files under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP API
//   - [NullCache]: never stores anything, for --no-cache and tests
//
// Keys are produced by a [Keyer] so that every entry point derives the same
// key for the same grid.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	// Expired or unreadable entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// ResultKey returns the key of an analysis result for the grid whose
	// content hash is inputHash, computed in the given orientation.
	ResultKey(inputHash string, opts ResultKeyOpts) string
}

// ResultKeyOpts holds the options that change an analysis result.
type ResultKeyOpts struct {
	Orientation string `json:"orientation"`
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer creates a keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey returns "result:<sha256(inputHash, opts)>".
func (DefaultKeyer) ResultKey(inputHash string, opts ResultKeyOpts) string {
	return hashKey("result", inputHash, opts)
}

// Package cache stores benchmark results between runs.
//
// Measuring large sizes takes minutes, so the benchmark runner caches each
// row keyed by everything that influences it. Three backends implement
// [Cache]:
//   - [FileCache]: one JSON file per entry under the user cache directory
//   - [RedisCache]: a shared redis instance, for teams comparing machines
//   - [NullCache]: caching disabled
//
// Keys are produced by a [Keyer]; [ScopedKeyer] adds a prefix such as a
// machine fingerprint so results from different hosts never mix.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys.
type Keyer interface {
	// BenchKey generates a key for one measured benchmark row.
	BenchKey(n int, opts BenchKeyOpts) string
}

// BenchKeyOpts holds the inputs besides n that change a benchmark row.
type BenchKeyOpts struct {
	Reference string `json:"reference"`
	Workers   int    `json:"workers"`
	Version   string `json:"version"`
}

// DefaultKeyer keeps n readable and digests the remaining inputs with
// SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// BenchKey returns "bench:n=<n>:<digest of opts>".
func (k *DefaultKeyer) BenchKey(n int, opts BenchKeyOpts) string {
	return benchKey("bench", n, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)

// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about benchmark runs and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, which keeps package bench
// free of any particular backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBenchHooks(&myBenchHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Bench().OnRunStart(ctx, "engine", n)
//	// ... enumerate ...
//	observability.Bench().OnRunComplete(ctx, "engine", n, count, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Bench Hooks
// =============================================================================

// BenchHooks receives events from benchmark measurements.
type BenchHooks interface {
	// OnRunStart fires before a generator enumerates size n.
	OnRunStart(ctx context.Context, generator string, n int)

	// OnRunComplete fires after a generator finished or failed.
	OnRunComplete(ctx context.Context, generator string, n int, count uint64, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopBenchHooks is a no-op implementation of BenchHooks.
type NoopBenchHooks struct{}

func (NoopBenchHooks) OnRunStart(context.Context, string, int) {}
func (NoopBenchHooks) OnRunComplete(context.Context, string, int, uint64, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	benchHooks BenchHooks = NoopBenchHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetBenchHooks registers custom benchmark hooks.
// This should be called once at application startup.
func SetBenchHooks(h BenchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		benchHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Bench returns the registered benchmark hooks.
func Bench() BenchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return benchHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	benchHooks = NoopBenchHooks{}
	cacheHooks = NoopCacheHooks{}
}

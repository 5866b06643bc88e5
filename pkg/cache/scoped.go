package cache

import (
	"fmt"
	"runtime"
)

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Benchmark timings only compare within one machine, so the CLI scopes keys
// by [MachineScope] when results go to a shared backend.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), MachineScope())
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// BenchKey generates a prefixed key for a benchmark row.
func (k *ScopedKeyer) BenchKey(n int, opts BenchKeyOpts) string {
	return k.prefix + k.inner.BenchKey(n, opts)
}

// MachineScope returns a key prefix identifying the OS, architecture and
// CPU count of the running process, e.g. "linux/amd64/8:".
func MachineScope() string {
	return fmt.Sprintf("%s/%s/%d:", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
}

package bench

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/permpro/pkg/cache"
	"github.com/matzehuels/permpro/pkg/observability"
)

// recordingCacheHooks counts cache events.
type recordingCacheHooks struct {
	mu                sync.Mutex
	hits, misses, set int
}

func (h *recordingCacheHooks) OnCacheHit(context.Context, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hits++
}

func (h *recordingCacheHooks) OnCacheMiss(context.Context, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.misses++
}

func (h *recordingCacheHooks) OnCacheSet(context.Context, string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.set++
}

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	return NewRunner(c, nil, log.New(io.Discard))
}

func TestNewRunner_Defaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	assert.NotNil(t, r.Cache)
	assert.NotNil(t, r.Keyer)
	assert.NotNil(t, r.Logger)
}

func TestRunner_Execute(t *testing.T) {
	hooks := &recordingCacheHooks{}
	observability.SetCacheHooks(hooks)
	t.Cleanup(observability.Reset)

	r := newTestRunner(t)
	ctx := context.Background()
	opts := Options{From: 3, To: 6, Workers: 2}

	first, err := r.Execute(ctx, opts)
	require.NoError(t, err)
	require.Len(t, first.Rows, 4)
	assert.Zero(t, first.CacheHits)
	assert.Equal(t, GeneratorHeap, first.Reference)
	assert.Equal(t, 2, first.Workers)
	_, err = uuid.Parse(first.RunID)
	assert.NoError(t, err)
	for i, row := range first.Rows {
		assert.Equal(t, 3+i, row.N)
		assert.Equal(t, checksum(row.N), row.Checksum)
	}
	assert.Equal(t, 4, hooks.misses)
	assert.Equal(t, 4, hooks.set)

	second, err := r.Execute(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, 4, second.CacheHits)
	assert.Equal(t, first.Rows, second.Rows)
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, 4, hooks.hits)
}

func TestRunner_Refresh(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	_, err := r.Execute(ctx, Options{From: 4, To: 5})
	require.NoError(t, err)

	report, err := r.Execute(ctx, Options{From: 4, To: 5, Refresh: true})
	require.NoError(t, err)
	assert.Zero(t, report.CacheHits)
}

func TestRunner_KeyIncludesWorkers(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	_, err := r.Execute(ctx, Options{From: 4, To: 4, Workers: 1})
	require.NoError(t, err)

	report, err := r.Execute(ctx, Options{From: 4, To: 4, Workers: 3})
	require.NoError(t, err)
	assert.Zero(t, report.CacheHits, "different worker counts must not share cached rows")
}

func TestRunner_NullCache(t *testing.T) {
	r := NewRunner(cache.NewNullCache(), nil, log.New(io.Discard))
	ctx := context.Background()

	for range 2 {
		report, err := r.Execute(ctx, Options{From: 2, To: 3})
		require.NoError(t, err)
		assert.Zero(t, report.CacheHits)
	}
}

func TestRunner_InvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, log.New(io.Discard))
	_, err := r.Execute(context.Background(), Options{From: 5, To: 2})
	assert.Error(t, err)
}

func TestRunner_Canceled(t *testing.T) {
	r := NewRunner(nil, nil, log.New(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Execute(ctx, Options{From: 9, To: 9})
	assert.ErrorIs(t, err, context.Canceled)
}

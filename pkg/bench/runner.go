package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/permpro/pkg/buildinfo"
	"github.com/matzehuels/permpro/pkg/cache"
	"github.com/matzehuels/permpro/pkg/observability"
)

// keyTypeBench labels cache events emitted by the runner.
const keyTypeBench = "bench"

// Report is the outcome of a benchmark run.
type Report struct {
	RunID     string    `json:"run_id" yaml:"run_id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Reference string    `json:"reference" yaml:"reference"`
	Workers   int       `json:"workers" yaml:"workers"`
	Rows      []Row     `json:"rows" yaml:"rows"`

	// CacheHits counts rows served from the cache.
	CacheHits int `json:"cache_hits" yaml:"cache_hits"`
}

// Runner executes benchmark runs with caching.
//
// The Runner is stateless except for the cache and logger, so one Runner
// can serve several runs with different options. Runs themselves are
// sequential: timing two sizes at once would skew both.
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

// Execute measures every size in [opts.From, opts.To].
func (r *Runner) Execute(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	report := &Report{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Reference: opts.Reference,
		Workers:   opts.Workers,
		Rows:      make([]Row, 0, opts.To-opts.From+1),
	}

	for n := opts.From; n <= opts.To; n++ {
		row, hit, err := r.MeasureWithCacheInfo(ctx, n, opts)
		if err != nil {
			return nil, fmt.Errorf("n=%d: %w", n, err)
		}
		if hit {
			report.CacheHits++
		}
		report.Rows = append(report.Rows, row)

		r.Logger.Debug("measured",
			"n", n,
			"reference", row.Reference.Round(time.Microsecond),
			"engine", row.Engine.Round(time.Microsecond),
			"speedup", fmt.Sprintf("%.2fx", row.Speedup),
			"cached", hit)
	}
	return report, nil
}

// MeasureWithCacheInfo measures size n with caching and reports whether the
// row came from the cache.
func (r *Runner) MeasureWithCacheInfo(ctx context.Context, n int, opts Options) (Row, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return Row{}, false, err
	}
	reference, err := Reference(opts.Reference)
	if err != nil {
		return Row{}, false, err
	}

	key := r.Keyer.BenchKey(n, cache.BenchKeyOpts{
		Reference: opts.Reference,
		Workers:   opts.Workers,
		Version:   buildinfo.Version,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var row Row
			if err := json.Unmarshal(data, &row); err == nil && row.N == n {
				observability.Cache().OnCacheHit(ctx, keyTypeBench)
				return row, true, nil
			}
		} else if err != nil {
			r.Logger.Warn("cache read failed", "n", n, "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeBench)
	}

	r.Logger.Debug("measuring", "n", n, "reference", reference.Name(), "workers", opts.Workers)
	row, err := Measure(ctx, n, reference, EngineGenerator{Workers: opts.Workers})
	if err != nil {
		return Row{}, false, err
	}

	if data, err := json.Marshal(row); err == nil {
		if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
			r.Logger.Warn("cache write failed", "n", n, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeBench, len(data))
		}
	}
	return row, false, nil
}

package bench

import (
	"context"
	"time"

	"github.com/matzehuels/permpro/pkg/errors"
	"github.com/matzehuels/permpro/pkg/observability"
	"github.com/matzehuels/permpro/pkg/perm"
)

// Row is one line of a benchmark report.
type Row struct {
	N         int           `json:"n" yaml:"n"`
	Total     uint64        `json:"total" yaml:"total"`
	Reference time.Duration `json:"reference_ns" yaml:"reference_ns"`
	Engine    time.Duration `json:"engine_ns" yaml:"engine_ns"`
	Speedup   float64       `json:"speedup" yaml:"speedup"`
	Checksum  uint64        `json:"checksum" yaml:"checksum"`
}

// speedup returns reference time divided by engine time, or 0 when the
// engine time is not measurable.
func speedup(reference, engine time.Duration) float64 {
	if engine <= 0 {
		return 0
	}
	return reference.Seconds() / engine.Seconds()
}

// Measure fully consumes reference and engine for size n and times each.
//
// Both generators must emit exactly n! permutations; anything else is an
// [errors.ErrCodeInternal] error. A mismatching checksum is reported the same
// way, since both enumerate the same set.
func Measure(ctx context.Context, n int, reference, engine Generator) (Row, error) {
	if n < 1 {
		return Row{}, errors.New(errors.ErrCodeInvalidArgument, "benchmark size must be at least 1, got %d", n)
	}
	want := perm.Count(n)

	ref, refTime, err := timed(ctx, reference, n)
	if err != nil {
		return Row{}, err
	}
	eng, engTime, err := timed(ctx, engine, n)
	if err != nil {
		return Row{}, err
	}

	for _, r := range []struct {
		name string
		res  Result
	}{{reference.Name(), ref}, {engine.Name(), eng}} {
		if r.res.Count != want {
			return Row{}, errors.New(errors.ErrCodeInternal, "%s emitted %d permutations for n=%d, want %d", r.name, r.res.Count, n, want)
		}
	}
	if ref.Checksum != eng.Checksum {
		return Row{}, errors.New(errors.ErrCodeInternal, "checksum mismatch for n=%d: %s %d, %s %d",
			n, reference.Name(), ref.Checksum, engine.Name(), eng.Checksum)
	}

	return Row{
		N:         n,
		Total:     want,
		Reference: refTime,
		Engine:    engTime,
		Speedup:   speedup(refTime, engTime),
		Checksum:  eng.Checksum,
	}, nil
}

// timed runs g for size n and reports the elapsed wall-clock time.
func timed(ctx context.Context, g Generator, n int) (Result, time.Duration, error) {
	hooks := observability.Bench()
	hooks.OnRunStart(ctx, g.Name(), n)

	start := time.Now()
	res, err := g.Run(ctx, n)
	elapsed := time.Since(start)

	hooks.OnRunComplete(ctx, g.Name(), n, res.Count, elapsed, err)
	return res, elapsed, err
}

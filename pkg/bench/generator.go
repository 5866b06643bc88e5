package bench

import (
	"context"
	"iter"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/permpro/pkg/errors"
	"github.com/matzehuels/permpro/pkg/perm"
)

// Generator names.
const (
	GeneratorEngine = "engine"
	GeneratorHeap   = "heap"
)

// cancelCheckMask sets how often long enumerations poll the context.
const cancelCheckMask = 1<<16 - 1

// Result summarizes one full enumeration.
type Result struct {
	// Count is the number of permutations emitted.
	Count uint64 `json:"count" yaml:"count"`

	// Checksum sums the last element of every permutation so the
	// enumeration has an observable result.
	Checksum uint64 `json:"checksum" yaml:"checksum"`
}

// add merges partial results from partitions.
func (r *Result) add(o Result) {
	r.Count += o.Count
	r.Checksum += o.Checksum
}

// Generator enumerates every permutation of size n once.
type Generator interface {
	Name() string
	Run(ctx context.Context, n int) (Result, error)
}

// EngineGenerator drives perm.Engine. With Workers > 1 the space is split
// with perm.Partition and the partitions run concurrently.
type EngineGenerator struct {
	Workers int
}

// Name returns "engine".
func (g EngineGenerator) Name() string { return GeneratorEngine }

// Run enumerates all permutations of size n.
func (g EngineGenerator) Run(ctx context.Context, n int) (Result, error) {
	if g.Workers <= 1 {
		e, err := perm.New(n)
		if err != nil {
			return Result{}, err
		}
		return consume(ctx, e.All())
	}

	engines, err := perm.Partition(n, perm.PartitionDepth(n, g.Workers))
	if err != nil {
		return Result{}, err
	}

	results := make([]Result, len(engines))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.Workers)
	for i, e := range engines {
		eg.Go(func() error {
			r, err := consume(ctx, e.All())
			results[i] = r
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	var total Result
	for _, r := range results {
		total.add(r)
	}
	return total, nil
}

// HeapGenerator is the reference generator based on Heap's algorithm.
type HeapGenerator struct{}

// Name returns "heap".
func (HeapGenerator) Name() string { return GeneratorHeap }

// Run enumerates all permutations of size n.
func (HeapGenerator) Run(ctx context.Context, n int) (Result, error) {
	if err := errors.ValidateSize(n); err != nil {
		return Result{}, err
	}
	return consume(ctx, perm.Heap(n))
}

// consume drains seq, polling ctx every few thousand permutations.
func consume(ctx context.Context, seq iter.Seq[[]int]) (Result, error) {
	var r Result
	var err error
	for p := range seq {
		r.Count++
		r.Checksum += uint64(p[len(p)-1])
		if r.Count&cancelCheckMask == 0 {
			if err = ctx.Err(); err != nil {
				break
			}
		}
	}
	if err == nil {
		err = ctx.Err()
	}
	return r, err
}

var references = map[string]Generator{
	GeneratorHeap: HeapGenerator{},
}

// Reference returns the reference generator registered under name.
func Reference(name string) (Generator, error) {
	g, ok := references[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "unknown reference generator %q (available: %v)", name, ReferenceNames())
	}
	return g, nil
}

// ReferenceNames lists the registered reference generators.
func ReferenceNames() []string {
	names := make([]string, 0, len(references))
	for name := range references {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

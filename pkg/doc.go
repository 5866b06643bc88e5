// Package pkg provides the core libraries for permpro permutation enumeration.
//
// # Overview
//
// Permpro enumerates every permutation of [0, n) with a factorial-counter
// engine. The engine keeps its working buffer in sync with a counter in the
// factorial number system and produces each permutation by planting the
// sentinel n-1 at one position, so the innermost loop costs two element
// writes per permutation. The pkg directory is organized into:
//
//  1. [perm] - The engine, partitions for parallel runs, and Heap's algorithm
//  2. [bench] - Benchmark harness comparing the engine with a reference
//  3. [cache] - Result cache backends for measured benchmark rows
//  4. [errors] - Structured error codes and validators
//  5. [observability] - Hooks for bench and cache events
//
// # Architecture
//
// The typical data flow of a benchmark run:
//
//	bench.Options (flags + permpro.toml)
//	         ↓
//	    [bench] Runner (cache lookup per size)
//	         ↓
//	    [perm] Engine / Partition vs. perm.Heap
//	         ↓
//	    markdown / plain / JSON / YAML report
//
// # Quick Start
//
// Enumerate permutations:
//
//	e, _ := perm.New(4)
//	for p := range e.All() {
//	    fmt.Println(p) // p is overwritten on the next step
//	}
//
// Split the space across goroutines:
//
//	engines, _ := perm.Partition(10, perm.PartitionDepth(10, 4))
//	for _, e := range engines {
//	    go drain(e)
//	}
//
// Benchmark against Heap's algorithm:
//
//	runner := bench.NewRunner(nil, nil, logger)
//	report, _ := runner.Execute(ctx, bench.Options{From: 10, To: 12})
//	bench.WriteMarkdown(os.Stdout, report)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test -run Example ./pkg/perm      # Examples only
//	go test -bench . ./pkg/perm          # Engine vs. Heap micro-benchmarks
//	go test -tags integration ./pkg/...  # Include redis integration tests
//
// [perm]: https://pkg.go.dev/github.com/matzehuels/permpro/pkg/perm
// [bench]: https://pkg.go.dev/github.com/matzehuels/permpro/pkg/bench
// [cache]: https://pkg.go.dev/github.com/matzehuels/permpro/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/permpro/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/permpro/pkg/observability
package pkg

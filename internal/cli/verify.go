package cli

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/permpro/pkg/errors"
	"github.com/matzehuels/permpro/pkg/perm"
)

// maxVerifySize bounds verify: every permutation is kept in memory and
// packed into 4 bits per element.
const maxVerifySize = 10

// verifyResult is the outcome of an exhaustiveness check.
type verifyResult struct {
	N          int
	Partitions int
	Count      uint64
	Distinct   int

	// Duplicate is the first permutation seen twice, Invalid the first
	// output that is not a permutation. Both are nil on success.
	Duplicate []int
	Invalid   []int
}

// OK reports whether every permutation was emitted exactly once.
func (r verifyResult) OK() bool {
	return r.Duplicate == nil && r.Invalid == nil && r.Count == perm.Count(r.N) && uint64(r.Distinct) == r.Count
}

// verifyCommand creates the verify command.
func (c *CLI) verifyCommand() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "verify N",
		Short: "Check that the engine emits every permutation exactly once",
		Long: fmt.Sprintf(`Check that the engine emits every permutation of [0, N) exactly once.

Each emitted permutation is validated and recorded; the run fails on the first
duplicate or malformed output, or if the count differs from N!. With --workers
the space is split into partitions that are checked concurrently, which also
verifies that the partitions are disjoint. N is limited to %d.`, maxVerifySize),
		Example: `  permpro verify 8
  permpro verify 10 --workers 6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseSize(args[0])
			if err != nil {
				return err
			}
			if err := sizeLimit(n, maxVerifySize); err != nil {
				return err
			}
			if workers < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "workers must be at least 1, got %d", workers)
			}

			prog := newProgress(c.Logger)
			res, err := verify(cmd.Context(), n, workers)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Verified n=%d", n))

			switch {
			case res.Invalid != nil:
				printError("Not a permutation: %v", res.Invalid)
			case res.Duplicate != nil:
				printError("Duplicate permutation: %v", res.Duplicate)
			case !res.OK():
				printError("Emitted %d permutations, want %d", res.Count, perm.Count(n))
			default:
				printSuccess("All %s permutations of size %d are distinct", StyleNumber.Render(fmt.Sprint(res.Count)), n)
				printDetail("%d partition(s)", res.Partitions)
				return nil
			}
			return errors.New(errors.ErrCodeInternal, "verification failed for n=%d", n)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "number of partitions checked concurrently")

	return cmd
}

// verify enumerates every permutation of size n across partitions and checks
// each one for validity and uniqueness.
func verify(ctx context.Context, n, workers int) (verifyResult, error) {
	res := verifyResult{N: n}
	if err := sizeLimit(n, maxVerifySize); err != nil {
		return res, err
	}

	engines, err := perm.Partition(n, perm.PartitionDepth(n, workers))
	if err != nil {
		return res, err
	}
	res.Partitions = len(engines)

	var (
		mu   sync.Mutex
		seen = make(map[uint64]struct{}, perm.Count(n))
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, e := range engines {
		eg.Go(func() error {
			keys := make([]uint64, 0, perm.Count(n)/uint64(len(engines)))
			for p := range e.All() {
				if !isPermutation(p) {
					mu.Lock()
					if res.Invalid == nil {
						res.Invalid = slices.Clone(p)
					}
					mu.Unlock()
					return nil
				}
				keys = append(keys, packPermutation(p))
				if len(keys)&0xffff == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
			}

			mu.Lock()
			defer mu.Unlock()
			res.Count += uint64(len(keys))
			for _, k := range keys {
				if _, dup := seen[k]; dup {
					if res.Duplicate == nil {
						res.Duplicate = unpackPermutation(k, n)
					}
					continue
				}
				seen[k] = struct{}{}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return res, err
	}
	res.Distinct = len(seen)
	return res, nil
}

// isPermutation reports whether p holds each of 0..len(p)-1 exactly once.
func isPermutation(p []int) bool {
	var seen uint32
	for _, v := range p {
		if v < 0 || v >= len(p) || seen&(1<<v) != 0 {
			return false
		}
		seen |= 1 << v
	}
	return true
}

// packPermutation encodes p with 4 bits per element.
func packPermutation(p []int) uint64 {
	var k uint64
	for i, v := range p {
		k |= uint64(v) << (4 * i)
	}
	return k
}

// unpackPermutation reverses packPermutation.
func unpackPermutation(k uint64, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = int(k >> (4 * i) & 0xf)
	}
	return p
}

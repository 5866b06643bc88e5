package perm

import (
	"github.com/matzehuels/permpro/pkg/errors"
)

// MaxPartitionDepth bounds the partition depth. Depth 9 already yields
// 10! = 3,628,800 engines.
const MaxPartitionDepth = 9

// Partition splits the permutations of size n into (depth+1)! independent
// engines by pinning counter digits 1..depth.
//
// Engine i starts from the i-th digit prefix in mixed-radix order (digit 1
// most significant) and stops as soon as a carry reaches a pinned digit. The
// partitions are disjoint, together they cover every permutation, and
// draining them in order reproduces the sequence of New(n) exactly.
//
// depth must satisfy 0 <= depth <= min(n-2, MaxPartitionDepth); only depth 0
// is valid for n < 2.
// Depth 0 returns a single engine equivalent to New(n). All engines use
// [ModeView]; each must be driven by at most one goroutine.
func Partition(n, depth int) ([]*Engine, error) {
	if err := errors.ValidateSize(n); err != nil {
		return nil, err
	}
	if depth < 0 || depth > max(0, n-2) {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"partition depth %d out of range [0, %d] for n=%d", depth, max(0, n-2), n)
	}

	if depth > MaxPartitionDepth {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"partition depth %d exceeds maximum %d", depth, MaxPartitionDepth)
	}

	prefixes := Prefixes(depth)
	engines := make([]*Engine, len(prefixes))
	for i, prefix := range prefixes {
		engines[i] = newEngine(n, ModeView, prefix)
	}
	return engines, nil
}

// Prefixes returns every counter prefix for digits 1..depth in mixed-radix
// order, where digit k ranges over [0, k]. There are (depth+1)! prefixes;
// depth 0 yields a single empty prefix. Prefixes returns nil when depth
// exceeds [MaxPartitionDepth].
func Prefixes(depth int) [][]int {
	if depth <= 0 {
		return [][]int{{}}
	}
	if depth > MaxPartitionDepth {
		return nil
	}
	result := make([][]int, 0, Factorial(depth+1))
	digits := make([]int, depth)
	for {
		result = append(result, append([]int(nil), digits...))

		// digits[k] holds counter digit k+1, bounded by k+1.
		k := depth - 1
		for k >= 0 && digits[k] == k+1 {
			digits[k] = 0
			k--
		}
		if k < 0 {
			return result
		}
		digits[k]++
	}
}

// PartitionDepth returns the smallest depth whose (depth+1)! partitions
// give every one of workers a share, capped at n-2 and [MaxPartitionDepth].
func PartitionDepth(n, workers int) int {
	limit := min(max(0, n-2), MaxPartitionDepth)
	depth := 0
	for depth < limit && Factorial(depth+1) < workers {
		depth++
	}
	return depth
}

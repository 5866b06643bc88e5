package perm

import (
	"iter"
	"math"
	"slices"
)

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// This is the initial buffer of every [Engine].
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n <= 0 {
		return []int{}
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// MaxCountable is the largest n whose factorial fits in a signed 64-bit
// integer.
const MaxCountable = 20

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// Factorials grow extremely fast: 21! overflows a 64-bit int, and even
// 13! = 6,227,020,800 takes minutes to enumerate. The result is only exact
// for n <= [MaxCountable].
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// Count returns the number of permutations an [Engine] of size n emits:
// n! for n >= 1 and 0 for n <= 0. Above [MaxCountable] the count does not
// fit and Count returns math.MaxUint64.
func Count(n int) uint64 {
	switch {
	case n <= 0:
		return 0
	case n > MaxCountable:
		return math.MaxUint64
	}
	return uint64(Factorial(n))
}

// Generate returns permutations of [0, 1, ..., n-1] using Heap's algorithm.
//
// If limit > 0, Generate returns at most limit permutations.
// If limit <= 0, Generate returns all n! permutations.
//
// Each returned slice is a separate allocation, safe to modify without affecting others.
//
// Generate handles edge cases gracefully:
//   - n = 0: returns [[]] (one empty permutation)
//   - n = 1: returns [[0]] (one single-element permutation)
//
// For n >= 13, the number of permutations exceeds billions. Always use a limit
// when n is large, or your program will exhaust memory.
func Generate(n, limit int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}

	capacity := Factorial(min(n, 12))
	if limit > 0 && limit < capacity {
		capacity = limit
	}
	result := make([][]int, 0, capacity)
	for p := range Heap(n) {
		result = append(result, slices.Clone(p))
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result
}

// Heap yields the permutations of [0, 1, ..., n-1] in Heap's order.
//
// The yielded slice is reused between iterations: copy it if it has to
// outlive the loop body. For n <= 0 Heap yields nothing, matching [Engine].
//
// Heap is the reference generator the benchmark harness compares the
// engine against.
func Heap(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n <= 0 {
			return
		}
		p := Seq(n)
		state := make([]int, n)
		if !yield(p) {
			return
		}
		for i := 0; i < n; {
			if state[i] < i {
				if i&1 == 0 {
					p[0], p[i] = p[i], p[0]
				} else {
					p[state[i]], p[i] = p[i], p[state[i]]
				}
				if !yield(p) {
					return
				}
				state[i]++
				i = 0
			} else {
				state[i] = 0
				i++
			}
		}
	}
}

// Package perm enumerates permutations of [0, 1, ..., n-1].
//
// # Overview
//
// The [Engine] produces every permutation of n elements exactly once, at
// constant amortized cost per permutation. It combines a factorial number
// system counter with a localized swap pattern, so successive permutations
// differ by a couple of element writes instead of a fresh array:
//
//	e, err := perm.New(4)
//	if err != nil {
//	    return err
//	}
//	for p := range e.All() {
//	    fmt.Println(p) // 24 permutations
//	}
//
// # Views and Snapshots
//
// In [ModeView] (the default) the slice returned by [Engine.Next] aliases
// the engine's buffer and is overwritten by the next step. Callers that keep
// permutations must copy them, or construct the engine with [ModeSnapshot],
// which allocates a copy per step:
//
//	e, _ := perm.NewWithMode(3, perm.ModeSnapshot)
//	all := slices.Collect(e.All()) // safe to retain
//
// # How It Works
//
// Each outer cycle has three phases:
//
//  1. Synchronization replays the swaps implied by counter digits that
//     changed since the last carry, starting at the cursor.
//  2. Inner generation plants the value n-1 at each position in turn,
//     moving the displaced value to the last slot, and emits n permutations.
//  3. Carry increments counter digit n-2 and propagates overflow leftwards,
//     undoing the swap of every digit it resets.
//
// The sequence ends when digit 0 becomes 1. Engines are not restartable.
//
// # Partitions
//
// [Partition] splits the space by pinning leading counter digits, giving
// (depth+1)! engines that can run on separate goroutines. Draining them in
// order reproduces the sequence of a single engine.
//
// # Reference Generator
//
// [Heap] and [Generate] implement Heap's algorithm. The benchmark harness
// in package bench times the engine against [Heap].
package perm

package perm

import (
	"iter"
	"slices"

	"github.com/matzehuels/permpro/pkg/errors"
)

// Mode selects how [Engine.Next] hands out permutations.
type Mode int

const (
	// ModeView returns a slice aliasing the engine's buffer. The slice is
	// only valid until the next call to Next; copy it to keep it.
	ModeView Mode = iota

	// ModeSnapshot returns a freshly allocated copy on every step.
	ModeSnapshot
)

// String returns the mode name used in flags and reports.
func (m Mode) String() string {
	switch m {
	case ModeView:
		return "view"
	case ModeSnapshot:
		return "snapshot"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name ("view" or "snapshot") into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "view", "":
		return ModeView, nil
	case "snapshot":
		return ModeSnapshot, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidArgument, "unknown mode %q (must be view or snapshot)", s)
}

// Engine enumerates the permutations of [0, 1, ..., n-1].
//
// The engine keeps a working buffer, a factorial-number-system counter and a
// sync cursor in lockstep. Every outer cycle replays the pending counter
// swaps, emits n permutations by planting n-1 at each position in turn, and
// then advances the counter, undoing and redoing swaps along the carry chain.
//
// An Engine is not safe for concurrent use, and it is not restartable: once
// exhausted or abandoned, construct a new one.
type Engine struct {
	n       int
	mode    Mode
	perm    []int
	counter []int
	cursor  int

	// depth > 0 pins counter digits 1..depth; see Partition.
	depth int

	// Inner phase state. pos is the next position to receive the sentinel;
	// held is the value displaced from perm[pos-1], last the value
	// perm[n-1] had when the cycle started.
	pos  int
	held int
	last int

	emitted uint64
	done    bool
}

// New creates an engine over permutations of size n in [ModeView].
//
// New fails with an [errors.ErrCodeInvalidArgument] error if n is negative.
// n = 0 produces an empty sequence and n = 1 the single permutation [0].
func New(n int) (*Engine, error) {
	return NewWithMode(n, ModeView)
}

// NewWithMode creates an engine over permutations of size n using mode.
func NewWithMode(n int, mode Mode) (*Engine, error) {
	if err := errors.ValidateSize(n); err != nil {
		return nil, err
	}
	if mode != ModeView && mode != ModeSnapshot {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "unknown mode %d", int(mode))
	}
	return newEngine(n, mode, nil), nil
}

// newEngine builds an engine whose counter digits 1..len(prefix) start at
// prefix and stay fixed for the engine's lifetime.
func newEngine(n int, mode Mode, prefix []int) *Engine {
	e := &Engine{
		n:       n,
		mode:    mode,
		perm:    Seq(n),
		counter: make([]int, n),
		depth:   len(prefix),
		done:    n == 0,
	}
	if len(prefix) > 0 {
		copy(e.counter[1:], prefix)
	}
	return e
}

// Next advances the engine and returns the next permutation.
//
// It returns nil and false once every permutation has been emitted, and
// keeps doing so on every later call. In [ModeView] the returned slice is
// overwritten by the following call.
func (e *Engine) Next() ([]int, bool) {
	if e.done {
		return nil, false
	}
	last := e.n - 1

	if e.pos > 0 {
		e.perm[e.pos-1] = e.held
	}
	if e.pos == e.n {
		e.perm[last] = e.last
		if !e.carry() {
			e.done = true
			return nil, false
		}
		e.pos = 0
	}
	if e.pos == 0 {
		e.sync()
		e.last = e.perm[last]
	}

	i := e.pos
	e.held = e.perm[i]
	e.perm[last] = e.held
	e.perm[i] = last
	e.pos++
	e.emitted++

	if e.mode == ModeSnapshot {
		return slices.Clone(e.perm), true
	}
	return e.perm, true
}

// sync replays the counter swaps between the cursor and n-1 that the last
// carry left pending.
func (e *Engine) sync() {
	for ; e.cursor < e.n-1; e.cursor++ {
		c := e.counter[e.cursor]
		e.perm[e.cursor], e.perm[c] = e.perm[c], e.perm[e.cursor]
	}
}

// carry advances the counter by one outer cycle and reports whether more
// permutations remain.
func (e *Engine) carry() bool {
	if e.n < 2 {
		return false
	}
	p, c, d := e.n-2, e.counter, e.perm

	d[c[p]], d[p] = d[p], d[c[p]]
	c[p]++
	for p > 0 && c[p] > p {
		c[p] = 0
		p--
		c[p]++
		q := c[p] - 1
		d[q], d[p] = d[p], d[q]
	}
	e.cursor = p

	if e.depth > 0 {
		return p > e.depth
	}
	return c[0] < 1
}

// All returns an iterator over the remaining permutations.
//
// Ranging over All drives [Engine.Next]; breaking out of the loop leaves the
// engine partially consumed. The yielded slices follow the engine's mode.
func (e *Engine) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for {
			p, ok := e.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Len returns the permutation size n.
func (e *Engine) Len() int { return e.n }

// Mode returns the engine's output mode.
func (e *Engine) Mode() Mode { return e.mode }

// Emitted returns how many permutations Next has returned so far.
func (e *Engine) Emitted() uint64 { return e.emitted }

// Done reports whether the engine is exhausted.
func (e *Engine) Done() bool { return e.done }

// Counter returns a copy of the factorial counter digits.
func (e *Engine) Counter() []int { return slices.Clone(e.counter) }

// Cursor returns the position up to which the buffer is in sync with the
// counter.
func (e *Engine) Cursor() int { return e.cursor }

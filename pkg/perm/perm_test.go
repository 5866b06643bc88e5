package perm

import (
	"math"
	"slices"
	"testing"
)

func TestSeq(t *testing.T) {
	if got := Seq(4); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("Seq(4) = %v", got)
	}
	if got := Seq(0); len(got) != 0 {
		t.Errorf("Seq(0) = %v, want empty", got)
	}
	if got := Seq(-3); len(got) != 0 {
		t.Errorf("Seq(-3) = %v, want empty", got)
	}
}

func TestFactorialAndCount(t *testing.T) {
	tests := []struct {
		n     int
		fact  int
		count uint64
	}{
		{-1, 1, 0},
		{0, 1, 0},
		{1, 1, 1},
		{5, 120, 120},
		{12, 479001600, 479001600},
		{20, 2432902008176640000, 2432902008176640000},
	}
	for _, tt := range tests {
		if got := Factorial(tt.n); got != tt.fact {
			t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.fact)
		}
		if got := Count(tt.n); got != tt.count {
			t.Errorf("Count(%d) = %d, want %d", tt.n, got, tt.count)
		}
	}
}

func TestCount_Saturates(t *testing.T) {
	for _, n := range []int{MaxCountable + 1, 25, 100} {
		if got := Count(n); got != math.MaxUint64 {
			t.Errorf("Count(%d) = %d, want math.MaxUint64", n, got)
		}
	}
	if Count(MaxCountable) >= math.MaxUint64 {
		t.Error("Count(MaxCountable) should still be exact")
	}
}

func TestGenerate(t *testing.T) {
	if got := Generate(0, -1); len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("Generate(0) = %v, want [[]]", got)
	}
	if got := Generate(1, -1); len(got) != 1 || !slices.Equal(got[0], []int{0}) {
		t.Errorf("Generate(1) = %v, want [[0]]", got)
	}
	if got := Generate(5, -1); len(got) != 120 {
		t.Errorf("Generate(5) returned %d permutations, want 120", len(got))
	}
	if got := Generate(10, 7); len(got) != 7 {
		t.Errorf("Generate(10, 7) returned %d permutations, want 7", len(got))
	}

	perms := Generate(3, -1)
	perms[0][0] = 99
	if perms[1][0] == 99 {
		t.Error("Generate must return independent slices")
	}
}

func TestHeap_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for p := range Heap(6) {
		k := key(p)
		if seen[k] {
			t.Fatalf("duplicate %v", p)
		}
		seen[k] = true
	}
	if len(seen) != 720 {
		t.Errorf("Heap(6) yielded %d permutations, want 720", len(seen))
	}
}

func TestHeap_Break(t *testing.T) {
	count := 0
	for range Heap(8) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

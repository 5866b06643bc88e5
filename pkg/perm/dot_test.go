package perm

import (
	"strings"
	"testing"

	"github.com/matzehuels/permpro/pkg/errors"
)

func TestPartitionDOT(t *testing.T) {
	dot, err := PartitionDOT(5, 2)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(dot, "digraph Partitions {") {
		t.Error("PartitionDOT() should start with 'digraph Partitions {'")
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Error("PartitionDOT() should end with '}'")
	}

	expected := []string{
		"rankdir=TB",
		"bgcolor=\"transparent\"",
		"arrowhead=none",
		`"n=5\n120"`,
		`"c[1]=0"`,
		`"c[2]=2"`,
		`"#0\n20"`,
		`"#5\n20"`,
	}
	for _, exp := range expected {
		if !strings.Contains(dot, exp) {
			t.Errorf("PartitionDOT() missing %q", exp)
		}
	}

	if got := strings.Count(dot, "style=\"filled,rounded\""); got != 6 {
		t.Errorf("PartitionDOT() has %d leaves, want 6", got)
	}
}

func TestPartitionDOT_RootOnly(t *testing.T) {
	dot, err := PartitionDOT(4, 0)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(dot, "->") {
		t.Error("depth 0 tree should have no edges")
	}
}

func TestPartitionDOT_Empty(t *testing.T) {
	dot, err := PartitionDOT(0, 0)
	if err != nil {
		t.Fatalf("PartitionDOT(0, 0): %v", err)
	}
	if !strings.Contains(dot, `"n=0\n0"`) {
		t.Errorf("root should report zero permutations:\n%s", dot)
	}
}

func TestPartitionDOT_Invalid(t *testing.T) {
	tests := []struct {
		n, depth int
	}{
		{4, 3},
		{MaxCountable + 1, 1},
		{25, 22},
	}
	for _, tt := range tests {
		if _, err := PartitionDOT(tt.n, tt.depth); !errors.Is(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("PartitionDOT(%d, %d) error = %v, want INVALID_ARGUMENT", tt.n, tt.depth, err)
		}
	}
}

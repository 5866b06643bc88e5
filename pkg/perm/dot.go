package perm

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/permpro/pkg/errors"
)

// PartitionDOT returns a Graphviz DOT representation of the partition tree
// for permutations of size n split at depth.
//
// The root is the whole space. Level k branches on counter digit k, and each
// leaf is one partition labeled with its index and permutation count, in the
// same order Partition returns the engines. At depth 0 the tree is the
// root alone. n must not exceed [MaxCountable] since every node carries a
// permutation count.
func PartitionDOT(n, depth int) (string, error) {
	if n > MaxCountable {
		return "", errors.New(errors.ErrCodeInvalidArgument,
			"size %d is too large to count (maximum %d)", n, MaxCountable)
	}
	if _, err := Partition(n, depth); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("digraph Partitions {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")

	fmt.Fprintf(&buf, "  n0 [label=%q, shape=ellipse];\n", fmt.Sprintf("n=%d\n%d", n, Count(n)))
	per := Count(n) / uint64(Factorial(depth+1))
	next, leaf := 1, 0
	writePartitionNode(&buf, 0, 1, depth, per, &next, &leaf)

	buf.WriteString("}\n")
	return buf.String(), nil
}

// writePartitionNode emits the children of parent for counter digit k.
func writePartitionNode(buf *bytes.Buffer, parent, k, depth int, per uint64, next, leaf *int) {
	if k > depth {
		return
	}
	for v := 0; v <= k; v++ {
		id := *next
		*next++
		fmt.Fprintf(buf, "  n%d -> n%d [label=%q];\n", parent, id, fmt.Sprintf("c[%d]=%d", k, v))
		if k == depth {
			label := fmt.Sprintf("#%d\n%d", *leaf, per)
			fmt.Fprintf(buf, "  n%d [label=%q, shape=box, style=\"filled,rounded\"];\n", id, label)
			*leaf++
			continue
		}
		fmt.Fprintf(buf, "  n%d [label=\"\", shape=point];\n", id)
		writePartitionNode(buf, id, k+1, depth, per, next, leaf)
	}
}

// RenderPartitionSVG renders the partition tree as an SVG image.
//
// It generates DOT via PartitionDOT and renders it with Graphviz. Errors are
// wrapped with context; invalid n or depth yields an
// [errors.ErrCodeInvalidArgument] error.
func RenderPartitionSVG(ctx context.Context, n, depth int) ([]byte, error) {
	dot, err := PartitionDOT(n, depth)
	if err != nil {
		return nil, err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

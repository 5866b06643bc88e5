package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permpro/pkg/perm"
)

// treeCommand creates the tree command for visualizing partitions.
func (c *CLI) treeCommand() *cobra.Command {
	var output string
	var depth int
	var workers int

	cmd := &cobra.Command{
		Use:   "tree N",
		Short: "Render the partition tree for size N (debug tool)",
		Long: `Render the tree of partitions the permutations of [0, N) are split into
for parallel runs.

Level k of the tree branches on counter digit k; each leaf is one partition,
numbered in the order the engines run. The tree is written as Graphviz DOT,
or as SVG when the output file ends in .svg.`,
		Example: `  # DOT for 6 partitions on stdout
  permpro tree 5 --depth 2

  # Depth chosen for 4 workers, rendered to SVG
  permpro tree 8 --workers 4 -o partitions.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseSize(args[0])
			if err != nil {
				return err
			}
			if err := sizeLimit(n, perm.MaxCountable); err != nil {
				return err
			}
			switch {
			case cmd.Flags().Changed("workers"):
				depth = perm.PartitionDepth(n, workers)
			case !cmd.Flags().Changed("depth"):
				depth = min(depth, max(0, n-2))
			}

			var data []byte
			if strings.EqualFold(filepath.Ext(output), ".svg") {
				data, err = perm.RenderPartitionSVG(cmd.Context(), n, depth)
			} else {
				var dot string
				dot, err = perm.PartitionDOT(n, depth)
				data = []byte(dot)
			}
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			if err := writeFile(cmd.OutOrStdout(), data, output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			if output != "" {
				printSuccess("Partition tree generated")
				printKeyValue("Depth", fmt.Sprintf("%d", depth))
				printKeyValue("Partitions", fmt.Sprintf("%d", perm.Factorial(depth+1)))
				printKeyValue("Each", fmt.Sprintf("%d permutations", perm.Count(n)/uint64(perm.Factorial(depth+1))))
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (DOT on stdout if empty)")
	cmd.Flags().IntVarP(&depth, "depth", "d", 1, "number of pinned counter digits")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "choose the depth for this many workers")

	return cmd
}

package cli

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permpro/pkg/errors"
	"github.com/matzehuels/permpro/pkg/perm"
)

// maxGenSize is the largest size gen prints in full; larger sizes need
// --limit.
const maxGenSize = 10

// Output formats for gen.
const (
	genFormatText = "text"
	genFormatJSON = "json"
)

// genCommand creates the gen command.
func (c *CLI) genCommand() *cobra.Command {
	var snapshot bool
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "gen N",
		Short: "Print the permutations of [0, N)",
		Long: `Print the permutations of [0, N) in engine order, one per line.

The text format separates elements with spaces. The json format prints one
JSON array per line. Sizes above 10 require --limit.`,
		Example: `  # All 6 permutations of size 3
  permpro gen 3

  # First 10 permutations of size 8 as JSON lines
  permpro gen 8 --limit 10 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseSize(args[0])
			if err != nil {
				return err
			}
			if err := errors.ValidateFormat(format, genFormatText, genFormatJSON); err != nil {
				return err
			}
			if limit <= 0 && n > maxGenSize {
				return errors.New(errors.ErrCodeInvalidInput,
					"size %d prints %d permutations; pass --limit or use at most %d", n, perm.Count(n), maxGenSize)
			}

			mode := perm.ModeView
			if snapshot {
				mode = perm.ModeSnapshot
			}
			c.Logger.Debug("generating", "n", n, "mode", mode, "limit", limit)
			return writePermutations(cmd.OutOrStdout(), n, mode, limit, format)
		},
	}

	cmd.Flags().BoolVar(&snapshot, "snapshot", false, "copy every permutation instead of reusing the buffer")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "stop after this many permutations (0 = all)")
	cmd.Flags().StringVarP(&format, "format", "f", genFormatText, "output format (text, json)")

	return cmd
}

// writePermutations writes up to limit permutations of size n to w.
func writePermutations(w io.Writer, n int, mode perm.Mode, limit int, format string) error {
	e, err := perm.NewWithMode(n, mode)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	var line []byte
	for p := range e.All() {
		line = line[:0]
		switch format {
		case genFormatJSON:
			line, err = json.Marshal(p)
			if err != nil {
				return err
			}
		default:
			for i, v := range p {
				if i > 0 {
					line = append(line, ' ')
				}
				line = strconv.AppendInt(line, int64(v), 10)
			}
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
		if limit > 0 && e.Emitted() >= uint64(limit) {
			break
		}
	}
	return bw.Flush()
}

// parseSize parses a permutation size argument.
func parseSize(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid size %q: must be an integer", s)
	}
	if n < 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid size %d: must be non-negative", n)
	}
	return n, nil
}

// sizeLimit rejects sizes above limit for commands that hold state per
// permutation.
func sizeLimit(n, limit int) error {
	if n > limit {
		return errors.New(errors.ErrCodeInvalidInput, "size %d is too large (maximum %d)", n, limit)
	}
	return nil
}

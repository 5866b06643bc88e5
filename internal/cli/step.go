package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// maxStepSize keeps the stepper table within a terminal line.
const maxStepSize = 16

// stepCommand creates the step command.
func (c *CLI) stepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "step N",
		Short: "Step through the engine interactively",
		Long: fmt.Sprintf(`Step through the engine one permutation at a time.

The view shows the current permutation with the sentinel N-1 highlighted,
the factorial counter digits and the sync cursor. N is limited to %d.`, maxStepSize),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseSize(args[0])
			if err != nil {
				return err
			}
			if err := sizeLimit(n, maxStepSize); err != nil {
				return err
			}

			model, err := NewStepModel(n)
			if err != nil {
				return err
			}

			p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("stepper: %w", err)
			}
			if m, ok := final.(StepModel); ok {
				c.Logger.Debug("stepper closed", "n", n, "emitted", m.Engine.Emitted())
			}
			return nil
		},
	}
}

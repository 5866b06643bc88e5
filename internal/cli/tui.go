package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/permpro/pkg/perm"
)

// Stepper styles
var (
	stepSentinelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	stepCursorStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	stepNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	stepDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// StepModel - Interactive engine stepper
// =============================================================================

// StepModel is the bubbletea model for stepping through an engine. It runs
// the engine in snapshot mode so the displayed permutation stays valid
// between updates.
type StepModel struct {
	N       int
	Engine  *perm.Engine
	Current []int
	Done    bool
}

// NewStepModel creates a stepper over permutations of size n.
func NewStepModel(n int) (StepModel, error) {
	e, err := perm.NewWithMode(n, perm.ModeSnapshot)
	if err != nil {
		return StepModel{}, err
	}
	return StepModel{N: n, Engine: e, Done: e.Done()}, nil
}

func (m StepModel) Init() tea.Cmd {
	return nil
}

func (m StepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space", "enter", "n":
			return m.step(), nil
		case "r":
			if restarted, err := NewStepModel(m.N); err == nil {
				return restarted, nil
			}
		}
	}
	return m, nil
}

// step advances the engine by one permutation.
func (m StepModel) step() StepModel {
	if m.Done {
		return m
	}
	p, ok := m.Engine.Next()
	if !ok {
		m.Done = true
		m.Current = nil
		return m
	}
	m.Current = p
	return m
}

func (m StepModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Engine n=%d", m.N)))
	b.WriteString("\n")
	b.WriteString(stepDimStyle.Render("space/enter/n step  r restart  q quit"))
	b.WriteString("\n\n")

	if m.N > 0 {
		b.WriteString(m.renderState())
		b.WriteString("\n\n")
	}

	status := fmt.Sprintf("emitted %d / %d", m.Engine.Emitted(), perm.Count(m.N))
	switch {
	case m.Done:
		b.WriteString(StyleSuccess.Render(iconSuccess+" exhausted") + "  " + stepDimStyle.Render(status))
	case m.Current == nil:
		b.WriteString(stepDimStyle.Render("press space to emit the first permutation  " + status))
	default:
		b.WriteString(stepDimStyle.Render(status))
	}
	b.WriteString("\n")

	return b.String()
}

// renderState renders positions, the current permutation and the counter
// digits as a table. The sentinel n-1 is highlighted, as is the cursor
// column.
func (m StepModel) renderState() string {
	positions := make([]string, m.N+1)
	buffer := make([]string, m.N+1)
	counter := make([]string, m.N+1)
	positions[0], buffer[0], counter[0] = "", "perm", "counter"

	digits := m.Engine.Counter()
	for i := range m.N {
		positions[i+1] = strconv.Itoa(i)
		buffer[i+1] = "·"
		if m.Current != nil {
			buffer[i+1] = strconv.Itoa(m.Current[i])
		}
		counter[i+1] = strconv.Itoa(digits[i])
	}

	sentinel := -1
	if m.Current != nil {
		sentinel = slices.Index(m.Current, m.N-1)
	}
	cursor := m.Engine.Cursor()

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(positions...).
		Rows(buffer, counter).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 {
				return cell.Inherit(stepDimStyle)
			}
			pos := col - 1
			switch {
			case row == 0 && pos == sentinel:
				return cell.Inherit(stepSentinelStyle)
			case row == 1 && pos == cursor:
				return cell.Inherit(stepCursorStyle)
			}
			return cell.Inherit(stepNormalStyle)
		})

	return t.Render()
}

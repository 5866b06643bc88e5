package cli

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m StepModel, msg tea.Msg) (StepModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(StepModel)
	if !ok {
		t.Fatalf("Update returned %T, want StepModel", next)
	}
	return sm, cmd
}

func TestStepModel_Steps(t *testing.T) {
	m, err := NewStepModel(3)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(m.View(), "press space") {
		t.Error("initial view should prompt for the first step")
	}

	m, _ = update(t, m, keyRunes("n"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	if !slices.Equal(m.Current, []int{1, 0, 2}) {
		t.Errorf("third permutation = %v, want [1 0 2]", m.Current)
	}
	if m.Engine.Emitted() != 3 {
		t.Errorf("Emitted() = %d, want 3", m.Engine.Emitted())
	}
	if view := m.View(); !strings.Contains(view, "emitted 3 / 6") {
		t.Errorf("view should show progress:\n%s", view)
	}
}

func TestStepModel_Exhausts(t *testing.T) {
	m, _ := NewStepModel(2)
	for range 3 {
		m, _ = update(t, m, keyRunes("n"))
	}
	if !m.Done {
		t.Fatal("model should be done after n!+1 steps")
	}
	if !strings.Contains(m.View(), "exhausted") {
		t.Error("view should report exhaustion")
	}

	m, _ = update(t, m, keyRunes("n"))
	if m.Engine.Emitted() != 2 {
		t.Errorf("stepping past the end emitted %d, want 2", m.Engine.Emitted())
	}
}

func TestStepModel_Restart(t *testing.T) {
	m, _ := NewStepModel(4)
	m, _ = update(t, m, keyRunes("n"))
	m, _ = update(t, m, keyRunes("r"))
	if m.Engine.Emitted() != 0 || m.Current != nil {
		t.Errorf("restart should reset the engine, emitted=%d current=%v", m.Engine.Emitted(), m.Current)
	}
}

func TestStepModel_Quit(t *testing.T) {
	m, _ := NewStepModel(3)
	for _, key := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := update(t, m, key)
		if cmd == nil {
			t.Fatalf("%q should return a command", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q should quit", key.String())
		}
	}
}

func TestStepModel_Empty(t *testing.T) {
	m, err := NewStepModel(0)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Done {
		t.Error("n=0 stepper should start done")
	}
	if !strings.Contains(m.View(), "emitted 0 / 0") {
		t.Errorf("unexpected view:\n%s", m.View())
	}

	if _, err := NewStepModel(-1); err == nil {
		t.Error("negative size should fail")
	}
}

func TestStepCommand_TooLarge(t *testing.T) {
	if _, err := execute(t, "step", "17"); err == nil {
		t.Error("step 17 should fail")
	}
}

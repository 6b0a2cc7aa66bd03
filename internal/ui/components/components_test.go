package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

type pressedMsg struct{}

func TestButton_DisabledIgnoresPress(t *testing.T) {
	pressed := 0
	b := NewButton("Next", func() tea.Cmd {
		pressed++
		return func() tea.Msg { return pressedMsg{} }
	})

	b.Disabled = true
	if cmd := b.Press(); cmd != nil {
		t.Error("disabled button should not produce a command")
	}
	if pressed != 0 {
		t.Errorf("OnPress ran %d times while disabled", pressed)
	}

	b.Disabled = false
	cmd := b.Press()
	if cmd == nil {
		t.Fatal("enabled button should produce a command")
	}
	if _, ok := cmd().(pressedMsg); !ok {
		t.Error("expected pressedMsg")
	}
}

func TestAnswerPair_Selection(t *testing.T) {
	var got []bool
	onAnswer := func(v bool) tea.Cmd {
		got = append(got, v)
		return nil
	}

	tests := []struct {
		name                 string
		answered, value      bool
		wantAffirm, wantDeny bool
	}{
		{"unset", false, false, false, false},
		{"true", true, true, true, false},
		{"false", true, false, false, true},
	}
	for _, tt := range tests {
		p := NewAnswerPair(tt.answered, tt.value, onAnswer)
		if p.Affirm.Selected != tt.wantAffirm || p.Deny.Selected != tt.wantDeny {
			t.Errorf("%s: affirm=%v deny=%v, want %v %v",
				tt.name, p.Affirm.Selected, p.Deny.Selected, tt.wantAffirm, tt.wantDeny)
		}
	}

	p := NewAnswerPair(false, false, onAnswer)
	p.Affirm.Activate()
	p.Deny.Activate()
	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("activations = %v, want [true false]", got)
	}
}

func TestBarChart_FixedMax(t *testing.T) {
	c := BarChart{
		Labels: []string{"Knowledge", "Regulation"},
		Values: []int{1, 3},
		Max:    3,
		Width:  60,
	}
	view := c.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "1 / 3") || !strings.Contains(lines[1], "3 / 3") {
		t.Errorf("rows should show value against the fixed max:\n%s", view)
	}
	if strings.Count(lines[0], "█") >= strings.Count(lines[1], "█") {
		t.Error("smaller value should render a shorter bar")
	}
}

func TestBarChart_Empty(t *testing.T) {
	if v := (BarChart{Max: 3}).View(); v != "" {
		t.Errorf("expected empty view, got %q", v)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B"},
		{Label: "C", Disabled: true},
		{Label: "D"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("after up = %d, want 1", m.Selected)
	}
}

func TestProgressBar_Percent(t *testing.T) {
	view := NewProgressBar("", 50, true, 40).View()
	if !strings.Contains(view, "50%") {
		t.Errorf("expected 50%% label in %q", view)
	}
}

package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mai/internal/ui/theme"
)

// Toggle is one side of a binary answer: the affirm or deny widget for a
// statement. Selected mirrors the recorded answer; OnActivate records it.
type Toggle struct {
	Label      string
	Selected   bool
	Focused    bool
	OnActivate func() tea.Cmd
}

// Activate runs the toggle's action.
func (t Toggle) Activate() tea.Cmd {
	if t.OnActivate == nil {
		return nil
	}
	return t.OnActivate()
}

// View renders the toggle as a radio-style marker plus label.
func (t Toggle) View() string {
	mark := "( )"
	style := theme.ToggleOff
	if t.Selected {
		mark = "(●)"
		style = theme.ToggleOn
	}
	label := mark + " " + t.Label
	if t.Focused {
		return theme.Selected.Render("▸ " + label)
	}
	return style.Render("  " + label)
}

// AnswerPair is the affirm/deny toggle pair for one statement.
type AnswerPair struct {
	Affirm Toggle
	Deny   Toggle
}

// NewAnswerPair builds the pair. answered reports whether any answer has
// been recorded; value is the recorded answer.
func NewAnswerPair(answered, value bool, onAnswer func(bool) tea.Cmd) AnswerPair {
	return AnswerPair{
		Affirm: Toggle{
			Label:      "True",
			Selected:   answered && value,
			OnActivate: func() tea.Cmd { return onAnswer(true) },
		},
		Deny: Toggle{
			Label:      "False",
			Selected:   answered && !value,
			OnActivate: func() tea.Cmd { return onAnswer(false) },
		},
	}
}

// View renders both toggles on one line.
func (p AnswerPair) View() string {
	return p.Affirm.View() + "    " + p.Deny.View()
}

package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mai/internal/ui/theme"
)

// Button is a navigation control. A disabled button ignores activation and
// renders struck through.
type Button struct {
	Label    string
	Focused  bool
	Disabled bool
	OnPress  func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		OnPress: onPress,
	}
}

// Press activates the button. It returns nil when the button is disabled.
func (b Button) Press() tea.Cmd {
	if b.Disabled || b.OnPress == nil {
		return nil
	}
	return b.OnPress()
}

// View renders the button.
func (b Button) View() string {
	switch {
	case b.Disabled:
		return theme.ButtonDisabled.Render(b.Label)
	case b.Focused:
		return theme.ButtonFocused.Render("▸ " + b.Label)
	default:
		return theme.ButtonNormal.Render(b.Label)
	}
}

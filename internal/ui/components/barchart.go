package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mai/internal/ui/theme"
)

// BarChart renders horizontal bars against a fixed maximum so charts of
// different sessions are visually comparable.
type BarChart struct {
	Labels []string
	Values []int
	Max    int
	Width  int
}

// View renders one row per label: "label  ████░░░░  v / max".
func (c BarChart) View() string {
	if len(c.Labels) == 0 || c.Max <= 0 {
		return ""
	}

	labelWidth := 0
	for _, l := range c.Labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}
	suffixWidth := len(fmt.Sprintf("  %d / %d", c.Max, c.Max))
	barWidth := max(c.Width-labelWidth-suffixWidth-2, 10)

	var b strings.Builder
	for i, label := range c.Labels {
		v := 0
		if i < len(c.Values) {
			v = c.Values[i]
		}
		filled := min(max(v*barWidth/c.Max, 0), barWidth)

		b.WriteString(lipgloss.NewStyle().Width(labelWidth).Foreground(theme.Text).Render(label))
		b.WriteString("  ")
		b.WriteString(theme.BarFilled.Render(strings.Repeat("█", filled)))
		b.WriteString(theme.BarEmpty.Render(strings.Repeat("░", barWidth-filled)))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %d / %d", v, c.Max)))
		if i < len(c.Labels)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

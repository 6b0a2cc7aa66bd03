package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mai/internal/export"
	"github.com/abhisek/mai/internal/scoring"
	"github.com/abhisek/mai/internal/ui/components"
	"github.com/abhisek/mai/internal/ui/theme"
)

// ScoreLine formats one entry as "label: score / total".
func ScoreLine(e scoring.Entry) string {
	return fmt.Sprintf("%s: %d / %d", e.Label, e.Score, e.Total)
}

func (s *Screen) View(width, height int) string {
	inner := max(width-4, 20)
	var b strings.Builder

	b.WriteString(theme.Title.Width(inner).Render("Your Results"))
	b.WriteString("\n\n")

	series := export.ToChartSeries(s.scores, s.env.Inventory.ChartMax)
	chart := components.BarChart{
		Labels: series.Labels,
		Values: series.Values,
		Max:    series.Max,
		Width:  min(inner, 80),
	}
	b.WriteString(chart.View())
	b.WriteString("\n\n")

	for _, e := range s.scores {
		b.WriteString(theme.Body.Render(ScoreLine(e)))
		b.WriteString("\n")
	}
	score, total := scoring.Totals(s.scores)
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Overall: %d / %d", score, total)))
	b.WriteString("\n\n")

	if r := s.reflection; r != nil {
		b.WriteString(renderReflection(r.Summary, r.Strengths, r.GrowthAreas, inner))
		b.WriteString("\n")
	}

	b.WriteString(s.menu.View())

	if s.status != "" {
		style := theme.StatusOK
		if s.statusErr {
			style = theme.StatusErr
		}
		b.WriteString("\n")
		b.WriteString(style.Render(s.status))
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

func renderReflection(summary string, strengths, growth []string, width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(summary))
	b.WriteString("\n")
	for _, s := range strengths {
		b.WriteString(theme.StatusOK.Render("  + " + s))
		b.WriteString("\n")
	}
	for _, g := range growth {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("  → " + g))
		b.WriteString("\n")
	}
	return b.String()
}

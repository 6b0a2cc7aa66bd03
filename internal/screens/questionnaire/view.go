package questionnaire

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mai/internal/ui/components"
	"github.com/abhisek/mai/internal/ui/theme"
)

func pageLabel(page, total int) string {
	return fmt.Sprintf("Page %d/%d", page+1, total)
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}
	v := s.state.Snapshot()

	inner := max(width-4, 20)
	ctl := v.Controls()

	top := components.NewProgressBar(pageLabel(v.Page, v.TotalPages), ctl.Progress, true, inner).View()

	var ctrl strings.Builder
	for i, b := range s.buttons() {
		b.Focused = s.cursor == s.rows() && i == s.button
		if i > 0 {
			ctrl.WriteString("  ")
		}
		ctrl.WriteString(b.View())
	}

	statusLine := ""
	if s.status != "" {
		statusLine = theme.Hint.Render(s.status)
	}

	avail := height - lipgloss.Height(top) - 5
	body := s.renderPage(inner, avail)

	return lipgloss.NewStyle().Padding(0, 2).Render(
		top + "\n\n" + body + "\n" + ctrl.String() + "\n\n" + statusLine)
}

func (s *Screen) rows() int {
	start, end := s.state.Snapshot().PageRange()
	return end - start
}

// renderPage renders the statements on the current page, scrolling so the
// focused statement stays within avail lines.
func (s *Screen) renderPage(width, avail int) string {
	v := s.state.Snapshot()
	start, end := v.PageRange()

	blocks := make([]string, 0, end-start)
	for id := start; id < end; id++ {
		blocks = append(blocks, s.renderQuestion(id, width, s.cursor == id-start))
	}

	focus := min(s.cursor, len(blocks)-1)
	first := 0
	for first < focus && heightOf(blocks[first:focus+1]) > avail {
		first++
	}

	var b strings.Builder
	used := 0
	for _, blk := range blocks[first:] {
		h := lipgloss.Height(blk) + 1
		if used > 0 && used+h > avail {
			b.WriteString(theme.Hint.Render("  ↓ more") + "\n")
			break
		}
		b.WriteString(blk)
		b.WriteString("\n\n")
		used += h
	}
	return b.String()
}

func heightOf(blocks []string) int {
	n := 0
	for _, b := range blocks {
		n += lipgloss.Height(b) + 1
	}
	return n
}

func (s *Screen) renderQuestion(id, width int, focused bool) string {
	q, _ := s.env.Inventory.Question(id)

	numStyle := theme.Body
	if focused {
		numStyle = theme.Selected
	}
	statement := lipgloss.NewStyle().Width(width - 5).Foreground(theme.Text).
		Render(q.Statement)
	lines := lipgloss.JoinHorizontal(lipgloss.Top,
		numStyle.Render(fmt.Sprintf("%3d. ", id+1)), statement)

	if q.Translation != "" {
		lines += "\n     " + theme.Translation.Render(q.Translation)
	}

	p := s.pairFor(id)
	if focused {
		if s.choice == choiceDeny {
			p.Deny.Focused = true
		} else {
			p.Affirm.Focused = true
		}
	}
	return lines + "\n     " + p.View()
}

func renderQuitConfirm(width, height int) string {
	msg := theme.Body.Render("Discard this session? Your answers will not be kept.") +
		"\n\n" + theme.Hint.Render("y to discard, n to keep going")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

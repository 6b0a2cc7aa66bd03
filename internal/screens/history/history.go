package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mai/internal/screens/results"
	"github.com/abhisek/mai/internal/router"
	"github.com/abhisek/mai/internal/screen"
	"github.com/abhisek/mai/internal/scoring"
	"github.com/abhisek/mai/internal/store"
	"github.com/abhisek/mai/internal/ui/components"
	"github.com/abhisek/mai/internal/ui/layout"
	"github.com/abhisek/mai/internal/ui/theme"
)

// clearWord must be typed to confirm clearing the archive.
const clearWord = "clear"

type historyLoadedMsg struct {
	Results []store.Result
	Err     error
}

type historyClearedMsg struct {
	Removed int
	Err     error
}

// HistoryScreen lists archived results, newest first.
type HistoryScreen struct {
	repo     store.ResultRepo
	results  []store.Result
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
	status   string

	confirming bool
	input      components.TextInput
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.ResultRepo) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HistoryScreen) load() tea.Cmd {
	return func() tea.Msg {
		res, err := s.repo.List(context.Background(), store.QueryOpts{Limit: 50})
		return historyLoadedMsg{Results: res, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "X", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
			s.selected = min(s.selected, max(len(s.results)-1, 0))
		}
		s.loaded = true
		return s, nil

	case historyClearedMsg:
		if msg.Err != nil {
			s.status = "Could not clear history: " + msg.Err.Error()
			return s, nil
		}
		s.status = fmt.Sprintf("Removed %d result(s).", msg.Removed)
		s.expanded = make(map[int]bool)
		s.selected = 0
		return s, s.load()

	case tea.KeyPressMsg:
		if s.confirming {
			return s, s.handleConfirm(msg)
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		case "x":
			if len(s.results) > 0 {
				s.confirming = true
				s.status = ""
				s.input = components.NewTextInput(
					fmt.Sprintf("Type %q to delete every archived result:", clearWord), clearWord, len(clearWord))
				return s, s.input.Init()
			}
		}
		return s, nil
	}

	if s.confirming {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *HistoryScreen) handleConfirm(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.confirming = false
		return nil
	case "enter":
		s.confirming = false
		if strings.TrimSpace(s.input.Value()) != clearWord {
			s.status = "History kept."
			return nil
		}
		repo := s.repo
		return func() tea.Msg {
			n, err := repo.Clear(context.Background())
			return historyClearedMsg{Removed: n, Err: err}
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(s.results) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No completed sessions yet."))
		b.WriteString("\n")
	}

	for i, r := range s.results {
		score, total := scoring.Totals(r.Scores)

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %-8s  %d / %d",
			prefix, r.CompletedAt.Local().Format("Jan 02, 2006 15:04"), r.Inventory, score, total)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, e := range r.Scores {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+results.ScoreLine(e))))
				b.WriteString("\n")
			}
		}
	}

	if s.confirming {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
		b.WriteString("\n")
	}
	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(s.status)))
	}

	return b.String()
}

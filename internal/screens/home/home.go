package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mai/internal/router"
	"github.com/abhisek/mai/internal/screen"
	"github.com/abhisek/mai/internal/screens/env"
	"github.com/abhisek/mai/internal/screens/history"
	"github.com/abhisek/mai/internal/screens/questionnaire"
	"github.com/abhisek/mai/internal/scoring"
	"github.com/abhisek/mai/internal/store"
	"github.com/abhisek/mai/internal/ui/components"
	"github.com/abhisek/mai/internal/ui/theme"
)

type lastResultMsg struct {
	Result *store.Result
}

// HomeScreen is the main menu.
type HomeScreen struct {
	env  *env.Env
	menu components.Menu
	last *store.Result
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(e *env.Env) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: questionnaire.New(e)}
			}
		}},
		{Label: "HISTORY", Disabled: e.Results == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(e.Results)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		env:  e,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	repo := h.env.Results
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		res, err := repo.List(context.Background(), store.QueryOpts{Limit: 1})
		if err != nil || len(res) == 0 {
			return lastResultMsg{}
		}
		return lastResultMsg{Result: &res[0]}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(lastResultMsg); ok {
		h.last = m.Result
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	inv := h.env.Inventory
	cw := min(max(width-8, 20), 64)

	var sections []string

	sections = append(sections, theme.Title.Width(cw).Render(inv.Title))

	pages := (inv.NumQuestions() + h.env.PageSize() - 1) / h.env.PageSize()
	info := fmt.Sprintf("%d statements · %d categories · %d page(s)",
		inv.NumQuestions(), len(inv.Categories), pages)
	sections = append(sections, theme.Subtitle.Width(cw).Render(info))

	sections = append(sections, lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(
		"Answer each statement True or False as it describes you. "+
			"There are no right or wrong answers."))

	if h.last != nil {
		score, total := scoring.Totals(h.last.Scores)
		sections = append(sections, theme.Hint.Width(cw).Render(fmt.Sprintf(
			"Last completed %s: %d / %d",
			h.last.CompletedAt.Local().Format("Jan 02, 2006"), score, total)))
	}

	sections = append(sections, lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Render(h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

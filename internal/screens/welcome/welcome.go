package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mai/internal/router"
	"github.com/abhisek/mai/internal/screen"
	"github.com/abhisek/mai/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const Tagline = "Thinking about your thinking"

const checklistArt = `╭───────────────╮
│  ☐ ─────────  │
│  ☐ ───────    │
│  ☐ ────────── │
│  ☐ ─────      │
╰───────────────╯`

// checkRows is the number of boxes in checklistArt.
const checkRows = 4

type tickMsg time.Time

// WelcomeScreen shows a short splash before the home screen. Any key skips it.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		if w.transitioned {
			return w, nil
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// checked returns how many checklist rows are ticked at the current time.
func (w *WelcomeScreen) checked() int {
	if w.elapsed < phase1End {
		return 0
	}
	span := phase2End - phase1End
	n := int((w.elapsed - phase1End) * checkRows / span)
	return min(n+1, checkRows)
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	lines := strings.Split(checklistArt, "\n")
	ticks := w.checked()
	for i := 1; i <= ticks && i < len(lines)-1; i++ {
		lines[i] = strings.Replace(lines[i], "☐", "☑", 1)
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Join(lines, "\n")))

	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline))
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}

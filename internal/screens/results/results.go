// Package results shows the category scores of a submitted session and
// offers exports, an optional reflection and a fresh start.
package results

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mai/internal/export"
	"github.com/abhisek/mai/internal/reflection"
	"github.com/abhisek/mai/internal/router"
	"github.com/abhisek/mai/internal/screen"
	"github.com/abhisek/mai/internal/screens/env"
	"github.com/abhisek/mai/internal/scoring"
	"github.com/abhisek/mai/internal/session"
	"github.com/abhisek/mai/internal/store"
	"github.com/abhisek/mai/internal/ui/components"
	"github.com/abhisek/mai/internal/ui/layout"
)

// Screen is the "Your Results" screen.
type Screen struct {
	env         *env.Env
	state       *session.State
	sessionID   string
	answers     string
	scores      []scoring.Entry
	completedAt time.Time

	menu components.Menu

	archiveID  int
	reflecting bool
	reflection *reflection.Reflection
	status     string
	statusErr  bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the results screen for a submitted session. Scores are
// computed once from the session snapshot.
func New(e *env.Env, st *session.State, sessionID string) *Screen {
	v := st.Snapshot()
	s := &Screen{
		env:         e,
		state:       st,
		sessionID:   sessionID,
		answers:     v.Answers.String(),
		scores:      scoring.Compute(v.Answers, e.Inventory.Categories),
		completedAt: time.Now(),
	}

	items := []components.MenuItem{
		{Label: "Download CSV", Action: func() tea.Cmd { return s.exportCSV() }},
		{Label: "Download JSON", Action: func() tea.Cmd { return s.exportJSON() }},
	}
	if e.Reflector != nil {
		items = append(items, components.MenuItem{Label: "Reflect on my profile", Action: func() tea.Cmd { return s.reflect() }})
	}
	items = append(items,
		components.MenuItem{Label: "New session", Action: func() tea.Cmd { return s.newSession() }},
		components.MenuItem{Label: "Home", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopToRootMsg{} }
		}},
	)
	s.menu = components.NewMenu(items)
	return s
}

// Scores returns the computed category scores.
func (s *Screen) Scores() []scoring.Entry { return s.scores }

func (s *Screen) Init() tea.Cmd {
	repo := s.env.Results
	if repo == nil {
		return nil
	}
	res := store.Result{
		SessionID:   s.sessionID,
		Inventory:   s.env.Inventory.Name,
		Answers:     s.answers,
		CompletedAt: s.completedAt,
		Scores:      s.scores,
	}
	return func() tea.Msg {
		id, err := repo.Save(context.Background(), res)
		return archivedMsg{ID: id, Err: err}
	}
}

func (s *Screen) Title() string {
	return "Your Results"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case archivedMsg:
		if msg.Err != nil {
			s.env.Log().Error("archive result", "session", s.sessionID, "error", msg.Err)
			s.setStatus(fmt.Sprintf("Could not archive result: %v", msg.Err), true)
		} else {
			s.archiveID = msg.ID
			s.env.Log().Info("result archived", "session", s.sessionID, "id", msg.ID)
		}
		return s, nil

	case exportedMsg:
		if msg.Err != nil {
			s.env.Log().Error("export", "file", msg.Name, "error", msg.Err)
			s.setStatus(fmt.Sprintf("Could not save %s: %v", msg.Name, msg.Err), true)
		} else {
			s.setStatus("Saved "+msg.Path, false)
		}
		return s, nil

	case reflectedMsg:
		s.reflecting = false
		if msg.Err != nil {
			s.env.Log().Warn("reflection", "session", s.sessionID, "error", msg.Err)
			s.setStatus(fmt.Sprintf("Reflection unavailable: %v", msg.Err), true)
		} else {
			s.reflection = msg.Reflection
			s.status = ""
		}
		return s, nil

	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) setStatus(msg string, isErr bool) {
	s.status = msg
	s.statusErr = isErr
}

func (s *Screen) exportCSV() tea.Cmd {
	data, err := export.CSV(export.ToTable(s.scores))
	if err != nil {
		s.setStatus(err.Error(), true)
		return nil
	}
	return s.save(export.Filename(s.env.Inventory.Name, "csv"), data)
}

func (s *Screen) exportJSON() tea.Cmd {
	data, err := export.JSON(export.Report{
		Inventory:   s.env.Inventory.Name,
		SessionID:   s.sessionID,
		CompletedAt: s.completedAt,
		Answers:     s.answers,
		Scores:      s.scores,
	})
	if err != nil {
		s.setStatus(err.Error(), true)
		return nil
	}
	return s.save(export.Filename(s.env.Inventory.Name, "json"), data)
}

func (s *Screen) save(name string, data []byte) tea.Cmd {
	saver := s.env.Saver
	if saver == nil {
		s.setStatus("Export is not configured", true)
		return nil
	}
	path := name
	if p, ok := saver.(interface{ Path(string) string }); ok {
		path = p.Path(name)
	}
	return func() tea.Msg {
		err := saver.Save(context.Background(), name, data)
		return exportedMsg{Name: name, Path: path, Err: err}
	}
}

func (s *Screen) reflect() tea.Cmd {
	if s.reflecting {
		return nil
	}
	s.reflecting = true
	s.setStatus("Reflecting...", false)
	svc := s.env.Reflector
	in := reflection.Input{Title: s.env.Inventory.Title, Scores: s.scores}
	return func() tea.Msg {
		r, err := svc.Reflect(context.Background(), in)
		return reflectedMsg{Reflection: r, Err: err}
	}
}

// newSession clears the session and returns to the questionnaire.
func (s *Screen) newSession() tea.Cmd {
	s.state.Reset()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

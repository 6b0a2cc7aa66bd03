// Package questionnaire implements the paged true/false answering screen.
package questionnaire

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/mai/internal/answers"
	"github.com/abhisek/mai/internal/router"
	"github.com/abhisek/mai/internal/screen"
	"github.com/abhisek/mai/internal/screens/env"
	"github.com/abhisek/mai/internal/screens/results"
	"github.com/abhisek/mai/internal/session"
	"github.com/abhisek/mai/internal/store"
	"github.com/abhisek/mai/internal/ui/components"
	"github.com/abhisek/mai/internal/ui/layout"
)

// Focus targets within a question row.
const (
	choiceAffirm = iota
	choiceDeny
)

// Screen presents one page of statements at a time with an affirm/deny
// pair per statement and Back/Next/Submit controls.
type Screen struct {
	env       *env.Env
	state     *session.State
	sessionID string
	cancel    func()
	pending   []store.SessionEventData

	// cursor is the focused row on the page; len(page) is the control row.
	cursor int
	choice int
	button int

	confirmQuit bool
	status      string
	errMsg      string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)

// New creates a questionnaire screen with a fresh session.
func New(e *env.Env) *Screen {
	s := &Screen{env: e, sessionID: uuid.New().String()}
	st, err := session.New(e.Inventory.NumQuestions(), e.PageSize(), session.WithLogger(e.Log()))
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.state = st
	s.cancel = st.Subscribe(s.observe)
	return s
}

// State exposes the underlying session.
func (s *Screen) State() *session.State { return s.state }

// SessionID returns the id of the current session.
func (s *Screen) SessionID() string { return s.sessionID }

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Questionnaire"
}

func (s *Screen) Status() string {
	if s.state == nil {
		return ""
	}
	v := s.state.Snapshot()
	return pageLabel(v.Page, v.TotalPages)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Discard"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "T/F", Description: "Answer"},
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Quit"},
	}
}

// observe receives every session mutation and queues it for the event log.
func (s *Screen) observe(ev session.Event) {
	s.pending = append(s.pending, store.SessionEventData{
		SessionID:  s.sessionID,
		Action:     ev.Kind.String(),
		QuestionID: ev.QuestionID,
		Page:       ev.Page,
	})

	switch ev.Kind {
	case session.EventPageChanged:
		s.cursor, s.choice, s.button = 0, choiceAffirm, 0
	case session.EventReset:
		s.sessionID = uuid.New().String()
		s.cursor, s.choice, s.button = 0, choiceAffirm, 0
		s.confirmQuit = false
		s.status = ""
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsPersistedMsg:
		if msg.Err != nil {
			s.env.Log().Warn("persist session events", "session", s.sessionID, "error", msg.Err)
		}
		return s, nil

	case tea.KeyPressMsg:
		if s.state == nil {
			if msg.String() == "esc" {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return s, nil
		}
		cmd := s.handleKey(msg)
		return s, tea.Batch(cmd, s.flush())
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s.leave()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return nil
	}

	v := s.state.Snapshot()

	start, end := v.PageRange()
	rows := end - start

	switch key {
	case "esc":
		if v.Answers.Count(answers.Unset) < len(v.Answers) {
			s.confirmQuit = true
			return nil
		}
		return s.leave()
	case "up", "k", "shift+tab":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j", "tab":
		if s.cursor < rows {
			s.cursor++
		}
	case "left", "h":
		if s.cursor < rows {
			s.choice = choiceAffirm
		} else if s.button > 0 {
			s.button--
		}
	case "right", "l":
		if s.cursor < rows {
			s.choice = choiceDeny
		} else if s.button < len(s.buttons())-1 {
			s.button++
		}
	case "t", "y", "1":
		if s.cursor < rows {
			return s.answer(start+s.cursor, true)
		}
	case "f", "n", "2":
		if s.cursor < rows {
			return s.answer(start+s.cursor, false)
		}
	case "pgdown", "]":
		return s.next()
	case "pgup", "[":
		return s.back()
	case "enter", "space":
		if s.cursor < rows {
			return s.pairFor(start + s.cursor).activate(s.choice)
		}
		return s.press()
	}
	return nil
}

// answer records the response and moves focus to the next row.
func (s *Screen) answer(id int, value bool) tea.Cmd {
	if err := s.state.RecordAnswer(id, value); err != nil {
		s.status = err.Error()
		return nil
	}
	s.status = ""
	start, end := s.state.Snapshot().PageRange()
	if s.cursor < end-start {
		s.cursor++
	}
	return nil
}

type pair struct {
	components.AnswerPair
}

func (p pair) activate(choice int) tea.Cmd {
	if choice == choiceDeny {
		return p.Deny.Activate()
	}
	return p.Affirm.Activate()
}

// pairFor builds the toggle pair for question id from the current answers.
func (s *Screen) pairFor(id int) pair {
	val := s.state.Answer(id)
	return pair{components.NewAnswerPair(val != answers.Unset, val == answers.True, func(b bool) tea.Cmd {
		return s.answer(id, b)
	})}
}

// buttons returns the visible controls with their disabled flags.
func (s *Screen) buttons() []components.Button {
	ctl := s.state.Snapshot().Controls()

	back := components.NewButton("Back", s.back)
	back.Disabled = ctl.BackDisabled
	btns := []components.Button{back}

	if ctl.ShowNext {
		next := components.NewButton("Next", s.next)
		next.Disabled = ctl.NextDisabled
		btns = append(btns, next)
	}
	if ctl.ShowSubmit {
		submit := components.NewButton("Submit", s.submit)
		submit.Disabled = ctl.SubmitDisabled
		btns = append(btns, submit)
	}
	return btns
}

func (s *Screen) press() tea.Cmd {
	btns := s.buttons()
	if s.button >= len(btns) {
		s.button = len(btns) - 1
	}
	b := btns[s.button]
	if b.Disabled {
		s.status = disabledHint(b.Label)
		return nil
	}
	return b.Press()
}

func (s *Screen) back() tea.Cmd {
	if err := s.state.RetreatPage(); err != nil {
		s.status = err.Error()
	}
	return nil
}

func (s *Screen) next() tea.Cmd {
	err := s.state.AdvancePage()
	switch {
	case err == nil:
		s.status = ""
	case errors.Is(err, session.ErrPageIncomplete):
		s.status = disabledHint("Next")
	default:
		s.status = err.Error()
	}
	return nil
}

func (s *Screen) submit() tea.Cmd {
	if err := s.state.Submit(); err != nil {
		s.status = err.Error()
		return nil
	}
	s.status = ""
	return s.showResults()
}

func (s *Screen) showResults() tea.Cmd {
	scr := results.New(s.env, s.state, s.sessionID)
	return func() tea.Msg { return router.PushScreenMsg{Screen: scr} }
}

// leave detaches from the session and returns to the previous screen.
func (s *Screen) leave() tea.Cmd {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

// flush writes queued session events to the event log.
func (s *Screen) flush() tea.Cmd {
	events := s.pending
	s.pending = nil
	repo := s.env.Events
	if repo == nil || len(events) == 0 {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		for i, ev := range events {
			if err := repo.AppendSessionEvent(ctx, ev); err != nil {
				return eventsPersistedMsg{Count: i, Err: err}
			}
		}
		return eventsPersistedMsg{Count: len(events)}
	}
}

func disabledHint(label string) string {
	switch label {
	case "Next":
		return "Answer every statement on this page to continue."
	case "Submit":
		return "Answer every statement before submitting."
	case "Back":
		return "This is the first page."
	}
	return ""
}

package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mai/internal/router"
	"github.com/abhisek/mai/internal/scoring"
	"github.com/abhisek/mai/internal/store"
)

type memResults struct {
	results []store.Result
	cleared int
}

func (m *memResults) Save(_ context.Context, r store.Result) (int, error) {
	m.results = append(m.results, r)
	return len(m.results), nil
}

func (m *memResults) List(_ context.Context, _ store.QueryOpts) ([]store.Result, error) {
	return m.results, nil
}

func (m *memResults) Get(_ context.Context, id int) (*store.Result, error) {
	for _, r := range m.results {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, nil
}

func (m *memResults) Clear(_ context.Context) (int, error) {
	n := len(m.results)
	m.results = nil
	m.cleared++
	return n, nil
}

func testRepo() *memResults {
	return &memResults{results: []store.Result{
		{
			ID: 2, SessionID: "b", Inventory: "MAI", Answers: "TTT",
			CompletedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			Scores: []scoring.Entry{
				{Label: "Knowledge about Cognition", Score: 1, Total: 1},
				{Label: "Procedural Knowledge", Score: 1, Total: 1},
			},
		},
		{
			ID: 1, SessionID: "a", Inventory: "MAI", Answers: "FFT",
			CompletedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			Scores: []scoring.Entry{
				{Label: "Knowledge about Cognition", Score: 0, Total: 1},
				{Label: "Procedural Knowledge", Score: 0, Total: 1},
			},
		},
	}}
}

func loaded(t *testing.T, repo store.ResultRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	s.Update(s.Init()())
	if !s.loaded {
		t.Fatal("expected history to be loaded")
	}
	return s
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestHistory_ListsResults(t *testing.T) {
	s := loaded(t, testRepo())

	view := s.View(100, 30)
	if !strings.Contains(view, "2 / 2") || !strings.Contains(view, "0 / 2") {
		t.Errorf("expected overall totals in view:\n%s", view)
	}
	if strings.Contains(view, "Procedural Knowledge") {
		t.Error("details should be collapsed by default")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(100, 30), "Procedural Knowledge: 1 / 1") {
		t.Error("enter should expand the selected result")
	}
}

func TestHistory_Empty(t *testing.T) {
	s := loaded(t, &memResults{})
	if !strings.Contains(s.View(100, 30), "No completed sessions") {
		t.Error("expected empty-state message")
	}
}

func TestHistory_Navigation(t *testing.T) {
	s := loaded(t, testRepo())

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop the history screen")
	}
}

func TestHistory_ClearRequiresConfirmation(t *testing.T) {
	repo := testRepo()
	s := loaded(t, repo)

	s.Update(keyPress('x'))
	if !s.confirming {
		t.Fatal("x should open the confirmation prompt")
	}
	for _, r := range "nope" {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil || repo.cleared != 0 {
		t.Fatal("a wrong confirmation word must not clear the archive")
	}

	s.Update(keyPress('x'))
	for _, r := range clearWord {
		s.Update(keyPress(r))
	}
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected clear command")
	}
	_, reload := s.Update(cmd())
	if repo.cleared != 1 {
		t.Errorf("cleared %d times, want 1", repo.cleared)
	}
	if reload == nil {
		t.Fatal("expected reload after clear")
	}
	s.Update(reload())
	if len(s.results) != 0 {
		t.Errorf("expected empty history after clear, got %d", len(s.results))
	}
	if !strings.Contains(s.status, "Removed 2") {
		t.Errorf("status = %q", s.status)
	}
}

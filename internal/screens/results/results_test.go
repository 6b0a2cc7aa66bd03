package results

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mai/internal/inventory"
	"github.com/abhisek/mai/internal/router"
	"github.com/abhisek/mai/internal/screens/env"
	"github.com/abhisek/mai/internal/session"
	"github.com/abhisek/mai/internal/store"
)

type memSaver struct {
	files map[string][]byte
	err   error
}

func (m *memSaver) Save(_ context.Context, name string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	m.files[name] = data
	return nil
}

// memResults records saved results; other methods are unused.
type memResults struct {
	store.ResultRepo
	saved []store.Result
}

func (m *memResults) Save(_ context.Context, r store.Result) (int, error) {
	m.saved = append(m.saved, r)
	return len(m.saved), nil
}

// submitted returns a finished session over the demo inventory answered
// True, False, True.
func submitted(t *testing.T) *session.State {
	t.Helper()
	st, err := session.New(3, 10)
	if err != nil {
		t.Fatal(err)
	}
	for id, v := range []bool{true, false, true} {
		if err := st.RecordAnswer(id, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := st.Submit(); err != nil {
		t.Fatal(err)
	}
	return st
}

func testEnv() (*env.Env, *memSaver, *memResults) {
	saver := &memSaver{}
	repo := &memResults{}
	return &env.Env{
		Inventory: inventory.Default(),
		Saver:     saver,
		Results:   repo,
	}, saver, repo
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func down() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: tea.KeyDown} }

// press sends msg, runs the resulting command and feeds its message back.
func press(s *Screen, msg tea.Msg) tea.Msg {
	_, cmd := s.Update(msg)
	if cmd == nil {
		return nil
	}
	out := cmd()
	s.Update(out)
	return out
}

func TestScoresAndView(t *testing.T) {
	e, _, _ := testEnv()
	s := New(e, submitted(t), "sess-1")

	scores := s.Scores()
	want := []string{
		"Knowledge about Cognition: 1 / 1",
		"Procedural Knowledge: 0 / 1",
		"Conditional Knowledge: 1 / 1",
	}
	if len(scores) != len(want) {
		t.Fatalf("got %d scores", len(scores))
	}
	view := s.View(100, 40)
	for i, w := range want {
		if ScoreLine(scores[i]) != w {
			t.Errorf("score %d = %q, want %q", i, ScoreLine(scores[i]), w)
		}
		if !strings.Contains(view, w) {
			t.Errorf("view missing %q", w)
		}
	}
	if !strings.Contains(view, "Your Results") {
		t.Error("view should carry the results heading")
	}
}

func TestInitArchivesResult(t *testing.T) {
	e, _, repo := testEnv()
	s := New(e, submitted(t), "sess-1")

	msg := s.Init()()
	s.Update(msg)

	if len(repo.saved) != 1 {
		t.Fatalf("expected one archived result, got %d", len(repo.saved))
	}
	got := repo.saved[0]
	if got.SessionID != "sess-1" || got.Inventory != "MAI" || got.Answers != "TFT" {
		t.Errorf("unexpected archived result: %+v", got)
	}
	if s.archiveID != 1 {
		t.Errorf("archiveID = %d", s.archiveID)
	}
}

func TestInitWithoutArchive(t *testing.T) {
	e, _, _ := testEnv()
	e.Results = nil
	if cmd := New(e, submitted(t), "x").Init(); cmd != nil {
		t.Error("no archive should mean no init command")
	}
}

func TestDownloadCSV(t *testing.T) {
	e, saver, _ := testEnv()
	s := New(e, submitted(t), "sess-1")

	press(s, enter())

	data, ok := saver.files["MAI_scores.csv"]
	if !ok {
		t.Fatalf("expected MAI_scores.csv, got %v", saver.files)
	}
	want := "Category,Score,Total\n" +
		"Knowledge about Cognition,1,1\n" +
		"Procedural Knowledge,0,1\n" +
		"Conditional Knowledge,1,1\n"
	if string(data) != want {
		t.Errorf("csv =\n%s\nwant\n%s", data, want)
	}
	if !strings.HasPrefix(s.status, "Saved") || s.statusErr {
		t.Errorf("status = %q", s.status)
	}
}

func TestDownloadJSON(t *testing.T) {
	e, saver, _ := testEnv()
	s := New(e, submitted(t), "sess-1")

	press(s, down())
	press(s, enter())

	data := string(saver.files["MAI_scores.json"])
	for _, want := range []string{`"session_id": "sess-1"`, `"answers": "TFT"`, `"label": "Procedural Knowledge"`} {
		if !strings.Contains(data, want) {
			t.Errorf("json missing %s:\n%s", want, data)
		}
	}
}

func TestSaveErrorSurfaced(t *testing.T) {
	e, saver, _ := testEnv()
	saver.err = errors.New("disk full")
	s := New(e, submitted(t), "sess-1")

	press(s, enter())

	if !s.statusErr || !strings.Contains(s.status, "disk full") {
		t.Errorf("expected error status, got %q (err=%v)", s.status, s.statusErr)
	}
	if !strings.Contains(s.View(100, 40), "disk full") {
		t.Error("error should be visible to the respondent")
	}
}

func TestReflectHiddenWithoutProvider(t *testing.T) {
	e, _, _ := testEnv()
	s := New(e, submitted(t), "sess-1")
	for _, item := range s.menu.Items {
		if strings.HasPrefix(item.Label, "Reflect") {
			t.Fatal("reflection should be hidden without a provider")
		}
	}
}

func TestNewSessionResets(t *testing.T) {
	e, _, _ := testEnv()
	st := submitted(t)
	s := New(e, st, "sess-1")

	// Menu: CSV, JSON, New session, Home.
	press(s, down())
	press(s, down())
	msg := press(s, enter())

	if _, ok := msg.(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", msg)
	}
	if st.Finished() || st.Page() != 0 {
		t.Error("new session should reset the state")
	}
	if got := st.Snapshot().Answers.String(); got != "---" {
		t.Errorf("answers after reset = %q", got)
	}
}

func TestEscGoesHome(t *testing.T) {
	e, _, _ := testEnv()
	s := New(e, submitted(t), "sess-1")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("Esc should return to the home screen")
	}
}

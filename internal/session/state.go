package session

import (
	"fmt"
	"log/slog"

	"github.com/abhisek/mai/internal/answers"
	"github.com/abhisek/mai/internal/paginate"
)

// Phase is the coarse state of a session.
type Phase int

const (
	PhaseAnswering Phase = iota // Respondent is working through pages
	PhaseFinished               // Submitted; terminal until Reset
)

func (p Phase) String() string {
	if p == PhaseFinished {
		return "finished"
	}
	return "answering"
}

// State is the mutable record of one respondent's session: per-question
// answers, the current page and the completion flag.
//
// Invariants: 0 <= page < TotalPages, and finished implies every slot is set.
// State is owned by a single session and is not safe for concurrent use.
type State struct {
	answers  answers.Set
	page     int
	perPage  int
	finished bool

	subscribers []subscriber
	nextSubID   int
	logger      *slog.Logger
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger used for mutation tracing.
func WithLogger(l *slog.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a session over numQuestions questions shown perPage at a time.
func New(numQuestions, perPage int, opts ...Option) (*State, error) {
	if numQuestions < 1 {
		return nil, fmt.Errorf("session needs at least one question, got %d", numQuestions)
	}
	if perPage < 1 {
		return nil, fmt.Errorf("questions per page must be positive, got %d", perPage)
	}
	s := &State{
		answers: answers.New(numQuestions),
		perPage: perPage,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NumQuestions returns the number of answer slots.
func (s *State) NumQuestions() int { return len(s.answers) }

// PerPage returns the page size.
func (s *State) PerPage() int { return s.perPage }

// TotalPages returns the number of pages.
func (s *State) TotalPages() int { return paginate.TotalPages(len(s.answers), s.perPage) }

// Page returns the 0-based current page.
func (s *State) Page() int { return s.page }

// Finished reports whether the session has been submitted.
func (s *State) Finished() bool { return s.finished }

// Phase returns the coarse state machine phase.
func (s *State) Phase() Phase {
	if s.finished {
		return PhaseFinished
	}
	return PhaseAnswering
}

// Answer returns the value of slot id, or Unset when id is out of range.
func (s *State) Answer(id int) answers.Value {
	if id < 0 || id >= len(s.answers) {
		return answers.Unset
	}
	return s.answers[id]
}

// RecordAnswer sets slot id to value, overwriting any previous response.
func (s *State) RecordAnswer(id int, value bool) error {
	if id < 0 || id >= len(s.answers) {
		return &OutOfRangeError{ID: id, Count: len(s.answers)}
	}
	if s.finished {
		return ErrFinished
	}
	s.answers[id] = answers.Of(value)
	s.notify(EventAnswered, id)
	return nil
}

// AdvancePage moves to the next page. It requires every question on the
// current page to be answered; otherwise the page is left unchanged.
func (s *State) AdvancePage() error {
	if s.finished {
		return ErrFinished
	}
	start, end := paginate.Slice(s.page, s.perPage, len(s.answers))
	if missing := s.missing(start, end); len(missing) > 0 {
		return &PageIncompleteError{Page: s.page, Missing: missing}
	}
	if s.page >= s.TotalPages()-1 {
		return ErrNoNextPage
	}
	s.page++
	s.notify(EventPageChanged, -1)
	return nil
}

// RetreatPage moves to the previous page. Answers are not required.
func (s *State) RetreatPage() error {
	if s.finished {
		return ErrFinished
	}
	if s.page == 0 {
		return ErrNoPreviousPage
	}
	s.page--
	s.notify(EventPageChanged, -1)
	return nil
}

// Submit marks the session finished. It is only accepted on the last page
// and once every slot is set.
func (s *State) Submit() error {
	if s.finished {
		return ErrFinished
	}
	if s.page != s.TotalPages()-1 {
		return ErrNotLastPage
	}
	if missing := s.missing(0, len(s.answers)); len(missing) > 0 {
		return &IncompleteSubmissionError{Missing: missing}
	}
	s.finished = true
	s.notify(EventSubmitted, -1)
	return nil
}

// Reset clears every answer and returns to the first page.
func (s *State) Reset() {
	for i := range s.answers {
		s.answers[i] = answers.Unset
	}
	s.page = 0
	s.finished = false
	s.notify(EventReset, -1)
}

func (s *State) missing(start, end int) []int {
	var ids []int
	for i := start; i < end; i++ {
		if !s.answers.IsSet(i) {
			ids = append(ids, i)
		}
	}
	return ids
}

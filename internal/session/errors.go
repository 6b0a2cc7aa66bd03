package session

import (
	"errors"
	"fmt"
)

// Sentinel errors for recoverable conditions. The UI reacts to these by
// keeping the corresponding control disabled.
var (
	ErrPageIncomplete       = errors.New("current page has unanswered questions")
	ErrIncompleteSubmission = errors.New("not every question has been answered")
	ErrNoNextPage           = errors.New("already on the last page")
	ErrNoPreviousPage       = errors.New("already on the first page")
	ErrNotLastPage          = errors.New("submit is only available on the last page")
	ErrFinished             = errors.New("session already submitted")
)

// OutOfRangeError indicates a question id outside [0, Count).
// It signals a caller bug, never respondent input.
type OutOfRangeError struct {
	ID    int
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("question id %d out of range [0, %d)", e.ID, e.Count)
}

// PageIncompleteError reports which questions on the current page are unset.
type PageIncompleteError struct {
	Page    int
	Missing []int
}

func (e *PageIncompleteError) Error() string {
	return fmt.Sprintf("page %d: %d unanswered question(s)", e.Page+1, len(e.Missing))
}

func (e *PageIncompleteError) Is(target error) bool { return target == ErrPageIncomplete }

// IncompleteSubmissionError reports which questions are unset at submit time.
type IncompleteSubmissionError struct {
	Missing []int
}

func (e *IncompleteSubmissionError) Error() string {
	return fmt.Sprintf("cannot submit: %d unanswered question(s)", len(e.Missing))
}

func (e *IncompleteSubmissionError) Is(target error) bool { return target == ErrIncompleteSubmission }

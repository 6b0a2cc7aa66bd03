package session

import "slices"

// EventKind identifies the mutation that produced an Event.
type EventKind int

const (
	EventAnswered EventKind = iota
	EventPageChanged
	EventSubmitted
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventAnswered:
		return "answered"
	case EventPageChanged:
		return "page-changed"
	case EventSubmitted:
		return "submitted"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event describes a successful state mutation.
type Event struct {
	Kind EventKind

	// QuestionID is set for EventAnswered, -1 otherwise.
	QuestionID int

	// Page is the current page after the mutation.
	Page int
}

type subscriber struct {
	id int
	fn func(Event)
}

// Subscribe registers fn to be called synchronously after every successful
// mutation, in subscription order. The returned func removes it.
func (s *State) Subscribe(fn func(Event)) (cancel func()) {
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *State) notify(kind EventKind, questionID int) {
	ev := Event{Kind: kind, QuestionID: questionID, Page: s.page}
	s.logger.Debug("session event", "kind", kind.String(), "question", questionID, "page", s.page)
	for _, sub := range slices.Clone(s.subscribers) {
		sub.fn(ev)
	}
}

package questionnaire

// eventsPersistedMsg reports the outcome of writing session events.
type eventsPersistedMsg struct {
	Count int
	Err   error
}

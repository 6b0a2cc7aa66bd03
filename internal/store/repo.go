package store

import (
	"context"
	"time"

	"github.com/abhisek/mai/internal/scoring"
)

// QueryOpts configures queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // id/sequence > After
	Before int64     // id/sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Result is an archived, submitted session.
type Result struct {
	ID          int
	SessionID   string
	Inventory   string
	Answers     string
	CompletedAt time.Time
	Scores      []scoring.Entry
}

// ResultRepo manages archived results.
type ResultRepo interface {
	// Save stores a result with its ordered scores and returns its id.
	Save(ctx context.Context, r Result) (int, error)

	// List returns results newest first.
	List(ctx context.Context, opts QueryOpts) ([]Result, error)

	// Get returns the result with the given id, or nil if none exists.
	Get(ctx context.Context, id int) (*Result, error)

	// Clear removes every archived result and its session events, and
	// returns the number of results removed.
	Clear(ctx context.Context) (int, error)
}

// SessionEventData captures one questionnaire state change.
type SessionEventData struct {
	SessionID  string
	Action     string
	QuestionID int
	Page       int
}

// SessionEventRecord is a stored session event.
type SessionEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to events.
type EventRepo interface {
	// AppendSessionEvent records a questionnaire state change.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QuerySessionEvents returns the events of one session in sequence order.
	QuerySessionEvents(ctx context.Context, sessionID string) ([]SessionEventRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM event, or nil if none exists.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)
}

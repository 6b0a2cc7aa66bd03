package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names.
const (
	resultsTable       = "results"
	resultScoresTable  = "result_scores"
	sessionEventsTable = "session_events"
	llmRequestsTable   = "llm_requests"
)

var (
	// ResultsColumns holds the columns for the "results" table.
	ResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "inventory", Type: field.TypeString},
		{Name: "answers", Type: field.TypeString},
		{Name: "completed_at", Type: field.TypeInt64},
	}
	// ResultsTable holds the schema information for the "results" table.
	ResultsTable = &schema.Table{
		Name:       resultsTable,
		Columns:    ResultsColumns,
		PrimaryKey: []*schema.Column{ResultsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "result_completed_at", Columns: []*schema.Column{ResultsColumns[4]}},
			{Name: "result_session_id", Unique: true, Columns: []*schema.Column{ResultsColumns[1]}},
		},
	}

	// ResultScoresColumns holds the columns for the "result_scores" table.
	ResultScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "label", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "result_id", Type: field.TypeInt},
	}
	// ResultScoresTable holds the schema information for the "result_scores" table.
	ResultScoresTable = &schema.Table{
		Name:       resultScoresTable,
		Columns:    ResultScoresColumns,
		PrimaryKey: []*schema.Column{ResultScoresColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "result_scores_results_scores",
				Columns:    []*schema.Column{ResultScoresColumns[5]},
				RefColumns: []*schema.Column{ResultsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "resultscore_result_id_position", Unique: true, Columns: []*schema.Column{ResultScoresColumns[5], ResultScoresColumns[1]}},
		},
	}

	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeInt, Default: -1},
		{Name: "page", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       sessionEventsTable,
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "sessionevent_session_id", Columns: []*schema.Column{SessionEventsColumns[3]}},
		},
	}

	// LLMRequestsColumns holds the columns for the "llm_requests" table.
	LLMRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LLMRequestsTable holds the schema information for the "llm_requests" table.
	LLMRequestsTable = &schema.Table{
		Name:       llmRequestsTable,
		Columns:    LLMRequestsColumns,
		PrimaryKey: []*schema.Column{LLMRequestsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequest_purpose", Columns: []*schema.Column{LLMRequestsColumns[5]}},
			{Name: "llmrequest_timestamp", Columns: []*schema.Column{LLMRequestsColumns[2]}},
		},
	}

	// Tables holds all the tables in the schema, in creation order.
	Tables = []*schema.Table{
		ResultsTable,
		ResultScoresTable,
		SessionEventsTable,
		LLMRequestsTable,
	}
)

func init() {
	ResultScoresTable.ForeignKeys[0].RefTable = ResultsTable
}

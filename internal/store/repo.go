package store

import (
	"context"
	"time"
)

// ResultRecord is one saved diagnostic result in the normalized shape the
// remote coaching service accepts. Optional score fields stay zero-valued
// when the scoring kind doesn't produce them.
type ResultRecord struct {
	ID              int
	TestID          string
	TestTitle       string
	ResultType      string
	ResultTitle     string
	ResultEmoji     string
	Tips            []string
	TotalScore      int
	HasTotal        bool
	CategoryScores  map[string]int
	DimensionScores map[string]int
	MainIssue       string
	Synced          bool
	CreatedAt       time.Time
}

// ResultQueryOpts filters result listings.
type ResultQueryOpts struct {
	TestID     string // only this instrument ("" = all)
	Limit      int    // max results (0 = unlimited)
	OnlyUnsync bool   // only rows not yet pushed to the remote
}

// ResultRepo manages saved diagnostic results.
type ResultRepo interface {
	// Save stores a result and fills in its ID.
	Save(ctx context.Context, rec *ResultRecord) error

	// List returns results newest-first.
	List(ctx context.Context, opts ResultQueryOpts) ([]ResultRecord, error)

	// MarkSynced flags a stored result as delivered to the remote.
	MarkSynced(ctx context.Context, id int) error

	// Clear deletes every stored result and returns the count removed.
	Clear(ctx context.Context) (int, error)
}

// ChatTurn is one persisted conversation message.
type ChatTurn struct {
	Sequence  int64
	SessionID string
	Role      string
	Content   string
	Timestamp time.Time
}

// ChatRepo manages coaching conversation history.
type ChatRepo interface {
	// Append records one turn.
	Append(ctx context.Context, turn ChatTurn) error

	// History returns a session's turns in sequence order.
	History(ctx context.Context, sessionID string) ([]ChatTurn, error)

	// Sessions returns distinct session IDs, most recent first.
	Sessions(ctx context.Context, limit int) ([]string, error)

	// Clear deletes every stored turn and returns the count removed.
	Clear(ctx context.Context) (int, error)
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

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventQueryOpts configures event queries with filtering and pagination.
type EventQueryOpts struct {
	Limit    int    // max results (0 = unlimited)
	After    int64  // sequence > After
	Provider string // only this provider ("" = all)
	Purpose  string // only this purpose ("" = all)
}

// LLMPurposeUsage aggregates token usage for one request purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns events newest-first.
	ListLLMRequests(ctx context.Context, opts EventQueryOpts) ([]LLMRequestEvent, error)

	// GetLLMRequest returns the event with the given sequence, or nil.
	GetLLMRequest(ctx context.Context, sequence int64) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

package store

import (
	"context"
	"time"
)

// ProgressRepo persists the single user-progress record as an opaque JSON
// document. Saves replace the record wholesale; there is never more than
// one row. Decoding into domain types happens a layer up, which keeps this
// package a leaf.
type ProgressRepo interface {
	// Load returns the stored document, or nil if none exists.
	Load(ctx context.Context) (map[string]any, error)

	// Save writes the document, replacing any existing record.
	Save(ctx context.Context, data map[string]any) error

	// Clear deletes the stored record.
	Clear(ctx context.Context) error
}

// QuizEventData captures one completed quiz.
type QuizEventData struct {
	SessionID      string
	Topic          string
	Difficulty     string
	Score          int
	TotalQuestions int
	DurationSecs   int
	Timestamp      time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
// Timestamp is populated on reads; appends use the insertion time.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	Timestamp    time.Time
}

// LLMUsage aggregates token usage over a group of LLM request events.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendQuizEvent records a completed quiz.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentQuizzes returns the most recent completed quizzes, newest first.
	RecentQuizzes(ctx context.Context, limit int) ([]QuizEventData, error)

	// RecentLLMRequests returns the most recent LLM request events, newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEventData, error)

	// LLMUsageByPurpose aggregates token usage grouped by request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}

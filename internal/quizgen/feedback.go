package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/prateekk-tech99/safebite-quiz/internal/catalog"
	"github.com/prateekk-tech99/safebite-quiz/internal/llm"
)

// Feedback is LLM-generated coaching shown after a quiz.
type Feedback struct {
	Message   string
	StudyTips []string
}

// FeedbackInput holds the quiz outcome the feedback is based on.
type FeedbackInput struct {
	Topic      catalog.Topic
	Difficulty catalog.Difficulty
	Score      int
	Total      int
	Language   string

	// Mistakes describes the questions the player got wrong,
	// e.g. "answered 'B' for ..., correct was 'D'".
	Mistakes []string
}

// FeedbackSchema defines the JSON schema for post-quiz feedback responses.
var FeedbackSchema = &llm.Schema{
	Name:        "quiz-feedback",
	Description: "Short coaching feedback after a completed quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "One or two encouraging sentences about the result",
			},
			"study_tips": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Up to 3 concrete study tips targeting the mistakes",
			},
		},
		"required":             []any{"message", "study_tips"},
		"additionalProperties": false,
	},
}

const feedbackSystemPrompt = `You are a food safety exam coach reviewing a student's quiz result.

Rules:
- Write one or two encouraging sentences about the result.
- Give up to 3 concrete, specific study tips that target the mistakes listed. If there are no mistakes, give tips for going deeper in the topic.
- Keep the whole response short. Write in the requested language.`

// FeedbackService generates post-quiz feedback asynchronously.
type FeedbackService struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Feedback
	err     error
	ready   bool
}

// NewFeedbackService creates a feedback generation service.
func NewFeedbackService(provider llm.Provider, cfg Config) *FeedbackService {
	return &FeedbackService{provider: provider, cfg: cfg}
}

// RequestFeedback starts async feedback generation. Only one request is
// in-flight at a time; new requests replace pending ones.
func (s *FeedbackService) RequestFeedback(ctx context.Context, input FeedbackInput) {
	go func() {
		fb, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = fb
		s.err = err
		s.ready = true
	}()
}

// ConsumeFeedback returns the pending feedback if one is ready.
// Returns (nil, false) if none is ready yet.
// After consumption, the pending slot is cleared.
func (s *FeedbackService) ConsumeFeedback() (*Feedback, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	fb := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return fb, fb != nil
}

type feedbackOutput struct {
	Message   string   `json:"message"`
	StudyTips []string `json:"study_tips"`
}

func (s *FeedbackService) generate(ctx context.Context, input FeedbackInput) (*Feedback, error) {
	ctx = llm.WithPurpose(ctx, "feedback-gen")

	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "Score: %d out of %d\n", input.Score, input.Total)
	fmt.Fprintf(&b, "Language: %s\n", input.Language)
	b.WriteString("\nMistakes:\n")
	if len(input.Mistakes) == 0 {
		b.WriteString("None")
	} else {
		for i, m := range input.Mistakes {
			fmt.Fprintf(&b, "%d. %s\n", i+1, m)
		}
	}

	req := llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      FeedbackSchema,
		MaxTokens:   512,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("feedback generation: %w", err)
	}

	var out feedbackOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse feedback response: %w", err)
	}

	return &Feedback{Message: out.Message, StudyTips: out.StudyTips}, nil
}

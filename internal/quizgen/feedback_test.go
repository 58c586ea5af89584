package quizgen

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/prateekk-tech99/safebite-quiz/internal/catalog"
	"github.com/prateekk-tech99/safebite-quiz/internal/llm"
)

func validFeedbackJSON() json.RawMessage {
	return json.RawMessage(`{
		"message": "Solid work, you clearly know your cold chain basics.",
		"study_tips": [
			"Review the danger zone temperature range (5-60 C).",
			"Practice HACCP critical limit questions."
		]
	}`)
}

func pollFeedback(t *testing.T, svc *FeedbackService) (*Feedback, bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if fb, ok := svc.ConsumeFeedback(); ok {
			return fb, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

func TestFeedbackService_Generates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validFeedbackJSON(),
	})
	svc := NewFeedbackService(mock, DefaultConfig())

	svc.RequestFeedback(t.Context(), FeedbackInput{
		Topic:      catalog.TopicMicrobiology,
		Difficulty: catalog.DifficultyIntermediate,
		Score:      4,
		Total:      5,
		Language:   "English",
		Mistakes:   []string{"answered 'Listeria' for the botulism scenario, correct was 'Clostridium botulinum'"},
	})

	fb, ok := pollFeedback(t, svc)
	if !ok || fb == nil {
		t.Fatal("expected feedback to be generated")
	}
	if !strings.Contains(fb.Message, "Solid work") {
		t.Errorf("unexpected message: %q", fb.Message)
	}
	if len(fb.StudyTips) != 2 {
		t.Errorf("expected 2 study tips, got %d", len(fb.StudyTips))
	}

	// Mistakes must reach the prompt.
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 LLM call, got %d", len(mock.Calls))
	}
	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "botulism") {
		t.Errorf("mistakes missing from prompt:\n%s", userMsg)
	}
}

func TestFeedbackService_ConsumeClearsPending(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validFeedbackJSON(),
	})
	svc := NewFeedbackService(mock, DefaultConfig())

	svc.RequestFeedback(t.Context(), FeedbackInput{
		Topic: catalog.TopicGeneral, Difficulty: catalog.DifficultyBeginner,
		Score: 5, Total: 5, Language: "English",
	})

	if _, ok := pollFeedback(t, svc); !ok {
		t.Fatal("expected feedback")
	}
	if _, ok := svc.ConsumeFeedback(); ok {
		t.Error("expected pending slot cleared after consumption")
	}
}

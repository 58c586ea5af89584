package quizgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/prateekk-tech99/safebite-quiz/internal/catalog"
	"github.com/prateekk-tech99/safebite-quiz/internal/llm"
)

func validQuizJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"question": "A restaurant inspection finds raw chicken stored above ready-to-eat salads. What is the primary hazard?",
				"options": ["Chemical contamination", "Cross-contamination", "Physical contamination", "Temperature abuse"],
				"correctAnswerIndex": 1,
				"explanation": "Raw poultry juices can drip onto ready-to-eat foods, transferring pathogens like Salmonella."
			},
			{
				"question": "What is the minimum safe internal cooking temperature for poultry?",
				"options": ["63 C", "68 C", "74 C", "82 C"],
				"correctAnswerIndex": 2,
				"explanation": "Poultry must reach 74 C (165 F) to destroy Salmonella and other pathogens."
			}
		]
	}`)
}

func testInput() GenerateInput {
	return GenerateInput{
		Topic:      catalog.TopicHACCP,
		Difficulty: catalog.DifficultyBeginner,
		Count:      2,
		Language:   "English",
	}
}

func TestGenerate_ValidQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validQuizJSON(),
	})
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	if !strings.Contains(qs[0].Text, "raw chicken") {
		t.Errorf("unexpected first question: %q", qs[0].Text)
	}
	if qs[0].CorrectIndex != 1 {
		t.Errorf("expected correct index 1, got %d", qs[0].CorrectIndex)
	}
	if len(qs[1].Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(qs[1].Options))
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validQuizJSON(),
	})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.PriorQuestions = []string{"What does HACCP stand for?"}

	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "quiz-questions" {
		t.Error("expected quiz-questions schema on the request")
	}
	userMsg := req.Messages[0].Content
	for _, want := range []string{"Questions: 2", "Topic: HACCP", "Difficulty: Beginner", "Language: English", "What does HACCP stand for?"} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("user message missing %q:\n%s", want, userMsg)
		}
	}
}

func TestGenerate_ParseError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGenerate_EmptyQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions": []}`),
	})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected error for empty question list")
	}
}

func TestGenerate_ValidatorFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"questions": [
				{
					"question": "Pick one.",
					"options": ["A", "B"],
					"correctAnswerIndex": 0,
					"explanation": "Because."
				}
			]
		}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "structural") {
		t.Errorf("expected structural validator failure, got: %v", err)
	}
}

func TestBuildDedup_Limit(t *testing.T) {
	prior := []string{"q1", "q2", "q3", "q4", "q5"}
	got := buildDedup(prior, 3)
	if strings.Contains(got, "q1") || strings.Contains(got, "q2") {
		t.Errorf("expected oldest questions dropped, got:\n%s", got)
	}
	for _, want := range []string{"q3", "q4", "q5"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in dedup list:\n%s", want, got)
		}
	}
}

func TestBuildDedup_Empty(t *testing.T) {
	if got := buildDedup(nil, 10); got != "None" {
		t.Errorf("expected None, got %q", got)
	}
}

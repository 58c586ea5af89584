package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/prateekk-tech99/safebite-quiz/internal/catalog"
	"github.com/prateekk-tech99/safebite-quiz/internal/quizgen"
)

func testQuestions(n int) []quizgen.Question {
	out := make([]quizgen.Question, n)
	for i := range out {
		out[i] = quizgen.Question{
			Text:         "question " + string(rune('A'+i)),
			Options:      []string{"opt0", "opt1", "opt2", "opt3"},
			CorrectIndex: i % 4,
			Explanation:  "explanation",
		}
	}
	return out
}

func newTestSession(t *testing.T, n int) *Session {
	t.Helper()
	s, err := New(catalog.TopicHACCP, catalog.DifficultyIntermediate, testQuestions(n))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func TestNew(t *testing.T) {
	s := newTestSession(t, 5)

	if s.ID == "" {
		t.Error("expected a session ID")
	}
	if s.Phase != PhaseAwaitingAnswer {
		t.Errorf("phase = %d, want awaiting answer", s.Phase)
	}
	if s.RemainingSecs != 5*SecondsPerQuestion {
		t.Errorf("remaining = %d, want %d", s.RemainingSecs, 5*SecondsPerQuestion)
	}
	for i, a := range s.Answers {
		if a != unanswered {
			t.Errorf("answer %d = %d, want unanswered", i, a)
		}
	}
}

func TestNew_NoQuestions(t *testing.T) {
	if _, err := New(catalog.TopicGeneral, catalog.DifficultyBeginner, nil); err == nil {
		t.Fatal("expected error for empty quiz")
	}
}

func TestSelectAndAdvance(t *testing.T) {
	s := newTestSession(t, 2)

	correct, err := s.Select(0)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !correct {
		t.Error("expected option 0 correct for question 0")
	}
	if s.Phase != PhaseAnswered {
		t.Errorf("phase = %d, want answered", s.Phase)
	}

	// Answering again during feedback is rejected.
	if _, err := s.Select(1); !errors.Is(err, ErrNotAwaitingAnswer) {
		t.Errorf("expected ErrNotAwaitingAnswer, got %v", err)
	}

	s.Advance()
	if s.Index != 1 || s.Phase != PhaseAwaitingAnswer {
		t.Errorf("index/phase = %d/%d after advance", s.Index, s.Phase)
	}

	if _, err := s.Select(0); err != nil {
		t.Fatalf("select 2: %v", err)
	}
	s.Advance()
	if !s.Done() {
		t.Error("expected session complete after last question")
	}
}

func TestSelect_OutOfRange(t *testing.T) {
	s := newTestSession(t, 1)
	for _, opt := range []int{-1, 4} {
		if _, err := s.Select(opt); !errors.Is(err, ErrOptionOutOfRange) {
			t.Errorf("Select(%d): expected ErrOptionOutOfRange, got %v", opt, err)
		}
	}
}

func TestScore(t *testing.T) {
	s := newTestSession(t, 3)

	// q0 correct (0), q1 wrong (correct is 1), q2 correct (2).
	for _, opt := range []int{0, 0, 2} {
		if _, err := s.Select(opt); err != nil {
			t.Fatalf("select %d: %v", opt, err)
		}
		s.Advance()
	}

	if got := s.Score(); got != 2 {
		t.Errorf("score = %d, want 2", got)
	}
}

func TestTick_TimeoutCompletesSession(t *testing.T) {
	s := newTestSession(t, 1)

	for i := 0; i < SecondsPerQuestion; i++ {
		s.Tick()
	}
	if !s.Done() {
		t.Fatal("expected session complete at zero countdown")
	}
	if s.RemainingSecs != 0 {
		t.Errorf("remaining = %d, want 0", s.RemainingSecs)
	}

	// Unanswered questions count as wrong.
	if got := s.Score(); got != 0 {
		t.Errorf("score = %d, want 0", got)
	}

	// Further ticks are no-ops.
	s.Tick()
	if s.RemainingSecs != 0 {
		t.Error("expected tick after completion to be a no-op")
	}
}

func TestOutcome_ExactlyOnce(t *testing.T) {
	s := newTestSession(t, 1)

	// Not complete yet.
	if _, ok := s.Outcome(); ok {
		t.Fatal("expected no outcome before completion")
	}

	if _, err := s.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	s.Tick()
	s.Tick()
	s.Advance()

	out, ok := s.Outcome()
	if !ok {
		t.Fatal("expected outcome after completion")
	}
	if out.Score != 1 || out.TotalQuestions() != 1 {
		t.Errorf("outcome = %+v", out)
	}
	if out.TimeTakenSeconds != 2 {
		t.Errorf("time taken = %d, want 2", out.TimeTakenSeconds)
	}
	if out.Topic != catalog.TopicHACCP || out.Difficulty != catalog.DifficultyIntermediate {
		t.Errorf("topic/difficulty = %s/%s", out.Topic, out.Difficulty)
	}

	// A second take must fail.
	if _, ok := s.Outcome(); ok {
		t.Error("expected outcome to be one-shot")
	}
}

func TestMistakes(t *testing.T) {
	s := newTestSession(t, 2)

	if _, err := s.Select(3); err != nil { // wrong, correct is 0
		t.Fatalf("select: %v", err)
	}
	s.Advance()
	if _, err := s.Select(1); err != nil { // correct
		t.Fatalf("select: %v", err)
	}
	s.Advance()

	mistakes := s.Mistakes()
	if len(mistakes) != 1 {
		t.Fatalf("mistakes = %d, want 1", len(mistakes))
	}
	if !strings.Contains(mistakes[0], `"opt3"`) || !strings.Contains(mistakes[0], `"opt0"`) {
		t.Errorf("unexpected mistake text: %s", mistakes[0])
	}
}

func TestMistakes_UnansweredOnTimeout(t *testing.T) {
	s := newTestSession(t, 1)
	for i := 0; i < SecondsPerQuestion; i++ {
		s.Tick()
	}

	mistakes := s.Mistakes()
	if len(mistakes) != 1 || !strings.Contains(mistakes[0], "no answer") {
		t.Errorf("mistakes = %v", mistakes)
	}
}

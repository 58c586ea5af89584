package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/prateekk-tech99/safebite-quiz/internal/catalog"
	"github.com/prateekk-tech99/safebite-quiz/internal/progress"
	"github.com/prateekk-tech99/safebite-quiz/internal/quizgen"
)

var (
	// ErrNotAwaitingAnswer is returned by Select outside the answer phase.
	ErrNotAwaitingAnswer = errors.New("session: not awaiting an answer")

	// ErrOptionOutOfRange is returned by Select for an invalid option index.
	ErrOptionOutOfRange = errors.New("session: option index out of range")
)

// Session is the state machine for one quiz run. It is driven by the UI:
// Select locks in an answer, Advance moves to the next question, Tick
// drains the shared countdown. Not safe for concurrent use.
type Session struct {
	ID         string
	Topic      catalog.Topic
	Difficulty catalog.Difficulty
	Questions  []quizgen.Question

	// Answers holds the selected option index per question, or -1.
	Answers []int

	// Index is the current question position.
	Index int

	// Phase is the current phase.
	Phase Phase

	// RemainingSecs is the shared countdown for the whole quiz.
	RemainingSecs int

	elapsedSecs int
	reported    bool
}

// New starts a session over the given questions.
func New(topic catalog.Topic, difficulty catalog.Difficulty, questions []quizgen.Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, errors.New("session: no questions")
	}
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = unanswered
	}
	return &Session{
		ID:            uuid.NewString(),
		Topic:         topic,
		Difficulty:    difficulty,
		Questions:     questions,
		Answers:       answers,
		Phase:         PhaseAwaitingAnswer,
		RemainingSecs: len(questions) * SecondsPerQuestion,
	}, nil
}

// Current returns the question being displayed.
func (s *Session) Current() *quizgen.Question {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// Select locks in the answer for the current question and moves the
// session to the feedback phase. Returns whether the answer was correct.
func (s *Session) Select(option int) (bool, error) {
	if s.Phase != PhaseAwaitingAnswer {
		return false, ErrNotAwaitingAnswer
	}
	q := s.Current()
	if option < 0 || option >= len(q.Options) {
		return false, ErrOptionOutOfRange
	}
	s.Answers[s.Index] = option
	s.Phase = PhaseAnswered
	return option == q.CorrectIndex, nil
}

// Advance moves past the feedback phase: to the next question, or to
// completion after the last one. Advancing outside the feedback phase is
// a no-op.
func (s *Session) Advance() {
	if s.Phase != PhaseAnswered {
		return
	}
	if s.Index+1 >= len(s.Questions) {
		s.Phase = PhaseComplete
		return
	}
	s.Index++
	s.Phase = PhaseAwaitingAnswer
}

// Tick drains one second from the countdown. When the countdown reaches
// zero the session completes immediately; unanswered questions count as
// wrong. Ticking a completed session is a no-op.
func (s *Session) Tick() {
	if s.Phase == PhaseComplete {
		return
	}
	s.elapsedSecs++
	s.RemainingSecs--
	if s.RemainingSecs <= 0 {
		s.RemainingSecs = 0
		s.Phase = PhaseComplete
	}
}

// Done reports whether the session has completed.
func (s *Session) Done() bool { return s.Phase == PhaseComplete }

// Score returns the count of correctly answered questions.
func (s *Session) Score() int {
	score := 0
	for i, a := range s.Answers {
		if a == s.Questions[i].CorrectIndex {
			score++
		}
	}
	return score
}

// Outcome returns the quiz result for progress recording. The second
// return is false if the session is not complete or the outcome was
// already taken: a finished quiz is folded into progress exactly once.
func (s *Session) Outcome() (progress.QuizOutcome, bool) {
	if s.Phase != PhaseComplete || s.reported {
		return progress.QuizOutcome{}, false
	}
	s.reported = true
	return progress.QuizOutcome{
		Topic:            s.Topic,
		Difficulty:       s.Difficulty,
		Score:            s.Score(),
		Questions:        append([]quizgen.Question{}, s.Questions...),
		TimeTakenSeconds: s.elapsedSecs,
	}, true
}

// Mistakes describes the wrongly answered questions for feedback
// generation.
func (s *Session) Mistakes() []string {
	var out []string
	for i, a := range s.Answers {
		q := s.Questions[i]
		if a == q.CorrectIndex {
			continue
		}
		given := "no answer"
		if a >= 0 && a < len(q.Options) {
			given = fmt.Sprintf("%q", q.Options[a])
		}
		out = append(out, fmt.Sprintf("answered %s for %q, correct was %q", given, q.Text, q.Options[q.CorrectIndex]))
	}
	return out
}

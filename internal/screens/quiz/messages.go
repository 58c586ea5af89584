package quiz

import (
	"time"

	"github.com/prateekk-tech99/safebite-quiz/internal/quizgen"
)

// quizReadyMsg is sent when the quiz questions have been generated.
type quizReadyMsg struct {
	Questions []quizgen.Question
	Err       error
}

// timerTickMsg is sent every second to drain the countdown.
type timerTickMsg time.Time

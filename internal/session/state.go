package session

// Phase represents the current phase of a quiz session.
type Phase int

const (
	PhaseAwaitingAnswer Phase = iota // A question is displayed, no answer yet
	PhaseAnswered                    // Answer locked in, feedback displayed
	PhaseComplete                    // All questions answered or time expired
)

// SecondsPerQuestion is the time allotted per question. The whole quiz
// shares one countdown of len(questions) * SecondsPerQuestion.
const SecondsPerQuestion = 30

// unanswered marks a question with no recorded answer.
const unanswered = -1

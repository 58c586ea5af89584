package progress

import (
	"github.com/prateekk-tech99/safebite-quiz/internal/badge"
	"github.com/prateekk-tech99/safebite-quiz/internal/catalog"
	"github.com/prateekk-tech99/safebite-quiz/internal/quizgen"
)

// DateLayout is the calendar-date format used for streak tracking.
// Streaks compare calendar days, not 24-hour windows.
const DateLayout = "2006-01-02"

// UserProgress is the full persistent state of a player.
type UserProgress struct {
	// Streak is the count of consecutive calendar days with at least
	// one completed quiz.
	Streak int `json:"streak"`

	// LastPlayedDate is the calendar date (DateLayout) of the most recent
	// completed quiz. Empty if the player has never finished a quiz.
	LastPlayedDate string `json:"lastPlayedDate,omitempty"`

	// Badges holds every badge earned, in award order. A badge is never
	// removed or awarded twice.
	Badges []badge.ID `json:"badges"`

	// Scores accumulates per-topic correct/attempted counts across all
	// completed quizzes.
	Scores map[catalog.Topic]TopicScore `json:"scores"`

	// QuestionBank holds every question the player has seen, deduplicated
	// by exact question text. Fed back to the generator to avoid repeats.
	QuestionBank []quizgen.Question `json:"questionBank"`

	// OfflineQuizzes are pre-generated quizzes saved for later play.
	OfflineQuizzes []OfflineQuiz `json:"offlineQuizzes"`
}

// TopicScore accumulates results for one topic.
type TopicScore struct {
	TotalCorrect   int `json:"totalCorrect"`
	TotalAttempted int `json:"totalAttempted"`
}

// OfflineQuiz is a pre-generated quiz stored for play without a network.
type OfflineQuiz struct {
	ID         string             `json:"id"`
	Topic      catalog.Topic      `json:"topic"`
	Difficulty catalog.Difficulty `json:"difficulty"`
	Questions  []quizgen.Question `json:"questions"`
}

// QuizOutcome is the result of one completed quiz, reported exactly once
// when the quiz finishes.
type QuizOutcome struct {
	Topic            catalog.Topic
	Difficulty       catalog.Difficulty
	Score            int
	Questions        []quizgen.Question
	TimeTakenSeconds int
}

// TotalQuestions returns the number of questions in the quiz.
func (o QuizOutcome) TotalQuestions() int { return len(o.Questions) }

// New returns a zero-valued UserProgress with initialized containers.
func New() *UserProgress {
	return &UserProgress{
		Badges:         []badge.ID{},
		Scores:         map[catalog.Topic]TopicScore{},
		QuestionBank:   []quizgen.Question{},
		OfflineQuizzes: []OfflineQuiz{},
	}
}

// Normalize fills nil containers on records decoded from older versions
// that predate some fields.
func (p *UserProgress) Normalize() {
	if p.Badges == nil {
		p.Badges = []badge.ID{}
	}
	if p.Scores == nil {
		p.Scores = map[catalog.Topic]TopicScore{}
	}
	if p.QuestionBank == nil {
		p.QuestionBank = []quizgen.Question{}
	}
	if p.OfflineQuizzes == nil {
		p.OfflineQuizzes = []OfflineQuiz{}
	}
}

// HasBadge reports whether the badge has already been earned.
func (p *UserProgress) HasBadge(id badge.ID) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the progress.
func (p *UserProgress) Clone() *UserProgress {
	out := &UserProgress{
		Streak:         p.Streak,
		LastPlayedDate: p.LastPlayedDate,
		Badges:         append([]badge.ID{}, p.Badges...),
		Scores:         make(map[catalog.Topic]TopicScore, len(p.Scores)),
		QuestionBank:   append([]quizgen.Question{}, p.QuestionBank...),
		OfflineQuizzes: make([]OfflineQuiz, 0, len(p.OfflineQuizzes)),
	}
	for t, s := range p.Scores {
		out.Scores[t] = s
	}
	for _, oq := range p.OfflineQuizzes {
		cq := oq
		cq.Questions = append([]quizgen.Question{}, oq.Questions...)
		out.OfflineQuizzes = append(out.OfflineQuizzes, cq)
	}
	return out
}

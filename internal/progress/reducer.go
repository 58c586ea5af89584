package progress

import (
	"time"

	"github.com/prateekk-tech99/safebite-quiz/internal/badge"
	"github.com/prateekk-tech99/safebite-quiz/internal/catalog"
	"github.com/prateekk-tech99/safebite-quiz/internal/quizgen"
)

// Apply folds one quiz outcome into the progress and returns the new state.
// prev is not mutated. now supplies today's date for streak arithmetic.
func Apply(prev *UserProgress, outcome QuizOutcome, now time.Time) *UserProgress {
	next := prev.Clone()

	today := now.Format(DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)

	// Streak extends only when the last play was yesterday. Any other
	// date, including a replay later the same day, resets it to 1.
	if next.LastPlayedDate == yesterday {
		next.Streak++
	} else {
		next.Streak = 1
	}
	next.LastPlayedDate = today

	score := next.Scores[outcome.Topic]
	score.TotalCorrect += outcome.Score
	score.TotalAttempted += outcome.TotalQuestions()
	next.Scores[outcome.Topic] = score

	next.QuestionBank = mergeBank(next.QuestionBank, outcome.Questions)

	correctByTopic := make(map[catalog.Topic]int, len(next.Scores))
	for t, s := range next.Scores {
		correctByTopic[t] = s.TotalCorrect
	}
	held := make(map[badge.ID]bool, len(next.Badges))
	for _, b := range next.Badges {
		held[b] = true
	}
	awarded := badge.Evaluate(badge.Progress{
		Streak:         next.Streak,
		Held:           held,
		CorrectByTopic: correctByTopic,
	}, badge.Outcome{
		Score:            outcome.Score,
		TotalQuestions:   outcome.TotalQuestions(),
		TimeTakenSeconds: outcome.TimeTakenSeconds,
	})
	next.Badges = append(next.Badges, awarded...)

	return next
}

// mergeBank appends questions not already in the bank, matching on exact
// question text.
func mergeBank(bank []quizgen.Question, incoming []quizgen.Question) []quizgen.Question {
	seen := make(map[string]bool, len(bank))
	for _, q := range bank {
		seen[q.Text] = true
	}
	for _, q := range incoming {
		if !seen[q.Text] {
			bank = append(bank, q)
			seen[q.Text] = true
		}
	}
	return bank
}

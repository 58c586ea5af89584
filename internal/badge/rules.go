package badge

import "github.com/prateekk-tech99/safebite-quiz/internal/catalog"

// speedBadgeSecsPerQuestion is the average pace that earns the speed badge.
const speedBadgeSecsPerQuestion = 15

// masteryThreshold is the cumulative correct-answer count that earns a
// per-topic mastery badge.
const masteryThreshold = 20

// Progress is the slice of the user's progress the rule engine reads.
// Streak and CorrectByTopic must already reflect the outcome being
// evaluated; Held must not.
type Progress struct {
	Streak         int
	Held           map[ID]bool
	CorrectByTopic map[catalog.Topic]int
}

// Outcome describes one completed quiz attempt.
type Outcome struct {
	Score            int
	TotalQuestions   int
	TimeTakenSeconds int
}

// Evaluate returns the badges newly unlocked by the given outcome. Rules
// are independent of each other and the result is idempotent: once an id
// is in p.Held it is never returned again.
func Evaluate(p Progress, o Outcome) []ID {
	var unlocked []ID

	award := func(id ID, cond bool) {
		if cond && !p.Held[id] {
			unlocked = append(unlocked, id)
		}
	}

	award(FirstQuiz, true)
	award(PerfectScore, o.Score == o.TotalQuestions)
	award(Streak3, p.Streak >= 3)
	award(Streak7, p.Streak >= 7)
	award(SpeedDemon, o.TotalQuestions > 0 &&
		o.TimeTakenSeconds <= speedBadgeSecsPerQuestion*o.TotalQuestions)

	for _, t := range catalog.AllTopics() {
		award(MasteryID(t), p.CorrectByTopic[t] >= masteryThreshold)
	}

	return unlocked
}

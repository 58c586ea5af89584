package progress

import (
	"testing"
	"time"

	"github.com/prateekk-tech99/safebite-quiz/internal/badge"
	"github.com/prateekk-tech99/safebite-quiz/internal/catalog"
	"github.com/prateekk-tech99/safebite-quiz/internal/quizgen"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func questions(texts ...string) []quizgen.Question {
	out := make([]quizgen.Question, 0, len(texts))
	for _, txt := range texts {
		out = append(out, quizgen.Question{
			Text:         txt,
			Options:      []string{"A", "B", "C", "D"},
			CorrectIndex: 0,
			Explanation:  "Because A.",
		})
	}
	return out
}

func outcome(topic catalog.Topic, score, total, secs int) QuizOutcome {
	texts := make([]string, total)
	for i := range texts {
		texts[i] = topic.Slug() + "-q" + string(rune('a'+i))
	}
	return QuizOutcome{
		Topic:            topic,
		Difficulty:       catalog.DifficultyBeginner,
		Score:            score,
		Questions:        questions(texts...),
		TimeTakenSeconds: secs,
	}
}

func TestApply_StreakRules(t *testing.T) {
	tests := []struct {
		name       string
		lastPlayed string
		prevStreak int
		today      string
		wantStreak int
	}{
		{"first ever quiz", "", 0, "2026-03-10", 1},
		{"played yesterday", "2026-03-09", 4, "2026-03-10", 5},
		{"same-day replay resets", "2026-03-10", 4, "2026-03-10", 1},
		{"gap of two days", "2026-03-07", 9, "2026-03-10", 1},
		{"gap of a month", "2026-02-10", 30, "2026-03-10", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := New()
			prev.LastPlayedDate = tt.lastPlayed
			prev.Streak = tt.prevStreak

			next := Apply(prev, outcome(catalog.TopicGeneral, 3, 5, 100), mustDate(t, tt.today))

			if next.Streak != tt.wantStreak {
				t.Errorf("streak = %d, want %d", next.Streak, tt.wantStreak)
			}
			if next.LastPlayedDate != tt.today {
				t.Errorf("lastPlayedDate = %q, want %q", next.LastPlayedDate, tt.today)
			}
		})
	}
}

func TestApply_MonthBoundaryCountsAsYesterday(t *testing.T) {
	prev := New()
	prev.LastPlayedDate = "2026-02-28"
	prev.Streak = 2

	next := Apply(prev, outcome(catalog.TopicGeneral, 3, 5, 100), mustDate(t, "2026-03-01"))

	if next.Streak != 3 {
		t.Errorf("streak = %d, want 3", next.Streak)
	}
}

func TestApply_DoesNotMutatePrev(t *testing.T) {
	prev := New()
	prev.Streak = 2
	prev.LastPlayedDate = "2026-03-09"

	Apply(prev, outcome(catalog.TopicHACCP, 5, 5, 60), mustDate(t, "2026-03-10"))

	if prev.Streak != 2 || prev.LastPlayedDate != "2026-03-09" {
		t.Error("Apply mutated its input")
	}
	if len(prev.QuestionBank) != 0 || len(prev.Badges) != 0 {
		t.Error("Apply mutated prev's slices")
	}
}

func TestApply_ScoreAccumulation(t *testing.T) {
	prev := New()
	prev.Scores[catalog.TopicHACCP] = TopicScore{TotalCorrect: 7, TotalAttempted: 10}

	next := Apply(prev, outcome(catalog.TopicHACCP, 4, 5, 90), mustDate(t, "2026-03-10"))

	got := next.Scores[catalog.TopicHACCP]
	if got.TotalCorrect != 11 || got.TotalAttempted != 15 {
		t.Errorf("score = %+v, want {11 15}", got)
	}
}

func TestApply_QuestionBankDedup(t *testing.T) {
	prev := New()
	prev.QuestionBank = questions("seen before", "also seen")

	out := QuizOutcome{
		Topic:     catalog.TopicGeneral,
		Score:     1,
		Questions: questions("seen before", "brand new"),
	}
	next := Apply(prev, out, mustDate(t, "2026-03-10"))

	if len(next.QuestionBank) != 3 {
		t.Fatalf("bank size = %d, want 3", len(next.QuestionBank))
	}
	if next.QuestionBank[2].Text != "brand new" {
		t.Errorf("expected new question appended last, got %q", next.QuestionBank[2].Text)
	}
}

func TestApply_MasteryCrossingThreshold(t *testing.T) {
	prev := New()
	prev.Scores[catalog.TopicHACCP] = TopicScore{TotalCorrect: 18, TotalAttempted: 25}

	next := Apply(prev, outcome(catalog.TopicHACCP, 2, 5, 100), mustDate(t, "2026-03-10"))

	want := badge.MasteryID(catalog.TopicHACCP)
	if !next.HasBadge(want) {
		t.Fatalf("expected %s awarded at 20 correct", want)
	}

	// A later quiz in the same topic must not award it again.
	after := Apply(next, outcome(catalog.TopicHACCP, 5, 5, 100), mustDate(t, "2026-03-11"))
	count := 0
	for _, b := range after.Badges {
		if b == want {
			count++
		}
	}
	if count != 1 {
		t.Errorf("%s awarded %d times, want once", want, count)
	}
}

func TestApply_FirstQuizAndPerfectScore(t *testing.T) {
	next := Apply(New(), outcome(catalog.TopicSanitation, 5, 5, 200), mustDate(t, "2026-03-10"))

	if !next.HasBadge(badge.FirstQuiz) {
		t.Error("expected first-quiz badge on the first completed quiz")
	}
	if !next.HasBadge(badge.PerfectScore) {
		t.Error("expected perfect-score badge for 5/5")
	}
}

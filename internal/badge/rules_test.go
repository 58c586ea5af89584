package badge

import (
	"testing"

	"github.com/prateekk-tech99/safebite-quiz/internal/catalog"
)

func held(ids ...ID) map[ID]bool {
	m := make(map[ID]bool)
	for _, id := range ids {
		m[id] = true
	}
	return m
}

func contains(ids []ID, id ID) bool {
	for _, got := range ids {
		if got == id {
			return true
		}
	}
	return false
}

func TestEvaluate_FirstQuiz(t *testing.T) {
	got := Evaluate(Progress{Streak: 1, Held: held()}, Outcome{Score: 2, TotalQuestions: 5, TimeTakenSeconds: 200})
	if !contains(got, FirstQuiz) {
		t.Error("expected first-quiz on first completion")
	}

	got = Evaluate(Progress{Streak: 1, Held: held(FirstQuiz)}, Outcome{Score: 2, TotalQuestions: 5, TimeTakenSeconds: 200})
	if contains(got, FirstQuiz) {
		t.Error("first-quiz must not unlock twice")
	}
}

func TestEvaluate_PerfectScore(t *testing.T) {
	got := Evaluate(Progress{Streak: 1, Held: held(FirstQuiz)}, Outcome{Score: 5, TotalQuestions: 5, TimeTakenSeconds: 300})
	if !contains(got, PerfectScore) {
		t.Error("expected perfect-score for 5/5")
	}

	got = Evaluate(Progress{Streak: 1, Held: held(FirstQuiz)}, Outcome{Score: 4, TotalQuestions: 5, TimeTakenSeconds: 300})
	if contains(got, PerfectScore) {
		t.Error("perfect-score must not unlock for 4/5")
	}
}

func TestEvaluate_Streaks(t *testing.T) {
	tests := []struct {
		streak      int
		wantStreak3 bool
		wantStreak7 bool
	}{
		{1, false, false},
		{2, false, false},
		{3, true, false},
		{6, true, false},
		{7, true, true},
		{10, true, true},
	}

	for _, tt := range tests {
		got := Evaluate(Progress{Streak: tt.streak, Held: held(FirstQuiz)}, Outcome{Score: 1, TotalQuestions: 5, TimeTakenSeconds: 300})
		if got3 := contains(got, Streak3); got3 != tt.wantStreak3 {
			t.Errorf("streak %d: streak-3 unlocked = %t, want %t", tt.streak, got3, tt.wantStreak3)
		}
		if got7 := contains(got, Streak7); got7 != tt.wantStreak7 {
			t.Errorf("streak %d: streak-7 unlocked = %t, want %t", tt.streak, got7, tt.wantStreak7)
		}
	}
}

func TestEvaluate_SpeedDemon(t *testing.T) {
	// Exactly 15s/question qualifies.
	got := Evaluate(Progress{Streak: 1, Held: held(FirstQuiz)}, Outcome{Score: 3, TotalQuestions: 5, TimeTakenSeconds: 75})
	if !contains(got, SpeedDemon) {
		t.Error("expected speed-demon at 15s/question")
	}

	got = Evaluate(Progress{Streak: 1, Held: held(FirstQuiz)}, Outcome{Score: 3, TotalQuestions: 5, TimeTakenSeconds: 76})
	if contains(got, SpeedDemon) {
		t.Error("speed-demon must not unlock above 15s/question")
	}

	// Zero questions never qualifies.
	got = Evaluate(Progress{Streak: 1, Held: held(FirstQuiz)}, Outcome{Score: 0, TotalQuestions: 0, TimeTakenSeconds: 0})
	if contains(got, SpeedDemon) {
		t.Error("speed-demon must not unlock for an empty quiz")
	}
}

func TestEvaluate_TopicMastery(t *testing.T) {
	p := Progress{
		Streak:         1,
		Held:           held(FirstQuiz),
		CorrectByTopic: map[catalog.Topic]int{catalog.TopicHACCP: 20},
	}
	got := Evaluate(p, Outcome{Score: 2, TotalQuestions: 5, TimeTakenSeconds: 300})
	if !contains(got, MasteryID(catalog.TopicHACCP)) {
		t.Error("expected haccp-master at 20 correct")
	}
	if contains(got, MasteryID(catalog.TopicHygiene)) {
		t.Error("hygiene-master must not unlock at 0 correct")
	}

	// Idempotent: holding the badge suppresses re-award.
	p.Held[MasteryID(catalog.TopicHACCP)] = true
	got = Evaluate(p, Outcome{Score: 2, TotalQuestions: 5, TimeTakenSeconds: 300})
	if contains(got, MasteryID(catalog.TopicHACCP)) {
		t.Error("haccp-master must not unlock twice")
	}
}

func TestCatalogCoversAllRuleBadges(t *testing.T) {
	if len(Catalog()) != 13 {
		t.Fatalf("len(Catalog()) = %d, want 13", len(Catalog()))
	}
	for _, id := range []ID{FirstQuiz, PerfectScore, Streak3, Streak7, SpeedDemon} {
		if _, ok := Lookup(id); !ok {
			t.Errorf("catalog missing %q", id)
		}
	}
	for _, topic := range catalog.AllTopics() {
		if _, ok := Lookup(MasteryID(topic)); !ok {
			t.Errorf("catalog missing mastery badge for %q", topic)
		}
	}
}

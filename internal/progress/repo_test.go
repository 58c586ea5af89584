package progress

import (
	"context"
	"testing"

	"github.com/prateekk-tech99/safebite-quiz/internal/badge"
	"github.com/prateekk-tech99/safebite-quiz/internal/catalog"
	"github.com/prateekk-tech99/safebite-quiz/internal/quizgen"
)

// fakeRawRepo is an in-memory RawRepo.
type fakeRawRepo struct {
	data map[string]any
}

func (f *fakeRawRepo) Load(ctx context.Context) (map[string]any, error) {
	return f.data, nil
}

func (f *fakeRawRepo) Save(ctx context.Context, data map[string]any) error {
	f.data = data
	return nil
}

func (f *fakeRawRepo) Clear(ctx context.Context) error {
	f.data = nil
	return nil
}

func TestRepoLoadEmpty(t *testing.T) {
	repo := NewRepo(&fakeRawRepo{})

	p, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil progress when none stored")
	}
}

func TestRepoSaveAndLoad(t *testing.T) {
	repo := NewRepo(&fakeRawRepo{})
	ctx := context.Background()

	p := New()
	p.Streak = 3
	p.LastPlayedDate = "2026-03-10"
	p.Badges = []badge.ID{badge.FirstQuiz, badge.Streak3}
	p.Scores[catalog.TopicHACCP] = TopicScore{TotalCorrect: 12, TotalAttempted: 15}
	p.QuestionBank = []quizgen.Question{{
		Text:         "Which step is a CCP for ready-to-eat chicken?",
		Options:      []string{"Receiving", "Cooking", "Labeling", "Delivery"},
		CorrectIndex: 1,
		Explanation:  "Cooking is the kill step that eliminates pathogens.",
	}}

	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected stored progress")
	}
	if got.Streak != 3 || got.LastPlayedDate != "2026-03-10" {
		t.Errorf("streak/date = %d/%q, want 3/2026-03-10", got.Streak, got.LastPlayedDate)
	}
	if len(got.Badges) != 2 || got.Badges[1] != badge.Streak3 {
		t.Errorf("badges = %v", got.Badges)
	}
	if sc := got.Scores[catalog.TopicHACCP]; sc.TotalCorrect != 12 || sc.TotalAttempted != 15 {
		t.Errorf("haccp score = %+v", sc)
	}
	if len(got.QuestionBank) != 1 || got.QuestionBank[0].CorrectIndex != 1 {
		t.Errorf("question bank = %+v", got.QuestionBank)
	}
}

func TestRepoLoadUndecodable(t *testing.T) {
	raw := &fakeRawRepo{data: map[string]any{
		"streak": "not-a-number",
	}}
	repo := NewRepo(raw)

	p, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load (undecodable): %v", err)
	}
	if p != nil {
		t.Error("expected nil progress for an undecodable record")
	}
}

func TestRepoClear(t *testing.T) {
	raw := &fakeRawRepo{}
	repo := NewRepo(raw)
	ctx := context.Background()

	if err := repo.Save(ctx, New()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	p, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != nil {
		t.Error("expected nil progress after clear")
	}
}

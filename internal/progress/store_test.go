package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prateekk-tech99/safebite-quiz/internal/badge"
	"github.com/prateekk-tech99/safebite-quiz/internal/catalog"
)

// fakeRepo is an in-memory Repo for tests.
type fakeRepo struct {
	saved   *UserProgress
	saves   int
	loadErr error
	saveErr error
}

func (r *fakeRepo) Load(_ context.Context) (*UserProgress, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.saved, nil
}

func (r *fakeRepo) Save(_ context.Context, p *UserProgress) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = p.Clone()
	r.saves++
	return nil
}

func (r *fakeRepo) Clear(_ context.Context) error {
	r.saved = nil
	return nil
}

func newTestStore(t *testing.T, repo *fakeRepo, day string) *Store {
	t.Helper()
	s, err := NewStore(t.Context(), repo)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	s.clock = func() time.Time {
		d, err := time.Parse(DateLayout, day)
		if err != nil {
			t.Fatalf("parse day: %v", err)
		}
		return d
	}
	return s
}

func TestStore_StartsFreshWhenEmpty(t *testing.T) {
	s := newTestStore(t, &fakeRepo{}, "2026-03-10")
	snap := s.Snapshot()
	if snap.Streak != 0 || len(snap.Badges) != 0 {
		t.Errorf("expected zero progress, got %+v", snap)
	}
}

func TestStore_LoadsExisting(t *testing.T) {
	existing := New()
	existing.Streak = 6
	existing.LastPlayedDate = "2026-03-09"
	s := newTestStore(t, &fakeRepo{saved: existing}, "2026-03-10")

	if got := s.Snapshot().Streak; got != 6 {
		t.Errorf("streak = %d, want 6", got)
	}
}

func TestStore_LoadErrorPropagates(t *testing.T) {
	_, err := NewStore(t.Context(), &fakeRepo{loadErr: errors.New("disk gone")})
	if err == nil {
		t.Fatal("expected load error")
	}
}

func TestStore_RecordQuizCompletionReturnsNewBadges(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestStore(t, repo, "2026-03-10")

	earned, err := s.RecordQuizCompletion(t.Context(), outcome(catalog.TopicHygiene, 5, 5, 60))
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	want := map[badge.ID]bool{badge.FirstQuiz: true, badge.PerfectScore: true, badge.SpeedDemon: true}
	for _, id := range earned {
		if !want[id] {
			t.Errorf("unexpected badge %s", id)
		}
		delete(want, id)
	}
	for id := range want {
		t.Errorf("missing badge %s", id)
	}

	if repo.saves != 1 {
		t.Errorf("saves = %d, want 1", repo.saves)
	}
	if repo.saved == nil || repo.saved.Streak != 1 {
		t.Error("expected progress persisted with streak 1")
	}
}

func TestStore_RecordSurvivesSaveFailure(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("readonly fs")}
	s := newTestStore(t, repo, "2026-03-10")

	if _, err := s.RecordQuizCompletion(t.Context(), outcome(catalog.TopicGeneral, 3, 5, 90)); err != nil {
		t.Fatalf("record: %v", err)
	}
	// In-memory state stays authoritative.
	if got := s.Snapshot().Streak; got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

func TestStore_OfflineQuizLifecycle(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestStore(t, repo, "2026-03-10")

	q := OfflineQuiz{
		ID:         "oq-1",
		Topic:      catalog.TopicFSSAI,
		Difficulty: catalog.DifficultyExpert,
		Questions:  questions("offline q1", "offline q2"),
	}
	s.AddOfflineQuiz(t.Context(), q)

	if got := len(s.Snapshot().OfflineQuizzes); got != 1 {
		t.Fatalf("offline quizzes = %d, want 1", got)
	}

	s.RemoveOfflineQuiz(t.Context(), "oq-1")
	if got := len(s.Snapshot().OfflineQuizzes); got != 0 {
		t.Errorf("offline quizzes = %d, want 0", got)
	}

	// Removing an absent ID does nothing and does not persist.
	savesBefore := repo.saves
	s.RemoveOfflineQuiz(t.Context(), "missing")
	if repo.saves != savesBefore {
		t.Error("expected no save for no-op removal")
	}
}

func TestStore_Reset(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestStore(t, repo, "2026-03-10")

	if _, err := s.RecordQuizCompletion(t.Context(), outcome(catalog.TopicLaws, 4, 5, 100)); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.Reset(t.Context()); err != nil {
		t.Fatalf("reset: %v", err)
	}

	snap := s.Snapshot()
	if snap.Streak != 0 || len(snap.Badges) != 0 || len(snap.QuestionBank) != 0 {
		t.Errorf("expected empty progress after reset, got %+v", snap)
	}
	if repo.saved != nil {
		t.Error("expected repo cleared")
	}
}

func TestStore_PriorQuestionTexts(t *testing.T) {
	s := newTestStore(t, &fakeRepo{}, "2026-03-10")

	out := QuizOutcome{
		Topic:     catalog.TopicGeneral,
		Score:     2,
		Questions: questions("first", "second"),
	}
	if _, err := s.RecordQuizCompletion(t.Context(), out); err != nil {
		t.Fatalf("record: %v", err)
	}

	texts := s.PriorQuestionTexts()
	if len(texts) != 2 || texts[0] != "first" || texts[1] != "second" {
		t.Errorf("prior texts = %v", texts)
	}
}

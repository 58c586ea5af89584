package progress

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/prateekk-tech99/safebite-quiz/internal/badge"
	"github.com/prateekk-tech99/safebite-quiz/internal/catalog"
)

// Repo persists the single progress record.
type Repo interface {
	Load(ctx context.Context) (*UserProgress, error)
	Save(ctx context.Context, p *UserProgress) error
	Clear(ctx context.Context) error
}

// Store holds the in-memory progress state and writes it through to the
// repo after every change. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	repo    Repo
	current *UserProgress
	clock   func() time.Time
}

// NewStore loads existing progress from the repo, or starts fresh when
// none exists.
func NewStore(ctx context.Context, repo Repo) (*Store, error) {
	p, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if p == nil {
		p = New()
	}
	p.Normalize()
	return &Store{repo: repo, current: p, clock: time.Now}, nil
}

// RecordQuizCompletion folds a finished quiz into the progress and returns
// the badges newly earned by it.
func (s *Store) RecordQuizCompletion(ctx context.Context, outcome QuizOutcome) ([]badge.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Apply(s.current, outcome, s.clock())
	newBadges := next.Badges[len(s.current.Badges):]
	s.current = next
	s.persist(ctx)
	return append([]badge.ID{}, newBadges...), nil
}

// AddOfflineQuiz stores a pre-generated quiz for later play.
func (s *Store) AddOfflineQuiz(ctx context.Context, q OfflineQuiz) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.OfflineQuizzes = append(s.current.OfflineQuizzes, q)
	s.persist(ctx)
}

// RemoveOfflineQuiz deletes the stored quiz with the given ID.
// Removing an ID that does not exist is a no-op.
func (s *Store) RemoveOfflineQuiz(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.current.OfflineQuizzes[:0]
	for _, q := range s.current.OfflineQuizzes {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(s.current.OfflineQuizzes) {
		return
	}
	s.current.OfflineQuizzes = kept
	s.persist(ctx)
}

// Reset discards all progress, in memory and in the repo.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	s.current = New()
	return nil
}

// Snapshot returns a deep copy of the current progress.
func (s *Store) Snapshot() *UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// TopicStats returns the accumulated score for one topic.
func (s *Store) TopicStats(t catalog.Topic) TopicScore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Scores[t]
}

// PriorQuestionTexts returns the texts of every question the player has
// seen, for generator deduplication.
func (s *Store) PriorQuestionTexts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.current.QuestionBank))
	for _, q := range s.current.QuestionBank {
		out = append(out, q.Text)
	}
	return out
}

// persist writes the current state through to the repo. Persistence
// failures are logged, not fatal: the in-memory state stays authoritative
// for the rest of the run.
func (s *Store) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.current); err != nil {
		log.Printf("progress: save failed: %v", err)
	}
}

package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressLoadEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	data, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if data != nil {
		t.Fatal("expected nil document when none stored")
	}
}

func TestProgressSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	doc := map[string]any{
		"streak":         float64(3),
		"lastPlayedDate": "2026-03-10",
		"badges":         []any{"first-quiz", "streak-3"},
	}
	if err := repo.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected stored document")
	}
	if got["streak"] != float64(3) || got["lastPlayedDate"] != "2026-03-10" {
		t.Errorf("streak/date = %v/%v, want 3/2026-03-10", got["streak"], got["lastPlayedDate"])
	}
	badges, ok := got["badges"].([]any)
	if !ok || len(badges) != 2 || badges[1] != "streak-3" {
		t.Errorf("badges = %v", got["badges"])
	}
}

func TestProgressSaveReplacesRecord(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, map[string]any{"streak": float64(1)}); err != nil {
		t.Fatalf("save 1: %v", err)
	}
	if err := repo.Save(ctx, map[string]any{"streak": float64(2)}); err != nil {
		t.Fatalf("save 2: %v", err)
	}

	count, err := s.Client().ProgressRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("progress records = %d, want 1", count)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got["streak"] != float64(2) {
		t.Errorf("streak = %v, want 2", got["streak"])
	}
}

func TestProgressClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, map[string]any{"streak": float64(1)}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	data, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data != nil {
		t.Error("expected nil document after clear")
	}
}

func TestQuizEventsAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []QuizEventData{
		{SessionID: "s1", Topic: "HACCP", Difficulty: "Beginner", Score: 3, TotalQuestions: 5, DurationSecs: 120},
		{SessionID: "s2", Topic: "Hygiene", Difficulty: "Expert", Score: 5, TotalQuestions: 5, DurationSecs: 80},
	}
	for _, e := range events {
		if err := repo.AppendQuizEvent(ctx, e); err != nil {
			t.Fatalf("append %s: %v", e.SessionID, err)
		}
	}

	got, err := repo.RecentQuizzes(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}
	seen := map[string]bool{}
	for _, e := range got {
		seen[e.SessionID] = true
	}
	if !seen["s1"] || !seen["s2"] {
		t.Errorf("missing events: %+v", got)
	}

	limited, err := repo.RecentQuizzes(ctx, 1)
	if err != nil {
		t.Fatalf("recent limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited events = %d, want 1", len(limited))
	}
}

func TestLLMRequestEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "quiz-gen",
		InputTokens:  812,
		OutputTokens: 1544,
		LatencyMs:    2310,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("llm events = %d, want 1", count)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"progress_records", "quiz_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestRecentLLMRequests(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"quiz-gen", "feedback-gen", "quiz-gen"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "openai",
			Model:        "gpt-4o-mini",
			Purpose:      purpose,
			InputTokens:  100,
			OutputTokens: 200,
			LatencyMs:    900,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.RecentLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}
	for _, e := range got {
		if e.Model != "gpt-4o-mini" {
			t.Errorf("model = %q, want gpt-4o-mini", e.Model)
		}
		if e.Timestamp.IsZero() {
			t.Error("timestamp not populated")
		}
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 400, LatencyMs: 1000, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz-gen", InputTokens: 300, OutputTokens: 600, LatencyMs: 3000, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "feedback-gen", InputTokens: 50, OutputTokens: 80, LatencyMs: 500, Success: false},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	for _, u := range byPurpose {
		switch u.Purpose {
		case "quiz-gen":
			if u.Calls != 2 || u.InputTokens != 400 || u.OutputTokens != 1000 {
				t.Errorf("quiz-gen usage = %+v", u)
			}
			if u.AvgLatencyMs != 2000 {
				t.Errorf("quiz-gen avg latency = %d, want 2000", u.AvgLatencyMs)
			}
		case "feedback-gen":
			if u.Calls != 1 || u.InputTokens != 50 {
				t.Errorf("feedback-gen usage = %+v", u)
			}
		default:
			t.Errorf("unexpected purpose %q", u.Purpose)
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 {
		t.Fatalf("models = %d, want 1", len(byModel))
	}
	if byModel[0].Model != "gemini-2.5-flash" || byModel[0].Calls != 3 {
		t.Errorf("model usage = %+v", byModel[0])
	}
}

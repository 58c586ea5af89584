package catalog

import "testing"

func TestTopicSlugs(t *testing.T) {
	tests := []struct {
		topic Topic
		want  string
	}{
		{TopicGeneral, "general"},
		{TopicHACCP, "haccp"},
		{TopicMicrobiology, "micro"},
		{TopicSanitation, "sanitation"},
		{TopicHygiene, "hygiene"},
		{TopicChemistry, "chemistry"},
		{TopicFSSAI, "fssai"},
		{TopicLaws, "laws"},
	}

	for _, tt := range tests {
		if got := tt.topic.Slug(); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.topic, got, tt.want)
		}
	}
}

func TestAllTopicsValid(t *testing.T) {
	topics := AllTopics()
	if len(topics) != 8 {
		t.Fatalf("len(AllTopics()) = %d, want 8", len(topics))
	}
	seen := make(map[string]bool)
	for _, topic := range topics {
		if !topic.Valid() {
			t.Errorf("topic %q not valid", topic)
		}
		if seen[topic.Slug()] {
			t.Errorf("duplicate slug %q", topic.Slug())
		}
		seen[topic.Slug()] = true
	}
}

func TestTopicFromString(t *testing.T) {
	if got, ok := TopicFromString("HACCP"); !ok || got != TopicHACCP {
		t.Errorf("TopicFromString(HACCP) = %q, %t", got, ok)
	}
	if _, ok := TopicFromString("Astrology"); ok {
		t.Error("TopicFromString(Astrology) should not match")
	}
}

func TestDifficultyFromString(t *testing.T) {
	if got, ok := DifficultyFromString("Expert"); !ok || got != DifficultyExpert {
		t.Errorf("DifficultyFromString(Expert) = %q, %t", got, ok)
	}
	if _, ok := DifficultyFromString("Impossible"); ok {
		t.Error("DifficultyFromString(Impossible) should not match")
	}
}

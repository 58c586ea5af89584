package badge

import "github.com/prateekk-tech99/safebite-quiz/internal/catalog"

// ID identifies an achievement badge. Badges unlock once and are never
// taken away.
type ID string

const (
	FirstQuiz    ID = "first-quiz"
	PerfectScore ID = "perfect-score"
	Streak3      ID = "streak-3"
	Streak7      ID = "streak-7"
	SpeedDemon   ID = "speed-demon"
)

// MasteryID returns the per-topic mastery badge id for a topic.
func MasteryID(t catalog.Topic) ID {
	return ID(t.Slug() + "-master")
}

// Badge is a static catalog entry. Icon is a symbolic key resolved by the
// presentation layer; the engine only ever handles IDs.
type Badge struct {
	ID          ID
	Name        string
	Description string
	Icon        string
}

// Catalog returns every badge in display order. The catalog is immutable
// and process-wide.
func Catalog() []Badge {
	badges := []Badge{
		{FirstQuiz, "Getting Started", "Complete your first quiz.", "brain"},
		{PerfectScore, "Perfectionist", "Get a perfect score on any quiz.", "check"},
		{Streak3, "On a Roll", "Maintain a 3-day streak.", "calendar"},
		{Streak7, "Committed Learner", "Maintain a 7-day streak.", "trophy"},
		{SpeedDemon, "Speed Demon", "Average 15 seconds or less per question.", "clock"},
	}
	for _, t := range catalog.AllTopics() {
		badges = append(badges, Badge{
			ID:          MasteryID(t),
			Name:        masteryNames[t],
			Description: "Answer 20 " + string(t) + " questions correctly.",
			Icon:        "brain",
		})
	}
	return badges
}

// Lookup returns the catalog entry for an id, or (Badge{}, false) if the
// id is unknown.
func Lookup(id ID) (Badge, bool) {
	for _, b := range Catalog() {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

var masteryNames = map[catalog.Topic]string{
	catalog.TopicGeneral:      "Safety Specialist",
	catalog.TopicHACCP:        "HACCP Pro",
	catalog.TopicMicrobiology: "Microbe Hunter",
	catalog.TopicSanitation:   "Sanitation Guru",
	catalog.TopicHygiene:      "Hygiene Hero",
	catalog.TopicChemistry:    "Chemistry Whiz",
	catalog.TopicFSSAI:        "FSSAI Expert",
	catalog.TopicLaws:         "Law Scholar",
}

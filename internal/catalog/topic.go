package catalog

// Topic is one of the fixed exam subject areas. The string value is the
// display name and also the key under which per-topic scores are persisted.
type Topic string

const (
	TopicGeneral      Topic = "General"
	TopicHACCP        Topic = "HACCP"
	TopicMicrobiology Topic = "Food Microbiology"
	TopicSanitation   Topic = "Sanitation"
	TopicHygiene      Topic = "Hygiene"
	TopicChemistry    Topic = "Food Chemistry"
	TopicFSSAI        Topic = "FSSAI Regulations"
	TopicLaws         Topic = "Food Laws"
)

// AllTopics returns every topic in display order.
func AllTopics() []Topic {
	return []Topic{
		TopicGeneral,
		TopicHACCP,
		TopicMicrobiology,
		TopicSanitation,
		TopicHygiene,
		TopicChemistry,
		TopicFSSAI,
		TopicLaws,
	}
}

// Slug returns a short identifier for the topic, used to derive the
// per-topic mastery badge id ("<slug>-master").
func (t Topic) Slug() string {
	switch t {
	case TopicGeneral:
		return "general"
	case TopicHACCP:
		return "haccp"
	case TopicMicrobiology:
		return "micro"
	case TopicSanitation:
		return "sanitation"
	case TopicHygiene:
		return "hygiene"
	case TopicChemistry:
		return "chemistry"
	case TopicFSSAI:
		return "fssai"
	case TopicLaws:
		return "laws"
	default:
		return ""
	}
}

// Valid reports whether t is one of the known topics.
func (t Topic) Valid() bool {
	return t.Slug() != ""
}

// TopicFromString matches a topic by its display name.
// Returns ("", false) for unknown names.
func TopicFromString(s string) (Topic, bool) {
	t := Topic(s)
	if t.Valid() {
		return t, true
	}
	return "", false
}

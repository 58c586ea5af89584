// Package i18n provides the UI string catalogs. Quizzes themselves are
// generated in the requested language by the LLM; this covers the fixed
// chrome around them.
package i18n

import "fmt"

// Lang selects a string catalog.
type Lang string

const (
	LangEnglish Lang = "en"
	LangHindi   Lang = "hi"
)

// LanguageName returns the language name the quiz generator expects,
// e.g. "English".
func (l Lang) LanguageName() string {
	if l == LangHindi {
		return "Hindi"
	}
	return "English"
}

// Valid reports whether the language has a catalog.
func (l Lang) Valid() bool { return l == LangEnglish || l == LangHindi }

// T returns the translated string for key, formatted with args.
// Unknown keys and untranslated entries fall back to English.
func T(lang Lang, key string, args ...any) string {
	s, ok := catalogs[lang][key]
	if !ok {
		s, ok = catalogs[LangEnglish][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return s
	}
	return fmt.Sprintf(s, args...)
}

var catalogs = map[Lang]map[string]string{
	LangEnglish: {
		"home.new_quiz":        "NEW QUIZ",
		"home.offline_quizzes": "OFFLINE QUIZZES",
		"home.badges":          "BADGES",
		"home.stats":           "STATS",
		"home.exit":            "EXIT",
		"home.streak":          "%d day streak",
		"setup.pick_topic":     "Choose a topic",
		"setup.pick_level":     "Choose a difficulty",
		"setup.question_count": "How many questions? (3-10)",
		"setup.save_offline":   "Save for offline play",
		"quiz.loading":         "Generating your quiz...",
		"quiz.question_of":     "Question %d of %d",
		"quiz.time_left":       "%02d:%02d left",
		"quiz.correct":         "Correct!",
		"quiz.incorrect":       "Incorrect",
		"quiz.times_up":        "Time's up!",
		"results.title":        "Quiz Completed!",
		"results.score":        "You scored %d out of %d",
		"results.new_badges":   "New badges earned:",
		"results.feedback":     "Coach's notes",
		"results.excellent":    "Excellent!",
		"results.good":         "Good Job!",
		"results.not_bad":      "Not Bad!",
		"results.practice":     "Keep Practicing!",
		"badges.title":         "Badge Collection",
		"badges.locked":        "Locked",
		"stats.title":          "Topic Statistics",
		"offline.title":        "Offline Quizzes",
		"offline.empty":        "No offline quizzes saved yet.",
	},
	LangHindi: {
		"home.new_quiz":        "नई क्विज़",
		"home.offline_quizzes": "ऑफ़लाइन क्विज़",
		"home.badges":          "बैज",
		"home.stats":           "आँकड़े",
		"home.exit":            "बाहर निकलें",
		"home.streak":          "%d दिन की स्ट्रीक",
		"setup.pick_topic":     "विषय चुनें",
		"setup.pick_level":     "कठिनाई चुनें",
		"setup.question_count": "कितने प्रश्न? (3-10)",
		"setup.save_offline":   "ऑफ़लाइन खेलने के लिए सहेजें",
		"quiz.loading":         "आपकी क्विज़ तैयार हो रही है...",
		"quiz.question_of":     "प्रश्न %d / %d",
		"quiz.time_left":       "%02d:%02d शेष",
		"quiz.correct":         "सही!",
		"quiz.incorrect":       "गलत",
		"quiz.times_up":        "समय समाप्त!",
		"results.title":        "क्विज़ पूरी हुई!",
		"results.score":        "%[2]d में से आपने %[1]d अंक प्राप्त किए",
		"results.new_badges":   "नए बैज मिले:",
		"results.feedback":     "कोच की टिप्पणी",
		"results.excellent":    "शानदार!",
		"results.good":         "बहुत अच्छा!",
		"results.not_bad":      "बुरा नहीं!",
		"results.practice":     "अभ्यास जारी रखें!",
		"badges.title":         "बैज संग्रह",
		"badges.locked":        "बंद",
		"stats.title":          "विषय आँकड़े",
		"offline.title":        "ऑफ़लाइन क्विज़",
		"offline.empty":        "अभी कोई ऑफ़लाइन क्विज़ सहेजी नहीं गई है।",
	},
}

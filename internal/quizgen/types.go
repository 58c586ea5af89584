package quizgen

import "github.com/prateekk-tech99/safebite-quiz/internal/catalog"

// Question represents a generated quiz question ready for display.
type Question struct {
	// Text is the question prompt displayed to the player. Scenario-based,
	// describing a situation a food safety officer might encounter.
	Text string `json:"question"`

	// Options contains exactly 4 answer choices.
	Options []string `json:"options"`

	// CorrectIndex is the 0-based index of the correct option.
	CorrectIndex int `json:"correctAnswerIndex"`

	// Explanation is a detailed rationale for the correct answer,
	// shown after the player answers.
	Explanation string `json:"explanation"`
}

// GenerateInput holds all context needed to generate a quiz.
type GenerateInput struct {
	// Topic is the subject area the questions must stay within.
	Topic catalog.Topic

	// Difficulty calibrates scenario complexity.
	Difficulty catalog.Difficulty

	// Count is the number of questions to generate.
	Count int

	// Language is the output language, e.g. "English" or "Hindi".
	Language string

	// PriorQuestions contains the Text of questions the player has already
	// seen. Used for deduplication in the prompt.
	PriorQuestions []string
}

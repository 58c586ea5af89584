package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an examiner writing practice questions for a Food Safety Officer certification exam.

Rules:
- Generate unique, scenario-based multiple-choice questions. Each question presents a real-life situation a Food Safety Officer might encounter.
- Stay strictly within the requested topic.
- Match scenario complexity to the difficulty level:
  - Beginner: simple, direct scenarios on fundamental concepts.
  - Intermediate: more detailed situations requiring application of knowledge.
  - Expert: complex, multi-faceted problems involving investigation, regulation interpretation, and critical decision-making.
- For each question, provide exactly four distinct options where exactly one is correct. Distractors should reflect plausible misconceptions, not random values.
- Provide the 0-based index of the correct answer.
- Provide a detailed, comprehensive explanation for why the answer is correct.
- Write the entire output, including questions, options, and explanations, in the requested language.
- Do not repeat any question from the "already seen" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Questions: %d\n", input.Count)
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "Language: %s\n", input.Language)

	b.WriteString("\nAlready seen by this player:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

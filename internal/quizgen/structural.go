package quizgen

import "fmt"

// StructuralValidator checks that required fields are present, options are
// distinct, and the answer index is in range.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question text is empty",
			Retryable: true,
		}
	}
	if len(q.Options) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected 4 options, got %d", len(q.Options)),
			Retryable: true,
		}
	}
	seen := make(map[string]bool, 4)
	for _, opt := range q.Options {
		if opt == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "option text is empty",
				Retryable: true,
			}
		}
		if seen[opt] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate option %q", opt),
				Retryable: true,
			}
		}
		seen[opt] = true
	}
	if q.CorrectIndex < 0 || q.CorrectIndex > 3 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correctAnswerIndex %d out of range [0,3]", q.CorrectIndex),
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	return nil
}

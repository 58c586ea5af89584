package quizgen

import "testing"

func validQuestion() Question {
	return Question{
		Text:         "A vendor's cold storage reads 9 C. What should the officer do first?",
		Options:      []string{"Nothing", "Order immediate disposal", "Check the temperature log and calibrate", "Close the premises"},
		CorrectIndex: 2,
		Explanation:  "Cold storage must hold food at 5 C or below; the first step is verifying the reading and the log.",
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		name    string
		mutate  func(*Question)
		wantErr bool
	}{
		{"valid", func(q *Question) {}, false},
		{"empty text", func(q *Question) { q.Text = "" }, true},
		{"too few options", func(q *Question) { q.Options = q.Options[:3] }, true},
		{"too many options", func(q *Question) { q.Options = append(q.Options, "Extra") }, true},
		{"empty option", func(q *Question) { q.Options[1] = "" }, true},
		{"duplicate option", func(q *Question) { q.Options[0] = q.Options[3] }, true},
		{"index negative", func(q *Question) { q.CorrectIndex = -1 }, true},
		{"index too large", func(q *Question) { q.CorrectIndex = 4 }, true},
		{"empty explanation", func(q *Question) { q.Explanation = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			q.Options = append([]string(nil), q.Options...)
			tt.mutate(&q)
			err := v.Validate(&q, GenerateInput{})
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

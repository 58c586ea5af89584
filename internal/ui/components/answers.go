package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prateekk-tech99/safebite-quiz/internal/ui/theme"
)

// AnswerList is the four-option selector for a quiz question. After
// submission it highlights the correct option in green and a wrong pick
// in red, matching exam-review conventions.
type AnswerList struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewAnswerList creates an answer selector for one question.
func NewAnswerList(question string, options []string, correctIndex int) AnswerList {
	return AnswerList{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (a AnswerList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Options can also be
// picked directly with keys 1-4.
func (a AnswerList) Update(msg tea.Msg) (AnswerList, tea.Cmd) {
	if a.Submitted {
		return a, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if a.Selected > 0 {
			a.Selected--
		}
	case "down", "j":
		if a.Selected < len(a.Options)-1 {
			a.Selected++
		}
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(a.Options) {
			a.Selected = idx
			a.Submitted = true
			a.ChosenIndex = idx
		}
	case "enter":
		a.Submitted = true
		a.ChosenIndex = a.Selected
	}

	return a, nil
}

// View renders the question and its options.
func (a AnswerList) View(width int) string {
	question := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width).
		Render(a.Question)
	s := question + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range a.Options {
		prefix := "  "
		if i == a.Selected && !a.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, labels[i], opt)

		var style lipgloss.Style
		switch {
		case a.Submitted && i == a.CorrectIndex:
			style = theme.Correct
		case a.Submitted && i == a.ChosenIndex:
			style = theme.Incorrect
		case a.Submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == a.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		s += style.Width(width).Render(line) + "\n"
	}

	return s
}

// IsCorrect returns true if the submitted choice was right.
func (a AnswerList) IsCorrect() bool {
	return a.Submitted && a.ChosenIndex == a.CorrectIndex
}

package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prateekk-tech99/safebite-quiz/internal/ui/theme"
)

// NumberInput wraps bubbles/textinput for small numeric entries such as
// the question count.
type NumberInput struct {
	Model     textinput.Model
	Min       int
	Max       int
	submitted bool
	valid     bool
}

// NewNumberInput creates a numeric input accepting values in [min, max].
func NewNumberInput(placeholder string, min, max int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 2
	ti.Focus()

	return NumberInput{
		Model: ti,
		Min:   min,
		Max:   max,
	}
}

// Init returns the initial command.
func (n NumberInput) Init() tea.Cmd {
	return n.Model.Focus()
}

// Update handles messages, dropping non-digit input.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// View renders the input with a validation mark after submission.
func (n NumberInput) View() string {
	view := n.Model.View()
	if n.submitted {
		if n.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the entered number and whether it is within range.
func (n NumberInput) Value() (int, bool) {
	v, err := strconv.Atoi(n.Model.Value())
	if err != nil {
		return 0, false
	}
	return v, v >= n.Min && v <= n.Max
}

// Submit marks the input as submitted with a validation result.
func (n *NumberInput) Submit(valid bool) {
	n.submitted = true
	n.valid = valid
}

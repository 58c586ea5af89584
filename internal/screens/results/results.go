package results

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prateekk-tech99/safebite-quiz/internal/badge"
	"github.com/prateekk-tech99/safebite-quiz/internal/i18n"
	"github.com/prateekk-tech99/safebite-quiz/internal/progress"
	"github.com/prateekk-tech99/safebite-quiz/internal/quizgen"
	"github.com/prateekk-tech99/safebite-quiz/internal/router"
	"github.com/prateekk-tech99/safebite-quiz/internal/screen"
	"github.com/prateekk-tech99/safebite-quiz/internal/ui/components"
	"github.com/prateekk-tech99/safebite-quiz/internal/ui/layout"
	"github.com/prateekk-tech99/safebite-quiz/internal/ui/theme"
)

// feedbackPollMsg drives polling for async coach feedback.
type feedbackPollMsg struct{}

// maxFeedbackPolls caps how long the screen waits for feedback.
const maxFeedbackPolls = 60 // at 500ms each, 30 seconds

// ResultsScreen shows the score, any new badges, and coach feedback.
type ResultsScreen struct {
	feedback *quizgen.FeedbackService
	lang     i18n.Lang
	outcome  progress.QuizOutcome
	earned   []badge.ID

	coach *quizgen.Feedback
	polls int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a finished quiz.
func New(feedback *quizgen.FeedbackService, lang i18n.Lang, outcome progress.QuizOutcome, earned []badge.ID) *ResultsScreen {
	return &ResultsScreen{
		feedback: feedback,
		lang:     lang,
		outcome:  outcome,
		earned:   earned,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	if r.feedback == nil {
		return nil
	}
	return pollCmd()
}

func pollCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return feedbackPollMsg{}
	})
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackPollMsg:
		if r.coach != nil {
			return r, nil
		}
		if fb, ok := r.feedback.ConsumeFeedback(); ok {
			r.coach = fb
			return r, nil
		}
		r.polls++
		if r.polls >= maxFeedbackPolls {
			return r, nil
		}
		return r, pollCmd()

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return r, nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
}

// verdictKey picks the headline by score percentage, mirroring exam-style
// grading bands.
func (r *ResultsScreen) verdictKey() string {
	total := r.outcome.TotalQuestions()
	if total == 0 {
		return "results.practice"
	}
	pct := r.outcome.Score * 100 / total
	switch {
	case pct >= 90:
		return "results.excellent"
	case pct >= 70:
		return "results.good"
	case pct >= 50:
		return "results.not_bad"
	default:
		return "results.practice"
	}
}

func (r *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, theme.Title.Width(cw).Render(i18n.T(r.lang, "results.title")))
	sections = append(sections, theme.Subtitle.Width(cw).Render(fmt.Sprintf("%s · %s", r.outcome.Topic, r.outcome.Difficulty)))

	verdict := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(i18n.T(r.lang, r.verdictKey()))
	sections = append(sections, verdict)

	score := theme.Body.Width(cw).Align(lipgloss.Center).
		Render(i18n.T(r.lang, "results.score", r.outcome.Score, r.outcome.TotalQuestions()))
	sections = append(sections, score)

	if len(r.earned) > 0 {
		lines := []string{theme.Earned.Render(i18n.T(r.lang, "results.new_badges"))}
		for _, id := range r.earned {
			if b, ok := badge.Lookup(id); ok {
				lines = append(lines, theme.Body.Render("  ⬢ "+b.Name))
			}
		}
		sections = append(sections, components.Card(strings.Join(lines, "\n"), cw))
	}

	if r.coach != nil {
		lines := []string{theme.Selected.Render(i18n.T(r.lang, "results.feedback"))}
		lines = append(lines, theme.Body.Width(cw-6).Render(r.coach.Message))
		for _, tip := range r.coach.StudyTips {
			lines = append(lines, theme.Hint.Width(cw-6).Render("• "+tip))
		}
		sections = append(sections, components.Card(strings.Join(lines, "\n"), cw))
	} else if r.feedback != nil && r.polls < maxFeedbackPolls {
		sections = append(sections, theme.Hint.Width(cw).Align(lipgloss.Center).Render("..."))
	}

	return components.Centered(strings.Join(sections, "\n\n"), width, height)
}

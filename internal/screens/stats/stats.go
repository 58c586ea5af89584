package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prateekk-tech99/safebite-quiz/internal/catalog"
	"github.com/prateekk-tech99/safebite-quiz/internal/i18n"
	"github.com/prateekk-tech99/safebite-quiz/internal/progress"
	"github.com/prateekk-tech99/safebite-quiz/internal/screen"
	"github.com/prateekk-tech99/safebite-quiz/internal/store"
	"github.com/prateekk-tech99/safebite-quiz/internal/ui/components"
	"github.com/prateekk-tech99/safebite-quiz/internal/ui/theme"
)

// historyLimit is how many recent quizzes the screen shows.
const historyLimit = 8

// StatsScreen shows per-topic accuracy and recent quiz history.
type StatsScreen struct {
	progress *progress.Store
	lang     i18n.Lang
	recent   []store.QuizEventData
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates the stats screen. Recent history is loaded eagerly; the
// event log is small and local.
func New(prog *progress.Store, events store.EventRepo, lang i18n.Lang) *StatsScreen {
	var recent []store.QuizEventData
	if events != nil {
		recent, _ = events.RecentQuizzes(context.Background(), historyLimit)
	}
	return &StatsScreen{progress: prog, lang: lang, recent: recent}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) Title() string {
	return i18n.T(s.lang, "stats.title")
}

func (s *StatsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	snap := s.progress.Snapshot()

	// Per-topic accuracy bars.
	var topicLines []string
	for _, t := range catalog.AllTopics() {
		sc := snap.Scores[t]
		if sc.TotalAttempted == 0 {
			topicLines = append(topicLines, theme.Locked.Render(fmt.Sprintf("%-20s —", t)))
			continue
		}
		bar := components.NewProgressBar(
			fmt.Sprintf("%-20s", t),
			float64(sc.TotalCorrect)/float64(sc.TotalAttempted),
			true,
			cw-8,
		)
		topicLines = append(topicLines,
			bar.View()+theme.Hint.Render(fmt.Sprintf(" %d/%d", sc.TotalCorrect, sc.TotalAttempted)))
	}

	sections := []string{components.Card(strings.Join(topicLines, "\n"), cw)}

	// Recent quizzes.
	if len(s.recent) > 0 {
		lines := []string{theme.Selected.Render("Recent quizzes")}
		for _, e := range s.recent {
			lines = append(lines, theme.Body.Render(fmt.Sprintf(
				"%s  %-20s %-12s %d/%d",
				e.Timestamp.Format("Jan 02"),
				e.Topic, e.Difficulty, e.Score, e.TotalQuestions,
			)))
		}
		sections = append(sections, components.Card(strings.Join(lines, "\n"), cw))
	}

	summary := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("Streak %d · Badges %d · Questions seen %d",
			snap.Streak, len(snap.Badges), len(snap.QuestionBank)))
	sections = append(sections, summary)

	return components.Centered(strings.Join(sections, "\n\n"), width, height)
}

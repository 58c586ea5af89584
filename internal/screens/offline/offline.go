package offline

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/prateekk-tech99/safebite-quiz/internal/i18n"
	"github.com/prateekk-tech99/safebite-quiz/internal/progress"
	"github.com/prateekk-tech99/safebite-quiz/internal/quizgen"
	"github.com/prateekk-tech99/safebite-quiz/internal/router"
	"github.com/prateekk-tech99/safebite-quiz/internal/screen"
	"github.com/prateekk-tech99/safebite-quiz/internal/screens/quiz"
	"github.com/prateekk-tech99/safebite-quiz/internal/store"
	"github.com/prateekk-tech99/safebite-quiz/internal/ui/components"
	"github.com/prateekk-tech99/safebite-quiz/internal/ui/layout"
	"github.com/prateekk-tech99/safebite-quiz/internal/ui/theme"
)

// OfflineScreen lists saved quizzes for play or deletion.
type OfflineScreen struct {
	feedback *quizgen.FeedbackService
	progress *progress.Store
	events   store.EventRepo
	lang     i18n.Lang

	quizzes  []progress.OfflineQuiz
	selected int
}

var _ screen.Screen = (*OfflineScreen)(nil)
var _ screen.KeyHintProvider = (*OfflineScreen)(nil)

// New creates the offline quiz list screen.
func New(feedback *quizgen.FeedbackService, prog *progress.Store, events store.EventRepo, lang i18n.Lang) *OfflineScreen {
	return &OfflineScreen{
		feedback: feedback,
		progress: prog,
		events:   events,
		lang:     lang,
		quizzes:  prog.Snapshot().OfflineQuizzes,
	}
}

func (o *OfflineScreen) Init() tea.Cmd {
	return nil
}

func (o *OfflineScreen) Title() string {
	return i18n.T(o.lang, "offline.title")
}

func (o *OfflineScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (o *OfflineScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(o.quizzes) == 0 {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.selected > 0 {
			o.selected--
		}
	case "down", "j":
		if o.selected < len(o.quizzes)-1 {
			o.selected++
		}
	case "enter":
		oq := o.quizzes[o.selected]
		// Played quizzes are consumed: they contain questions already in
		// the dedup bank, so replaying would double-count scores.
		o.progress.RemoveOfflineQuiz(context.Background(), oq.ID)
		return o, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: quiz.NewOffline(o.feedback, o.progress, o.events, o.lang, oq),
			}
		}
	case "d":
		oq := o.quizzes[o.selected]
		o.progress.RemoveOfflineQuiz(context.Background(), oq.ID)
		o.refresh()
	}
	return o, nil
}

func (o *OfflineScreen) refresh() {
	o.quizzes = o.progress.Snapshot().OfflineQuizzes
	if o.selected >= len(o.quizzes) {
		o.selected = len(o.quizzes) - 1
	}
	if o.selected < 0 {
		o.selected = 0
	}
}

func (o *OfflineScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if len(o.quizzes) == 0 {
		body := theme.Hint.Width(cw).Render(i18n.T(o.lang, "offline.empty"))
		return components.Centered(components.Card(body, cw), width, height)
	}

	var lines []string
	for i, oq := range o.quizzes {
		line := fmt.Sprintf("%s · %s · %d questions", oq.Topic, oq.Difficulty, len(oq.Questions))
		if i == o.selected {
			lines = append(lines, theme.Selected.Render("  ▸ "+line))
		} else {
			lines = append(lines, theme.Unselected.Render("    "+line))
		}
	}

	return components.Centered(components.Card(strings.Join(lines, "\n"), cw), width, height)
}

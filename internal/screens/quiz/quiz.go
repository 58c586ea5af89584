package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prateekk-tech99/safebite-quiz/internal/i18n"
	"github.com/prateekk-tech99/safebite-quiz/internal/progress"
	"github.com/prateekk-tech99/safebite-quiz/internal/quizgen"
	"github.com/prateekk-tech99/safebite-quiz/internal/router"
	"github.com/prateekk-tech99/safebite-quiz/internal/screen"
	"github.com/prateekk-tech99/safebite-quiz/internal/screens/results"
	sess "github.com/prateekk-tech99/safebite-quiz/internal/session"
	"github.com/prateekk-tech99/safebite-quiz/internal/store"
	"github.com/prateekk-tech99/safebite-quiz/internal/ui/components"
	"github.com/prateekk-tech99/safebite-quiz/internal/ui/layout"
	"github.com/prateekk-tech99/safebite-quiz/internal/ui/theme"
)

// urgentThresholdSecs is when the countdown switches to the urgent color.
const urgentThresholdSecs = 30

// QuizScreen runs one quiz from generation through the last question.
type QuizScreen struct {
	generator quizgen.Generator
	feedback  *quizgen.FeedbackService
	progress  *progress.Store
	events    store.EventRepo
	lang      i18n.Lang
	input     quizgen.GenerateInput

	// preloaded holds questions for offline play; generation is skipped.
	preloaded []quizgen.Question

	session *sess.Session
	answers components.AnswerList
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscBlocker = (*QuizScreen)(nil)

// New creates a quiz screen that generates its questions on init.
func New(generator quizgen.Generator, feedback *quizgen.FeedbackService, prog *progress.Store, events store.EventRepo, lang i18n.Lang, input quizgen.GenerateInput) *QuizScreen {
	return &QuizScreen{
		generator: generator,
		feedback:  feedback,
		progress:  prog,
		events:    events,
		lang:      lang,
		input:     input,
	}
}

// NewOffline creates a quiz screen over pre-generated questions.
func NewOffline(feedback *quizgen.FeedbackService, prog *progress.Store, events store.EventRepo, lang i18n.Lang, oq progress.OfflineQuiz) *QuizScreen {
	return &QuizScreen{
		feedback:  feedback,
		progress:  prog,
		events:    events,
		lang:      lang,
		input:     quizgen.GenerateInput{Topic: oq.Topic, Difficulty: oq.Difficulty, Count: len(oq.Questions)},
		preloaded: oq.Questions,
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	if q.preloaded != nil {
		return func() tea.Msg {
			return quizReadyMsg{Questions: q.preloaded}
		}
	}
	input := q.input
	return func() tea.Msg {
		questions, err := q.generator.Generate(context.Background(), input)
		return quizReadyMsg{Questions: questions, Err: err}
	}
}

func (q *QuizScreen) Title() string {
	return string(q.input.Topic)
}

// BlocksEsc keeps a running quiz from being abandoned by a stray Esc.
func (q *QuizScreen) BlocksEsc() bool {
	return q.session != nil && !q.session.Done()
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.session == nil {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	if q.session.Phase == sess.PhaseAnswered {
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓ / 1-4", Description: "Pick"},
		{Key: "Enter", Description: "Lock in"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return q.handleReady(msg)

	case timerTickMsg:
		return q.handleTick()

	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		q.errMsg = msg.Err.Error()
		return q, nil
	}

	s, err := sess.New(q.input.Topic, q.input.Difficulty, msg.Questions)
	if err != nil {
		q.errMsg = err.Error()
		return q, nil
	}
	q.session = s
	q.loadCurrentQuestion()
	return q, tickCmd()
}

func (q *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	if q.session == nil || q.session.Done() {
		return q, nil
	}
	q.session.Tick()
	if q.session.Done() {
		return q, q.finish()
	}
	return q, tickCmd()
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.errMsg != "" {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if q.session == nil {
		return q, nil
	}

	switch q.session.Phase {
	case sess.PhaseAwaitingAnswer:
		before := q.answers.Submitted
		q.answers, _ = q.answers.Update(msg)
		if q.answers.Submitted && !before {
			if _, err := q.session.Select(q.answers.ChosenIndex); err != nil {
				q.errMsg = err.Error()
			}
		}
	case sess.PhaseAnswered:
		if msg.String() == "enter" {
			q.session.Advance()
			if q.session.Done() {
				return q, q.finish()
			}
			q.loadCurrentQuestion()
		}
	}
	return q, nil
}

func (q *QuizScreen) loadCurrentQuestion() {
	cur := q.session.Current()
	if cur == nil {
		return
	}
	q.answers = components.NewAnswerList(cur.Text, cur.Options, cur.CorrectIndex)
}

// finish folds the outcome into progress exactly once and hands over to
// the results screen.
func (q *QuizScreen) finish() tea.Cmd {
	outcome, ok := q.session.Outcome()
	if !ok {
		return nil
	}

	ctx := context.Background()
	newBadges, err := q.progress.RecordQuizCompletion(ctx, outcome)
	if err != nil {
		q.errMsg = err.Error()
		return nil
	}

	if q.events != nil {
		_ = q.events.AppendQuizEvent(ctx, store.QuizEventData{
			SessionID:      q.session.ID,
			Topic:          string(outcome.Topic),
			Difficulty:     string(outcome.Difficulty),
			Score:          outcome.Score,
			TotalQuestions: outcome.TotalQuestions(),
			DurationSecs:   outcome.TimeTakenSeconds,
		})
	}

	if q.feedback != nil {
		q.feedback.RequestFeedback(ctx, quizgen.FeedbackInput{
			Topic:      outcome.Topic,
			Difficulty: outcome.Difficulty,
			Score:      outcome.Score,
			Total:      outcome.TotalQuestions(),
			Language:   q.lang.LanguageName(),
			Mistakes:   q.session.Mistakes(),
		})
	}

	res := results.New(q.feedback, q.lang, outcome, newBadges)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: res}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (q *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if q.errMsg != "" {
		body := theme.Incorrect.Render("Something went wrong") + "\n\n" +
			theme.Hint.Width(cw - 4).Render(q.errMsg) + "\n\n" +
			theme.Hint.Render("Press any key to go back.")
		return components.Centered(components.Card(body, cw), width, height)
	}

	if q.session == nil {
		body := theme.Title.Width(cw).Render(i18n.T(q.lang, "quiz.loading")) + "\n\n" +
			theme.Subtitle.Width(cw).Render(fmt.Sprintf("%s · %s · %d questions", q.input.Topic, q.input.Difficulty, q.input.Count))
		return components.Centered(body, width, height)
	}

	var sections []string

	// Status row: position and countdown.
	position := i18n.T(q.lang, "quiz.question_of", q.session.Index+1, len(q.session.Questions))
	remaining := q.session.RemainingSecs
	timerStyle := theme.TimerCalm
	if remaining <= urgentThresholdSecs {
		timerStyle = theme.TimerUrgent
	}
	timer := timerStyle.Render(i18n.T(q.lang, "quiz.time_left", remaining/60, remaining%60))
	gap := cw - lipgloss.Width(position) - lipgloss.Width(timer)
	if gap < 1 {
		gap = 1
	}
	sections = append(sections, theme.Subtitle.Render(position)+strings.Repeat(" ", gap)+timer)

	// Countdown bar.
	total := len(q.session.Questions) * sess.SecondsPerQuestion
	bar := components.ProgressBar{
		Percent: float64(remaining) / float64(total),
		Width:   cw,
		Urgent:  remaining <= urgentThresholdSecs,
	}
	sections = append(sections, bar.View())

	// The question card.
	sections = append(sections, components.Card(q.answers.View(cw-4), cw))

	// Feedback after answering.
	if q.session.Phase == sess.PhaseAnswered {
		var verdict string
		if q.answers.IsCorrect() {
			verdict = theme.Correct.Render(i18n.T(q.lang, "quiz.correct"))
		} else {
			verdict = theme.Incorrect.Render(i18n.T(q.lang, "quiz.incorrect"))
		}
		explanation := theme.Body.Width(cw - 4).Render(q.session.Current().Explanation)
		sections = append(sections, components.Card(verdict+"\n\n"+explanation, cw))
	}

	return components.Centered(strings.Join(sections, "\n\n"), width, height)
}

package setup

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/prateekk-tech99/safebite-quiz/internal/catalog"
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

// Question count bounds for one quiz.
const (
	MinQuestions     = 3
	MaxQuestions     = 10
	DefaultQuestions = 5
)

type step int

const (
	stepTopic step = iota
	stepDifficulty
	stepCount
	stepMode
	stepSaving
	stepSaveDone
	stepSaveFailed
)

// offlineSavedMsg reports the result of generating a quiz for offline play.
type offlineSavedMsg struct {
	Err error
}

// SetupScreen walks through topic, difficulty and length before starting
// or saving a quiz.
type SetupScreen struct {
	generator quizgen.Generator
	feedback  *quizgen.FeedbackService
	progress  *progress.Store
	events    store.EventRepo
	lang      i18n.Lang

	step       step
	topicMenu  components.Menu
	levelMenu  components.Menu
	countInput components.NumberInput
	modeMenu   components.Menu

	topic      catalog.Topic
	difficulty catalog.Difficulty
	count      int
	saveErr    error
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the quiz setup screen.
func New(generator quizgen.Generator, feedback *quizgen.FeedbackService, prog *progress.Store, events store.EventRepo, lang i18n.Lang) *SetupScreen {
	s := &SetupScreen{
		generator: generator,
		feedback:  feedback,
		progress:  prog,
		events:    events,
		lang:      lang,
		count:     DefaultQuestions,
	}

	topicItems := make([]components.MenuItem, 0, len(catalog.AllTopics()))
	for _, t := range catalog.AllTopics() {
		topic := t
		topicItems = append(topicItems, components.MenuItem{
			Label: string(topic),
			Action: func() tea.Cmd {
				s.topic = topic
				s.step = stepDifficulty
				return nil
			},
		})
	}
	s.topicMenu = components.NewMenu(topicItems)

	levelItems := make([]components.MenuItem, 0, len(catalog.AllDifficulties()))
	for _, d := range catalog.AllDifficulties() {
		difficulty := d
		levelItems = append(levelItems, components.MenuItem{
			Label: string(difficulty),
			Action: func() tea.Cmd {
				s.difficulty = difficulty
				s.step = stepCount
				return s.countInput.Init()
			},
		})
	}
	s.levelMenu = components.NewMenu(levelItems)

	s.countInput = components.NewNumberInput(fmt.Sprintf("%d", DefaultQuestions), MinQuestions, MaxQuestions)

	s.modeMenu = components.NewMenu([]components.MenuItem{
		{Label: "Play now", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.ReplaceScreenMsg{
					Screen: quiz.New(s.generator, s.feedback, s.progress, s.events, s.lang, s.generateInput()),
				}
			}
		}},
		{Label: i18n.T(lang, "setup.save_offline"), Action: func() tea.Cmd {
			s.step = stepSaving
			return s.saveOffline()
		}},
	})

	return s
}

func (s *SetupScreen) generateInput() quizgen.GenerateInput {
	return quizgen.GenerateInput{
		Topic:          s.topic,
		Difficulty:     s.difficulty,
		Count:          s.count,
		Language:       s.lang.LanguageName(),
		PriorQuestions: s.progress.PriorQuestionTexts(),
	}
}

// saveOffline generates the quiz now and stores it for later play.
func (s *SetupScreen) saveOffline() tea.Cmd {
	input := s.generateInput()
	return func() tea.Msg {
		questions, err := s.generator.Generate(context.Background(), input)
		if err != nil {
			return offlineSavedMsg{Err: err}
		}
		s.progress.AddOfflineQuiz(context.Background(), progress.OfflineQuiz{
			ID:         uuid.NewString(),
			Topic:      input.Topic,
			Difficulty: input.Difficulty,
			Questions:  questions,
		})
		return offlineSavedMsg{}
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if saved, ok := msg.(offlineSavedMsg); ok {
		if saved.Err != nil {
			s.saveErr = saved.Err
			s.step = stepSaveFailed
		} else {
			s.step = stepSaveDone
		}
		return s, nil
	}

	var cmd tea.Cmd
	switch s.step {
	case stepTopic:
		s.topicMenu, cmd = s.topicMenu.Update(msg)
	case stepDifficulty:
		s.levelMenu, cmd = s.levelMenu.Update(msg)
	case stepCount:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			v, valid := s.countInput.Value()
			if s.countInput.Model.Value() == "" {
				v, valid = DefaultQuestions, true
			}
			s.countInput.Submit(valid)
			if valid {
				s.count = v
				s.step = stepMode
			}
			return s, nil
		}
		s.countInput, cmd = s.countInput.Update(msg)
	case stepMode:
		s.modeMenu, cmd = s.modeMenu.Update(msg)
	case stepSaveDone, stepSaveFailed:
		if _, ok := msg.(tea.KeyMsg); ok {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, cmd
}

func (s *SetupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	var prompt string

	switch s.step {
	case stepTopic:
		prompt = i18n.T(s.lang, "setup.pick_topic")
		body = s.topicMenu.View()
	case stepDifficulty:
		prompt = i18n.T(s.lang, "setup.pick_level")
		body = s.levelMenu.View()
	case stepCount:
		prompt = i18n.T(s.lang, "setup.question_count")
		body = "  " + s.countInput.View()
	case stepMode:
		prompt = fmt.Sprintf("%s · %s · %d", s.topic, s.difficulty, s.count)
		body = s.modeMenu.View()
	case stepSaving:
		prompt = i18n.T(s.lang, "quiz.loading")
		body = theme.Hint.Render("  This can take a few seconds.")
	case stepSaveDone:
		prompt = i18n.T(s.lang, "offline.title")
		body = theme.Correct.Render("  Saved. Press any key to go back.")
	case stepSaveFailed:
		prompt = i18n.T(s.lang, "offline.title")
		body = theme.Incorrect.Render("  Could not generate the quiz.") + "\n" +
			theme.Hint.Render("  "+s.saveErr.Error())
	}

	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cw).
		Render(prompt)

	content := strings.Join([]string{title, components.Card(body, cw)}, "\n\n")
	return components.Centered(content, width, height)
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.step == stepCount {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

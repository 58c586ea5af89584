package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prateekk-tech99/safebite-quiz/internal/i18n"
	"github.com/prateekk-tech99/safebite-quiz/internal/progress"
	"github.com/prateekk-tech99/safebite-quiz/internal/quizgen"
	"github.com/prateekk-tech99/safebite-quiz/internal/router"
	"github.com/prateekk-tech99/safebite-quiz/internal/screen"
	"github.com/prateekk-tech99/safebite-quiz/internal/screens/badges"
	"github.com/prateekk-tech99/safebite-quiz/internal/screens/offline"
	"github.com/prateekk-tech99/safebite-quiz/internal/screens/setup"
	"github.com/prateekk-tech99/safebite-quiz/internal/screens/stats"
	"github.com/prateekk-tech99/safebite-quiz/internal/store"
	"github.com/prateekk-tech99/safebite-quiz/internal/ui/components"
	"github.com/prateekk-tech99/safebite-quiz/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu     components.Menu
	progress *progress.Store
	lang     i18n.Lang
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with all navigation wired.
func New(generator quizgen.Generator, feedback *quizgen.FeedbackService, prog *progress.Store, events store.EventRepo, lang i18n.Lang) *HomeScreen {
	snap := prog.Snapshot()

	items := []components.MenuItem{
		{Label: i18n.T(lang, "home.new_quiz"), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: setup.New(generator, feedback, prog, events, lang),
				}
			}
		}},
		{
			Label:    i18n.T(lang, "home.offline_quizzes"),
			Detail:   fmt.Sprintf("(%d)", len(snap.OfflineQuizzes)),
			Disabled: len(snap.OfflineQuizzes) == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: offline.New(feedback, prog, events, lang),
					}
				}
			},
		},
		{Label: i18n.T(lang, "home.badges"), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: badges.New(prog, lang)}
			}
		}},
		{Label: i18n.T(lang, "home.stats"), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(prog, events, lang)}
			}
		}},
		{Label: i18n.T(lang, "home.exit"), Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		progress: prog,
		lang:     lang,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	snap := h.progress.Snapshot()

	title := theme.Title.Width(cw).Render("SafeBite Quiz")
	subtitle := theme.Subtitle.Width(cw).Render("Food Safety Officer Exam Trainer")

	var streakLine string
	if snap.Streak > 0 {
		streakLine = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Width(cw).
			Align(lipgloss.Center).
			Render("★ " + i18n.T(h.lang, "home.streak", snap.Streak))
	}

	sections := []string{title, subtitle}
	if streakLine != "" {
		sections = append(sections, streakLine)
	}
	sections = append(sections, components.Card(h.menu.View(), cw))

	return components.Centered(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

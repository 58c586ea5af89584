package badges

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prateekk-tech99/safebite-quiz/internal/badge"
	"github.com/prateekk-tech99/safebite-quiz/internal/i18n"
	"github.com/prateekk-tech99/safebite-quiz/internal/progress"
	"github.com/prateekk-tech99/safebite-quiz/internal/screen"
	"github.com/prateekk-tech99/safebite-quiz/internal/ui/components"
	"github.com/prateekk-tech99/safebite-quiz/internal/ui/theme"
)

// icons maps the symbolic badge icon keys to terminal glyphs.
var icons = map[string]string{
	"brain":    "◉",
	"check":    "✔",
	"calendar": "▦",
	"trophy":   "♕",
	"clock":    "◷",
}

// BadgesScreen shows the full badge gallery with earned state.
type BadgesScreen struct {
	progress *progress.Store
	lang     i18n.Lang
}

var _ screen.Screen = (*BadgesScreen)(nil)

// New creates the badge gallery screen.
func New(prog *progress.Store, lang i18n.Lang) *BadgesScreen {
	return &BadgesScreen{progress: prog, lang: lang}
}

func (b *BadgesScreen) Init() tea.Cmd {
	return nil
}

func (b *BadgesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return b, nil
}

func (b *BadgesScreen) Title() string {
	return i18n.T(b.lang, "badges.title")
}

func (b *BadgesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	snap := b.progress.Snapshot()

	held := make(map[badge.ID]bool, len(snap.Badges))
	for _, id := range snap.Badges {
		held[id] = true
	}

	var lines []string
	for _, entry := range badge.Catalog() {
		icon := icons[entry.Icon]
		if icon == "" {
			icon = "⬢"
		}

		if held[entry.ID] {
			lines = append(lines,
				theme.Earned.Render(icon+" "+entry.Name)+
					"  "+theme.Body.Render(entry.Description))
		} else {
			lines = append(lines,
				theme.Locked.Render(icon+" "+entry.Name+
					"  "+entry.Description+
					"  ["+i18n.T(b.lang, "badges.locked")+"]"))
		}
	}

	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(countLabel(len(snap.Badges), len(badge.Catalog())))

	content := counter + "\n\n" + components.Card(strings.Join(lines, "\n"), cw)
	return components.Centered(content, width, height)
}

func countLabel(earned, total int) string {
	return strings.Repeat("⬢ ", earned) +
		theme.Locked.Render(strings.Repeat("⬡ ", max(0, total-earned)))
}

package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/catalog"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/router"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/screen"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/screens/browse"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/screens/drill"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/screens/study"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/speech"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/store"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/components"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/layout"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/theme"
)

// HomeScreen is the mode-selection screen shown at startup.
type HomeScreen struct {
	menu    components.Menu
	session *catalog.Session
	speaker speech.Speaker
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(session *catalog.Session, speaker speech.Speaker, practiceRepo store.PracticeRepo) *HomeScreen {
	items := []components.MenuItem{
		{Label: "BROWSE WORDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New(session, speaker)}
			}
		}},
		{Label: "STUDY FLASHCARDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: study.New(session, speaker, practiceRepo)}
			}
		}},
		{Label: "SENTENCE PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: drill.New(session, speaker, practiceRepo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		session: session,
		speaker: speaker,
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
	var sections []string

	title := theme.Title.Width(width).Render("网络流行语")
	subtitle := theme.Subtitle.Width(width).Render("Chinese Internet Slang Trainer")
	sections = append(sections, title, subtitle, "")

	sections = append(sections, h.renderStats(width), "")

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	if !h.speaker.Available() {
		sections = append(sections, theme.Hint.
			Width(width).
			Align(lipgloss.Center).
			Render("speech synthesizer not found — pronunciation disabled"))
	}

	content := strings.Join(sections, "\n")

	// Vertically center.
	pad := (height - lipgloss.Height(content)) / 2
	if pad > 0 {
		content = strings.Repeat("\n", pad) + content
	}
	return content
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) renderStats(width int) string {
	words := len(h.session.Words)
	cats := len(h.session.Categories)
	favs := h.session.Progress.FavoriteCount()
	done := h.session.Progress.DoneCount()

	stats := fmt.Sprintf("%d words · %d categories · ♥ %d · ✓ %d", words, cats, favs, done)

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats)
}

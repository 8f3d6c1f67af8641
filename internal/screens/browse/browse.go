package browse

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/catalog"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/router"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/screen"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/screens/detail"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/speech"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/components"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/layout"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/theme"
)

// spokeMsg reports the outcome of a pronunciation attempt.
type spokeMsg struct {
	Err error
}

// BrowseScreen is the scrollable word list with category tabs and
// text search.
type BrowseScreen struct {
	session *catalog.Session
	speaker speech.Speaker

	tabs      components.Tabs
	input     components.TextInput
	searching bool
	crit      catalog.Criteria
	filtered  []catalog.Word
	cursor    catalog.Cursor
	speechErr string
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates a new BrowseScreen over the session's word list.
func New(session *catalog.Session, speaker speech.Speaker) *BrowseScreen {
	b := &BrowseScreen{
		session: session,
		speaker: speaker,
		tabs: components.NewTabs(session.CategorySlugs(), func(slug string) string {
			if slug == catalog.CategoryAll {
				return "All"
			}
			return session.CategoryName(slug)
		}),
		input: components.NewTextInput("Search hanzi, pinyin, meaning...", 40),
		crit:  catalog.AllCriteria(),
	}
	b.refilter()
	return b
}

func (b *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (b *BrowseScreen) Title() string {
	return "Browse"
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	if b.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑/↓", Description: "Select"},
		{Key: "←/→", Description: "Category"},
		{Key: "/", Description: "Search"},
		{Key: "f", Description: "Favorite"},
	}
	if b.speaker.Available() {
		hints = append(hints, layout.KeyHint{Key: "p", Description: "Speak"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Enter", Description: "Detail"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
	return hints
}

// refilter recomputes the visible list and rebinds the cursor. Called
// on every criteria change.
func (b *BrowseScreen) refilter() {
	b.crit.Category = b.tabs.Slug()
	b.crit.Query = b.input.Value()
	b.filtered = catalog.FilterWords(b.session.Words, b.crit)
	b.cursor = b.cursor.Resize(len(b.filtered))
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spokeMsg:
		if msg.Err != nil {
			b.speechErr = msg.Err.Error()
		}
		return b, nil
	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	if b.searching {
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		b.refilter()
		return b, cmd
	}
	return b, nil
}

func (b *BrowseScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if b.searching {
		switch key {
		case "enter":
			b.searching = false
			return b, nil
		case "esc":
			b.searching = false
			b.input.Reset()
			b.refilter()
			return b, nil
		}
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		b.refilter()
		return b, cmd
	}

	switch key {
	case "up", "k":
		b.cursor = b.cursor.Prev()
	case "down", "j":
		b.cursor = b.cursor.Next()
	case "left", "h":
		b.tabs.Prev()
		b.refilter()
	case "right", "l":
		b.tabs.Next()
		b.refilter()
	case "/":
		b.searching = true
		return b, b.input.Init()
	case "f":
		if w, ok := catalog.WordAt(b.filtered, b.cursor); ok {
			if err := b.session.Progress.ToggleFavorite(w.ID); err != nil {
				b.speechErr = err.Error()
			}
		}
	case "p":
		if w, ok := catalog.WordAt(b.filtered, b.cursor); ok {
			return b, speakCmd(b.speaker, w.Hanzi)
		}
	case "enter":
		if w, ok := catalog.WordAt(b.filtered, b.cursor); ok {
			return b, func() tea.Msg {
				return router.PushScreenMsg{Screen: detail.New(b.session, b.speaker, w)}
			}
		}
	case "esc", "q":
		return b, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return b, nil
}

// speakCmd pronounces text off the UI loop. Unavailable synthesizers
// are silently ignored; other failures surface as a status line.
func speakCmd(speaker speech.Speaker, text string) tea.Cmd {
	if !speaker.Available() {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return spokeMsg{Err: speaker.Speak(ctx, text)}
	}
}

func (b *BrowseScreen) View(width, height int) string {
	var sb strings.Builder

	sb.WriteString("  " + b.tabs.View() + "\n")

	if b.searching || b.input.Value() != "" {
		label := lipgloss.NewStyle().Foreground(theme.Secondary).Render("  Search: ")
		sb.WriteString(label + b.input.View() + "\n")
	}
	sb.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-4, 0))))
	sb.WriteString("\n")

	if len(b.filtered) == 0 {
		sb.WriteString(theme.Hint.Render("\n  No words match this filter."))
		return sb.String()
	}

	// Visible window around the cursor.
	listHeight := height - 4
	if listHeight < 1 {
		listHeight = 1
	}
	start := 0
	if b.cursor.Pos() >= listHeight {
		start = b.cursor.Pos() - listHeight + 1
	}
	end := start + listHeight
	if end > len(b.filtered) {
		end = len(b.filtered)
	}

	for i := start; i < end; i++ {
		sb.WriteString(b.renderRow(i, width) + "\n")
	}

	counter := fmt.Sprintf("%d/%d", b.cursor.Pos()+1, len(b.filtered))
	sb.WriteString(theme.Hint.Render("  " + counter))
	if b.speechErr != "" {
		sb.WriteString(theme.Hint.Render("  speech: " + b.speechErr))
	}
	return sb.String()
}

func (b *BrowseScreen) renderRow(i, width int) string {
	w := b.filtered[i]
	badge := catalog.BadgeFor(w.CategorySlug)

	fav := "  "
	if b.session.Progress.IsFavorite(w.ID) {
		fav = theme.Favorite.Render("♥ ")
	}

	line := fmt.Sprintf("%s %s  %s — %s", badge.Glyph, w.Hanzi, w.Pinyin, w.Meaning)
	line = truncate(line, width-8)

	if i == b.cursor.Pos() {
		return "  " + fav + theme.Selected.Render("▸ "+line)
	}
	return "  " + fav + theme.Unselected.Render("  "+line)
}

func truncate(s string, limit int) string {
	if limit <= 1 {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}

package detail

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
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/speech"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/layout"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/theme"
)

// sentencesMsg carries the word's example sentences, loaded on entry.
type sentencesMsg struct {
	Sentences []catalog.Sentence
	Err       error
}

// spokeMsg reports the outcome of a pronunciation attempt.
type spokeMsg struct {
	Err error
}

// DetailScreen shows one word in full: pinyin, meaning, background,
// origin, and every example sentence.
type DetailScreen struct {
	session *catalog.Session
	speaker speech.Speaker
	word    catalog.Word

	sentences []catalog.Sentence
	loaded    bool
	errMsg    string
	statusMsg string
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a detail screen for one word.
func New(session *catalog.Session, speaker speech.Speaker, word catalog.Word) *DetailScreen {
	return &DetailScreen{
		session: session,
		speaker: speaker,
		word:    word,
	}
}

func (d *DetailScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sents, err := d.session.SentencesForWord(context.Background(), d.word.ID)
		return sentencesMsg{Sentences: sents, Err: err}
	}
}

func (d *DetailScreen) Title() string {
	return d.word.Hanzi
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "f", Description: "Favorite"},
	}
	if d.speaker.Available() {
		hints = append(hints, layout.KeyHint{Key: "p", Description: "Speak"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sentencesMsg:
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
		} else {
			d.sentences = msg.Sentences
		}
		d.loaded = true
		return d, nil

	case spokeMsg:
		if msg.Err != nil {
			d.statusMsg = "speech: " + msg.Err.Error()
		}
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "f":
			if err := d.session.Progress.ToggleFavorite(d.word.ID); err != nil {
				d.statusMsg = err.Error()
			}
		case "p":
			if d.speaker.Available() {
				return d, d.speakCmd(d.word.Hanzi)
			}
		case "esc", "q":
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return d, nil
}

func (d *DetailScreen) speakCmd(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return spokeMsg{Err: d.speaker.Speak(ctx, text)}
	}
}

func (d *DetailScreen) View(width, height int) string {
	w := d.word
	badge := catalog.BadgeFor(w.CategorySlug)

	var sb strings.Builder

	fav := ""
	if d.session.Progress.IsFavorite(w.ID) {
		fav = "  " + theme.Favorite.Render("♥")
	}
	sb.WriteString("\n  " + theme.Hanzi.Render(w.Hanzi) + "  " + theme.Pinyin.Render(w.Pinyin) + fav + "\n")

	catLine := fmt.Sprintf("%s %s", badge.Glyph, w.CategoryName)
	if w.OriginYear > 0 {
		origin := fmt.Sprintf("%d", w.OriginYear)
		if w.OriginMonth > 0 {
			origin = fmt.Sprintf("%d-%02d", w.OriginYear, w.OriginMonth)
		}
		catLine += theme.Hint.Render("  since " + origin)
	}
	if w.Popularity > 0 {
		catLine += theme.Hint.Render(fmt.Sprintf("  ▲ %d", w.Popularity))
	}
	sb.WriteString("  " + lipgloss.NewStyle().Foreground(theme.BadgeColor(badge.Color)).Render(catLine) + "\n\n")

	sb.WriteString("  " + theme.Body.Render(w.Meaning) + "\n")
	if w.Background != "" {
		sb.WriteString("\n" + theme.Hint.Width(width-4).PaddingLeft(2).Render(w.Background) + "\n")
	}

	sb.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Examples") + "\n")
	switch {
	case !d.loaded:
		sb.WriteString(theme.Hint.Render("  loading...") + "\n")
	case d.errMsg != "":
		sb.WriteString(theme.Hint.Render("  could not load examples: "+d.errMsg) + "\n")
	case len(d.sentences) == 0:
		sb.WriteString(theme.Hint.Render("  no examples yet") + "\n")
	default:
		for _, s := range d.sentences {
			mark := "  "
			if d.session.Progress.IsDone(s.ID) {
				mark = theme.Done.Render("✓ ")
			}
			sb.WriteString("  " + mark + theme.Body.Render(s.Zh) + "\n")
			sb.WriteString("     " + theme.Hint.Render(s.En) + "\n")
			if s.Note != "" {
				sb.WriteString("     " + theme.Hint.Render("note: "+s.Note) + "\n")
			}
		}
	}

	if d.statusMsg != "" {
		sb.WriteString("\n" + theme.Hint.Render("  "+d.statusMsg))
	}
	return sb.String()
}

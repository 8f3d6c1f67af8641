package study

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/catalog"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/router"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/screen"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/speech"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/store"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/components"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/layout"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/theme"
)

// examplesMsg carries the revealed word's example sentences.
type examplesMsg struct {
	WordID    int
	Sentences []catalog.Sentence
	Err       error
}

// spokeMsg reports the outcome of a pronunciation attempt.
type spokeMsg struct {
	Err error
}

// StudyScreen is the flashcard flow: hanzi and pinyin up front, the
// meaning, background, and an example behind a reveal.
type StudyScreen struct {
	session      *catalog.Session
	speaker      speech.Speaker
	practiceRepo store.PracticeRepo

	tabs     components.Tabs
	words    []catalog.Word
	cursor   catalog.Cursor
	revealed bool

	// examples are fetched lazily per word on first reveal.
	examples map[int][]catalog.Sentence

	sessionID string
	start     time.Time
	seen      map[int]struct{}
	revealSum int
	statusMsg string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a new StudyScreen over the full word list.
func New(session *catalog.Session, speaker speech.Speaker, practiceRepo store.PracticeRepo) *StudyScreen {
	s := &StudyScreen{
		session:      session,
		speaker:      speaker,
		practiceRepo: practiceRepo,
		tabs: components.NewTabs(session.CategorySlugs(), func(slug string) string {
			if slug == catalog.CategoryAll {
				return "All"
			}
			return session.CategoryName(slug)
		}),
		examples:  make(map[int][]catalog.Sentence),
		sessionID: uuid.New().String(),
		start:     time.Now(),
		seen:      make(map[int]struct{}),
	}
	s.refilter()
	return s
}

func (s *StudyScreen) Init() tea.Cmd {
	s.markSeen()
	return nil
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Space", Description: "Reveal"},
		{Key: "n/b", Description: "Next/Back"},
		{Key: "Tab", Description: "Category"},
		{Key: "f", Description: "Favorite"},
	}
	if s.speaker.Available() {
		hints = append(hints, layout.KeyHint{Key: "p", Description: "Speak"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "End"})
}

func (s *StudyScreen) refilter() {
	crit := catalog.Criteria{Category: s.tabs.Slug()}
	s.words = catalog.FilterWords(s.session.Words, crit)
	s.cursor = s.cursor.Resize(len(s.words))
	s.revealed = false
}

func (s *StudyScreen) markSeen() {
	if w, ok := catalog.WordAt(s.words, s.cursor); ok {
		s.seen[w.ID] = struct{}{}
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case examplesMsg:
		if msg.Err == nil {
			s.examples[msg.WordID] = msg.Sentences
		}
		return s, nil

	case spokeMsg:
		if msg.Err != nil {
			s.statusMsg = "speech: " + msg.Err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "space", " ":
		return s.reveal()
	case "n", "right":
		s.cursor = s.cursor.Next()
		s.revealed = false
		s.markSeen()
	case "b", "left":
		s.cursor = s.cursor.Prev()
		s.revealed = false
		s.markSeen()
	case "tab":
		s.tabs.Next()
		s.refilter()
		s.markSeen()
	case "f":
		if w, ok := catalog.WordAt(s.words, s.cursor); ok {
			if err := s.session.Progress.ToggleFavorite(w.ID); err != nil {
				s.statusMsg = err.Error()
			}
		}
	case "p":
		if w, ok := catalog.WordAt(s.words, s.cursor); ok && s.speaker.Available() {
			return s, s.speakCmd(w.Hanzi)
		}
	case "esc", "q":
		return s.end()
	}
	return s, nil
}

func (s *StudyScreen) reveal() (screen.Screen, tea.Cmd) {
	w, ok := catalog.WordAt(s.words, s.cursor)
	if !ok || s.revealed {
		return s, nil
	}
	s.revealed = true
	s.revealSum++

	if _, cached := s.examples[w.ID]; cached {
		return s, nil
	}
	return s, func() tea.Msg {
		sents, err := s.session.SentencesForWord(context.Background(), w.ID)
		return examplesMsg{WordID: w.ID, Sentences: sents, Err: err}
	}
}

// end records the practice event and leaves the screen. A failed write
// is reported but never blocks the exit.
func (s *StudyScreen) end() (screen.Screen, tea.Cmd) {
	if s.practiceRepo != nil && len(s.seen) > 0 {
		_ = s.practiceRepo.Append(context.Background(), store.PracticeEventData{
			SessionID:    s.sessionID,
			Mode:         "study",
			ItemsSeen:    len(s.seen),
			Completed:    s.revealSum,
			DurationSecs: int(time.Since(s.start).Seconds()),
		})
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *StudyScreen) speakCmd(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return spokeMsg{Err: s.speaker.Speak(ctx, text)}
	}
}

func (s *StudyScreen) View(width, height int) string {
	var sb strings.Builder
	sb.WriteString("  " + s.tabs.View() + "\n\n")

	w, ok := catalog.WordAt(s.words, s.cursor)
	if !ok {
		sb.WriteString(theme.Hint.Render("  No words in this category."))
		return sb.String()
	}

	var card strings.Builder
	fav := ""
	if s.session.Progress.IsFavorite(w.ID) {
		fav = "  " + theme.Favorite.Render("♥")
	}
	card.WriteString(theme.Hanzi.Render(w.Hanzi) + fav + "\n")
	card.WriteString(theme.Pinyin.Render(w.Pinyin) + "\n")

	if s.revealed {
		card.WriteString("\n" + theme.Body.Render(w.Meaning) + "\n")
		if w.Background != "" {
			card.WriteString("\n" + theme.Hint.Render(w.Background) + "\n")
		}
		if sents := s.examples[w.ID]; len(sents) > 0 {
			card.WriteString("\n" + theme.Body.Render(sents[0].Zh) + "\n")
			card.WriteString(theme.Hint.Render(sents[0].En) + "\n")
		}
	} else {
		card.WriteString("\n" + theme.Hint.Render("[ space to reveal ]") + "\n")
	}

	cardBox := theme.Card.Width(min(width-8, 60)).Render(card.String())
	sb.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(cardBox))
	sb.WriteString("\n\n")

	counter := fmt.Sprintf("Card %d/%d", s.cursor.Pos()+1, len(s.words))
	sb.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Render(counter))

	if s.statusMsg != "" {
		sb.WriteString("\n" + theme.Hint.Render("  "+s.statusMsg))
	}
	return sb.String()
}

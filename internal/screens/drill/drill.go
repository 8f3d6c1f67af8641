package drill

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/catalog"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/router"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/screen"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/speech"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/store"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/components"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/ui/layout"
)

// Direction selects which side of a card is the prompt.
type Direction int

const (
	ZhToEn Direction = iota
	EnToZh
)

// DrillScreen is the sentence translation drill. The learner types a
// translation, reveals the reference, and self-judges: retry the card
// or advance and mark it done.
type DrillScreen struct {
	session      *catalog.Session
	speaker      speech.Speaker
	practiceRepo store.PracticeRepo

	deck      []catalog.DrillCard
	cards     []catalog.DrillCard
	loaded    bool
	errMsg    string
	tabs      components.Tabs
	search    components.TextInput
	searching bool
	crit      catalog.Criteria
	cursor    catalog.Cursor
	direction Direction
	input     components.TextInput
	revealed  bool

	sessionID string
	start     time.Time
	seen      map[int]struct{}
	completed int
	statusMsg string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a new DrillScreen. The deck is fetched on Init through
// the session, which loads it at most once per app run.
func New(session *catalog.Session, speaker speech.Speaker, practiceRepo store.PracticeRepo) *DrillScreen {
	return &DrillScreen{
		session:      session,
		speaker:      speaker,
		practiceRepo: practiceRepo,
		tabs: components.NewTabs(session.CategorySlugs(), func(slug string) string {
			if slug == catalog.CategoryAll {
				return "All"
			}
			return session.CategoryName(slug)
		}),
		search:    components.NewTextInput("Search sentences...", 40),
		crit:      catalog.AllCriteria(),
		input:     components.NewTextInput("Type your translation...", 120),
		sessionID: uuid.New().String(),
		start:     time.Now(),
		seen:      make(map[int]struct{}),
	}
}

func (d *DrillScreen) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			cards, err := d.session.EnsureDrillDeck(context.Background())
			return deckReadyMsg{Cards: cards, Err: err}
		},
		d.input.Init(),
	)
}

func (d *DrillScreen) Title() string {
	return "Sentence Practice"
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	if !d.loaded || d.errMsg != "" {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if d.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	if d.revealed {
		return []layout.KeyHint{
			{Key: "Enter/n", Description: "Next"},
			{Key: "r", Description: "Retry"},
			{Key: "Tab", Description: "Direction"},
			{Key: "Esc", Description: "End"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Reveal"},
		{Key: "Tab", Description: "Direction"},
		{Key: "Shift+Tab", Description: "Category"},
		{Key: "Ctrl+F", Description: "Search"},
	}
	if d.speaker.Available() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+P", Description: "Speak"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "End"})
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case deckReadyMsg:
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			d.loaded = true
			return d, nil
		}
		d.deck = msg.Cards
		d.loaded = true
		d.refilter()
		return d, nil

	case spokeMsg:
		if msg.Err != nil {
			d.statusMsg = "speech: " + msg.Err.Error()
		}
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	if d.loaded && d.errMsg == "" {
		var cmd tea.Cmd
		if d.searching {
			d.search, cmd = d.search.Update(msg)
		} else if !d.revealed {
			d.input, cmd = d.input.Update(msg)
		}
		return d, cmd
	}
	return d, nil
}

// refilter recomputes the drillable cards and restarts at the top of
// the filtered deck. The attempt in progress is discarded.
func (d *DrillScreen) refilter() {
	d.crit.Category = d.tabs.Slug()
	d.crit.Query = d.search.Value()
	d.cards = catalog.FilterCards(d.deck, d.crit)
	d.cursor = catalog.NewCursor(len(d.cards))
	d.revealed = false
	d.input.Reset()
	d.markSeen()
}

func (d *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if d.errMsg != "" {
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if !d.loaded {
		if key == "esc" {
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return d, nil
	}

	if d.searching {
		switch key {
		case "enter":
			d.searching = false
			return d, nil
		case "esc":
			d.searching = false
			d.search.Reset()
			d.refilter()
			return d, nil
		}
		var cmd tea.Cmd
		d.search, cmd = d.search.Update(msg)
		d.refilter()
		return d, cmd
	}

	switch key {
	case "esc":
		return d.end()
	case "tab":
		d.toggleDirection()
		return d, nil
	case "shift+tab":
		d.tabs.Next()
		d.refilter()
		return d, nil
	case "ctrl+f":
		d.searching = true
		return d, d.search.Init()
	case "ctrl+p":
		if card, ok := catalog.CardAt(d.cards, d.cursor); ok && d.speaker.Available() {
			return d, d.speakCmd(card.Zh)
		}
		return d, nil
	}

	if d.cursor.Empty() {
		return d, nil
	}

	if d.revealed {
		switch key {
		case "enter", "n":
			return d.advance()
		case "r":
			d.revealed = false
			d.input.Reset()
			return d, d.input.Init()
		}
		return d, nil
	}

	if key == "enter" {
		// Reveal only after an attempt was typed.
		if d.input.Value() != "" {
			d.revealed = true
			d.input.Submit()
		}
		return d, nil
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// toggleDirection flips the prompt side. The attempt in progress is
// discarded; the position is kept.
func (d *DrillScreen) toggleDirection() {
	if d.direction == ZhToEn {
		d.direction = EnToZh
	} else {
		d.direction = ZhToEn
	}
	d.revealed = false
	d.input.Reset()
}

// advance marks the current card done and steps to the next, wrapping
// at the end of the deck.
func (d *DrillScreen) advance() (screen.Screen, tea.Cmd) {
	if card, ok := catalog.CardAt(d.cards, d.cursor); ok {
		if err := d.session.Progress.MarkDone(card.ID); err != nil {
			d.statusMsg = err.Error()
		}
		d.completed++
	}
	d.cursor = d.cursor.Next()
	d.revealed = false
	d.input.Reset()
	d.markSeen()
	return d, d.input.Init()
}

func (d *DrillScreen) markSeen() {
	if card, ok := catalog.CardAt(d.cards, d.cursor); ok {
		d.seen[card.ID] = struct{}{}
	}
}

// end records the practice event and leaves the screen.
func (d *DrillScreen) end() (screen.Screen, tea.Cmd) {
	if d.practiceRepo != nil && len(d.seen) > 0 {
		_ = d.practiceRepo.Append(context.Background(), store.PracticeEventData{
			SessionID:    d.sessionID,
			Mode:         "drill",
			ItemsSeen:    len(d.seen),
			Completed:    d.completed,
			DurationSecs: int(time.Since(d.start).Seconds()),
		})
	}
	return d, func() tea.Msg { return router.PopScreenMsg{} }
}

func (d *DrillScreen) speakCmd(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return spokeMsg{Err: d.speaker.Speak(ctx, text)}
	}
}

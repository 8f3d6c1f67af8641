package drill

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/catalog"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/progress"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/router"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/store"
)

// fakeRepo implements catalog.Repo for testing.
type fakeRepo struct {
	cats     []catalog.Category
	cards    []catalog.DrillCard
	cardsErr error
}

func (f *fakeRepo) Categories(context.Context) ([]catalog.Category, error) { return f.cats, nil }
func (f *fakeRepo) Words(context.Context) ([]catalog.Word, error)          { return nil, nil }
func (f *fakeRepo) SentencesForWord(context.Context, int) ([]catalog.Sentence, error) {
	return nil, nil
}
func (f *fakeRepo) DrillCards(context.Context) ([]catalog.DrillCard, error) {
	return f.cards, f.cardsErr
}

// memKV implements progress.KV in memory.
type memKV struct {
	m map[string][]byte
}

func (k *memKV) Get(key string) ([]byte, bool, error) {
	v, ok := k.m[key]
	return v, ok, nil
}

func (k *memKV) Set(key string, val []byte) error {
	k.m[key] = val
	return nil
}

// fakeSpeaker implements speech.Speaker for testing.
type fakeSpeaker struct {
	available bool
	spoken    []string
}

func (f *fakeSpeaker) Available() bool { return f.available }
func (f *fakeSpeaker) Speak(_ context.Context, text string) error {
	f.spoken = append(f.spoken, text)
	return nil
}

// fakePracticeRepo implements store.PracticeRepo for testing.
type fakePracticeRepo struct {
	events []store.PracticeEventData
}

func (f *fakePracticeRepo) Append(_ context.Context, data store.PracticeEventData) error {
	f.events = append(f.events, data)
	return nil
}
func (f *fakePracticeRepo) Recent(context.Context, int) ([]store.PracticeRecord, error) {
	return nil, nil
}
func (f *fakePracticeRepo) DeleteAll(context.Context) (int, error) { return 0, nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testCards() []catalog.DrillCard {
	return []catalog.DrillCard{
		{
			Sentence:  catalog.Sentence{ID: 10, WordID: 1, Zh: "他又氪金了。", En: "He spent money again.", DisplayOrder: 1},
			WordHanzi: "氪金", WordMeaning: "pay to win", CategorySlug: "gaming",
		},
		{
			Sentence:  catalog.Sentence{ID: 11, WordID: 2, Zh: "公司太内卷了。", En: "This company is so competitive.", DisplayOrder: 1},
			WordHanzi: "内卷", WordMeaning: "involution", CategorySlug: "work",
		},
	}
}

func testDrillScreen(t *testing.T) (*DrillScreen, *catalog.Session, *fakePracticeRepo) {
	t.Helper()
	repo := &fakeRepo{
		cats: []catalog.Category{
			{ID: 1, Name: "网络游戏", Slug: "gaming"},
			{ID: 2, Name: "职场", Slug: "work"},
		},
		cards: testCards(),
	}
	sess := catalog.NewSession(repo, progress.Load(&memKV{m: map[string][]byte{}}))
	if err := sess.Load(context.Background()); err != nil {
		t.Fatalf("load session: %v", err)
	}
	pr := &fakePracticeRepo{}
	d := New(sess, &fakeSpeaker{}, pr)

	cmd := d.Init()
	if cmd == nil {
		t.Fatal("expected Init command")
	}
	// Apply the batch results (deck load + input focus).
	applyBatch(t, d, cmd)
	if !d.loaded {
		t.Fatal("expected deck loaded after Init")
	}
	return d, sess, pr
}

// applyBatch executes a command and feeds any deckReadyMsg back in.
func applyBatch(t *testing.T, d *DrillScreen, cmd tea.Cmd) {
	t.Helper()
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			d.Update(c())
		}
		return
	}
	d.Update(msg)
}

func typeText(d *DrillScreen, text string) {
	for _, r := range text {
		d.Update(keyPress(r))
	}
}

func TestRevealRequiresAttempt(t *testing.T) {
	d, _, _ := testDrillScreen(t)

	d.Update(specialKey(tea.KeyEnter))
	if d.revealed {
		t.Fatal("expected no reveal on empty input")
	}

	typeText(d, "he paid again")
	d.Update(specialKey(tea.KeyEnter))
	if !d.revealed {
		t.Error("expected reveal after typed attempt")
	}
}

func TestRetryClearsAttempt(t *testing.T) {
	d, _, _ := testDrillScreen(t)

	typeText(d, "guess")
	d.Update(specialKey(tea.KeyEnter))
	d.Update(keyPress('r'))

	if d.revealed {
		t.Error("expected hidden after retry")
	}
	if d.input.Value() != "" {
		t.Errorf("input = %q after retry, want empty", d.input.Value())
	}
	if d.cursor.Pos() != 0 {
		t.Errorf("cursor = %d after retry, want 0", d.cursor.Pos())
	}
}

func TestAdvanceMarksDoneAndWraps(t *testing.T) {
	d, sess, _ := testDrillScreen(t)

	typeText(d, "attempt one")
	d.Update(specialKey(tea.KeyEnter))
	d.Update(specialKey(tea.KeyEnter)) // advance

	if !sess.Progress.IsDone(10) {
		t.Error("expected sentence 10 marked done")
	}
	if d.cursor.Pos() != 1 {
		t.Errorf("cursor = %d, want 1", d.cursor.Pos())
	}
	if d.revealed {
		t.Error("expected next card hidden")
	}

	typeText(d, "attempt two")
	d.Update(specialKey(tea.KeyEnter))
	d.Update(keyPress('n')) // advance wraps

	if !sess.Progress.IsDone(11) {
		t.Error("expected sentence 11 marked done")
	}
	if d.cursor.Pos() != 0 {
		t.Errorf("cursor = %d after wrap, want 0", d.cursor.Pos())
	}
}

func TestDirectionToggleKeepsPosition(t *testing.T) {
	d, _, _ := testDrillScreen(t)

	typeText(d, "x")
	d.Update(specialKey(tea.KeyEnter))
	d.Update(specialKey(tea.KeyEnter)) // move to card 2

	typeText(d, "half an attempt")
	d.Update(specialKey(tea.KeyTab))

	if d.direction != EnToZh {
		t.Errorf("direction = %v, want EnToZh", d.direction)
	}
	if d.cursor.Pos() != 1 {
		t.Errorf("cursor = %d after toggle, want 1", d.cursor.Pos())
	}
	if d.revealed {
		t.Error("expected hidden after toggle")
	}
	if d.input.Value() != "" {
		t.Errorf("input = %q after toggle, want empty", d.input.Value())
	}
}

func TestEndRecordsPracticeEvent(t *testing.T) {
	d, _, pr := testDrillScreen(t)

	typeText(d, "x")
	d.Update(specialKey(tea.KeyEnter))
	d.Update(specialKey(tea.KeyEnter))
	_, cmd := d.Update(specialKey(tea.KeyEscape))

	if cmd == nil {
		t.Fatal("expected a command from esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg from esc")
	}

	if len(pr.events) != 1 {
		t.Fatalf("events = %d, want 1", len(pr.events))
	}
	ev := pr.events[0]
	if ev.Mode != "drill" {
		t.Errorf("mode = %q, want drill", ev.Mode)
	}
	if ev.ItemsSeen != 2 {
		t.Errorf("items seen = %d, want 2", ev.ItemsSeen)
	}
	if ev.Completed != 1 {
		t.Errorf("completed = %d, want 1", ev.Completed)
	}
}

func TestCategoryFilterRestartsAtTop(t *testing.T) {
	d, _, _ := testDrillScreen(t)

	typeText(d, "x")
	d.Update(specialKey(tea.KeyEnter))
	d.Update(specialKey(tea.KeyEnter)) // move to card 2
	if d.cursor.Pos() != 1 {
		t.Fatalf("cursor = %d before filter, want 1", d.cursor.Pos())
	}

	d.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}) // -> gaming
	if len(d.cards) != 1 || d.cards[0].CategorySlug != "gaming" {
		t.Fatalf("cards = %d, want only the gaming card", len(d.cards))
	}
	if d.cursor.Pos() != 0 {
		t.Errorf("cursor = %d after filter, want 0", d.cursor.Pos())
	}
	if d.revealed {
		t.Error("expected hidden after filter change")
	}
	if d.input.Value() != "" {
		t.Errorf("input = %q after filter change, want empty", d.input.Value())
	}
}

func TestSearchNarrowsDeck(t *testing.T) {
	d, _, _ := testDrillScreen(t)

	d.Update(ctrlKey('f'))
	if !d.searching {
		t.Fatal("expected search mode after ctrl+f")
	}
	typeText(d, "内卷")
	d.Update(specialKey(tea.KeyEnter)) // apply
	if d.searching {
		t.Error("expected search mode off after enter")
	}
	if len(d.cards) != 1 || d.cards[0].WordHanzi != "内卷" {
		t.Fatalf("cards = %d, want only the 内卷 card", len(d.cards))
	}
	if d.cursor.Pos() != 0 {
		t.Errorf("cursor = %d after search, want 0", d.cursor.Pos())
	}

	d.Update(ctrlKey('f'))
	d.Update(specialKey(tea.KeyEscape)) // clear
	if len(d.cards) != 2 {
		t.Errorf("cards = %d after clear, want 2", len(d.cards))
	}
}

func TestSearchWithNoMatchesShowsEmptyState(t *testing.T) {
	d, _, _ := testDrillScreen(t)

	d.Update(ctrlKey('f'))
	typeText(d, "zzz")
	d.Update(specialKey(tea.KeyEnter))

	if len(d.cards) != 0 {
		t.Fatalf("cards = %d, want 0", len(d.cards))
	}
	view := d.View(80, 24)
	if !strings.Contains(view, "No sentences match") {
		t.Error("expected empty-filter message in view")
	}
}

func TestRevealDoesNotGradeAttempt(t *testing.T) {
	d, _, _ := testDrillScreen(t)

	typeText(d, "wrong on purpose")
	d.Update(specialKey(tea.KeyEnter))

	view := d.View(80, 24)
	if strings.Contains(view, "✓") || strings.Contains(view, "✗") {
		t.Error("reveal must not render a correctness marker")
	}
	if !strings.Contains(view, "He spent money again.") {
		t.Error("expected reference translation after reveal")
	}
}

func TestDeckLoadFailureShowsError(t *testing.T) {
	repo := &fakeRepo{cardsErr: errors.New("db gone")}
	sess := catalog.NewSession(repo, progress.Load(&memKV{m: map[string][]byte{}}))
	d := New(sess, &fakeSpeaker{}, &fakePracticeRepo{})

	applyBatch(t, d, d.Init())
	if d.errMsg == "" {
		t.Fatal("expected an error message")
	}

	_, cmd := d.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected a command from any key in error state")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg from error state")
	}
}

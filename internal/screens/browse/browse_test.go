package browse

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/catalog"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/progress"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/router"
)

// fakeRepo implements catalog.Repo for testing.
type fakeRepo struct {
	cats  []catalog.Category
	words []catalog.Word
}

func (f *fakeRepo) Categories(context.Context) ([]catalog.Category, error) { return f.cats, nil }
func (f *fakeRepo) Words(context.Context) ([]catalog.Word, error)         { return f.words, nil }
func (f *fakeRepo) SentencesForWord(context.Context, int) ([]catalog.Sentence, error) {
	return nil, nil
}
func (f *fakeRepo) DrillCards(context.Context) ([]catalog.DrillCard, error) { return nil, nil }

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

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSession(t *testing.T) *catalog.Session {
	t.Helper()
	repo := &fakeRepo{
		cats: []catalog.Category{
			{ID: 1, Name: "网络游戏", Slug: "gaming"},
			{ID: 2, Name: "职场", Slug: "work"},
		},
		words: []catalog.Word{
			{ID: 1, Hanzi: "氪金", Pinyin: "kè jīn", Meaning: "pay to win", CategorySlug: "gaming"},
			{ID: 2, Hanzi: "内卷", Pinyin: "nèi juǎn", Meaning: "involution", CategorySlug: "work"},
			{ID: 3, Hanzi: "摸鱼", Pinyin: "mō yú", Meaning: "slack off", CategorySlug: "work"},
		},
	}
	sess := catalog.NewSession(repo, progress.Load(&memKV{m: map[string][]byte{}}))
	if err := sess.Load(context.Background()); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return sess
}

func TestInitialListShowsAllWords(t *testing.T) {
	b := New(testSession(t), &fakeSpeaker{})

	if len(b.filtered) != 3 {
		t.Errorf("filtered = %d words, want 3", len(b.filtered))
	}
	if b.cursor.Pos() != 0 {
		t.Errorf("cursor = %d, want 0", b.cursor.Pos())
	}
}

func TestCategoryTabFiltersAndResetsCursor(t *testing.T) {
	b := New(testSession(t), &fakeSpeaker{})

	// Move the cursor off 0, then switch category.
	b.Update(specialKey(tea.KeyDown))
	b.Update(specialKey(tea.KeyRight)) // all -> gaming

	if len(b.filtered) != 1 {
		t.Fatalf("filtered = %d words, want 1", len(b.filtered))
	}
	if b.filtered[0].Hanzi != "氪金" {
		t.Errorf("filtered[0] = %q, want 氪金", b.filtered[0].Hanzi)
	}
	if b.cursor.Pos() != 0 {
		t.Errorf("cursor = %d after refilter, want 0", b.cursor.Pos())
	}
}

func TestSearchNarrowsList(t *testing.T) {
	b := New(testSession(t), &fakeSpeaker{})

	b.Update(keyPress('/'))
	if !b.searching {
		t.Fatal("expected search mode after /")
	}
	for _, r := range "slack" {
		b.Update(keyPress(r))
	}

	if len(b.filtered) != 1 {
		t.Fatalf("filtered = %d words, want 1", len(b.filtered))
	}
	if b.filtered[0].Hanzi != "摸鱼" {
		t.Errorf("filtered[0] = %q, want 摸鱼", b.filtered[0].Hanzi)
	}
}

func TestSearchEscClears(t *testing.T) {
	b := New(testSession(t), &fakeSpeaker{})

	b.Update(keyPress('/'))
	b.Update(keyPress('x'))
	if len(b.filtered) != 0 {
		t.Fatalf("filtered = %d words, want 0", len(b.filtered))
	}

	b.Update(specialKey(tea.KeyEscape))
	if b.searching {
		t.Error("expected search mode off after esc")
	}
	if len(b.filtered) != 3 {
		t.Errorf("filtered = %d words after clear, want 3", len(b.filtered))
	}
}

func TestFavoriteToggle(t *testing.T) {
	sess := testSession(t)
	b := New(sess, &fakeSpeaker{})

	b.Update(keyPress('f'))
	if !sess.Progress.IsFavorite(1) {
		t.Error("expected word 1 favorited")
	}
	b.Update(keyPress('f'))
	if sess.Progress.IsFavorite(1) {
		t.Error("expected word 1 un-favorited after second toggle")
	}
}

func TestEnterPushesDetail(t *testing.T) {
	b := New(testSession(t), &fakeSpeaker{})

	_, cmd := b.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg from enter")
	}
}

func TestEscPops(t *testing.T) {
	b := New(testSession(t), &fakeSpeaker{})

	_, cmd := b.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command from esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg from esc")
	}
}

func TestSpeakUsesCurrentWord(t *testing.T) {
	sp := &fakeSpeaker{available: true}
	b := New(testSession(t), sp)

	_, cmd := b.Update(keyPress('p'))
	if cmd == nil {
		t.Fatal("expected a speak command")
	}
	cmd()
	if len(sp.spoken) != 1 || sp.spoken[0] != "氪金" {
		t.Errorf("spoken = %v, want [氪金]", sp.spoken)
	}
}

func TestSpeakUnavailableIsNoop(t *testing.T) {
	b := New(testSession(t), &fakeSpeaker{available: false})

	_, cmd := b.Update(keyPress('p'))
	if cmd != nil {
		t.Error("expected no command when speaker unavailable")
	}
}

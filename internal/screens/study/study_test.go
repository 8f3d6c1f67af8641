package study

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/catalog"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/progress"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/router"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/store"
)

// fakeRepo implements catalog.Repo for testing.
type fakeRepo struct {
	cats  []catalog.Category
	words []catalog.Word
	sents map[int][]catalog.Sentence
}

func (f *fakeRepo) Categories(context.Context) ([]catalog.Category, error) { return f.cats, nil }
func (f *fakeRepo) Words(context.Context) ([]catalog.Word, error)         { return f.words, nil }
func (f *fakeRepo) SentencesForWord(_ context.Context, wordID int) ([]catalog.Sentence, error) {
	return f.sents[wordID], nil
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

func testStudyScreen(t *testing.T) (*StudyScreen, *fakePracticeRepo) {
	t.Helper()
	repo := &fakeRepo{
		cats: []catalog.Category{
			{ID: 1, Name: "网络游戏", Slug: "gaming"},
			{ID: 2, Name: "职场", Slug: "work"},
		},
		words: []catalog.Word{
			{ID: 1, Hanzi: "氪金", Pinyin: "kè jīn", Meaning: "pay to win", CategorySlug: "gaming"},
			{ID: 2, Hanzi: "内卷", Pinyin: "nèi juǎn", Meaning: "involution", CategorySlug: "work"},
		},
		sents: map[int][]catalog.Sentence{
			1: {{ID: 10, WordID: 1, Zh: "他又氪金了。", En: "He spent money again.", DisplayOrder: 1}},
		},
	}
	sess := catalog.NewSession(repo, progress.Load(&memKV{m: map[string][]byte{}}))
	if err := sess.Load(context.Background()); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	pr := &fakePracticeRepo{}
	s := New(sess, &fakeSpeaker{}, pr)
	s.Init()
	return s, pr
}

func TestRevealLoadsExamples(t *testing.T) {
	s, _ := testStudyScreen(t)

	if s.revealed {
		t.Fatal("card should start hidden")
	}

	_, cmd := s.Update(specialKey(tea.KeySpace))
	if !s.revealed {
		t.Fatal("expected card revealed after space")
	}
	if cmd == nil {
		t.Fatal("expected example-loading command on first reveal")
	}

	msg := cmd()
	s.Update(msg)
	if len(s.examples[1]) != 1 {
		t.Errorf("examples[1] = %d sentences, want 1", len(s.examples[1]))
	}

	// Second reveal of the same word hits the cache.
	s.Update(keyPress('n'))
	s.Update(keyPress('b'))
	_, cmd = s.Update(specialKey(tea.KeySpace))
	if cmd != nil {
		t.Error("expected no reload for a cached word")
	}
}

func TestStepHidesReveal(t *testing.T) {
	s, _ := testStudyScreen(t)

	s.Update(specialKey(tea.KeySpace))
	s.Update(keyPress('n'))

	if s.revealed {
		t.Error("expected next card hidden")
	}
	if s.cursor.Pos() != 1 {
		t.Errorf("cursor = %d, want 1", s.cursor.Pos())
	}

	s.Update(keyPress('b'))
	if s.cursor.Pos() != 0 {
		t.Errorf("cursor = %d after back, want 0", s.cursor.Pos())
	}
}

func TestStepWrapsAround(t *testing.T) {
	s, _ := testStudyScreen(t)

	s.Update(keyPress('n'))
	s.Update(keyPress('n'))
	if s.cursor.Pos() != 0 {
		t.Errorf("cursor = %d after wrap, want 0", s.cursor.Pos())
	}
}

func TestCategoryCycleResetsDeck(t *testing.T) {
	s, _ := testStudyScreen(t)

	s.Update(specialKey(tea.KeyTab)) // all -> gaming
	if len(s.words) != 1 {
		t.Fatalf("words = %d, want 1", len(s.words))
	}
	if s.words[0].Hanzi != "氪金" {
		t.Errorf("words[0] = %q, want 氪金", s.words[0].Hanzi)
	}
	if s.revealed {
		t.Error("expected reveal hidden after category switch")
	}
}

func TestEndRecordsPracticeEvent(t *testing.T) {
	s, pr := testStudyScreen(t)

	s.Update(specialKey(tea.KeySpace))
	s.Update(keyPress('n'))
	_, cmd := s.Update(specialKey(tea.KeyEscape))

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
	if ev.Mode != "study" {
		t.Errorf("mode = %q, want study", ev.Mode)
	}
	if ev.ItemsSeen != 2 {
		t.Errorf("items seen = %d, want 2", ev.ItemsSeen)
	}
	if ev.Completed != 1 {
		t.Errorf("completed = %d, want 1", ev.Completed)
	}
	if ev.SessionID == "" {
		t.Error("expected a session id")
	}
}

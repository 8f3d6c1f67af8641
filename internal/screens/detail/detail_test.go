package detail

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/catalog"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/progress"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/router"
)

// fakeRepo implements catalog.Repo for testing.
type fakeRepo struct {
	sents    map[int][]catalog.Sentence
	sentsErr error
}

func (f *fakeRepo) Categories(context.Context) ([]catalog.Category, error) { return nil, nil }
func (f *fakeRepo) Words(context.Context) ([]catalog.Word, error)          { return nil, nil }
func (f *fakeRepo) SentencesForWord(_ context.Context, wordID int) ([]catalog.Sentence, error) {
	return f.sents[wordID], f.sentsErr
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

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

var testWord = catalog.Word{
	ID: 1, Hanzi: "破防", Pinyin: "pò fáng", Meaning: "emotionally devastated",
	Background: "From gaming, breaking through defenses.", OriginYear: 2021,
	CategorySlug: "gaming", CategoryName: "网络游戏",
}

func testDetail(repo *fakeRepo) (*DetailScreen, *catalog.Session) {
	sess := catalog.NewSession(repo, progress.Load(&memKV{m: map[string][]byte{}}))
	return New(sess, &fakeSpeaker{}, testWord), sess
}

func TestInitLoadsSentences(t *testing.T) {
	repo := &fakeRepo{sents: map[int][]catalog.Sentence{
		1: {{ID: 10, WordID: 1, Zh: "我直接破防了。", En: "I was completely shattered."}},
	}}
	d, _ := testDetail(repo)

	cmd := d.Init()
	if cmd == nil {
		t.Fatal("expected Init command")
	}
	d.Update(cmd())

	if !d.loaded || len(d.sentences) != 1 {
		t.Fatalf("loaded=%v sentences=%d, want loaded with 1", d.loaded, len(d.sentences))
	}
	view := d.View(100, 30)
	if !strings.Contains(view, "我直接破防了。") {
		t.Error("expected sentence in view")
	}
}

func TestLoadErrorIsNonFatal(t *testing.T) {
	d, _ := testDetail(&fakeRepo{sentsErr: errors.New("db gone")})

	d.Update(d.Init()())
	if d.errMsg == "" {
		t.Error("expected load error recorded")
	}
	view := d.View(100, 30)
	if !strings.Contains(view, "破防") {
		t.Error("word itself must still render")
	}
}

func TestFavoriteToggleFromDetail(t *testing.T) {
	d, sess := testDetail(&fakeRepo{})

	d.Update(tea.KeyPressMsg{Code: 'f', Text: "f"})
	if !sess.Progress.IsFavorite(1) {
		t.Error("expected word favorited")
	}
}

func TestEscPops(t *testing.T) {
	d, _ := testDetail(&fakeRepo{})

	_, cmd := d.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command from esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg from esc")
	}
}

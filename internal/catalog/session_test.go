package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/progress"
)

// fakeRepo implements Repo and counts calls.
type fakeRepo struct {
	cards      []DrillCard
	cardsErr   error
	cardsCalls int
}

func (f *fakeRepo) Categories(_ context.Context) ([]Category, error) {
	return []Category{
		{ID: 1, Name: "网络游戏", Slug: "gaming"},
		{ID: 2, Name: "职场", Slug: "work"},
	}, nil
}

func (f *fakeRepo) Words(_ context.Context) ([]Word, error) {
	return []Word{{ID: 1, Hanzi: "氪金", CategorySlug: "gaming"}}, nil
}

func (f *fakeRepo) SentencesForWord(_ context.Context, _ int) ([]Sentence, error) {
	return nil, nil
}

func (f *fakeRepo) DrillCards(_ context.Context) ([]DrillCard, error) {
	f.cardsCalls++
	if f.cardsErr != nil {
		return nil, f.cardsErr
	}
	return f.cards, nil
}

type memKV map[string][]byte

func (m memKV) Get(key string) ([]byte, bool, error) { v, ok := m[key]; return v, ok, nil }
func (m memKV) Set(key string, value []byte) error   { m[key] = value; return nil }

func newTestSession(repo Repo) *Session {
	return NewSession(repo, progress.Load(memKV{}))
}

func TestSessionLoad(t *testing.T) {
	s := newTestSession(&fakeRepo{})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Categories) != 2 || len(s.Words) != 1 {
		t.Errorf("loaded %d categories, %d words", len(s.Categories), len(s.Words))
	}
}

func TestEnsureDrillDeckFetchesOncePerSession(t *testing.T) {
	repo := &fakeRepo{cards: []DrillCard{{Sentence: Sentence{ID: 1}}}}
	s := newTestSession(repo)

	for i := 0; i < 3; i++ {
		cards, err := s.EnsureDrillDeck(context.Background())
		if err != nil {
			t.Fatalf("ensure %d: %v", i, err)
		}
		if len(cards) != 1 {
			t.Fatalf("ensure %d: %d cards, want 1", i, len(cards))
		}
	}
	if repo.cardsCalls != 1 {
		t.Errorf("DrillCards called %d times, want 1", repo.cardsCalls)
	}
}

func TestEnsureDrillDeckRetriesAfterFailure(t *testing.T) {
	repo := &fakeRepo{cardsErr: errors.New("connection refused")}
	s := newTestSession(repo)

	if _, err := s.EnsureDrillDeck(context.Background()); err == nil {
		t.Fatal("expected load error")
	}

	// A failed load must not mark the deck as loaded.
	repo.cardsErr = nil
	repo.cards = []DrillCard{{Sentence: Sentence{ID: 7}}}
	cards, err := s.EnsureDrillDeck(context.Background())
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(cards) != 1 || cards[0].ID != 7 {
		t.Errorf("retry cards = %+v", cards)
	}
	if repo.cardsCalls != 2 {
		t.Errorf("DrillCards called %d times, want 2", repo.cardsCalls)
	}
}

func TestCategorySlugsIncludeSentinelFirst(t *testing.T) {
	s := newTestSession(&fakeRepo{})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	slugs := s.CategorySlugs()
	if len(slugs) != 3 || slugs[0] != CategoryAll {
		t.Errorf("slugs = %v, want [all gaming work]", slugs)
	}
}

func TestCategoryNameFallsBackToSlug(t *testing.T) {
	s := newTestSession(&fakeRepo{})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := s.CategoryName("gaming"); got != "网络游戏" {
		t.Errorf("CategoryName(gaming) = %q", got)
	}
	if got := s.CategoryName("unknown"); got != "unknown" {
		t.Errorf("CategoryName(unknown) = %q", got)
	}
}

package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/progress"
)

// Repo is the read surface the session loads from. The store package
// provides the ent-backed implementation.
type Repo interface {
	Categories(ctx context.Context) ([]Category, error)
	Words(ctx context.Context) ([]Word, error)
	SentencesForWord(ctx context.Context, wordID int) ([]Sentence, error)
	DrillCards(ctx context.Context) ([]DrillCard, error)
}

// Session is the application-scoped state object: the word and
// category lists loaded at startup, the lazily loaded drill deck, and
// the progress tracker. It lives from session start to process exit.
type Session struct {
	repo     Repo
	Progress *progress.Tracker

	Categories []Category
	Words      []Word

	mu          sync.Mutex
	cards       []DrillCard
	cardsLoaded bool
}

// NewSession creates a session over repo with the given tracker. Call
// Load before handing it to screens.
func NewSession(repo Repo, tracker *progress.Tracker) *Session {
	return &Session{repo: repo, Progress: tracker}
}

// Load fetches the categories and the full word list. Words are loaded
// once per session and never mutated afterwards.
func (s *Session) Load(ctx context.Context) error {
	cats, err := s.repo.Categories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	words, err := s.repo.Words(ctx)
	if err != nil {
		return fmt.Errorf("load words: %w", err)
	}
	s.Categories = cats
	s.Words = words
	return nil
}

// SentencesForWord fetches the example sentences for one word, ordered
// by display order. Detail views call this on entry.
func (s *Session) SentencesForWord(ctx context.Context, wordID int) ([]Sentence, error) {
	return s.repo.SentencesForWord(ctx, wordID)
}

// EnsureDrillDeck returns the global drill deck, fetching it at most
// once per session. Re-entering sentence practice reuses the loaded
// deck; a failed load leaves the session unmarked so the next entry
// retries.
func (s *Session) EnsureDrillDeck(ctx context.Context) ([]DrillCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cardsLoaded {
		return s.cards, nil
	}
	cards, err := s.repo.DrillCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("load drill deck: %w", err)
	}
	s.cards = cards
	s.cardsLoaded = true
	return s.cards, nil
}

// CategorySlugs returns the filter keys in display order, with the
// "all" sentinel first.
func (s *Session) CategorySlugs() []string {
	slugs := make([]string, 0, len(s.Categories)+1)
	slugs = append(slugs, CategoryAll)
	for _, c := range s.Categories {
		slugs = append(slugs, c.Slug)
	}
	return slugs
}

// CategoryName resolves a slug to its display name. The sentinel and
// unknown slugs render as-is.
func (s *Session) CategoryName(slug string) string {
	for _, c := range s.Categories {
		if c.Slug == slug {
			return c.Name
		}
	}
	return slug
}

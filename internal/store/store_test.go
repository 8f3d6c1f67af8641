package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := openTestStore(t)
	if err := Seed(context.Background(), s.Client()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	before, err := s.Client().Word.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if before == 0 {
		t.Fatal("seed created no words")
	}

	if err := Seed(ctx, s.Client()); err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	after, err := s.Client().Word.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if after != before {
		t.Errorf("re-seed changed word count: %d -> %d", before, after)
	}
}

func TestCategoriesOrderedByID(t *testing.T) {
	s := seededStore(t)
	repo := s.CatalogRepo()

	cats, err := repo.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(cats) != len(seedCategories) {
		t.Fatalf("got %d categories, want %d", len(cats), len(seedCategories))
	}
	for i := 1; i < len(cats); i++ {
		if cats[i].ID <= cats[i-1].ID {
			t.Errorf("categories not ordered by id: %d before %d", cats[i-1].ID, cats[i].ID)
		}
	}
	for _, c := range cats {
		if c.Slug == "" || c.Name == "" {
			t.Errorf("category with missing fields: %+v", c)
		}
	}
}

func TestWordsJoinedWithCategoryAndSorted(t *testing.T) {
	s := seededStore(t)
	repo := s.CatalogRepo()

	words, err := repo.Words(context.Background())
	if err != nil {
		t.Fatalf("words: %v", err)
	}
	if len(words) != len(seedWords) {
		t.Fatalf("got %d words, want %d", len(words), len(seedWords))
	}
	for i := 1; i < len(words); i++ {
		if words[i].Popularity > words[i-1].Popularity {
			t.Errorf("words not sorted by popularity desc at index %d", i)
		}
	}
	for _, w := range words {
		if w.CategorySlug == "" || w.CategoryName == "" {
			t.Errorf("word %q missing category join", w.Hanzi)
		}
	}
}

func TestSentencesForWordOrderedByDisplayOrder(t *testing.T) {
	s := seededStore(t)
	repo := s.CatalogRepo()
	ctx := context.Background()

	words, err := repo.Words(ctx)
	if err != nil {
		t.Fatalf("words: %v", err)
	}

	sents, err := repo.SentencesForWord(ctx, words[0].ID)
	if err != nil {
		t.Fatalf("sentences: %v", err)
	}
	if len(sents) == 0 {
		t.Fatal("expected seeded sentences for the first word")
	}
	for i, sent := range sents {
		if sent.WordID != words[0].ID {
			t.Errorf("sentence %d belongs to word %d, want %d", sent.ID, sent.WordID, words[0].ID)
		}
		if sent.DisplayOrder != i+1 {
			t.Errorf("display order at index %d = %d", i, sent.DisplayOrder)
		}
	}
}

func TestDrillCardsCarryWordAndCategory(t *testing.T) {
	s := seededStore(t)
	repo := s.CatalogRepo()

	cards, err := repo.DrillCards(context.Background())
	if err != nil {
		t.Fatalf("drill cards: %v", err)
	}
	if len(cards) == 0 {
		t.Fatal("expected seeded drill cards")
	}
	for i, c := range cards {
		if c.WordHanzi == "" || c.WordMeaning == "" || c.CategoryName == "" {
			t.Errorf("card %d missing join data: %+v", c.ID, c)
		}
		if i > 0 && cards[i].ID <= cards[i-1].ID {
			t.Errorf("cards not ordered by id at index %d", i)
		}
	}
}

func TestPracticeRepoAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.PracticeRepo()
	ctx := context.Background()

	events := []PracticeEventData{
		{SessionID: "a", Mode: "study", ItemsSeen: 10, DurationSecs: 60},
		{SessionID: "b", Mode: "drill", ItemsSeen: 5, Completed: 3, DurationSecs: 120},
	}
	for _, e := range events {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append %s: %v", e.SessionID, err)
		}
	}

	got, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	for _, rec := range got {
		if rec.Timestamp.IsZero() {
			t.Errorf("event %s has zero timestamp", rec.SessionID)
		}
	}
}

func TestPracticeRepoDeleteAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.PracticeRepo()
	ctx := context.Background()

	if err := repo.Append(ctx, PracticeEventData{SessionID: "x", Mode: "study"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := repo.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted %d, want 1", n)
	}

	got, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("%d events remain after delete", len(got))
	}
}

package store

import (
	"context"
	"fmt"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/category"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/sentence"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/word"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/catalog"
)

// CatalogRepo implements catalog.Repo over the ent client. All four
// queries are pure request/response; the first error surfaces to the
// caller unchanged.
type CatalogRepo struct {
	client *ent.Client
}

var _ catalog.Repo = (*CatalogRepo)(nil)

// Categories lists all categories ordered by id.
func (r *CatalogRepo) Categories(ctx context.Context) ([]catalog.Category, error) {
	rows, err := r.client.Category.Query().
		Order(ent.Asc(category.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}

	out := make([]catalog.Category, 0, len(rows))
	for _, c := range rows {
		out = append(out, catalog.Category{
			ID:   c.ID,
			Name: c.Name,
			Slug: c.Slug,
		})
	}
	return out, nil
}

// Words lists all words joined with their category, ordered by
// popularity descending.
func (r *CatalogRepo) Words(ctx context.Context) ([]catalog.Word, error) {
	rows, err := r.client.Word.Query().
		WithCategory().
		Order(ent.Desc(word.FieldPopularity)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}

	out := make([]catalog.Word, 0, len(rows))
	for _, w := range rows {
		cw := catalog.Word{
			ID:          w.ID,
			Hanzi:       w.Hanzi,
			Pinyin:      w.Pinyin,
			Meaning:     w.Meaning,
			Background:  w.Background,
			OriginYear:  w.OriginYear,
			OriginMonth: w.OriginMonth,
			Popularity:  w.Popularity,
		}
		if c := w.Edges.Category; c != nil {
			cw.CategorySlug = c.Slug
			cw.CategoryName = c.Name
		}
		out = append(out, cw)
	}
	return out, nil
}

// SentencesForWord lists the example sentences of one word, ordered by
// display order.
func (r *CatalogRepo) SentencesForWord(ctx context.Context, wordID int) ([]catalog.Sentence, error) {
	rows, err := r.client.Sentence.Query().
		Where(sentence.HasWordWith(word.ID(wordID))).
		Order(ent.Asc(sentence.FieldDisplayOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sentences for word %d: %w", wordID, err)
	}

	out := make([]catalog.Sentence, 0, len(rows))
	for _, s := range rows {
		out = append(out, catalog.Sentence{
			ID:           s.ID,
			WordID:       wordID,
			Zh:           s.Zh,
			En:           s.En,
			DisplayOrder: s.DisplayOrder,
			Note:         s.Note,
		})
	}
	return out, nil
}

// DrillCards lists every sentence joined with its owning word and
// category, ordered by id. This is the global sentence-practice view.
func (r *CatalogRepo) DrillCards(ctx context.Context) ([]catalog.DrillCard, error) {
	rows, err := r.client.Sentence.Query().
		WithWord(func(q *ent.WordQuery) {
			q.WithCategory()
		}).
		Order(ent.Asc(sentence.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query drill cards: %w", err)
	}

	out := make([]catalog.DrillCard, 0, len(rows))
	for _, s := range rows {
		card := catalog.DrillCard{
			Sentence: catalog.Sentence{
				ID:           s.ID,
				Zh:           s.Zh,
				En:           s.En,
				DisplayOrder: s.DisplayOrder,
				Note:         s.Note,
			},
		}
		if w := s.Edges.Word; w != nil {
			card.WordID = w.ID
			card.WordHanzi = w.Hanzi
			card.WordMeaning = w.Meaning
			if c := w.Edges.Category; c != nil {
				card.CategorySlug = c.Slug
				card.CategoryName = c.Name
			}
		}
		out = append(out, card)
	}
	return out, nil
}

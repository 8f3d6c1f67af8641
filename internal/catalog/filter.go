package catalog

import "strings"

// CategoryAll is the sentinel category key meaning "no category filter".
const CategoryAll = "all"

// Criteria is the transient filter state: a category slug (or
// CategoryAll) and a free-text query. Both predicates are ANDed.
type Criteria struct {
	Category string
	Query    string
}

// AllCriteria returns criteria that match everything.
func AllCriteria() Criteria {
	return Criteria{Category: CategoryAll}
}

// Matches reports whether the criteria apply any predicate at all.
func (c Criteria) Matches() bool {
	return (c.Category != "" && c.Category != CategoryAll) || strings.TrimSpace(c.Query) != ""
}

// FilterWords returns the words matching crit. The result is always a
// fresh slice; the input is never mutated. The text predicate is a
// case-insensitive substring match over hanzi, pinyin, and meaning.
func FilterWords(words []Word, crit Criteria) []Word {
	q := strings.ToLower(strings.TrimSpace(crit.Query))
	out := make([]Word, 0, len(words))
	for _, w := range words {
		if !categoryMatch(crit.Category, w.CategorySlug) {
			continue
		}
		if q != "" && !anyContains(q, w.Hanzi, w.Pinyin, w.Meaning) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// FilterCards returns the drill cards matching crit. The text
// predicate covers the sentence text, its translation, and the owning
// word's surface text.
func FilterCards(cards []DrillCard, crit Criteria) []DrillCard {
	q := strings.ToLower(strings.TrimSpace(crit.Query))
	out := make([]DrillCard, 0, len(cards))
	for _, c := range cards {
		if !categoryMatch(crit.Category, c.CategorySlug) {
			continue
		}
		if q != "" && !anyContains(q, c.Zh, c.En, c.WordHanzi) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func categoryMatch(key, slug string) bool {
	if key == "" || key == CategoryAll {
		return true
	}
	return key == slug
}

func anyContains(lowerQuery string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lowerQuery) {
			return true
		}
	}
	return false
}

package catalog

import (
	"reflect"
	"testing"
)

func testWords() []Word {
	return []Word{
		{ID: 1, Hanzi: "氪金", Pinyin: "kè jīn", Meaning: "to spend money on in-game purchases", CategorySlug: "gaming"},
		{ID: 2, Hanzi: "内卷", Pinyin: "nèi juǎn", Meaning: "involution, destructive competition", CategorySlug: "work"},
		{ID: 3, Hanzi: "破防", Pinyin: "pò fáng", Meaning: "emotionally overwhelmed, defenses broken", CategorySlug: "gaming"},
		{ID: 4, Hanzi: "种草", Pinyin: "zhòng cǎo", Meaning: "to get hooked on a product", CategorySlug: "lifestyle"},
	}
}

func TestFilterWordsByCategory(t *testing.T) {
	words := []Word{
		{ID: 1, Hanzi: "A", CategorySlug: "gaming"},
		{ID: 2, Hanzi: "B", CategorySlug: "tech"},
	}
	got := FilterWords(words, Criteria{Category: "gaming"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("filter by gaming = %+v, want only word 1", got)
	}
}

func TestFilterWordsIdempotent(t *testing.T) {
	words := testWords()
	once := FilterWords(words, Criteria{Category: "gaming"})
	twice := FilterWords(once, Criteria{Category: "gaming"})
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second filter pass changed the result: %+v vs %+v", once, twice)
	}
}

func TestFilterWordsEmptyQueryReturnsAll(t *testing.T) {
	words := testWords()
	got := FilterWords(words, Criteria{Category: CategoryAll, Query: ""})
	if len(got) != len(words) {
		t.Errorf("unfiltered length = %d, want %d", len(got), len(words))
	}
}

func TestFilterWordsCaseInsensitive(t *testing.T) {
	words := testWords()

	tests := []struct {
		query string
		want  int // expected word ID of the single match
	}{
		{"INVOLUTION", 2},
		{"involution", 2},
		{"Pò Fáng", 3},
		{"种草", 4},
	}

	for _, tt := range tests {
		got := FilterWords(words, Criteria{Category: CategoryAll, Query: tt.query})
		if len(got) != 1 || got[0].ID != tt.want {
			t.Errorf("query %q = %+v, want single word %d", tt.query, got, tt.want)
		}
	}
}

func TestFilterWordsCombinedIsIntersection(t *testing.T) {
	words := testWords()
	crit := Criteria{Category: "gaming", Query: "emotionally"}

	byCategory := FilterWords(words, Criteria{Category: "gaming"})
	byQuery := FilterWords(words, Criteria{Category: CategoryAll, Query: "emotionally"})
	combined := FilterWords(words, crit)

	inBoth := func(id int) bool {
		var a, b bool
		for _, w := range byCategory {
			if w.ID == id {
				a = true
			}
		}
		for _, w := range byQuery {
			if w.ID == id {
				b = true
			}
		}
		return a && b
	}

	for _, w := range combined {
		if !inBoth(w.ID) {
			t.Errorf("word %d in combined result but not in both single-predicate results", w.ID)
		}
	}
	for _, w := range words {
		if inBoth(w.ID) {
			found := false
			for _, c := range combined {
				if c.ID == w.ID {
					found = true
				}
			}
			if !found {
				t.Errorf("word %d in both single-predicate results but missing from combined", w.ID)
			}
		}
	}
}

func TestFilterWordsDoesNotMutateSource(t *testing.T) {
	words := testWords()
	before := make([]Word, len(words))
	copy(before, words)

	FilterWords(words, Criteria{Category: "gaming", Query: "kè"})

	if !reflect.DeepEqual(words, before) {
		t.Error("FilterWords mutated its input")
	}
}

func TestFilterCards(t *testing.T) {
	cards := []DrillCard{
		{Sentence: Sentence{ID: 1, Zh: "他为了抽卡又氪金了", En: "He spent money again for the gacha pull"}, WordHanzi: "氪金", CategorySlug: "gaming"},
		{Sentence: Sentence{ID: 2, Zh: "这个行业太内卷了", En: "This industry is so competitive"}, WordHanzi: "内卷", CategorySlug: "work"},
	}

	tests := []struct {
		name string
		crit Criteria
		want []int
	}{
		{"all", Criteria{Category: CategoryAll}, []int{1, 2}},
		{"by category", Criteria{Category: "work"}, []int{2}},
		{"by translation", Criteria{Category: CategoryAll, Query: "gacha"}, []int{1}},
		{"by word hanzi", Criteria{Category: CategoryAll, Query: "内卷"}, []int{2}},
		{"no match", Criteria{Category: "gaming", Query: "competitive"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCards(cards, tt.crit)
			ids := make([]int, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("ids = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestCriteriaMatches(t *testing.T) {
	if AllCriteria().Matches() {
		t.Error("AllCriteria should apply no predicate")
	}
	if !(Criteria{Category: "gaming"}).Matches() {
		t.Error("category criteria should count as a predicate")
	}
	if !(Criteria{Category: CategoryAll, Query: "x"}).Matches() {
		t.Error("query criteria should count as a predicate")
	}
}

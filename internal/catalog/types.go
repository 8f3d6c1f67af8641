package catalog

// Category is a topical grouping used for filtering and badge styling.
type Category struct {
	ID   int
	Name string
	Slug string
}

// Word is a single slang vocabulary entry with its owning category
// denormalized for display and filtering.
type Word struct {
	ID           int
	Hanzi        string
	Pinyin       string
	Meaning      string
	Background   string
	OriginYear   int
	OriginMonth  int
	Popularity   int
	CategorySlug string
	CategoryName string
}

// Sentence is an example usage scoped to one word, as shown on the
// detail screen.
type Sentence struct {
	ID           int
	WordID       int
	Zh           string
	En           string
	DisplayOrder int
	Note         string
}

// DrillCard is a sentence joined with its owning word, as served by
// the global sentence-practice view.
type DrillCard struct {
	Sentence
	WordHanzi    string
	WordMeaning  string
	CategorySlug string
	CategoryName string
}

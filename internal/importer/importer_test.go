package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/store"
)

func testImporter(t *testing.T) (*Importer, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return New(s.Client()), s
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validCatalog = `{
  "categories": [{"name": "网络游戏", "slug": "gaming"}],
  "words": [
    {
      "hanzi": "氪金",
      "pinyin": "kè jīn",
      "meaning": "to spend money on in-game purchases",
      "category": "gaming",
      "origin_year": 2014,
      "popularity": 86,
      "sentences": [
        {"zh": "他又氪金了。", "en": "He spent money again."},
        {"zh": "不氪金也能玩。", "en": "You can play for free.", "note": "也能 = can also"}
      ]
    }
  ]
}`

func TestImportJSON(t *testing.T) {
	im, s := testImporter(t)
	path := writeFile(t, "catalog.json", validCatalog)

	res, err := im.Import(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 1, res.CategoriesCreated)
	assert.Equal(t, 1, res.WordsCreated)
	assert.Equal(t, 2, res.SentencesCreated)
	assert.Equal(t, 0, res.WordsUpdated)

	words, err := s.CatalogRepo().Words(context.Background())
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "氪金", words[0].Hanzi)
	assert.Equal(t, "gaming", words[0].CategorySlug)
}

func TestImportJSONUpsertsExistingWord(t *testing.T) {
	im, s := testImporter(t)
	path := writeFile(t, "catalog.json", validCatalog)

	_, err := im.Import(context.Background(), path)
	require.NoError(t, err)

	res, err := im.Import(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, res.WordsCreated)
	assert.Equal(t, 1, res.WordsUpdated)

	// Sentences are replaced, not appended.
	words, err := s.CatalogRepo().Words(context.Background())
	require.NoError(t, err)
	sents, err := s.CatalogRepo().SentencesForWord(context.Background(), words[0].ID)
	require.NoError(t, err)
	assert.Len(t, sents, 2)
}

func TestImportUpdateWithoutSentencesKeepsExamples(t *testing.T) {
	im, s := testImporter(t)

	_, err := im.Import(context.Background(), writeFile(t, "catalog.json", validCatalog))
	require.NoError(t, err)

	// Same word, no sentences: the existing examples must survive.
	noSentences := `{
	  "words": [
	    {
	      "hanzi": "氪金",
	      "pinyin": "kè jīn",
	      "meaning": "to spend money on in-game purchases",
	      "category": "gaming"
	    }
	  ]
	}`
	res, err := im.Import(context.Background(), writeFile(t, "update.json", noSentences))
	require.NoError(t, err)
	assert.Equal(t, 1, res.WordsUpdated)

	words, err := s.CatalogRepo().Words(context.Background())
	require.NoError(t, err)
	sents, err := s.CatalogRepo().SentencesForWord(context.Background(), words[0].ID)
	require.NoError(t, err)
	assert.Len(t, sents, 2)
}

func TestImportJSONRejectsSchemaViolations(t *testing.T) {
	im, _ := testImporter(t)

	tests := []struct {
		name    string
		content string
	}{
		{"missing words key", `{"categories": []}`},
		{"word without pinyin", `{"words": [{"hanzi": "氪金", "meaning": "x", "category": "gaming"}]}`},
		{"bad slug", `{"categories": [{"name": "X", "slug": "Not A Slug"}], "words": []}`},
		{"month out of range", `{"words": [{"hanzi": "x", "pinyin": "x", "meaning": "x", "category": "c", "origin_month": 13}]}`},
		{"malformed json", `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.json", tt.content)
			_, err := im.Import(context.Background(), path)
			assert.Error(t, err)
		})
	}
}

func TestImportUnsupportedExtension(t *testing.T) {
	im, _ := testImporter(t)
	_, err := im.Import(context.Background(), "catalog.txt")
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestImportExcel(t *testing.T) {
	im, s := testImporter(t)

	f := excelize.NewFile()
	_, err := f.NewSheet(wordsSheet)
	require.NoError(t, err)
	header := []any{"hanzi", "pinyin", "meaning", "background", "category", "category name", "year", "month", "popularity"}
	require.NoError(t, f.SetSheetRow(wordsSheet, "A1", &header))
	row := []any{"内卷", "nèi juǎn", "involution", "escaped academia in 2020", "work", "", "2020", "9", "95"}
	require.NoError(t, f.SetSheetRow(wordsSheet, "A2", &row))
	// A row with missing required cells is skipped, not fatal.
	bad := []any{"躺平", "", "lie flat", "", "work"}
	require.NoError(t, f.SetSheetRow(wordsSheet, "A3", &bad))

	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, f.SaveAs(path))

	res, err := im.Import(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 1, res.WordsCreated)
	assert.Len(t, res.Skipped, 1)

	words, err := s.CatalogRepo().Words(context.Background())
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "内卷", words[0].Hanzi)
	assert.Equal(t, 2020, words[0].OriginYear)
	assert.Equal(t, 95, words[0].Popularity)
}

// Package importer bulk-loads catalog data from JSON or Excel files.
// JSON files are validated against an embedded schema before any row
// is written; Excel files follow a fixed column layout with a header
// row. Words upsert by (hanzi, category slug).
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/category"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/sentence"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/word"
)

// wordsSheet is the sheet read from .xlsx files. Columns:
// A hanzi, B pinyin, C meaning, D background, E category slug,
// F category name, G origin year, H origin month, I popularity.
const wordsSheet = "Words"

// Result summarizes an import run.
type Result struct {
	WordsCreated      int
	WordsUpdated      int
	SentencesCreated  int
	CategoriesCreated int
	Skipped           []string
}

// Importer writes catalog files into the store.
type Importer struct {
	client *ent.Client
}

// New returns an Importer over the given ent client.
func New(client *ent.Client) *Importer {
	return &Importer{client: client}
}

type catalogFile struct {
	Categories []categoryRow `json:"categories"`
	Words      []wordRow     `json:"words"`
}

type categoryRow struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type wordRow struct {
	Hanzi       string        `json:"hanzi"`
	Pinyin      string        `json:"pinyin"`
	Meaning     string        `json:"meaning"`
	Background  string        `json:"background"`
	Category    string        `json:"category"`
	OriginYear  int           `json:"origin_year"`
	OriginMonth int           `json:"origin_month"`
	Popularity  int           `json:"popularity"`
	Sentences   []sentenceRow `json:"sentences"`
}

type sentenceRow struct {
	Zh   string `json:"zh"`
	En   string `json:"en"`
	Note string `json:"note"`
}

// Import reads the file at path and loads it, dispatching on the
// extension (.json or .xlsx).
func (im *Importer) Import(ctx context.Context, path string) (*Result, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return im.importJSON(ctx, path)
	case ".xlsx":
		return im.importExcel(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .json or .xlsx)", ext)
	}
}

func (im *Importer) importJSON(ctx context.Context, path string) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := validateCatalog(raw); err != nil {
		return nil, err
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	res := &Result{}
	for _, c := range file.Categories {
		if _, err := im.ensureCategory(ctx, c.Slug, c.Name, res); err != nil {
			return nil, err
		}
	}
	for _, w := range file.Words {
		if err := im.upsertWord(ctx, w, res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (im *Importer) importExcel(ctx context.Context, path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(wordsSheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", wordsSheet, err)
	}

	res := &Result{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		w, err := wordRowFromCells(row)
		if err != nil {
			res.Skipped = append(res.Skipped, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		if err := im.upsertWord(ctx, w, res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func wordRowFromCells(cells []string) (wordRow, error) {
	cell := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}
	w := wordRow{
		Hanzi:      cell(0),
		Pinyin:     cell(1),
		Meaning:    cell(2),
		Background: cell(3),
		Category:   cell(4),
	}
	if w.Hanzi == "" || w.Pinyin == "" || w.Meaning == "" || w.Category == "" {
		return wordRow{}, fmt.Errorf("missing required cell (hanzi/pinyin/meaning/category)")
	}
	for _, f := range []struct {
		idx  int
		dest *int
	}{
		{6, &w.OriginYear},
		{7, &w.OriginMonth},
		{8, &w.Popularity},
	} {
		if v := cell(f.idx); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return wordRow{}, fmt.Errorf("column %d: %w", f.idx+1, err)
			}
			*f.dest = n
		}
	}
	return w, nil
}

// ensureCategory fetches a category by slug, creating it when absent.
// The display name defaults to the slug when no name is supplied.
func (im *Importer) ensureCategory(ctx context.Context, slug, name string, res *Result) (*ent.Category, error) {
	c, err := im.client.Category.Query().
		Where(category.Slug(slug)).
		Only(ctx)
	if err == nil {
		return c, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query category %s: %w", slug, err)
	}

	if name == "" {
		name = slug
	}
	c, err = im.client.Category.Create().
		SetSlug(slug).
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create category %s: %w", slug, err)
	}
	res.CategoriesCreated++
	return c, nil
}

// upsertWord creates or updates a word keyed by (hanzi, category
// slug). An update that carries sentences replaces the word's examples
// wholesale; one without sentences keeps the existing examples, so
// spreadsheet rows never wipe a word's sentence list.
func (im *Importer) upsertWord(ctx context.Context, row wordRow, res *Result) error {
	cat, err := im.ensureCategory(ctx, row.Category, "", res)
	if err != nil {
		return err
	}

	existing, err := im.client.Word.Query().
		Where(word.Hanzi(row.Hanzi), word.HasCategoryWith(category.Slug(row.Category))).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query word %s: %w", row.Hanzi, err)
	}

	var w *ent.Word
	if existing != nil {
		w, err = existing.Update().
			SetPinyin(row.Pinyin).
			SetMeaning(row.Meaning).
			SetBackground(row.Background).
			SetOriginYear(row.OriginYear).
			SetOriginMonth(row.OriginMonth).
			SetPopularity(row.Popularity).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update word %s: %w", row.Hanzi, err)
		}
		res.WordsUpdated++

		if len(row.Sentences) > 0 {
			if _, err := im.client.Sentence.Delete().
				Where(sentence.HasWordWith(word.ID(w.ID))).
				Exec(ctx); err != nil {
				return fmt.Errorf("replace sentences for %s: %w", row.Hanzi, err)
			}
		}
	} else {
		w, err = im.client.Word.Create().
			SetHanzi(row.Hanzi).
			SetPinyin(row.Pinyin).
			SetMeaning(row.Meaning).
			SetBackground(row.Background).
			SetOriginYear(row.OriginYear).
			SetOriginMonth(row.OriginMonth).
			SetPopularity(row.Popularity).
			SetCategory(cat).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create word %s: %w", row.Hanzi, err)
		}
		res.WordsCreated++
	}

	for i, s := range row.Sentences {
		_, err := im.client.Sentence.Create().
			SetZh(s.Zh).
			SetEn(s.En).
			SetNote(s.Note).
			SetDisplayOrder(i + 1).
			SetWord(w).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create sentence for %s: %w", row.Hanzi, err)
		}
		res.SentencesCreated++
	}
	return nil
}

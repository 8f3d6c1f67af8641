// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/category"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/practiceevent"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/schema"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/sentence"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/word"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[0].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescSlug is the schema descriptor for slug field.
	categoryDescSlug := categoryFields[1].Descriptor()
	// category.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	category.SlugValidator = categoryDescSlug.Validators[0].(func(string) error)
	practiceeventFields := schema.PracticeEvent{}.Fields()
	_ = practiceeventFields
	// practiceeventDescSessionID is the schema descriptor for session_id field.
	practiceeventDescSessionID := practiceeventFields[0].Descriptor()
	// practiceevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	practiceevent.SessionIDValidator = practiceeventDescSessionID.Validators[0].(func(string) error)
	// practiceeventDescMode is the schema descriptor for mode field.
	practiceeventDescMode := practiceeventFields[1].Descriptor()
	// practiceevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	practiceevent.ModeValidator = practiceeventDescMode.Validators[0].(func(string) error)
	// practiceeventDescItemsSeen is the schema descriptor for items_seen field.
	practiceeventDescItemsSeen := practiceeventFields[2].Descriptor()
	// practiceevent.DefaultItemsSeen holds the default value on creation for the items_seen field.
	practiceevent.DefaultItemsSeen = practiceeventDescItemsSeen.Default.(int)
	// practiceeventDescCompleted is the schema descriptor for completed field.
	practiceeventDescCompleted := practiceeventFields[3].Descriptor()
	// practiceevent.DefaultCompleted holds the default value on creation for the completed field.
	practiceevent.DefaultCompleted = practiceeventDescCompleted.Default.(int)
	// practiceeventDescDurationSecs is the schema descriptor for duration_secs field.
	practiceeventDescDurationSecs := practiceeventFields[4].Descriptor()
	// practiceevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	practiceevent.DefaultDurationSecs = practiceeventDescDurationSecs.Default.(int)
	// practiceeventDescTimestamp is the schema descriptor for timestamp field.
	practiceeventDescTimestamp := practiceeventFields[5].Descriptor()
	// practiceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	practiceevent.DefaultTimestamp = practiceeventDescTimestamp.Default.(func() time.Time)
	sentenceFields := schema.Sentence{}.Fields()
	_ = sentenceFields
	// sentenceDescZh is the schema descriptor for zh field.
	sentenceDescZh := sentenceFields[0].Descriptor()
	// sentence.ZhValidator is a validator for the "zh" field. It is called by the builders before save.
	sentence.ZhValidator = sentenceDescZh.Validators[0].(func(string) error)
	// sentenceDescEn is the schema descriptor for en field.
	sentenceDescEn := sentenceFields[1].Descriptor()
	// sentence.EnValidator is a validator for the "en" field. It is called by the builders before save.
	sentence.EnValidator = sentenceDescEn.Validators[0].(func(string) error)
	// sentenceDescDisplayOrder is the schema descriptor for display_order field.
	sentenceDescDisplayOrder := sentenceFields[2].Descriptor()
	// sentence.DefaultDisplayOrder holds the default value on creation for the display_order field.
	sentence.DefaultDisplayOrder = sentenceDescDisplayOrder.Default.(int)
	// sentenceDescNote is the schema descriptor for note field.
	sentenceDescNote := sentenceFields[3].Descriptor()
	// sentence.DefaultNote holds the default value on creation for the note field.
	sentence.DefaultNote = sentenceDescNote.Default.(string)
	wordFields := schema.Word{}.Fields()
	_ = wordFields
	// wordDescHanzi is the schema descriptor for hanzi field.
	wordDescHanzi := wordFields[0].Descriptor()
	// word.HanziValidator is a validator for the "hanzi" field. It is called by the builders before save.
	word.HanziValidator = wordDescHanzi.Validators[0].(func(string) error)
	// wordDescPinyin is the schema descriptor for pinyin field.
	wordDescPinyin := wordFields[1].Descriptor()
	// word.PinyinValidator is a validator for the "pinyin" field. It is called by the builders before save.
	word.PinyinValidator = wordDescPinyin.Validators[0].(func(string) error)
	// wordDescMeaning is the schema descriptor for meaning field.
	wordDescMeaning := wordFields[2].Descriptor()
	// word.MeaningValidator is a validator for the "meaning" field. It is called by the builders before save.
	word.MeaningValidator = wordDescMeaning.Validators[0].(func(string) error)
	// wordDescBackground is the schema descriptor for background field.
	wordDescBackground := wordFields[3].Descriptor()
	// word.DefaultBackground holds the default value on creation for the background field.
	word.DefaultBackground = wordDescBackground.Default.(string)
	// wordDescOriginYear is the schema descriptor for origin_year field.
	wordDescOriginYear := wordFields[4].Descriptor()
	// word.DefaultOriginYear holds the default value on creation for the origin_year field.
	word.DefaultOriginYear = wordDescOriginYear.Default.(int)
	// wordDescOriginMonth is the schema descriptor for origin_month field.
	wordDescOriginMonth := wordFields[5].Descriptor()
	// word.DefaultOriginMonth holds the default value on creation for the origin_month field.
	word.DefaultOriginMonth = wordDescOriginMonth.Default.(int)
	// wordDescPopularity is the schema descriptor for popularity field.
	wordDescPopularity := wordFields[6].Descriptor()
	// word.DefaultPopularity holds the default value on creation for the popularity field.
	word.DefaultPopularity = wordDescPopularity.Default.(int)
}

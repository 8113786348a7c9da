package domain

import "strings"

// Field identifies one mutable property of a Vocabulary for change tracking.
type Field uint32

const (
	FieldID Field = 1 << iota
	FieldWord
	FieldTranslation
	FieldSourceLanguage
	FieldTargetLanguage
	FieldPartOfSpeech
	FieldDescription
	FieldPronunciation
	FieldPronunciationAudioURL
	FieldExampleSentenceSrc
	FieldExampleSentenceTarget
	FieldExampleSentenceTense
	FieldExampleSentenceTargetURL
	FieldUpdatedAt
	FieldVersion
	FieldRelatedForms
	FieldIdiomaticUsages
	FieldNoun
	FieldVerb

	fieldEnd
)

// AllFields marks every tracked property, used for aggregates that have never
// been stored.
const AllFields = fieldEnd - 1

var fieldNames = map[Field]string{
	FieldID:                       "id",
	FieldWord:                     "word",
	FieldTranslation:              "translation",
	FieldSourceLanguage:           "sourceLanguage",
	FieldTargetLanguage:           "targetLanguage",
	FieldPartOfSpeech:             "partOfSpeech",
	FieldDescription:              "description",
	FieldPronunciation:            "pronunciation",
	FieldPronunciationAudioURL:    "pronunciationAudioUrl",
	FieldExampleSentenceSrc:       "exampleSentenceSrc",
	FieldExampleSentenceTarget:    "exampleSentenceTarget",
	FieldExampleSentenceTense:     "exampleSentenceTense",
	FieldExampleSentenceTargetURL: "exampleSentenceTargetUrl",
	FieldUpdatedAt:                "updatedAt",
	FieldVersion:                  "version",
	FieldRelatedForms:             "relatedForms",
	FieldIdiomaticUsages:          "idiomaticUsages",
	FieldNoun:                     "noun",
	FieldVerb:                     "verb",
}

// String returns the property name, or a '|'-joined list for combined masks.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	var names []string
	for _, single := range f.Split() {
		names = append(names, fieldNames[single])
	}
	return strings.Join(names, "|")
}

// Split returns the single fields contained in the mask, lowest bit first.
func (f Field) Split() []Field {
	var out []Field
	for bit := FieldID; bit < fieldEnd; bit <<= 1 {
		if f&bit != 0 {
			out = append(out, bit)
		}
	}
	return out
}

// changeSet is the dirty bit set of an aggregate.
type changeSet Field

func (c *changeSet) mark(f Field) { *c |= changeSet(f) }
func (c *changeSet) clear() { *c = 0 }
func (c changeSet) empty() bool { return c == 0 }
func (c changeSet) has(f Field) bool { return Field(c)&f != 0 }
func (c changeSet) fields() []Field { return Field(c).Split() }

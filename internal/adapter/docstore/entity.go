// Package docstore holds the storage representation of a vocabulary item and
// the mapping between it and the domain aggregate. Every document store
// (PostgreSQL JSONB, badger) persists this shape.
package docstore

import (
	"time"

	"github.com/heartmarshall/vocab-catalog/internal/domain"
)

// Entity is the persisted document. RowID, PartitionKey and TTL are storage
// bookkeeping and never travel over the wire.
type Entity struct {
	RowID        string `json:"rowId,omitempty"`
	PartitionKey string `json:"partitionKey"`
	TTL          *int   `json:"ttl,omitempty"`

	ID             string `json:"id" validate:"required,max=255"`
	Word           string `json:"word" validate:"required,max=500"`
	Translation    string `json:"translation" validate:"required,max=500"`
	SourceLanguage string `json:"sourceLanguage" validate:"required,max=16"`
	TargetLanguage string `json:"targetLanguage" validate:"required,max=16"`

	PartOfSpeech             domain.PartOfSpeech `json:"partOfSpeech" validate:"partofspeech"`
	Description              *string             `json:"description,omitempty" validate:"omitempty,max=1000"`
	Pronunciation            *string             `json:"pronunciation,omitempty" validate:"omitempty,max=500"`
	PronunciationAudioURL    *string             `json:"pronunciationAudioUrl,omitempty" validate:"omitempty,url"`
	ExampleSentenceSrc       *string             `json:"exampleSentenceSrc,omitempty" validate:"omitempty,max=2000"`
	ExampleSentenceTarget    *string             `json:"exampleSentenceTarget,omitempty" validate:"omitempty,max=2000"`
	ExampleSentenceTense     *string             `json:"exampleSentenceTense,omitempty" validate:"omitempty,max=100"`
	ExampleSentenceTargetURL *string             `json:"exampleSentenceTargetUrl,omitempty" validate:"omitempty,url"`
	UpdatedAt                *time.Time          `json:"updatedAt,omitempty"`
	Version                  string              `json:"version" validate:"required,max=50"`

	RelatedForms    []RelatedForm    `json:"relatedForms,omitempty" validate:"dive"`
	IdiomaticUsages []IdiomaticUsage `json:"idiomaticUsages,omitempty" validate:"dive"`
	Noun            *Noun            `json:"noun,omitempty"`
	Verb            *Verb            `json:"verb,omitempty"`
}

// RelatedForm is a snapshot of another item's identity.
type RelatedForm struct {
	ID             string `json:"id" validate:"max=255"`
	Word           string `json:"word" validate:"max=500"`
	Translation    string `json:"translation" validate:"max=500"`
	SourceLanguage string `json:"sourceLanguage" validate:"max=16"`
	TargetLanguage string `json:"targetLanguage" validate:"max=16"`
}

type IdiomaticUsage struct {
	Phrase      string `json:"phrase" validate:"required,max=500"`
	Translation string `json:"translation" validate:"required,max=500"`
}

type Noun struct {
	DeterminedArticle   string       `json:"determinedArticle" validate:"required,max=100"`
	Genus               domain.Genus `json:"genus" validate:"genus"`
	UndeterminedArticle string       `json:"undeterminedArticle,omitempty" validate:"max=100"`
}

type Verb struct {
	IsBaseForm   bool                              `json:"isBaseForm"`
	BaseFormRef  string                            `json:"baseFormRef,omitempty" validate:"max=2000"`
	Person       string                            `json:"person,omitempty" validate:"max=50"`
	Infinitiv    string                            `json:"infinitiv,omitempty" validate:"max=100"`
	Tense        string                            `json:"tense,omitempty" validate:"max=50"`
	Conjugations map[string]map[string]Conjugation `json:"conjugations,omitempty" validate:"dive,dive"`
}

type Conjugation struct {
	Form      string `json:"form" validate:"required,max=100"`
	VocObjRef string `json:"vocObjRef,omitempty" validate:"max=255"`
}

// Key returns the point-lookup key of the document inside its partition.
func (e *Entity) Key() string {
	return e.PartitionKey + "/" + e.ID
}

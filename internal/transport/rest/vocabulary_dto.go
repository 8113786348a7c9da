package rest

import (
	"fmt"
	"time"

	"github.com/heartmarshall/vocab-catalog/internal/domain"
	"github.com/heartmarshall/vocab-catalog/internal/service/vocabulary"
)

// VocabularyDTO is the wire form of a vocabulary item. Enums travel as their
// names. Storage bookkeeping (row id, partition key, ttl) never appears here.
type VocabularyDTO struct {
	ID                       string              `json:"id,omitempty" yaml:"id,omitempty"`
	SourceLanguage           string              `json:"sourceLanguage" yaml:"sourceLanguage"`
	TargetLanguage           string              `json:"targetLanguage" yaml:"targetLanguage"`
	Word                     string              `json:"word" yaml:"word"`
	Translation              string              `json:"translation" yaml:"translation"`
	PartOfSpeech             string              `json:"partOfSpeech,omitempty" yaml:"partOfSpeech,omitempty"`
	Description              *string             `json:"description,omitempty" yaml:"description,omitempty"`
	Pronunciation            *string             `json:"pronunciation,omitempty" yaml:"pronunciation,omitempty"`
	PronunciationAudioURL    *string             `json:"pronunciationAudioUrl,omitempty" yaml:"pronunciationAudioUrl,omitempty"`
	ExampleSentenceSrc       *string             `json:"exampleSentenceSrc,omitempty" yaml:"exampleSentenceSrc,omitempty"`
	ExampleSentenceTarget    *string             `json:"exampleSentenceTarget,omitempty" yaml:"exampleSentenceTarget,omitempty"`
	ExampleSentenceTense     *string             `json:"exampleSentenceTense,omitempty" yaml:"exampleSentenceTense,omitempty"`
	ExampleSentenceTargetURL *string             `json:"exampleSentenceTargetUrl,omitempty" yaml:"exampleSentenceTargetUrl,omitempty"`
	UpdatedAt                *time.Time          `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
	Version                  string              `json:"version,omitempty" yaml:"version,omitempty"`
	RelatedForms             []RelatedFormDTO    `json:"relatedForms,omitempty" yaml:"relatedForms,omitempty"`
	IdiomaticUsages          []IdiomaticUsageDTO `json:"idiomaticUsages,omitempty" yaml:"idiomaticUsages,omitempty"`
	Noun                     *NounDTO            `json:"noun,omitempty" yaml:"noun,omitempty"`
	Verb                     *VerbDTO            `json:"verb,omitempty" yaml:"verb,omitempty"`
}

type RelatedFormDTO struct {
	ID             string `json:"id,omitempty" yaml:"id,omitempty"`
	Word           string `json:"word" yaml:"word"`
	Translation    string `json:"translation" yaml:"translation"`
	SourceLanguage string `json:"sourceLanguage" yaml:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage" yaml:"targetLanguage"`
}

type IdiomaticUsageDTO struct {
	Phrase      string `json:"phrase" yaml:"phrase"`
	Translation string `json:"translation" yaml:"translation"`
}

type NounDTO struct {
	DeterminedArticle   string `json:"determinedArticle" yaml:"determinedArticle"`
	Genus               string `json:"genus,omitempty" yaml:"genus,omitempty"`
	UndeterminedArticle string `json:"undeterminedArticle,omitempty" yaml:"undeterminedArticle,omitempty"`
}

type VerbDTO struct {
	IsBaseForm   bool                                 `json:"isBaseForm" yaml:"isBaseForm"`
	BaseFormRef  string                               `json:"baseFormRef,omitempty" yaml:"baseFormRef,omitempty"`
	Person       string                               `json:"person,omitempty" yaml:"person,omitempty"`
	Infinitiv    string                               `json:"infinitiv,omitempty" yaml:"infinitiv,omitempty"`
	Tense        string                               `json:"tense,omitempty" yaml:"tense,omitempty"`
	Conjugations map[string]map[string]ConjugationDTO `json:"conjugations,omitempty" yaml:"conjugations,omitempty"`
}

type ConjugationDTO struct {
	Form      string `json:"form" yaml:"form"`
	VocObjRef string `json:"vocObjRef,omitempty" yaml:"vocObjRef,omitempty"`
}

// ToDTO maps a snapshot to its wire form.
func ToDTO(s domain.VocabularySnapshot) VocabularyDTO {
	d := VocabularyDTO{
		ID:                       s.ID,
		SourceLanguage:           s.SourceLanguage,
		TargetLanguage:           s.TargetLanguage,
		Word:                     s.Word,
		Translation:              s.Translation,
		PartOfSpeech:             s.PartOfSpeech.String(),
		Description:              s.Description,
		Pronunciation:            s.Pronunciation,
		PronunciationAudioURL:    s.PronunciationAudioURL,
		ExampleSentenceSrc:       s.ExampleSentenceSrc,
		ExampleSentenceTarget:    s.ExampleSentenceTarget,
		ExampleSentenceTense:     s.ExampleSentenceTense,
		ExampleSentenceTargetURL: s.ExampleSentenceTargetURL,
		UpdatedAt:                s.UpdatedAt,
		Version:                  s.Version,
	}
	for _, rf := range s.RelatedForms {
		d.RelatedForms = append(d.RelatedForms, RelatedFormDTO(rf))
	}
	for _, iu := range s.IdiomaticUsages {
		d.IdiomaticUsages = append(d.IdiomaticUsages, IdiomaticUsageDTO(iu))
	}
	if s.Noun != nil {
		d.Noun = &NounDTO{
			DeterminedArticle:   s.Noun.DeterminedArticle,
			Genus:               s.Noun.Genus.String(),
			UndeterminedArticle: s.Noun.UndeterminedArticle,
		}
	}
	if s.Verb != nil {
		d.Verb = toVerbDTO(*s.Verb)
	}
	return d
}

// FromDTO maps the wire form to a snapshot. Unknown enum names are rejected.
func FromDTO(d VocabularyDTO) (domain.VocabularySnapshot, error) {
	pos, err := domain.ParsePartOfSpeech(d.PartOfSpeech)
	if err != nil {
		return domain.VocabularySnapshot{}, fmt.Errorf("partOfSpeech: %w", err)
	}

	s := domain.VocabularySnapshot{
		VocabularyBase: domain.VocabularyBase{
			ID:             d.ID,
			Word:           d.Word,
			Translation:    d.Translation,
			SourceLanguage: d.SourceLanguage,
			TargetLanguage: d.TargetLanguage,
		},
		PartOfSpeech:             pos,
		Description:              d.Description,
		Pronunciation:            d.Pronunciation,
		PronunciationAudioURL:    d.PronunciationAudioURL,
		ExampleSentenceSrc:       d.ExampleSentenceSrc,
		ExampleSentenceTarget:    d.ExampleSentenceTarget,
		ExampleSentenceTense:     d.ExampleSentenceTense,
		ExampleSentenceTargetURL: d.ExampleSentenceTargetURL,
		UpdatedAt:                d.UpdatedAt,
		Version:                  d.Version,
		RelatedForms:             relatedForms(d.RelatedForms),
		IdiomaticUsages:          idiomaticUsages(d.IdiomaticUsages),
	}
	if d.Noun != nil {
		n, err := fromNounDTO(*d.Noun)
		if err != nil {
			return domain.VocabularySnapshot{}, err
		}
		s.Noun = &n
	}
	if d.Verb != nil {
		v := fromVerbDTO(*d.Verb)
		s.Verb = &v
	}
	return s.Clone(), nil
}

func relatedForms(in []RelatedFormDTO) []domain.VocabularyBase {
	var out []domain.VocabularyBase
	for _, rf := range in {
		out = append(out, domain.VocabularyBase(rf))
	}
	return out
}

func idiomaticUsages(in []IdiomaticUsageDTO) []domain.IdiomaticUsage {
	var out []domain.IdiomaticUsage
	for _, iu := range in {
		out = append(out, domain.IdiomaticUsage(iu))
	}
	return out
}

func fromNounDTO(d NounDTO) (domain.NounDetails, error) {
	genus, err := domain.ParseGenus(d.Genus)
	if err != nil {
		return domain.NounDetails{}, fmt.Errorf("noun.genus: %w", err)
	}
	return domain.NounDetails{
		DeterminedArticle:   d.DeterminedArticle,
		Genus:               genus,
		UndeterminedArticle: d.UndeterminedArticle,
	}, nil
}

func toVerbDTO(v domain.VerbDetails) *VerbDTO {
	d := &VerbDTO{
		IsBaseForm:  v.IsBaseForm,
		BaseFormRef: v.BaseFormRef,
		Person:      v.Person,
		Infinitiv:   v.Infinitiv,
		Tense:       v.Tense,
	}
	if v.Conjugations != nil {
		d.Conjugations = make(map[string]map[string]ConjugationDTO, len(v.Conjugations))
		for tense, persons := range v.Conjugations {
			row := make(map[string]ConjugationDTO, len(persons))
			for person, c := range persons {
				row[person] = ConjugationDTO(c)
			}
			d.Conjugations[tense] = row
		}
	}
	return d
}

func fromVerbDTO(d VerbDTO) domain.VerbDetails {
	v := domain.VerbDetails{
		IsBaseForm:  d.IsBaseForm,
		BaseFormRef: d.BaseFormRef,
		Person:      d.Person,
		Infinitiv:   d.Infinitiv,
		Tense:       d.Tense,
	}
	if d.Conjugations != nil {
		v.Conjugations = make(domain.Conjugations, len(d.Conjugations))
		for tense, persons := range d.Conjugations {
			row := make(map[string]domain.ConjugationDetails, len(persons))
			for person, c := range persons {
				row[person] = domain.ConjugationDetails(c)
			}
			v.Conjugations[tense] = row
		}
	}
	return v
}

// PatchDTO is the body of a partial update. Absent fields stay unchanged;
// an empty string clears an optional text field.
type PatchDTO struct {
	Word                     *string              `json:"word,omitempty"`
	Translation              *string              `json:"translation,omitempty"`
	PartOfSpeech             *string              `json:"partOfSpeech,omitempty"`
	Description              *string              `json:"description,omitempty"`
	Pronunciation            *string              `json:"pronunciation,omitempty"`
	PronunciationAudioURL    *string              `json:"pronunciationAudioUrl,omitempty"`
	ExampleSentenceSrc       *string              `json:"exampleSentenceSrc,omitempty"`
	ExampleSentenceTarget    *string              `json:"exampleSentenceTarget,omitempty"`
	ExampleSentenceTense     *string              `json:"exampleSentenceTense,omitempty"`
	ExampleSentenceTargetURL *string              `json:"exampleSentenceTargetUrl,omitempty"`
	Version                  *string              `json:"version,omitempty"`
	RelatedForms             *[]RelatedFormDTO    `json:"relatedForms,omitempty"`
	IdiomaticUsages          *[]IdiomaticUsageDTO `json:"idiomaticUsages,omitempty"`
	Noun                     *NounDTO             `json:"noun,omitempty"`
	Verb                     *VerbDTO             `json:"verb,omitempty"`
}

// ToPatch converts the wire patch into a service patch.
func (d PatchDTO) ToPatch() (vocabulary.Patch, error) {
	p := vocabulary.Patch{
		Word:                     d.Word,
		Translation:              d.Translation,
		Description:              d.Description,
		Pronunciation:            d.Pronunciation,
		PronunciationAudioURL:    d.PronunciationAudioURL,
		ExampleSentenceSrc:       d.ExampleSentenceSrc,
		ExampleSentenceTarget:    d.ExampleSentenceTarget,
		ExampleSentenceTense:     d.ExampleSentenceTense,
		ExampleSentenceTargetURL: d.ExampleSentenceTargetURL,
		Version:                  d.Version,
	}
	if d.PartOfSpeech != nil {
		pos, err := domain.ParsePartOfSpeech(*d.PartOfSpeech)
		if err != nil {
			return vocabulary.Patch{}, fmt.Errorf("partOfSpeech: %w", err)
		}
		p.PartOfSpeech = &pos
	}
	if d.RelatedForms != nil {
		forms := relatedForms(*d.RelatedForms)
		p.RelatedForms = &forms
	}
	if d.IdiomaticUsages != nil {
		usages := idiomaticUsages(*d.IdiomaticUsages)
		p.IdiomaticUsages = &usages
	}
	if d.Noun != nil {
		n, err := fromNounDTO(*d.Noun)
		if err != nil {
			return vocabulary.Patch{}, err
		}
		p.Noun = &n
	}
	if d.Verb != nil {
		v := fromVerbDTO(*d.Verb)
		p.Verb = &v
	}
	return p, nil
}

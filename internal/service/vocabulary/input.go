package vocabulary

import (
	"strings"

	"github.com/heartmarshall/vocab-catalog/internal/domain"
)

// Patch holds a partial update. A nil field is left unchanged. For optional
// text fields ptr("") clears the value. Identity fields (id and languages)
// cannot be patched.
type Patch struct {
	Word                     *string
	Translation              *string
	PartOfSpeech             *domain.PartOfSpeech
	Description              *string
	Pronunciation            *string
	PronunciationAudioURL    *string
	ExampleSentenceSrc       *string
	ExampleSentenceTarget    *string
	ExampleSentenceTense     *string
	ExampleSentenceTargetURL *string
	Version                  *string
	RelatedForms             *[]domain.VocabularyBase
	IdiomaticUsages          *[]domain.IdiomaticUsage
	Noun                     *domain.NounDetails
	Verb                     *domain.VerbDetails
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p == (Patch{})
}

// Validate checks the fields that must stay non-blank when present.
// Length and format limits are enforced at the storage boundary.
func (p Patch) Validate() error {
	var errs []domain.FieldError

	if p.Word != nil && strings.TrimSpace(*p.Word) == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if p.Translation != nil && strings.TrimSpace(*p.Translation) == "" {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "required"})
	}
	if p.Version != nil && strings.TrimSpace(*p.Version) == "" {
		errs = append(errs, domain.FieldError{Field: "version", Message: "required"})
	}
	if p.PartOfSpeech != nil && !p.PartOfSpeech.IsValid() {
		errs = append(errs, domain.FieldError{Field: "partOfSpeech", Message: "invalid value"})
	}
	if p.Noun != nil && p.Verb != nil {
		errs = append(errs, domain.FieldError{Field: "verb", Message: "noun and verb details are mutually exclusive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// optional turns the patch convention for optional text into setter input.
func optional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

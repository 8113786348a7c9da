package domain

import (
	"slices"
	"time"
)

// DefaultVersion is the schema version of newly created vocabulary items.
const DefaultVersion = "1.0"

// VocabularyBase is the identity shared by vocabulary items and the related
// forms that point at them.
type VocabularyBase struct {
	ID             string
	Word           string
	Translation    string
	SourceLanguage string
	TargetLanguage string
}

// IdiomaticUsage is a phrase that uses the word idiomatically.
type IdiomaticUsage struct {
	Phrase      string
	Translation string
}

// VocabularySnapshot is the canonical plain representation of a vocabulary
// item. Wire DTOs and storage entities map to and from it; the aggregate is
// built from it and exports it.
type VocabularySnapshot struct {
	VocabularyBase

	PartOfSpeech             PartOfSpeech
	Description              *string
	Pronunciation            *string
	PronunciationAudioURL    *string
	ExampleSentenceSrc       *string
	ExampleSentenceTarget    *string
	ExampleSentenceTense     *string
	ExampleSentenceTargetURL *string
	UpdatedAt                *time.Time
	Version                  string

	RelatedForms    []VocabularyBase
	IdiomaticUsages []IdiomaticUsage
	Noun            *NounDetails
	Verb            *VerbDetails
}

// Clone returns a deep copy that shares no memory with s.
func (s VocabularySnapshot) Clone() VocabularySnapshot {
	out := s
	out.Description = cloneString(s.Description)
	out.Pronunciation = cloneString(s.Pronunciation)
	out.PronunciationAudioURL = cloneString(s.PronunciationAudioURL)
	out.ExampleSentenceSrc = cloneString(s.ExampleSentenceSrc)
	out.ExampleSentenceTarget = cloneString(s.ExampleSentenceTarget)
	out.ExampleSentenceTense = cloneString(s.ExampleSentenceTense)
	out.ExampleSentenceTargetURL = cloneString(s.ExampleSentenceTargetURL)
	if s.UpdatedAt != nil {
		t := *s.UpdatedAt
		out.UpdatedAt = &t
	}
	out.RelatedForms = slices.Clone(s.RelatedForms)
	out.IdiomaticUsages = slices.Clone(s.IdiomaticUsages)
	if s.Noun != nil {
		n := *s.Noun
		out.Noun = &n
	}
	if s.Verb != nil {
		v := s.Verb.Clone()
		out.Verb = &v
	}
	return out
}

// Equal reports structural equality over every field. Nil and empty
// collections compare equal; timestamps compare by instant.
func (s VocabularySnapshot) Equal(o VocabularySnapshot) bool {
	if s.VocabularyBase != o.VocabularyBase ||
		s.PartOfSpeech != o.PartOfSpeech ||
		s.Version != o.Version {
		return false
	}
	if !equalString(s.Description, o.Description) ||
		!equalString(s.Pronunciation, o.Pronunciation) ||
		!equalString(s.PronunciationAudioURL, o.PronunciationAudioURL) ||
		!equalString(s.ExampleSentenceSrc, o.ExampleSentenceSrc) ||
		!equalString(s.ExampleSentenceTarget, o.ExampleSentenceTarget) ||
		!equalString(s.ExampleSentenceTense, o.ExampleSentenceTense) ||
		!equalString(s.ExampleSentenceTargetURL, o.ExampleSentenceTargetURL) {
		return false
	}
	switch {
	case (s.UpdatedAt == nil) != (o.UpdatedAt == nil):
		return false
	case s.UpdatedAt != nil && !s.UpdatedAt.Equal(*o.UpdatedAt):
		return false
	}
	if !slices.Equal(s.RelatedForms, o.RelatedForms) ||
		!slices.Equal(s.IdiomaticUsages, o.IdiomaticUsages) {
		return false
	}
	switch {
	case (s.Noun == nil) != (o.Noun == nil):
		return false
	case s.Noun != nil && *s.Noun != *o.Noun:
		return false
	}
	switch {
	case (s.Verb == nil) != (o.Verb == nil):
		return false
	case s.Verb != nil && !s.Verb.Equal(*o.Verb):
		return false
	}
	return true
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

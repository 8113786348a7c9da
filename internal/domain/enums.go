package domain

import (
	"fmt"
	"strings"
)

// PartOfSpeech represents the grammatical category of a vocabulary item.
type PartOfSpeech string

const (
	PartOfSpeechNotSet       PartOfSpeech = "NotSet"
	PartOfSpeechNoun         PartOfSpeech = "Noun"
	PartOfSpeechVerb         PartOfSpeech = "Verb"
	PartOfSpeechAdjective    PartOfSpeech = "Adjective"
	PartOfSpeechAdverb       PartOfSpeech = "Adverb"
	PartOfSpeechPronoun      PartOfSpeech = "Pronoun"
	PartOfSpeechPreposition  PartOfSpeech = "Preposition"
	PartOfSpeechConjunction  PartOfSpeech = "Conjunction"
	PartOfSpeechInterjection PartOfSpeech = "Interjection"
	PartOfSpeechArticle      PartOfSpeech = "Article"
	PartOfSpeechNumeral      PartOfSpeech = "Numeral"
	PartOfSpeechPhrase       PartOfSpeech = "Phrase"
)

var partsOfSpeech = []PartOfSpeech{
	PartOfSpeechNotSet, PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective,
	PartOfSpeechAdverb, PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
	PartOfSpeechInterjection, PartOfSpeechArticle, PartOfSpeechNumeral, PartOfSpeechPhrase,
}

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	for _, v := range partsOfSpeech {
		if p == v {
			return true
		}
	}
	return false
}

// IsSet reports whether the part of speech has been committed to a category.
func (p PartOfSpeech) IsSet() bool {
	return p != "" && p != PartOfSpeechNotSet
}

// ParsePartOfSpeech matches s case-insensitively against the known names.
// An empty string parses as PartOfSpeechNotSet.
func ParsePartOfSpeech(s string) (PartOfSpeech, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PartOfSpeechNotSet, nil
	}
	for _, v := range partsOfSpeech {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return PartOfSpeechNotSet, fmt.Errorf("unknown part of speech %q", s)
}

// Genus is the grammatical gender of a noun.
type Genus string

const (
	GenusNotSet    Genus = "NotSet"
	GenusMasculine Genus = "Masculine"
	GenusFeminine  Genus = "Feminine"
	GenusNeuter    Genus = "Neuter"
)

var genera = []Genus{GenusNotSet, GenusMasculine, GenusFeminine, GenusNeuter}

func (g Genus) String() string { return string(g) }

func (g Genus) IsValid() bool {
	for _, v := range genera {
		if g == v {
			return true
		}
	}
	return false
}

// ParseGenus matches s case-insensitively. An empty string parses as GenusNotSet.
func ParseGenus(s string) (Genus, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return GenusNotSet, nil
	}
	for _, v := range genera {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return GenusNotSet, fmt.Errorf("unknown genus %q", s)
}

package domain

import (
	"strings"
)

// tenseCodes maps lower-cased German tense names to their 4-letter id codes.
var tenseCodes = map[string]string{
	"präsens":         "pres",
	"praesens":        "pres",
	"präteritum":      "past",
	"praeteritum":     "past",
	"perfekt":         "perf",
	"plusquamperfekt": "plup",
	"futur i":         "fut1",
	"futur ii":        "fut2",
}

// personCodes maps lower-cased German personal pronouns to their id codes.
var personCodes = map[string]string{
	"ich":       "ich",
	"du":        "du",
	"er/sie/es": "ers",
	"wir":       "wir",
	"ihr":       "ihr",
	"sie":       "sie",
}

// DeriveID builds the canonical, URL-safe identifier of a vocabulary item.
//
// Conjugated verb forms (not the base form, with infinitiv, person and tense)
// produce "{src}-{infinitiv}-{tgt}-{tense}-{person}"; everything else produces
// "{src}-{word}-{tgt}". The function is pure: identical inputs always give the
// identical id.
func DeriveID(s VocabularySnapshot) string {
	source := strings.ToLower(s.SourceLanguage)
	target := strings.ToLower(s.TargetLanguage)

	if v := s.Verb; s.PartOfSpeech == PartOfSpeechVerb && v != nil && v.IsConjugatedForm() {
		infinitiv := NormalizeIDSegment(v.Infinitiv)
		tense, tenseOK := TenseCode(v.Tense)
		person := PersonCode(v.Person)
		if tenseOK {
			return source + "-" + infinitiv + "-" + target + "-" + tense + "-" + person
		}
		return source + "-" + infinitiv + "-" + target + "-" +
			NormalizeIDSegment(v.Tense) + "-" + personFallback(v.Person)
	}

	return source + "-" + NormalizeIDSegment(s.Word) + "-" + target
}

// TenseCode returns the 4-letter code of a tense name and whether it is known.
func TenseCode(tense string) (string, bool) {
	code, ok := tenseCodes[strings.ToLower(strings.TrimSpace(tense))]
	return code, ok
}

// PersonCode returns the short code of a person. Unknown persons fall back to
// the normalized input with '/' replaced by '-'.
func PersonCode(person string) string {
	if code, ok := personCodes[strings.ToLower(strings.TrimSpace(person))]; ok {
		return code
	}
	return personFallback(person)
}

func personFallback(person string) string {
	return NormalizeIDSegment(strings.ReplaceAll(person, "/", "-"))
}

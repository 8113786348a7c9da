package domain

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

// ConjugationDetails is one cell of a conjugation table: the surface form and
// an optional reference to the vocabulary item that describes it.
type ConjugationDetails struct {
	Form      string
	VocObjRef string
}

// Conjugations maps tense name → person name → conjugated form.
type Conjugations map[string]map[string]ConjugationDetails

// Clone returns a deep copy. A nil table stays nil.
func (c Conjugations) Clone() Conjugations {
	if c == nil {
		return nil
	}
	out := make(Conjugations, len(c))
	for tense, persons := range c {
		if persons == nil {
			out[tense] = nil
			continue
		}
		cp := make(map[string]ConjugationDetails, len(persons))
		for person, d := range persons {
			cp[person] = d
		}
		out[tense] = cp
	}
	return out
}

// Equal reports structural equality. Nil and empty tables are equal.
func (c Conjugations) Equal(other Conjugations) bool {
	if len(c) != len(other) {
		return false
	}
	for tense, persons := range c {
		otherPersons, ok := other[tense]
		if !ok || len(persons) != len(otherPersons) {
			return false
		}
		for person, d := range persons {
			if od, ok := otherPersons[person]; !ok || od != d {
				return false
			}
		}
	}
	return true
}

// VerbDetails holds the grammar of a verb. A base form (infinitive) carries the
// conjugation table; a conjugated form carries its person/tense and a
// reference back to the base form.
type VerbDetails struct {
	IsBaseForm   bool
	BaseFormRef  string
	Person       string
	Infinitiv    string
	Tense        string
	Conjugations Conjugations
}

// NewBaseVerb builds validated details of an infinitive with its conjugation table.
func NewBaseVerb(infinitiv string, conjugations Conjugations) (VerbDetails, error) {
	v := VerbDetails{
		IsBaseForm:   true,
		Infinitiv:    infinitiv,
		Conjugations: conjugations.Clone(),
	}
	if errs := v.Validate("verb"); len(errs) > 0 {
		return VerbDetails{}, NewValidationErrors(errs)
	}
	return v, nil
}

// NewConjugatedVerb builds validated details of a conjugated form.
func NewConjugatedVerb(infinitiv, person, tense, baseFormRef string) (VerbDetails, error) {
	v := VerbDetails{
		Infinitiv:   infinitiv,
		Person:      person,
		Tense:       tense,
		BaseFormRef: baseFormRef,
	}
	if errs := v.Validate("verb"); len(errs) > 0 {
		return VerbDetails{}, NewValidationErrors(errs)
	}
	return v, nil
}

// IsConjugatedForm reports whether the details describe a conjugated form
// with enough information to derive a conjugation-specific id.
func (v VerbDetails) IsConjugatedForm() bool {
	return !v.IsBaseForm &&
		strings.TrimSpace(v.Infinitiv) != "" &&
		strings.TrimSpace(v.Person) != "" &&
		strings.TrimSpace(v.Tense) != ""
}

// Clone returns a deep copy.
func (v VerbDetails) Clone() VerbDetails {
	v.Conjugations = v.Conjugations.Clone()
	return v
}

// Equal reports structural equality.
func (v VerbDetails) Equal(other VerbDetails) bool {
	return v.IsBaseForm == other.IsBaseForm &&
		v.BaseFormRef == other.BaseFormRef &&
		v.Person == other.Person &&
		v.Infinitiv == other.Infinitiv &&
		v.Tense == other.Tense &&
		v.Conjugations.Equal(other.Conjugations)
}

// Validate checks lengths and form rules and returns every violation.
func (v VerbDetails) Validate(prefix string) []FieldError {
	var errs []FieldError

	if utf8.RuneCountInString(v.Infinitiv) > MaxInfinitivLength {
		errs = append(errs, FieldError{Field: prefix + ".infinitiv", Message: "too long (max 100)"})
	}
	if utf8.RuneCountInString(v.Person) > MaxPersonLength {
		errs = append(errs, FieldError{Field: prefix + ".person", Message: "too long (max 50)"})
	}
	if utf8.RuneCountInString(v.Tense) > MaxTenseLength {
		errs = append(errs, FieldError{Field: prefix + ".tense", Message: "too long (max 50)"})
	}
	for _, tense := range slices.Sorted(maps.Keys(v.Conjugations)) {
		persons := v.Conjugations[tense]
		for _, person := range slices.Sorted(maps.Keys(persons)) {
			d := persons[person]
			field := prefix + ".conjugations." + tense + "." + person + ".form"
			if d.Form == "" {
				errs = append(errs, FieldError{Field: field, Message: "required"})
			} else if utf8.RuneCountInString(d.Form) > MaxFormLength {
				errs = append(errs, FieldError{Field: field, Message: "too long (max 100)"})
			}
		}
	}

	return append(errs, v.FormErrors(prefix)...)
}

// FormErrors checks only the base-form/conjugated-form rules, leaving field
// lengths to the caller.
func (v VerbDetails) FormErrors(prefix string) []FieldError {
	var errs []FieldError

	if v.IsBaseForm {
		if v.BaseFormRef != "" {
			errs = append(errs, FieldError{Field: prefix + ".baseFormRef", Message: "must be empty for a base form"})
		}
		if v.Person != "" || v.Tense != "" {
			errs = append(errs, FieldError{Field: prefix + ".person", Message: "person and tense are only set on conjugated forms"})
		}
	} else if len(v.Conjugations) > 0 {
		errs = append(errs, FieldError{Field: prefix + ".conjugations", Message: "only allowed on a base form"})
	}

	for _, tense := range slices.Sorted(maps.Keys(v.Conjugations)) {
		if strings.TrimSpace(tense) == "" {
			errs = append(errs, FieldError{Field: prefix + ".conjugations", Message: "empty tense name"})
		}
		for _, person := range slices.Sorted(maps.Keys(v.Conjugations[tense])) {
			if strings.TrimSpace(person) == "" {
				errs = append(errs, FieldError{Field: prefix + ".conjugations." + tense, Message: "empty person name"})
			}
		}
	}

	return errs
}

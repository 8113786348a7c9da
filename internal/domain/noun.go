package domain

import "unicode/utf8"

// Length limits shared by the detail value objects and the storage validator.
const (
	MaxArticleLength   = 100
	MaxInfinitivLength = 100
	MaxPersonLength    = 50
	MaxTenseLength     = 50
	MaxFormLength      = 100
)

// NounDetails holds the grammar of a noun. It is a value type: copies are
// independent and two values are equal when all fields are equal.
type NounDetails struct {
	DeterminedArticle   string
	Genus               Genus
	UndeterminedArticle string
}

// NewNounDetails builds validated noun details. An empty genus becomes
// GenusNotSet.
func NewNounDetails(determinedArticle string, genus Genus, undeterminedArticle string) (NounDetails, error) {
	n := NounDetails{
		DeterminedArticle:   determinedArticle,
		Genus:               genus,
		UndeterminedArticle: undeterminedArticle,
	}.normalized()
	if errs := n.Validate("noun"); len(errs) > 0 {
		return NounDetails{}, NewValidationErrors(errs)
	}
	return n, nil
}

// Validate checks the noun details and returns every violation, with field
// names prefixed by prefix.
func (n NounDetails) Validate(prefix string) []FieldError {
	var errs []FieldError

	if n.DeterminedArticle == "" {
		errs = append(errs, FieldError{Field: prefix + ".determinedArticle", Message: "required"})
	} else if utf8.RuneCountInString(n.DeterminedArticle) > MaxArticleLength {
		errs = append(errs, FieldError{Field: prefix + ".determinedArticle", Message: "too long (max 100)"})
	}
	if utf8.RuneCountInString(n.UndeterminedArticle) > MaxArticleLength {
		errs = append(errs, FieldError{Field: prefix + ".undeterminedArticle", Message: "too long (max 100)"})
	}
	if n.Genus != "" && !n.Genus.IsValid() {
		errs = append(errs, FieldError{Field: prefix + ".genus", Message: "invalid value"})
	}

	return errs
}

func (n NounDetails) normalized() NounDetails {
	if n.Genus == "" {
		n.Genus = GenusNotSet
	}
	return n
}

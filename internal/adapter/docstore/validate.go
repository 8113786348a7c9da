package docstore

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/vocab-catalog/internal/domain"
)

// entityValidate is shared by all callers; validator.Validate caches struct
// metadata and is safe for concurrent use.
var entityValidate *validator.Validate

func init() {
	entityValidate = validator.New()

	entityValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = entityValidate.RegisterValidation("partofspeech", validatePartOfSpeech)
	_ = entityValidate.RegisterValidation("genus", validateGenus)
}

func validatePartOfSpeech(fl validator.FieldLevel) bool {
	pos := domain.PartOfSpeech(fl.Field().String())
	return pos == "" || pos.IsValid()
}

func validateGenus(fl validator.FieldLevel) bool {
	g := domain.Genus(fl.Field().String())
	return g == "" || g.IsValid()
}

// Validate checks every constraint of the entity and returns all violations
// as one *domain.ValidationError, or nil.
func (e *Entity) Validate() error {
	var errs []domain.FieldError

	if err := entityValidate.Struct(e); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			errs = append(errs, domain.FieldError{
				Field:   fieldPath(fe.Namespace()),
				Message: fieldMessage(fe),
			})
		}
	}

	if e.Noun != nil && e.Verb != nil {
		errs = append(errs, domain.FieldError{Field: "verb", Message: "noun and verb details are mutually exclusive"})
	}
	if e.Verb != nil {
		errs = append(errs, verbDetails(e.Verb).FormErrors("verb")...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// fieldPath strips the root struct name from a validator namespace:
// "Entity.noun.determinedArticle" becomes "noun.determinedArticle".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		return "too long (max " + fe.Param() + ")"
	case "url":
		return "must be a valid URL"
	default:
		return "invalid value"
	}
}

package vocabulary

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/heartmarshall/vocab-catalog/internal/domain"
)

// Get loads a vocabulary item by its languages and id.
func (s *Service) Get(ctx context.Context, source, target, id string) (v *domain.Vocabulary, err error) {
	ctx, span := startSpan(ctx, "Get",
		attribute.String("vocabulary.partition_key", domain.PartitionKey(source, target)),
		attribute.String("vocabulary.id", id),
	)
	defer func() {
		observe("get", err)
		endSpan(span, err)
	}()

	return s.load(ctx, source, target, id)
}

func (s *Service) load(ctx context.Context, source, target, id string) (*domain.Vocabulary, error) {
	if err := validateKey(source, target, id); err != nil {
		return nil, err
	}

	stored, err := s.store.GetByID(ctx, source, target, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "load vocabulary",
				slog.String("partition_key", domain.PartitionKey(source, target)),
				slog.String("id", id),
				slog.String("error", err.Error()),
			)
		}
		return nil, err
	}
	return s.attach(stored)
}

func validateKey(source, target, id string) error {
	var errs []domain.FieldError
	if strings.TrimSpace(source) == "" {
		errs = append(errs, domain.FieldError{Field: "sourceLanguage", Message: "required"})
	}
	if strings.TrimSpace(target) == "" {
		errs = append(errs, domain.FieldError{Field: "targetLanguage", Message: "required"})
	}
	if strings.TrimSpace(id) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

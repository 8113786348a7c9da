package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/heartmarshall/vocab-catalog/internal/domain"
)

// Create builds a new aggregate from the snapshot and saves every field.
// A blank id is derived from the languages and the word (or the conjugated
// verb form). The stored form is returned ready for further updates.
func (s *Service) Create(ctx context.Context, snap domain.VocabularySnapshot) (v *domain.Vocabulary, err error) {
	ctx, span := startSpan(ctx, "Create",
		attribute.String("vocabulary.source", snap.SourceLanguage),
		attribute.String("vocabulary.target", snap.TargetLanguage),
	)
	defer func() {
		observe("create", err)
		endSpan(span, err)
	}()

	item, err := s.Build(snap)
	if err != nil {
		s.log.WarnContext(ctx, "build vocabulary",
			slog.String("word", snap.Word),
			slog.String("partition_key", domain.PartitionKey(snap.SourceLanguage, snap.TargetLanguage)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	item.MarkDirty(domain.AllFields)

	saved, err := s.save(ctx, item)
	if err != nil {
		s.log.ErrorContext(ctx, "create vocabulary",
			slog.String("word", snap.Word),
			slog.String("partition_key", item.PartitionKey()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.log.InfoContext(ctx, "vocabulary created",
		slog.String("id", saved.ID()),
		slog.String("partition_key", saved.PartitionKey()),
	)
	return saved, nil
}

func (s *Service) save(ctx context.Context, item *domain.Vocabulary) (*domain.Vocabulary, error) {
	start := time.Now()
	saved, err := item.Save(ctx)
	saveDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	if saved == item {
		return item, nil
	}

	out, err := s.attach(saved)
	if err != nil {
		return nil, fmt.Errorf("rehydrate vocabulary %s: %w", saved.ID(), err)
	}
	return out, nil
}

package vocabulary

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/heartmarshall/vocab-catalog/internal/domain"
)

// Update applies a partial update to a stored item. Only the fields present
// in the patch pass through the aggregate's setters, so only those are
// marked changed. An empty patch returns the stored item without a write.
func (s *Service) Update(ctx context.Context, source, target, id string, patch Patch) (v *domain.Vocabulary, err error) {
	ctx, span := startSpan(ctx, "Update",
		attribute.String("vocabulary.partition_key", domain.PartitionKey(source, target)),
		attribute.String("vocabulary.id", id),
	)
	defer func() {
		if err == nil && patch.IsEmpty() {
			operationsTotal.WithLabelValues("update", "noop").Inc()
		} else {
			observe("update", err)
		}
		endSpan(span, err)
	}()

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	item, err := s.load(ctx, source, target, id)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return item, nil
	}

	if err := apply(item, patch); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("vocabulary.changed", joinFields(item.ChangedFields())))

	saved, err := s.save(ctx, item)
	if err != nil {
		s.log.ErrorContext(ctx, "update vocabulary",
			slog.String("id", id),
			slog.String("partition_key", item.PartitionKey()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.log.InfoContext(ctx, "vocabulary updated",
		slog.String("id", saved.ID()),
		slog.String("partition_key", saved.PartitionKey()),
	)
	return saved, nil
}

func apply(v *domain.Vocabulary, p Patch) error {
	if p.Word != nil {
		v.SetWord(*p.Word)
	}
	if p.Translation != nil {
		v.SetTranslation(*p.Translation)
	}
	if p.PartOfSpeech != nil {
		if err := v.SetPartOfSpeech(*p.PartOfSpeech); err != nil {
			return err
		}
	}
	if p.Description != nil {
		v.SetDescription(optional(p.Description))
	}
	if p.Pronunciation != nil {
		v.SetPronunciation(optional(p.Pronunciation))
	}
	if p.PronunciationAudioURL != nil {
		v.SetPronunciationAudioURL(optional(p.PronunciationAudioURL))
	}
	if p.ExampleSentenceSrc != nil {
		v.SetExampleSentenceSrc(optional(p.ExampleSentenceSrc))
	}
	if p.ExampleSentenceTarget != nil {
		v.SetExampleSentenceTarget(optional(p.ExampleSentenceTarget))
	}
	if p.ExampleSentenceTense != nil {
		v.SetExampleSentenceTense(optional(p.ExampleSentenceTense))
	}
	if p.ExampleSentenceTargetURL != nil {
		v.SetExampleSentenceTargetURL(optional(p.ExampleSentenceTargetURL))
	}
	if p.Version != nil {
		v.SetVersion(*p.Version)
	}
	if p.RelatedForms != nil {
		v.SetRelatedForms(*p.RelatedForms)
	}
	if p.IdiomaticUsages != nil {
		v.SetIdiomaticUsages(*p.IdiomaticUsages)
	}
	if p.Noun != nil {
		if err := v.SetNoun(*p.Noun); err != nil {
			return err
		}
	}
	if p.Verb != nil {
		if err := v.SetVerb(*p.Verb); err != nil {
			return err
		}
	}
	return nil
}

func joinFields(fields []domain.Field) string {
	var mask domain.Field
	for _, f := range fields {
		mask |= f
	}
	return mask.String()
}

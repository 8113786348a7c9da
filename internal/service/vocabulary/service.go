package vocabulary

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/vocab-catalog/internal/domain"
)

var tracer = otel.Tracer("vocab-catalog.vocabulary")

type vocabularyStore interface {
	Save(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error)
	GetByID(ctx context.Context, source, target, id string) (*domain.Vocabulary, error)
}

// Option configures the Service.
type Option func(*Service)

// WithClock overrides the clock passed to every aggregate the service builds.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service provides create, read and partial update of vocabulary items.
type Service struct {
	store vocabularyStore
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new vocabulary service.
func NewService(log *slog.Logger, store vocabularyStore, opts ...Option) *Service {
	s := &Service{
		store: store,
		log:   log.With("service", "vocabulary"),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build is the aggregate factory: it constructs a Vocabulary from a snapshot
// with the service's store attached as Saver. The result has no unsaved
// changes.
func (s *Service) Build(snap domain.VocabularySnapshot) (*domain.Vocabulary, error) {
	return domain.NewVocabularyFrom(snap, domain.WithSaver(s.store), domain.WithClock(s.now))
}

// attach rebinds a stored aggregate, which comes back without a saver.
func (s *Service) attach(v *domain.Vocabulary) (*domain.Vocabulary, error) {
	return s.Build(v.Snapshot())
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, "vocabulary."+name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

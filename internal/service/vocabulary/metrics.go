package vocabulary

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/vocab-catalog/internal/domain"
)

var (
	// operationsTotal counts service operations.
	// Labels: op (create, get, update), outcome (ok, noop, not_found, invalid, invalid_state, error)
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vocab_catalog",
		Subsystem: "vocabulary",
		Name:      "operations_total",
		Help:      "Vocabulary service operations by outcome",
	}, []string{"op", "outcome"})

	saveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "vocab_catalog",
		Subsystem: "vocabulary",
		Name:      "save_duration_seconds",
		Help:      "Duration of vocabulary saves including validation and storage",
		Buckets:   prometheus.DefBuckets,
	})
)

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrInvalidState):
		return "invalid_state"
	default:
		return "error"
	}
}

func observe(op string, err error) {
	operationsTotal.WithLabelValues(op, outcome(err)).Inc()
}

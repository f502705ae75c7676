// Package observability holds the in-process Prometheus collectors for workout processing.
package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"example.com/training/internal/domain"
)

// Error reasons used as label values.
const (
	ReasonUnknownType     = "unknown_type"
	ReasonArity           = "arity"
	ReasonInvalidDuration = "invalid_duration"
	ReasonNotImplemented  = "not_implemented"
	ReasonOther           = "other"
)

// Metrics bundles the collectors updated while processing sensor packages.
type Metrics struct {
	summaries *prometheus.CounterVec
	calories  *prometheus.CounterVec
	errors    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		summaries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "training",
			Name:      "summaries_total",
			Help:      "Number of workout summaries produced, by workout type.",
		}, []string{"workout_type"}),
		calories: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "training",
			Name:      "calories_burned_total",
			Help:      "Sum of calories reported in workout summaries, by workout type.",
		}, []string{"workout_type"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "training",
			Name:      "package_errors_total",
			Help:      "Number of sensor packages rejected, by reason.",
		}, []string{"reason"}),
	}
	for _, c := range []prometheus.Collector{m.summaries, m.calories, m.errors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RecordSummary accounts for a produced summary.
func (m *Metrics) RecordSummary(s domain.Summary) {
	if m == nil {
		return
	}
	m.summaries.WithLabelValues(s.TrainingType).Inc()
	if s.Calories > 0 {
		m.calories.WithLabelValues(s.TrainingType).Add(s.Calories)
	}
}

// RecordError accounts for a rejected package.
func (m *Metrics) RecordError(err error) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(Reason(err)).Inc()
}

// Reason maps an error to its label value.
func Reason(err error) string {
	var (
		unknown *domain.UnknownWorkoutTypeError
		arity   *domain.ArityError
		notImpl *domain.NotImplementedError
	)
	switch {
	case errors.As(err, &unknown):
		return ReasonUnknownType
	case errors.As(err, &arity):
		return ReasonArity
	case errors.Is(err, domain.ErrInvalidDuration):
		return ReasonInvalidDuration
	case errors.As(err, &notImpl):
		return ReasonNotImplemented
	default:
		return ReasonOther
	}
}

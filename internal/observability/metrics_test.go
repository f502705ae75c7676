package observability

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"example.com/training/internal/domain"
)

func TestRecordSummary(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	m.RecordSummary(domain.Summary{TrainingType: "Running", Calories: 797.805})
	m.RecordSummary(domain.Summary{TrainingType: "Running", Calories: 100})

	require.Equal(t, 2.0, testutil.ToFloat64(m.summaries.WithLabelValues("Running")))
	require.InDelta(t, 897.805, testutil.ToFloat64(m.calories.WithLabelValues("Running")), 1e-9)
	require.Equal(t, 0.0, testutil.ToFloat64(m.summaries.WithLabelValues("Swimming")))
}

func TestRecordErrorReasons(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	m.RecordError(&domain.UnknownWorkoutTypeError{Code: "XYZ"})
	m.RecordError(fmt.Errorf("package 2: %w", &domain.ArityError{Code: "RUN", Want: 3, Got: 2}))
	m.RecordError(fmt.Errorf("workout RUN: %w", domain.ErrInvalidDuration))
	m.RecordError(&domain.NotImplementedError{Type: "Training"})
	m.RecordError(errors.New("write failed"))

	families, err := reg.Gather()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "training_package_errors_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			got[reasonLabel(metric)] = metric.GetCounter().GetValue()
		}
	}
	require.Equal(t, map[string]float64{
		ReasonUnknownType:     1,
		ReasonArity:           1,
		ReasonInvalidDuration: 1,
		ReasonNotImplemented:  1,
		ReasonOther:           1,
	}, got)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.RecordSummary(domain.Summary{TrainingType: "Running"})
	m.RecordError(errors.New("boom"))
}

func TestNewMetricsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	require.Error(t, err)
}

func reasonLabel(metric *dto.Metric) string {
	for _, label := range metric.GetLabel() {
		if label.GetName() == "reason" {
			return label.GetValue()
		}
	}
	return ""
}

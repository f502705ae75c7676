// Package pipeline turns batches of sensor packages into printed workout summaries.
package pipeline

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"example.com/training/internal/domain"
	"example.com/training/internal/observability"
)

// Package is a raw sensor reading: a workout code and its positional values.
type Package struct {
	Code string
	Data []float64
}

// Source yields packages in the order they must be reported.
type Source interface {
	Next() (Package, bool)
}

// Handler receives every successfully summarised workout.
type Handler interface {
	Handle(seq int, workout domain.Workout, summary domain.Summary) error
}

// Option configures optional behaviour for the Processor.
type Option func(*Processor)

// WithLogger overrides the logger used to report progress and errors.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithMetrics attaches collectors updated for every package.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(p *Processor) {
		p.metrics = metrics
	}
}

// Processor reads packages from a Source, builds their summaries and hands them to a Handler.
type Processor struct {
	source  Source
	handler Handler
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewProcessor constructs a Processor with the provided source and handler.
func NewProcessor(source Source, handler Handler, opts ...Option) *Processor {
	p := &Processor{
		source:  source,
		handler: handler,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes every package in order and returns how many were handled.
// It stops at the first failing package.
func (p *Processor) Run() (int, error) {
	logger := p.logger.With(zap.String("run_id", uuid.NewString()))
	logger.Debug("processing started")

	processed := 0
	for {
		pkg, ok := p.source.Next()
		if !ok {
			break
		}
		if err := p.process(logger, processed, pkg); err != nil {
			p.metrics.RecordError(err)
			logger.Debug("package rejected",
				zap.Int("seq", processed),
				zap.String("code", pkg.Code),
				zap.Float64s("data", pkg.Data),
				zap.Error(err))
			return processed, errors.Wrapf(err, "package %d (%s)", processed, pkg.Code)
		}
		processed++
	}

	logger.Info("processing finished", zap.Int("processed", processed))
	return processed, nil
}

func (p *Processor) process(logger *zap.Logger, seq int, pkg Package) error {
	workout, err := domain.ReadPackage(pkg.Code, pkg.Data)
	if err != nil {
		return err
	}
	summary, err := workout.Summary()
	if err != nil {
		return err
	}
	if err := p.handler.Handle(seq, workout, summary); err != nil {
		return errors.Wrap(err, "handle summary")
	}
	p.metrics.RecordSummary(summary)
	logger.Debug("summary produced",
		zap.Int("seq", seq),
		zap.String("workout_type", summary.TrainingType),
		zap.Float64("calories", summary.Calories))
	return nil
}

// PrintHandler writes every summary as one line to an io.Writer.
type PrintHandler struct {
	out    io.Writer
	locale domain.Locale
}

// NewPrintHandler builds a PrintHandler rendering labels in the given locale.
func NewPrintHandler(out io.Writer, locale domain.Locale) *PrintHandler {
	return &PrintHandler{out: out, locale: locale}
}

// Handle prints the summary line.
func (h *PrintHandler) Handle(_ int, _ domain.Workout, summary domain.Summary) error {
	_, err := fmt.Fprintln(h.out, summary.MessageIn(h.locale))
	return err
}

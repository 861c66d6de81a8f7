// Package report prints training summaries for a batch of sensor packages.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Yandex-Practicum/go-ftracker/internal/sensor"
	"github.com/Yandex-Practicum/go-ftracker/internal/training"
)

// Stats counts what happened to the packages of a single Process call.
type Stats struct {
	Processed int
	Failed    int
}

// PackageError annotates a failure with the position and code of the package.
type PackageError struct {
	Index int
	Code  string
	Err   error
}

func (e *PackageError) Error() string {
	return fmt.Sprintf("package #%d (%s): %v", e.Index, e.Code, e.Err)
}

func (e *PackageError) Unwrap() error {
	return e.Err
}

// Processor writes one summary line per sensor package.
type Processor struct {
	out        io.Writer
	logger     *slog.Logger
	skipFailed bool
}

// Option configures a Processor.
type Option = func(p *Processor)

// WithSkipInvalid makes Process log failed packages and continue with the next one
// instead of stopping at the first failure.
func WithSkipInvalid(skip bool) Option {
	return func(p *Processor) {
		p.skipFailed = skip
	}
}

// NewProcessor returns a processor writing one summary line per package to out.
func NewProcessor(out io.Writer, logger *slog.Logger, opts ...Option) *Processor {
	p := &Processor{
		out:    out,
		logger: logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process reads every package, computes its summary and writes it.
func (p *Processor) Process(ctx context.Context, packages []sensor.Package) (Stats, error) {
	var (
		stats Stats
		errs  []error
	)

	for i, pkg := range packages {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		err := p.processOne(ctx, pkg)
		if err == nil {
			stats.Processed++
			continue
		}

		stats.Failed++
		err = &PackageError{Index: i, Code: pkg.Code, Err: err}
		if !p.skipFailed {
			return stats, err
		}
		p.logger.ErrorContext(ctx, "skipping package", slog.Int("index", i), slog.String("code", pkg.Code),
			slog.Any("error", err))
		errs = append(errs, err)
	}

	return stats, errors.Join(errs...)
}

func (p *Processor) processOne(ctx context.Context, pkg sensor.Package) error {
	t, err := pkg.Read()
	if err != nil {
		return err
	}

	msg := training.Info(t)
	p.logger.DebugContext(ctx, "training computed",
		slog.String("type", msg.TrainingType),
		slog.Float64("duration", msg.Duration),
		slog.Float64("distance", msg.Distance),
		slog.Float64("speed", msg.Speed),
		slog.Float64("calories", msg.Calories),
	)

	if _, err = fmt.Fprintln(p.out, msg.String()); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// Package converter exposes the conversion engine as an injectable service
// with logging, tracing and metrics.
package converter

import (
	"context"
	"converter/internal/config"
	"converter/pkg/conversion"
	"converter/pkg/domain"
	"converter/pkg/logger"
	"converter/pkg/serrors"
	"errors"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

const instrumentationName = "converter/internal/converter"

const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"

	unknownCategory domain.Category = "unknown"
)

// Options configure conversion behavior.
type Options struct {
	// Strict rejects unknown units and uncovered pairs. When false, the
	// engine falls back to identity scaling.
	Strict bool
}

// NewOptions constructs an Options value from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Strict: !cfg.Converter.Lenient,
	}
}

// Deps are the telemetry providers the service reports to. Nil providers
// disable the corresponding signal.
type Deps struct {
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

type converter struct {
	engine      conversion.Engine
	tracer      trace.Tracer
	conversions metric.Int64Counter
}

// New creates a Converter configured by opts.
func New(deps Deps, opts Options) (Converter, error) {
	mp := deps.MeterProvider
	if mp == nil {
		mp = metricnoop.NewMeterProvider()
	}
	tp := deps.TracerProvider
	if tp == nil {
		tp = tracenoop.NewTracerProvider()
	}

	counter, err := mp.Meter(instrumentationName).Int64Counter("converter.conversions",
		metric.WithDescription("Number of conversion requests by category and outcome."),
		metric.WithUnit("{conversion}"))
	if err != nil {
		return nil, fmt.Errorf("could not create conversions counter: %w", err)
	}

	var engineOpts []conversion.Option
	if !opts.Strict {
		engineOpts = append(engineOpts, conversion.Lenient())
	}

	return &converter{
		engine:      conversion.New(engineOpts...),
		tracer:      tp.Tracer(instrumentationName),
		conversions: counter,
	}, nil
}

// Convert implements Converter.
func (c *converter) Convert(ctx context.Context, req domain.Conversion) (*domain.Result, error) {
	ctx, span := c.tracer.Start(ctx, "Converter.Convert", trace.WithAttributes(
		attribute.String("conversion.category", string(req.Category)),
		attribute.String("conversion.from", string(req.From)),
		attribute.String("conversion.to", string(req.To)),
	))
	defer span.End()

	res, err := c.convert(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.record(ctx, metricCategory(req.Category), outcomeRejected)
		logger.Debug(ctx, "conversion rejected",
			zap.String("category", string(req.Category)),
			zap.String("from", string(req.From)),
			zap.String("to", string(req.To)),
			zap.Error(err))

		return nil, err
	}

	c.record(ctx, res.Category, outcomeOK)
	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "converted",
			zap.String("category", string(res.Category)),
			zap.Float64("value", res.Value),
			zap.String("from", string(res.From)),
			zap.String("to", string(res.To)),
			zap.Float64("result", res.Result))
	}

	return res, nil
}

func (c *converter) convert(ctx context.Context, req domain.Conversion) (*domain.Result, error) {
	category, err := domain.ParseCategory(string(req.Category))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	req.Category = category

	if req.From, err = c.resolveUnit(ctx, category, req.From); err != nil {
		return nil, err
	}
	if req.To, err = c.resolveUnit(ctx, category, req.To); err != nil {
		return nil, err
	}

	res, err := c.engine.Run(req)
	if err != nil {
		return nil, fmt.Errorf("could not convert %s: %w", category, err)
	}
	if math.IsInf(res.Result, 0) || math.IsNaN(res.Result) {
		return nil, serrors.With(serrors.ErrUnprocessable, "result is out of range")
	}

	return &res, nil
}

// resolveUnit canonicalises a unit name. An empty name selects the category's
// default unit. A lenient engine keeps names it does not recognise so the
// engine can apply its fallback.
func (c *converter) resolveUnit(ctx context.Context, category domain.Category, u domain.Unit) (domain.Unit, error) {
	if u == "" {
		return c.engine.DefaultUnit(category) //nolint: wrapcheck
	}

	resolved, err := domain.ParseUnit(category, string(u))
	if err == nil {
		return resolved, nil
	}
	if c.engine.IsLenient() && errors.Is(err, domain.ErrUnknownUnit) {
		logger.Warn(ctx, "unknown unit, falling back to identity scale",
			zap.String("category", string(category)),
			zap.String("unit", string(u)))

		return u, nil
	}

	return "", err //nolint: wrapcheck
}

// metricCategory keeps the category label bounded to the enumerated
// categories.
func metricCategory(name domain.Category) domain.Category {
	category, err := domain.ParseCategory(string(name))
	if err != nil {
		return unknownCategory
	}

	return category
}

func (c *converter) record(ctx context.Context, category domain.Category, outcome string) {
	c.conversions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("category", string(category)),
		attribute.String("outcome", outcome),
	))
}

// Catalog implements Converter.
func (c *converter) Catalog(ctx context.Context) []domain.CategoryInfo {
	categories := c.engine.Categories()
	out := make([]domain.CategoryInfo, 0, len(categories))
	for _, category := range categories {
		info, err := c.engine.Describe(category)
		if err != nil {
			// enumerated categories always describe
			logger.Error(ctx, "could not describe category", zap.Error(err))

			continue
		}
		out = append(out, info)
	}

	return out
}

// IsClientError reports whether err was caused by the request rather than by
// the service.
func IsClientError(err error) bool {
	switch serrors.KindOf(err) {
	case domain.ErrUnknownCategory, domain.ErrUnknownUnit, domain.ErrUnsupportedConversion,
		serrors.ErrBadRequest, serrors.ErrUnprocessable:
		return true
	default:
		return false
	}
}

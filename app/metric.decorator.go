package app

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instrumentationName is used for the meter and the tracer of all use cases.
const instrumentationName = "userposts.application"

func NewMeteredRequest[Req any, Res any](meterProvider metric.MeterProvider, req Request[Req, Res]) Request[Req, Res] {
	return newMetered(meterProvider, req)
}

func NewMeteredCommand[C any](meterProvider metric.MeterProvider, cmd Command[C]) Command[C] {
	return decorateCommand(cmd, func(req Request[C, struct{}]) Request[C, struct{}] {
		return newMetered(meterProvider, req)
	})
}

func NewMeteredQuery[Q any, Res any](meterProvider metric.MeterProvider, query Query[Q, Res]) Query[Q, Res] {
	return newMetered[Q, Res](meterProvider, query)
}

func newMetered[In any, Out any](meterProvider metric.MeterProvider, base Request[In, Out]) *meteringDecorator[In, Out] {
	meter := meterProvider.Meter(instrumentationName)

	counter, _ := meter.Int64Counter("usecases",
		metric.WithDescription("number of executed use cases"),
	)
	duration, _ := meter.Float64Histogram("usecases_duration_seconds",
		metric.WithDescription("duration of executed use cases"),
		metric.WithUnit("s"),
	)

	return &meteringDecorator[In, Out]{
		counter:  counter,
		duration: duration,
		base:     base,
	}
}

type meteringDecorator[In any, Out any] struct {
	counter  metric.Int64Counter
	duration metric.Float64Histogram
	base     Request[In, Out]
}

func (d *meteringDecorator[In, Out]) H(ctx context.Context, in In) (Out, error) { //nolint:ireturn // valid use of generics
	start := time.Now()

	out, err := d.base.H(ctx, in)

	status := "success"
	if err != nil {
		status = "failure"
	}

	opt := metric.WithAttributes(
		attribute.String("command", commandName(in)),
		attribute.String("status", status),
	)

	d.counter.Add(ctx, 1, opt)
	d.duration.Record(ctx, time.Since(start).Seconds(), opt)

	return out, err //nolint:wrapcheck // decorate but not change anything
}

package alog_test

import (
	"context"
	"errors"
	"log/slog"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

const applicationMsg = "application message"

var (
	ctx          = context.Background()
	errSomething = errors.New("some error")
	testTime     = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

// recordingTracer returns a tracer whose spans end up in the returned recorder.
func recordingTracer() (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	return provider, recorder
}

type failingHandler struct{}

var _ slog.Handler = (*failingHandler)(nil)

func (f failingHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (f failingHandler) Handle(_ context.Context, _ slog.Record) error {
	return errSomething
}

func (f failingHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return f
}

func (f failingHandler) WithGroup(_ string) slog.Handler {
	return f
}

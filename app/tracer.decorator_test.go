package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-arrower/userposts/app"
)

func TestTracingDecorator_H(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		provider, recorder := recordingTracer()

		var inner trace.SpanContext
		base := app.TestRequestHandler[request, response](func(ctx context.Context, _ request) (response, error) {
			inner = trace.SpanContextFromContext(ctx)

			return response{}, nil
		})

		_, err := app.NewTracedRequest(provider, base).H(ctx, validRequest)
		assert.NoError(t, err)

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, "usecase", spans[0].Name())
		assert.Equal(t, codes.Unset, spans[0].Status().Code)
		assert.Equal(t, spans[0].SpanContext().SpanID(), inner.SpanID(), "use case runs inside the span")
	})

	t.Run("failed request", func(t *testing.T) {
		t.Parallel()

		provider, recorder := recordingTracer()

		_, err := app.NewTracedRequest(provider, failureRequest()).H(ctx, validRequest)
		assert.Error(t, err)

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status().Code)
		assert.Equal(t, "some-error", spans[0].Status().Description)
	})

	t.Run("command and query", func(t *testing.T) {
		t.Parallel()

		provider, recorder := recordingTracer()

		_ = app.NewTracedCommand(provider, app.TestFailureCommandHandler[request]()).H(ctx, validRequest)
		_, _ = app.NewTracedQuery(provider, app.TestSuccessQueryHandler[request, response]()).H(ctx, validRequest)

		spans := recorder.Ended()
		require.Len(t, spans, 2)
		assert.Equal(t, codes.Error, spans[0].Status().Code)
		assert.Equal(t, codes.Unset, spans[1].Status().Code)
	})
}

func recordingTracer() (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()

	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)), recorder
}

// Package app provides the use case contracts of the application layer
// and the decorators that wrap every use case with logging, metrics, tracing and validation.
package app

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-arrower/userposts/alog"
)

// Request can produce side effects and return data.
type Request[Req any, Res any] interface {
	H(ctx context.Context, req Req) (Res, error)
}

// Command produces side effects, e.g. mutate state.
type Command[C any] interface {
	H(ctx context.Context, cmd C) error
}

// Query does not produce side effects and returns data.
type Query[Q any, Res any] interface {
	H(ctx context.Context, query Q) (Res, error)
}

// kind names the flavour of a use case in logs.
type kind string

const (
	kindRequest kind = "request"
	kindCommand kind = "command"
	kindQuery   kind = "query"
)

// NewInstrumentedRequest is a convenience helper for easy dependency setup.
// The order of dependencies represents the order of calling.
func NewInstrumentedRequest[Req any, Res any](
	traceProvider trace.TracerProvider,
	meterProvider metric.MeterProvider,
	logger alog.Logger,
	req Request[Req, Res],
) Request[Req, Res] {
	return NewTracedRequest(traceProvider, NewMeteredRequest(meterProvider, NewLoggedRequest(logger, req)))
}

// NewInstrumentedCommand is a convenience helper for easy dependency setup.
// The order of dependencies represents the order of calling.
func NewInstrumentedCommand[C any](
	traceProvider trace.TracerProvider,
	meterProvider metric.MeterProvider,
	logger alog.Logger,
	cmd Command[C],
) Command[C] {
	return NewTracedCommand(traceProvider, NewMeteredCommand(meterProvider, NewLoggedCommand(logger, cmd)))
}

// NewInstrumentedQuery is a convenience helper for easy dependency setup.
// The order of dependencies represents the order of calling.
func NewInstrumentedQuery[Q any, Res any](
	traceProvider trace.TracerProvider,
	meterProvider metric.MeterProvider,
	logger alog.Logger,
	query Query[Q, Res],
) Query[Q, Res] {
	return NewTracedQuery(traceProvider, NewMeteredQuery(meterProvider, NewLoggedQuery(logger, query)))
}

// commandAsRequest lets a Command run through the decorators written for Request.
type commandAsRequest[C any] struct {
	cmd Command[C]
}

func (c commandAsRequest[C]) H(ctx context.Context, cmd C) (struct{}, error) {
	return struct{}{}, c.cmd.H(ctx, cmd) //nolint:wrapcheck // decorate but not change anything
}

// requestAsCommand is the inverse of commandAsRequest.
type requestAsCommand[C any] struct {
	req Request[C, struct{}]
}

func (r requestAsCommand[C]) H(ctx context.Context, cmd C) error {
	_, err := r.req.H(ctx, cmd)

	return err //nolint:wrapcheck // decorate but not change anything
}

func decorateCommand[C any](cmd Command[C], decorate func(Request[C, struct{}]) Request[C, struct{}]) Command[C] {
	return requestAsCommand[C]{req: decorate(commandAsRequest[C]{cmd: cmd})}
}

// commandName extracts a printable name from the use case input in the format of: context.package.Type.
//
// The input type is used, because the handler is usually unexported and hidden behind a constructor.
// If the type is not declared inside a bounded context the format is package.Type.
func commandName(in any) string {
	t := reflect.TypeOf(in)
	if t == nil {
		return "<nil>"
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	// example: github.com/go-arrower/userposts/contexts/blog/internal/application
	// take string after /contexts/ and then take string before /internal/
	afterContexts := strings.Split(t.PkgPath(), "/contexts/")

	if len(afterContexts) == 2 { //nolint:mnd
		beforeInternal := strings.Split(afterContexts[1], "/internal/")
		if len(beforeInternal) == 2 { //nolint:mnd
			return fmt.Sprintf("%s.%s", beforeInternal[0], t.String())
		}
	}

	return t.String()
}

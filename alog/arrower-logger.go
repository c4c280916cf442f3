package alog

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// LoggerOpt allows to initialise a logger with custom options.
type LoggerOpt func(logger *arrowerHandler)

// WithHandler adds a slog.Handler to be logged to.
// You can set as many as you want.
func WithHandler(h slog.Handler) LoggerOpt {
	return func(l *arrowerHandler) {
		l.handlers = append(l.handlers, h)
	}
}

// WithLevel initialises the logger with a starting level.
// To change the level at runtime use ArrowerLogger.SetLevel:
// Unwrap(logger).SetLevel(LevelInfo).
func WithLevel(level slog.Level) LoggerOpt {
	return func(l *arrowerHandler) {
		l.level = &level
	}
}

// New returns a production ready logger.
//
// If no options are given it creates a default handler, logging JSON to Stderr.
// Otherwise, use WithHandler to set your own loggers.
// For an example of options at work, see NewDevelopment.
func New(opts ...LoggerOpt) *slog.Logger {
	return slog.New(newArrowerHandler(opts...))
}

// NewDevelopment returns a logger ready for local development purposes.
// It logs human-readable text to Stderr at debug level.
// Additional options, e.g. a Loki handler, are applied after the defaults.
func NewDevelopment(opts ...LoggerOpt) *slog.Logger {
	config := []LoggerOpt{
		WithLevel(slog.LevelDebug),
		WithHandler(slog.NewTextHandler(os.Stderr, getDebugHandlerOptions())),
	}

	return New(append(config, opts...)...)
}

// newArrowerHandler implements the main logging logic and features.
// It does not output anything directly and relies on other slog.Handlers to do so.
// If no Handlers are provided via WithHandler, a default JSON handler logs to os.Stderr.
func newArrowerHandler(opts ...LoggerOpt) *arrowerHandler {
	var (
		defaultLevel    = slog.LevelInfo
		defaultHandlers = []slog.Handler{slog.NewJSONHandler(os.Stderr, getDefaultHandlerOptions())}
	)

	logger := &arrowerHandler{
		handlers: []slog.Handler{},
		level:    &defaultLevel,
	}

	for _, opt := range opts {
		opt(logger)
	}

	hasCustomHandlers := len(logger.handlers) != 0
	if !hasCustomHandlers {
		logger.handlers = defaultHandlers
	}

	return logger
}

// arrowerHandler is the main handler, offering to log to multiple handlers.
// It's also doing all the lifting for observability:
// records get the ids of the active span and are added to that span as an event.
type arrowerHandler struct {
	// level reports the minimum record level that will be logged.
	// The level of individual handlers set via WithHandler is ignored.
	level *slog.Level

	// handlers is a list which all get called with the same log message.
	handlers []slog.Handler
}

var (
	_ ArrowerLogger = (*arrowerHandler)(nil)
	_ slog.Handler  = (*arrowerHandler)(nil)
)

func (l *arrowerHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= *l.level
}

func (l *arrowerHandler) Handle(ctx context.Context, record slog.Record) error {
	span := trace.SpanFromContext(ctx)

	record = addTraceAndSpanIDsToLogs(span, record)

	if attrs, ok := FromContext(ctx); ok {
		record.AddAttrs(attrs...)
	}

	addLogsToActiveSpanAsEvent(span, getAttrsFromRecord(record), record)

	var retErr error

	for _, h := range l.handlers {
		err := h.Handle(ctx, record.Clone())
		retErr = errors.Join(retErr, err)
	}

	return retErr
}

func (l *arrowerHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(l.handlers))

	for i, h := range l.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}

	return &arrowerHandler{
		handlers: handlers,
		level:    l.level,
	}
}

func (l *arrowerHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(l.handlers))

	for i, h := range l.handlers {
		handlers[i] = h.WithGroup(name)
	}

	return &arrowerHandler{
		handlers: handlers,
		level:    l.level,
	}
}

// SetLevel changes the level for all loggers set with WithHandler().
// Even the ones "copied" via any WithX method.
// All groups will have the same level.
func (l *arrowerHandler) SetLevel(level slog.Level) {
	*l.level = level
}

// Level returns the log level of the handler.
func (l *arrowerHandler) Level() slog.Level {
	return l.level.Level()
}

func (l *arrowerHandler) NumHandlers() int {
	return len(l.handlers)
}

func addTraceAndSpanIDsToLogs(span trace.Span, record slog.Record) slog.Record {
	sCtx := span.SpanContext()
	attrs := make([]slog.Attr, 0)

	if sCtx.HasTraceID() {
		attrs = append(attrs,
			slog.Attr{Key: "traceID", Value: slog.StringValue(sCtx.TraceID().String())},
		)
	}

	if sCtx.HasSpanID() {
		attrs = append(attrs,
			slog.Attr{Key: "spanID", Value: slog.StringValue(sCtx.SpanID().String())},
		)
	}

	if len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}

	return record
}

func addLogsToActiveSpanAsEvent(span trace.Span, attrs []attribute.KeyValue, record slog.Record) {
	if !span.IsRecording() {
		return
	}

	span.AddEvent("log", trace.WithAttributes(attrs...))

	if record.Level >= slog.LevelError {
		span.SetStatus(codes.Error, record.Message)
	}
}

func getAttrsFromRecord(record slog.Record) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, record.NumAttrs()+2) //nolint:mnd // severity and message

	logSeverityKey := attribute.Key("log.severity")
	logMessageKey := attribute.Key("log.message")

	attrs = append(attrs, logSeverityKey.String(record.Level.String()))
	attrs = append(attrs, logMessageKey.String(record.Message))

	record.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs,
			attribute.KeyValue{
				Key:   attribute.Key(a.Key),
				Value: attribute.StringValue(a.Value.String()),
			},
		)

		return true // process next attr
	})

	return attrs
}

// ArrowerLogger is an extension to Logger and slog.Logger and offers
// additional control over the logger at run time.
// Unwrap a logger to get access to this features.
type ArrowerLogger interface {
	SetLevel(level slog.Level)
	Level() slog.Level
}

// Unwrap unwraps the given logger and returns a ArrowerLogger.
// In case of an invalid implementation of logger,
// it returns nil.
func Unwrap(logger Logger) ArrowerLogger { //nolint:ireturn,lll // interface required to return a TestLogger and arrowerHandler
	if l, ok := logger.(*TestLogger); ok {
		return l
	}

	sl, ok := logger.(*slog.Logger)
	if !ok {
		return nil
	}

	if l, ok := sl.Handler().(*arrowerHandler); ok {
		return l
	}

	return nil
}

func getDefaultHandlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		AddSource:   true,
		Level:       LevelDebug, // allow all records, arrowerHandler's level is used for all handlers.
		ReplaceAttr: MapLogLevelsToName,
	}
}

// getDebugHandlerOptions is to keep the log output more readable, by removing not essential keys.
func getDebugHandlerOptions() *slog.HandlerOptions {
	opt := getDefaultHandlerOptions()
	opt.AddSource = false

	return opt
}

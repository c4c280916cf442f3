package alog

import (
	"context"
	"log/slog"

	ctx2 "github.com/go-arrower/userposts/ctx"
)

const ctxAttr ctx2.CTXKey = "alog.attr"

// AddAttr adds an slog.Attr to the context, so every record logged with
// this context carries it. Calling AddAttr multiple times appends the attributes.
func AddAttr(ctx context.Context, attr slog.Attr) context.Context {
	attrs, _ := FromContext(ctx)

	return context.WithValue(ctx, ctxAttr, append(attrs[:len(attrs):len(attrs)], attr))
}

// FromContext returns all attributes added via AddAttr.
func FromContext(ctx context.Context) ([]slog.Attr, bool) {
	attrs, ok := ctx.Value(ctxAttr).([]slog.Attr)

	return attrs, ok
}

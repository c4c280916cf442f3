package app

import (
	"context"
	"log/slog"

	"github.com/go-arrower/userposts/alog"
)

func NewLoggedRequest[Req any, Res any](logger alog.Logger, req Request[Req, Res]) Request[Req, Res] {
	return newLogged(kindRequest, logger, req)
}

func NewLoggedCommand[C any](logger alog.Logger, cmd Command[C]) Command[C] {
	return decorateCommand(cmd, func(req Request[C, struct{}]) Request[C, struct{}] {
		return newLogged(kindCommand, logger, req)
	})
}

func NewLoggedQuery[Q any, Res any](logger alog.Logger, query Query[Q, Res]) Query[Q, Res] {
	return newLogged[Q, Res](kindQuery, logger, query)
}

func newLogged[In any, Out any](kind kind, logger alog.Logger, base Request[In, Out]) *loggingDecorator[In, Out] {
	return &loggingDecorator[In, Out]{
		kind:   kind,
		logger: logger,
		base:   base,
	}
}

type loggingDecorator[In any, Out any] struct {
	kind   kind
	logger alog.Logger
	base   Request[In, Out]
}

func (d *loggingDecorator[In, Out]) H(ctx context.Context, in In) (Out, error) { //nolint:ireturn // valid use of generics
	cmdName := slog.String("command", commandName(in))

	d.logger.DebugContext(ctx, "executing "+string(d.kind), cmdName)

	out, err := d.base.H(ctx, in)
	if err != nil {
		d.logger.DebugContext(ctx, "failed to execute "+string(d.kind),
			cmdName,
			slog.String("error", err.Error()),
		)

		return out, err //nolint:wrapcheck // decorate but not change anything
	}

	d.logger.DebugContext(ctx, string(d.kind)+" executed successfully", cmdName)

	return out, nil
}

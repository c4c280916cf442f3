package app

import (
	"context"
	"errors"
)

//
// This file contains convenience helpers you can use to easier test
// your calling code relying on this use case pattern.
//

var ErrUseCaseFailed = errors.New("usecase failed")

// TestRequestHandler turns a function into a Request, e.g. to stub a dependency in a controller test.
type TestRequestHandler[Req any, Res any] func(ctx context.Context, req Req) (Res, error)

func (f TestRequestHandler[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn // valid use of generics
	return f(ctx, req)
}

// TestCommandHandler turns a function into a Command.
type TestCommandHandler[C any] func(ctx context.Context, cmd C) error

func (f TestCommandHandler[C]) H(ctx context.Context, cmd C) error {
	return f(ctx, cmd)
}

// TestQueryHandler turns a function into a Query.
type TestQueryHandler[Q any, Res any] func(ctx context.Context, query Q) (Res, error)

func (f TestQueryHandler[Q, Res]) H(ctx context.Context, query Q) (Res, error) { //nolint:ireturn // valid use of generics
	return f(ctx, query)
}

func TestSuccessRequestHandler[Req any, Res any]() Request[Req, Res] {
	return TestRequestHandler[Req, Res](func(context.Context, Req) (Res, error) {
		return *new(Res), nil
	})
}

func TestFailureRequestHandler[Req any, Res any]() Request[Req, Res] {
	return TestRequestHandler[Req, Res](func(context.Context, Req) (Res, error) {
		return *new(Res), ErrUseCaseFailed
	})
}

func TestSuccessCommandHandler[C any]() Command[C] {
	return TestCommandHandler[C](func(context.Context, C) error { return nil })
}

func TestFailureCommandHandler[C any]() Command[C] {
	return TestCommandHandler[C](func(context.Context, C) error { return ErrUseCaseFailed })
}

func TestSuccessQueryHandler[Q any, Res any]() Query[Q, Res] {
	return TestQueryHandler[Q, Res](func(context.Context, Q) (Res, error) {
		return *new(Res), nil
	})
}

func TestFailureQueryHandler[Q any, Res any]() Query[Q, Res] {
	return TestQueryHandler[Q, Res](func(context.Context, Q) (Res, error) {
		return *new(Res), ErrUseCaseFailed
	})
}

package app

import (
	"context"

	"github.com/go-playground/validator/v10"

	ctx2 "github.com/go-arrower/userposts/ctx"
)

const CtxValidated ctx2.CTXKey = "userposts.validated"

// PassedValidation reports whether the input of the running use case was validated by a validation decorator.
// Use it in case you want to ensure that the decorator was called before continuing with your business logic.
func PassedValidation(ctx context.Context) bool {
	v, _ := ctx.Value(CtxValidated).(bool)

	return v
}

// NewValidatedRequest validates the request with its `validate` struct tags, before calling req.
// If validate is nil, a default validator is used.
func NewValidatedRequest[Req any, Res any](validate *validator.Validate, req Request[Req, Res]) Request[Req, Res] {
	return newValidated(validate, req)
}

func NewValidatedCommand[C any](validate *validator.Validate, cmd Command[C]) Command[C] {
	return decorateCommand(cmd, func(req Request[C, struct{}]) Request[C, struct{}] {
		return newValidated(validate, req)
	})
}

func NewValidatedQuery[Q any, Res any](validate *validator.Validate, query Query[Q, Res]) Query[Q, Res] {
	return newValidated[Q, Res](validate, query)
}

func newValidated[In any, Out any](validate *validator.Validate, base Request[In, Out]) *validatingDecorator[In, Out] {
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}

	return &validatingDecorator[In, Out]{
		validate: validate,
		base:     base,
	}
}

type validatingDecorator[In any, Out any] struct {
	validate *validator.Validate
	base     Request[In, Out]
}

func (d *validatingDecorator[In, Out]) H(ctx context.Context, in In) (Out, error) { //nolint:ireturn // valid use of generics
	if err := d.validate.Struct(in); err != nil {
		return *new(Out), err //nolint:wrapcheck // validation error is returned on purpose
	}

	return d.base.H(context.WithValue(ctx, CtxValidated, true), in) //nolint:wrapcheck // decorate but not change anything
}

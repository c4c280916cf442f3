package app_test

import (
	"context"
	"errors"

	"github.com/go-arrower/userposts/app"
)

var (
	ctx          = context.Background()
	errSomething = errors.New("some-error")
)

type (
	request struct {
		Name string `validate:"required"`
	}
	response struct {
		Greeting string
	}
)

var validRequest = request{Name: "gopher"}

func successRequest() app.Request[request, response] {
	return app.TestRequestHandler[request, response](func(_ context.Context, req request) (response, error) {
		return response{Greeting: "hello " + req.Name}, nil
	})
}

func failureRequest() app.Request[request, response] {
	return app.TestRequestHandler[request, response](func(context.Context, request) (response, error) {
		return response{}, errSomething
	})
}

package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-arrower/userposts/app"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

var ErrCreateUserFailed = errors.New("create user failed")

func NewCreateUserRequestHandler(users domain.UserRepository) app.Request[CreateUserRequest, CreateUserResponse] {
	return &createUserRequestHandler{users: users}
}

type createUserRequestHandler struct {
	users domain.UserRepository
}

type (
	CreateUserRequest struct {
		Name     string `json:"name"     validate:"required"`
		Username string `json:"username" validate:"required"`
		Email    string `json:"email"    validate:"required,email"`
	}
	CreateUserResponse struct {
		User domain.User
	}
)

func (h *createUserRequestHandler) H(ctx context.Context, req CreateUserRequest) (CreateUserResponse, error) {
	user, err := h.users.Create(ctx, domain.UserFields{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return CreateUserResponse{}, fmt.Errorf("%w: %w", ErrCreateUserFailed, err)
	}

	return CreateUserResponse{User: user}, nil
}

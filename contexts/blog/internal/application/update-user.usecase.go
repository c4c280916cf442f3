package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-arrower/userposts/app"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

var ErrUpdateUserFailed = errors.New("update user failed")

func NewUpdateUserRequestHandler(users domain.UserRepository) app.Request[UpdateUserRequest, UpdateUserResponse] {
	return &updateUserRequestHandler{users: users}
}

type updateUserRequestHandler struct {
	users domain.UserRepository
}

type (
	// UpdateUserRequest changes only the fields present in the request.
	UpdateUserRequest struct {
		UserID   domain.UserID `json:"-"        param:"id"`
		Name     *string       `json:"name"     validate:"omitnil,min=1"`
		Username *string       `json:"username" validate:"omitnil,min=1"`
		Email    *string       `json:"email"    validate:"omitnil,email"`
	}
	UpdateUserResponse struct {
		User domain.User
	}
)

func (h *updateUserRequestHandler) H(ctx context.Context, req UpdateUserRequest) (UpdateUserResponse, error) {
	user, err := h.users.Update(ctx, req.UserID, domain.UserChanges{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return UpdateUserResponse{}, fmt.Errorf("%w: %w", ErrUpdateUserFailed, err)
	}

	return UpdateUserResponse{User: user}, nil
}

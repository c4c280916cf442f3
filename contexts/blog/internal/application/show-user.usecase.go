package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/userposts/app"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

func NewShowUserQueryHandler(users domain.UserRepository) app.Query[ShowUserQuery, ShowUserResponse] {
	return &showUserQueryHandler{users: users}
}

type showUserQueryHandler struct {
	users domain.UserRepository
}

type (
	ShowUserQuery struct {
		UserID domain.UserID `param:"id"`
	}
	ShowUserResponse struct {
		User domain.User
	}
)

func (h *showUserQueryHandler) H(ctx context.Context, query ShowUserQuery) (ShowUserResponse, error) {
	user, err := h.users.FindByID(ctx, query.UserID)
	if err != nil {
		return ShowUserResponse{}, fmt.Errorf("could not show user %d: %w", query.UserID, err)
	}

	return ShowUserResponse{User: user}, nil
}

package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/userposts/app"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

func NewListUsersQueryHandler(users domain.UserRepository) app.Query[ListUsersQuery, ListUsersResponse] {
	return &listUsersQueryHandler{users: users}
}

type listUsersQueryHandler struct {
	users domain.UserRepository
}

type (
	ListUsersQuery    struct{}
	ListUsersResponse struct {
		Users []domain.User
	}
)

func (h *listUsersQueryHandler) H(ctx context.Context, _ ListUsersQuery) (ListUsersResponse, error) {
	users, err := h.users.All(ctx)
	if err != nil {
		return ListUsersResponse{}, fmt.Errorf("could not list users: %w", err)
	}

	return ListUsersResponse{Users: users}, nil
}

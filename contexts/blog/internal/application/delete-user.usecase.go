package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-arrower/userposts/app"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

var ErrDeleteUserFailed = errors.New("delete user failed")

// NewDeleteUserCommandHandler deletes a user together with all of the user's posts.
func NewDeleteUserCommandHandler(users domain.UserRepository) app.Command[DeleteUserCommand] {
	return &deleteUserCommandHandler{users: users}
}

type deleteUserCommandHandler struct {
	users domain.UserRepository
}

type DeleteUserCommand struct {
	UserID domain.UserID `param:"id"`
}

func (h *deleteUserCommandHandler) H(ctx context.Context, cmd DeleteUserCommand) error {
	if err := h.users.DeleteByID(ctx, cmd.UserID); err != nil {
		return fmt.Errorf("%w: %w", ErrDeleteUserFailed, err)
	}

	return nil
}

package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-arrower/userposts/app"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

var ErrDeletePostFailed = errors.New("delete post failed")

func NewDeletePostCommandHandler(posts domain.PostRepository) app.Command[DeletePostCommand] {
	return &deletePostCommandHandler{posts: posts}
}

type deletePostCommandHandler struct {
	posts domain.PostRepository
}

type DeletePostCommand struct {
	PostID domain.PostID `param:"id"`
}

func (h *deletePostCommandHandler) H(ctx context.Context, cmd DeletePostCommand) error {
	if err := h.posts.DeleteByID(ctx, cmd.PostID); err != nil {
		return fmt.Errorf("%w: %w", ErrDeletePostFailed, err)
	}

	return nil
}

package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/userposts/app"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

// NewListUserPostsQueryHandler lists the posts of a user.
// It does not check if the user exists: an unknown user has no posts.
func NewListUserPostsQueryHandler(posts domain.PostRepository) app.Query[ListUserPostsQuery, ListPostsResponse] {
	return &listUserPostsQueryHandler{posts: posts}
}

type listUserPostsQueryHandler struct {
	posts domain.PostRepository
}

type ListUserPostsQuery struct {
	UserID domain.UserID `param:"id"`
}

func (h *listUserPostsQueryHandler) H(ctx context.Context, query ListUserPostsQuery) (ListPostsResponse, error) {
	posts, err := h.posts.AllByOwner(ctx, query.UserID)
	if err != nil {
		return ListPostsResponse{}, fmt.Errorf("could not list posts of user %d: %w", query.UserID, err)
	}

	return ListPostsResponse{Posts: posts}, nil
}

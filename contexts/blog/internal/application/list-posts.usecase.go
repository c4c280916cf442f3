package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/userposts/app"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

func NewListPostsQueryHandler(posts domain.PostRepository) app.Query[ListPostsQuery, ListPostsResponse] {
	return &listPostsQueryHandler{posts: posts}
}

type listPostsQueryHandler struct {
	posts domain.PostRepository
}

type (
	ListPostsQuery    struct{}
	ListPostsResponse struct {
		Posts []domain.Post
	}
)

func (h *listPostsQueryHandler) H(ctx context.Context, _ ListPostsQuery) (ListPostsResponse, error) {
	posts, err := h.posts.All(ctx)
	if err != nil {
		return ListPostsResponse{}, fmt.Errorf("could not list posts: %w", err)
	}

	return ListPostsResponse{Posts: posts}, nil
}

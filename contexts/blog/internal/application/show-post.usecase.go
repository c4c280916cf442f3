package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/userposts/app"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

func NewShowPostQueryHandler(posts domain.PostRepository) app.Query[ShowPostQuery, ShowPostResponse] {
	return &showPostQueryHandler{posts: posts}
}

type showPostQueryHandler struct {
	posts domain.PostRepository
}

type (
	ShowPostQuery struct {
		PostID domain.PostID `param:"id"`
	}
	ShowPostResponse struct {
		Post domain.Post
	}
)

func (h *showPostQueryHandler) H(ctx context.Context, query ShowPostQuery) (ShowPostResponse, error) {
	post, err := h.posts.FindByID(ctx, query.PostID)
	if err != nil {
		return ShowPostResponse{}, fmt.Errorf("could not show post %d: %w", query.PostID, err)
	}

	return ShowPostResponse{Post: post}, nil
}

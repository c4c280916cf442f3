package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/userposts/app"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

// NewCreateUserPostRequestHandler creates a post under the user addressed by the request.
// The owner is always that user, regardless of any owner sent by the client.
// An unknown user results in domain.ErrNotFound.
func NewCreateUserPostRequestHandler(users domain.UserRepository, posts domain.PostRepository) app.Request[CreateUserPostRequest, CreatePostResponse] { //nolint:lll
	return &createUserPostRequestHandler{users: users, posts: posts}
}

type createUserPostRequestHandler struct {
	users domain.UserRepository
	posts domain.PostRepository
}

type CreateUserPostRequest struct {
	UserID domain.UserID `json:"-"     param:"id"`
	Title  string        `json:"title" validate:"required"`
}

func (h *createUserPostRequestHandler) H(ctx context.Context, req CreateUserPostRequest) (CreatePostResponse, error) {
	post, err := createPostFor(ctx, h.users, h.posts, req.UserID, req.Title)
	if err != nil {
		return CreatePostResponse{}, fmt.Errorf("%w: user %d: %w", ErrCreatePostFailed, req.UserID, err)
	}

	return CreatePostResponse{Post: post}, nil
}

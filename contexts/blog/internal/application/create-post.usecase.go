package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-arrower/userposts/app"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

var ErrCreatePostFailed = errors.New("create post failed")

// NewCreatePostRequestHandler creates a post for the owner given in the request.
// The owner has to exist, otherwise domain.ErrUnknownOwner is returned.
func NewCreatePostRequestHandler(users domain.UserRepository, posts domain.PostRepository) app.Request[CreatePostRequest, CreatePostResponse] { //nolint:lll
	return &createPostRequestHandler{users: users, posts: posts}
}

type createPostRequestHandler struct {
	users domain.UserRepository
	posts domain.PostRepository
}

type (
	CreatePostRequest struct {
		OwnerID domain.UserID `json:"userId" validate:"required"`
		Title   string        `json:"title"  validate:"required"`
	}
	CreatePostResponse struct {
		Post domain.Post
	}
)

func (h *createPostRequestHandler) H(ctx context.Context, req CreatePostRequest) (CreatePostResponse, error) {
	post, err := createPostFor(ctx, h.users, h.posts, req.OwnerID, req.Title)
	if errors.Is(err, domain.ErrNotFound) {
		return CreatePostResponse{}, fmt.Errorf("%w: %w: %d", ErrCreatePostFailed, domain.ErrUnknownOwner, req.OwnerID)
	}

	if err != nil {
		return CreatePostResponse{}, fmt.Errorf("%w: %w", ErrCreatePostFailed, err)
	}

	return CreatePostResponse{Post: post}, nil
}

// createPostFor creates the post while the owner is guaranteed to exist.
// It returns domain.ErrNotFound if the owner does not exist.
func createPostFor(
	ctx context.Context,
	users domain.UserRepository,
	posts domain.PostRepository,
	owner domain.UserID,
	title string,
) (domain.Post, error) {
	var post domain.Post

	err := users.IfExists(ctx, owner, func(user domain.User) error {
		var err error

		post, err = posts.Create(ctx, domain.PostFields{OwnerID: user.ID, Title: title})

		return err //nolint:wrapcheck // wrapped by the caller
	})

	return post, err //nolint:wrapcheck // wrapped by the caller
}

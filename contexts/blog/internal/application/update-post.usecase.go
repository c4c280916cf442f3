package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-arrower/userposts/app"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

var ErrUpdatePostFailed = errors.New("update post failed")

// NewUpdatePostRequestHandler changes the fields present in the request.
// Moving a post to another owner requires that owner to exist.
func NewUpdatePostRequestHandler(users domain.UserRepository, posts domain.PostRepository) app.Request[UpdatePostRequest, UpdatePostResponse] { //nolint:lll
	return &updatePostRequestHandler{users: users, posts: posts}
}

type updatePostRequestHandler struct {
	users domain.UserRepository
	posts domain.PostRepository
}

type (
	UpdatePostRequest struct {
		PostID  domain.PostID  `json:"-"      param:"id"`
		OwnerID *domain.UserID `json:"userId" validate:"omitnil,min=1"`
		Title   *string        `json:"title"  validate:"omitnil,min=1"`
	}
	UpdatePostResponse struct {
		Post domain.Post
	}
)

func (h *updatePostRequestHandler) H(ctx context.Context, req UpdatePostRequest) (UpdatePostResponse, error) {
	changes := domain.PostChanges{
		OwnerID: req.OwnerID,
		Title:   req.Title,
	}

	if req.OwnerID == nil {
		post, err := h.posts.Update(ctx, req.PostID, changes)
		if err != nil {
			return UpdatePostResponse{}, fmt.Errorf("%w: %w", ErrUpdatePostFailed, err)
		}

		return UpdatePostResponse{Post: post}, nil
	}

	// a missing post is reported before an unknown owner
	if _, err := h.posts.FindByID(ctx, req.PostID); err != nil {
		return UpdatePostResponse{}, fmt.Errorf("%w: %w", ErrUpdatePostFailed, err)
	}

	var (
		post       domain.Post
		ownerFound bool
	)

	err := h.users.IfExists(ctx, *req.OwnerID, func(domain.User) error {
		ownerFound = true

		var err error
		post, err = h.posts.Update(ctx, req.PostID, changes)

		return err //nolint:wrapcheck // wrapped below
	})

	if !ownerFound && errors.Is(err, domain.ErrNotFound) {
		return UpdatePostResponse{}, fmt.Errorf("%w: %w: %d", ErrUpdatePostFailed, domain.ErrUnknownOwner, *req.OwnerID)
	}

	if err != nil {
		return UpdatePostResponse{}, fmt.Errorf("%w: %w", ErrUpdatePostFailed, err)
	}

	return UpdatePostResponse{Post: post}, nil
}

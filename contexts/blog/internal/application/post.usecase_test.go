package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/userposts/contexts/blog/internal/application"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

func TestCreatePostRequestHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("create post", func(t *testing.T) {
		t.Parallel()

		users, posts := newRepos()
		u := newUser(users)

		res, err := application.NewCreatePostRequestHandler(users, posts).H(ctx, application.CreatePostRequest{
			OwnerID: u.ID,
			Title:   "T1",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.Post{ID: 1, OwnerID: u.ID, Title: "T1"}, res.Post)
	})

	t.Run("unknown owner", func(t *testing.T) {
		t.Parallel()

		users, posts := newRepos()

		_, err := application.NewCreatePostRequestHandler(users, posts).H(ctx, application.CreatePostRequest{
			OwnerID: 9,
			Title:   "dangling",
		})
		assert.ErrorIs(t, err, domain.ErrUnknownOwner)
		assert.NotErrorIs(t, err, domain.ErrNotFound)

		c, _ := posts.Count(ctx)
		assert.Equal(t, 0, c, "no dangling post is created")
	})
}

func TestCreateUserPostRequestHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("owner is the user", func(t *testing.T) {
		t.Parallel()

		users, posts := newRepos()
		_ = newUser(users)
		u := newUser(users)

		res, err := application.NewCreateUserPostRequestHandler(users, posts).H(ctx, application.CreateUserPostRequest{
			UserID: u.ID,
			Title:  "mine",
		})
		assert.NoError(t, err)
		assert.Equal(t, u.ID, res.Post.OwnerID)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		users, posts := newRepos()

		_, err := application.NewCreateUserPostRequestHandler(users, posts).H(ctx, application.CreateUserPostRequest{
			UserID: 3,
			Title:  "T",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, err, application.ErrCreatePostFailed)
	})
}

func TestListUserPostsQueryHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("unknown user has no posts", func(t *testing.T) {
		t.Parallel()

		_, posts := newRepos()

		res, err := application.NewListUserPostsQueryHandler(posts).H(ctx, application.ListUserPostsQuery{UserID: 42})
		assert.NoError(t, err)
		assert.Empty(t, res.Posts)
	})
}

func TestListPostsQueryHandler_H(t *testing.T) {
	t.Parallel()

	users, posts := newRepos()
	u := newUser(users)
	p1, _ := posts.Create(ctx, domain.PostFields{OwnerID: u.ID, Title: "T1"})
	p2, _ := posts.Create(ctx, domain.PostFields{OwnerID: u.ID, Title: "T2"})

	res, err := application.NewListPostsQueryHandler(posts).H(ctx, application.ListPostsQuery{})
	assert.NoError(t, err)
	assert.Equal(t, []domain.Post{p1, p2}, res.Posts)
}

func TestShowPostQueryHandler_H(t *testing.T) {
	t.Parallel()

	_, posts := newRepos()

	_, err := application.NewShowPostQueryHandler(posts).H(ctx, application.ShowPostQuery{PostID: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdatePostRequestHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("title only", func(t *testing.T) {
		t.Parallel()

		users, posts := newRepos()
		u := newUser(users)
		p, _ := posts.Create(ctx, domain.PostFields{OwnerID: u.ID, Title: "T1"})

		res, err := application.NewUpdatePostRequestHandler(users, posts).H(ctx, application.UpdatePostRequest{
			PostID: p.ID,
			Title:  ptr("New"),
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.Post{ID: p.ID, OwnerID: u.ID, Title: "New"}, res.Post)
	})

	t.Run("move to other owner", func(t *testing.T) {
		t.Parallel()

		users, posts := newRepos()
		u1 := newUser(users)
		u2 := newUser(users)
		p, _ := posts.Create(ctx, domain.PostFields{OwnerID: u1.ID, Title: "T1"})

		res, err := application.NewUpdatePostRequestHandler(users, posts).H(ctx, application.UpdatePostRequest{
			PostID:  p.ID,
			OwnerID: ptr(u2.ID),
		})
		assert.NoError(t, err)
		assert.Equal(t, u2.ID, res.Post.OwnerID)
		assert.Equal(t, "T1", res.Post.Title)
	})

	t.Run("unknown owner", func(t *testing.T) {
		t.Parallel()

		users, posts := newRepos()
		u := newUser(users)
		p, _ := posts.Create(ctx, domain.PostFields{OwnerID: u.ID, Title: "T1"})

		_, err := application.NewUpdatePostRequestHandler(users, posts).H(ctx, application.UpdatePostRequest{
			PostID:  p.ID,
			OwnerID: ptr(domain.UserID(99)),
		})
		assert.ErrorIs(t, err, domain.ErrUnknownOwner)

		stored, _ := posts.FindByID(ctx, p.ID)
		assert.Equal(t, p, stored, "post is unchanged")
	})

	t.Run("unknown post with known owner", func(t *testing.T) {
		t.Parallel()

		users, posts := newRepos()
		u := newUser(users)

		_, err := application.NewUpdatePostRequestHandler(users, posts).H(ctx, application.UpdatePostRequest{
			PostID:  7,
			OwnerID: ptr(u.ID),
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NotErrorIs(t, err, domain.ErrUnknownOwner)
	})

	t.Run("unknown post with unknown owner", func(t *testing.T) {
		t.Parallel()

		users, posts := newRepos()

		_, err := application.NewUpdatePostRequestHandler(users, posts).H(ctx, application.UpdatePostRequest{
			PostID:  7,
			OwnerID: ptr(domain.UserID(99)),
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NotErrorIs(t, err, domain.ErrUnknownOwner)
	})

	t.Run("unknown post", func(t *testing.T) {
		t.Parallel()

		users, posts := newRepos()

		_, err := application.NewUpdatePostRequestHandler(users, posts).H(ctx, application.UpdatePostRequest{
			PostID: 7,
			Title:  ptr("New"),
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDeletePostCommandHandler_H(t *testing.T) {
	t.Parallel()

	users, posts := newRepos()
	u := newUser(users)
	p, _ := posts.Create(ctx, domain.PostFields{OwnerID: u.ID, Title: "T1"})

	handler := application.NewDeletePostCommandHandler(posts)

	require.NoError(t, handler.H(ctx, application.DeletePostCommand{PostID: p.ID}))
	assert.ErrorIs(t, handler.H(ctx, application.DeletePostCommand{PostID: p.ID}), domain.ErrNotFound)

	_, err := users.FindByID(ctx, u.ID)
	assert.NoError(t, err, "deleting a post keeps its owner")
}

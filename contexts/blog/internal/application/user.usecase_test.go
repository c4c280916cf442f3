package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/userposts/contexts/blog/internal/application"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

func TestCreateUserRequestHandler_H(t *testing.T) {
	t.Parallel()

	users, _ := newRepos()
	handler := application.NewCreateUserRequestHandler(users)

	res, err := handler.H(ctx, createUserA)
	assert.NoError(t, err)
	assert.Equal(t, domain.User{ID: 1, Name: "A", Username: "a", Email: "a@x.com"}, res.User)

	res, err = handler.H(ctx, createUserA)
	assert.NoError(t, err)
	assert.Equal(t, domain.UserID(2), res.User.ID, "duplicates are allowed")
}

func TestListUsersQueryHandler_H(t *testing.T) {
	t.Parallel()

	users, _ := newRepos()
	handler := application.NewListUsersQueryHandler(users)

	res, err := handler.H(ctx, application.ListUsersQuery{})
	assert.NoError(t, err)
	assert.Empty(t, res.Users)

	u1 := newUser(users)
	u2 := newUser(users)

	res, _ = handler.H(ctx, application.ListUsersQuery{})
	assert.Equal(t, []domain.User{u1, u2}, res.Users)
}

func TestShowUserQueryHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("show user", func(t *testing.T) {
		t.Parallel()

		users, _ := newRepos()
		u := newUser(users)

		res, err := application.NewShowUserQueryHandler(users).H(ctx, application.ShowUserQuery{UserID: u.ID})
		assert.NoError(t, err)
		assert.Equal(t, u, res.User)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		users, _ := newRepos()

		res, err := application.NewShowUserQueryHandler(users).H(ctx, application.ShowUserQuery{UserID: 1})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, res)
	})
}

func TestUpdateUserRequestHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("partial update", func(t *testing.T) {
		t.Parallel()

		users, _ := newRepos()
		u := newUser(users)

		res, err := application.NewUpdateUserRequestHandler(users).H(ctx, application.UpdateUserRequest{
			UserID: u.ID,
			Name:   ptr("B"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "B", res.User.Name)
		assert.Equal(t, u.Email, res.User.Email)
		assert.Equal(t, u.Username, res.User.Username)
	})

	t.Run("empty update", func(t *testing.T) {
		t.Parallel()

		users, _ := newRepos()
		u := newUser(users)

		res, err := application.NewUpdateUserRequestHandler(users).H(ctx, application.UpdateUserRequest{UserID: u.ID})
		assert.NoError(t, err)
		assert.Equal(t, u, res.User)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		users, _ := newRepos()

		_, err := application.NewUpdateUserRequestHandler(users).H(ctx, application.UpdateUserRequest{
			UserID: 5,
			Name:   ptr("B"),
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, err, application.ErrUpdateUserFailed)
	})
}

func TestDeleteUserCommandHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("delete cascades", func(t *testing.T) {
		t.Parallel()

		users, posts := newRepos()
		u := newUser(users)
		_, _ = posts.Create(ctx, domain.PostFields{OwnerID: u.ID, Title: "T1"})

		handler := application.NewDeleteUserCommandHandler(users)

		err := handler.H(ctx, application.DeleteUserCommand{UserID: u.ID})
		require.NoError(t, err)

		c, _ := posts.Count(ctx)
		assert.Equal(t, 0, c)

		err = handler.H(ctx, application.DeleteUserCommand{UserID: u.ID})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, err, application.ErrDeleteUserFailed)
	})
}

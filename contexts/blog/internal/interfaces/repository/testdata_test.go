package repository_test

import (
	"context"
	"errors"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

var (
	ctx = context.Background()

	userAFields = domain.UserFields{Name: "A", Username: "a", Email: "a@x.com"}

	errCascade = errors.New("cascade failed")
)

func randomUser() domain.UserFields {
	return domain.UserFields{
		Name:     gofakeit.Name(),
		Username: gofakeit.Username(),
		Email:    gofakeit.Email(),
	}
}

func ptr[T any](v T) *T {
	return &v
}

// failingCascade fails every cascade and remembers the owners it was called with.
type failingCascade struct {
	owners []domain.UserID
}

func (f *failingCascade) DeleteByOwner(_ context.Context, owner domain.UserID) error {
	f.owners = append(f.owners, owner)

	return errCascade
}

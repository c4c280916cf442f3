package application_test

import (
	"context"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/go-arrower/userposts/contexts/blog/internal/application"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
	"github.com/go-arrower/userposts/contexts/blog/internal/interfaces/repository"
)

var ctx = context.Background()

var createUserA = application.CreateUserRequest{Name: "A", Username: "a", Email: "a@x.com"}

func newRepos() (*repository.UserMemoryRepository, *repository.PostMemoryRepository) {
	posts := repository.NewPostMemoryRepository()

	return repository.NewUserMemoryRepository(posts), posts
}

func newUser(users domain.UserRepository) domain.User {
	u, err := users.Create(ctx, domain.UserFields{
		Name:     gofakeit.Name(),
		Username: gofakeit.Username(),
		Email:    gofakeit.Email(),
	})
	if err != nil {
		panic(err)
	}

	return u
}

func ptr[T any](v T) *T {
	return &v
}

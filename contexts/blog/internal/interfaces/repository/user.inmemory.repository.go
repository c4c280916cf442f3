package repository

import (
	"context"

	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
	"github.com/go-arrower/userposts/repository"
)

// NewUserMemoryRepository returns the users. Deleting a user removes the user's posts through posts.
func NewUserMemoryRepository(posts domain.OwnerCascade) *UserMemoryRepository {
	if posts == nil {
		panic("user repository requires the posts to cascade deletes to")
	}

	return &UserMemoryRepository{
		MemoryRepository: repository.NewMemoryRepository[domain.User, domain.UserID](),
		posts:            posts,
	}
}

// UserMemoryRepository keeps the users in insertion order.
//
// The users lock is held while the posts are touched by DeleteByID and IfExists.
// The posts never call back into the users, so the lock order is always users before posts.
type UserMemoryRepository struct {
	*repository.MemoryRepository[domain.User, domain.UserID]

	posts domain.OwnerCascade
}

var _ domain.UserRepository = (*UserMemoryRepository)(nil)

func (repo *UserMemoryRepository) All(ctx context.Context) ([]domain.User, error) {
	users, err := repo.MemoryRepository.FindAll(ctx)

	return users, mapError(err)
}

func (repo *UserMemoryRepository) FindByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	user, err := repo.MemoryRepository.FindByID(ctx, id)

	return user, mapError(err)
}

func (repo *UserMemoryRepository) Create(ctx context.Context, fields domain.UserFields) (domain.User, error) {
	user, err := repo.MemoryRepository.CreateWithNextID(ctx, func(id domain.UserID) domain.User {
		return domain.NewUser(id, fields)
	})

	return user, mapError(err)
}

func (repo *UserMemoryRepository) Update(ctx context.Context, id domain.UserID, changes domain.UserChanges) (domain.User, error) {
	user, err := repo.MemoryRepository.UpdateByID(ctx, id, changes.Apply)

	return user, mapError(err)
}

// DeleteByID removes the user first and then all of the user's posts.
// Both steps happen before any other call to the users can proceed.
func (repo *UserMemoryRepository) DeleteByID(ctx context.Context, id domain.UserID) error {
	cascade := &passThrough{}

	err := repo.MemoryRepository.DeleteByIDThen(ctx, id, func(user domain.User) error {
		return cascade.run(func() error {
			return repo.posts.DeleteByOwner(ctx, user.ID)
		})
	})

	return cascade.result(err)
}

func (repo *UserMemoryRepository) IfExists(ctx context.Context, id domain.UserID, fn func(user domain.User) error) error {
	call := &passThrough{}

	err := repo.MemoryRepository.IfExists(ctx, id, func(user domain.User) error {
		return call.run(func() error {
			return fn(user)
		})
	})

	return call.result(err)
}

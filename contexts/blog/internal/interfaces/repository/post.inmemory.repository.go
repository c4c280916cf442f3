package repository

import (
	"context"

	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
	"github.com/go-arrower/userposts/repository"
)

func NewPostMemoryRepository() *PostMemoryRepository {
	return &PostMemoryRepository{
		MemoryRepository: repository.NewMemoryRepository[domain.Post, domain.PostID](),
	}
}

// PostMemoryRepository keeps the posts in insertion order. Post ids have their own id space,
// independent of the user ids.
type PostMemoryRepository struct {
	*repository.MemoryRepository[domain.Post, domain.PostID]
}

var _ domain.PostRepository = (*PostMemoryRepository)(nil)

func (repo *PostMemoryRepository) All(ctx context.Context) ([]domain.Post, error) {
	posts, err := repo.MemoryRepository.FindAll(ctx)

	return posts, mapError(err)
}

// AllByOwner returns the posts of owner in insertion order.
// An owner without posts, or one that never existed, results in an empty list.
func (repo *PostMemoryRepository) AllByOwner(ctx context.Context, owner domain.UserID) ([]domain.Post, error) {
	posts, err := repo.MemoryRepository.FindBy(ctx, func(p domain.Post) bool {
		return p.BelongsTo(owner)
	})

	return posts, mapError(err)
}

func (repo *PostMemoryRepository) FindByID(ctx context.Context, id domain.PostID) (domain.Post, error) {
	post, err := repo.MemoryRepository.FindByID(ctx, id)

	return post, mapError(err)
}

func (repo *PostMemoryRepository) Create(ctx context.Context, fields domain.PostFields) (domain.Post, error) {
	post, err := repo.MemoryRepository.CreateWithNextID(ctx, func(id domain.PostID) domain.Post {
		return domain.NewPost(id, fields)
	})

	return post, mapError(err)
}

func (repo *PostMemoryRepository) Update(ctx context.Context, id domain.PostID, changes domain.PostChanges) (domain.Post, error) {
	post, err := repo.MemoryRepository.UpdateByID(ctx, id, changes.Apply)

	return post, mapError(err)
}

func (repo *PostMemoryRepository) DeleteByID(ctx context.Context, id domain.PostID) error {
	return mapError(repo.MemoryRepository.DeleteByID(ctx, id))
}

func (repo *PostMemoryRepository) DeleteByOwner(ctx context.Context, owner domain.UserID) error {
	_, err := repo.MemoryRepository.DeleteBy(ctx, func(p domain.Post) bool {
		return p.BelongsTo(owner)
	})

	return mapError(err)
}

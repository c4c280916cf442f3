package repository

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrStorage    = errors.New("storage error")
	ErrNotFound   = errors.New("not found")
	ErrSaveFailed = fmt.Errorf("%w: save failed", ErrStorage)
)

// Condition selects the entities a method of the Repository operates on.
type Condition[E any] func(entity E) bool

// Option takes in a repository configuration to set different optional properties.
type Option func(config *repoConfig)

// WithIDField sets the name of the field that is used as an id or primary key.
// If not set, it is assumed that the entity struct has a field with the name "ID".
func WithIDField(idFieldName string) Option { //nolint:revive // unexported-return is OK for this option
	return func(config *repoConfig) {
		config.idFieldName = idFieldName
	}
}

type repoConfig struct {
	idFieldName string
}

// Repository documents the methods of the generic MemoryRepository.
// ID is the primary key and needs to be of one of the underlying integer types.
// If your repository needs additional methods, embed MemoryRepository and add them.
type Repository[E any, ID id] interface {
	CreateWithNextID(ctx context.Context, build func(id ID) E) (E, error)
	UpdateByID(ctx context.Context, id ID, change func(entity *E)) (E, error)

	FindAll(ctx context.Context) ([]E, error)
	FindBy(ctx context.Context, cond Condition[E]) ([]E, error)
	FindByID(ctx context.Context, id ID) (E, error)
	IfExists(ctx context.Context, id ID, fn func(entity E) error) error
	Count(ctx context.Context) (int, error)

	DeleteByID(ctx context.Context, id ID) error
	DeleteByIDThen(ctx context.Context, id ID, then func(entity E) error) error
	DeleteBy(ctx context.Context, cond Condition[E]) (int, error)
}

// id are the types allowed as a primary key used in the generic Repository.
// Ids are allocated by incrementing the highest id seen, so only integers are supported.
type id interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

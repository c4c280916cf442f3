package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrUnknownOwner      = errors.New("unknown owner")
	ErrPersistenceFailed = errors.New("persistence operation failed")
)

// UserRepository owns the users. Ids are allocated by the repository and never reused.
type UserRepository interface {
	All(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id UserID) (User, error)
	Count(ctx context.Context) (int, error)

	Create(ctx context.Context, fields UserFields) (User, error)
	Update(ctx context.Context, id UserID, changes UserChanges) (User, error)

	// DeleteByID removes the user and all posts the user owns.
	DeleteByID(ctx context.Context, id UserID) error

	// IfExists calls fn only if the user exists and guarantees the user
	// is not deleted while fn runs. Otherwise, it returns ErrNotFound.
	IfExists(ctx context.Context, id UserID, fn func(user User) error) error
}

// PostRepository owns the posts. It never looks at the users, so it does not check
// whether an owner exists.
type PostRepository interface {
	All(ctx context.Context) ([]Post, error)
	AllByOwner(ctx context.Context, owner UserID) ([]Post, error)
	FindByID(ctx context.Context, id PostID) (Post, error)
	Count(ctx context.Context) (int, error)

	Create(ctx context.Context, fields PostFields) (Post, error)
	Update(ctx context.Context, id PostID, changes PostChanges) (Post, error)
	DeleteByID(ctx context.Context, id PostID) error

	OwnerCascade
}

// OwnerCascade is the only way the users reach into the posts:
// removing a user removes everything the user owns.
type OwnerCascade interface {
	// DeleteByOwner removes all posts of owner. It is idempotent.
	DeleteByOwner(ctx context.Context, owner UserID) error
}

package repository_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/userposts/repository"
)

var ctx = context.Background()

type (
	EntityID int
	Entity   struct {
		ID   EntityID
		Name string
	}

	EntityWithCustomPK struct {
		Key  uint
		Name string
	}

	EntityWithoutID struct {
		Name string
	}
)

func newEntity(id EntityID) Entity {
	return Entity{
		ID:   id,
		Name: gofakeit.Name(),
	}
}

// newRepoWith returns a repository holding one entity per name, with ids starting at 1.
func newRepoWith(t *testing.T, names ...string) *repository.MemoryRepository[Entity, EntityID] {
	t.Helper()

	repo := repository.NewMemoryRepository[Entity, EntityID]()

	for _, name := range names {
		_, err := repo.CreateWithNextID(ctx, func(id EntityID) Entity { return Entity{ID: id, Name: name} })
		require.NoError(t, err)
	}

	return repo
}

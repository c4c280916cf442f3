package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

func TestNewPost(t *testing.T) {
	t.Parallel()

	p := domain.NewPost(2, domain.PostFields{OwnerID: userA.ID, Title: "T2"})

	assert.Equal(t, domain.PostID(2), p.ID)
	assert.True(t, p.BelongsTo(userA.ID))
	assert.False(t, p.BelongsTo(userA.ID+1))
}

func TestPostChanges_Apply(t *testing.T) {
	t.Parallel()

	t.Run("title only", func(t *testing.T) {
		t.Parallel()

		p := postT1
		title := "New"
		domain.PostChanges{Title: &title}.Apply(&p)

		assert.Equal(t, "New", p.Title)
		assert.Equal(t, postT1.OwnerID, p.OwnerID)
		assert.Equal(t, postT1.ID, p.ID)
	})

	t.Run("move to other owner", func(t *testing.T) {
		t.Parallel()

		p := postT1
		owner := domain.UserID(2)
		changes := domain.PostChanges{OwnerID: &owner}
		changes.Apply(&p)

		assert.False(t, changes.IsEmpty())
		assert.True(t, p.BelongsTo(2))
		assert.Equal(t, postT1.Title, p.Title)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		p := postT1
		domain.PostChanges{}.Apply(&p)

		assert.Equal(t, postT1, p)
		assert.True(t, domain.PostChanges{}.IsEmpty())
	})
}

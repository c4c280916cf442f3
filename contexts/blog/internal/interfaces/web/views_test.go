package web

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/userposts/aassert"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
)

func TestPresentUser(t *testing.T) {
	t.Parallel()

	aassert.SameFields(t, domain.User{}, userView{})

	u := domain.User{ID: 1, Name: "A", Username: "a", Email: "a@x.com"}
	assert.Equal(t, userView{ID: 1, Name: "A", Username: "a", Email: "a@x.com"}, presentUser(u))
}

func TestPresentPost(t *testing.T) {
	t.Parallel()

	aassert.NumFields(t, 3, domain.Post{})
	aassert.NumFields(t, 3, postView{})

	p := domain.Post{ID: 2, OwnerID: 1, Title: "T"}
	assert.Equal(t, postView{ID: 2, UserID: 1, Title: "T"}, presentPost(p))
}

func TestPresentLists(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, presentUsers(nil), "empty lists are encoded as []")
	assert.NotNil(t, presentPosts(nil), "empty lists are encoded as []")
	assert.Len(t, presentPosts([]domain.Post{{ID: 1}, {ID: 2}}), 2)
}

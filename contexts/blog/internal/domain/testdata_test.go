package domain_test

import "github.com/go-arrower/userposts/contexts/blog/internal/domain"

var (
	userA = domain.User{
		ID:       1,
		Name:     "A",
		Username: "a",
		Email:    "a@x.com",
	}

	postT1 = domain.Post{
		ID:      1,
		OwnerID: userA.ID,
		Title:   "T1",
	}
)

package web

import "github.com/go-arrower/userposts/contexts/blog/internal/domain"

// userView is the JSON representation of a domain.User.
type userView struct {
	ID       domain.UserID `json:"id"`
	Name     string        `json:"name"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
}

// postView is the JSON representation of a domain.Post.
// The owner is called userId to the outside.
type postView struct {
	ID     domain.PostID `json:"id"`
	UserID domain.UserID `json:"userId"`
	Title  string        `json:"title"`
}

type deletedView struct {
	Deleted bool `json:"deleted"`
}

func presentUser(u domain.User) userView {
	return userView{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
	}
}

func presentUsers(users []domain.User) []userView {
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, presentUser(u))
	}

	return views
}

func presentPost(p domain.Post) postView {
	return postView{
		ID:     p.ID,
		UserID: p.OwnerID,
		Title:  p.Title,
	}
}

func presentPosts(posts []domain.Post) []postView {
	views := make([]postView, 0, len(posts))
	for _, p := range posts {
		views = append(views, presentPost(p))
	}

	return views
}

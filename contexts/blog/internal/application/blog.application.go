// Package application coordinates the users and posts: every operation of the blog is a use case here.
package application

import "github.com/go-arrower/userposts/app"

// BlogApplication is the set of use cases the blog context offers.
type BlogApplication struct {
	CreateUser app.Request[CreateUserRequest, CreateUserResponse]
	ListUsers  app.Query[ListUsersQuery, ListUsersResponse]
	ShowUser   app.Query[ShowUserQuery, ShowUserResponse]
	UpdateUser app.Request[UpdateUserRequest, UpdateUserResponse]
	DeleteUser app.Command[DeleteUserCommand]

	CreatePost     app.Request[CreatePostRequest, CreatePostResponse]
	CreateUserPost app.Request[CreateUserPostRequest, CreatePostResponse]
	ListPosts      app.Query[ListPostsQuery, ListPostsResponse]
	ListUserPosts  app.Query[ListUserPostsQuery, ListPostsResponse]
	ShowPost       app.Query[ShowPostQuery, ShowPostResponse]
	UpdatePost     app.Request[UpdatePostRequest, UpdatePostResponse]
	DeletePost     app.Command[DeletePostCommand]
}

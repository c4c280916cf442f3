package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/go-arrower/userposts/contexts/blog/internal/application"
)

/*
Naming conventions of the controller methods:
	- index  (list)
	- store  (new)
	- show
	- update
	- delete
*/

func NewUserController(app application.BlogApplication) *UserController {
	return &UserController{app: app}
}

type UserController struct {
	app application.BlogApplication
}

func (uc *UserController) Index() func(echo.Context) error {
	return func(c echo.Context) error {
		res, err := uc.app.ListUsers.H(c.Request().Context(), application.ListUsersQuery{})
		if err != nil {
			return httpError(err, "user")
		}

		return c.JSON(http.StatusOK, presentUsers(res.Users))
	}
}

func (uc *UserController) Store() func(echo.Context) error {
	return func(c echo.Context) error {
		var req application.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return err //nolint:wrapcheck // bind errors are HTTP errors already
		}

		res, err := uc.app.CreateUser.H(c.Request().Context(), req)
		if err != nil {
			return httpError(err, "user")
		}

		return c.JSON(http.StatusCreated, presentUser(res.User))
	}
}

func (uc *UserController) Show() func(echo.Context) error {
	return func(c echo.Context) error {
		var query application.ShowUserQuery
		if err := c.Bind(&query); err != nil {
			return err //nolint:wrapcheck // bind errors are HTTP errors already
		}

		res, err := uc.app.ShowUser.H(c.Request().Context(), query)
		if err != nil {
			return httpError(err, "user")
		}

		return c.JSON(http.StatusOK, presentUser(res.User))
	}
}

func (uc *UserController) Update() func(echo.Context) error {
	return func(c echo.Context) error {
		var req application.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return err //nolint:wrapcheck // bind errors are HTTP errors already
		}

		res, err := uc.app.UpdateUser.H(c.Request().Context(), req)
		if err != nil {
			return httpError(err, "user")
		}

		return c.JSON(http.StatusOK, presentUser(res.User))
	}
}

// Delete removes the user and all posts of the user.
func (uc *UserController) Delete() func(echo.Context) error {
	return func(c echo.Context) error {
		var cmd application.DeleteUserCommand
		if err := c.Bind(&cmd); err != nil {
			return err //nolint:wrapcheck // bind errors are HTTP errors already
		}

		if err := uc.app.DeleteUser.H(c.Request().Context(), cmd); err != nil {
			return httpError(err, "user")
		}

		return c.JSON(http.StatusOK, deletedView{Deleted: true})
	}
}

// StorePost creates a post owned by the user in the path.
// A userId in the body is ignored.
func (uc *UserController) StorePost() func(echo.Context) error {
	return func(c echo.Context) error {
		var req application.CreateUserPostRequest
		if err := c.Bind(&req); err != nil {
			return err //nolint:wrapcheck // bind errors are HTTP errors already
		}

		res, err := uc.app.CreateUserPost.H(c.Request().Context(), req)
		if err != nil {
			return httpError(err, "user")
		}

		return c.JSON(http.StatusCreated, presentPost(res.Post))
	}
}

// IndexPosts lists the posts of the user in the path.
// An unknown user has no posts, so the result is an empty list.
func (uc *UserController) IndexPosts() func(echo.Context) error {
	return func(c echo.Context) error {
		var query application.ListUserPostsQuery
		if err := c.Bind(&query); err != nil {
			return err //nolint:wrapcheck // bind errors are HTTP errors already
		}

		res, err := uc.app.ListUserPosts.H(c.Request().Context(), query)
		if err != nil {
			return httpError(err, "user")
		}

		return c.JSON(http.StatusOK, presentPosts(res.Posts))
	}
}

package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/go-arrower/userposts/contexts/blog/internal/application"
)

func NewPostController(app application.BlogApplication) *PostController {
	return &PostController{app: app}
}

type PostController struct {
	app application.BlogApplication
}

func (pc *PostController) Index() func(echo.Context) error {
	return func(c echo.Context) error {
		res, err := pc.app.ListPosts.H(c.Request().Context(), application.ListPostsQuery{})
		if err != nil {
			return httpError(err, "post")
		}

		return c.JSON(http.StatusOK, presentPosts(res.Posts))
	}
}

func (pc *PostController) Store() func(echo.Context) error {
	return func(c echo.Context) error {
		var req application.CreatePostRequest
		if err := c.Bind(&req); err != nil {
			return err //nolint:wrapcheck // bind errors are HTTP errors already
		}

		res, err := pc.app.CreatePost.H(c.Request().Context(), req)
		if err != nil {
			return httpError(err, "post")
		}

		return c.JSON(http.StatusCreated, presentPost(res.Post))
	}
}

func (pc *PostController) Show() func(echo.Context) error {
	return func(c echo.Context) error {
		var query application.ShowPostQuery
		if err := c.Bind(&query); err != nil {
			return err //nolint:wrapcheck // bind errors are HTTP errors already
		}

		res, err := pc.app.ShowPost.H(c.Request().Context(), query)
		if err != nil {
			return httpError(err, "post")
		}

		return c.JSON(http.StatusOK, presentPost(res.Post))
	}
}

func (pc *PostController) Update() func(echo.Context) error {
	return func(c echo.Context) error {
		var req application.UpdatePostRequest
		if err := c.Bind(&req); err != nil {
			return err //nolint:wrapcheck // bind errors are HTTP errors already
		}

		res, err := pc.app.UpdatePost.H(c.Request().Context(), req)
		if err != nil {
			return httpError(err, "post")
		}

		return c.JSON(http.StatusOK, presentPost(res.Post))
	}
}

func (pc *PostController) Delete() func(echo.Context) error {
	return func(c echo.Context) error {
		var cmd application.DeletePostCommand
		if err := c.Bind(&cmd); err != nil {
			return err //nolint:wrapcheck // bind errors are HTTP errors already
		}

		if err := pc.app.DeletePost.H(c.Request().Context(), cmd); err != nil {
			return httpError(err, "post")
		}

		return c.JSON(http.StatusOK, deletedView{Deleted: true})
	}
}

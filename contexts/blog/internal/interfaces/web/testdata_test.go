package web_test

import (
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/go-arrower/userposts/contexts/blog/internal/application"
	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
	"github.com/go-arrower/userposts/contexts/blog/internal/interfaces/web"
)

var (
	userA  = domain.User{ID: 1, Name: "A", Username: "a", Email: "a@x.com"}
	postT1 = domain.Post{ID: 1, OwnerID: userA.ID, Title: "T1"}
)

// newTestRouter registers the controllers the same way the blog context does.
func newTestRouter(app application.BlogApplication) *echo.Echo {
	e := echo.New()

	uc := web.NewUserController(app)
	pc := web.NewPostController(app)

	e.GET("/users", uc.Index())
	e.POST("/users", uc.Store())
	e.GET("/users/:id", uc.Show())
	e.PATCH("/users/:id", uc.Update())
	e.DELETE("/users/:id", uc.Delete())
	e.POST("/users/:id/posts", uc.StorePost())
	e.GET("/users/:id/posts", uc.IndexPosts())

	e.GET("/posts", pc.Index())
	e.POST("/posts", pc.Store())
	e.GET("/posts/:id", pc.Show())
	e.PATCH("/posts/:id", pc.Update())
	e.DELETE("/posts/:id", pc.Delete())

	return e
}

func serve(e *echo.Echo, method string, path string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

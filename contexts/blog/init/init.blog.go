// Package init is the context's startup API.
//
// It sets up the stores, the use cases and the REST routes of the blog
// and registers the blog's counts at the status endpoint.
package init

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-arrower/userposts"
	"github.com/go-arrower/userposts/alog"
	"github.com/go-arrower/userposts/app"
	"github.com/go-arrower/userposts/contexts/blog/internal/application"
	"github.com/go-arrower/userposts/contexts/blog/internal/interfaces/repository"
	"github.com/go-arrower/userposts/contexts/blog/internal/interfaces/web"
)

const contextName = "blog"

func NewBlogContext(ctx context.Context, di *userposts.Container) (*BlogContext, error) {
	err := ensureRequiredDependencies(di)
	if err != nil {
		return nil, fmt.Errorf("missing dependencies to initialise context blog: %w", err)
	}

	blog := setupBlogContext(di)

	if di.Config != nil {
		err = blog.seed(ctx, di.Config.Seed)
		if err != nil {
			return nil, fmt.Errorf("could not initialise context blog: %w", err)
		}
	}

	di.Logger.DebugContext(ctx, "context blog initialised")

	return blog, nil
}

type BlogContext struct {
	globalContainer *userposts.Container
	logger          alog.Logger

	users *repository.UserMemoryRepository
	posts *repository.PostMemoryRepository

	app application.BlogApplication

	userController *web.UserController
	postController *web.PostController
}

func (c *BlogContext) Shutdown(ctx context.Context) error {
	c.logger.DebugContext(ctx, "context blog shut down")

	return nil
}

// Stats are the counts reported by the status endpoint.
type Stats struct {
	Users int `json:"users"`
	Posts int `json:"posts"`
}

func (c *BlogContext) Stats(ctx context.Context) (Stats, error) {
	users, err := c.users.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("could not count users: %w", err)
	}

	posts, err := c.posts.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("could not count posts: %w", err)
	}

	return Stats{Users: users, Posts: posts}, nil
}

func ensureRequiredDependencies(di *userposts.Container) error {
	if di == nil {
		return fmt.Errorf("%w: container", userposts.ErrMissingDependency)
	}

	if di.Logger == nil {
		return fmt.Errorf("%w: logger", userposts.ErrMissingDependency)
	}

	if di.TraceProvider == nil {
		return fmt.Errorf("%w: trace provider", userposts.ErrMissingDependency)
	}

	if di.MeterProvider == nil {
		return fmt.Errorf("%w: meter provider", userposts.ErrMissingDependency)
	}

	if di.Validator == nil {
		return fmt.Errorf("%w: validator", userposts.ErrMissingDependency)
	}

	if di.APIRouter == nil {
		return fmt.Errorf("%w: api router", userposts.ErrMissingDependency)
	}

	return nil
}

func setupBlogContext(di *userposts.Container) *BlogContext {
	logger := di.Logger.With(slog.String("context", contextName))

	posts := repository.NewPostMemoryRepository()
	users := repository.NewUserMemoryRepository(posts)

	blogApp := setupApplication(di, logger, users, posts)

	blog := &BlogContext{
		globalContainer: di,
		logger:          logger,
		users:           users,
		posts:           posts,
		app:             blogApp,
		userController:  web.NewUserController(blogApp),
		postController:  web.NewPostController(blogApp),
	}

	registerBlogRoutes(blog)

	di.RegisterStatus(contextName, func(ctx context.Context) any {
		stats, err := blog.Stats(ctx)
		if err != nil {
			return map[string]string{"error": err.Error()}
		}

		return stats
	})

	return blog
}

func setupApplication(
	di *userposts.Container,
	logger alog.Logger,
	users *repository.UserMemoryRepository,
	posts *repository.PostMemoryRepository,
) application.BlogApplication {
	validate := di.Validator

	return application.BlogApplication{
		CreateUser: app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger,
			app.NewValidatedRequest(validate, application.NewCreateUserRequestHandler(users)),
		),
		ListUsers: app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger,
			application.NewListUsersQueryHandler(users),
		),
		ShowUser: app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger,
			application.NewShowUserQueryHandler(users),
		),
		UpdateUser: app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger,
			app.NewValidatedRequest(validate, application.NewUpdateUserRequestHandler(users)),
		),
		DeleteUser: app.NewInstrumentedCommand(di.TraceProvider, di.MeterProvider, logger,
			application.NewDeleteUserCommandHandler(users),
		),

		CreatePost: app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger,
			app.NewValidatedRequest(validate, application.NewCreatePostRequestHandler(users, posts)),
		),
		CreateUserPost: app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger,
			app.NewValidatedRequest(validate, application.NewCreateUserPostRequestHandler(users, posts)),
		),
		ListPosts: app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger,
			application.NewListPostsQueryHandler(posts),
		),
		ListUserPosts: app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger,
			application.NewListUserPostsQueryHandler(posts),
		),
		ShowPost: app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger,
			application.NewShowPostQueryHandler(posts),
		),
		UpdatePost: app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger,
			app.NewValidatedRequest(validate, application.NewUpdatePostRequestHandler(users, posts)),
		),
		DeletePost: app.NewInstrumentedCommand(di.TraceProvider, di.MeterProvider, logger,
			application.NewDeletePostCommandHandler(posts),
		),
	}
}

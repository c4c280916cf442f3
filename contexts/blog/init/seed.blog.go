package init

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/go-arrower/userposts"
	"github.com/go-arrower/userposts/alog"
	"github.com/go-arrower/userposts/contexts/blog/internal/application"
)

// seed creates conf.Users random users with conf.PostsPerUser posts each.
// The data goes through the use cases, so it is validated like any request.
// The same seed value produces the same data.
func (c *BlogContext) seed(ctx context.Context, conf userposts.Seed) error {
	if conf.Users <= 0 {
		return nil
	}

	faker := gofakeit.New(conf.Seed)

	for range conf.Users {
		user, err := c.app.CreateUser.H(ctx, application.CreateUserRequest{
			Name:     faker.Name(),
			Username: faker.Username(),
			Email:    faker.Email(),
		})
		if err != nil {
			return fmt.Errorf("could not seed user: %w", err)
		}

		for range conf.PostsPerUser {
			_, err = c.app.CreateUserPost.H(ctx, application.CreateUserPostRequest{
				UserID: user.User.ID,
				Title:  faker.Sentence(4), //nolint:mnd
			})
			if err != nil {
				return fmt.Errorf("could not seed post: %w", err)
			}
		}
	}

	c.logger.LogAttrs(ctx, alog.LevelInfo, "seeded blog",
		slog.Int("users", conf.Users),
		slog.Int("posts_per_user", conf.PostsPerUser),
		slog.Int64("seed", conf.Seed),
	)

	return nil
}

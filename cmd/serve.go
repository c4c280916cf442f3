package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/go-arrower/userposts"
	blog "github.com/go-arrower/userposts/contexts/blog/init"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(osSignal <-chan os.Signal) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server and the status endpoint",
		Long: `Start the web server and the status endpoint.
Configuration is read from the --config file and USERPOSTS_ environment variables.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configFile, _ := cmd.Flags().GetString("config")

			return serve(cmd, configFile, osSignal)
		},
	}
}

func serve(cmd *cobra.Command, configFile string, osSignal <-chan os.Signal) error {
	ctx := cmd.Context()

	conf, err := userposts.DefaultViper().Load(configFile)
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}

	di, err := userposts.InitialiseDefaultDependencies(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not initialise dependencies: %w", err)
	}

	blogContext, err := blog.NewBlogContext(ctx, di)
	if err != nil {
		_ = di.Shutdown(ctx)

		return fmt.Errorf("could not initialise blog: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s listening on :%d\n", appName, conf.HTTP.Port)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(di.ServeWeb)
	group.Go(di.ServeStatus)
	group.Go(func() error {
		select {
		case sig := <-osSignal:
			di.Logger.InfoContext(gctx, "received signal", slog.String("signal", fmt.Sprint(sig)))
		case <-gctx.Done():
		}

		// gctx might be cancelled already, shutting down gets its own deadline.
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		return errors.Join(blogContext.Shutdown(shutdownCtx), di.Shutdown(shutdownCtx))
	})

	if err := group.Wait(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "shut down gracefully")

	return nil
}

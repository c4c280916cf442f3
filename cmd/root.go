// Package cmd contains the commands of the userposts binary.
package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const appName = "userposts"

func newRootCmd(osSignal <-chan os.Signal) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   appName,
		Short: "userposts serves users and their posts over a REST API.",
		Long: `An in-memory store of users and their posts.
Without a sub command the web server is started, see: userposts serve --help`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd, configFile, osSignal)
		},
	}

	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a yaml config file")

	return root
}

// NewUserpostsCLI initialises the complete cli with its commands and returns the root command.
// The server stops, when osSignal receives a value.
func NewUserpostsCLI(osSignal <-chan os.Signal) *cobra.Command {
	rootCmd := newRootCmd(osSignal)
	rootCmd.AddCommand(newServeCmd(osSignal))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// NewInterruptSignalChannel returns a channel listening for the os.Signals the server reacts to.
func NewInterruptSignalChannel() chan os.Signal {
	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	return osSignal
}

// Execute runs the cli.
func Execute() {
	if err := NewUserpostsCLI(NewInterruptSignalChannel()).Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "version",
		Short:                 "Print the " + appName + " version",
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			info := readBuildInfo()

			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s from %s (%s)\n", appName, info.version(), info.timestamp(), runtime.Version())
		},
	}
}

type buildInfo struct {
	commitHash string
	commitTS   string
	modified   bool
}

// version is the last commit hash. Binaries built from uncommitted code, or by
// `go run` and `go test` which do not embed vcs information, report @latest.
func (b buildInfo) version() string {
	if b.modified || b.commitHash == "" {
		return "@latest"
	}

	return b.commitHash
}

func (b buildInfo) timestamp() string {
	if b.modified || b.commitTS == "" {
		return time.Now().UTC().Format(time.RFC3339)
	}

	return b.commitTS
}

func readBuildInfo() buildInfo {
	var info buildInfo

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.commitHash = setting.Value
		case "vcs.time":
			info.commitTS = setting.Value
		case "vcs.modified":
			info.modified = setting.Value == "true"
		}
	}

	return info
}

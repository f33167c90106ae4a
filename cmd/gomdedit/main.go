// Package main is the entry point for the gomdedit CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gomdedit/internal/cli"
	"github.com/yaklabco/gomdedit/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	if err := rootCmd.Execute(); err != nil {
		// ErrChecksFailed only selects the exit code.
		if !errors.Is(err, cli.ErrChecksFailed) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCode(err)
	}

	return cli.ExitSuccess
}

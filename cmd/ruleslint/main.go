// Package main is the entry point for the ruleslint CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/ruleslint/internal/cli"
	"github.com/yaklabco/ruleslint/internal/logging"
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

	err := rootCmd.Execute()
	// The report already explains a failed validation.
	if err != nil && !errors.Is(err, cli.ErrValidationFailed) {
		logging.Default().Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCodeFromError(err)
}

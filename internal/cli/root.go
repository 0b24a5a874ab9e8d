// Package cli provides the Cobra command structure for ruleslint.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ruleslint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root ruleslint command with all subcommands.
// The root command itself validates a target.
func NewRootCommand(info BuildInfo) *cobra.Command {
	globals := &globalFlags{}
	flags := &validateFlags{}

	rootCmd := &cobra.Command{
		Use:   "ruleslint [flags] <target>",
		Short: "Validate rules documents for AI coding assistants",
		Long: `ruleslint checks the Markdown rules documents that configure AI coding
assistants. It verifies that required and recommended sections are present,
that commit message and version examples are well formed, that the document
has a reasonable size, and that exactly one development workflow is declared.

The target may be a single file or a directory. For a directory, ruleslint
looks for rules files at the fixed locations used by common tools
(.cursor/rules, .github/rules, ...) and falls back to Markdown files whose
names mention template, workflow, solo or rules.`,
		Example: `  ruleslint .cursor/rules          # Validate one file
  ruleslint .                      # Discover rules files in the current directory
  ruleslint -r ~/src               # Search subdirectories as well
  ruleslint --format json . | jq   # Machine-readable output for CI`,
		Args: cobra.ExactArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if globals.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], globals, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&globals.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globals.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&globals.color, "color", "auto",
		"colorize output: auto, always, never")

	addValidateFlags(rootCmd, flags)

	rootCmd.AddCommand(newSectionsCommand(globals))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newScaffoldCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(globals.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ruleslint/internal/logging"
	"github.com/yaklabco/ruleslint/pkg/config"
	"github.com/yaklabco/ruleslint/pkg/fsutil"
)

// defaultConfigFile is the file written by init.
const defaultConfigFile = ".ruleslint.yml"

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter .ruleslint.yml",
		Long: `Create a .ruleslint.yml configuration file in the current directory
with the default thresholds and commented examples of every option.

Examples:
  ruleslint init                      Create .ruleslint.yml
  ruleslint init --force              Replace an existing file
  ruleslint init --output ci.yml      Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing file without asking")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.NewWithWriter(cmd.OutOrStdout(), "info")

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if !confirmOverwrite(cmd.InOrStdin(), cmd.OutOrStdout(), absPath, flags.force) {
		return fmt.Errorf("%w: %s; use --force to overwrite", fsutil.ErrExists, flags.output)
	}

	if err := fsutil.WriteFile(ctx, absPath, config.GenerateTemplate(), fsutil.WriteOptions{Overwrite: true}); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'ruleslint sections' to see what a rules document must contain")

	return nil
}

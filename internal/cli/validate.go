package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ruleslint/internal/configloader"
	"github.com/yaklabco/ruleslint/internal/logging"
	"github.com/yaklabco/ruleslint/pkg/config"
	"github.com/yaklabco/ruleslint/pkg/reporter"
	"github.com/yaklabco/ruleslint/pkg/runner"
	"github.com/yaklabco/ruleslint/pkg/validator"
)

type validateFlags struct {
	recursive   bool
	skipVendor  bool
	verbose     bool
	format      string
	jobs        int
	ignore      []string
	minLines    int
	minHeadings int
	compact     bool
}

func addValidateFlags(cmd *cobra.Command, flags *validateFlags) {
	cmd.Flags().BoolVarP(&flags.recursive, "recursive", "r", false, "search subdirectories when the target is a directory")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "print every check result (always enabled)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 1, "number of files validated concurrently")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip during discovery")
	cmd.Flags().IntVar(&flags.minLines, "min-lines", config.DefaultMinLines, "line count below which a file is reported as short")
	cmd.Flags().IntVar(&flags.minHeadings, "min-headings", config.DefaultMinHeadings,
		"heading count below which a file is reported as sparse")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify JSON output")
	cmd.Flags().BoolVar(&flags.skipVendor, "skip-vendored", false,
		"skip vendored directories such as vendor/ and node_modules/ during recursive discovery")
}

// cliConfig builds the configuration layer for flags the user actually set.
func cliConfig(cmd *cobra.Command, globals *globalFlags, flags *validateFlags) *config.Config {
	cfg := &config.Config{Recursive: flags.recursive, SkipVendored: flags.skipVendor}

	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = globals.color
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if cmd.Flags().Changed("min-lines") {
		cfg.Thresholds.MinLines = flags.minLines
	}
	if cmd.Flags().Changed("min-headings") {
		cfg.Thresholds.MinHeadings = flags.minHeadings
	}

	return cfg
}

// loadConfig resolves the effective configuration for a command.
func loadConfig(ctx context.Context, globals *globalFlags, cliCfg *config.Config) (*config.Config, error) {
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: globals.configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfigFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

func runValidate(cmd *cobra.Command, target string, globals *globalFlags, flags *validateFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	// Every result is printed regardless of the flag.
	if !flags.verbose {
		logger.Debug("verbose output is always enabled")
	}

	cfg, err := loadConfig(ctx, globals, cliConfig(cmd, globals, flags))
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		logging.FieldTarget, target,
		logging.FieldRecursive, cfg.Recursive,
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
	)

	format, err := reporter.FromOutputFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       cfg.Color,
		ShowSummary: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	validationRunner := runner.New(validator.New(cfg.Thresholds))
	result, err := validationRunner.Run(ctx, runner.Options{
		Target:    target,
		Recursive:    cfg.Recursive,
		Ignore:       cfg.Ignore,
		SkipVendored: cfg.SkipVendored,
		Jobs:         cfg.Jobs,
	})
	if err != nil {
		return err
	}

	logger.Debug("validation finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesFailed, result.Stats.FilesFailed,
	)

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrValidationFailed
	}
	return nil
}

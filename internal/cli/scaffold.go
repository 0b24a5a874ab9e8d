package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ruleslint/internal/logging"
	"github.com/yaklabco/ruleslint/pkg/fsutil"
	"github.com/yaklabco/ruleslint/pkg/scaffold"
)

type scaffoldFlags struct {
	tool     string
	workflow string
	project  string
	dir      string
	stdout   bool
	force    bool
}

func newScaffoldCommand() *cobra.Command {
	flags := &scaffoldFlags{}

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Write a starter rules document that passes every check",
		Long: fmt.Sprintf(`Write a starter rules document at the fixed location used by an AI
coding tool. The document contains every required and recommended section,
commit message and version examples, and a single declared workflow.

Tools:     %s
Workflows: %s

Examples:
  ruleslint scaffold                              Write .cursor/rules
  ruleslint scaffold --tool github --workflow "Git Flow"
  ruleslint scaffold --stdout > onboarding-template.md`,
			strings.Join(scaffold.Tools(), ", "),
			strings.Join(scaffold.Workflows(), ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScaffold(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.tool, "tool", "cursor", "tool whose rules location is written")
	cmd.Flags().StringVar(&flags.workflow, "workflow", scaffold.DefaultWorkflow, "workflow declared in the document")
	cmd.Flags().StringVar(&flags.project, "project", "", "project name for the title (default: directory name)")
	cmd.Flags().StringVarP(&flags.dir, "dir", "C", ".", "project directory")
	cmd.Flags().BoolVar(&flags.stdout, "stdout", false, "print the document instead of writing it")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing file without asking")

	return cmd
}

func runScaffold(cmd *cobra.Command, flags *scaffoldFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	root, err := filepath.Abs(flags.dir)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	project := flags.project
	if project == "" {
		project = filepath.Base(root)
	}

	doc, err := scaffold.Render(scaffold.Options{Project: project, Workflow: flags.workflow})
	if err != nil {
		return err
	}

	if flags.stdout {
		_, err := fmt.Fprint(cmd.OutOrStdout(), doc)
		return err
	}

	rel, err := scaffold.PathFor(flags.tool)
	if err != nil {
		return err
	}
	target := filepath.Join(root, filepath.FromSlash(rel))

	if !confirmOverwrite(cmd.InOrStdin(), cmd.OutOrStdout(), target, flags.force) {
		return fmt.Errorf("%w: %s; use --force to overwrite", fsutil.ErrExists, target)
	}

	if err := fsutil.WriteFile(ctx, target, []byte(doc), fsutil.WriteOptions{Overwrite: true, CreateDirs: true}); err != nil {
		return fmt.Errorf("write rules document: %w", err)
	}

	logger := logging.NewWithWriter(cmd.OutOrStdout(), "info")
	logger.Info("created rules document", logging.FieldPath, target, logging.FieldWorkflow, flags.workflow)
	return nil
}

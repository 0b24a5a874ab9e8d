package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ruleslint/internal/cli"
	"github.com/yaklabco/ruleslint/pkg/config"
	"github.com/yaklabco/ruleslint/pkg/fsutil"
	"github.com/yaklabco/ruleslint/pkg/reporter"
	"github.com/yaklabco/ruleslint/pkg/scaffold"
)

// execute runs the root command with an isolated empty config file.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), "ruleslint.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("color: never\n"), 0644))

	cmd := cli.NewRootCommand(testInfo)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", cfgFile}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func writeRules(t *testing.T, path string, workflow string) {
	t.Helper()
	doc, err := scaffold.Render(scaffold.Options{Project: "Demo", Workflow: workflow})
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
}

func TestIntegration_ValidFileExitsZero(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.md")
	writeRules(t, path, "Linear Workflow")

	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromError(err))
	assert.Contains(t, out, "✓ Found required section: Git Workflow")
	assert.Contains(t, out, "✓ Workflow configured: Linear Workflow")
	assert.Contains(t, out, "All checks passed")
}

func TestIntegration_ShortDocumentFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notes.md")
	content := "# Notes\n\nline\nline\nline\nline\n\n## Misc\n\nend\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := execute(t, path)
	require.ErrorIs(t, err, cli.ErrValidationFailed)
	assert.Equal(t, cli.ExitFailure, cli.ExitCodeFromError(err))
	assert.Contains(t, out, "✗ Missing required section: Healthy Project")
	assert.Contains(t, out, "⚠ File is short (11 lines, expected at least 50)")
	assert.Contains(t, out, "⚠ Too few headings (2, expected at least 5)")
}

func TestIntegration_MissingTarget(t *testing.T) {
	t.Parallel()

	out, err := execute(t, filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitFailure, cli.ExitCodeFromError(err))
	assert.Empty(t, out, "no checks run")
}

func TestIntegration_VerboseAccepted(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.md")
	writeRules(t, path, "Git Flow")

	quiet, err := execute(t, path)
	require.NoError(t, err)
	verbose, err := execute(t, "--verbose", path)
	require.NoError(t, err)
	short, err := execute(t, "-v", path)
	require.NoError(t, err)

	assert.Equal(t, quiet, verbose)
	assert.Equal(t, quiet, short)
}

func TestIntegration_DirectoryDiscovery(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeRules(t, filepath.Join(root, ".cursor", "rules"), "Dev-First Workflow")
	writeRules(t, filepath.Join(root, "nested", ".github", "rules"), "Feature Branch Workflow")

	out, err := execute(t, root)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(".cursor", "rules"))
	assert.NotContains(t, out, "nested")

	out, err = execute(t, "-r", root)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join("nested", ".github", "rules"))
}

func TestIntegration_RecursiveFallbackFindsHiddenTemplates(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeRules(t, filepath.Join(root, ".github", "workflow-template.md"), "Git Flow")

	_, err := execute(t, root)
	require.ErrorIs(t, err, cli.ErrValidationFailed, "nested templates need --recursive")

	out, err := execute(t, "-r", root)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(".github", "workflow-template.md"))
}

func TestIntegration_EmptyDirectoryFails(t *testing.T) {
	t.Parallel()

	out, err := execute(t, t.TempDir())
	require.ErrorIs(t, err, cli.ErrValidationFailed)
	assert.Contains(t, out, "No rules files or template files found")
}

func TestIntegration_JSONOutput(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeRules(t, filepath.Join(root, "solo-workflow.md"), "Linear Workflow")

	out, err := execute(t, "--format", "json", root)
	require.NoError(t, err)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))
	assert.True(t, output.Success)
	assert.Equal(t, "fallback", output.Source)
	require.Len(t, output.Files, 1)
	assert.Len(t, output.Files[0].Results, 14)
}

func TestIntegration_InvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "--format", "xml", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestIntegration_ThresholdFlags(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.md")
	writeRules(t, path, "Linear Workflow")

	out, err := execute(t, "--min-lines", "500", path)
	require.NoError(t, err, "warnings do not fail the run")
	assert.Contains(t, out, "expected at least 500")
}

func TestIntegration_Sections(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "sections")
	require.NoError(t, err)
	assert.Contains(t, out, "Forbidden Operations")
	assert.Contains(t, out, "Critical Violations")
	assert.Contains(t, out, "Dev-First Workflow")
	assert.Contains(t, out, ".tabnine/rules")

	out, err = execute(t, "sections", "--format", "json")
	require.NoError(t, err)
	var catalog map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &catalog))
	assert.Len(t, catalog["required"], 5)
	assert.Len(t, catalog["recommended"], 4)
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".ruleslint.yml")

	_, err := execute(t, "init", "--output", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	cfg, err := config.FromYAML(content)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultMinLines, cfg.Thresholds.MinLines)

	_, err = execute(t, "init", "--output", path)
	require.ErrorIs(t, err, fsutil.ErrExists, "non-interactive input never overwrites")

	_, err = execute(t, "init", "--output", path, "--force")
	require.NoError(t, err)
}

func TestIntegration_ScaffoldThenValidate(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	_, err := execute(t, "scaffold", "--dir", root, "--tool", "github", "--workflow", "Git Flow")
	require.NoError(t, err)

	target := filepath.Join(root, ".github", "rules")
	assert.FileExists(t, target)

	out, err := execute(t, root)
	require.NoError(t, err)
	assert.Contains(t, out, "Workflow configured: Git Flow")

	_, err = execute(t, "scaffold", "--dir", root, "--tool", "github")
	require.ErrorIs(t, err, fsutil.ErrExists)
}

func TestIntegration_ScaffoldErrors(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "scaffold", "--dir", t.TempDir(), "--tool", "emacs")
	require.Error(t, err)

	_, err = execute(t, "scaffold", "--dir", t.TempDir(), "--workflow", "Trunk")
	require.Error(t, err)
}

func TestIntegration_ScaffoldStdout(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "scaffold", "--stdout", "--project", "Acme")
	require.NoError(t, err)
	assert.Contains(t, out, "# Acme Rules")
}

package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ruleslint/internal/cli"
	"github.com/yaklabco/ruleslint/pkg/runner"
)

var testInfo = cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	require.NotNil(t, cmd)

	assert.Equal(t, "ruleslint", cmd.Name())
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	for _, name := range []string{"sections", "init", "scaffold", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, subCmd.Name())
	}
}

func TestRootCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	for _, name := range []string{"recursive", "verbose", "format", "jobs", "ignore", "min-lines", "min-headings", "skip-vendored"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %q", name)
	}
	assert.Equal(t, "r", cmd.Flags().Lookup("recursive").Shorthand)
	assert.Equal(t, "v", cmd.Flags().Lookup("verbose").Shorthand)

	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "global flag %q", name)
	}
}

func TestRootCommandRequiresOneTarget(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	require.Error(t, cmd.Args(cmd, nil))
	require.Error(t, cmd.Args(cmd, []string{"a", "b"}))
	require.NoError(t, cmd.Args(cmd, []string{"."}))
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"})
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "1.2.3")
	assert.Contains(t, out.String(), "abc123")
}

func TestExitCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitFailure, cli.ExitCodeFromResult(nil))
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(&runner.Result{Stats: runner.Stats{FilesPassed: 1}}))
	assert.Equal(t, cli.ExitFailure, cli.ExitCodeFromResult(&runner.Result{Stats: runner.Stats{FilesFailed: 1}}))

	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromError(nil))
	assert.Equal(t, cli.ExitFailure, cli.ExitCodeFromError(cli.ErrValidationFailed))
}

func TestHelpIsStyled(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	cmd.SetArgs([]string{"--help"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	help := out.String()
	assert.Contains(t, help, "Usage:")
	assert.Contains(t, help, "Available Commands:")
	assert.Contains(t, help, "--recursive")
	assert.Contains(t, help, "scaffold")
}

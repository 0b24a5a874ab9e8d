package discovery_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ruleslint/pkg/discovery"
)

func createFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("# Rules\n"), 0644))
	}
}

func abs(root string, rels ...string) []string {
	out := make([]string, 0, len(rels))
	for _, rel := range rels {
		out = append(out, filepath.Join(root, filepath.FromSlash(rel)))
	}
	return out
}

func TestDiscover_ConventionFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root, ".cursor/rules", ".github/rules", "rules-template.md")

	result, err := discovery.Discover(context.Background(), discovery.Options{Root: root})
	require.NoError(t, err)

	assert.Equal(t, discovery.SourceConvention, result.Source)
	assert.Equal(t, abs(root, ".cursor/rules", ".github/rules"), result.Files)
}

func TestDiscover_ConventionDirectoryIsNotAFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root, ".cursor/rules/style.mdc", "solo-workflow.md")

	result, err := discovery.Discover(context.Background(), discovery.Options{Root: root})
	require.NoError(t, err)

	assert.Equal(t, discovery.SourceFallback, result.Source)
	assert.Equal(t, abs(root, "solo-workflow.md"), result.Files)
}

func TestDiscover_NonRecursiveIgnoresNested(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root, "service/.tabnine/rules", "docs/rules.md")

	_, err := discovery.Discover(context.Background(), discovery.Options{Root: root})
	require.ErrorIs(t, err, discovery.ErrNoRulesFiles)
}

func TestDiscover_RecursiveConventionFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root,
		".ai-ide/rules",
		"service/.tabnine/rules",
		"service/.code-whisperer/rules",
		"docs/rules.md",
		".git/.cursor/rules",
	)

	result, err := discovery.Discover(context.Background(), discovery.Options{Root: root, Recursive: true})
	require.NoError(t, err)

	assert.Equal(t, discovery.SourceConvention, result.Source)
	assert.Equal(t, abs(root,
		".ai-ide/rules",
		"service/.code-whisperer/rules",
		"service/.tabnine/rules",
	), result.Files)
}

func TestDiscover_FallbackTemplate(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root, "onboarding-template.md", "README.md", "notes.txt", "workflow.txt")

	result, err := discovery.Discover(context.Background(), discovery.Options{Root: root})
	require.NoError(t, err)

	assert.Equal(t, discovery.SourceFallback, result.Source)
	assert.Equal(t, abs(root, "onboarding-template.md"), result.Files)
}

func TestDiscover_FallbackCaseInsensitive(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root, "SOLO.MD", "Team-Workflow.md", "My_Rules.md", "guide.md")

	result, err := discovery.Discover(context.Background(), discovery.Options{Root: root})
	require.NoError(t, err)

	assert.Equal(t, abs(root, "My_Rules.md", "SOLO.MD", "Team-Workflow.md"), result.Files)
}

func TestDiscover_RecursiveFallbackSearchesEveryDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root,
		".github/workflow-template.md",
		"docs/solo-template.md",
		"node_modules/pkg/rules.md",
		".git/rules-template.md",
		"archive/old-rules.md",
	)

	result, err := discovery.Discover(context.Background(), discovery.Options{
		Root:      root,
		Recursive: true,
		Ignore:    []string{"archive/**"},
	})
	require.NoError(t, err)

	assert.Equal(t, discovery.SourceFallback, result.Source)
	assert.Equal(t, abs(root,
		".github/workflow-template.md",
		"docs/solo-template.md",
		"node_modules/pkg/rules.md",
	), result.Files)
}

func TestDiscover_HiddenTemplateOnly(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root, ".github/workflow-template.md")

	result, err := discovery.Discover(context.Background(), discovery.Options{Root: root, Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, abs(root, ".github/workflow-template.md"), result.Files)
}

func TestDiscover_SkipVendored(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root,
		"docs/solo-template.md",
		"node_modules/pkg/rules.md",
		"vendor/lib/workflow.md",
		"third_party/.cursor/rules",
	)

	result, err := discovery.Discover(context.Background(), discovery.Options{
		Root:         root,
		Recursive:    true,
		SkipVendored: true,
	})
	require.NoError(t, err)

	assert.Equal(t, discovery.SourceFallback, result.Source, "vendored convention files are skipped too")
	assert.Equal(t, abs(root, "docs/solo-template.md"), result.Files)
}

func TestDiscover_SkipVendoredKeepsToolDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root, ".github/rules", "service/.github/rules", "vendor/.github/rules")

	result, err := discovery.Discover(context.Background(), discovery.Options{
		Root:         root,
		Recursive:    true,
		SkipVendored: true,
	})
	require.NoError(t, err)
	assert.Equal(t, abs(root, ".github/rules", "service/.github/rules"), result.Files)

	root = t.TempDir()
	createFiles(t, root, ".github/workflow-template.md")

	result, err = discovery.Discover(context.Background(), discovery.Options{
		Root:         root,
		Recursive:    true,
		SkipVendored: true,
	})
	require.NoError(t, err)
	assert.Equal(t, abs(root, ".github/workflow-template.md"), result.Files)
}

func TestDiscover_NothingFound(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root, "README.md", "docs/guide.md")

	for _, recursive := range []bool{false, true} {
		_, err := discovery.Discover(context.Background(), discovery.Options{Root: root, Recursive: recursive})
		assert.ErrorIs(t, err, discovery.ErrNoRulesFiles)
	}
}

func TestDiscover_CancelledContext(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root, "a/b/rules.md")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := discovery.Discover(ctx, discovery.Options{Root: root, Recursive: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

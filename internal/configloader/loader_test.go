package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ruleslint/pkg/config"
)

// newProject creates a temporary VCS root so upward config search stops there.
func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func isolatedOptions(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:       dir,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolatedOptions(newProject(t)))
	require.NoError(t, err)
	require.NotNil(t, result.Config)

	assert.Equal(t, config.NewConfig(), result.Config)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	configPath := filepath.Join(dir, ".ruleslint.yml")
	writeConfig(t, configPath, `
recursive: true
format: json
thresholds:
  min_lines: 30
skip_vendored: true
ignore:
  - "vendor/**"
`)

	result, err := Load(context.Background(), isolatedOptions(dir))
	require.NoError(t, err)

	assert.True(t, result.Config.Recursive)
	assert.Equal(t, config.FormatJSON, result.Config.Format)
	assert.Equal(t, 30, result.Config.Thresholds.MinLines)
	assert.Equal(t, config.DefaultMinHeadings, result.Config.Thresholds.MinHeadings)
	assert.Equal(t, []string{"vendor/**"}, result.Config.Ignore)
	assert.True(t, result.Config.SkipVendored)
	assert.Equal(t, []string{configPath}, result.LoadedFrom)
}

func TestLoad_ProjectConfigFromSubdirectory(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	configPath := filepath.Join(dir, ".ruleslint.yml")
	writeConfig(t, configPath, "color: never\n")

	nested := filepath.Join(dir, "docs", "guides")
	require.NoError(t, os.MkdirAll(nested, 0755))

	result, err := Load(context.Background(), isolatedOptions(nested))
	require.NoError(t, err)
	assert.Equal(t, "never", result.Config.Color)
	assert.Equal(t, configPath, result.Paths.Project)
}

func TestLoad_ExplicitConfigOverridesProject(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeConfig(t, filepath.Join(dir, ".ruleslint.yml"), "format: json\ncolor: never\n")
	customPath := filepath.Join(dir, "ci", "ruleslint.yml")
	writeConfig(t, customPath, "format: text\n")

	opts := isolatedOptions(dir)
	opts.ExplicitPath = customPath

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.FormatText, result.Config.Format)
	assert.Equal(t, "never", result.Config.Color)
	assert.Len(t, result.LoadedFrom, 2)
	assert.Equal(t, customPath, result.LoadedFrom[1])
}

func TestLoad_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	opts := isolatedOptions(dir)
	opts.ExplicitPath = filepath.Join(dir, "absent.yml")

	_, err := Load(context.Background(), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_UserConfig(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	userPath := filepath.Join(configHome, "ruleslint", "config.yaml")
	writeConfig(t, userPath, "color: always\nthresholds:\n  min_headings: 3\n")

	dir := newProject(t)
	writeConfig(t, filepath.Join(dir, ".ruleslint.yml"), "color: never\n")

	result, err := Load(context.Background(), LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	require.NoError(t, err)

	assert.Equal(t, "never", result.Config.Color, "project beats user")
	assert.Equal(t, 3, result.Config.Thresholds.MinHeadings)
	assert.Equal(t, userPath, result.LoadedFrom[0])
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("RULESLINT_FORMAT", "json")
	t.Setenv("RULESLINT_MIN_LINES", "10")
	t.Setenv("RULESLINT_IGNORE", "a/**, b/**")
	t.Setenv("RULESLINT_SKIP_VENDORED", "true")

	dir := newProject(t)
	writeConfig(t, filepath.Join(dir, ".ruleslint.yml"), "format: text\nthresholds:\n  min_lines: 80\n")

	result, err := Load(context.Background(), LoadOptions{WorkingDir: dir, IgnoreUserConfig: true})
	require.NoError(t, err)

	assert.Equal(t, config.FormatJSON, result.Config.Format)
	assert.Equal(t, 10, result.Config.Thresholds.MinLines)
	assert.Equal(t, []string{"a/**", "b/**"}, result.Config.Ignore)
	assert.True(t, result.Config.SkipVendored)
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	t.Setenv("RULESLINT_JOBS", "many")

	_, err := Load(context.Background(), LoadOptions{WorkingDir: newProject(t), IgnoreUserConfig: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RULESLINT_JOBS")
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeConfig(t, filepath.Join(dir, ".ruleslint.yml"), "format: json\n")

	opts := isolatedOptions(dir)
	opts.CLIConfig = &config.Config{Format: config.FormatText, Recursive: true, Jobs: 4}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.FormatText, result.Config.Format)
	assert.True(t, result.Config.Recursive)
	assert.Equal(t, 4, result.Config.Jobs)
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeConfig(t, filepath.Join(dir, ".ruleslint.yml"), `
format: xml
thresholds:
  min_lines: -1
`)

	_, err := Load(context.Background(), isolatedOptions(dir))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Contains(t, err.Error(), "min_lines must be >= 0")
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeConfig(t, filepath.Join(dir, ".ruleslint.yml"), "format: [text\n")

	_, err := Load(context.Background(), isolatedOptions(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load project config")
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolatedOptions(newProject(t)))
	require.ErrorIs(t, err, context.Canceled)
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeConfig(t, filepath.Join(outer, ".ruleslint.yml"), "color: never\n")
	inner := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(inner, ".git"), 0755))

	found, err := FindProjectConfig(context.Background(), inner)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindProjectConfig_Preference(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeConfig(t, filepath.Join(dir, "ruleslint.yaml"), "")
	writeConfig(t, filepath.Join(dir, ".ruleslint.yaml"), "")

	found, err := FindProjectConfig(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".ruleslint.yaml"), found)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Ignore = []string{"a"}

	merged := MergeAll(base, &config.Config{Color: "never"}, &config.Config{Ignore: []string{"b"}})

	assert.Equal(t, "never", merged.Color)
	assert.Equal(t, config.FormatText, merged.Format)
	assert.Equal(t, []string{"b"}, merged.Ignore)
	assert.Equal(t, []string{"a"}, base.Ignore, "base is not modified")
	assert.Nil(t, MergeAll())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*config.Config)
		wantErr   string
		wantWarns int
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "bad color", mutate: func(c *config.Config) { c.Color = "rainbow" }, wantErr: "invalid color mode"},
		{name: "negative jobs", mutate: func(c *config.Config) { c.Jobs = -2 }, wantErr: "jobs must be"},
		{name: "many jobs", mutate: func(c *config.Config) { c.Jobs = 500 }, wantWarns: 1},
		{name: "negative headings", mutate: func(c *config.Config) { c.Thresholds.MinHeadings = -1 }, wantErr: "min_headings"},
		{name: "bad glob", mutate: func(c *config.Config) { c.Ignore = []string{"[abc"} }, wantErr: "invalid glob pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.NewConfig()
			tt.mutate(cfg)

			result := ValidateWithFile(cfg, ".ruleslint.yml")
			if tt.wantErr == "" {
				assert.True(t, result.Valid(), result.AllMessages())
			} else {
				require.False(t, result.Valid())
				assert.Contains(t, result.Errors[0].Error(), tt.wantErr)
				assert.Contains(t, result.Errors[0].Error(), ".ruleslint.yml")
			}
			assert.Len(t, result.Warnings, tt.wantWarns)
		})
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	require.NotEmpty(t, vars)
	for i, v := range vars {
		assert.NotEmpty(t, v.Description)
		if i > 0 {
			assert.Less(t, vars[i-1].Name, v.Name)
		}
	}
	assert.Equal(t, "RULESLINT_MIN_LINES", GetEnvVarName("thresholds.min_lines"))
	assert.Equal(t, "RULESLINT_SKIP_VENDORED", GetEnvVarName("skip_vendored"))
	assert.Empty(t, GetEnvVarName("nope"))
}

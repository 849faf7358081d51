package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("bundle", pflag.ContinueOnError)
	fs.String("output", "", "")
	fs.StringSlice("language", nil, "")
	fs.Bool("include-source", false, "")
	fs.String("sort", "", "")
	fs.Bool("remove-empty-lines", false, "")
	fs.StringArray("exclude", nil, "")
	return fs
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		d, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, Defaults{}, d)
	})

	t.Run("reads values", func(t *testing.T) {
		dir := t.TempDir()
		doc := "output: bundle.txt\n" +
			"language: [java, python]\n" +
			"include-source: true\n" +
			"sort: type\n" +
			"exclude:\n  - \"*_test.py\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(doc), 0o644))

		d, err := Load(dir)
		require.NoError(t, err)
		require.NotNil(t, d.Output)
		assert.Equal(t, "bundle.txt", *d.Output)
		assert.Equal(t, []string{"java", "python"}, d.Language)
		require.NotNil(t, d.IncludeSource)
		assert.True(t, *d.IncludeSource)
		assert.Nil(t, d.RemoveEmptyLines)
		assert.Equal(t, []string{"*_test.py"}, d.Exclude)
	})
}

func TestParse(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		d, err := Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, Defaults{}, d)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Parse([]byte("languages: [java]\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), FileName)
	})
}

func TestDefaults_Apply(t *testing.T) {
	d, err := Parse([]byte("output: from-config.txt\nlanguage: [java]\nremove-empty-lines: true\nsort: type\nexclude: [a.js]\n"))
	require.NoError(t, err)

	fs := newFlags(t)
	require.NoError(t, fs.Parse([]string{"--output", "from-flag.txt", "--sort=alphabetical"}))
	require.NoError(t, d.Apply(fs))

	output, _ := fs.GetString("output")
	langs, _ := fs.GetStringSlice("language")
	remove, _ := fs.GetBool("remove-empty-lines")
	include, _ := fs.GetBool("include-source")
	sort, _ := fs.GetString("sort")
	exclude, _ := fs.GetStringArray("exclude")

	assert.Equal(t, "from-flag.txt", output)
	assert.Equal(t, []string{"java"}, langs)
	assert.True(t, remove)
	assert.False(t, include)
	assert.Equal(t, "alphabetical", sort)
	assert.Equal(t, []string{"a.js"}, exclude)
}

func TestDefaults_ApplyIgnoresUnknownFlags(t *testing.T) {
	d, err := Parse([]byte("output: x.txt\nsort: type\n"))
	require.NoError(t, err)

	fs := pflag.NewFlagSet("create-rsp", pflag.ContinueOnError)
	fs.String("author", "", "")
	assert.NoError(t, d.Apply(fs))
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CODEBUNDLER_LOG_LEVEL=info\nCODEBUNDLER_DEBUG=true\n"), 0o644))

	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvDebug, "")
	os.Unsetenv(EnvLogLevel)
	os.Unsetenv(EnvDebug)

	env := LoadEnv(dir)
	assert.Equal(t, "info", env.LogLevel)
	assert.True(t, env.Debug)
}

func TestLoadEnv_ProcessWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CODEBUNDLER_LOG_LEVEL=info\n"), 0o644))
	t.Setenv(EnvLogLevel, "error")

	assert.Equal(t, "error", LoadEnv(dir).LogLevel)
}

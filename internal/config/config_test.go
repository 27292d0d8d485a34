package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todoview/internal/backend/placeholder"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newFlags(t), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, placeholder.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, placeholder.DefaultTimeout, cfg.Timeout)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Empty(t, cfg.File)
	assert.False(t, cfg.Debug)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "base_url: http://cfg.test/\ntimeout: 3s\ntheme: mono\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".todoview.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(newFlags(t), dir)
	require.NoError(t, err)
	assert.Equal(t, "http://cfg.test", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "mono", cfg.Theme)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".todoview.yaml"), []byte("base_url: http://cfg.test\n"), 0o644))
	t.Setenv("TODOVIEW_BASE_URL", "http://env.test")

	cfg, err := Load(newFlags(t), dir)
	require.NoError(t, err)
	assert.Equal(t, "http://env.test", cfg.BaseURL)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("TODOVIEW_BASE_URL", "http://env.test")

	cfg, err := Load(newFlags(t, "--base-url", "http://flag.test", "--timeout", "250ms"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "http://flag.test", cfg.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
}

func TestLoad_Invalid(t *testing.T) {
	for name, args := range map[string][]string{
		"timeout":  {"--timeout", "0s"},
		"theme":    {"--theme", "sepia"},
		"base url": {"--base-url", " "},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(newFlags(t, args...), t.TempDir())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}

func TestLoad_FileSourceAllowsEmptyBaseURL(t *testing.T) {
	cfg, err := Load(newFlags(t, "--base-url", "", "--file", "todos.json"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "todos.json", cfg.File)
}

func TestLoad_UnreadableConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".todoview.yaml"), []byte("base_url: [unterminated\n"), 0o644))

	_, err := Load(newFlags(t), dir)
	assert.ErrorContains(t, err, "read config")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Seed)
	assert.Empty(t, cfg.Journal)
	assert.Empty(t, cfg.User)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultFormat, cfg.Format)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("SKILLBRIDGE_LOG_LEVEL", "debug")
	t.Setenv("SKILLBRIDGE_USER", "sarasmith")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "sarasmith", cfg.User)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\nuser: mchen\n"), 0o644))

	cmd := &cobra.Command{}
	cmd.Flags().String("config", path, "")
	cmd.Flags().String("format", DefaultFormat, "")
	cmd.Flags().String("user", "", "")

	cfg, err := Load(cmd)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "mchen", cfg.User)
}

func TestLoad_FlagsWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o644))

	cmd := &cobra.Command{}
	cmd.Flags().String("config", path, "")
	cmd.Flags().String("format", DefaultFormat, "")
	require.NoError(t, cmd.Flags().Set("format", "text"))

	cfg, err := Load(cmd)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Format)
}

func TestLoad_MissingConfigFileFails(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("config", filepath.Join(t.TempDir(), "nope.yaml"), "")

	_, err := Load(cmd)
	require.Error(t, err)
}

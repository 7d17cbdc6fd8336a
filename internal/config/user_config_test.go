package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"codebird.dev/codebird/internal/config"
)

func TestLoadUserConfig(t *testing.T) {
	t.Run("reads overridden config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("defaultBranch: trunk\ncolor: never\n"), 0600))
		t.Setenv("CODEBIRD_CONFIG", path)

		cfg, err := config.LoadUserConfig()
		require.NoError(t, err)
		require.Equal(t, "trunk", cfg.DefaultBranch)
		require.Equal(t, "never", cfg.Color)
	})

	t.Run("missing file yields zero config", func(t *testing.T) {
		t.Setenv("CODEBIRD_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

		cfg, err := config.LoadUserConfig()
		require.NoError(t, err)
		require.Empty(t, cfg.DefaultBranch)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\n\t- nope"), 0600))
		t.Setenv("CODEBIRD_CONFIG", path)

		_, err := config.LoadUserConfig()
		require.Error(t, err)
	})
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"sentinel/core/config"
	"sentinel/core/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "f5-bigip-a1", cfg.State.DeviceID)
		assert.Equal(t, "virtual_server_root", cfg.State.Root)
		assert.Equal(t, state.BackendFile, cfg.State.Backend)
		assert.Equal(t, "gold_standard.yaml", cfg.State.DesiredPath)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("EnvironmentOverride", func(t *testing.T) {
		t.Setenv("STATE_DEVICE_ID", "f5-bigip-b7")
		t.Setenv("STATE_BACKEND", "bucket")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "f5-bigip-b7", cfg.State.DeviceID)
		assert.Equal(t, state.BackendBucket, cfg.State.Backend)
	})

	t.Run("DotEnvOverride", func(t *testing.T) {
		// godotenv.Overload writes into the process environment; registering
		// the key with t.Setenv makes the test framework restore it after.
		t.Setenv("STATE_ROOT", "")

		dir := t.TempDir()
		env := "STATE_ROOT=lb_cluster_root\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

		cfg, err := config.LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, "lb_cluster_root", cfg.State.Root)
	})

	t.Run("InvalidBackendRejected", func(t *testing.T) {
		t.Setenv("STATE_BACKEND", "ftp")

		_, err := config.LoadConfig(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "backend")
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// unsetEnv clears the key for the duration of the test and restores it
// afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("MissingFileUsesDefaults", func(t *testing.T) {
		unsetEnv(t, "SERVER_ADDRESS", "DB_DRIVER", "DB_SOURCE")
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		require.Equal(t, defaultServerAddress, cfg.ServerAddress)
		require.Equal(t, defaultDBDriver, cfg.DBDriver)
		require.Equal(t, defaultDBSource, cfg.DBSource)
	})

	t.Run("YAMLOverridesDefaults", func(t *testing.T) {
		unsetEnv(t, "SERVER_ADDRESS", "DB_DRIVER", "DB_SOURCE")
		path := filepath.Join(t.TempDir(), "config.yaml")
		body := "server_address: 127.0.0.1:9000\ndb_driver: postgres\ndb_source: postgresql://test\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "127.0.0.1:9000", cfg.ServerAddress)
		require.Equal(t, "postgresql://test", cfg.DBSource)
	})

	t.Run("EnvOverridesYAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		body := "server_address: 127.0.0.1:9000\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))

		t.Setenv("SERVER_ADDRESS", "127.0.0.1:9999")
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "127.0.0.1:9999", cfg.ServerAddress)
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server_address: [unclosed"), 0644))

		_, err := Load(path)
		require.Error(t, err)
	})
}

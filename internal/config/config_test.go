package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults fill missing keys", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the rest comes from defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "pve", conf.Game.DefaultMode)
		assert.Equal(t, 5, conf.Game.DefaultDifficulty)
		assert.Equal(t, 500*time.Millisecond, conf.Game.MachineDelay)
	})

	t.Run("File values are read", func(t *testing.T) {
		path := writeConfig(t, `
http-port: "8080"
redis:
  host: redis
  port: "6380"
game:
  default-mode: pvp
  default-difficulty: 8
  machine-delay: 1s
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "pvp", conf.Game.DefaultMode)
		assert.Equal(t, 8, conf.Game.DefaultDifficulty)
		assert.Equal(t, time.Second, conf.Game.MachineDelay)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "socket-port: \"7000\"\n")
		t.Setenv("SOCKET_PORT", "7001")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "7001", conf.SocketPort)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "absent.yml")) })
	})
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("verbose"))
}

func TestLoadFromEnv(t *testing.T) {
	// Given: only one variable is set
	t.Setenv("GAME_DEFAULT_DIFFICULTY", "2")

	// When: the config is read from the environment
	conf, err := LoadFromEnv()

	// Then: the variable wins and the rest falls back to defaults
	require.NoError(t, err)
	assert.Equal(t, 2, conf.Game.DefaultDifficulty)
	assert.Equal(t, "pve", conf.Game.DefaultMode)
	assert.Equal(t, 500*time.Millisecond, conf.Game.MachineDelay)
}

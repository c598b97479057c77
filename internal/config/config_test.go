package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gofish", "config.toml")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadFileReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "player_name = \"Ada\"\nseed = 42\nlog_lines = 12\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Ada", cfg.PlayerName)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 12, cfg.LogLines)
	// unset keys keep their defaults
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("seed = [nope"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadAppliesEnvironment(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GOFISH_PLAYER_NAME", "Grace")
	t.Setenv("GOFISH_SEED", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Grace", cfg.PlayerName)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 8, cfg.LogLines)
}

func TestSetPlayerName(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, SetPlayerName("Linus"))

	cfg, err := LoadFile(GetConfigFilePath())
	require.NoError(t, err)
	assert.Equal(t, "Linus", cfg.PlayerName)
}

func TestPathsFollowXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "gofish", "config.toml"), GetConfigFilePath())
	assert.Equal(t, filepath.Join(dir, "gofish", "gofish.log"), GetLogFilePath())
}

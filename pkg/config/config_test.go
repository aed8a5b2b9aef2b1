package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Defaults.Strict)
	assert.Equal(t, "none", cfg.Defaults.Decompress)
}

func TestNewConfigManagerCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cm, err := NewConfigManagerAt(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cm.GetConfig())
	assert.Equal(t, path, cm.Path())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadDoesNotWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadAt(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, os.WriteFile(path, []byte(`{"defaults": {"strict": false}}`), 0600))
	cfg, err = LoadAt(path)
	require.NoError(t, err)
	assert.False(t, cfg.Defaults.Strict)

	require.NoError(t, os.WriteFile(path, []byte(`{"ui": {"verbosity": "loud"}}`), 0600))
	_, err = LoadAt(path)
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cm, err := NewConfigManagerAt(path)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Defaults.Parallel = true
	cfg.Defaults.ChunkSize = 4096
	cfg.Defaults.Decompress = "auto"
	cfg.UI.UseColor = false
	cm.SetConfig(cfg)
	require.NoError(t, cm.SaveConfig())

	reloaded, err := NewConfigManagerAt(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded.GetConfig())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"defaults": {"workers": 3}}`), 0600))

	cm, err := NewConfigManagerAt(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cm.GetConfig().Defaults.Workers)
	assert.True(t, cm.GetConfig().Defaults.Strict)
	assert.True(t, cm.GetConfig().UI.UseColor)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Malformed JSON", `{"defaults": `},
		{"Bad decompress", `{"defaults": {"decompress": "bzip9"}}`},
		{"Negative chunk", `{"defaults": {"chunk_size": -5}}`},
		{"Bad verbosity", `{"ui": {"verbosity": "loud"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			_, err := NewConfigManagerAt(path)
			assert.Error(t, err)
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("SL2HASH_CONFIG", "/tmp/custom.json")
	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.json", path)

	t.Setenv("SL2HASH_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	path, err = GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "sl2hash", "config.json"), path)
}

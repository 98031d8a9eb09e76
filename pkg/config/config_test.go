package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 64, cfg.Server.MaxResults)
	assert.Equal(t, []string{"fr", "en"}, cfg.Languages.Enabled)
	assert.Equal(t, 5000, cfg.Cache.ValidationSize)
	assert.Equal(t, 3600, cfg.Cache.DefinitionTTLSecs)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Server.MaxResults = 128
	cfg.Languages.Enabled = []string{"en"}
	cfg.Languages.DataDir = "/srv/dictionaries"
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 128, loaded.Server.MaxResults)
	assert.Equal(t, []string{"en"}, loaded.Languages.Enabled)
	assert.Equal(t, "/srv/dictionaries", loaded.Languages.DataDir)
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// max_results carries the wrong type, which breaks the strict decode;
	// the cache section is still salvaged
	broken := `
[server]
max_results = "lots"

[cache]
validation_size = 1234

[languages]
enabled = ["en"]
`
	require.NoError(t, os.WriteFile(path, []byte(broken), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Server.MaxResults, "bad value falls back to default")
	assert.Equal(t, 1234, cfg.Cache.ValidationSize)
	assert.Equal(t, []string{"en"}, cfg.Languages.Enabled)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	cfg := DefaultConfig()
	cfg.Server.MaxResults = 32
	require.NoError(t, SaveConfig(cfg, path))

	loaded, usedPath, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, usedPath)
	assert.Equal(t, 32, loaded.Server.MaxResults)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	assert.Equal(t, DefaultConfig(), LoadConfig(""))
}

func TestLoadConfig_PartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[suggest]
limit = 7

[insight]
treat_bare_pack_entry_as_missing = true
`), 0o644))

	cfg := LoadConfig(path)

	assert.Equal(t, 7, cfg.Suggest.Limit)
	assert.True(t, cfg.Insight.TreatBarePackEntryAsMissing)
	assert.Equal(t, DefaultConfig().Suggest.MinPrefix, cfg.Suggest.MinPrefix)
	assert.Equal(t, DefaultConfig().Insight.ExampleLimit, cfg.Insight.ExampleLimit)
	assert.Equal(t, DefaultConfig().Server.MaxLimit, cfg.Server.MaxLimit)
}

func TestLoadConfig_BrokenFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`limit = [[[`), 0o644))

	assert.Equal(t, DefaultConfig(), LoadConfig(path))
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "dir", "config.toml")

	cfg := DefaultConfig()
	cfg.Suggest.Limit = 5
	cfg.Insight.RelatedLimit = 4
	require.NoError(t, SaveConfig(cfg, path))

	assert.Equal(t, cfg, LoadConfig(path))
}

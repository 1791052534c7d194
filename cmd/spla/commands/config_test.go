package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "spla.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spla.toml")
	data := []byte(`accelerator = "none"
platform = 1
device = 2
queues = 4
debug = true
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "none", config.Accelerator)
	assert.Equal(t, 1, config.Platform)
	assert.Equal(t, 2, config.Device)
	assert.Equal(t, 4, config.Queues)
	assert.True(t, config.Debug)
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spla.toml")
	require.NoError(t, os.WriteFile(path, []byte("accelerator = ["), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "test_config.yaml")
	configContent := `
log_level: -4
file_extension: mp3
audio_quality: 256K
embed_resized_cover: false
continue_on_error: true
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	assert.NoError(t, err)

	cfg, err := Load(configPath)

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, -4, cfg.LogLevel)
	assert.Equal(t, "mp3", cfg.FileExtension)
	assert.Equal(t, "256K", cfg.AudioQuality)
	assert.False(t, cfg.EmbedResizedCover)
	assert.True(t, cfg.ContinueOnError)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no_such_config.yaml"))

	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadAppliesDefaultsForAbsentFields(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "partial_config.yaml")
	err := os.WriteFile(configPath, []byte("log_level: 4\n"), 0644)
	assert.NoError(t, err)

	cfg, err := Load(configPath)

	assert.NoError(t, err)
	assert.Equal(t, 4, cfg.LogLevel)
	assert.Equal(t, "mp3", cfg.FileExtension)
	assert.Equal(t, "192K", cfg.AudioQuality)
	assert.True(t, cfg.EmbedResizedCover)
	assert.False(t, cfg.ContinueOnError)
}

func TestLoadInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "invalid_config.yaml")
	configContent := `
file_extension: mp3
invalid_yaml: [this is not valid yaml
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	assert.NoError(t, err)

	cfg, err := Load(configPath)

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

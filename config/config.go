package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel int `yaml:"log_level"`

	// FileExtension is the target audio format, e.g. "mp3".
	FileExtension string `yaml:"file_extension"`

	// AudioQuality is the bitrate target passed to the retrieval tool.
	AudioQuality string `yaml:"audio_quality"`

	// EmbedResizedCover re-encodes cover art to 300x300 before embedding.
	// When false the original file bytes are embedded unmodified.
	EmbedResizedCover bool `yaml:"embed_resized_cover"`

	// ContinueOnError keeps processing remaining tracks after a failure
	// instead of aborting the run.
	ContinueOnError bool `yaml:"continue_on_error"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		FileExtension:     "mp3",
		AudioQuality:      "192K",
		EmbedResizedCover: true,
	}
}

// Load reads a YAML config file. A missing file is not an error: the
// defaults apply. Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	if config.FileExtension == "" {
		config.FileExtension = "mp3"
	}
	if config.AudioQuality == "" {
		config.AudioQuality = "192K"
	}

	return config, nil
}

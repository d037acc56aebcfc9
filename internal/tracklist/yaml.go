package tracklist

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jaki95/track-fetcher/internal/domain"
)

// YAMLImporter reads a tracklist stored as a YAML sequence of descriptors.
type YAMLImporter struct {
}

func NewYAMLImporter() *YAMLImporter {
	return &YAMLImporter{}
}

func (y *YAMLImporter) Name() string {
	return "yaml"
}

func (y *YAMLImporter) Import(ctx context.Context, path string) ([]domain.Track, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read tracklist file: %v", ErrConfig, err)
	}

	var tracks []domain.Track
	if err := yaml.Unmarshal(data, &tracks); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML tracklist: %v", ErrConfig, err)
	}

	if len(tracks) == 0 {
		return nil, fmt.Errorf("%w: no tracks found in %s", ErrConfig, path)
	}

	return tracks, nil
}

package tracklist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jaki95/track-fetcher/internal/domain"
)

// JSONImporter reads a tracklist stored as a JSON array of descriptors.
type JSONImporter struct {
}

func NewJSONImporter() *JSONImporter {
	return &JSONImporter{}
}

func (j *JSONImporter) Name() string {
	return "json"
}

func (j *JSONImporter) Import(ctx context.Context, path string) ([]domain.Track, error) {
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
	if err := json.Unmarshal(data, &tracks); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON tracklist: %v", ErrConfig, err)
	}

	if len(tracks) == 0 {
		return nil, fmt.Errorf("%w: no tracks found in %s", ErrConfig, path)
	}

	return tracks, nil
}

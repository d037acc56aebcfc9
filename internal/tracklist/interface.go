// Package tracklist loads track descriptors from tracklist configuration
// files. A tracklist is an ordered sequence of tracks; the order in the file
// is the order in which tracks are processed.
package tracklist

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jaki95/track-fetcher/internal/domain"
)

// ErrConfig marks a tracklist file that is missing or unparseable.
var ErrConfig = errors.New("invalid tracklist")

// Importer imports a tracklist from a given file.
type Importer interface {
	Import(ctx context.Context, path string) ([]domain.Track, error)
	Name() string
}

// CompositeImporter selects an importer by file extension and otherwise
// tries each importer in sequence until one succeeds.
type CompositeImporter struct {
	json      *JSONImporter
	yaml      *YAMLImporter
	html      *HTMLImporter
	importers []Importer
}

func NewImporter() *CompositeImporter {
	c := &CompositeImporter{
		json: NewJSONImporter(),
		yaml: NewYAMLImporter(),
		html: NewHTMLImporter(),
	}
	c.importers = []Importer{c.json, c.yaml, c.html}
	return c
}

func (c *CompositeImporter) Name() string {
	return "composite"
}

func (c *CompositeImporter) Import(ctx context.Context, path string) ([]domain.Track, error) {
	if importer := c.byExtension(path); importer != nil {
		return importer.Import(ctx, path)
	}

	var errs []error
	for _, importer := range c.importers {
		tracks, err := importer.Import(ctx, path)
		if err == nil {
			return tracks, nil
		}
		errs = append(errs, fmt.Errorf("%s: %v", importer.Name(), err))
	}
	return nil, fmt.Errorf("%w: all importers failed: %v", ErrConfig, errs)
}

func (c *CompositeImporter) byExtension(path string) Importer {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return c.json
	case ".yaml", ".yml":
		return c.yaml
	case ".html", ".htm":
		return c.html
	}
	return nil
}

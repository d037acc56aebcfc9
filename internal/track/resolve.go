// Package track derives per-track output locations and cover metadata from a
// descriptor plus run-level configuration.
package track

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jaki95/track-fetcher/internal/domain"
)

var (
	ErrMissingField      = errors.New("missing required field")
	ErrUnsupportedFormat = errors.New("unsupported cover art format")
)

// ResolveOptions carries the run-level configuration a descriptor is
// resolved against.
type ResolveOptions struct {
	OutputDir     string
	CoverArtDir   string
	FileExtension string
}

// Resolved is a descriptor combined with run configuration. OutputPath is a
// pure function of the output directory and the artist, album, track number
// and title fields: two descriptors agreeing on those resolve to the same
// file.
type Resolved struct {
	domain.Track

	CoverPath     string
	CoverMIMEType string

	// OutputTemplate is the output path without extension, handed to the
	// retrieval tool as its output template.
	OutputTemplate string
	OutputPath     string
}

// Resolve computes the derived fields for a descriptor. It performs no I/O
// beyond path-string manipulation.
func Resolve(d domain.Track, opts ResolveOptions) (*Resolved, error) {
	if err := checkRequiredFields(d); err != nil {
		return nil, err
	}

	mimeType, err := coverMIMEType(d.Cover)
	if err != nil {
		return nil, err
	}

	ext := opts.FileExtension
	if ext == "" {
		ext = "mp3"
	}

	template := filepath.Join(
		opts.OutputDir,
		fmt.Sprintf("%s - %s", d.Artist, d.Album),
		fmt.Sprintf("%s - %s - %s", d.Artist, d.TrackNo, d.Title),
	)

	return &Resolved{
		Track:          d,
		CoverPath:      filepath.Join(opts.CoverArtDir, d.Cover),
		CoverMIMEType:  mimeType,
		OutputTemplate: template,
		OutputPath:     template + "." + ext,
	}, nil
}

func checkRequiredFields(d domain.Track) error {
	fields := []struct {
		name  string
		value string
	}{
		{"url", d.URL},
		{"track_no", string(d.TrackNo)},
		{"title", d.Title},
		{"artist", d.Artist},
		{"album", d.Album},
		{"cover", d.Cover},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}

func coverMIMEType(cover string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(cover)); ext {
	case ".jpg":
		return "image/jpg", nil
	case ".png":
		return "image/png", nil
	default:
		return "", fmt.Errorf("%w: %q, convert to '.jpg' or '.png'", ErrUnsupportedFormat, ext)
	}
}

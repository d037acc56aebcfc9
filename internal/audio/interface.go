// Package audio embeds metadata into produced audio files.
package audio

import "errors"

// ErrTagging marks a metadata write failure.
var ErrTagging = errors.New("tagging failed")

// Metadata holds the textual frames and cover image embedded into an audio
// file. All text is written UTF-8 encoded.
type Metadata struct {
	TrackNo string
	Title   string
	Artist  string
	Album   string

	CoverMIMEType string
	Cover         []byte
}

// Tagger rewrites the embedded metadata container of an existing audio file
// in place.
type Tagger interface {
	WriteTags(path string, meta Metadata) error
}

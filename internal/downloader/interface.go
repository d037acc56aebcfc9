// Package downloader provides functionality for retrieving audio from online
// video sources and transcoding it to the target format.
package downloader

import (
	"context"
	"errors"
)

var (
	ErrRetrieval         = errors.New("retrieval failed")
	ErrYtDlpNotAvailable = errors.New("yt-dlp not available")
)

// Stage identifies the phase a retrieval is in when progress is reported.
type Stage int

const (
	StageDownloading Stage = iota
	StageConverting
)

// ProgressFunc receives progress updates during a retrieval. It may be nil
// if progress updates are not needed.
type ProgressFunc func(stage Stage, message string)

// Downloader retrieves audio from a source URL and produces a transcoded
// audio file at the path derived from the output template.
type Downloader interface {
	// Download fetches the URL and writes the audio file to
	// outputTemplate plus the target format's extension.
	Download(ctx context.Context, url, outputTemplate string, progress ProgressFunc) error
}

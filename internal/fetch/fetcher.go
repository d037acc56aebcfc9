// Package fetch runs the per-track workflow: skip if the output file already
// exists, otherwise retrieve, tag and finalize it.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jaki95/track-fetcher/internal/artwork"
	"github.com/jaki95/track-fetcher/internal/audio"
	"github.com/jaki95/track-fetcher/internal/downloader"
	"github.com/jaki95/track-fetcher/internal/track"
)

// Status is the state a track's workflow is in.
type Status int

const (
	StatusPending Status = iota
	StatusSkipped
	StatusRetrieving
	StatusTagging
	StatusDone
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSkipped:
		return "skipped"
	case StatusRetrieving:
		return "retrieving"
	case StatusTagging:
		return "tagging"
	case StatusDone:
		return "done"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type Options struct {
	// EmbedResizedCover re-encodes cover art to a fixed dimension before
	// embedding instead of using the raw file bytes.
	EmbedResizedCover bool
}

// Fetcher runs the fetch workflow for resolved tracks, one at a time.
type Fetcher struct {
	downloader downloader.Downloader
	tagger     audio.Tagger
	opts       Options
}

func NewFetcher(d downloader.Downloader, t audio.Tagger, opts Options) *Fetcher {
	return &Fetcher{
		downloader: d,
		tagger:     t,
		opts:       opts,
	}
}

// Fetch processes a single resolved track and returns its terminal status.
// The track is retrieved and tagged under a staging name and only renamed to
// its final path on full success, so an existing output path is a reliable
// completeness signal.
func (f *Fetcher) Fetch(ctx context.Context, rt *track.Resolved) (Status, error) {
	if _, err := os.Stat(rt.OutputPath); err == nil {
		fmt.Printf("Already downloaded: %s\n", rt.OutputPath)
		return StatusSkipped, nil
	}

	if err := os.MkdirAll(filepath.Dir(rt.OutputPath), 0755); err != nil {
		return StatusFailed, fmt.Errorf("failed to create output directory: %w", err)
	}

	stagingTemplate := rt.OutputTemplate + ".part"
	stagingPath := stagingTemplate + filepath.Ext(rt.OutputPath)

	slog.Debug("Track state change", "track", rt.Title, "status", StatusRetrieving)
	if err := f.downloader.Download(ctx, rt.URL, stagingTemplate, reportProgress); err != nil {
		os.Remove(stagingPath)
		return StatusFailed, err
	}

	slog.Debug("Track state change", "track", rt.Title, "status", StatusTagging)
	if err := f.tag(stagingPath, rt); err != nil {
		os.Remove(stagingPath)
		return StatusFailed, err
	}

	if err := os.Rename(stagingPath, rt.OutputPath); err != nil {
		os.Remove(stagingPath)
		return StatusFailed, fmt.Errorf("failed to finalize %s: %w", rt.OutputPath, err)
	}

	slog.Debug("Track state change", "track", rt.Title, "status", StatusDone)
	return StatusDone, nil
}

func (f *Fetcher) tag(path string, rt *track.Resolved) error {
	cover, err := artwork.Prepare(rt.CoverPath, rt.CoverMIMEType, f.opts.EmbedResizedCover)
	if err != nil {
		return err
	}

	return f.tagger.WriteTags(path, audio.Metadata{
		TrackNo:       string(rt.TrackNo),
		Title:         rt.Title,
		Artist:        rt.Artist,
		Album:         rt.Album,
		CoverMIMEType: rt.CoverMIMEType,
		Cover:         cover,
	})
}

func reportProgress(stage downloader.Stage, message string) {
	if stage == downloader.StageConverting {
		fmt.Println(message)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"github.com/jaki95/track-fetcher/config"
	"github.com/jaki95/track-fetcher/internal/audio"
	"github.com/jaki95/track-fetcher/internal/domain"
	"github.com/jaki95/track-fetcher/internal/downloader"
	"github.com/jaki95/track-fetcher/internal/fetch"
	"github.com/jaki95/track-fetcher/internal/track"
	"github.com/jaki95/track-fetcher/internal/tracklist"
)

func main() {
	var (
		tracklistFile string
		browser       string
		outputDir     string
		coverArtDir   string
		tracklistDir  string
		configPath    string
	)

	flag.StringVar(&tracklistFile, "tracklist", "", "tracklist file name within the tracklist directory (required)")
	flag.StringVar(&tracklistFile, "t", "", "shorthand for -tracklist")
	flag.StringVar(&browser, "browser", "safari", "browser whose stored credentials are used for authenticated retrieval")
	flag.StringVar(&browser, "b", "safari", "shorthand for -browser")
	flag.StringVar(&outputDir, "output-dir", "downloads", "folder containing downloaded audio files")
	flag.StringVar(&outputDir, "od", "downloads", "shorthand for -output-dir")
	flag.StringVar(&coverArtDir, "cover-art-dir", "covers", "folder containing cover art images")
	flag.StringVar(&coverArtDir, "cd", "covers", "shorthand for -cover-art-dir")
	flag.StringVar(&tracklistDir, "tracklist-dir", "tracklists", "folder containing tracklist configuration files")
	flag.StringVar(&tracklistDir, "td", "tracklists", "shorthand for -tracklist-dir")
	flag.StringVar(&configPath, "config", "config.yaml", "run configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "shorthand for -config")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if tracklistFile == "" {
		log.Fatal("Missing required flag: -tracklist")
	}

	if !downloader.SupportedBrowser(browser) {
		log.Fatalf("Unsupported browser %q (supported: %s)",
			browser, strings.Join(downloader.SupportedBrowsers, ", "))
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	})))

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	importer := tracklist.NewImporter()
	tracks, err := importer.Import(ctx, filepath.Join(tracklistDir, tracklistFile))
	if err != nil {
		log.Fatal(err)
	}

	ytdlp, err := downloader.NewYtDlpDownloader(browser, cfg.FileExtension, cfg.AudioQuality)
	if err != nil {
		log.Fatal(err)
	}

	fetcher := fetch.NewFetcher(ytdlp, audio.NewID3Tagger(), fetch.Options{
		EmbedResizedCover: cfg.EmbedResizedCover,
	})

	resolveOpts := track.ResolveOptions{
		OutputDir:     outputDir,
		CoverArtDir:   coverArtDir,
		FileExtension: cfg.FileExtension,
	}

	bar := progressbar.NewOptions(
		len(tracks),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionFullWidth(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Fetching tracks...[reset]"),
	)

	failed := 0
	for _, t := range tracks {
		fmt.Println(t)

		status, err := fetchTrack(ctx, fetcher, t, resolveOpts)
		bar.Add(1)

		if err != nil {
			failed++
			slog.Error("Track failed", "title", t.Title, "error", err)
			if !cfg.ContinueOnError {
				os.Exit(1)
			}
			continue
		}

		slog.Debug("Track finished", "title", t.Title, "status", status)
	}

	if failed > 0 {
		slog.Error("Run finished with failures", "failed", failed, "total", len(tracks))
		os.Exit(1)
	}
}

func fetchTrack(ctx context.Context, fetcher *fetch.Fetcher, t domain.Track, opts track.ResolveOptions) (fetch.Status, error) {
	resolved, err := track.Resolve(t, opts)
	if err != nil {
		return fetch.StatusFailed, err
	}
	return fetcher.Fetch(ctx, resolved)
}

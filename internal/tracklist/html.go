package tracklist

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jaki95/track-fetcher/internal/domain"
)

// HTMLImporter reads a tracklist from a locally saved HTML page containing a
// table whose rows list the descriptor fields in order: url, track number,
// title, artist, album, cover file name. A link in the first cell takes
// precedence over the cell text.
type HTMLImporter struct {
}

func NewHTMLImporter() *HTMLImporter {
	return &HTMLImporter{}
}

func (h *HTMLImporter) Name() string {
	return "html"
}

func (h *HTMLImporter) Import(ctx context.Context, path string) ([]domain.Track, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open tracklist file: %v", ErrConfig, err)
	}
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse HTML tracklist: %v", ErrConfig, err)
	}

	var tracks []domain.Track
	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 6 {
			// Header rows use th cells and fall through here.
			return
		}

		text := func(i int) string {
			return strings.TrimSpace(cells.Eq(i).Text())
		}

		url := text(0)
		if href, ok := cells.Eq(0).Find("a").Attr("href"); ok {
			url = href
		}

		slog.Debug("Parsed HTML tracklist row", "row", i, "url", url, "title", text(2))

		tracks = append(tracks, domain.Track{
			URL:     url,
			TrackNo: domain.TrackNo(text(1)),
			Title:   text(2),
			Artist:  text(3),
			Album:   text(4),
			Cover:   text(5),
		})
	})

	if len(tracks) == 0 {
		return nil, fmt.Errorf("%w: no tracks found in %s", ErrConfig, path)
	}

	return tracks, nil
}

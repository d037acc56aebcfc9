package audio

import (
	"fmt"
	"log/slog"

	"github.com/bogem/id3v2"
)

// ID3Tagger writes ID3v2 tags to MP3 files.
type ID3Tagger struct {
}

func NewID3Tagger() *ID3Tagger {
	return &ID3Tagger{}
}

// WriteTags opens the audio file, sets track number, title, artist and album
// text frames plus a single front-cover picture, and saves the tag in place.
func (t *ID3Tagger) WriteTags(path string, meta Metadata) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("%w: unable to open %s: %v", ErrTagging, path, err)
	}
	defer tag.Close()

	slog.Debug("Writing tags", "path", path, "title", meta.Title, "artist", meta.Artist)

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, meta.TrackNo)
	tag.SetTitle(meta.Title)
	tag.SetArtist(meta.Artist)
	tag.SetAlbum(meta.Album)

	if meta.Cover != nil {
		tag.DeleteFrames(tag.CommonID("Attached picture"))
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    meta.CoverMIMEType,
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     meta.Cover,
		})
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("%w: unable to save %s: %v", ErrTagging, path, err)
	}

	return nil
}

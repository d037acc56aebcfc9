package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMetadata() Metadata {
	return Metadata{
		TrackNo:       "1",
		Title:         "Song",
		Artist:        "Band",
		Album:         "Album",
		CoverMIMEType: "image/jpg",
		Cover:         []byte("cover bytes"),
	}
}

func TestWriteTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.mp3")
	require.NoError(t, os.WriteFile(path, []byte("audio payload"), 0644))

	tagger := NewID3Tagger()
	err := tagger.WriteTags(path, testMetadata())
	assert.NoError(t, err)

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	defer tag.Close()

	assert.Equal(t, "Song", tag.Title())
	assert.Equal(t, "Band", tag.Artist())
	assert.Equal(t, "Album", tag.Album())
	assert.Equal(t, "1", tag.GetTextFrame("TRCK").Text)

	pictures := tag.GetFrames(tag.CommonID("Attached picture"))
	require.Len(t, pictures, 1)
	picture, ok := pictures[0].(id3v2.PictureFrame)
	require.True(t, ok)
	assert.Equal(t, "image/jpg", picture.MimeType)
	assert.Equal(t, uint8(id3v2.PTFrontCover), uint8(picture.PictureType))
	assert.Equal(t, "Cover", picture.Description)
	assert.Equal(t, []byte("cover bytes"), picture.Picture)
}

func TestWriteTagsReplacesExistingCover(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.mp3")
	require.NoError(t, os.WriteFile(path, []byte("audio payload"), 0644))

	tagger := NewID3Tagger()
	require.NoError(t, tagger.WriteTags(path, testMetadata()))

	updated := testMetadata()
	updated.Cover = []byte("new cover bytes")
	require.NoError(t, tagger.WriteTags(path, updated))

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	defer tag.Close()

	pictures := tag.GetFrames(tag.CommonID("Attached picture"))
	require.Len(t, pictures, 1)
	assert.Equal(t, []byte("new cover bytes"), pictures[0].(id3v2.PictureFrame).Picture)
}

func TestWriteTagsMissingFile(t *testing.T) {
	tagger := NewID3Tagger()

	err := tagger.WriteTags(filepath.Join(t.TempDir(), "missing.mp3"), testMetadata())

	assert.ErrorIs(t, err, ErrTagging)
}

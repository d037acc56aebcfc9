// Package artwork loads cover images and optionally re-encodes them to the
// fixed dimensions embedded in audio tags.
package artwork

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// coverSize is the pixel dimension covers are resized to before embedding.
const coverSize = 300

// Prepare reads the cover image at path. When resize is set the image is
// scaled to coverSize x coverSize and re-encoded in the format implied by
// mimeType; otherwise the raw file bytes are returned unmodified.
func Prepare(path, mimeType string, resize bool) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cover art: %w", err)
	}

	if !resize {
		return data, nil
	}

	return resizeSquare(data, mimeType)
}

func resizeSquare(data []byte, mimeType string) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode cover art: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, coverSize, coverSize))

	// BiLinear favours smoothness over sharpness, which suits small
	// embedded covers.
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	switch mimeType {
	case "image/png":
		err = png.Encode(&buf, dst)
	default:
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode cover art: %w", err)
	}

	return buf.Bytes(), nil
}

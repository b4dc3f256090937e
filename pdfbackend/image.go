package pdfbackend

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Decoders for the formats accepted as logos.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// normalizeImage returns data in a form the PDF encoder embeds reliably:
// JPEG is passed through, anything else is decoded and re-encoded as a
// plain non-interlaced PNG.
func normalizeImage(data []byte) (out []byte, imageType string, err error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("pdfbackend: unrecognised image: %w", err)
	}
	if format == "jpeg" {
		return data, "JPG", nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("pdfbackend: decoding %s image: %w", format, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", fmt.Errorf("pdfbackend: re-encoding %s image: %w", format, err)
	}
	return buf.Bytes(), "PNG", nil
}

// Package imaging converts between image files and the flat carrier array the
// codec embeds into. The codec itself never touches pixel formats; it only
// sees the byte slice this package produces.
package imaging

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"io"
)

// Decode reads a cover image and flattens it to one byte per channel sample
// in NRGBA order, plus the pixel dimensions. Every byte of the returned slice
// round-trips through Encode in the same position.
func Decode(r io.Reader) ([]byte, int, int, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decoding cover image: %w", err)
	}

	bounds := img.Bounds()
	// NRGBA keeps straight (non-premultiplied) alpha, so translucent covers
	// survive the PNG round trip byte-for-byte.
	flat := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(flat, flat.Bounds(), img, bounds.Min, draw.Src)

	return flat.Pix, bounds.Dx(), bounds.Dy(), nil
}

// Encode re-serializes a carrier array produced by Decode into a PNG. Output
// is always PNG: a lossy container would destroy the embedded low bits.
func Encode(w io.Writer, pix []byte, width, height int) error {
	if len(pix) != 4*width*height {
		return fmt.Errorf("carrier length %d does not match a %dx%d image", len(pix), width, height)
	}

	img := &image.NRGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding output image: %w", err)
	}
	return nil
}

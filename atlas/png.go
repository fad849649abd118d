package atlas

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/go-theft-auto/fontdemo"
)

// DecodePNG reads an atlas image, converting it to RGBA8.
// The shape is not checked here; uploading a non-square atlas fails.
func DecodePNG(r io.Reader) (*fontdemo.FontAtlas, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode atlas: %w", err)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Copy(rgba, image.Point{}, img, b, draw.Src, nil)
	}
	return fontdemo.NewFontAtlas(rgba), nil
}

// EncodePNG writes a as a PNG image.
func EncodePNG(w io.Writer, a *fontdemo.FontAtlas) error {
	img := &image.RGBA{
		Pix:    a.Pix,
		Stride: a.Width * 4,
		Rect:   image.Rect(0, 0, a.Width, a.Height),
	}
	return png.Encode(w, img)
}

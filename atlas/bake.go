// Package atlas produces font atlases for fontdemo: glyph grids rasterized
// from a font face, packed glyph data padded to a square texture, and PNG
// images.
package atlas

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/fontdemo"
)

// Grid is the layout of a baked atlas: Count consecutive runes starting
// at First, laid out row by row in square cells, Columns per row.
type Grid struct {
	First   rune
	Count   int
	Columns int
	Cell    int // cell side in pixels
}

// DefaultGrid holds printable ASCII in 32 pixel cells of a 512x512 atlas.
var DefaultGrid = Grid{First: ' ', Count: 95, Columns: 16, Cell: 32}

// DefaultFaceSize is the point size DefaultFace rasterizes at (72 DPI).
const DefaultFaceSize = 24

// Size returns the side length of the atlas the grid produces.
func (g Grid) Size() int { return g.Columns * g.Cell }

// Rows returns the number of used rows.
func (g Grid) Rows() int {
	if g.Columns <= 0 {
		return 0
	}
	return (g.Count + g.Columns - 1) / g.Columns
}

// CellRect returns the pixel rectangle holding r, top row first.
func (g Grid) CellRect(r rune) (image.Rectangle, bool) {
	i := int(r - g.First)
	if i < 0 || i >= g.Count {
		return image.Rectangle{}, false
	}
	x, y := (i%g.Columns)*g.Cell, (i/g.Columns)*g.Cell
	return image.Rect(x, y, x+g.Cell, y+g.Cell), true
}

func (g Grid) validate() error {
	switch {
	case g.Count <= 0:
		return errors.New("grid has no glyphs")
	case g.Columns <= 0 || g.Cell <= 0:
		return fmt.Errorf("invalid grid %d columns of %d pixels", g.Columns, g.Cell)
	case g.Rows() > g.Columns:
		return fmt.Errorf("%d glyphs in %d columns do not fit a square atlas", g.Count, g.Columns)
	}
	return nil
}

// DefaultFace returns Latin Modern Mono 10 at size points.
func DefaultFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(lmmono10regular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// Bake rasterizes every rune of g with face into its cell, centred, as
// white coverage (RGB and alpha all hold the glyph coverage). Glyphs larger
// than a cell are clipped to it.
func Bake(face font.Face, g Grid) (*fontdemo.FontAtlas, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	side := g.Size()
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	metrics := face.Metrics()
	cell := fixed.I(g.Cell)

	for i := 0; i < g.Count; i++ {
		r := g.First + rune(i)
		rect, _ := g.CellRect(r)
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		d := &font.Drawer{
			Dst:  img.SubImage(rect).(*image.RGBA),
			Src:  image.White,
			Face: face,
			Dot: fixed.Point26_6{
				X: fixed.I(rect.Min.X) + (cell-adv)/2,
				Y: fixed.I(rect.Min.Y) + (cell-metrics.Height)/2 + metrics.Ascent,
			},
		}
		d.DrawString(string(r))
	}

	return fontdemo.NewFontAtlas(img), nil
}

// BakeDefault bakes DefaultGrid with DefaultFace.
func BakeDefault() (*fontdemo.FontAtlas, error) {
	face, err := DefaultFace(DefaultFaceSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()
	return Bake(face, DefaultGrid)
}

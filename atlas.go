package fontdemo

import "image"

// FontAtlas is a square RGBA8 bitmap sampled by the fragment shader.
// Rows are stored in the order the producer wrote them; the shader decides
// how texture coordinates map onto them.
type FontAtlas struct {
	Width, Height int
	Pix           []byte
}

// NewFontAtlas copies an RGBA image into an atlas.
func NewFontAtlas(img *image.RGBA) *FontAtlas {
	b := img.Bounds()
	a := &FontAtlas{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]byte, b.Dx()*b.Dy()*4),
	}
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(a.Pix[y*rowLen:(y+1)*rowLen], img.Pix[src:src+rowLen])
	}
	return a
}

// Size returns the side length of a square atlas.
func (a *FontAtlas) Size() int { return a.Width }

// At returns the RGBA value of texel (x, y).
func (a *FontAtlas) At(x, y int) [4]byte {
	i := (y*a.Width + x) * 4
	return [4]byte{a.Pix[i], a.Pix[i+1], a.Pix[i+2], a.Pix[i+3]}
}

// Release drops the CPU copy once the GPU owns the texels.
func (a *FontAtlas) Release() { a.Pix = nil }

func (a *FontAtlas) validate(maxSize int) error {
	switch {
	case a == nil || a.Width <= 0 || a.Height <= 0:
		var w, h int
		if a != nil {
			w, h = a.Width, a.Height
		}
		return &TextureUploadError{Width: w, Height: h, Reason: "empty atlas"}
	case a.Width != a.Height:
		return &TextureUploadError{Width: a.Width, Height: a.Height, Reason: "atlas is not square"}
	case len(a.Pix) != a.Width*a.Height*4:
		return &TextureUploadError{Width: a.Width, Height: a.Height, Reason: "pixel buffer does not match RGBA8 dimensions"}
	case maxSize > 0 && a.Width > maxSize:
		return &TextureUploadError{Width: a.Width, Height: a.Height, Max: maxSize, Reason: "exceeds maximum texture size"}
	}
	return nil
}

// Texture is an uploaded atlas bound to a fixed texture unit.
type Texture struct {
	ID   uint32
	Unit uint32
	Size int

	dev Device
}

// Delete releases the texture object.
func (t *Texture) Delete() {
	if t == nil || t.ID == 0 {
		return
	}
	t.dev.DeleteTexture(t.ID)
	t.ID = 0
}

// UploadAtlas validates a and uploads it as one nearest-filtered,
// repeat-wrapped 2D texture. Validation happens before any GPU call.
func UploadAtlas(dev Device, a *FontAtlas, unit uint32) (*Texture, error) {
	if err := a.validate(int(dev.MaxTextureSize())); err != nil {
		return nil, err
	}

	tex := dev.GenTexture()
	dev.ActiveTexture(unit)
	dev.BindTexture(tex)
	dev.TexParametersNearestRepeat()
	dev.TexImage2DRGBA(int32(a.Width), a.Pix)

	return &Texture{ID: tex, Unit: unit, Size: a.Width, dev: dev}, nil
}

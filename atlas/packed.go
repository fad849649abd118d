package atlas

import (
	"encoding/binary"
	"errors"

	"github.com/go-theft-auto/fontdemo"
)

// SideFor returns the side of the smallest square RGBA8 texture holding n bytes.
func SideFor(n int) int {
	texels := (n + 3) / 4
	side := 0
	for side*side < texels {
		side++
	}
	return side
}

// FromPacked wraps glyph data that the shader decodes texel by texel.
// The data is zero-padded to a SideFor(len(data)) square, so the upload
// never reads past the end of the buffer.
func FromPacked(data []byte) (*fontdemo.FontAtlas, error) {
	if len(data) == 0 {
		return nil, errors.New("no packed data")
	}
	side := SideFor(len(data))
	pix := make([]byte, side*side*4)
	copy(pix, data)
	return &fontdemo.FontAtlas{Width: side, Height: side, Pix: pix}, nil
}

// FromShorts packs 16-bit values little endian, two per texel.
func FromShorts(values []uint16) (*fontdemo.FontAtlas, error) {
	buf := make([]byte, len(values)*2)
	for i, v := range values {
		binary.LittleEndian.PutUint16(buf[i*2:], v)
	}
	return FromPacked(buf)
}

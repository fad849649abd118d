package fontdemo

// Viewport is the drawable size in pixels. It is fixed for a run.
type Viewport struct {
	Width, Height int
}

// Empty reports whether the viewport has no area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// quadPositions covers normalized device coordinates [-1,1]x[-1,1]
// as one convex polygon, in fan order.
var quadPositions = []float32{
	-1, -1,
	-1, 1,
	1, 1,
	1, -1,
}

// Colors are packed as 0xAABBGGRR, the byte order of RGBA8 texels.

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

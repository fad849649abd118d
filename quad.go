package fontdemo

import "fmt"

// QuadRenderer draws the single full-screen quad.
type QuadRenderer struct {
	dev   Device
	vao   uint32
	count int32
	draws uint64
}

// NewQuadRenderer uploads the quad geometry once.
func NewQuadRenderer(dev Device) *QuadRenderer {
	return &QuadRenderer{
		dev:   dev,
		vao:   dev.CreateQuad(quadPositions),
		count: int32(len(quadPositions) / 2),
	}
}

// Draw binds tex on its unit and draws the quad with the active program.
// The uniform table must already hold the values for tick.
func (q *QuadRenderer) Draw(tex *Texture, u *UniformTable, tick uint64) error {
	if !u.Current(tick) {
		return fmt.Errorf("draw tick %d: %w", tick, ErrStaleUniforms)
	}

	q.dev.ActiveTexture(tex.Unit)
	q.dev.BindTexture(tex.ID)
	q.dev.DrawQuad(q.vao, q.count)
	q.dev.Flush()
	q.draws++
	return nil
}

// Draws returns how many quads have been drawn.
func (q *QuadRenderer) Draws() uint64 { return q.draws }

// Delete releases the quad geometry.
func (q *QuadRenderer) Delete() {
	if q.vao != 0 {
		q.dev.DeleteQuad(q.vao)
		q.vao = 0
	}
}

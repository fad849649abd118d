package fontdemo

import (
	"fmt"
	"log/slog"
)

// RenderContext owns every GPU object of a run: the program, its uniform
// table, the atlas texture and the quad. It is created once by Setup and
// driven by a Scheduler.
type RenderContext struct {
	Device   Device
	Program  *Program
	Uniforms *UniformTable
	Texture  *Texture
	Quad     *QuadRenderer
	Viewport Viewport
	Config   Config
	Logger   *slog.Logger
}

// Setup builds the program from fragmentSource, binds its uniforms,
// uploads atlas and creates the quad, in that order. Any failure aborts
// setup and releases whatever was already created.
func Setup(dev Device, atlas *FontAtlas, fragmentSource string, opts ...Option) (*RenderContext, error) {
	cfg := NewConfig(opts...)
	if cfg.Viewport.Empty() {
		return nil, fmt.Errorf("invalid viewport %dx%d", cfg.Viewport.Width, cfg.Viewport.Height)
	}

	rc := &RenderContext{
		Device:   dev,
		Viewport: cfg.Viewport,
		Config:   cfg,
		Logger:   cfg.Logger,
	}

	builder := NewProgramBuilder(dev)
	prog, err := builder.Build(fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}
	rc.Program = prog
	builder.Activate(prog)
	rc.Logger.Debug("program linked", "program", prog.ID, "source_bytes", len(prog.Source))

	rc.Uniforms, err = BindUniforms(dev, prog, cfg.Names, cfg.RequiredUniforms...)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("failed to bind uniforms: %w", err)
	}
	for _, s := range rc.Uniforms.Slots() {
		rc.Logger.Debug("uniform", "name", s.Name, "location", s.Location, "found", s.Found())
	}

	rc.Texture, err = UploadAtlas(dev, atlas, cfg.TextureUnit)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("failed to upload atlas: %w", err)
	}
	rc.Uniforms.SetAtlas(rc.Texture)
	rc.Logger.Debug("atlas uploaded", "texture", rc.Texture.ID, "size", rc.Texture.Size, "unit", rc.Texture.Unit)

	rc.Quad = NewQuadRenderer(dev)
	dev.Viewport(int32(cfg.Viewport.Width), int32(cfg.Viewport.Height))

	return rc, nil
}

// Frame returns the per-tick values for tick at elapsed seconds.
func (rc *RenderContext) Frame(tick uint64, elapsed float32) Frame {
	return Frame{Tick: tick, Elapsed: elapsed, Viewport: rc.Viewport}
}

// Render pushes f to the uniform table and draws the quad.
func (rc *RenderContext) Render(f Frame) error {
	rc.Uniforms.Push(f)
	return rc.Quad.Draw(rc.Texture, rc.Uniforms, f.Tick)
}

// Close releases the GPU objects. It is safe on a partially set up context.
func (rc *RenderContext) Close() {
	if rc.Quad != nil {
		rc.Quad.Delete()
	}
	if rc.Texture != nil {
		rc.Texture.Delete()
	}
	if rc.Program != nil {
		rc.Program.Delete()
	}
}

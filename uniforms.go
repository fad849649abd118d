package fontdemo

// Default uniform names used when a shader build does not override them.
const (
	DefaultTimeUniform       = "iTime"
	DefaultResolutionUniform = "iResolution"
	DefaultFontUniform       = "iFont"
	DefaultFontWidthUniform  = "iFontWidth"
)

// UniformNames are the names the shader declares for its four parameters.
type UniformNames struct {
	Time       string
	Resolution string
	Font       string
	FontWidth  string
}

// DefaultUniformNames returns the default parameter names.
func DefaultUniformNames() UniformNames {
	return UniformNames{
		Time:       DefaultTimeUniform,
		Resolution: DefaultResolutionUniform,
		Font:       DefaultFontUniform,
		FontWidth:  DefaultFontWidthUniform,
	}
}

// WithDefaults fills empty names with the defaults.
func (n UniformNames) WithDefaults() UniformNames {
	d := DefaultUniformNames()
	if n.Time == "" {
		n.Time = d.Time
	}
	if n.Resolution == "" {
		n.Resolution = d.Resolution
	}
	if n.Font == "" {
		n.Font = d.Font
	}
	if n.FontWidth == "" {
		n.FontWidth = d.FontWidth
	}
	return n
}

// UniformKind is the value type written to a slot.
type UniformKind int

const (
	KindFloat UniformKind = iota
	KindVec2
	KindSampler
)

// UniformSlot is a named uniform with its resolved location.
type UniformSlot struct {
	Name     string
	Kind     UniformKind
	Location int32
	Required bool
}

// Found reports whether the program exposes the uniform.
func (s UniformSlot) Found() bool { return s.Location >= 0 }

// Frame is the per-tick input pushed to the shader.
type Frame struct {
	Tick     uint64
	Elapsed  float32 // seconds since epoch start
	Viewport Viewport
}

// UniformTable holds the four shader parameters of the active program.
type UniformTable struct {
	dev Device

	time       UniformSlot
	resolution UniformSlot
	font       UniformSlot
	fontWidth  UniformSlot

	unit      int32
	atlasSize float32

	pushed   bool
	lastTick uint64
}

// BindUniforms resolves the four parameters against p once.
// Names listed in required must be active in p, otherwise a *BindingError
// is returned; other missing names are kept with location -1 and skipped
// on every push.
func BindUniforms(dev Device, p *Program, names UniformNames, required ...string) (*UniformTable, error) {
	names = names.WithDefaults()
	isRequired := make(map[string]bool, len(required))
	for _, r := range required {
		isRequired[r] = true
	}

	t := &UniformTable{dev: dev}
	slots := []struct {
		dst  *UniformSlot
		name string
		kind UniformKind
	}{
		{&t.time, names.Time, KindFloat},
		{&t.resolution, names.Resolution, KindVec2},
		{&t.font, names.Font, KindSampler},
		{&t.fontWidth, names.FontWidth, KindFloat},
	}
	for _, s := range slots {
		*s.dst = UniformSlot{
			Name:     s.name,
			Kind:     s.kind,
			Location: dev.GetUniformLocation(p.ID, s.name),
			Required: isRequired[s.name],
		}
		if s.dst.Required && !s.dst.Found() {
			return nil, &BindingError{Name: s.name}
		}
	}
	return t, nil
}

// SetAtlas records the texture unit and side length pushed every frame.
func (t *UniformTable) SetAtlas(tex *Texture) {
	t.unit = int32(tex.Unit)
	t.atlasSize = float32(tex.Size)
}

// Slots returns time, resolution, font and font width slots in that order.
func (t *UniformTable) Slots() [4]UniformSlot {
	return [4]UniformSlot{t.time, t.resolution, t.font, t.fontWidth}
}

// Push writes the frame's values to every found slot.
func (t *UniformTable) Push(f Frame) {
	if t.time.Found() {
		t.dev.Uniform1f(t.time.Location, f.Elapsed)
	}
	if t.resolution.Found() {
		t.dev.Uniform2f(t.resolution.Location, float32(f.Viewport.Width), float32(f.Viewport.Height))
	}
	if t.font.Found() {
		t.dev.Uniform1i(t.font.Location, t.unit)
	}
	if t.fontWidth.Found() {
		t.dev.Uniform1f(t.fontWidth.Location, t.atlasSize)
	}
	t.pushed = true
	t.lastTick = f.Tick
}

// Current reports whether Push ran for tick.
func (t *UniformTable) Current(tick uint64) bool {
	return t.pushed && t.lastTick == tick
}

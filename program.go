package fontdemo

// quadVertexSource positions the full-screen quad. The core profile has
// no fixed-function vertex stage, so every program links this in front of
// the fragment shader.
const quadVertexSource = `
#version 410 core
layout (location = 0) in vec2 aPos;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
}
`

// Shader is a compiled shader object.
type Shader struct {
	ID     uint32
	Stage  Stage
	Source string
}

// Program is a linked GPU program. It lives for the whole run.
type Program struct {
	ID       uint32
	Source   string // fragment source
	Compiled bool
	Linked   bool
	Log      string // diagnostic, set only on failure

	dev Device
}

// Delete releases the program object.
func (p *Program) Delete() {
	if p == nil || p.ID == 0 {
		return
	}
	p.dev.DeleteProgram(p.ID)
	p.ID = 0
}

// ProgramBuilder compiles and links shader programs on a Device.
type ProgramBuilder struct {
	dev Device
}

// NewProgramBuilder creates a builder for dev.
func NewProgramBuilder(dev Device) *ProgramBuilder {
	return &ProgramBuilder{dev: dev}
}

// Compile creates a shader object for stage and compiles source into it.
func (b *ProgramBuilder) Compile(stage Stage, source string) (Shader, error) {
	id := b.dev.CreateShader(stage)
	b.dev.ShaderSource(id, source)
	b.dev.CompileShader(id)

	if b.dev.GetShaderiv(id, ParamCompileStatus) == 0 {
		length := b.dev.GetShaderiv(id, ParamInfoLogLength)
		log := diagnostic(b.dev.GetShaderInfoLog(id, length))
		b.dev.DeleteShader(id)
		return Shader{}, &CompileError{Stage: stage, Log: log}
	}
	return Shader{ID: id, Stage: stage, Source: source}, nil
}

// Link attaches the shaders to a new program object and links it.
// The shader objects are released once the program owns them.
func (b *ProgramBuilder) Link(shaders ...Shader) (*Program, error) {
	id := b.dev.CreateProgram()
	for _, s := range shaders {
		b.dev.AttachShader(id, s.ID)
	}
	b.dev.LinkProgram(id)

	if b.dev.GetProgramiv(id, ParamLinkStatus) == 0 {
		length := b.dev.GetProgramiv(id, ParamInfoLogLength)
		log := diagnostic(b.dev.GetProgramInfoLog(id, length))
		b.dev.DeleteProgram(id)
		b.deleteShaders(shaders)
		return nil, &LinkError{Log: log}
	}
	b.deleteShaders(shaders)

	p := &Program{ID: id, Compiled: true, Linked: true, dev: b.dev}
	for _, s := range shaders {
		if s.Stage == StageFragment {
			p.Source = s.Source
		}
	}
	return p, nil
}

// Activate makes p the program used by subsequent draws.
func (b *ProgramBuilder) Activate(p *Program) {
	b.dev.UseProgram(p.ID)
}

// Build compiles the quad vertex stage and fragmentSource and links them.
// A compile failure returns before anything is linked.
func (b *ProgramBuilder) Build(fragmentSource string) (*Program, error) {
	vs, err := b.Compile(StageVertex, quadVertexSource)
	if err != nil {
		return nil, err
	}
	fs, err := b.Compile(StageFragment, fragmentSource)
	if err != nil {
		b.dev.DeleteShader(vs.ID)
		return nil, err
	}
	p, err := b.Link(vs, fs)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (b *ProgramBuilder) deleteShaders(shaders []Shader) {
	for _, s := range shaders {
		b.dev.DeleteShader(s.ID)
	}
}

// diagnostic trims the trailing NUL drivers include in the reported length.
func diagnostic(log string) string {
	for len(log) > 0 && (log[len(log)-1] == 0 || log[len(log)-1] == '\n') {
		log = log[:len(log)-1]
	}
	if log == "" {
		return "no diagnostic from driver"
	}
	return log
}

package fontdemo

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

// String returns the stage name used in diagnostics.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Param is a shader or program object query.
type Param int

const (
	ParamCompileStatus Param = iota
	ParamLinkStatus
	ParamInfoLogLength
)

// Device is the subset of the graphics API the pipeline calls.
// The OpenGL implementation lives in backend/opengl; every method must be
// called from the goroutine that owns the context.
type Device interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, param Param) int32
	// GetShaderInfoLog fetches exactly length bytes of the info log,
	// as reported by ParamInfoLogLength.
	GetShaderInfoLog(shader uint32, length int32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, param Param) int32
	GetProgramInfoLog(program uint32, length int32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// GetUniformLocation returns -1 when the name is not an active uniform.
	GetUniformLocation(program uint32, name string) int32
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, x, y float32)
	Uniform1i(location int32, v int32)

	MaxTextureSize() int32
	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(texture uint32)
	// TexParametersNearestRepeat sets nearest min/mag filtering and repeat
	// wrapping on both axes for the bound texture.
	TexParametersNearestRepeat()
	// TexImage2DRGBA uploads a size x size RGBA8 image to the bound texture.
	TexImage2DRGBA(size int32, pix []byte)
	DeleteTexture(texture uint32)

	// CreateQuad uploads 2D vertex positions and returns a vertex array id.
	CreateQuad(positions []float32) uint32
	// DrawQuad draws count vertices of vao as a single triangle fan.
	DrawQuad(vao uint32, count int32)
	DeleteQuad(vao uint32)

	Viewport(width, height int32)
	Flush()
}

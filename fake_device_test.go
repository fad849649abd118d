package fontdemo_test

import (
	"io"
	"log/slog"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/go-theft-auto/fontdemo"
)

// fakeShader is a shader object of fakeDevice.
type fakeShader struct {
	stage    fontdemo.Stage
	source   string
	compiled bool
	log      string
}

// fakeProgram is a program object of fakeDevice.
type fakeProgram struct {
	shaders  []uint32
	linked   bool
	log      string
	uniforms map[string]int32
}

// fakeTexture is a texture object of fakeDevice.
type fakeTexture struct {
	size    int32
	pix     []byte
	nearest bool
	repeat  bool
}

var uniformDecl = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*;`)

// fakeDevice is a software Device. Shaders "compile" unless their source
// contains a syntax error marker or unbalanced braces; linking collects the
// declared uniforms; DrawQuad fills the viewport with fragment().
type fakeDevice struct {
	nextID uint32

	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	textures map[uint32]*fakeTexture
	quads    map[uint32]int

	current    uint32
	activeUnit uint32
	units      map[uint32]uint32
	values     map[int32][]float32

	maxTexture int32
	failLink   bool

	width, height int32
	framebuffer   []uint32

	// fragment computes a pixel color, standing in for the shader.
	fragment func(x, y int, d *fakeDevice) uint32

	calls          []string
	logLengthAsked []int32
	draws          int
	flushes        int
	missingWrites  int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		shaders:    make(map[uint32]*fakeShader),
		programs:   make(map[uint32]*fakeProgram),
		textures:   make(map[uint32]*fakeTexture),
		quads:      make(map[uint32]int),
		units:      make(map[uint32]uint32),
		values:     make(map[int32][]float32),
		maxTexture: 4096,
	}
}

func (d *fakeDevice) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDevice) record(call string) { d.calls = append(d.calls, call) }

func (d *fakeDevice) called(call string) int {
	n := 0
	for _, c := range d.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (d *fakeDevice) CreateShader(stage fontdemo.Stage) uint32 {
	d.record("CreateShader")
	id := d.id()
	d.shaders[id] = &fakeShader{stage: stage}
	return id
}

func (d *fakeDevice) ShaderSource(shader uint32, source string) {
	d.record("ShaderSource")
	d.shaders[shader].source = source
}

func (d *fakeDevice) CompileShader(shader uint32) {
	d.record("CompileShader")
	s := d.shaders[shader]
	switch {
	case strings.Contains(s.source, "SYNTAX ERROR"):
		s.log = "0:3(1): error: syntax error, unexpected IDENTIFIER"
	case strings.Count(s.source, "{") != strings.Count(s.source, "}"):
		s.log = "0:9(1): error: syntax error, unexpected end of file"
	default:
		s.compiled = true
	}
}

func (d *fakeDevice) GetShaderiv(shader uint32, param fontdemo.Param) int32 {
	s := d.shaders[shader]
	switch param {
	case fontdemo.ParamCompileStatus:
		if s.compiled {
			return 1
		}
		return 0
	case fontdemo.ParamInfoLogLength:
		if s.log == "" {
			return 0
		}
		return int32(len(s.log) + 1)
	}
	return 0
}

func (d *fakeDevice) GetShaderInfoLog(shader uint32, length int32) string {
	d.logLengthAsked = append(d.logLengthAsked, length)
	return truncateLog(d.shaders[shader].log, length)
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.record("DeleteShader")
	delete(d.shaders, shader)
}

func (d *fakeDevice) CreateProgram() uint32 {
	d.record("CreateProgram")
	id := d.id()
	d.programs[id] = &fakeProgram{uniforms: make(map[string]int32)}
	return id
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	d.record("AttachShader")
	d.programs[program].shaders = append(d.programs[program].shaders, shader)
}

func (d *fakeDevice) LinkProgram(program uint32) {
	d.record("LinkProgram")
	p := d.programs[program]
	if d.failLink {
		p.log = "error: fragment shader output fragColor not written"
		return
	}
	var loc int32
	for _, id := range p.shaders {
		s, ok := d.shaders[id]
		if !ok || !s.compiled {
			p.log = "error: linking with uncompiled shader"
			return
		}
		for _, m := range uniformDecl.FindAllStringSubmatch(s.source, -1) {
			if _, dup := p.uniforms[m[1]]; !dup {
				p.uniforms[m[1]] = loc
				loc++
			}
		}
	}
	p.linked = true
}

func (d *fakeDevice) GetProgramiv(program uint32, param fontdemo.Param) int32 {
	p := d.programs[program]
	switch param {
	case fontdemo.ParamLinkStatus:
		if p.linked {
			return 1
		}
		return 0
	case fontdemo.ParamInfoLogLength:
		if p.log == "" {
			return 0
		}
		return int32(len(p.log) + 1)
	}
	return 0
}

func (d *fakeDevice) GetProgramInfoLog(program uint32, length int32) string {
	d.logLengthAsked = append(d.logLengthAsked, length)
	return truncateLog(d.programs[program].log, length)
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.record("UseProgram")
	d.current = program
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	d.record("DeleteProgram")
	delete(d.programs, program)
}

func (d *fakeDevice) GetUniformLocation(program uint32, name string) int32 {
	if loc, ok := d.programs[program].uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDevice) write(location int32, v ...float32) {
	if location < 0 {
		d.missingWrites++
		return
	}
	d.values[location] = v
}

func (d *fakeDevice) Uniform1f(location int32, v float32)    { d.write(location, v) }
func (d *fakeDevice) Uniform2f(location int32, x, y float32) { d.write(location, x, y) }
func (d *fakeDevice) Uniform1i(location int32, v int32)      { d.write(location, float32(v)) }

// uniform returns the last values written to the current program's uniform name.
func (d *fakeDevice) uniform(name string) []float32 {
	loc, ok := d.programs[d.current].uniforms[name]
	if !ok {
		return nil
	}
	return d.values[loc]
}

func (d *fakeDevice) MaxTextureSize() int32 { return d.maxTexture }

func (d *fakeDevice) GenTexture() uint32 {
	d.record("GenTexture")
	id := d.id()
	d.textures[id] = &fakeTexture{}
	return id
}

func (d *fakeDevice) ActiveTexture(unit uint32) { d.activeUnit = unit }

func (d *fakeDevice) BindTexture(texture uint32) {
	d.record("BindTexture")
	d.units[d.activeUnit] = texture
}

func (d *fakeDevice) bound() *fakeTexture { return d.textures[d.units[d.activeUnit]] }

func (d *fakeDevice) TexParametersNearestRepeat() {
	t := d.bound()
	t.nearest = true
	t.repeat = true
}

func (d *fakeDevice) TexImage2DRGBA(size int32, pix []byte) {
	d.record("TexImage2D")
	t := d.bound()
	t.size = size
	t.pix = append([]byte(nil), pix...)
}

func (d *fakeDevice) DeleteTexture(texture uint32) {
	d.record("DeleteTexture")
	delete(d.textures, texture)
}

// sample reads texture unit at normalized (s, t) with nearest filtering
// and repeat wrapping, like the texture unit would.
func (d *fakeDevice) sample(unit uint32, s, t float64) [4]byte {
	tex := d.textures[d.units[unit]]
	n := float64(tex.size)
	wrap := func(v float64) int {
		v -= math.Floor(v)
		i := int(math.Floor(v * n))
		if i >= int(tex.size) {
			i = int(tex.size) - 1
		}
		return i
	}
	x, y := wrap(s), wrap(t)
	i := (y*int(tex.size) + x) * 4
	return [4]byte{tex.pix[i], tex.pix[i+1], tex.pix[i+2], tex.pix[i+3]}
}

func (d *fakeDevice) CreateQuad(positions []float32) uint32 {
	d.record("CreateQuad")
	id := d.id()
	d.quads[id] = len(positions) / 2
	return id
}

func (d *fakeDevice) DrawQuad(vao uint32, count int32) {
	d.record("DrawQuad")
	d.draws++
	if d.quads[vao] != int(count) {
		panic("quad vertex count mismatch")
	}
	for y := 0; y < int(d.height); y++ {
		for x := 0; x < int(d.width); x++ {
			var c uint32
			if d.fragment != nil {
				c = d.fragment(x, y, d)
			}
			d.framebuffer[y*int(d.width)+x] = c
		}
	}
}

func (d *fakeDevice) DeleteQuad(vao uint32) {
	d.record("DeleteQuad")
	delete(d.quads, vao)
}

func (d *fakeDevice) Viewport(width, height int32) {
	d.width, d.height = width, height
	d.framebuffer = make([]uint32, width*height)
}

func (d *fakeDevice) Flush() { d.flushes++ }

func truncateLog(log string, length int32) string {
	if length <= 0 {
		return ""
	}
	full := log + "\x00"
	if int(length) < len(full) {
		return full[:length]
	}
	return full
}

// manualClock is a Clock tests advance by hand.
type manualClock struct {
	t time.Time
}

func newManualClock() *manualClock {
	return &manualClock{t: time.Date(2018, 10, 1, 20, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time          { return c.t }
func (c *manualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// fakeEvents is an event queue whose Wait advances a manual clock.
type fakeEvents struct {
	clock *manualClock
	exit  bool
	polls int
	waits []time.Duration
}

func (e *fakeEvents) Poll() { e.polls++ }

func (e *fakeEvents) Wait(timeout time.Duration) {
	e.waits = append(e.waits, timeout)
	if e.clock != nil {
		e.clock.Advance(timeout)
	} else {
		time.Sleep(timeout)
	}
}

func (e *fakeEvents) ExitRequested() bool { return e.exit }

// fakeSurface counts presents.
type fakeSurface struct {
	swaps int
	err   error
}

func (s *fakeSurface) SwapBuffers() error {
	s.swaps++
	return s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// constantShader declares the four default parameters and outputs one color.
const constantShader = `
#version 410 core
uniform float iTime;
uniform vec2 iResolution;
uniform sampler2D iFont;
uniform float iFontWidth;
out vec4 fragColor;
void main() {
    fragColor = vec4(1.0, 0.5, 0.0, 1.0);
}
`

// bareShader declares no parameters.
const bareShader = `
#version 410 core
out vec4 fragColor;
void main() {
    fragColor = vec4(0.0, 0.0, 1.0, 1.0);
}
`

func checkerboard(size, square int) *fontdemo.FontAtlas {
	a := &fontdemo.FontAtlas{Width: size, Height: size, Pix: make([]byte, size*size*4)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 4
			if ((x/square)+(y/square))%2 == 0 {
				a.Pix[i], a.Pix[i+1], a.Pix[i+2], a.Pix[i+3] = 255, 255, 255, 255
			} else {
				a.Pix[i], a.Pix[i+1], a.Pix[i+2], a.Pix[i+3] = 0, 0, 0, 255
			}
		}
	}
	return a
}

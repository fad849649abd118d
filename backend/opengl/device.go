// Package opengl provides the OpenGL 4.1 core backend for fontdemo.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/fontdemo"
)

// Device implements fontdemo.Device on the current OpenGL context.
// The bindings must have been loaded with Init first.
type Device struct {
	// Vertex buffer behind each quad vertex array
	quadBuffers map[uint32]uint32
}

var _ fontdemo.Device = (*Device)(nil)

// NewDevice creates a device bound to the current context.
func NewDevice() *Device {
	return &Device{quadBuffers: make(map[uint32]uint32)}
}

func glStage(s fontdemo.Stage) uint32 {
	if s == fontdemo.StageVertex {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

func glParam(p fontdemo.Param) uint32 {
	switch p {
	case fontdemo.ParamCompileStatus:
		return gl.COMPILE_STATUS
	case fontdemo.ParamLinkStatus:
		return gl.LINK_STATUS
	default:
		return gl.INFO_LOG_LENGTH
	}
}

func (d *Device) CreateShader(stage fontdemo.Stage) uint32 {
	return gl.CreateShader(glStage(stage))
}

func (d *Device) ShaderSource(shader uint32, source string) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (d *Device) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (d *Device) GetShaderiv(shader uint32, param fontdemo.Param) int32 {
	var v int32
	gl.GetShaderiv(shader, glParam(param), &v)
	return v
}

func (d *Device) GetShaderInfoLog(shader uint32, length int32) string {
	if length <= 0 {
		return ""
	}
	log := make([]byte, length+1)
	gl.GetShaderInfoLog(shader, length, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (d *Device) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (d *Device) CreateProgram() uint32 { return gl.CreateProgram() }

func (d *Device) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (d *Device) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (d *Device) GetProgramiv(program uint32, param fontdemo.Param) int32 {
	var v int32
	gl.GetProgramiv(program, glParam(param), &v)
	return v
}

func (d *Device) GetProgramInfoLog(program uint32, length int32) string {
	if length <= 0 {
		return ""
	}
	log := make([]byte, length+1)
	gl.GetProgramInfoLog(program, length, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (d *Device) UseProgram(program uint32) { gl.UseProgram(program) }

func (d *Device) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (d *Device) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (d *Device) Uniform2f(location int32, x, y float32) { gl.Uniform2f(location, x, y) }

func (d *Device) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

func (d *Device) MaxTextureSize() int32 {
	var v int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &v)
	return v
}

func (d *Device) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (d *Device) ActiveTexture(unit uint32) { gl.ActiveTexture(gl.TEXTURE0 + unit) }

func (d *Device) BindTexture(texture uint32) { gl.BindTexture(gl.TEXTURE_2D, texture) }

func (d *Device) TexParametersNearestRepeat() {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
}

func (d *Device) TexImage2DRGBA(size int32, pix []byte) {
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, size, size, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
}

func (d *Device) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

func (d *Device) CreateQuad(positions []float32) uint32 {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	d.quadBuffers[vao] = vbo
	return vao
}

func (d *Device) DrawQuad(vao uint32, count int32) {
	gl.BindVertexArray(vao)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, count)
	gl.BindVertexArray(0)
}

func (d *Device) DeleteQuad(vao uint32) {
	if vbo, ok := d.quadBuffers[vao]; ok {
		gl.DeleteBuffers(1, &vbo)
		delete(d.quadBuffers, vao)
	}
	gl.DeleteVertexArrays(1, &vao)
}

func (d *Device) Viewport(width, height int32) { gl.Viewport(0, 0, width, height) }

func (d *Device) Flush() { gl.Flush() }

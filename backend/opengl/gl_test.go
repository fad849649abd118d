//go:build gl

package opengl

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/fontdemo"
)

// GL calls must run on the thread that owns the context; tests hand
// their work to the main goroutine through mainfunc.
var mainfunc = make(chan func())

var testWindow *Window

func init() {
	runtime.LockOSThread()
}

func TestMain(m *testing.M) {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		fmt.Println("skipping GL tests: no display")
		os.Exit(0)
	}
	if err := glfw.Init(); err != nil {
		fmt.Println("skipping GL tests:", err)
		os.Exit(0)
	}
	w, err := OpenWindow(WindowConfig{Title: "fontdemo-test", Width: 64, Height: 64, Hidden: true},
		fontdemo.NewExitSignal(fontdemo.ExitOnEscape))
	if err != nil {
		glfw.Terminate()
		fmt.Println("skipping GL tests:", err)
		os.Exit(0)
	}
	if _, err := ResolveAndInit(DefaultResolver()); err != nil {
		w.Destroy()
		glfw.Terminate()
		fmt.Println("skipping GL tests:", err)
		os.Exit(0)
	}
	testWindow = w

	done := make(chan int)
	go func() { done <- m.Run() }()
	for {
		select {
		case f := <-mainfunc:
			f()
		case code := <-done:
			w.Destroy()
			glfw.Terminate()
			os.Exit(code)
		}
	}
}

func onMain(f func()) {
	done := make(chan struct{})
	mainfunc <- func() {
		f()
		close(done)
	}
	<-done
}

const magentaShader = `
#version 410 core
uniform float iTime;
uniform vec2 iResolution;
uniform sampler2D iFont;
uniform float iFontWidth;
out vec4 fragColor;
void main() {
    fragColor = vec4(1.0, 0.0, 1.0, 1.0);
    if (iTime < 0.0 || iResolution.x < 0.0 || iFontWidth < 0.0) {
        fragColor = texture(iFont, gl_FragCoord.xy / iResolution);
    }
}
`

func checker(size int) *fontdemo.FontAtlas {
	a := &fontdemo.FontAtlas{Width: size, Height: size, Pix: make([]byte, size*size*4)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 4
			v := byte(0)
			if (x+y)%2 == 0 {
				v = 255
			}
			a.Pix[i], a.Pix[i+1], a.Pix[i+2], a.Pix[i+3] = v, byte(x), byte(y), 255
		}
	}
	return a
}

func TestUploadAtlasReadback(t *testing.T) {
	a := checker(16)
	var (
		err  error
		got  [][4]byte
		want [][4]byte
	)
	onMain(func() {
		dev := NewDevice()
		var tex *fontdemo.Texture
		tex, err = fontdemo.UploadAtlas(dev, a, 0)
		if err != nil {
			return
		}
		defer tex.Delete()
		for _, p := range [][2]int{{0, 0}, {1, 0}, {7, 9}, {15, 15}} {
			got = append(got, ReadTexel(16, p[0], p[1]))
			want = append(want, a.At(p[0], p[1]))
		}
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCompileErrorFromDriver(t *testing.T) {
	var err error
	onMain(func() {
		_, err = fontdemo.NewProgramBuilder(NewDevice()).Build("#version 410 core\nvoid main() { this is not glsl }\n")
	})
	var ce *fontdemo.CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, fontdemo.StageFragment, ce.Stage)
	assert.NotEmpty(t, ce.Log)
}

func TestRenderConstantColor(t *testing.T) {
	var (
		err    error
		frames int
		bad    []string
	)
	onMain(func() {
		vp := testWindow.Viewport()
		var rc *fontdemo.RenderContext
		rc, err = fontdemo.Setup(NewDevice(), checker(16), magentaShader,
			fontdemo.WithViewport(vp.Width, vp.Height),
			fontdemo.WithRequiredUniforms(fontdemo.DefaultTimeUniform))
		if err != nil {
			return
		}
		defer rc.Close()

		for tick := uint64(1); tick <= 10; tick++ {
			if err = rc.Render(rc.Frame(tick, float32(tick)/60)); err != nil {
				return
			}
			img := ReadPixels(vp.Width, vp.Height)
			for i := 0; i < len(img.Pix); i += 4 {
				px := img.Pix[i : i+4]
				if px[0] != 255 || px[1] != 0 || px[2] != 255 || px[3] != 255 {
					bad = append(bad, fmt.Sprintf("tick %d offset %d: %v", tick, i, px))
					break
				}
			}
			frames++
		}
	})
	require.NoError(t, err)
	assert.Equal(t, 10, frames)
	assert.Empty(t, bad)
}

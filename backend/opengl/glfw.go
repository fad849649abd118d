package opengl

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/fontdemo"
)

// WindowConfig describes the window to open.
type WindowConfig struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool // full screen on the primary monitor at its current video mode
	Hidden     bool // offscreen rendering for tools and tests
}

// Window adapts a GLFW window to fontdemo.Events and fontdemo.Surface.
// Key presses and close requests are forwarded to an ExitSignal.
type Window struct {
	window *glfw.Window
	exit   *fontdemo.ExitSignal
}

var (
	_ fontdemo.Events  = (*Window)(nil)
	_ fontdemo.Surface = (*Window)(nil)
)

// OpenWindow creates a window with an OpenGL 4.1 core context and makes
// the context current. glfw.Init must have been called on the main thread.
func OpenWindow(cfg WindowConfig, exit *fontdemo.ExitSignal) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	width, height := cfg.Width, cfg.Height
	var monitor *glfw.Monitor
	if cfg.Fullscreen && !cfg.Hidden {
		monitor = glfw.GetPrimaryMonitor()
		if monitor != nil {
			width, height = videoModeSize(monitor.GetVideoMode(), width, height)
		}
	}

	window, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if monitor != nil {
		window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}

	return NewWindow(window, exit), nil
}

// videoModeSize returns the mode's size, or width and height when the
// driver reported no mode.
func videoModeSize(mode *glfw.VidMode, width, height int) (int, int) {
	if mode == nil || mode.Width <= 0 || mode.Height <= 0 {
		return width, height
	}
	return mode.Width, mode.Height
}

// NewWindow wraps an existing GLFW window.
func NewWindow(window *glfw.Window, exit *fontdemo.ExitSignal) *Window {
	w := &Window{window: window, exit: exit}
	window.SetKeyCallback(w.keyCallback)
	window.SetCloseCallback(w.closeCallback)
	return w
}

// Viewport returns the framebuffer size in pixels.
func (w *Window) Viewport() fontdemo.Viewport {
	fw, fh := w.window.GetFramebufferSize()
	return fontdemo.Viewport{Width: fw, Height: fh}
}

// GLFW returns the underlying window.
func (w *Window) GLFW() *glfw.Window { return w.window }

// Poll processes pending events.
func (w *Window) Poll() { glfw.PollEvents() }

// Wait blocks until an event arrives or timeout elapses.
func (w *Window) Wait(timeout time.Duration) {
	glfw.WaitEventsTimeout(timeout.Seconds())
}

// ExitRequested reports whether a key press or close request asked to stop.
func (w *Window) ExitRequested() bool {
	return w.exit.Requested()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() error {
	w.window.SwapBuffers()
	return nil
}

// Destroy closes the window.
func (w *Window) Destroy() {
	w.window.Destroy()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	w.exit.KeyPressed(glfwKeyToKey(key))
}

func (w *Window) closeCallback(_ *glfw.Window) {
	w.exit.RequestClose()
}

// glfwKeyToKey maps GLFW keys to demo keys.
func glfwKeyToKey(key glfw.Key) fontdemo.Key {
	switch key {
	case glfw.KeyEscape:
		return fontdemo.KeyEscape
	case glfw.KeySpace:
		return fontdemo.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return fontdemo.KeyEnter
	case glfw.KeyQ:
		return fontdemo.KeyQ
	default:
		return fontdemo.KeyOther
	}
}

package main

import (
	"github.com/go-theft-auto/fontdemo"
	"github.com/go-theft-auto/fontdemo/backend/opengl"
)

// Windows drives frames from a timer, pumping messages on every fire.
func newTickSource(w *opengl.Window, rate int) fontdemo.TickSource {
	return fontdemo.NewTimerSource(w, rate)
}

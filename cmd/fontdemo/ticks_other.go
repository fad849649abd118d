//go:build !windows

package main

import (
	"github.com/go-theft-auto/fontdemo"
	"github.com/go-theft-auto/fontdemo/backend/opengl"
)

// Elsewhere the loop waits on the event queue with a frame-interval timeout.
func newTickSource(w *opengl.Window, rate int) fontdemo.TickSource {
	return fontdemo.NewWaitSource(w, rate)
}

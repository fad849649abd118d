// Package shaders embeds the demo's fragment shader.
//
// The uniform names can be changed per build, e.g. after minifying the
// shader:
//
//	go build -ldflags "-X github.com/go-theft-auto/fontdemo/shaders.TimeUniform=t" ./cmd/fontdemo
//
// Names left empty fall back to the fontdemo defaults.
package shaders

import (
	_ "embed"

	"github.com/go-theft-auto/fontdemo"
)

// Fragment is the demo's fragment shader source.
//
//go:embed gfx.frag
var Fragment string

// Build-time uniform name overrides.
var (
	TimeUniform       string
	ResolutionUniform string
	FontUniform       string
	FontWidthUniform  string
)

// Names returns the uniform names Fragment declares.
func Names() fontdemo.UniformNames {
	return fontdemo.UniformNames{
		Time:       TimeUniform,
		Resolution: ResolutionUniform,
		Font:       FontUniform,
		FontWidth:  FontWidthUniform,
	}.WithDefaults()
}

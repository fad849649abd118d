// Command gen renders the demo shader offscreen at fixed times, captures
// framebuffer pixels, and saves JPEG frames plus the baked atlas to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/fontdemo"
	"github.com/go-theft-auto/fontdemo/atlas"
	"github.com/go-theft-auto/fontdemo/backend/opengl"
	"github.com/go-theft-auto/fontdemo/shaders"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// snapshot defines a single frame to capture.
type snapshot struct {
	name    string  // filename without extension
	elapsed float32 // seconds since epoch passed to the shader
}

var snapshots = []snapshot{
	{"frame-0000", 0},
	{"frame-0500", 0.5},
	{"frame-2000", 2},
	{"frame-5000", 5},
}

const (
	width  = 800
	height = 450
)

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := opengl.OpenWindow(opengl.WindowConfig{
		Title:  "snapshot-gen",
		Width:  width,
		Height: height,
		Hidden: true,
	}, fontdemo.NewExitSignal(fontdemo.ExitOnEscape))
	if err != nil {
		return err
	}
	defer window.Destroy()

	if _, err := opengl.ResolveAndInit(opengl.GLFWResolver{}); err != nil {
		return err
	}

	fontAtlas, err := atlas.BakeDefault()
	if err != nil {
		return fmt.Errorf("bake atlas: %w", err)
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := writeAtlas(filepath.Join(outDir, "atlas.png"), fontAtlas); err != nil {
		return fmt.Errorf("write atlas: %w", err)
	}

	rc, err := fontdemo.Setup(opengl.NewDevice(), fontAtlas, shaders.Fragment,
		fontdemo.WithViewport(width, height),
		fontdemo.WithUniformNames(shaders.Names()),
		fontdemo.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
	)
	if err != nil {
		return err
	}
	defer rc.Close()

	for i, s := range snapshots {
		if err := capture(rc, uint64(i+1), s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (t=%.2fs)\n", s.name, s.elapsed)
	}

	fmt.Printf("\nGenerated %d frames in %s/\n", len(snapshots), outDir)
	return nil
}

func capture(rc *fontdemo.RenderContext, tick uint64, s snapshot, outDir string) error {
	if err := rc.Render(rc.Frame(tick, s.elapsed)); err != nil {
		return err
	}
	img := opengl.ReadPixels(width, height)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func writeAtlas(path string, a *fontdemo.FontAtlas) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return atlas.EncodePNG(f, a)
}

// Command fontdemo renders the embedded shader full screen until a key is
// pressed or the window is closed.
//
// Prerequisites:
//
//	devbox shell                # Go + OpenGL/X11 headers
//	go run ./cmd/fontdemo       # Escape exits
//	go run -tags anykey ./cmd/fontdemo   # any key exits
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/fontdemo"
	"github.com/go-theft-auto/fontdemo/atlas"
	"github.com/go-theft-auto/fontdemo/backend/opengl"
	"github.com/go-theft-auto/fontdemo/shaders"
)

const windowTitle = ":: NR4^QM/Team210 :: GO - MAKE A DEMO ::"

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("fontdemo", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	names := shaders.Names()
	opts := []fontdemo.Option{
		fontdemo.WithUniformNames(names),
		fontdemo.WithRequiredUniforms(names.Time, names.Resolution, names.Font, names.FontWidth),
		fontdemo.WithExitPolicy(exitPolicy),
		fontdemo.WithLogger(logger),
	}
	cfg := fontdemo.NewConfig(opts...)

	exit := fontdemo.NewExitSignal(cfg.ExitPolicy)
	window, err := opengl.OpenWindow(opengl.WindowConfig{
		Title:      windowTitle,
		Width:      cfg.Viewport.Width,
		Height:     cfg.Viewport.Height,
		Fullscreen: true,
	}, exit)
	if err != nil {
		return err
	}
	defer window.Destroy()

	if _, err := opengl.ResolveAndInit(opengl.DefaultResolver()); err != nil {
		return err
	}

	fontAtlas, err := atlas.BakeDefault()
	if err != nil {
		return fmt.Errorf("bake atlas: %w", err)
	}

	vp := window.Viewport()
	opts = append(opts, fontdemo.WithViewport(vp.Width, vp.Height))
	rc, err := fontdemo.Setup(opengl.NewDevice(), fontAtlas, shaders.Fragment, opts...)
	if err != nil {
		return err
	}
	defer rc.Close()
	fontAtlas.Release()

	sched := fontdemo.NewScheduler(rc, newTickSource(window, rc.Config.FrameRate), window)
	if err := sched.Run(context.Background()); err != nil {
		return err
	}
	logger.Info("exit", "reason", exit.Reason())
	return nil
}

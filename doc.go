/*
Package fontdemo renders a fragment shader over a single full-screen quad,
feeding it a font atlas texture and the time since rendering started.

# Overview

The pipeline is built once at startup and then driven by a tick loop:

	ProcResolver -> FunctionTable          (GPU entry points)
	ProgramBuilder -> Program              (vertex quad stage + fragment shader)
	BindUniforms -> UniformTable           (time, resolution, atlas sampler, atlas width)
	UploadAtlas -> Texture                 (nearest filtering, repeat wrapping)
	NewQuadRenderer -> QuadRenderer        (one triangle fan over NDC [-1,1]x[-1,1])
	Scheduler + TickSource                 (timer-driven or wait-driven ticks)

Every GPU call goes through the Device interface. backend/opengl provides
the OpenGL 4.1 core implementation; tests use a software device.

# Quick Start

	table, err := fontdemo.Resolve(opengl.DefaultResolver(), fontdemo.RequiredEntryPoints, fontdemo.ReservedEntryPoints)
	if err != nil {
	    return err
	}
	if err := opengl.Init(table); err != nil {
	    return err
	}

	rc, err := fontdemo.Setup(opengl.NewDevice(), atlas, shaders.Fragment,
	    fontdemo.WithViewport(1366, 768),
	    fontdemo.WithUniformNames(shaders.Names()))
	if err != nil {
	    return err
	}
	defer rc.Close()

	src := fontdemo.NewWaitSource(window, 60)
	return fontdemo.NewScheduler(rc, src, window).Run(ctx)

# Shader Interface

The fragment shader sees exactly four parameters:

	iTime       float      seconds since the epoch
	iResolution vec2       viewport width and height in pixels
	iFont       sampler2D  atlas texture unit
	iFontWidth  float      atlas side length in texels

Names can be overridden per build (see UniformNames). A name the program
does not expose is skipped on every push unless it was listed with
WithRequiredUniforms, in which case Setup fails with a *BindingError.

# Tick Sources

TimerSource fires from a fixed-interval timer and pumps events on every
fire. WaitSource drains events and then blocks on the event queue with a
timeout running up to the next deadline. Both check for an exit request
before every tick, so no tick starts after the exit was observed.

# Errors

Setup and Resolve fail with *ResolutionError, *CompileError, *LinkError,
*TextureUploadError or *BindingError, wrapped with context. None of them is
recoverable: there is no fallback shader.
*/
package fontdemo

/*
Package guihost connects the imgui toolkit to a host graphics and input
framework.

# Overview

A host application owns the window, the event loop and the GPU. This package
sits between it and the toolkit:

  - Input turns host callbacks (mouse, keyboard, text, wheel, resize) into
    toolkit events in logical points and queues them until the next frame.
  - Gui.Begin drains that queue into a new toolkit frame and returns a Frame.
    Ending the frame tessellates it and hands the result to the Painter.
  - The Painter keeps a TextureCache in sync with the toolkit's texture
    deltas, builds one host mesh per clipped primitive, and draws them in
    order with clip rectangles scaled to host pixels.

The host side is described by a handful of interfaces (Graphics, Image,
Mesh, Canvas, Host, Clipboard). backend/opengl implements them with go-gl
and GLFW; backend/software renders into an in-memory image and needs no
GPU.

# Quick Start

	gfx, _ := opengl.NewRenderer(1280, 720)
	ui := guihost.New(gfx, 1280, 720,
	    guihost.WithClipboard(opengl.NewClipboard(window)),
	    guihost.WithScaleFactor(2),
	)
	defer ui.Close()

	opengl.InstallCallbacks(window, ui.Input())

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    if err := ui.Tick(opengl.WindowHost{Window: window}); err != nil {
	        return err
	    }

	    ui.Frame(func(f *guihost.Frame) {
	        f.Window("Demo", func() {
	            f.Label("Hello")
	            if f.Button("Click me") {
	                clicks++
	            }
	        })
	    })

	    gl.Clear(gl.COLOR_BUFFER_BIT)
	    if err := ui.Draw(gfx); err != nil {
	        return err
	    }
	    window.SwapBuffers()
	}

# Frames

Only one frame may be open at a time; Begin panics with ErrFrameAlreadyOpen
otherwise. Gui.Frame ends the frame on every exit path, including a panic in
the callback. When using Begin directly, defer End.

# Scale

The scale factor is host pixels per logical point. Pointer positions are
divided by it on the way in, the screen rectangle is the backbuffer size
divided by it, and clip rectangles are multiplied by it on the way out.
Scroll deltas are passed through unscaled.

# Textures

Texture deltas are applied in the order frames produced them, and every
queued delta is applied before any mesh is built. A mesh that refers to a
texture the cache does not hold is skipped with a warning. Custom paint
callbacks are not supported and panic with ErrCallbackUnsupported.

# Configuration

Options can be given directly or loaded from a TOML file:

	scale_factor = 2.0
	font_gamma = 1.0
	verbose = false

	cfg, err := guihost.LoadConfig("gui.toml")
	ui := guihost.New(gfx, w, h, guihost.WithConfig(cfg))
*/
package guihost

package guihost

import (
	"errors"

	"github.com/go-theft-auto/guihost/imgui"
)

// ErrFrameAlreadyOpen is raised as a panic when a frame is begun while
// another is still open.
var ErrFrameAlreadyOpen = errors.New("guihost: a frame is already open")

// Frame is the handle for one open toolkit frame. Widgets are built through
// the embedded Context. End must run on every exit path; Gui.Frame does
// that for you, otherwise use defer:
//
//	f := ui.Begin()
//	defer f.End()
type Frame struct {
	*imgui.Context

	gui  *Gui
	done bool
}

// End closes the frame: it ends the toolkit frame, tessellates its shapes,
// hands them and the texture delta to the painter, and publishes copied
// text to the clipboard. Calling End again does nothing.
func (f *Frame) End() {
	if f.done {
		return
	}
	f.done = true
	g := f.gui
	g.open = nil

	out := f.Context.EndFrame()
	g.painter.Enqueue(FrameOutput{
		Primitives:     f.Context.Tessellate(out.Shapes),
		TexturesDelta:  out.TexturesDelta,
		PixelsPerPoint: out.PixelsPerPoint,
	})

	if text := out.PlatformOutput.CopiedText; text != "" && g.clipboard != nil {
		g.clipboard.SetText(text)
	}
}

// Closed reports whether End has run.
func (f *Frame) Closed() bool {
	return f.done
}

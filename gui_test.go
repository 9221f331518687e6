package guihost_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-theft-auto/guihost"
	"github.com/go-theft-auto/guihost/imgui"
)

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Errorf("recovered %v, want %v", r, target)
		}
	}()
	fn()
}

func TestGUIBasicUsage(t *testing.T) {
	gfx := &fakeGraphics{}
	canvas := &fakeCanvas{}
	ui := guihost.New(gfx, 800, 600)
	defer ui.Close()

	if err := ui.Tick(&fakeHost{800, 600}); err != nil {
		t.Fatal(err)
	}
	ui.Frame(func(f *guihost.Frame) {
		f.Window("Demo", func() {
			f.Label("Hello World")
			f.Button("Click Me")
		})
	})
	if err := ui.Draw(canvas); err != nil {
		t.Fatal(err)
	}

	if len(canvas.calls) == 0 {
		t.Fatal("expected at least one draw call")
	}
	if _, ok := ui.Painter().Textures().Get(imgui.FontTextureID); !ok {
		t.Error("font texture was not uploaded")
	}
	for i, call := range canvas.calls {
		if call.param.Scale != 1 {
			t.Errorf("draw %d scale = %v, want 1", i, call.param.Scale)
		}
	}
}

func TestBeginTwicePanicsEveryTime(t *testing.T) {
	ui := guihost.New(&fakeGraphics{}, 800, 600)
	f := ui.Begin()

	for i := 0; i < 3; i++ {
		expectPanic(t, guihost.ErrFrameAlreadyOpen, func() { ui.Begin() })
	}

	f.End()
	ui.Begin().End()
}

func TestEndIsIdempotent(t *testing.T) {
	ui := guihost.New(&fakeGraphics{}, 800, 600)
	f := ui.Begin()
	f.End()
	f.End()
	if !f.Closed() {
		t.Error("frame should report closed")
	}
	if ui.Context().InFrame() {
		t.Error("toolkit frame still running")
	}
}

func TestFrameEndsWhenCallbackPanics(t *testing.T) {
	ui := guihost.New(&fakeGraphics{}, 800, 600)

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Errorf("recovered %v, want boom", r)
			}
		}()
		ui.Frame(func(f *guihost.Frame) {
			f.Label("before")
			panic("boom")
		})
	}()

	if ui.Context().InFrame() {
		t.Fatal("frame left open after panic")
	}
	ui.Begin().End()
}

func TestTickResizesOnHostChange(t *testing.T) {
	ui := guihost.New(&fakeGraphics{}, 800, 600, guihost.WithScaleFactor(2))
	host := &fakeHost{1024, 768}

	if err := ui.Tick(host); err != nil {
		t.Fatal(err)
	}
	want := imgui.Rect{Max: imgui.Pos2{X: 512, Y: 384}}
	if got := ui.Input().ScreenRect(); got != want {
		t.Errorf("screen rect = %v, want %v", got, want)
	}

	f := ui.Begin()
	if got := f.ScreenRect(); got != want {
		t.Errorf("frame screen rect = %v, want %v", got, want)
	}
	if f.PixelsPerPoint() != 2 {
		t.Errorf("pixels per point = %v, want 2", f.PixelsPerPoint())
	}
	f.End()
}

func TestSetScaleFactor(t *testing.T) {
	ui := guihost.New(&fakeGraphics{}, 1024, 768)
	if err := ui.SetScaleFactor(2); err != nil {
		t.Fatal(err)
	}
	if ui.ScaleFactor() != 2 {
		t.Errorf("scale factor = %v, want 2", ui.ScaleFactor())
	}
	if got := ui.Input().ScreenRect().Max; got != (imgui.Pos2{X: 512, Y: 384}) {
		t.Errorf("screen max = %v", got)
	}
	if err := ui.SetScaleFactor(0); !errors.Is(err, guihost.ErrInvalidScaleFactor) {
		t.Errorf("SetScaleFactor(0) = %v", err)
	}
	if ui.ScaleFactor() != 2 {
		t.Errorf("scale factor changed to %v", ui.ScaleFactor())
	}
}

func TestButtonClickThroughHostInput(t *testing.T) {
	ui := guihost.New(&fakeGraphics{}, 800, 600, guihost.WithScaleFactor(2))
	in := ui.Input()

	ui.Frame(func(f *guihost.Frame) { f.Button("OK") })

	// The button sits at (8,8) in points; (24,24) host pixels is (12,12).
	in.MouseMotionEvent(24, 24)
	in.MouseButtonDownEvent(guihost.MouseLeft)
	in.MouseButtonUpEvent(guihost.MouseLeft)

	var clicked bool
	ui.Frame(func(f *guihost.Frame) { clicked = f.Button("OK") })
	if !clicked {
		t.Error("expected button to be clicked")
	}
}

func TestCopiedTextReachesClipboard(t *testing.T) {
	clip := &guihost.MemoryClipboard{}
	ui := guihost.New(&fakeGraphics{}, 800, 600, guihost.WithClipboard(clip))

	ui.Frame(func(f *guihost.Frame) { f.CopyText("copied") })
	if clip.GetText() != "copied" {
		t.Errorf("clipboard = %q, want %q", clip.GetText(), "copied")
	}

	ui.Frame(func(f *guihost.Frame) {})
	if clip.GetText() != "copied" {
		t.Error("an empty frame must not clear the clipboard")
	}
}

func TestUserTextureLifecycle(t *testing.T) {
	gfx := &fakeGraphics{}
	canvas := &fakeCanvas{}
	ui := guihost.New(gfx, 800, 600)

	var handle *imgui.TextureHandle
	ui.Frame(func(f *guihost.Frame) {
		handle = f.LoadTexture("swatch", imgui.NewColorImage(2, 2, imgui.ColorCyan))
		f.Image(handle.ID(), imgui.Vec2{X: 16, Y: 16})
	})
	if err := ui.Draw(canvas); err != nil {
		t.Fatal(err)
	}
	tex, ok := ui.Painter().Textures().Get(handle.ID())
	if !ok {
		t.Fatal("user texture not cached")
	}
	var drawn bool
	for _, call := range canvas.calls {
		drawn = drawn || call.mesh.texture == tex
	}
	if !drawn {
		t.Error("user texture was never drawn")
	}

	ui.Frame(func(f *guihost.Frame) { handle.Free() })
	if err := ui.Draw(canvas); err != nil {
		t.Fatal(err)
	}
	if _, ok := ui.Painter().Textures().Get(handle.ID()); ok {
		t.Error("freed texture still cached")
	}
	if imageOf(tex).released != 1 {
		t.Errorf("texture released %d times, want 1", imageOf(tex).released)
	}

	ui.Close()
	if gfx.liveImages() != 0 {
		t.Errorf("%d images live after Close", gfx.liveImages())
	}
}

func TestConfigOption(t *testing.T) {
	cfg := guihost.DefaultConfig()
	cfg.ScaleFactor = 1.5
	ui := guihost.New(&fakeGraphics{}, 300, 150, guihost.WithConfig(cfg))
	if ui.ScaleFactor() != 1.5 {
		t.Errorf("scale factor = %v, want 1.5", ui.ScaleFactor())
	}
	if got := ui.Input().ScreenRect().Max; got != (imgui.Pos2{X: 200, Y: 100}) {
		t.Errorf("screen max = %v", got)
	}
}

func TestWithLoggerIsPerGui(t *testing.T) {
	newLogger := func(buf *bytes.Buffer) *slog.Logger {
		return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	var first, second bytes.Buffer
	a := guihost.New(&fakeGraphics{}, 100, 100, guihost.WithLogger(newLogger(&first)))
	defer a.Close()
	b := guihost.New(&fakeGraphics{}, 100, 100, guihost.WithLogger(newLogger(&second)))
	defer b.Close()

	a.Resize(200, 150)
	a.Painter().Enqueue(guihost.FrameOutput{
		Primitives: []imgui.ClippedPrimitive{{Clip: rect(0, 0, 10, 10), Primitive: quad(42, rect(0, 0, 5, 5), imgui.ColorWhite)}},
	})
	if err := a.Tick(&fakeHost{200, 150}); err != nil {
		t.Fatal(err)
	}

	for _, msg := range []string{"resized", "skipping mesh with unknown texture"} {
		if !strings.Contains(first.String(), msg) {
			t.Errorf("first logger is missing %q:\n%s", msg, first.String())
		}
	}
	if second.Len() != 0 {
		t.Errorf("second logger received another Gui's records:\n%s", second.String())
	}
}

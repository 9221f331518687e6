package guihost

import (
	"log/slog"
	"time"

	"github.com/go-theft-auto/guihost/imgui"
)

// Gui owns the toolkit context, the input accumulator and the painter for
// one host window.
type Gui struct {
	ctx     *imgui.Context
	input   *Input
	painter *Painter
	gfx     Graphics

	clipboard Clipboard
	open      *Frame

	width, height float32
	scaleFactor   float32
	fontGamma     float32

	log *slog.Logger
}

// Option configures a Gui.
type Option func(*Gui)

// WithScaleFactor sets the initial host-pixels-per-point ratio.
// Values that are not positive are ignored.
func WithScaleFactor(f float32) Option {
	return func(g *Gui) { g.scaleFactor = f }
}

// WithClipboard connects the host clipboard for copy, cut and paste.
func WithClipboard(c Clipboard) Option {
	return func(g *Gui) { g.clipboard = c }
}

// WithFontGamma sets the gamma used to expand font coverage into RGBA.
func WithFontGamma(gamma float32) Option {
	return func(g *Gui) { g.fontGamma = gamma }
}

// WithClock replaces the time source used to stamp frames.
func WithClock(now func() time.Time) Option {
	return func(g *Gui) { g.input.now = now }
}

// WithLogger routes this Gui's logging, including its painter and texture
// cache, to l. Other Gui values keep their own logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gui) { g.log = l }
}

// WithStyle sets the toolkit style.
func WithStyle(style imgui.Style) Option {
	return func(g *Gui) { g.ctx.SetStyle(style) }
}

// WithConfig applies a loaded Config.
func WithConfig(cfg Config) Option {
	return func(g *Gui) {
		if cfg.ScaleFactor > 0 {
			g.scaleFactor = cfg.ScaleFactor
		}
		if cfg.FontGamma > 0 {
			g.fontGamma = cfg.FontGamma
		}
		SetVerbose(cfg.Verbose)
	}
}

// New creates a Gui for a backbuffer of width x height pixels.
func New(gfx Graphics, width, height float32, opts ...Option) *Gui {
	g := &Gui{
		ctx:         imgui.NewContext(),
		input:       NewInput(),
		gfx:         gfx,
		width:       width,
		height:      height,
		scaleFactor: 1,
		fontGamma:   1,
	}

	for _, opt := range opts {
		opt(g)
	}

	cache := NewTextureCache(g.fontGamma)
	cache.log = g.log
	g.painter = NewPainter(cache)
	g.painter.log = g.log
	g.input.clipboard = g.clipboard
	if err := g.input.SetScaleFactor(g.scaleFactor, width, height); err != nil {
		g.logger().Warn("ignoring scale factor", "scale", g.scaleFactor, "err", err)
		g.scaleFactor = 1
		_ = g.input.SetScaleFactor(1, width, height)
	}

	return g
}

// Tick polls the host size and prepares the painter: queued texture deltas
// are applied and pending meshes built. Call it once per host update.
func (g *Gui) Tick(host Host) error {
	if w, h := host.Size(); w != g.width || h != g.height {
		g.Resize(w, h)
	}
	return g.painter.Prepare(g.gfx)
}

// Resize updates the backbuffer size in host pixels.
func (g *Gui) Resize(width, height float32) {
	g.width, g.height = width, height
	g.input.ResizeEvent(width, height)
	g.logger().Debug("resized", "width", width, "height", height, "screen", g.input.ScreenRect())
}

// Begin drains pending input and opens a frame. It panics with
// ErrFrameAlreadyOpen if the previous frame has not been ended.
func (g *Gui) Begin() *Frame {
	if g.open != nil {
		panic(ErrFrameAlreadyOpen)
	}
	g.ctx.BeginFrame(g.input.Take())
	g.open = &Frame{Context: g.ctx, gui: g}
	return g.open
}

// Frame runs fn inside a frame. The frame is ended even if fn panics.
func (g *Gui) Frame(fn func(f *Frame)) {
	f := g.Begin()
	defer f.End()
	fn(f)
}

// Draw prepares and paints the most recently ended frame.
func (g *Gui) Draw(canvas Canvas) error {
	if err := g.painter.Prepare(g.gfx); err != nil {
		return err
	}
	return g.painter.Draw(canvas)
}

// SetScaleFactor changes the host-pixels-per-point ratio and recomputes the
// logical screen size.
func (g *Gui) SetScaleFactor(f float32) error {
	if err := g.input.SetScaleFactor(f, g.width, g.height); err != nil {
		return err
	}
	g.scaleFactor = f
	return nil
}

// ScaleFactor returns the host-pixels-per-point ratio.
func (g *Gui) ScaleFactor() float32 {
	return g.scaleFactor
}

// Input returns the input accumulator for host callbacks.
func (g *Gui) Input() *Input {
	return g.input
}

// Context returns the toolkit context.
func (g *Gui) Context() *imgui.Context {
	return g.ctx
}

// Painter returns the painter.
func (g *Gui) Painter() *Painter {
	return g.painter
}

func (g *Gui) logger() *slog.Logger {
	if g.log != nil {
		return g.log
	}
	return logger()
}

// Close releases every host texture and mesh. An open frame is ended first.
func (g *Gui) Close() {
	if g.open != nil {
		g.open.End()
	}
	g.painter.Close()
}

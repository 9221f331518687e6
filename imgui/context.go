package imgui

import (
	"log/slog"
	"os"
)

// logLevel controls debug logging for the toolkit.
var logLevel = new(slog.LevelVar)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables or disables debug logging.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// Context holds all toolkit state. Widget state that must survive between
// frames (window positions, focus, the widget being dragged) lives here;
// everything else is rebuilt each frame.
type Context struct {
	// Input is the replayed input of the current frame (read-only for widgets).
	Input InputState

	style    Style
	textures *textureManager

	fontLoaded bool
	inFrame    bool
	frameCount uint64

	// Per-frame output
	shapes     []ClippedShape
	copiedText string

	// Layout
	clip      Rect
	clipStack []Rect
	cursor    Pos2
	width     float32
	windows   map[ID]*windowState
	winStack  []*windowState
	idStack   []ID

	// Interaction
	activeID     ID // widget being pressed or dragged
	focusedID    ID // widget with keyboard focus
	wantPointer  bool
	wantKeyboard bool
}

// NewContext creates a toolkit context with the default style.
func NewContext() *Context {
	return &Context{
		style:    DefaultStyle(),
		textures: newTextureManager(),
		windows:  make(map[ID]*windowState),
		Input: InputState{
			PixelsPerPoint: 1,
			ScreenRect:     RectFromMinSize(Pos2{}, Vec2{800, 600}),
		},
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style { return ctx.style }

// SetStyle sets the style used by subsequent widgets.
func (ctx *Context) SetStyle(style Style) { ctx.style = style }

// FrameCount returns the number of frames begun so far.
func (ctx *Context) FrameCount() uint64 { return ctx.frameCount }

// InFrame reports whether a frame is running.
func (ctx *Context) InFrame() bool { return ctx.inFrame }

// PixelsPerPoint returns the scale factor of the current frame.
func (ctx *Context) PixelsPerPoint() float32 { return ctx.Input.PixelsPerPoint }

// ScreenRect returns the usable area in logical points.
func (ctx *Context) ScreenRect() Rect { return ctx.Input.ScreenRect }

// WantsPointer reports whether the last frame had the pointer over a window
// or was dragging a widget. Hosts use it to decide who gets mouse input.
func (ctx *Context) WantsPointer() bool { return ctx.wantPointer }

// WantsKeyboard reports whether a text field has keyboard focus.
func (ctx *Context) WantsKeyboard() bool { return ctx.wantKeyboard }

// LoadTexture allocates a texture. It may be called inside or outside a
// frame; the texture is uploaded with the next frame's output.
func (ctx *Context) LoadTexture(name string, img ImageData) *TextureHandle {
	id := ctx.textures.alloc(name, img)
	logger.Debug("texture allocated", "name", name, "id", id)
	return &TextureHandle{mgr: ctx.textures, id: id}
}

// TextureMeta returns the metadata of a live texture.
func (ctx *Context) TextureMeta(id TextureID) (TextureMeta, bool) {
	m, ok := ctx.textures.metas[id]
	return m, ok
}

// BeginFrame starts a frame with the given input. It panics if a frame is
// already running.
func (ctx *Context) BeginFrame(raw RawInput) {
	if ctx.inFrame {
		panic("imgui: BeginFrame called twice without EndFrame")
	}
	ctx.inFrame = true
	ctx.frameCount++

	if !ctx.fontLoaded {
		ctx.textures.setWhole(FontTextureID, "font", buildFontAtlas())
		ctx.fontLoaded = true
	}

	in := &ctx.Input
	in.beginFrame()
	if raw.ScreenRect != nil {
		in.ScreenRect = *raw.ScreenRect
	}
	if raw.PixelsPerPoint != nil && *raw.PixelsPerPoint > 0 {
		in.PixelsPerPoint = *raw.PixelsPerPoint
	}
	in.Dt = raw.PredictedDt
	if raw.HasTime {
		in.Time = raw.Time
	}
	for _, ev := range raw.Events {
		in.apply(ev)
	}

	ctx.shapes = nil
	ctx.copiedText = ""
	ctx.clip = in.ScreenRect
	ctx.clipStack = ctx.clipStack[:0]
	ctx.winStack = ctx.winStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.cursor = in.ScreenRect.Min.Add(Vec2{ctx.style.WindowPadding, ctx.style.WindowPadding})
	ctx.width = in.ScreenRect.Width() - 2*ctx.style.WindowPadding
	ctx.wantPointer = false
	ctx.wantKeyboard = ctx.focusedID != 0
}

// EndFrame finishes the frame and returns its output. It panics if no
// frame is running.
func (ctx *Context) EndFrame() FullOutput {
	if !ctx.inFrame {
		panic("imgui: EndFrame called without BeginFrame")
	}
	ctx.inFrame = false

	if ctx.activeID != 0 {
		ctx.wantPointer = true
		if !ctx.Input.PointerDown(PointerPrimary) {
			ctx.activeID = 0
		}
	}

	out := FullOutput{
		Shapes:         ctx.shapes,
		TexturesDelta:  ctx.textures.take(),
		PlatformOutput: PlatformOutput{CopiedText: ctx.copiedText},
		PixelsPerPoint: ctx.Input.PixelsPerPoint,
	}
	ctx.shapes = nil
	return out
}

// CopyText puts text on the clipboard at the end of the frame.
func (ctx *Context) CopyText(text string) {
	ctx.copiedText = text
}

// PushClipRect narrows the clip rectangle for subsequent shapes.
func (ctx *Context) PushClipRect(r Rect) {
	ctx.clipStack = append(ctx.clipStack, ctx.clip)
	ctx.clip = ctx.clip.Intersect(r)
}

// PopClipRect restores the previous clip rectangle.
func (ctx *Context) PopClipRect() {
	n := len(ctx.clipStack)
	if n > 0 {
		ctx.clip = ctx.clipStack[n-1]
		ctx.clipStack = ctx.clipStack[:n-1]
	}
}

// AddShape appends a shape clipped to the current clip rectangle.
func (ctx *Context) AddShape(s Shape) {
	ctx.shapes = append(ctx.shapes, ClippedShape{Clip: ctx.clip, Shape: s})
}

// insertShape places a shape at index i, behind everything added after i.
func (ctx *Context) insertShape(i int, s Shape) {
	ctx.shapes = append(ctx.shapes, ClippedShape{})
	copy(ctx.shapes[i+1:], ctx.shapes[i:])
	ctx.shapes[i] = ClippedShape{Clip: ctx.clip, Shape: s}
}

func (ctx *Context) addRect(r Rect, color Color32) {
	ctx.AddShape(RectShape{Rect: r, Color: color})
}

func (ctx *Context) addText(pos Pos2, text string, color Color32) {
	ctx.AddShape(TextShape{Pos: pos, Text: text, Color: color, Scale: ctx.style.FontScale})
}

// MeasureText returns the size of a line of text in logical points.
func (ctx *Context) MeasureText(text string) Vec2 {
	cell := glyphSize * ctx.style.FontScale
	return Vec2{X: float32(len([]rune(text))) * cell, Y: cell}
}

func (ctx *Context) lineHeight() float32 {
	return glyphSize * ctx.style.FontScale
}

// allocate reserves space for an item at the cursor and advances it.
func (ctx *Context) allocate(size Vec2) Rect {
	r := RectFromMinSize(ctx.cursor, size)
	ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
	if w := ctx.currentWindow(); w != nil {
		w.contentMax = Pos2{maxf(w.contentMax.X, r.Max.X), maxf(w.contentMax.Y, r.Max.Y)}
	}
	return r
}

// interact reports hover and click state for a widget rectangle and makes
// it the active widget while the primary button is held on it.
func (ctx *Context) interact(id ID, r Rect) (hovered, clicked bool) {
	in := &ctx.Input
	hovered = in.HasPointer && r.Contains(in.PointerPos) && r.Intersect(ctx.clip).Contains(in.PointerPos)
	if hovered && in.PointerPressed(PointerPrimary) {
		ctx.activeID = id
	}
	if ctx.activeID == id && in.PointerReleased(PointerPrimary) {
		clicked = hovered
		ctx.activeID = 0
	}
	return hovered, clicked
}

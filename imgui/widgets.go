package imgui

import (
	"fmt"
	"unicode/utf8"
)

// windowState persists a window's placement between frames.
type windowState struct {
	id         ID
	pos        Pos2
	width      float32
	contentMax Pos2
	dragAnchor Vec2 // pointer offset from pos when the drag started

	// saved layout of the enclosing scope
	prevCursor Pos2
	prevWidth  float32
}

func (ctx *Context) currentWindow() *windowState {
	if n := len(ctx.winStack); n > 0 {
		return ctx.winStack[n-1]
	}
	return nil
}

// Window draws a movable window with a title bar and runs content inside it.
// The window's background is sized to the content after it has been laid out.
func (ctx *Context) Window(title string, content func()) {
	st := ctx.style
	id := ctx.GetID("window:" + title)

	w, ok := ctx.windows[id]
	if !ok {
		off := float32(len(ctx.windows)) * 24
		w = &windowState{
			id:    id,
			pos:   ctx.Input.ScreenRect.Min.Add(Vec2{40 + off, 40 + off}),
			width: st.DefaultWidth,
		}
		ctx.windows[id] = w
	}

	titleH := ctx.lineHeight() + 2*st.ButtonPadding
	titleRect := RectFromMinSize(w.pos, Vec2{w.width, titleH})

	hovered, _ := ctx.interact(id, titleRect)
	if ctx.activeID == id {
		in := &ctx.Input
		if in.PointerPressed(PointerPrimary) {
			w.dragAnchor = in.PointerPos.Sub(w.pos)
		} else if in.PointerDown(PointerPrimary) {
			w.pos = in.PointerPos.Add(w.dragAnchor.Mul(-1))
			titleRect = RectFromMinSize(w.pos, Vec2{w.width, titleH})
		}
	}

	bgIndex := len(ctx.shapes)
	ctx.addRect(titleRect, st.TitleBarColor)
	ctx.addText(titleRect.Min.Add(Vec2{st.ButtonPadding, st.ButtonPadding}), title, st.TitleTextColor)

	w.prevCursor, w.prevWidth = ctx.cursor, ctx.width
	w.contentMax = titleRect.Max
	ctx.winStack = append(ctx.winStack, w)
	ctx.PushID(title)
	ctx.cursor = Pos2{w.pos.X + st.WindowPadding, titleRect.Max.Y + st.WindowPadding}
	ctx.width = w.width - 2*st.WindowPadding

	content()

	ctx.PopID()
	ctx.winStack = ctx.winStack[:len(ctx.winStack)-1]
	ctx.cursor, ctx.width = w.prevCursor, w.prevWidth

	body := Rect{Min: w.pos, Max: Pos2{w.pos.X + w.width, w.contentMax.Y + st.WindowPadding}}
	ctx.insertShape(bgIndex, RectShape{Rect: body, Color: st.WindowColor})

	if hovered || (ctx.Input.HasPointer && body.Contains(ctx.Input.PointerPos)) {
		ctx.wantPointer = true
	}
}

// Label draws a line of text.
func (ctx *Context) Label(text string) {
	r := ctx.allocate(ctx.MeasureText(text))
	ctx.addText(r.Min, text, ctx.style.TextColor)
}

// Labelf draws formatted text.
func (ctx *Context) Labelf(format string, args ...any) {
	ctx.Label(fmt.Sprintf(format, args...))
}

// Button draws a button and returns true when it is clicked.
func (ctx *Context) Button(label string) bool {
	st := ctx.style
	id := ctx.GetID(label)
	text := ctx.MeasureText(label)
	r := ctx.allocate(Vec2{text.X + 2*st.ButtonPadding, text.Y + 2*st.ButtonPadding})

	hovered, clicked := ctx.interact(id, r)
	color := st.ButtonColor
	switch {
	case ctx.activeID == id:
		color = st.ButtonActiveColor
	case hovered:
		color = st.ButtonHoveredColor
	}
	ctx.addRect(r, color)
	ctx.addText(r.Min.Add(Vec2{st.ButtonPadding, st.ButtonPadding}), label, st.TextColor)
	return clicked
}

// Checkbox draws a checkbox bound to value and returns true when toggled.
func (ctx *Context) Checkbox(label string, value *bool) bool {
	st := ctx.style
	id := ctx.GetID(label)
	lh := ctx.lineHeight()
	text := ctx.MeasureText(label)
	r := ctx.allocate(Vec2{lh + st.ItemSpacing + text.X, lh})
	box := RectFromMinSize(r.Min, Vec2{lh, lh})

	_, clicked := ctx.interact(id, r)
	if clicked {
		*value = !*value
	}
	ctx.addRect(box, st.InputBgColor)
	if *value {
		inset := lh / 4
		ctx.addRect(Rect{Min: box.Min.Add(Vec2{inset, inset}), Max: box.Max.Add(Vec2{-inset, -inset})}, st.CheckColor)
	}
	ctx.addText(Pos2{box.Max.X + st.ItemSpacing, r.Min.Y}, label, st.TextColor)
	return clicked
}

// SliderFloat draws a horizontal slider and returns true when value changed.
func (ctx *Context) SliderFloat(label string, value *float32, min, max float32) bool {
	st := ctx.style
	id := ctx.GetID(label)
	lh := ctx.lineHeight()
	r := ctx.allocate(Vec2{ctx.width, lh + 2*st.ButtonPadding})

	ctx.interact(id, r)
	changed := false
	if ctx.activeID == id && ctx.Input.PointerDown(PointerPrimary) && max > min {
		t := clampf((ctx.Input.PointerPos.X-r.Min.X)/r.Width(), 0, 1)
		v := min + t*(max-min)
		if v != *value {
			*value = v
			changed = true
		}
	}

	t := float32(0)
	if max > min {
		t = clampf((*value-min)/(max-min), 0, 1)
	}
	fill := r.Min.X + t*r.Width()
	ctx.addRect(r, st.SliderTrackColor)
	ctx.addRect(Rect{Min: r.Min, Max: Pos2{fill, r.Max.Y}}, st.SliderFillColor)
	ctx.addRect(Rect{Min: Pos2{fill - 3, r.Min.Y}, Max: Pos2{fill + 3, r.Max.Y}}, st.SliderGrabColor)
	ctx.addText(r.Min.Add(Vec2{st.ButtonPadding, st.ButtonPadding}), fmt.Sprintf("%s: %.2f", label, *value), st.TextColor)
	return changed
}

// TextEdit draws a single-line text field bound to text and returns true
// when its content changed. Clicking focuses it; Enter, Escape or a click
// elsewhere releases focus.
func (ctx *Context) TextEdit(label string, text *string) bool {
	st := ctx.style
	id := ctx.GetID(label)
	lh := ctx.lineHeight()
	r := ctx.allocate(Vec2{ctx.width, lh + 2*st.ButtonPadding})

	hovered, clicked := ctx.interact(id, r)
	in := &ctx.Input
	if clicked {
		ctx.focusedID = id
	} else if ctx.focusedID == id && in.PointerPressed(PointerPrimary) && !hovered {
		ctx.focusedID = 0
	}

	changed := false
	if ctx.focusedID == id {
		ctx.wantKeyboard = true
		if in.CopyRequested || in.CutRequested {
			ctx.copiedText = *text
		}
		if in.CutRequested && *text != "" {
			*text = ""
			changed = true
		}
		if in.KeyPressed(KeyBackspace) && *text != "" {
			_, size := utf8.DecodeLastRuneInString(*text)
			*text = (*text)[:len(*text)-size]
			changed = true
		}
		if add := in.Text + in.Pasted; add != "" {
			*text += add
			changed = true
		}
		if in.KeyPressed(KeyEnter) || in.KeyPressed(KeyEscape) {
			ctx.focusedID = 0
		}
	}

	bg := st.InputBgColor
	if ctx.focusedID == id {
		bg = st.InputFocusedBgColor
	}
	ctx.addRect(r, bg)
	ctx.PushClipRect(r)
	shown := *text
	if shown == "" && ctx.focusedID != id {
		ctx.addText(r.Min.Add(Vec2{st.ButtonPadding, st.ButtonPadding}), label, st.TextDisabledColor)
	} else {
		if ctx.focusedID == id {
			shown += "_"
		}
		ctx.addText(r.Min.Add(Vec2{st.ButtonPadding, st.ButtonPadding}), shown, st.TextColor)
	}
	ctx.PopClipRect()
	return changed
}

// Separator draws a horizontal line across the current layout width.
func (ctx *Context) Separator() {
	r := ctx.allocate(Vec2{ctx.width, 1})
	ctx.addRect(r, ctx.style.SeparatorColor)
}

// Image draws a texture at the given size.
func (ctx *Context) Image(tex TextureID, size Vec2) {
	r := ctx.allocate(size)
	ctx.AddShape(RectShape{
		Rect:      r,
		Color:     ColorWhite,
		Textured:  true,
		TextureID: tex,
		UV:        Rect{Max: Pos2{1, 1}},
	})
}

// Custom reserves an area and asks the renderer to run cb inside it.
func (ctx *Context) Custom(size Vec2, cb *PaintCallback) {
	r := ctx.allocate(size)
	ctx.AddShape(CallbackShape{Rect: r, Callback: cb})
}

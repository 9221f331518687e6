package guihost

import (
	"errors"
	"time"

	"github.com/go-theft-auto/guihost/imgui"
)

// ErrInvalidScaleFactor is returned for scale factors that are not positive.
var ErrInvalidScaleFactor = errors.New("guihost: scale factor must be positive")

// firstFrameDt is reported as the predicted frame time on the first drain.
const firstFrameDt = 1.0 / 60.0

// Input translates host input callbacks into toolkit events and holds them
// until the next frame starts.
//
// Pointer positions are divided by the scale factor on the way in, so the
// toolkit only ever sees logical points.
type Input struct {
	pointerPos  imgui.Pos2
	modifiers   imgui.Modifiers
	scaleFactor float32

	events     []imgui.Event
	screenRect imgui.Rect

	clipboard Clipboard

	now     func() time.Time
	start   time.Time
	last    time.Time
	drained bool
}

// NewInput creates an Input with scale factor 1 and an empty screen.
func NewInput() *Input {
	return &Input{
		scaleFactor: 1,
		now:         time.Now,
	}
}

// ScaleFactor returns the current host-pixels-per-point ratio.
func (in *Input) ScaleFactor() float32 {
	return in.scaleFactor
}

// ScreenRect returns the logical screen rectangle sent with the next frame.
func (in *Input) ScreenRect() imgui.Rect {
	return in.screenRect
}

// PointerPos returns the last pointer position in logical points.
func (in *Input) PointerPos() imgui.Pos2 {
	return in.pointerPos
}

// SetScaleFactor sets the scale factor and recomputes the screen rectangle
// from the backbuffer size, so both always agree.
func (in *Input) SetScaleFactor(factor, width, height float32) error {
	if !(factor > 0) {
		return ErrInvalidScaleFactor
	}
	in.scaleFactor = factor
	in.ResizeEvent(width, height)
	return nil
}

// ResizeEvent updates the screen rectangle from a backbuffer size in pixels.
func (in *Input) ResizeEvent(width, height float32) {
	in.screenRect = imgui.RectFromMinSize(imgui.Pos2{}, imgui.Vec2{X: width, Y: height}.Div(in.scaleFactor))
}

// MouseMotionEvent records the pointer position given in host pixels.
func (in *Input) MouseMotionEvent(x, y float32) {
	in.pointerPos = TranslateToLogical(imgui.Pos2{X: x, Y: y}, in.scaleFactor)
	in.Push(imgui.PointerMoved{Pos: in.pointerPos})
}

// MouseButtonDownEvent records a press at the last pointer position.
func (in *Input) MouseButtonDownEvent(b MouseButton) {
	in.mouseButton(b, true)
}

// MouseButtonUpEvent records a release at the last pointer position.
func (in *Input) MouseButtonUpEvent(b MouseButton) {
	in.mouseButton(b, false)
}

func (in *Input) mouseButton(b MouseButton, pressed bool) {
	button, ok := TranslateMouseButton(b)
	if !ok {
		return
	}
	in.Push(imgui.PointerButtonEvent{
		Pos:       in.pointerPos,
		Button:    button,
		Pressed:   pressed,
		Modifiers: in.modifiers,
	})
}

// MouseWheelEvent records a scroll delta, passed through unscaled.
func (in *Input) MouseWheelEvent(x, y float32) {
	in.Push(imgui.Scroll{Delta: imgui.Vec2{X: x, Y: y}})
}

// KeyDownEvent records a key press. With the command modifier held, C, X
// and V become Copy, Cut and Paste.
func (in *Input) KeyDownEvent(k KeyCode, km KeyMods) {
	mods := TranslateModifiers(km)
	in.modifiers = mods

	if mods.Command {
		switch k {
		case KeyC:
			in.Push(imgui.Copy{})
			return
		case KeyX:
			in.Push(imgui.Cut{})
			return
		case KeyV:
			if in.clipboard != nil {
				if text := in.clipboard.GetText(); text != "" {
					in.Push(imgui.Paste{Text: text})
					return
				}
			}
		}
	}

	if key, ok := TranslateKey(k); ok {
		in.Push(imgui.KeyEvent{Key: key, Pressed: true, Modifiers: mods})
	}
}

// KeyUpEvent records a key release.
func (in *Input) KeyUpEvent(k KeyCode, km KeyMods) {
	mods := TranslateModifiers(km)
	in.modifiers = mods
	if key, ok := TranslateKey(k); ok {
		in.Push(imgui.KeyEvent{Key: key, Pressed: false, Modifiers: mods})
	}
}

// TextInputEvent records a typed character. Control characters and
// private-use code points are dropped.
func (in *Input) TextInputEvent(ch rune) {
	if IsPrintable(ch) {
		in.Push(imgui.Text{Text: string(ch)})
	}
}

// Push appends an already-translated event.
func (in *Input) Push(ev imgui.Event) {
	in.events = append(in.events, ev)
}

// Pending returns the number of events waiting for the next frame.
func (in *Input) Pending() int {
	return len(in.events)
}

// Take drains the pending input into a RawInput for the next frame.
// It stamps the time since the previous drain; a second call within the
// same tick returns no events.
func (in *Input) Take() imgui.RawInput {
	now := in.now()
	dt := float32(firstFrameDt)
	if !in.drained {
		in.start = now
		in.drained = true
	} else {
		dt = float32(now.Sub(in.last).Seconds())
	}
	in.last = now

	rect := in.screenRect
	ppp := in.scaleFactor
	raw := imgui.RawInput{
		Events:         in.events,
		ScreenRect:     &rect,
		PixelsPerPoint: &ppp,
		PredictedDt:    dt,
		Time:           now.Sub(in.start).Seconds(),
		HasTime:        true,
	}
	in.events = nil
	return raw
}

// TranslateToLogical converts a host pixel position to logical points.
func TranslateToLogical(p imgui.Pos2, scale float32) imgui.Pos2 {
	return imgui.Pos2{X: p.X / scale, Y: p.Y / scale}
}

// ScaleToHost converts a logical position to host pixels.
func ScaleToHost(p imgui.Pos2, scale float32) imgui.Pos2 {
	return imgui.Pos2{X: p.X * scale, Y: p.Y * scale}
}

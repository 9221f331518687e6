package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/guihost"
)

// InputAdapter forwards GLFW window callbacks to a guihost.Input.
type InputAdapter struct {
	window *glfw.Window
	input  *guihost.Input
}

// InstallCallbacks routes the window's input callbacks into in.
// It replaces any key, char, mouse button, scroll or cursor callbacks
// already set on the window.
func InstallCallbacks(window *glfw.Window, in *guihost.Input) *InputAdapter {
	adapter := &InputAdapter{
		window: window,
		input:  in,
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

func (a *InputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	code := glfwKeyToKeyCode(key)
	km := glfwMods(mods)

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.KeyDownEvent(code, km)
	case glfw.Release:
		a.input.KeyUpEvent(code, km)
	}
}

func (a *InputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.TextInputEvent(char)
}

func (a *InputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButton(button)

	switch action {
	case glfw.Press:
		a.input.MouseButtonDownEvent(b)
	case glfw.Release:
		a.input.MouseButtonUpEvent(b)
	}
}

func (a *InputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.MouseWheelEvent(float32(xoff), float32(yoff))
}

// cursorPosCallback converts window coordinates to framebuffer pixels,
// which differ on high-DPI displays.
func (a *InputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	ww, wh := w.GetSize()
	fw, fh := w.GetFramebufferSize()
	sx, sy := 1.0, 1.0
	if ww > 0 && wh > 0 {
		sx = float64(fw) / float64(ww)
		sy = float64(fh) / float64(wh)
	}
	a.input.MouseMotionEvent(float32(xpos*sx), float32(ypos*sy))
}

// glfwMods maps GLFW modifier bits.
func glfwMods(mods glfw.ModifierKey) guihost.KeyMods {
	var km guihost.KeyMods
	if mods&glfw.ModShift != 0 {
		km |= guihost.ModShift
	}
	if mods&glfw.ModControl != 0 {
		km |= guihost.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		km |= guihost.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		km |= guihost.ModLogo
	}
	return km
}

// glfwMouseButton maps GLFW buttons. Extra buttons map past MouseMiddle
// and are dropped by the input layer.
func glfwMouseButton(button glfw.MouseButton) guihost.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return guihost.MouseLeft
	case glfw.MouseButtonRight:
		return guihost.MouseRight
	case glfw.MouseButtonMiddle:
		return guihost.MouseMiddle
	default:
		return guihost.MouseMiddle + 1 + guihost.MouseButton(button)
	}
}

var glfwKeys = map[glfw.Key]guihost.KeyCode{
	glfw.Key0: guihost.Key0, glfw.Key1: guihost.Key1, glfw.Key2: guihost.Key2,
	glfw.Key3: guihost.Key3, glfw.Key4: guihost.Key4, glfw.Key5: guihost.Key5,
	glfw.Key6: guihost.Key6, glfw.Key7: guihost.Key7, glfw.Key8: guihost.Key8,
	glfw.Key9: guihost.Key9,

	glfw.KeyA: guihost.KeyA, glfw.KeyB: guihost.KeyB, glfw.KeyC: guihost.KeyC,
	glfw.KeyD: guihost.KeyD, glfw.KeyE: guihost.KeyE, glfw.KeyF: guihost.KeyF,
	glfw.KeyG: guihost.KeyG, glfw.KeyH: guihost.KeyH, glfw.KeyI: guihost.KeyI,
	glfw.KeyJ: guihost.KeyJ, glfw.KeyK: guihost.KeyK, glfw.KeyL: guihost.KeyL,
	glfw.KeyM: guihost.KeyM, glfw.KeyN: guihost.KeyN, glfw.KeyO: guihost.KeyO,
	glfw.KeyP: guihost.KeyP, glfw.KeyQ: guihost.KeyQ, glfw.KeyR: guihost.KeyR,
	glfw.KeyS: guihost.KeyS, glfw.KeyT: guihost.KeyT, glfw.KeyU: guihost.KeyU,
	glfw.KeyV: guihost.KeyV, glfw.KeyW: guihost.KeyW, glfw.KeyX: guihost.KeyX,
	glfw.KeyY: guihost.KeyY, glfw.KeyZ: guihost.KeyZ,

	glfw.KeyEscape:    guihost.KeyEscape,
	glfw.KeyInsert:    guihost.KeyInsert,
	glfw.KeyHome:      guihost.KeyHome,
	glfw.KeyDelete:    guihost.KeyDelete,
	glfw.KeyEnd:       guihost.KeyEnd,
	glfw.KeyPageDown:  guihost.KeyPageDown,
	glfw.KeyPageUp:    guihost.KeyPageUp,
	glfw.KeyLeft:      guihost.KeyLeft,
	glfw.KeyUp:        guihost.KeyUp,
	glfw.KeyRight:     guihost.KeyRight,
	glfw.KeyDown:      guihost.KeyDown,
	glfw.KeyBackspace: guihost.KeyBack,
	glfw.KeyEnter:     guihost.KeyReturn,
	glfw.KeyKPEnter:   guihost.KeyReturn,
	glfw.KeyTab:       guihost.KeyTab,
	glfw.KeySpace:     guihost.KeySpace,

	glfw.KeyLeftShift:    guihost.KeyLShift,
	glfw.KeyRightShift:   guihost.KeyRShift,
	glfw.KeyLeftControl:  guihost.KeyLControl,
	glfw.KeyRightControl: guihost.KeyRControl,
	glfw.KeyLeftAlt:      guihost.KeyLAlt,
	glfw.KeyRightAlt:     guihost.KeyRAlt,
	glfw.KeyLeftSuper:    guihost.KeyLWin,
	glfw.KeyRightSuper:   guihost.KeyRWin,

	glfw.KeyF1: guihost.KeyF1, glfw.KeyF2: guihost.KeyF2, glfw.KeyF3: guihost.KeyF3,
	glfw.KeyF4: guihost.KeyF4, glfw.KeyF5: guihost.KeyF5, glfw.KeyF6: guihost.KeyF6,
	glfw.KeyF7: guihost.KeyF7, glfw.KeyF8: guihost.KeyF8, glfw.KeyF9: guihost.KeyF9,
	glfw.KeyF10: guihost.KeyF10, glfw.KeyF11: guihost.KeyF11, glfw.KeyF12: guihost.KeyF12,
}

// glfwKeyToKeyCode maps GLFW keys to host key codes.
func glfwKeyToKeyCode(key glfw.Key) guihost.KeyCode {
	if code, ok := glfwKeys[key]; ok {
		return code
	}
	return guihost.KeyUnknown
}

// Clipboard is the GLFW window clipboard.
type Clipboard struct {
	window *glfw.Window
}

// NewClipboard returns the clipboard of window.
func NewClipboard(window *glfw.Window) *Clipboard {
	return &Clipboard{window: window}
}

// GetText returns the clipboard text.
func (c *Clipboard) GetText() string {
	return c.window.GetClipboardString()
}

// SetText replaces the clipboard text.
func (c *Clipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}

// WindowHost reports the framebuffer size of a GLFW window.
type WindowHost struct {
	Window *glfw.Window
}

// Size returns the framebuffer size in pixels.
func (h WindowHost) Size() (float32, float32) {
	w, ht := h.Window.GetFramebufferSize()
	return float32(w), float32(ht)
}

// ScaleFactor returns the window's content scale, the pixels-per-point
// ratio the OS expects.
func ScaleFactor(window *glfw.Window) float32 {
	x, _ := window.GetContentScale()
	if x <= 0 {
		return 1
	}
	return x
}

package imgui

// Key identifies a keyboard key in the toolkit's vocabulary.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyInsert
	KeyHome
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyPageUp
	KeyArrowLeft
	KeyArrowUp
	KeyArrowRight
	KeyArrowDown
	KeyBackspace
	KeyEnter
	KeyTab
	KeySpace
	KeyA
	KeyC
	KeyK
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

var keyNames = map[Key]string{
	KeyNone:       "--",
	KeyEscape:     "Esc",
	KeyInsert:     "Ins",
	KeyHome:       "Home",
	KeyDelete:     "Del",
	KeyEnd:        "End",
	KeyPageDown:   "PgDn",
	KeyPageUp:     "PgUp",
	KeyArrowLeft:  "Left",
	KeyArrowUp:    "Up",
	KeyArrowRight: "Right",
	KeyArrowDown:  "Down",
	KeyBackspace:  "Backspace",
	KeyEnter:      "Enter",
	KeyTab:        "Tab",
	KeySpace:      "Space",
	KeyA:          "A",
	KeyC:          "C",
	KeyK:          "K",
	KeyU:          "U",
	KeyV:          "V",
	KeyW:          "W",
	KeyX:          "X",
	KeyY:          "Y",
	KeyZ:          "Z",
	KeyF1:         "F1",
	KeyF2:         "F2",
	KeyF3:         "F3",
	KeyF4:         "F4",
	KeyF5:         "F5",
	KeyF6:         "F6",
	KeyF7:         "F7",
	KeyF8:         "F8",
	KeyF9:         "F9",
	KeyF10:        "F10",
	KeyF11:        "F11",
	KeyF12:        "F12",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}

// Modifiers is the set of modifier keys held during an event.
type Modifiers struct {
	Alt   bool
	Ctrl  bool
	Shift bool
	// MacCmd is the Command key on macOS and always false elsewhere.
	MacCmd bool
	// Command is the platform's shortcut modifier: Cmd on macOS, Ctrl elsewhere.
	Command bool
}

// Any reports whether any modifier is held.
func (m Modifiers) Any() bool {
	return m.Alt || m.Ctrl || m.Shift || m.MacCmd || m.Command
}

// PointerButton identifies a mouse button.
type PointerButton int

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
	PointerMiddle
	PointerButtonCount
)

// Event is one input event. It is one of PointerMoved, PointerButtonEvent,
// Scroll, KeyEvent, Text, Copy, Cut or Paste.
type Event interface {
	isEvent()
}

// PointerMoved reports the pointer position in logical points.
type PointerMoved struct {
	Pos Pos2
}

// PointerButtonEvent reports a button transition at a position.
type PointerButtonEvent struct {
	Pos       Pos2
	Button    PointerButton
	Pressed   bool
	Modifiers Modifiers
}

// Scroll reports a scroll delta in logical points.
type Scroll struct {
	Delta Vec2
}

// KeyEvent reports a key transition.
type KeyEvent struct {
	Key       Key
	Pressed   bool
	Modifiers Modifiers
}

// Text carries typed text. It never contains control characters.
type Text struct {
	Text string
}

// Copy requests the current selection be copied.
type Copy struct{}

// Cut requests the current selection be cut.
type Cut struct{}

// Paste carries text pasted from the clipboard.
type Paste struct {
	Text string
}

func (PointerMoved) isEvent()       {}
func (PointerButtonEvent) isEvent() {}
func (Scroll) isEvent()             {}
func (KeyEvent) isEvent()           {}
func (Text) isEvent()               {}
func (Copy) isEvent()               {}
func (Cut) isEvent()                {}
func (Paste) isEvent()              {}

// RawInput is everything the toolkit needs to know about the host for one frame.
type RawInput struct {
	// Events in the order they happened.
	Events []Event

	// ScreenRect is the usable area in logical points. Nil keeps the previous value.
	ScreenRect *Rect

	// PixelsPerPoint is the scale factor. Nil keeps the previous value.
	PixelsPerPoint *float32

	// PredictedDt is the expected duration of this frame in seconds.
	PredictedDt float32

	// Time is seconds since the first frame, valid when HasTime is set.
	Time    float64
	HasTime bool
}

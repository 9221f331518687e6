package imgui

// InputState is the toolkit's view of input for the current frame.
// It is rebuilt from RawInput events at the start of every frame.
type InputState struct {
	// Pointer position in logical points; valid when HasPointer is set.
	PointerPos Pos2
	HasPointer bool

	// Mouse buttons
	pointerDown     [PointerButtonCount]bool
	pointerPressed  [PointerButtonCount]bool // True on the frame button was pressed
	pointerReleased [PointerButtonCount]bool // True on the frame button was released

	// ScrollDelta is the sum of all scroll events this frame.
	ScrollDelta Vec2

	// Keyboard
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool

	// Text typed this frame, in order.
	Text string

	// Clipboard commands this frame.
	CopyRequested bool
	CutRequested  bool
	Pasted        string

	Modifiers Modifiers

	ScreenRect     Rect
	PixelsPerPoint float32
	Dt             float32
	Time           float64
}

// beginFrame clears per-frame state. Held buttons and keys persist.
func (s *InputState) beginFrame() {
	for i := range s.pointerPressed {
		s.pointerPressed[i] = false
		s.pointerReleased[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	s.ScrollDelta = Vec2{}
	s.Text = ""
	s.CopyRequested = false
	s.CutRequested = false
	s.Pasted = ""
}

// apply replays one event. Order matters: a press followed by a move
// starts a drag at the press position.
func (s *InputState) apply(ev Event) {
	switch e := ev.(type) {
	case PointerMoved:
		s.PointerPos = e.Pos
		s.HasPointer = true
	case PointerButtonEvent:
		s.PointerPos = e.Pos
		s.HasPointer = true
		s.Modifiers = e.Modifiers
		if e.Button < 0 || e.Button >= PointerButtonCount {
			return
		}
		wasDown := s.pointerDown[e.Button]
		s.pointerDown[e.Button] = e.Pressed
		if e.Pressed && !wasDown {
			s.pointerPressed[e.Button] = true
		}
		if !e.Pressed && wasDown {
			s.pointerReleased[e.Button] = true
		}
	case Scroll:
		s.ScrollDelta = s.ScrollDelta.Add(e.Delta)
	case KeyEvent:
		s.Modifiers = e.Modifiers
		if e.Key <= KeyNone || e.Key >= KeyCount {
			return
		}
		if e.Pressed {
			s.keyPressed[e.Key] = true
		}
		s.keyDown[e.Key] = e.Pressed
	case Text:
		s.Text += e.Text
	case Copy:
		s.CopyRequested = true
	case Cut:
		s.CutRequested = true
	case Paste:
		s.Pasted += e.Text
	}
}

// PointerDown returns true if a button is currently held.
func (s *InputState) PointerDown(b PointerButton) bool {
	if b < 0 || b >= PointerButtonCount {
		return false
	}
	return s.pointerDown[b]
}

// PointerPressed returns true if a button went down this frame.
func (s *InputState) PointerPressed(b PointerButton) bool {
	if b < 0 || b >= PointerButtonCount {
		return false
	}
	return s.pointerPressed[b]
}

// PointerReleased returns true if a button went up this frame.
func (s *InputState) PointerReleased(b PointerButton) bool {
	if b < 0 || b >= PointerButtonCount {
		return false
	}
	return s.pointerReleased[b]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(k Key) bool {
	if k < 0 || k >= KeyCount {
		return false
	}
	return s.keyDown[k]
}

// KeyPressed returns true if a key was pressed (or repeated) this frame.
func (s *InputState) KeyPressed(k Key) bool {
	if k < 0 || k >= KeyCount {
		return false
	}
	return s.keyPressed[k]
}

package guihost

// Clipboard abstracts the host clipboard.
//
// For GLFW:
//
//	type GLFWClipboard struct {
//	    window *glfw.Window
//	}
//
//	func (c *GLFWClipboard) GetText() string {
//	    return c.window.GetClipboardString()
//	}
//
//	func (c *GLFWClipboard) SetText(text string) {
//	    c.window.SetClipboardString(text)
//	}
//
// backend/opengl ships this as opengl.Clipboard.
type Clipboard interface {
	// GetText returns the clipboard text, or "" if it holds none.
	GetText() string

	// SetText replaces the clipboard content.
	SetText(text string)
}

// MemoryClipboard is an in-process clipboard, used when the host has none.
type MemoryClipboard struct {
	text string
}

// GetText returns the stored text.
func (c *MemoryClipboard) GetText() string { return c.text }

// SetText stores text.
func (c *MemoryClipboard) SetText(text string) { c.text = text }

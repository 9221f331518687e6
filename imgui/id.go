package imgui

import "hash/fnv"

// ID uniquely identifies a widget for state that outlives a frame.
// IDs are stable across frames for the same widget.
type ID uint64

// GetID generates a stable ID from a label, scoped by the ID stack.
// The same label under the same parent always yields the same ID.
func (ctx *Context) GetID(label string) ID {
	h := fnv.New64a()
	var parent [8]byte
	p := uint64(ctx.CurrentID())
	for i := range parent {
		parent[i] = byte(p >> (8 * i))
	}
	h.Write(parent[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// PushID pushes an ID onto the stack for nested widgets.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PopID removes the last ID from the stack.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the current parent ID (top of stack).
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}

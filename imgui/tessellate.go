package imgui

// Tessellate converts shapes into meshes. Consecutive shapes that share a
// clip rectangle and texture are merged into one mesh; a change of either
// starts a new one, so the output keeps the input's paint order.
func (ctx *Context) Tessellate(shapes []ClippedShape) []ClippedPrimitive {
	return Tessellate(shapes)
}

// Tessellate is the package-level form of Context.Tessellate.
func Tessellate(shapes []ClippedShape) []ClippedPrimitive {
	var (
		out  []ClippedPrimitive
		cur  *Mesh
		clip Rect
	)

	flush := func() {
		if cur != nil && !cur.IsEmpty() {
			out = append(out, ClippedPrimitive{Clip: clip, Primitive: cur})
		}
		cur = nil
	}

	meshFor := func(c Rect, tex TextureID) *Mesh {
		if cur == nil || c != clip || cur.TextureID != tex {
			flush()
			clip = c
			cur = &Mesh{TextureID: tex}
		}
		return cur
	}

	for _, cs := range shapes {
		if cs.Clip.Empty() {
			continue
		}
		switch s := cs.Shape.(type) {
		case RectShape:
			if s.Color.Transparent() || s.Rect.Empty() {
				continue
			}
			if s.Textured {
				meshFor(cs.Clip, s.TextureID).addQuad(s.Rect, s.UV, s.Color)
			} else {
				meshFor(cs.Clip, FontTextureID).addQuad(s.Rect, Rect{Min: whiteUV, Max: whiteUV}, s.Color)
			}
		case TextShape:
			if s.Color.Transparent() || s.Text == "" {
				continue
			}
			m := meshFor(cs.Clip, FontTextureID)
			cell := glyphSize * s.Scale
			x := s.Pos.X
			for _, r := range s.Text {
				m.addQuad(RectFromMinSize(Pos2{x, s.Pos.Y}, Vec2{cell, cell}), glyphUV(r), s.Color)
				x += cell
			}
		case MeshShape:
			if s.Mesh.IsEmpty() {
				continue
			}
			meshFor(cs.Clip, s.Mesh.TextureID).appendMesh(&s.Mesh)
		case CallbackShape:
			flush()
			out = append(out, ClippedPrimitive{Clip: cs.Clip, Primitive: s.Callback, Rect: s.Rect})
		}
	}
	flush()

	return out
}

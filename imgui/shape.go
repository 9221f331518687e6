package imgui

// Shape is a paintable element. It is one of RectShape, TextShape,
// MeshShape or CallbackShape.
type Shape interface {
	isShape()
}

// RectShape is a filled rectangle, optionally textured.
type RectShape struct {
	Rect  Rect
	Color Color32
	// Texture and UV are used when Textured is set; otherwise the rect is solid.
	Textured  bool
	TextureID TextureID
	UV        Rect
}

// TextShape is a single line of text in the built-in font.
type TextShape struct {
	Pos   Pos2
	Text  string
	Color Color32
	Scale float32
}

// MeshShape is a pre-built triangle mesh.
type MeshShape struct {
	Mesh Mesh
}

// CallbackShape asks the renderer to run custom drawing inside Rect.
type CallbackShape struct {
	Rect     Rect
	Callback *PaintCallback
}

func (RectShape) isShape()     {}
func (TextShape) isShape()     {}
func (MeshShape) isShape()     {}
func (CallbackShape) isShape() {}

// ClippedShape is a shape restricted to a clip rectangle.
type ClippedShape struct {
	Clip  Rect
	Shape Shape
}

// Vertex is one mesh vertex in logical points.
type Vertex struct {
	Pos   Pos2
	UV    Pos2
	Color Color32
}

// Mesh is an indexed triangle list drawn with one texture.
type Mesh struct {
	Vertices  []Vertex
	Indices   []uint32
	TextureID TextureID
}

// IsEmpty reports whether the mesh has nothing to draw.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0 || len(m.Vertices) == 0
}

// addQuad appends a quad given its corners and uv rectangle.
func (m *Mesh) addQuad(r Rect, uv Rect, color Color32) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices,
		Vertex{Pos: r.Min, UV: uv.Min, Color: color},
		Vertex{Pos: Pos2{r.Max.X, r.Min.Y}, UV: Pos2{uv.Max.X, uv.Min.Y}, Color: color},
		Vertex{Pos: r.Max, UV: uv.Max, Color: color},
		Vertex{Pos: Pos2{r.Min.X, r.Max.Y}, UV: Pos2{uv.Min.X, uv.Max.Y}, Color: color},
	)
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
}

// appendMesh appends other, rebasing its indices.
func (m *Mesh) appendMesh(other *Mesh) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, i := range other.Indices {
		m.Indices = append(m.Indices, base+i)
	}
}

// PaintCallback is custom, backend-specific drawing.
type PaintCallback struct {
	Name string
	Fn   func(info PaintCallbackInfo)
}

// PaintCallbackInfo is passed to a PaintCallback.
type PaintCallbackInfo struct {
	Viewport       Rect
	Clip           Rect
	PixelsPerPoint float32
}

// Primitive is either *Mesh or *PaintCallback.
type Primitive interface {
	isPrimitive()
}

func (*Mesh) isPrimitive()          {}
func (*PaintCallback) isPrimitive() {}

// ClippedPrimitive is one drawable unit. Lists of them are in paint order,
// back to front.
type ClippedPrimitive struct {
	Clip      Rect
	Primitive Primitive
	// Rect is the area covered by a callback primitive.
	Rect Rect
}

// PlatformOutput is what the toolkit asks the host to do.
type PlatformOutput struct {
	// CopiedText is set when the user copied or cut text this frame.
	CopiedText string
}

// FullOutput is everything produced by one frame.
type FullOutput struct {
	Shapes         []ClippedShape
	TexturesDelta  TexturesDelta
	PlatformOutput PlatformOutput
	PixelsPerPoint float32
}

package guihost

import "github.com/go-theft-auto/guihost/imgui"

// Vertex is the host-native vertex format: position in logical points,
// texture coordinates, and linear-space RGBA color.
type Vertex struct {
	Pos   [2]float32
	UV    [2]float32
	Color [4]float32
}

// Graphics creates host GPU resources. Implementations are called on the
// render thread only.
type Graphics interface {
	// NewImage uploads a width*height RGBA8 (premultiplied sRGBA) texture.
	NewImage(width, height int, rgba []byte) (Image, error)

	// NewMesh builds an indexed triangle mesh bound to tex.
	NewMesh(vertices []Vertex, indices []uint32, tex Image) (Mesh, error)
}

// Image is a host texture. Release is called exactly once.
type Image interface {
	Size() (width, height int)
	Release()
}

// PartialUpdater is implemented by images that can update a sub-region in
// place. Images without it are re-uploaded whole.
type PartialUpdater interface {
	UpdateRegion(x, y, width, height int, rgba []byte) error
}

// Mesh is a host drawable. Release is called exactly once.
type Mesh interface {
	Release()
}

// DrawParam tells the canvas how to place a mesh.
type DrawParam struct {
	// Scale multiplies vertex positions to get host pixels.
	Scale float32
	// Clip is the clip rectangle in host pixels.
	Clip imgui.Rect
}

// Canvas is the current frame's output surface.
type Canvas interface {
	DrawMesh(m Mesh, p DrawParam) error
}

// Host is polled once per tick for the window's backbuffer size in pixels.
type Host interface {
	Size() (width, height float32)
}

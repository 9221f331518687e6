// Package software is a CPU backend for the guihost package. It rasterizes
// meshes into an in-memory image with gogpu/gg, for screenshots and tests
// on machines without a GPU.
package software

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/go-theft-auto/guihost"
	"github.com/go-theft-auto/guihost/imgui"
)

// Canvas is a software framebuffer. It implements guihost.Graphics,
// guihost.Canvas and guihost.Host.
type Canvas struct {
	dc            *gg.Context
	width, height int
}

var (
	_ guihost.Graphics = (*Canvas)(nil)
	_ guihost.Canvas   = (*Canvas)(nil)
	_ guihost.Host     = (*Canvas)(nil)
)

// NewCanvas creates a transparent width x height pixel canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
	}
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (float32, float32) {
	return float32(c.width), float32(c.height)
}

// Clear fills the canvas with an opaque or translucent color.
func (c *Canvas) Clear(col imgui.Color32) {
	c.dc.ClearWithColor(unpremultiply(rgbaFromColor32(col)))
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the rendered pixels to path.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// Close releases the canvas.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

// Texture is a CPU copy of an RGBA8 image with premultiplied alpha.
type Texture struct {
	width, height int
	pixels        []byte
	released      bool
}

// Size returns the texture size in texels.
func (t *Texture) Size() (int, int) { return t.width, t.height }

// Release drops the pixel data.
func (t *Texture) Release() {
	t.pixels = nil
	t.released = true
}

// UpdateRegion overwrites a sub-rectangle in place.
func (t *Texture) UpdateRegion(x, y, width, height int, rgba []byte) error {
	if t.released {
		return errors.New("update of released texture")
	}
	if x < 0 || y < 0 || x+width > t.width || y+height > t.height {
		return fmt.Errorf("region %dx%d at (%d,%d) outside %dx%d", width, height, x, y, t.width, t.height)
	}
	for row := 0; row < height; row++ {
		dst := ((y+row)*t.width + x) * 4
		copy(t.pixels[dst:dst+width*4], rgba[row*width*4:(row+1)*width*4])
	}
	return nil
}

// sample returns the texel nearest to uv as premultiplied floats.
func (t *Texture) sample(u, v float64) gg.RGBA {
	if len(t.pixels) == 0 {
		return gg.RGBA{}
	}
	x := clampInt(int(u*float64(t.width)), 0, t.width-1)
	y := clampInt(int(v*float64(t.height)), 0, t.height-1)
	i := (y*t.width + x) * 4
	return gg.RGBA{
		R: float64(t.pixels[i]) / 255,
		G: float64(t.pixels[i+1]) / 255,
		B: float64(t.pixels[i+2]) / 255,
		A: float64(t.pixels[i+3]) / 255,
	}
}

// NewImage copies rgba into a new texture.
func (c *Canvas) NewImage(width, height int, rgba []byte) (guihost.Image, error) {
	if len(rgba) != width*height*4 {
		return nil, fmt.Errorf("texture %dx%d needs %d bytes, got %d", width, height, width*height*4, len(rgba))
	}
	return &Texture{width: width, height: height, pixels: append([]byte(nil), rgba...)}, nil
}

// Mesh holds triangles for one draw.
type Mesh struct {
	vertices []guihost.Vertex
	indices  []uint32
	tex      *Texture
}

// Release drops the geometry.
func (m *Mesh) Release() {
	m.vertices = nil
	m.indices = nil
}

// NewMesh copies the geometry.
func (c *Canvas) NewMesh(vertices []guihost.Vertex, indices []uint32, tex guihost.Image) (guihost.Mesh, error) {
	t, ok := tex.(*Texture)
	if !ok {
		return nil, fmt.Errorf("texture %T was not created by this canvas", tex)
	}
	for _, i := range indices {
		if int(i) >= len(vertices) {
			return nil, fmt.Errorf("index %d out of range for %d vertices", i, len(vertices))
		}
	}
	return &Mesh{
		vertices: append([]guihost.Vertex(nil), vertices...),
		indices:  append([]uint32(nil), indices...),
		tex:      t,
	}, nil
}

// DrawMesh fills each triangle with a pattern that interpolates texture
// coordinates and vertex colors.
func (c *Canvas) DrawMesh(mesh guihost.Mesh, p guihost.DrawParam) error {
	m, ok := mesh.(*Mesh)
	if !ok {
		return fmt.Errorf("mesh %T was not created by this canvas", mesh)
	}
	clip := p.Clip.Intersect(imgui.Rect{Max: imgui.Pos2{X: float32(c.width), Y: float32(c.height)}})
	if clip.Empty() {
		return nil
	}
	scale := float64(p.Scale)
	if scale <= 0 {
		scale = 1
	}

	c.dc.Push()
	defer c.dc.Pop()
	c.dc.ClipRect(float64(clip.Min.X), float64(clip.Min.Y), float64(clip.Width()), float64(clip.Height()))

	for i := 0; i+2 < len(m.indices); i += 3 {
		tri := newTrianglePattern(m.tex, scale,
			m.vertices[m.indices[i]], m.vertices[m.indices[i+1]], m.vertices[m.indices[i+2]])
		if tri == nil {
			continue
		}
		c.dc.SetFillPattern(tri)
		c.dc.MoveTo(tri.p[0][0], tri.p[0][1])
		c.dc.LineTo(tri.p[1][0], tri.p[1][1])
		c.dc.LineTo(tri.p[2][0], tri.p[2][1])
		c.dc.ClosePath()
		if err := c.dc.Fill(); err != nil {
			return fmt.Errorf("fill triangle %d: %w", i/3, err)
		}
	}
	return nil
}

// trianglePattern shades one triangle in device pixels.
type trianglePattern struct {
	tex   *Texture
	p     [3][2]float64
	uv    [3][2]float64
	color [3]gg.RGBA
	inv   float64
}

func newTrianglePattern(tex *Texture, scale float64, a, b, c guihost.Vertex) *trianglePattern {
	t := &trianglePattern{tex: tex}
	for i, v := range [3]guihost.Vertex{a, b, c} {
		t.p[i] = [2]float64{float64(v.Pos[0]) * scale, float64(v.Pos[1]) * scale}
		t.uv[i] = [2]float64{float64(v.UV[0]), float64(v.UV[1])}
		t.color[i] = gammaColor(v.Color)
	}
	area := (t.p[1][0]-t.p[0][0])*(t.p[2][1]-t.p[0][1]) - (t.p[2][0]-t.p[0][0])*(t.p[1][1]-t.p[0][1])
	if area > -1e-9 && area < 1e-9 {
		return nil
	}
	t.inv = 1 / area
	return t
}

// ColorAt implements gg.Pattern.
func (t *trianglePattern) ColorAt(x, y float64) gg.RGBA {
	p := t.p
	w0 := ((p[1][0]-x)*(p[2][1]-y) - (p[2][0]-x)*(p[1][1]-y)) * t.inv
	w1 := ((p[2][0]-x)*(p[0][1]-y) - (p[0][0]-x)*(p[2][1]-y)) * t.inv
	w0 = clamp01(w0)
	w1 = clamp01(w1)
	if w0+w1 > 1 {
		s := w0 + w1
		w0, w1 = w0/s, w1/s
	}
	w2 := 1 - w0 - w1

	u := w0*t.uv[0][0] + w1*t.uv[1][0] + w2*t.uv[2][0]
	v := w0*t.uv[0][1] + w1*t.uv[1][1] + w2*t.uv[2][1]
	texel := t.tex.sample(u, v)

	c0, c1, c2 := t.color[0], t.color[1], t.color[2]
	out := gg.RGBA{
		R: texel.R * (w0*c0.R + w1*c1.R + w2*c2.R),
		G: texel.G * (w0*c0.G + w1*c1.G + w2*c2.G),
		B: texel.B * (w0*c0.B + w1*c1.B + w2*c2.B),
		A: texel.A * (w0*c0.A + w1*c1.A + w2*c2.A),
	}
	return unpremultiply(out)
}

// gammaColor re-encodes a linear premultiplied vertex color to sRGB, the
// space textures are stored in.
func gammaColor(c [4]float32) gg.RGBA {
	return gg.RGBA{
		R: float64(imgui.GammaFromLinear(c[0])) / 255,
		G: float64(imgui.GammaFromLinear(c[1])) / 255,
		B: float64(imgui.GammaFromLinear(c[2])) / 255,
		A: float64(c[3]),
	}
}

func rgbaFromColor32(c imgui.Color32) gg.RGBA {
	return gg.RGBA{
		R: float64(c[0]) / 255,
		G: float64(c[1]) / 255,
		B: float64(c[2]) / 255,
		A: float64(c[3]) / 255,
	}
}

// unpremultiply converts premultiplied color to the straight alpha gg expects.
func unpremultiply(c gg.RGBA) gg.RGBA {
	if c.A <= 0 {
		return gg.RGBA{}
	}
	return gg.RGBA{R: clamp01(c.R / c.A), G: clamp01(c.G / c.A), B: clamp01(c.B / c.A), A: clamp01(c.A)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

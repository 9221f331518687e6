// Package imgui is a small immediate-mode GUI toolkit.
//
// Each frame it is fed a RawInput snapshot, application code calls widget
// methods on the Context, and EndFrame returns the shapes and texture
// changes produced by that frame. Tessellate turns the shapes into textured
// triangle meshes for a renderer to draw.
package imgui

import "math"

// Pos2 is a position in logical points.
type Pos2 struct {
	X, Y float32
}

// Add returns the position moved by v.
func (p Pos2) Add(v Vec2) Pos2 {
	return Pos2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from other to p.
func (p Pos2) Sub(other Pos2) Vec2 {
	return Vec2{X: p.X - other.X, Y: p.Y - other.Y}
}

// Vec2 is a 2D vector for sizes and offsets.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vec2) Div(s float32) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Rect is an axis-aligned rectangle given by its min and max corners.
type Rect struct {
	Min, Max Pos2
}

// RectFromMinSize builds a rectangle from its top-left corner and size.
func RectFromMinSize(min Pos2, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

// Everything is a rectangle large enough to never clip anything.
var Everything = Rect{Min: Pos2{-1e9, -1e9}, Max: Pos2{1e9, 1e9}}

// Width returns the horizontal extent.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Size returns the rectangle's size.
func (r Rect) Size() Vec2 { return r.Max.Sub(r.Min) }

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Pos2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Intersect returns the overlap of two rectangles. The result may be empty.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		Min: Pos2{maxf(r.Min.X, other.Min.X), maxf(r.Min.Y, other.Min.Y)},
		Max: Pos2{minf(r.Max.X, other.Max.X), minf(r.Max.Y, other.Max.Y)},
	}
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Color32 is an sRGBA color with premultiplied alpha, one byte per channel.
type Color32 [4]uint8

// Color constants.
var (
	ColorWhite       = Color32{255, 255, 255, 255}
	ColorBlack       = Color32{0, 0, 0, 255}
	ColorGray        = Color32{128, 128, 128, 255}
	ColorDarkGray    = Color32{64, 64, 64, 255}
	ColorLightGray   = Color32{192, 192, 192, 255}
	ColorYellow      = Color32{255, 255, 0, 255}
	ColorCyan        = Color32{0, 255, 255, 255}
	ColorTransparent = Color32{}
)

// RGBA creates an opaque-or-translucent color from unmultiplied components.
func RGBA(r, g, b, a uint8) Color32 {
	if a == 255 {
		return Color32{r, g, b, a}
	}
	mul := func(c uint8) uint8 { return uint8((uint16(c)*uint16(a) + 127) / 255) }
	return Color32{mul(r), mul(g), mul(b), a}
}

// Premultiplied creates a color from already premultiplied components.
func Premultiplied(r, g, b, a uint8) Color32 {
	return Color32{r, g, b, a}
}

// A returns the alpha channel.
func (c Color32) A() uint8 { return c[3] }

// Transparent reports whether the color paints nothing.
func (c Color32) Transparent() bool { return c == ColorTransparent }

// Linear converts the color to linear-space RGBA floats in [0, 1].
// RGB are decoded from sRGB gamma; alpha is already linear.
func (c Color32) Linear() [4]float32 {
	return [4]float32{
		linearFromGamma(c[0]),
		linearFromGamma(c[1]),
		linearFromGamma(c[2]),
		float32(c[3]) / 255,
	}
}

// linearFromGamma decodes one sRGB byte into linear space.
func linearFromGamma(s uint8) float32 {
	if s <= 10 {
		return float32(s) / 3294.6
	}
	return float32(math.Pow((float64(s)+14.025)/269.025, 2.4))
}

// GammaFromLinear encodes a linear value in [0, 1] back into an sRGB byte.
func GammaFromLinear(l float32) uint8 {
	switch {
	case l <= 0:
		return 0
	case l >= 1:
		return 255
	case l < 0.0031308:
		return uint8(3294.6*l + 0.5)
	default:
		return uint8(269.025*math.Pow(float64(l), 1/2.4) - 14.025 + 0.5)
	}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func powf(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

package guihost

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-theft-auto/guihost/imgui"
)

// ErrTextureSizeMismatch means an image's pixel count disagrees with its
// declared size. It is a toolkit contract violation and is raised as a panic.
var ErrTextureSizeMismatch = errors.New("guihost: mismatch between texture size and texel count")

// DecodeImage converts toolkit image data to RGBA8 bytes. Color images are
// copied as-is; font coverage is expanded to premultiplied white using gamma.
func DecodeImage(img imgui.ImageData, gamma float32) (rgba []byte, width, height int) {
	width, height = img.Size()
	if n := img.PixelCount(); width*height != n {
		panic(fmt.Errorf("%w: %dx%d image with %d texels", ErrTextureSizeMismatch, width, height, n))
	}

	var px []imgui.Color32
	switch im := img.(type) {
	case imgui.ColorImage:
		px = im.Pixels
	case imgui.FontImage:
		px = im.SRGBAPixels(gamma)
	default:
		panic(fmt.Sprintf("guihost: unsupported image data %T", img))
	}

	rgba = make([]byte, 0, len(px)*4)
	for _, p := range px {
		rgba = append(rgba, p[:]...)
	}
	return rgba, width, height
}

// textureEntry is one cached host texture. pixels mirrors its content so
// partial updates can be applied on backends that only upload whole images.
type textureEntry struct {
	image         Image
	width, height int
	pixels        []byte
}

// TextureCache maps toolkit texture ids to host textures.
type TextureCache struct {
	entries map[imgui.TextureID]*textureEntry
	gamma   float32
	log     *slog.Logger
}

// NewTextureCache creates an empty cache. gamma is used to expand font
// coverage images.
func NewTextureCache(gamma float32) *TextureCache {
	return &TextureCache{
		entries: make(map[imgui.TextureID]*textureEntry),
		gamma:   gamma,
	}
}

// Apply applies one delta batch: every set in order, then every free.
// Freeing an id that is not cached is a no-op.
func (c *TextureCache) Apply(gfx Graphics, delta imgui.TexturesDelta) error {
	return c.apply(gfx, &delta)
}

// apply consumes delta as it goes. On error, delta holds the failed set and
// everything after it, so applying it again resumes the batch.
func (c *TextureCache) apply(gfx Graphics, delta *imgui.TexturesDelta) error {
	for len(delta.Set) > 0 {
		set := delta.Set[0]
		if err := c.set(gfx, set.ID, set.Delta); err != nil {
			return fmt.Errorf("texture %d: %w", set.ID, err)
		}
		delta.Set = delta.Set[1:]
	}
	for len(delta.Free) > 0 {
		c.free(delta.Free[0])
		delta.Free = delta.Free[1:]
	}
	return nil
}

func (c *TextureCache) set(gfx Graphics, id imgui.TextureID, d imgui.ImageDelta) error {
	rgba, w, h := DecodeImage(d.Image, c.gamma)

	if d.IsWhole() {
		img, err := gfx.NewImage(w, h, rgba)
		if err != nil {
			return err
		}
		c.replace(id, &textureEntry{image: img, width: w, height: h, pixels: rgba})
		c.logger().Debug("texture set", "id", id, "width", w, "height", h)
		return nil
	}

	e, ok := c.entries[id]
	if !ok {
		return errors.New("partial update of unknown texture")
	}
	x, y := d.Pos[0], d.Pos[1]
	if x < 0 || y < 0 || x+w > e.width || y+h > e.height {
		return fmt.Errorf("partial update %dx%d at (%d,%d) outside %dx%d", w, h, x, y, e.width, e.height)
	}
	for row := 0; row < h; row++ {
		dst := ((y+row)*e.width + x) * 4
		copy(e.pixels[dst:dst+w*4], rgba[row*w*4:(row+1)*w*4])
	}

	if pu, ok := e.image.(PartialUpdater); ok {
		c.logger().Debug("texture patched", "id", id, "x", x, "y", y, "width", w, "height", h)
		return pu.UpdateRegion(x, y, w, h, rgba)
	}

	img, err := gfx.NewImage(e.width, e.height, e.pixels)
	if err != nil {
		return err
	}
	c.replace(id, &textureEntry{image: img, width: e.width, height: e.height, pixels: e.pixels})
	c.logger().Debug("texture re-uploaded", "id", id, "width", e.width, "height", e.height)
	return nil
}

// replace installs e and releases the texture it supersedes.
func (c *TextureCache) replace(id imgui.TextureID, e *textureEntry) {
	old, ok := c.entries[id]
	c.entries[id] = e
	if ok {
		old.image.Release()
	}
}

func (c *TextureCache) free(id imgui.TextureID) {
	e, ok := c.entries[id]
	if !ok {
		return
	}
	delete(c.entries, id)
	e.image.Release()
	c.logger().Debug("texture freed", "id", id)
}

// Get returns the host texture for id.
func (c *TextureCache) Get(id imgui.TextureID) (Image, bool) {
	e, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	return e.image, true
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return len(c.entries)
}

// Close releases every cached texture.
func (c *TextureCache) Close() {
	for id, e := range c.entries {
		e.image.Release()
		delete(c.entries, id)
	}
}

func (c *TextureCache) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return logger()
}

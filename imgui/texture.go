package imgui

import "fmt"

// TextureID identifies a texture owned by the toolkit.
// FontTextureID is reserved for the font atlas.
type TextureID uint64

// FontTextureID is the id of the font atlas texture.
const FontTextureID TextureID = 0

// ImageData is pixel content for a texture. It is either ColorImage or FontImage.
type ImageData interface {
	// Size returns width and height in pixels.
	Size() (int, int)
	// PixelCount returns the number of stored pixels.
	PixelCount() int
}

// ColorImage is a full-color image in premultiplied sRGBA.
type ColorImage struct {
	Width, Height int
	Pixels        []Color32
}

// NewColorImage creates an image filled with one color.
func NewColorImage(width, height int, fill Color32) ColorImage {
	px := make([]Color32, width*height)
	for i := range px {
		px[i] = fill
	}
	return ColorImage{Width: width, Height: height, Pixels: px}
}

func (img ColorImage) Size() (int, int) { return img.Width, img.Height }
func (img ColorImage) PixelCount() int  { return len(img.Pixels) }

// FontImage is a single-channel coverage image in [0, 1], used for the font atlas.
type FontImage struct {
	Width, Height int
	Pixels        []float32
}

func (img FontImage) Size() (int, int) { return img.Width, img.Height }
func (img FontImage) PixelCount() int  { return len(img.Pixels) }

// ImageDelta is a change to one texture. A nil Pos replaces the whole
// texture; otherwise Image is written at Pos inside the existing texture.
type ImageDelta struct {
	Image ImageData
	Pos   *[2]int
}

// IsWhole reports whether the delta replaces the entire texture.
func (d ImageDelta) IsWhole() bool { return d.Pos == nil }

// TextureSet pairs a texture id with its new content.
type TextureSet struct {
	ID    TextureID
	Delta ImageDelta
}

// TexturesDelta lists texture changes produced by one frame.
// Sets must be applied before frees.
type TexturesDelta struct {
	Set  []TextureSet
	Free []TextureID
}

// IsEmpty reports whether the delta changes nothing.
func (d TexturesDelta) IsEmpty() bool {
	return len(d.Set) == 0 && len(d.Free) == 0
}

// Append adds the changes of other after the changes of d.
func (d *TexturesDelta) Append(other TexturesDelta) {
	d.Set = append(d.Set, other.Set...)
	d.Free = append(d.Free, other.Free...)
}

// TextureMeta describes a live texture.
type TextureMeta struct {
	Name          string
	Width, Height int
}

// textureManager allocates texture ids and records deltas until the
// frame ends.
type textureManager struct {
	nextID TextureID
	metas  map[TextureID]TextureMeta
	delta  TexturesDelta
}

func newTextureManager() *textureManager {
	return &textureManager{
		nextID: FontTextureID + 1,
		metas:  make(map[TextureID]TextureMeta),
	}
}

func (m *textureManager) alloc(name string, img ImageData) TextureID {
	id := m.nextID
	m.nextID++
	m.setWhole(id, name, img)
	return id
}

func (m *textureManager) setWhole(id TextureID, name string, img ImageData) {
	w, h := img.Size()
	m.metas[id] = TextureMeta{Name: name, Width: w, Height: h}
	m.delta.Set = append(m.delta.Set, TextureSet{ID: id, Delta: ImageDelta{Image: img}})
}

func (m *textureManager) setPartial(id TextureID, pos [2]int, img ImageData) error {
	meta, ok := m.metas[id]
	if !ok {
		return fmt.Errorf("texture %d: not allocated", id)
	}
	w, h := img.Size()
	if pos[0] < 0 || pos[1] < 0 || pos[0]+w > meta.Width || pos[1]+h > meta.Height {
		return fmt.Errorf("texture %d: region %dx%d at %v outside %dx%d", id, w, h, pos, meta.Width, meta.Height)
	}
	p := pos
	m.delta.Set = append(m.delta.Set, TextureSet{ID: id, Delta: ImageDelta{Image: img, Pos: &p}})
	return nil
}

func (m *textureManager) free(id TextureID) {
	if _, ok := m.metas[id]; !ok {
		return
	}
	delete(m.metas, id)
	m.delta.Free = append(m.delta.Free, id)
}

func (m *textureManager) take() TexturesDelta {
	d := m.delta
	m.delta = TexturesDelta{}
	return d
}

// TextureHandle owns a user texture. Free it when it is no longer drawn.
type TextureHandle struct {
	mgr *textureManager
	id  TextureID
}

// ID returns the texture id for use in Image and meshes.
func (h *TextureHandle) ID() TextureID { return h.id }

// Size returns the current texture size, or zeros after Free.
func (h *TextureHandle) Size() (int, int) {
	meta := h.mgr.metas[h.id]
	return meta.Width, meta.Height
}

// Set replaces the texture content.
func (h *TextureHandle) Set(img ImageData) {
	meta, ok := h.mgr.metas[h.id]
	if !ok {
		return
	}
	h.mgr.setWhole(h.id, meta.Name, img)
}

// SetPartial writes img into the texture at pos.
func (h *TextureHandle) SetPartial(pos [2]int, img ImageData) error {
	return h.mgr.setPartial(h.id, pos, img)
}

// Free releases the texture at the end of the current frame.
// Calling Free more than once is harmless.
func (h *TextureHandle) Free() {
	h.mgr.free(h.id)
}

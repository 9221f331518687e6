package guihost_test

import (
	"errors"

	"github.com/go-theft-auto/guihost"
)

// fakeImage is a host texture that records its content and releases.
type fakeImage struct {
	serial        int
	width, height int
	rgba          []byte
	released      int
	regions       int
}

func (img *fakeImage) Size() (int, int) { return img.width, img.height }
func (img *fakeImage) Release()         { img.released++ }

// fakePatchableImage also supports in-place region updates.
type fakePatchableImage struct {
	*fakeImage
}

func (img fakePatchableImage) UpdateRegion(x, y, w, h int, rgba []byte) error {
	for row := 0; row < h; row++ {
		dst := ((y+row)*img.width + x) * 4
		copy(img.rgba[dst:dst+w*4], rgba[row*w*4:(row+1)*w*4])
	}
	img.regions++
	return nil
}

type fakeMesh struct {
	vertices []guihost.Vertex
	indices  []uint32
	texture  guihost.Image
	released int
}

func (m *fakeMesh) Release() { m.released++ }

// fakeGraphics is a test backend that keeps every resource it creates.
type fakeGraphics struct {
	patchable bool
	images    []*fakeImage
	meshes    []*fakeMesh
	meshErr   error

	// imageErrs is consumed one entry per NewImage call; nil succeeds.
	imageErrs []error
}

var errGPU = errors.New("out of gpu memory")

func (g *fakeGraphics) NewImage(w, h int, rgba []byte) (guihost.Image, error) {
	if len(g.imageErrs) > 0 {
		err := g.imageErrs[0]
		g.imageErrs = g.imageErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	img := &fakeImage{serial: len(g.images), width: w, height: h, rgba: append([]byte(nil), rgba...)}
	g.images = append(g.images, img)
	if g.patchable {
		return fakePatchableImage{img}, nil
	}
	return img, nil
}

func (g *fakeGraphics) NewMesh(v []guihost.Vertex, idx []uint32, tex guihost.Image) (guihost.Mesh, error) {
	if g.meshErr != nil {
		return nil, g.meshErr
	}
	m := &fakeMesh{vertices: v, indices: idx, texture: tex}
	g.meshes = append(g.meshes, m)
	return m, nil
}

func (g *fakeGraphics) liveImages() int {
	n := 0
	for _, img := range g.images {
		if img.released == 0 {
			n++
		}
	}
	return n
}

type drawCall struct {
	mesh  *fakeMesh
	param guihost.DrawParam
}

// fakeCanvas records draw calls in order.
type fakeCanvas struct {
	calls  []drawCall
	failAt int
}

var errCanvas = errors.New("canvas failure")

func (c *fakeCanvas) DrawMesh(m guihost.Mesh, p guihost.DrawParam) error {
	c.calls = append(c.calls, drawCall{mesh: m.(*fakeMesh), param: p})
	if c.failAt > 0 && len(c.calls) == c.failAt {
		return errCanvas
	}
	return nil
}

type fakeHost struct {
	width, height float32
}

func (h *fakeHost) Size() (float32, float32) { return h.width, h.height }

// imageOf unwraps a host image created by fakeGraphics.
func imageOf(img guihost.Image) *fakeImage {
	switch im := img.(type) {
	case *fakeImage:
		return im
	case fakePatchableImage:
		return im.fakeImage
	}
	return nil
}

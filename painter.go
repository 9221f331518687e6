package guihost

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-theft-auto/guihost/imgui"
)

// ErrCallbackUnsupported is raised as a panic when a frame contains a
// custom paint callback. Dropping it silently would change what is drawn.
var ErrCallbackUnsupported = errors.New("guihost: custom rendering callbacks are not supported")

// FrameOutput is what one ended frame hands to the painter.
type FrameOutput struct {
	Primitives     []imgui.ClippedPrimitive
	TexturesDelta  imgui.TexturesDelta
	PixelsPerPoint float32
}

type builtMesh struct {
	mesh Mesh
	clip imgui.Rect
}

// Painter turns frame output into host meshes and draws them.
//
// Texture delta batches are queued in the order frames produce them and
// are all applied, oldest first, before meshes are built. Meshes live for
// one draw only.
type Painter struct {
	textures *TextureCache

	paintJobs []imgui.ClippedPrimitive
	unbuilt   bool
	scale     float32
	deltas    []imgui.TexturesDelta

	meshes []builtMesh

	log *slog.Logger
}

// NewPainter creates a painter that resolves textures through cache.
func NewPainter(cache *TextureCache) *Painter {
	return &Painter{textures: cache, scale: 1}
}

// Textures returns the painter's texture cache.
func (p *Painter) Textures() *TextureCache {
	return p.textures
}

// QueuedDeltas returns the number of delta batches not yet applied.
func (p *Painter) QueuedDeltas() int {
	return len(p.deltas)
}

// Enqueue takes ownership of a frame's output. It supersedes any output not
// yet drawn; its texture delta is queued behind earlier ones.
func (p *Painter) Enqueue(out FrameOutput) {
	p.releaseMeshes()
	p.paintJobs = out.Primitives
	p.unbuilt = true
	p.scale = out.PixelsPerPoint
	if !(p.scale > 0) {
		p.scale = 1
	}
	if !out.TexturesDelta.IsEmpty() {
		p.deltas = append(p.deltas, out.TexturesDelta)
	}
}

// Prepare applies every queued texture delta in order and builds meshes
// for the pending paint jobs. If a texture cannot be created the error is
// returned and the unapplied rest of the queue is kept for the next call. Meshes with fewer than three vertices or an
// unknown texture are skipped. A callback primitive panics with
// ErrCallbackUnsupported.
func (p *Painter) Prepare(gfx Graphics) error {
	for len(p.deltas) > 0 {
		// A failed batch stays at the head, trimmed to what is left.
		if err := p.textures.apply(gfx, &p.deltas[0]); err != nil {
			return fmt.Errorf("apply textures delta: %w", err)
		}
		p.deltas[0] = imgui.TexturesDelta{}
		p.deltas = p.deltas[1:]
	}

	if !p.unbuilt {
		return nil
	}
	jobs := p.paintJobs
	p.paintJobs = nil
	p.unbuilt = false

	for _, job := range jobs {
		switch prim := job.Primitive.(type) {
		case *imgui.Mesh:
			if len(prim.Vertices) < 3 {
				continue
			}
			tex, ok := p.textures.Get(prim.TextureID)
			if !ok {
				p.logger().Warn("skipping mesh with unknown texture", "texture", prim.TextureID)
				continue
			}
			m, err := gfx.NewMesh(hostVertices(prim.Vertices), prim.Indices, tex)
			if err != nil {
				p.releaseMeshes()
				return fmt.Errorf("build mesh: %w", err)
			}
			p.meshes = append(p.meshes, builtMesh{mesh: m, clip: job.Clip})
		case *imgui.PaintCallback:
			p.releaseMeshes()
			panic(fmt.Errorf("%w: %q", ErrCallbackUnsupported, prim.Name))
		default:
			panic(fmt.Sprintf("guihost: unknown primitive %T", job.Primitive))
		}
	}
	return nil
}

// Draw issues one draw call per built mesh in paint order, scaled to host
// pixels, then releases the meshes. The first canvas error is returned.
func (p *Painter) Draw(canvas Canvas) error {
	var err error
	for i, bm := range p.meshes {
		if err != nil {
			break
		}
		param := DrawParam{
			Scale: p.scale,
			Clip: imgui.Rect{
				Min: ScaleToHost(bm.clip.Min, p.scale),
				Max: ScaleToHost(bm.clip.Max, p.scale),
			},
		}
		if derr := canvas.DrawMesh(bm.mesh, param); derr != nil {
			err = fmt.Errorf("draw mesh %d: %w", i, derr)
		}
	}
	p.releaseMeshes()
	return err
}

// Meshes returns the number of meshes built and waiting to be drawn.
func (p *Painter) Meshes() int {
	return len(p.meshes)
}

// Close releases pending meshes and every cached texture.
func (p *Painter) Close() {
	p.releaseMeshes()
	p.paintJobs = nil
	p.unbuilt = false
	p.deltas = nil
	p.textures.Close()
}

func (p *Painter) releaseMeshes() {
	for _, bm := range p.meshes {
		bm.mesh.Release()
	}
	p.meshes = p.meshes[:0]
}

// hostVertices maps toolkit vertices to the host format.
func hostVertices(vs []imgui.Vertex) []Vertex {
	out := make([]Vertex, len(vs))
	for i, v := range vs {
		out[i] = Vertex{
			Pos:   [2]float32{v.Pos.X, v.Pos.Y},
			UV:    [2]float32{v.UV.X, v.UV.Y},
			Color: v.Color.Linear(),
		}
	}
	return out
}

func (p *Painter) logger() *slog.Logger {
	if p.log != nil {
		return p.log
	}
	return logger()
}

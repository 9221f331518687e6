package guihost_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/guihost"
	"github.com/go-theft-auto/guihost/imgui"
)

func quad(tex imgui.TextureID, r imgui.Rect, color imgui.Color32) *imgui.Mesh {
	return &imgui.Mesh{
		TextureID: tex,
		Vertices: []imgui.Vertex{
			{Pos: r.Min, UV: imgui.Pos2{X: 0, Y: 0}, Color: color},
			{Pos: imgui.Pos2{X: r.Max.X, Y: r.Min.Y}, UV: imgui.Pos2{X: 1, Y: 0}, Color: color},
			{Pos: r.Max, UV: imgui.Pos2{X: 1, Y: 1}, Color: color},
			{Pos: imgui.Pos2{X: r.Min.X, Y: r.Max.Y}, UV: imgui.Pos2{X: 0, Y: 1}, Color: color},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func rect(x0, y0, x1, y1 float32) imgui.Rect {
	return imgui.Rect{Min: imgui.Pos2{X: x0, Y: y0}, Max: imgui.Pos2{X: x1, Y: y1}}
}

func newPainter() (*guihost.Painter, *fakeGraphics) {
	return guihost.NewPainter(guihost.NewTextureCache(1)), &fakeGraphics{}
}

func TestPainterDrawsTexturedQuad(t *testing.T) {
	p, gfx := newPainter()
	canvas := &fakeCanvas{}

	clip := rect(0, 0, 100, 100)
	p.Enqueue(guihost.FrameOutput{
		Primitives:     []imgui.ClippedPrimitive{{Clip: clip, Primitive: quad(7, rect(10, 10, 20, 20), imgui.ColorWhite)}},
		TexturesDelta:  setWhole(7, imgui.NewColorImage(2, 2, imgui.ColorWhite)),
		PixelsPerPoint: 1,
	})
	if err := p.Prepare(gfx); err != nil {
		t.Fatal(err)
	}
	if err := p.Draw(canvas); err != nil {
		t.Fatal(err)
	}

	if len(canvas.calls) != 1 {
		t.Fatalf("expected 1 draw call, got %d", len(canvas.calls))
	}
	call := canvas.calls[0]
	tex, _ := p.Textures().Get(7)
	if call.mesh.texture != tex {
		t.Error("mesh is not bound to texture 7")
	}
	if len(call.mesh.vertices) != 4 || len(call.mesh.indices) != 6 {
		t.Errorf("mesh has %d vertices and %d indices", len(call.mesh.vertices), len(call.mesh.indices))
	}
	if call.param.Clip != clip || call.param.Scale != 1 {
		t.Errorf("unexpected draw param %#v", call.param)
	}
	if v := call.mesh.vertices[2]; v.Pos != [2]float32{20, 20} || v.UV != [2]float32{1, 1} || v.Color != [4]float32{1, 1, 1, 1} {
		t.Errorf("unexpected vertex %#v", v)
	}
	if call.mesh.released != 1 {
		t.Errorf("mesh released %d times after draw, want 1", call.mesh.released)
	}
}

func TestPainterKeepsPaintOrderAndScalesClip(t *testing.T) {
	p, gfx := newPainter()
	canvas := &fakeCanvas{}

	delta := setWhole(1, imgui.NewColorImage(1, 1, imgui.ColorWhite))
	delta.Append(setWhole(2, imgui.NewColorImage(1, 1, imgui.ColorBlack)))

	clips := []imgui.Rect{rect(0, 0, 50, 50), rect(10, 20, 30, 40), rect(0, 0, 400, 300)}
	p.Enqueue(guihost.FrameOutput{
		Primitives: []imgui.ClippedPrimitive{
			{Clip: clips[0], Primitive: quad(1, rect(0, 0, 5, 5), imgui.ColorWhite)},
			{Clip: clips[1], Primitive: quad(2, rect(0, 0, 5, 5), imgui.ColorWhite)},
			{Clip: clips[2], Primitive: quad(1, rect(0, 0, 5, 5), imgui.ColorWhite)},
		},
		TexturesDelta:  delta,
		PixelsPerPoint: 2,
	})
	if err := p.Prepare(gfx); err != nil {
		t.Fatal(err)
	}
	if err := p.Draw(canvas); err != nil {
		t.Fatal(err)
	}

	if len(canvas.calls) != 3 {
		t.Fatalf("expected 3 draw calls, got %d", len(canvas.calls))
	}
	for i, call := range canvas.calls {
		if call.mesh != gfx.meshes[i] {
			t.Errorf("draw %d used mesh out of order", i)
		}
		want := imgui.Rect{
			Min: imgui.Pos2{X: clips[i].Min.X * 2, Y: clips[i].Min.Y * 2},
			Max: imgui.Pos2{X: clips[i].Max.X * 2, Y: clips[i].Max.Y * 2},
		}
		if call.param.Clip != want || call.param.Scale != 2 {
			t.Errorf("draw %d param = %#v, want clip %v scale 2", i, call.param, want)
		}
	}
}

func TestPainterSkipsDegenerateAndUnknownTextures(t *testing.T) {
	p, gfx := newPainter()
	canvas := &fakeCanvas{}

	degenerate := quad(1, rect(0, 0, 5, 5), imgui.ColorWhite)
	degenerate.Vertices = degenerate.Vertices[:2]
	degenerate.Indices = []uint32{0, 1}

	p.Enqueue(guihost.FrameOutput{
		Primitives: []imgui.ClippedPrimitive{
			{Clip: imgui.Everything, Primitive: degenerate},
			{Clip: imgui.Everything, Primitive: quad(42, rect(0, 0, 5, 5), imgui.ColorWhite)},
			{Clip: imgui.Everything, Primitive: quad(1, rect(0, 0, 5, 5), imgui.ColorWhite)},
		},
		TexturesDelta:  setWhole(1, imgui.NewColorImage(1, 1, imgui.ColorWhite)),
		PixelsPerPoint: 1,
	})
	if err := p.Prepare(gfx); err != nil {
		t.Fatal(err)
	}
	if err := p.Draw(canvas); err != nil {
		t.Fatal(err)
	}
	if len(canvas.calls) != 1 {
		t.Errorf("expected only the valid mesh drawn, got %d calls", len(canvas.calls))
	}
}

func TestPainterCallbackPanics(t *testing.T) {
	p, gfx := newPainter()
	p.Enqueue(guihost.FrameOutput{
		Primitives: []imgui.ClippedPrimitive{
			{Clip: imgui.Everything, Primitive: &imgui.PaintCallback{Name: "scene"}},
		},
	})

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, guihost.ErrCallbackUnsupported) {
			t.Errorf("recovered %v, want ErrCallbackUnsupported", r)
		}
	}()
	_ = p.Prepare(gfx)
}

func TestPainterAppliesDeltasInOrder(t *testing.T) {
	p, gfx := newPainter()
	canvas := &fakeCanvas{}

	// Two frames end before the painter gets to run. The texture set by the
	// first and freed by the second must not be drawn.
	p.Enqueue(guihost.FrameOutput{
		Primitives:    []imgui.ClippedPrimitive{{Clip: imgui.Everything, Primitive: quad(4, rect(0, 0, 1, 1), imgui.ColorWhite)}},
		TexturesDelta: setWhole(4, imgui.NewColorImage(1, 1, imgui.ColorWhite)),
	})
	p.Enqueue(guihost.FrameOutput{
		Primitives:    []imgui.ClippedPrimitive{{Clip: imgui.Everything, Primitive: quad(4, rect(0, 0, 1, 1), imgui.ColorWhite)}},
		TexturesDelta: imgui.TexturesDelta{Free: []imgui.TextureID{4}},
	})
	if p.QueuedDeltas() != 2 {
		t.Fatalf("expected 2 queued deltas, got %d", p.QueuedDeltas())
	}

	if err := p.Prepare(gfx); err != nil {
		t.Fatal(err)
	}
	if p.QueuedDeltas() != 0 {
		t.Errorf("expected queue drained, %d left", p.QueuedDeltas())
	}
	if len(gfx.images) != 1 || gfx.images[0].released != 1 {
		t.Errorf("texture 4 should be created then released once")
	}
	if err := p.Draw(canvas); err != nil {
		t.Fatal(err)
	}
	if len(canvas.calls) != 0 {
		t.Errorf("expected nothing drawn, got %d calls", len(canvas.calls))
	}
}

func TestPainterDrawConsumesOutput(t *testing.T) {
	p, gfx := newPainter()
	canvas := &fakeCanvas{}

	p.Enqueue(guihost.FrameOutput{
		Primitives:    []imgui.ClippedPrimitive{{Clip: imgui.Everything, Primitive: quad(1, rect(0, 0, 1, 1), imgui.ColorWhite)}},
		TexturesDelta: setWhole(1, imgui.NewColorImage(1, 1, imgui.ColorWhite)),
	})
	for i := 0; i < 2; i++ {
		if err := p.Prepare(gfx); err != nil {
			t.Fatal(err)
		}
		if err := p.Draw(canvas); err != nil {
			t.Fatal(err)
		}
	}
	if len(canvas.calls) != 1 {
		t.Errorf("expected a single draw across two passes, got %d", len(canvas.calls))
	}
	if p.Meshes() != 0 {
		t.Errorf("expected no meshes left, got %d", p.Meshes())
	}
}

func TestPainterDrawErrorReleasesAllMeshes(t *testing.T) {
	p, gfx := newPainter()
	canvas := &fakeCanvas{failAt: 1}

	prims := make([]imgui.ClippedPrimitive, 3)
	for i := range prims {
		prims[i] = imgui.ClippedPrimitive{Clip: imgui.Everything, Primitive: quad(1, rect(0, 0, 1, 1), imgui.ColorWhite)}
	}
	p.Enqueue(guihost.FrameOutput{
		Primitives:    prims,
		TexturesDelta: setWhole(1, imgui.NewColorImage(1, 1, imgui.ColorWhite)),
	})
	if err := p.Prepare(gfx); err != nil {
		t.Fatal(err)
	}

	if err := p.Draw(canvas); !errors.Is(err, errCanvas) {
		t.Errorf("Draw() = %v, want canvas error", err)
	}
	for i, m := range gfx.meshes {
		if m.released != 1 {
			t.Errorf("mesh %d released %d times, want 1", i, m.released)
		}
	}
}

func TestPainterMeshErrorIsReturned(t *testing.T) {
	p, gfx := newPainter()
	gfx.meshErr = errors.New("out of memory")

	p.Enqueue(guihost.FrameOutput{
		Primitives:    []imgui.ClippedPrimitive{{Clip: imgui.Everything, Primitive: quad(1, rect(0, 0, 1, 1), imgui.ColorWhite)}},
		TexturesDelta: setWhole(1, imgui.NewColorImage(1, 1, imgui.ColorWhite)),
	})
	if err := p.Prepare(gfx); !errors.Is(err, gfx.meshErr) {
		t.Errorf("Prepare() = %v, want mesh error", err)
	}
}

func TestPainterResumesFailedTextureBatch(t *testing.T) {
	p, gfx := newPainter()

	p.Enqueue(guihost.FrameOutput{TexturesDelta: setWhole(2, imgui.NewColorImage(1, 1, imgui.ColorWhite))})
	if err := p.Prepare(gfx); err != nil {
		t.Fatal(err)
	}

	delta := setWhole(4, imgui.NewColorImage(1, 1, imgui.ColorWhite))
	delta.Append(setWhole(3, imgui.NewColorImage(1, 1, imgui.ColorBlack)))
	delta.Free = []imgui.TextureID{2}
	p.Enqueue(guihost.FrameOutput{TexturesDelta: delta})

	gfx.imageErrs = []error{nil, errGPU}
	if err := p.Prepare(gfx); !errors.Is(err, errGPU) {
		t.Fatalf("Prepare error = %v, want %v", err, errGPU)
	}
	if p.QueuedDeltas() != 1 {
		t.Fatalf("queued deltas = %d, want the failed batch kept", p.QueuedDeltas())
	}
	if _, ok := p.Textures().Get(2); !ok {
		t.Error("texture 2 freed before the sets ahead of it were applied")
	}

	if err := p.Prepare(gfx); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if p.QueuedDeltas() != 0 {
		t.Errorf("queued deltas = %d after retry", p.QueuedDeltas())
	}
	for _, id := range []imgui.TextureID{3, 4} {
		if _, ok := p.Textures().Get(id); !ok {
			t.Errorf("texture %d missing after retry", id)
		}
	}
	if _, ok := p.Textures().Get(2); ok {
		t.Error("texture 2 still cached after retry")
	}
	if len(gfx.images) != 3 {
		t.Errorf("created %d images, want 3 (texture 4 must not be re-created)", len(gfx.images))
	}
	if n := gfx.liveImages(); n != 2 {
		t.Errorf("live images = %d, want 2", n)
	}
}

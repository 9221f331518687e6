package software_test

import (
	"image/color"
	"testing"

	"github.com/go-theft-auto/guihost"
	"github.com/go-theft-auto/guihost/backend/software"
	"github.com/go-theft-auto/guihost/imgui"
)

func quadVertices(x0, y0, x1, y1 float32, col [4]float32) ([]guihost.Vertex, []uint32) {
	return []guihost.Vertex{
		{Pos: [2]float32{x0, y0}, UV: [2]float32{0, 0}, Color: col},
		{Pos: [2]float32{x1, y0}, UV: [2]float32{1, 0}, Color: col},
		{Pos: [2]float32{x1, y1}, UV: [2]float32{1, 1}, Color: col},
		{Pos: [2]float32{x0, y1}, UV: [2]float32{0, 1}, Color: col},
	}, []uint32{0, 1, 2, 0, 2, 3}
}

func pixel(c *software.Canvas, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(c.Image().At(x, y)).(color.NRGBA)
}

func drawRedQuad(t *testing.T, c *software.Canvas, p guihost.DrawParam) {
	t.Helper()
	white, err := c.NewImage(1, 1, []byte{255, 255, 255, 255})
	if err != nil {
		t.Fatal(err)
	}
	v, idx := quadVertices(0, 0, 10, 10, [4]float32{1, 0, 0, 1})
	mesh, err := c.NewMesh(v, idx, white)
	if err != nil {
		t.Fatal(err)
	}
	defer mesh.Release()
	if err := c.DrawMesh(mesh, p); err != nil {
		t.Fatal(err)
	}
}

func TestDrawMeshScales(t *testing.T) {
	c := software.NewCanvas(40, 40)
	defer c.Close()

	drawRedQuad(t, c, guihost.DrawParam{Scale: 2, Clip: imgui.Rect{Max: imgui.Pos2{X: 40, Y: 40}}})

	for _, pt := range [][2]int{{5, 5}, {15, 15}} {
		if got := pixel(c, pt[0], pt[1]); got.R < 240 || got.G > 15 || got.A < 240 {
			t.Errorf("pixel %v = %v, want red", pt, got)
		}
	}
	if got := pixel(c, 30, 30); got.A != 0 {
		t.Errorf("pixel outside the quad = %v, want transparent", got)
	}
}

func TestDrawMeshClips(t *testing.T) {
	c := software.NewCanvas(40, 40)
	defer c.Close()

	drawRedQuad(t, c, guihost.DrawParam{Scale: 1, Clip: imgui.Rect{Max: imgui.Pos2{X: 4, Y: 4}}})

	if got := pixel(c, 2, 2); got.R < 240 || got.A < 240 {
		t.Errorf("pixel inside clip = %v, want red", got)
	}
	if got := pixel(c, 8, 8); got.A != 0 {
		t.Errorf("pixel outside clip = %v, want transparent", got)
	}
}

func TestTextureRegionUpdate(t *testing.T) {
	c := software.NewCanvas(4, 4)
	defer c.Close()

	img, err := c.NewImage(2, 1, []byte{0, 0, 0, 255, 0, 0, 0, 255})
	if err != nil {
		t.Fatal(err)
	}
	pu, ok := img.(guihost.PartialUpdater)
	if !ok {
		t.Fatal("software textures should support region updates")
	}
	if err := pu.UpdateRegion(1, 0, 1, 1, []byte{255, 255, 255, 255}); err != nil {
		t.Fatal(err)
	}
	if err := pu.UpdateRegion(2, 0, 1, 1, []byte{255, 255, 255, 255}); err == nil {
		t.Error("expected error for a region outside the texture")
	}
}

func TestGuiRendersOnSoftwareCanvas(t *testing.T) {
	c := software.NewCanvas(200, 100)
	defer c.Close()
	c.Clear(imgui.ColorBlack)

	ui := guihost.New(c, 200, 100)
	defer ui.Close()

	if err := ui.Tick(c); err != nil {
		t.Fatal(err)
	}
	ui.Frame(func(f *guihost.Frame) {
		f.Window("Hi", func() {
			f.Button("OK")
		})
	})
	if err := ui.Draw(c); err != nil {
		t.Fatal(err)
	}

	// The title bar spans (40,40)-(320,64); its text ends well before x=150.
	if got := pixel(c, 150, 50); got.B < 100 || got.B <= got.R {
		t.Errorf("pixel at (150,50) = %v, want title bar blue", got)
	}
	if got := pixel(c, 10, 10); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("pixel at (10,10) = %v, want untouched black", got)
	}
}

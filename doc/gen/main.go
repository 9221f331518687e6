// Command gen renders every widget with sample data on the software backend
// and saves PNG screenshots to doc/imgs/. It needs no GPU or window.
//
// Usage:
//
//	go run ./doc/gen/
//	go run ./doc/gen/ -scale 2
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/guihost"
	"github.com/go-theft-auto/guihost/backend/software"
	"github.com/go-theft-auto/guihost/imgui"
)

func main() {
	scale := flag.Float64("scale", 1, "pixels per point")
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	flag.Parse()

	if err := run(float32(*scale), *outDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                 // filename without extension
	width  int                    // size in points
	height int                    // size in points
	draw   func(f *guihost.Frame) // widget drawing function
	frames int                    // frames to render (0 = default 2)
}

func run(scale float32, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(s, scale, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.png (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(s screenshot, scale float32, outDir string) error {
	w, h := int(float32(s.width)*scale), int(float32(s.height)*scale)
	canvas := software.NewCanvas(w, h)
	defer canvas.Close()

	// Fresh Gui per screenshot to avoid state leaking between captures.
	ui := guihost.New(canvas, float32(w), float32(h), guihost.WithScaleFactor(scale))
	defer ui.Close()

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for i := 0; i < frames; i++ {
		if err := ui.Tick(canvas); err != nil {
			return err
		}
		ui.Frame(s.draw)

		canvas.Clear(imgui.RGBA(31, 31, 36, 255))
		if err := ui.Draw(canvas); err != nil {
			return err
		}
	}

	return canvas.SavePNG(filepath.Join(outDir, s.name+".png"))
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	// Shared state for widgets that need pointers.
	var (
		checked     = true
		unchecked   = false
		inputText   = "Hello, world!"
		emptyText   = ""
		sliderFloat = float32(0.65)
		swatch      *imgui.TextureHandle
	)

	return []screenshot{
		{
			name: "label", width: 400, height: 120,
			draw: func(f *guihost.Frame) {
				f.Label("Plain text")
				f.Labelf("Formatted: %d items, %.1f%%", 42, 99.5)
				f.Separator()
				f.Label("Unicode falls back: ü → ?")
			},
		},
		{
			name: "button", width: 300, height: 80,
			draw: func(f *guihost.Frame) {
				f.Button("Standard Button")
				f.Button("Another")
			},
		},
		{
			name: "checkbox", width: 300, height: 80,
			draw: func(f *guihost.Frame) {
				f.Checkbox("Enabled feature", &checked)
				f.Checkbox("Disabled feature", &unchecked)
			},
		},
		{
			name: "slider", width: 360, height: 60,
			draw: func(f *guihost.Frame) {
				f.SliderFloat("Volume", &sliderFloat, 0, 1)
			},
		},
		{
			name: "text_edit", width: 360, height: 90,
			draw: func(f *guihost.Frame) {
				f.TextEdit("Name", &inputText)
				f.TextEdit("Empty", &emptyText)
			},
		},
		{
			name: "window", width: 400, height: 260,
			draw: func(f *guihost.Frame) {
				f.Window("Settings", func() {
					f.Label("Audio")
					f.SliderFloat("Master", &sliderFloat, 0, 1)
					f.Checkbox("Mute", &unchecked)
					f.Separator()
					f.Button("Apply")
				})
			},
		},
		{
			name: "image", width: 200, height: 120,
			draw: func(f *guihost.Frame) {
				if swatch == nil {
					swatch = f.LoadTexture("swatch", gradient(32, 32))
				}
				f.Image(swatch.ID(), imgui.Vec2{X: 64, Y: 64})
			},
			frames: 3,
		},
	}
}

// gradient builds a small color ramp texture.
func gradient(w, h int) imgui.ColorImage {
	img := imgui.NewColorImage(w, h, imgui.ColorBlack)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Pixels[y*w+x] = imgui.RGBA(uint8(x*255/(w-1)), uint8(y*255/(h-1)), 160, 255)
		}
	}
	return img
}

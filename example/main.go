// Example demonstrates a guihost window with a few widgets.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -config gui.toml -v
//
// The example creates a GLFW window, connects its input and clipboard to a
// guihost.Gui, and renders a window with a button, a checkbox, a slider and
// a text field.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/guihost"
	"github.com/go-theft-auto/guihost/backend/opengl"
	"github.com/go-theft-auto/guihost/imgui"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "guihost example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML config file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if err := run(*configPath, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, verbose bool) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fw, fh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fw, fh)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	opts := []guihost.Option{
		guihost.WithClipboard(opengl.NewClipboard(window)),
		guihost.WithScaleFactor(opengl.ScaleFactor(window)),
	}
	if configPath != "" {
		cfg, err := guihost.LoadConfig(configPath)
		if err != nil {
			return err
		}
		opts = append(opts, guihost.WithConfig(cfg))
	}

	ui := guihost.New(renderer, float32(fw), float32(fh), opts...)
	defer ui.Close()
	if verbose {
		guihost.SetVerbose(true)
	}

	opengl.InstallCallbacks(window, ui.Input())
	window.SetContentScaleCallback(func(w *glfw.Window, x, y float32) {
		if err := ui.SetScaleFactor(x); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})

	host := opengl.WindowHost{Window: window}

	// Application state.
	clickCount := 0
	enabled := true
	sliderVal := float32(0.5)
	name := ""

	// A small procedural texture to show user images.
	var swatch *imgui.TextureHandle

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := host.Size()
		renderer.Resize(int(w), int(h))
		if err := ui.Tick(host); err != nil {
			return fmt.Errorf("gui tick: %w", err)
		}

		ui.Frame(func(f *guihost.Frame) {
			if swatch == nil {
				swatch = f.LoadTexture("swatch", checkerboard(16, 16))
			}

			f.Window("Example Window", func() {
				f.Label("Hello from guihost!")

				if f.Button(fmt.Sprintf("Click me (%d)", clickCount)) {
					clickCount++
				}
				f.Checkbox("Enabled", &enabled)
				f.SliderFloat("Slider", &sliderVal, 0, 1)
				f.TextEdit("Name", &name)
				f.Separator()
				f.Labelf("scale %.2f, frame %d", ui.ScaleFactor(), f.FrameCount())
				f.Image(swatch.ID(), imgui.Vec2{X: 32, Y: 32})
			})
		})

		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := ui.Draw(renderer); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

func checkerboard(w, h int) imgui.ColorImage {
	img := imgui.NewColorImage(w, h, imgui.ColorWhite)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/4+y/4)%2 == 1 {
				img.Pixels[y*w+x] = imgui.ColorDarkGray
			}
		}
	}
	return img
}

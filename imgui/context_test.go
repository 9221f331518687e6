package imgui_test

import (
	"testing"

	"github.com/go-theft-auto/guihost/imgui"
)

func screen(w, h float32) *imgui.Rect {
	r := imgui.RectFromMinSize(imgui.Pos2{}, imgui.Vec2{X: w, Y: h})
	return &r
}

func TestFirstFrameUploadsFontAtlas(t *testing.T) {
	ctx := imgui.NewContext()
	ctx.BeginFrame(imgui.RawInput{ScreenRect: screen(800, 600)})
	out := ctx.EndFrame()

	if len(out.TexturesDelta.Set) != 1 {
		t.Fatalf("expected 1 texture set, got %d", len(out.TexturesDelta.Set))
	}
	set := out.TexturesDelta.Set[0]
	if set.ID != imgui.FontTextureID {
		t.Errorf("expected font texture id, got %d", set.ID)
	}
	if _, ok := set.Delta.Image.(imgui.FontImage); !ok {
		t.Errorf("expected FontImage, got %T", set.Delta.Image)
	}

	ctx.BeginFrame(imgui.RawInput{})
	out = ctx.EndFrame()
	if !out.TexturesDelta.IsEmpty() {
		t.Errorf("second frame should not re-upload the atlas")
	}
}

func TestBeginFrameTwicePanics(t *testing.T) {
	ctx := imgui.NewContext()
	ctx.BeginFrame(imgui.RawInput{})
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nested BeginFrame")
		}
	}()
	ctx.BeginFrame(imgui.RawInput{})
}

func TestEndFrameWithoutBeginPanics(t *testing.T) {
	ctx := imgui.NewContext()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on EndFrame without BeginFrame")
		}
	}()
	ctx.EndFrame()
}

func TestButtonClick(t *testing.T) {
	ctx := imgui.NewContext()
	ppp := float32(1)

	// Lay out once to learn where the button is.
	ctx.BeginFrame(imgui.RawInput{ScreenRect: screen(800, 600), PixelsPerPoint: &ppp})
	ctx.Button("OK")
	ctx.EndFrame()

	pos := imgui.Pos2{X: 12, Y: 12}
	ctx.BeginFrame(imgui.RawInput{Events: []imgui.Event{
		imgui.PointerMoved{Pos: pos},
		imgui.PointerButtonEvent{Pos: pos, Button: imgui.PointerPrimary, Pressed: true},
		imgui.PointerButtonEvent{Pos: pos, Button: imgui.PointerPrimary, Pressed: false},
	}})
	clicked := ctx.Button("OK")
	ctx.EndFrame()

	if !clicked {
		t.Error("expected button to be clicked")
	}
}

func TestTextEditTypingAndClipboard(t *testing.T) {
	ctx := imgui.NewContext()
	text := ""
	pos := imgui.Pos2{X: 20, Y: 14}

	ctx.BeginFrame(imgui.RawInput{ScreenRect: screen(800, 600), Events: []imgui.Event{
		imgui.PointerButtonEvent{Pos: pos, Button: imgui.PointerPrimary, Pressed: true},
		imgui.PointerButtonEvent{Pos: pos, Button: imgui.PointerPrimary, Pressed: false},
	}})
	ctx.TextEdit("name", &text)
	ctx.EndFrame()
	if !ctx.WantsKeyboard() {
		t.Fatal("text field should have keyboard focus after click")
	}

	ctx.BeginFrame(imgui.RawInput{Events: []imgui.Event{
		imgui.Text{Text: "ab"},
		imgui.Paste{Text: "cd"},
	}})
	changed := ctx.TextEdit("name", &text)
	ctx.EndFrame()
	if !changed || text != "abcd" {
		t.Errorf("got changed=%v text=%q, want true \"abcd\"", changed, text)
	}

	ctx.BeginFrame(imgui.RawInput{Events: []imgui.Event{
		imgui.KeyEvent{Key: imgui.KeyBackspace, Pressed: true},
		imgui.Copy{},
	}})
	ctx.TextEdit("name", &text)
	out := ctx.EndFrame()
	if text != "abc" {
		t.Errorf("backspace: got %q, want \"abc\"", text)
	}
	if out.PlatformOutput.CopiedText != "abcd" {
		t.Errorf("copied text: got %q, want \"abcd\"", out.PlatformOutput.CopiedText)
	}
}

func TestTextureHandleLifecycle(t *testing.T) {
	ctx := imgui.NewContext()
	ctx.BeginFrame(imgui.RawInput{})
	ctx.EndFrame()

	h := ctx.LoadTexture("white", imgui.NewColorImage(2, 2, imgui.ColorWhite))
	if err := h.SetPartial([2]int{1, 1}, imgui.NewColorImage(1, 1, imgui.ColorBlack)); err != nil {
		t.Fatalf("SetPartial: %v", err)
	}
	if err := h.SetPartial([2]int{2, 2}, imgui.NewColorImage(1, 1, imgui.ColorBlack)); err == nil {
		t.Error("expected out-of-bounds partial update to fail")
	}

	ctx.BeginFrame(imgui.RawInput{})
	out := ctx.EndFrame()
	if len(out.TexturesDelta.Set) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(out.TexturesDelta.Set))
	}
	if !out.TexturesDelta.Set[0].Delta.IsWhole() || out.TexturesDelta.Set[1].Delta.IsWhole() {
		t.Error("expected a whole set followed by a partial set")
	}

	h.Free()
	h.Free()
	ctx.BeginFrame(imgui.RawInput{})
	out = ctx.EndFrame()
	if len(out.TexturesDelta.Free) != 1 || out.TexturesDelta.Free[0] != h.ID() {
		t.Errorf("expected exactly one free of %d, got %v", h.ID(), out.TexturesDelta.Free)
	}
}

func TestFontImageSRGBAPixels(t *testing.T) {
	img := imgui.FontImage{Width: 3, Height: 1, Pixels: []float32{0, 0.5, 1}}
	px := img.SRGBAPixels(1)
	want := []imgui.Color32{{0, 0, 0, 0}, {128, 128, 128, 128}, {255, 255, 255, 255}}
	for i := range want {
		if px[i] != want[i] {
			t.Errorf("pixel %d: got %v, want %v", i, px[i], want[i])
		}
	}
}

// Package opengl provides an OpenGL 4.1 backend for the guihost package.
package opengl

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/guihost"
)

// Renderer implements guihost.Graphics and guihost.Canvas using OpenGL.
// All methods must be called on the thread that owns the GL context.
type Renderer struct {
	shader  uint32
	projLoc int32
	texLoc  int32
	width   int
	height  int
}

var _ guihost.Graphics = (*Renderer)(nil)
var _ guihost.Canvas = (*Renderer)(nil)

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// Fragment shader source
// Textures are sRGB so sampling returns linear color, and vertex colors
// arrive linear and premultiplied. The framebuffer does the sRGB encode.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D tex;

void main() {
    FragColor = Color * texture(tex, TexCoord);
}
` + "\x00"

// NewRenderer creates a renderer for a framebuffer of width x height pixels.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex\x00"))

	return r, nil
}

// Resize updates the framebuffer size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Texture is an sRGB GL texture.
type Texture struct {
	id            uint32
	width, height int
}

// Size returns the texture size in texels.
func (t *Texture) Size() (int, int) { return t.width, t.height }

// Release deletes the GL texture.
func (t *Texture) Release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// UpdateRegion overwrites a sub-rectangle of the texture in place.
func (t *Texture) UpdateRegion(x, y, width, height int, rgba []byte) error {
	if len(rgba) != width*height*4 {
		return fmt.Errorf("region %dx%d needs %d bytes, got %d", width, height, width*height*4, len(rgba))
	}
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, int32(x), int32(y), int32(width), int32(height),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// NewImage uploads an RGBA8 texture.
func (r *Renderer) NewImage(width, height int, rgba []byte) (guihost.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid texture size %dx%d", width, height)
	}
	if len(rgba) != width*height*4 {
		return nil, fmt.Errorf("texture %dx%d needs %d bytes, got %d", width, height, width*height*4, len(rgba))
	}

	t := &Texture{width: width, height: height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.SRGB8_ALPHA8, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t, nil
}

// Mesh is an indexed triangle list with its own vertex array.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
	tex           *Texture
}

// Release deletes the GL buffers. The texture is not owned by the mesh.
func (m *Mesh) Release() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

// NewMesh uploads vertices and indices bound to tex.
func (r *Renderer) NewMesh(vertices []guihost.Vertex, indices []uint32, tex guihost.Image) (guihost.Mesh, error) {
	t, ok := tex.(*Texture)
	if !ok {
		return nil, fmt.Errorf("texture %T was not created by this renderer", tex)
	}
	if len(vertices) == 0 || len(indices) == 0 {
		return nil, errors.New("empty mesh")
	}

	m := &Mesh{count: int32(len(indices)), tex: t}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(unsafe.Sizeof(guihost.Vertex{})),
		gl.Ptr(vertices), gl.STREAM_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STREAM_DRAW)

	// Vertex layout: Pos (2 floats) + UV (2 floats) + Color (4 floats)
	stride := int32(unsafe.Sizeof(guihost.Vertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(guihost.Vertex{}.UV))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, unsafe.Offsetof(guihost.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	return m, nil
}

// DrawMesh draws one mesh with positions scaled by p.Scale and clipped to
// p.Clip in framebuffer pixels.
func (r *Renderer) DrawMesh(mesh guihost.Mesh, p guihost.DrawParam) error {
	m, ok := mesh.(*Mesh)
	if !ok {
		return fmt.Errorf("mesh %T was not created by this renderer", mesh)
	}

	// Convert to OpenGL coordinates (Y flipped) and clamp to the framebuffer
	clipX := int32(p.Clip.Min.X)
	clipY := int32(float32(r.height) - p.Clip.Max.Y)
	clipW := int32(p.Clip.Max.X - p.Clip.Min.X)
	clipH := int32(p.Clip.Max.Y - p.Clip.Min.Y)
	if clipX < 0 {
		clipW += clipX
		clipX = 0
	}
	if clipY < 0 {
		clipH += clipY
		clipY = 0
	}
	if over := clipX + clipW - int32(r.width); over > 0 {
		clipW -= over
	}
	if over := clipY + clipH - int32(r.height); over > 0 {
		clipH -= over
	}
	if clipW <= 0 || clipH <= 0 {
		return nil
	}

	saved := saveState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Enable(gl.FRAMEBUFFER_SRGB)
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.Scissor(clipX, clipY, clipW, clipH)

	gl.UseProgram(r.shader)

	// Vertices are in points; the projection maps points to the framebuffer.
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	proj := orthoMatrix(0, float32(r.width)/scale, float32(r.height)/scale, 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)
	gl.BindTexture(gl.TEXTURE_2D, m.tex.id)

	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

// glState is the GL state DrawMesh changes.
type glState struct {
	program        int32
	blendSrc       int32
	blendDst       int32
	scissorBox     [4]int32
	viewport       [4]int32
	blendEnabled   bool
	depthEnabled   bool
	cullEnabled    bool
	scissorEnabled bool
	srgbEnabled    bool
}

func saveState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissorBox[0])
	gl.GetIntegerv(gl.VIEWPORT, &s.viewport[0])
	s.blendEnabled = gl.IsEnabled(gl.BLEND)
	s.depthEnabled = gl.IsEnabled(gl.DEPTH_TEST)
	s.cullEnabled = gl.IsEnabled(gl.CULL_FACE)
	s.scissorEnabled = gl.IsEnabled(gl.SCISSOR_TEST)
	s.srgbEnabled = gl.IsEnabled(gl.FRAMEBUFFER_SRGB)
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	setEnabled(gl.BLEND, s.blendEnabled)
	setEnabled(gl.DEPTH_TEST, s.depthEnabled)
	setEnabled(gl.CULL_FACE, s.cullEnabled)
	setEnabled(gl.SCISSOR_TEST, s.scissorEnabled)
	setEnabled(gl.FRAMEBUFFER_SRGB, s.srgbEnabled)
	gl.Scissor(s.scissorBox[0], s.scissorBox[1], s.scissorBox[2], s.scissorBox[3])
	gl.Viewport(s.viewport[0], s.viewport[1], s.viewport[2], s.viewport[3])
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
		r.shader = 0
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	// Cleanup shaders (they're linked into the program now)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, errors.New(string(log))
	}
	return shader, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

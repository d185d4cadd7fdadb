// Package opengl provides an OpenGL 4.1 backend for the gui package.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	gui "github.com/go-theft-auto/quadgui"
)

// GlyphAtlas is the glyph texture source, e.g. *fontatlas.Atlas.
type GlyphAtlas interface {
	Image() *image.Alpha
	Version() uint64
}

// quadPass is the GL state of one buffer pair.
type quadPass struct {
	vao, vbo, ebo uint32
}

// Renderer draws gui frames using OpenGL: component quads first, glyph
// quads on top.
type Renderer struct {
	shader   uint32
	colorLoc int32
	atlasLoc int32

	components quadPass
	glyphs     quadPass

	whiteTex     uint32
	atlasTex     uint32
	atlas        GlyphAtlas
	atlasVersion uint64
	atlasLoaded  bool
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;
layout (location = 3) in float aMode;

out vec2 TexCoord;
out vec4 Color;
flat out float Mode;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
    Mode = aMode;
}
` + "\x00"

// Fragment shader source
// Mode 0 samples the white fallback texture (flat colour), mode 1 the
// alpha-only glyph atlas (R channel is coverage).
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;
flat in float Mode;

out vec4 FragColor;

uniform sampler2D colorTexture;
uniform sampler2D atlasTexture;

void main() {
    if (Mode < 0.5) {
        FragColor = Color * texture(colorTexture, TexCoord);
    } else {
        FragColor = vec4(Color.rgb, Color.a * texture(atlasTexture, TexCoord).r);
    }
}
` + "\x00"

// NewRenderer creates a new OpenGL renderer. atlas may be nil when no
// text is drawn.
func NewRenderer(atlas GlyphAtlas) (*Renderer, error) {
	r := &Renderer{atlas: atlas}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}
	r.colorLoc = gl.GetUniformLocation(r.shader, gl.Str("colorTexture\x00"))
	r.atlasLoc = gl.GetUniformLocation(r.shader, gl.Str("atlasTexture\x00"))

	r.components = newQuadPass()
	r.glyphs = newQuadPass()

	r.whiteTex = createTexture(gl.RGBA, 1, 1, []byte{255, 255, 255, 255})
	gl.GenTextures(1, &r.atlasTex)

	return r, nil
}

// newQuadPass creates a VAO with a vertex and an index buffer laid out for
// gui.Vertex.
func newQuadPass() quadPass {
	var p quadPass
	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.GenBuffers(1, &p.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)

	stride := int32(unsafe.Sizeof(gui.Vertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, unsafe.Offsetof(gui.Vertex{}.Pos))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(gui.Vertex{}.UV))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, unsafe.Offsetof(gui.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(3, 1, gl.FLOAT, false, stride, unsafe.Offsetof(gui.Vertex{}.Mode))
	gl.EnableVertexAttribArray(3)

	gl.BindVertexArray(0)
	return p
}

// Render implements gui.Renderer. The frame must not be rebuilt while
// Render runs.
func (r *Renderer) Render(frame *gui.Frame) error {
	if frame == nil {
		return nil
	}
	r.syncAtlas()

	var lastProgram int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)

	gl.UseProgram(r.shader)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.whiteTex)
	gl.Uniform1i(r.colorLoc, 0)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, r.atlasTex)
	gl.Uniform1i(r.atlasLoc, 1)

	r.components.draw(frame.Components)
	r.glyphs.draw(frame.Glyphs)

	gl.BindVertexArray(0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.UseProgram(uint32(lastProgram))
	if !blendEnabled {
		gl.Disable(gl.BLEND)
	}
	if depthEnabled {
		gl.Enable(gl.DEPTH_TEST)
	}

	if errCode := gl.GetError(); errCode != gl.NO_ERROR {
		return fmt.Errorf("opengl: render error 0x%x", errCode)
	}
	return nil
}

// draw uploads buf and draws it as a triangle list.
func (p quadPass) draw(buf *gui.QuadBuffer) {
	if buf == nil || len(buf.Indices) == 0 {
		return
	}

	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf.Vertices)*int(unsafe.Sizeof(gui.Vertex{})),
		gl.Ptr(buf.Vertices), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(buf.Indices)*4,
		gl.Ptr(buf.Indices), gl.STREAM_DRAW)

	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(buf.Indices)), gl.UNSIGNED_INT, 0)
}

// syncAtlas uploads the glyph atlas when it changed since the last upload.
func (r *Renderer) syncAtlas() {
	if r.atlas == nil {
		return
	}
	if r.atlasLoaded && r.atlas.Version() == r.atlasVersion {
		return
	}

	img := r.atlas.Image()
	b := img.Bounds()
	gl.BindTexture(gl.TEXTURE_2D, r.atlasTex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.atlasVersion = r.atlas.Version()
	r.atlasLoaded = true
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	for _, p := range []*quadPass{&r.components, &r.glyphs} {
		if p.ebo != 0 {
			gl.DeleteBuffers(1, &p.ebo)
		}
		if p.vbo != 0 {
			gl.DeleteBuffers(1, &p.vbo)
		}
		if p.vao != 0 {
			gl.DeleteVertexArrays(1, &p.vao)
		}
	}
	if r.whiteTex != 0 {
		gl.DeleteTextures(1, &r.whiteTex)
	}
	if r.atlasTex != 0 {
		gl.DeleteTextures(1, &r.atlasTex)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// createTexture uploads pixel data as a nearest-filtered 2D texture.
func createTexture(format uint32, width, height int32, data []byte) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), width, height, 0, format, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
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

func compileShader(source string, kind uint32) (uint32, error) {
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
		return 0, fmt.Errorf("%s", string(log))
	}
	return shader, nil
}

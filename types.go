package gui

// Box is an axis-aligned area in pixel space. X, Y is the bottom-left
// corner (y grows upward, matching the GL viewport).
type Box struct {
	X, Y int
	W, H int
}

// Contains returns true if the pixel point is inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Corners is a quad in screen (normalized device) coordinates.
// (X1, Y1) is the top-left corner, (X2, Y2) the bottom-right one.
type Corners struct {
	X1, Y1 float32
	X2, Y2 float32
}

// UVRect is a region of a texture in normalized coordinates.
// V1 is sampled along the quad's bottom edge and V2 along its top edge.
type UVRect struct {
	U1, V1 float32
	U2, V2 float32
}

// FullUV covers the whole texture. Flat-colour quads always use it.
var FullUV = UVRect{U1: 0, V1: 0, U2: 1, V2: 1}

// TextureMode tags a vertex with the texture the fragment stage samples.
type TextureMode uint8

const (
	// TexColor samples the solid fallback texture, producing a flat colour.
	TexColor TextureMode = iota
	// TexBitmap samples the glyph atlas.
	TexBitmap
)

// String returns the mode name.
func (m TextureMode) String() string {
	switch m {
	case TexColor:
		return "color"
	case TexBitmap:
		return "bitmap"
	default:
		return "unknown"
	}
}

// Vertex is one interleaved vertex: position, uv, rgba and texture mode.
// Memory layout is 9 consecutive float32 values, matching the
// vertex attribute setup of the OpenGL backend.
type Vertex struct {
	Pos   [2]float32 // Screen position (x, y)
	UV    [2]float32 // Texture coordinates (u, v)
	Color [4]float32 // RGBA, 0..1
	Mode  float32    // TextureMode as float
}

// FloatsPerVertex is the number of scalars in a Vertex.
const FloatsPerVertex = 9

// Color is an 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// Color constants.
var (
	ColorWhite       = Color{255, 255, 255, 255}
	ColorBlack       = Color{0, 0, 0, 255}
	ColorRed         = Color{255, 0, 0, 255}
	ColorGreen       = Color{0, 255, 0, 255}
	ColorBlue        = Color{0, 0, 255, 255}
	ColorCyan        = Color{0, 255, 255, 255}
	ColorMagenta     = Color{255, 0, 255, 255}
	ColorTransparent = Color{}
)

// RGBA creates a colour from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Floats returns the colour as normalized float components.
func (c Color) Floats() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// HAlign is the horizontal text alignment.
//
// The numeric value doubles as a blend factor: the line's start offset is
// value * (boxWidth - lineWidth) / 2, so LEFT=0, CENTER=1 and RIGHT=2.
type HAlign uint8

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
	// AlignJustify lays lines out from the left and stretches spaces so
	// each line fills the box width.
	AlignJustify
)

// String returns the alignment name.
func (a HAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "unknown"
	}
}

// VAlign is the vertical text alignment. Like HAlign, the value is a
// blend factor over half the free height: TOP=0, CENTER=1, BOTTOM=2.
type VAlign uint8

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// String returns the alignment name.
func (a VAlign) String() string {
	switch a {
	case AlignTop:
		return "top"
	case AlignMiddle:
		return "middle"
	case AlignBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

package gui

import "github.com/go-gl/mathgl/mgl32"

// ScreenSpace converts pixel-space geometry to normalized device
// coordinates. Conversion happens only when a quad corner is emitted or a
// text block is shifted; layout arithmetic stays in integer pixels.
type ScreenSpace interface {
	// PixelRectToScreen maps the pixel rectangle (x, y, w, h), with (x, y)
	// its bottom-left corner, to top-left and bottom-right screen corners.
	PixelRectToScreen(x, y, w, h int) Corners

	// PixelToScreenY maps a vertical pixel distance to a screen distance.
	PixelToScreenY(dy float32) float32
}

// Viewport is the ScreenSpace of a window framebuffer with the pixel origin
// at its bottom-left corner.
type Viewport struct {
	width, height int
	proj          mgl32.Mat4
}

// NewViewport creates a viewport of the given framebuffer size.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Resize updates the framebuffer size. Non-positive sizes are clamped to 1.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
	v.proj = mgl32.Ortho2D(0, float32(v.width), 0, float32(v.height))
}

// Size returns the framebuffer size in pixels.
func (v *Viewport) Size() (width, height int) {
	return v.width, v.height
}

// Projection returns the pixel to NDC projection matrix.
func (v *Viewport) Projection() mgl32.Mat4 {
	return v.proj
}

// PixelRectToScreen implements ScreenSpace.
func (v *Viewport) PixelRectToScreen(x, y, w, h int) Corners {
	tl := v.proj.Mul4x1(mgl32.Vec4{float32(x), float32(y + h), 0, 1})
	br := v.proj.Mul4x1(mgl32.Vec4{float32(x + w), float32(y), 0, 1})
	return Corners{X1: tl.X(), Y1: tl.Y(), X2: br.X(), Y2: br.Y()}
}

// PixelToScreenY implements ScreenSpace.
func (v *Viewport) PixelToScreenY(dy float32) float32 {
	return dy * v.proj.At(1, 1)
}

// ScreenToPixel maps a window cursor position (origin top-left, y down, as
// reported by the windowing layer) to viewport pixel space.
func (v *Viewport) ScreenToPixel(cx, cy float64) (x, y int) {
	return int(cx), v.height - 1 - int(cy)
}

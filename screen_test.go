package gui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	gui "github.com/go-theft-auto/quadgui"
)

func TestViewportPixelRectToScreen(t *testing.T) {
	v := gui.NewViewport(800, 600)

	c := v.PixelRectToScreen(0, 0, 800, 600)
	assert.InDelta(t, -1, c.X1, 1e-6)
	assert.InDelta(t, 1, c.Y1, 1e-6)
	assert.InDelta(t, 1, c.X2, 1e-6)
	assert.InDelta(t, -1, c.Y2, 1e-6)

	c = v.PixelRectToScreen(400, 150, 200, 150)
	assert.InDelta(t, 0, c.X1, 1e-6)
	assert.InDelta(t, 0, c.Y1, 1e-6)
	assert.InDelta(t, 0.5, c.X2, 1e-6)
	assert.InDelta(t, -0.5, c.Y2, 1e-6)
}

func TestViewportPixelToScreenY(t *testing.T) {
	v := gui.NewViewport(800, 600)
	assert.InDelta(t, 1, v.PixelToScreenY(300), 1e-6)
	assert.InDelta(t, 0, v.PixelToScreenY(0), 1e-6)

	v.Resize(800, 300)
	assert.InDelta(t, 2, v.PixelToScreenY(300), 1e-6)
}

func TestViewportScreenToPixel(t *testing.T) {
	v := gui.NewViewport(800, 600)

	x, y := v.ScreenToPixel(10.7, 0)
	assert.Equal(t, 10, x)
	assert.Equal(t, 599, y)

	x, y = v.ScreenToPixel(0, 599)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestViewportResizeClamps(t *testing.T) {
	v := gui.NewViewport(0, -5)
	w, h := v.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)

	v.Resize(1024, 768)
	w, h = v.Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
}

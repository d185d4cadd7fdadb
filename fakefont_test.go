package gui_test

import gui "github.com/go-theft-auto/quadgui"

// monoFont is a FontMetrics with fixed metrics: every rune advances 10px
// with a 1px bearing on both sides, unless overridden.
type monoFont struct {
	wide map[rune]int    // advance overrides
	ink  map[rune]int    // right ink edge overrides
	kern map[[2]rune]int // kerning pairs
}

const (
	monoAdvance = 10
	monoAscent  = 16
	monoDescent = -4
	monoLineGap = 2
	monoLine    = monoAscent - monoDescent + monoLineGap
)

func (f *monoFont) LineMetrics(gui.FontID, int) (int, int, int) {
	return monoAscent, monoDescent, monoLineGap
}

func (f *monoFont) advance(ch rune) int {
	if adv, ok := f.wide[ch]; ok {
		return adv
	}
	return monoAdvance
}

func (f *monoFont) CharAdvance(_ gui.FontID, _ int, ch rune) (int, int) {
	return f.advance(ch), 1
}

func (f *monoFont) CharBBox(_ gui.FontID, _ int, ch rune) (int, int, int, int) {
	x2 := f.advance(ch) - 1
	if ink, ok := f.ink[ch]; ok {
		x2 = ink
	}
	return 1, -12, x2, 0
}

func (f *monoFont) CharBitmapRect(_ gui.FontID, _ int, ch rune) gui.UVRect {
	u := float32(ch%16) / 16
	v := float32(ch/16%16) / 16
	return gui.UVRect{U1: u, V1: v + 1.0/16, U2: u + 1.0/16, V2: v}
}

func (f *monoFont) Kerning(_ gui.FontID, _ int, ch, next rune) int {
	return f.kern[[2]rune{ch, next}]
}

// pixelSpace is a ScreenSpace that keeps pixel units, so tests can assert
// on pixel positions directly.
type pixelSpace struct{}

func (pixelSpace) PixelRectToScreen(x, y, w, h int) gui.Corners {
	return gui.Corners{X1: float32(x), Y1: float32(y + h), X2: float32(x + w), Y2: float32(y)}
}

func (pixelSpace) PixelToScreenY(dy float32) float32 {
	return dy
}

package gui

// FontID selects one of the fonts known to a FontMetrics provider.
type FontID uint8

const (
	FontDefault FontID = iota
	FontTwo
	FontMonospace
)

// FontMetrics is the interface the text layout consumes for font data.
// It abstracts font loading and rasterization, allowing different
// implementations to be injected (e.g. the x/image based fontatlas package,
// or fixed metrics for testing).
//
// All lookups are pure from the layout's point of view and must return a
// value for every rune, possibly that of a fallback glyph. Values are in
// integer pixels at the requested size.
//
// Example usage:
//
//	atlas := fontatlas.New()
//	atlas.Load(gui.FontDefault, goregular.TTF)
//	builder := gui.NewBuilder(viewport, atlas)
type FontMetrics interface {
	// LineMetrics returns the font-wide vertical metrics. Descent is
	// negative (below the baseline).
	LineMetrics(font FontID, size int) (ascent, descent, lineGap int)

	// CharAdvance returns the horizontal advance and the left side bearing.
	CharAdvance(font FontID, size int, ch rune) (advance, leftSideBearing int)

	// CharBBox returns the glyph's ink box relative to its origin, in bitmap
	// orientation: y1 is the (negative) top, y2 the bottom below baseline.
	CharBBox(font FontID, size int, ch rune) (x1, y1, x2, y2 int)

	// CharBitmapRect returns the glyph's region in the atlas texture.
	CharBitmapRect(font FontID, size int, ch rune) UVRect

	// Kerning returns the advance adjustment between ch and next.
	// next is 0 at the end of the text.
	Kerning(font FontID, size int, ch, next rune) int
}

// Package fontatlas implements gui.FontMetrics on top of golang.org/x/image
// OpenType faces. Glyphs are rasterized once per (font, size) and packed
// into a single alpha atlas that a renderer uploads as the glyph texture.
package fontatlas

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	gui "github.com/go-theft-auto/quadgui"
)

// ErrAtlasFull is logged when a glyph no longer fits into the atlas.
var ErrAtlasFull = errors.New("fontatlas: atlas full")

// padding between packed glyphs, in pixels
const padding = 2

// fallbackRune is drawn for runes the font has no glyph for.
const fallbackRune = '?'

type faceKey struct {
	font gui.FontID
	size int
}

type glyph struct {
	advance, lsb   int
	x1, y1, x2, y2 int
	uv             gui.UVRect
}

type face struct {
	face                     font.Face
	ascent, descent, lineGap int
	glyphs                   map[rune]glyph
}

// Atlas is a gui.FontMetrics backed by OpenType fonts.
//
// Faces are created lazily the first time a (font, size) pair is looked
// up. An Atlas is not safe for concurrent use.
type Atlas struct {
	fonts map[gui.FontID]*opentype.Font
	faces map[faceKey]*face

	img     *image.Alpha
	size    int
	x, y    int // Packing cursor
	rowH    int
	full    bool
	version uint64

	dpi     float64
	hinting font.Hinting
	runes   []rune
	logger  *slog.Logger
}

// Option configures an Atlas.
type Option func(*Atlas)

// WithAtlasSize sets the width and height of the atlas image in pixels.
func WithAtlasSize(px int) Option {
	return func(a *Atlas) { a.size = px }
}

// WithDPI sets the resolution faces are rasterized at.
func WithDPI(dpi float64) Option {
	return func(a *Atlas) { a.dpi = dpi }
}

// WithHinting sets the face hinting.
func WithHinting(h font.Hinting) Option {
	return func(a *Atlas) { a.hinting = h }
}

// WithRunes sets the runes rasterized eagerly when a face is created.
// Other runes are rasterized on first use.
func WithRunes(runes []rune) Option {
	return func(a *Atlas) { a.runes = runes }
}

// WithLogger sets the logger. The default is gui.Logger, whose level
// follows gui.SetVerbose.
func WithLogger(l *slog.Logger) Option {
	return func(a *Atlas) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates an empty atlas. Load at least gui.FontDefault before use.
func New(opts ...Option) *Atlas {
	a := &Atlas{
		fonts:   make(map[gui.FontID]*opentype.Font),
		faces:   make(map[faceKey]*face),
		size:    1024,
		dpi:     72,
		hinting: font.HintingFull,
		logger:  gui.Logger(),
	}
	for r := rune(32); r < 127; r++ {
		a.runes = append(a.runes, r)
	}
	for _, opt := range opts {
		opt(a)
	}

	a.img = image.NewAlpha(image.Rect(0, 0, a.size, a.size))
	a.x, a.y = padding, padding
	return a
}

// Load parses an OpenType/TrueType font and registers it as id.
// Faces already created for id are dropped. Their glyphs stay packed in
// the image while faces of other fonts remain; once no face is left the
// image is cleared and packing starts over.
func (a *Atlas) Load(id gui.FontID, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse font %d: %w", id, err)
	}
	a.fonts[id] = f
	for k := range a.faces {
		if k.font == id {
			delete(a.faces, k)
		}
	}
	if len(a.faces) == 0 {
		a.reset()
	}
	return nil
}

// reset empties the image and resets the packing cursor.
func (a *Atlas) reset() {
	if a.x == padding && a.y == padding && !a.full {
		return
	}
	clear(a.img.Pix)
	a.x, a.y = padding, padding
	a.rowH = 0
	a.full = false
	a.version++
}

// Image returns the atlas image. Row 0 is texture coordinate v = 0.
func (a *Atlas) Image() *image.Alpha {
	return a.img
}

// Version increases whenever glyphs are added to the image, so renderers
// know when to upload it again.
func (a *Atlas) Version() uint64 {
	return a.version
}

// face returns the face for (id, size), creating it on first use. Unknown
// fonts fall back to gui.FontDefault. Returns nil if no usable font is
// loaded.
func (a *Atlas) face(id gui.FontID, size int) *face {
	if _, ok := a.fonts[id]; !ok {
		id = gui.FontDefault
	}
	key := faceKey{font: id, size: size}
	if f, ok := a.faces[key]; ok {
		return f
	}

	otf, ok := a.fonts[id]
	if !ok || size <= 0 {
		return nil
	}
	ff, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     a.dpi,
		Hinting: a.hinting,
	})
	if err != nil {
		a.logger.Error("fontatlas: failed to create face", "font", id, "size", size, "err", err)
		return nil
	}

	m := ff.Metrics()
	f := &face{
		face:    ff,
		ascent:  m.Ascent.Ceil(),
		descent: -m.Descent.Ceil(),
		glyphs:  make(map[rune]glyph, len(a.runes)),
	}
	f.lineGap = max(m.Height.Ceil()-(f.ascent-f.descent), 0)
	a.faces[key] = f

	for _, r := range a.runes {
		a.rasterize(f, r)
	}
	return f
}

// rasterize packs the glyph of r into the atlas and records its metrics.
func (a *Atlas) rasterize(f *face, r rune) (glyph, bool) {
	dr, mask, maskp, adv, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return glyph{}, false
	}

	g := glyph{
		advance: adv.Round(),
		lsb:     dr.Min.X,
		x1:      dr.Min.X,
		y1:      dr.Min.Y,
		x2:      dr.Max.X,
		y2:      dr.Max.Y,
	}

	w, h := dr.Dx(), dr.Dy()
	if w > 0 && h > 0 {
		if uv, ok := a.pack(mask, maskp, w, h); ok {
			g.uv = uv
		}
	}

	f.glyphs[r] = g
	return g, true
}

// pack copies a w x h glyph mask into the atlas using shelf packing.
func (a *Atlas) pack(mask image.Image, maskp image.Point, w, h int) (gui.UVRect, bool) {
	if a.full {
		return gui.UVRect{}, false
	}
	if a.x+w+padding > a.size {
		a.x = padding
		a.y += a.rowH + padding
		a.rowH = 0
	}
	if a.y+h+padding > a.size || w+2*padding > a.size {
		a.full = true
		a.logger.Warn("fontatlas: glyph does not fit", "size", a.size, "err", ErrAtlasFull)
		return gui.UVRect{}, false
	}

	dst := image.Rect(a.x, a.y, a.x+w, a.y+h)
	draw.Draw(a.img, dst, mask, maskp, draw.Src)

	s := float32(a.size)
	uv := gui.UVRect{
		U1: float32(dst.Min.X) / s,
		V1: float32(dst.Max.Y) / s,
		U2: float32(dst.Max.X) / s,
		V2: float32(dst.Min.Y) / s,
	}

	a.x += w + padding
	a.rowH = max(a.rowH, h)
	a.version++
	return uv, true
}

// glyph returns the glyph of r, rasterizing it on first use. Runes the
// font cannot draw map to fallbackRune.
func (a *Atlas) glyph(id gui.FontID, size int, r rune) glyph {
	f := a.face(id, size)
	if f == nil {
		return glyph{}
	}
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	if g, ok := a.rasterize(f, r); ok {
		return g
	}
	if g, ok := f.glyphs[fallbackRune]; ok {
		f.glyphs[r] = g
		return g
	}
	g, _ := a.rasterize(f, fallbackRune)
	f.glyphs[r] = g
	return g
}

// LineMetrics implements gui.FontMetrics.
func (a *Atlas) LineMetrics(id gui.FontID, size int) (ascent, descent, lineGap int) {
	f := a.face(id, size)
	if f == nil {
		return 0, 0, 0
	}
	return f.ascent, f.descent, f.lineGap
}

// CharAdvance implements gui.FontMetrics.
func (a *Atlas) CharAdvance(id gui.FontID, size int, ch rune) (advance, leftSideBearing int) {
	g := a.glyph(id, size, ch)
	return g.advance, g.lsb
}

// CharBBox implements gui.FontMetrics.
func (a *Atlas) CharBBox(id gui.FontID, size int, ch rune) (x1, y1, x2, y2 int) {
	g := a.glyph(id, size, ch)
	return g.x1, g.y1, g.x2, g.y2
}

// CharBitmapRect implements gui.FontMetrics.
func (a *Atlas) CharBitmapRect(id gui.FontID, size int, ch rune) gui.UVRect {
	return a.glyph(id, size, ch).uv
}

// Kerning implements gui.FontMetrics.
func (a *Atlas) Kerning(id gui.FontID, size int, ch, next rune) int {
	if next == 0 {
		return 0
	}
	f := a.face(id, size)
	if f == nil {
		return 0
	}
	return f.face.Kern(ch, next).Round()
}

var _ gui.FontMetrics = (*Atlas)(nil)

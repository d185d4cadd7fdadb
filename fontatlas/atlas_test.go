package fontatlas_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	gui "github.com/go-theft-auto/quadgui"
	"github.com/go-theft-auto/quadgui/fontatlas"
)

func newAtlas(t *testing.T, opts ...fontatlas.Option) *fontatlas.Atlas {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := fontatlas.New(append([]fontatlas.Option{fontatlas.WithLogger(logger)}, opts...)...)
	require.NoError(t, a.Load(gui.FontDefault, goregular.TTF))
	return a
}

func TestAtlasMetrics(t *testing.T) {
	a := newAtlas(t)

	ascent, descent, lineGap := a.LineMetrics(gui.FontDefault, 16)
	assert.Positive(t, ascent)
	assert.Negative(t, descent)
	assert.GreaterOrEqual(t, lineGap, 0)

	adv, lsb := a.CharAdvance(gui.FontDefault, 16, 'A')
	assert.Positive(t, adv)

	x1, y1, x2, y2 := a.CharBBox(gui.FontDefault, 16, 'A')
	assert.Equal(t, lsb, x1)
	assert.Less(t, x1, x2)
	assert.Negative(t, y1, "ink rises above the baseline")
	assert.Less(t, y1, y2)

	bigAdv, _ := a.CharAdvance(gui.FontDefault, 32, 'A')
	assert.Greater(t, bigAdv, adv)

	spaceAdv, _ := a.CharAdvance(gui.FontDefault, 16, ' ')
	assert.Positive(t, spaceAdv)
}

func TestAtlasBitmapRect(t *testing.T) {
	a := newAtlas(t)

	for _, r := range "Ag!~" {
		uv := a.CharBitmapRect(gui.FontDefault, 16, r)
		assert.Less(t, uv.U1, uv.U2, "rune %q", r)
		assert.Greater(t, uv.V1, uv.V2, "rune %q: V1 is the bottom edge", r)
		for _, f := range []float32{uv.U1, uv.V1, uv.U2, uv.V2} {
			assert.GreaterOrEqual(t, f, float32(0))
			assert.LessOrEqual(t, f, float32(1))
		}
	}
	assert.Equal(t, gui.UVRect{}, a.CharBitmapRect(gui.FontDefault, 16, ' '), "blank glyphs take no space")
}

func TestAtlasVersion(t *testing.T) {
	a := newAtlas(t, fontatlas.WithRunes([]rune("abc")))
	assert.Zero(t, a.Version())

	a.LineMetrics(gui.FontDefault, 16)
	v := a.Version()
	assert.Positive(t, v)

	a.CharAdvance(gui.FontDefault, 16, 'b')
	assert.Equal(t, v, a.Version(), "eagerly rasterized")

	a.CharAdvance(gui.FontDefault, 16, 'Z')
	assert.Greater(t, a.Version(), v)
}

func TestAtlasKerningAtEnd(t *testing.T) {
	a := newAtlas(t)
	assert.Zero(t, a.Kerning(gui.FontDefault, 16, 'A', 0))
}

func TestAtlasFallbackFont(t *testing.T) {
	a := newAtlas(t)

	ascent, descent, lineGap := a.LineMetrics(gui.FontDefault, 16)
	mAscent, mDescent, mLineGap := a.LineMetrics(gui.FontMonospace, 16)
	assert.Equal(t, ascent, mAscent)
	assert.Equal(t, descent, mDescent)
	assert.Equal(t, lineGap, mLineGap)
}

func TestAtlasWithoutFont(t *testing.T) {
	a := fontatlas.New()

	ascent, descent, lineGap := a.LineMetrics(gui.FontDefault, 16)
	assert.Zero(t, ascent)
	assert.Zero(t, descent)
	assert.Zero(t, lineGap)

	adv, lsb := a.CharAdvance(gui.FontDefault, 16, 'A')
	assert.Zero(t, adv)
	assert.Zero(t, lsb)
	assert.Equal(t, gui.UVRect{}, a.CharBitmapRect(gui.FontDefault, 16, 'A'))
	assert.Zero(t, a.Kerning(gui.FontDefault, 16, 'A', 'V'))
}

func TestAtlasLoadRejectsGarbage(t *testing.T) {
	a := fontatlas.New()
	assert.Error(t, a.Load(gui.FontDefault, []byte("not a font")))
}

func TestAtlasFull(t *testing.T) {
	a := newAtlas(t, fontatlas.WithAtlasSize(16))

	adv, _ := a.CharAdvance(gui.FontDefault, 16, 'Z')
	assert.Positive(t, adv, "metrics survive a full atlas")
	assert.Equal(t, gui.UVRect{}, a.CharBitmapRect(gui.FontDefault, 16, 'Z'))
	assert.Equal(t, 16, a.Image().Bounds().Dx())
}

func TestAtlasBreakLines(t *testing.T) {
	a := newAtlas(t)

	lines := gui.BreakLines(a, gui.FontDefault, 16, "hello world", 1000)
	require.Len(t, lines, 1)
	assert.Positive(t, lines[0].Width)
	assert.Equal(t, 1, lines[0].Spaces)

	hello := gui.BreakLines(a, gui.FontDefault, 16, "hello", 1000)
	require.Len(t, hello, 1)

	lines = gui.BreakLines(a, gui.FontDefault, 16, "hello world", hello[0].Width+4)
	require.Len(t, lines, 2)
	assert.Equal(t, 5, lines[0].Right)
	assert.Equal(t, 6, lines[1].Left)
}

func TestAtlasReloadRepacks(t *testing.T) {
	a := newAtlas(t, fontatlas.WithRunes([]rune("!")))

	before := a.CharBitmapRect(gui.FontDefault, 16, '!')
	require.NotEqual(t, before, a.CharBitmapRect(gui.FontDefault, 16, 'W'))
	v := a.Version()

	require.NoError(t, a.Load(gui.FontDefault, goregular.TTF))
	assert.Greater(t, a.Version(), v)

	// The packing cursor starts over, so the first glyph lands where it
	// did before.
	assert.Equal(t, before, a.CharBitmapRect(gui.FontDefault, 16, '!'))
}

func TestAtlasReloadKeepsOtherFaces(t *testing.T) {
	a := newAtlas(t, fontatlas.WithRunes([]rune("!")))
	require.NoError(t, a.Load(gui.FontTwo, goregular.TTF))

	a.LineMetrics(gui.FontTwo, 16)
	two := a.CharBitmapRect(gui.FontTwo, 16, '!')

	require.NoError(t, a.Load(gui.FontDefault, goregular.TTF))
	a.LineMetrics(gui.FontDefault, 16)
	assert.Equal(t, two, a.CharBitmapRect(gui.FontTwo, 16, '!'))
	assert.NotEqual(t, two, a.CharBitmapRect(gui.FontDefault, 16, '!'))
}

package gui_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gui "github.com/go-theft-auto/quadgui"
)

func TestEmitQuadWindingAndIndices(t *testing.T) {
	buf := gui.NewQuadBuffer("test", gui.GrowExact, 0, nil)
	c := gui.Corners{X1: -1, Y1: 1, X2: 0.5, Y2: -0.5}
	uv := gui.UVRect{U1: 0.25, V1: 0.75, U2: 0.5, V2: 0.5}

	require.NoError(t, gui.EmitQuad(buf, c, uv, gui.ColorWhite, gui.TexBitmap))
	require.NoError(t, gui.EmitQuad(buf, c, uv, gui.ColorWhite, gui.TexBitmap))

	require.Len(t, buf.Vertices, 8)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}, buf.Indices)

	// top-left, bottom-left, bottom-right, top-right
	wantPos := [][2]float32{{-1, 1}, {-1, -0.5}, {0.5, -0.5}, {0.5, 1}}
	wantUV := [][2]float32{{0.25, 0.5}, {0.25, 0.75}, {0.5, 0.75}, {0.5, 0.5}}
	for i := 0; i < 4; i++ {
		assert.Equal(t, wantPos[i], buf.Vertices[i].Pos, "vertex %d", i)
		assert.Equal(t, wantUV[i], buf.Vertices[i].UV, "vertex %d", i)
		assert.Equal(t, float32(gui.TexBitmap), buf.Vertices[i].Mode)
	}
}

func TestEmitQuadFlatColorIgnoresUV(t *testing.T) {
	buf := gui.NewQuadBuffer("test", gui.GrowExact, 0, nil)
	uv := gui.UVRect{U1: 0.25, V1: 0.75, U2: 0.5, V2: 0.5}

	require.NoError(t, gui.EmitQuad(buf, gui.Corners{}, uv, gui.RGBA(255, 0, 51, 255), gui.TexColor))

	wantUV := [][2]float32{{0, 1}, {0, 0}, {1, 0}, {1, 1}}
	for i, v := range buf.Vertices {
		assert.Equal(t, wantUV[i], v.UV)
		assert.Equal(t, float32(gui.TexColor), v.Mode)
		assert.InDelta(t, 1.0, v.Color[0], 1e-6)
		assert.InDelta(t, 0.0, v.Color[1], 1e-6)
		assert.InDelta(t, 0.2, v.Color[2], 1e-6)
		assert.InDelta(t, 1.0, v.Color[3], 1e-6)
	}
}

func TestEmitQuadGrowsWhenFull(t *testing.T) {
	buf := gui.NewQuadBuffer("test", gui.GrowExact, 0, nil)

	require.NoError(t, gui.EmitQuad(buf, gui.Corners{}, gui.FullUV, gui.ColorWhite, gui.TexColor))
	assert.Equal(t, 1, buf.Len())
	assert.Equal(t, 1, buf.Cap())

	require.NoError(t, gui.EmitQuad(buf, gui.Corners{}, gui.FullUV, gui.ColorWhite, gui.TexColor))
	assert.Equal(t, 2, buf.Len())
	assert.Equal(t, 2, buf.Cap())
}

func TestVertexIsNineFloats(t *testing.T) {
	assert.Equal(t, 9, gui.FloatsPerVertex)
	assert.Equal(t, uintptr(gui.FloatsPerVertex*4), unsafe.Sizeof(gui.Vertex{}))
}

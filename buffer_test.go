package gui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gui "github.com/go-theft-auto/quadgui"
)

func emitN(t *testing.T, buf *gui.QuadBuffer, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		c := gui.Corners{X1: float32(i), Y1: 1, X2: float32(i) + 1, Y2: 0}
		require.NoError(t, gui.EmitQuad(buf, c, gui.FullUV, gui.ColorRed, gui.TexColor))
	}
}

func TestQuadBufferFirstReserveIsExact(t *testing.T) {
	buf := gui.NewQuadBuffer("test", gui.GrowExact, 0, nil)
	assert.Equal(t, 0, buf.Cap())

	require.NoError(t, buf.Reserve(5))
	assert.Equal(t, 5, buf.Cap())
	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, 5*4, cap(buf.Vertices))
	assert.Equal(t, 5*6, cap(buf.Indices))
}

func TestQuadBufferGrowth(t *testing.T) {
	tests := []struct {
		name    string
		policy  gui.GrowthPolicy
		initial int
		written int
		request int
		wantCap int
	}{
		{"exact fits", gui.GrowExact, 4, 1, 2, 4},
		{"exact reaches capacity", gui.GrowExact, 4, 1, 3, 7},
		{"exact full", gui.GrowExact, 2, 2, 3, 5},
		{"doubling fits", gui.GrowDoubling, 4, 1, 2, 4},
		{"doubling full", gui.GrowDoubling, 4, 4, 1, 8},
		{"doubling large request", gui.GrowDoubling, 2, 2, 10, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := gui.NewQuadBuffer("test", tt.policy, 0, nil)
			require.NoError(t, buf.Reserve(tt.initial))
			emitN(t, buf, tt.written)

			require.NoError(t, buf.Reserve(tt.request))
			assert.Equal(t, tt.wantCap, buf.Cap())
			assert.Equal(t, tt.written, buf.Len())
			assert.LessOrEqual(t, buf.Len(), buf.Cap())
		})
	}
}

func TestQuadBufferGrowthPreservesContent(t *testing.T) {
	buf := gui.NewQuadBuffer("test", gui.GrowExact, 0, nil)
	require.NoError(t, buf.Reserve(2))
	emitN(t, buf, 2)

	vertices := append([]gui.Vertex(nil), buf.Vertices...)
	indices := append([]uint32(nil), buf.Indices...)

	require.NoError(t, buf.Reserve(10))
	assert.Equal(t, 12, buf.Cap())
	assert.Equal(t, vertices, buf.Vertices)
	assert.Equal(t, indices, buf.Indices)
}

func TestQuadBufferResetKeepsCapacity(t *testing.T) {
	buf := gui.NewQuadBuffer("test", gui.GrowExact, 0, nil)
	require.NoError(t, buf.Reserve(3))
	emitN(t, buf, 3)

	buf.Reset()
	assert.Equal(t, 0, buf.Len())
	assert.Empty(t, buf.Indices)
	assert.Equal(t, 3, buf.Cap())
}

func TestQuadBufferLimit(t *testing.T) {
	buf := gui.NewQuadBuffer("test", gui.GrowExact, 3, nil)
	err := buf.Reserve(4)
	require.ErrorIs(t, err, gui.ErrBufferLimit)
	assert.Equal(t, 0, buf.Cap())

	require.NoError(t, buf.Reserve(3))
	emitN(t, buf, 3)
	require.ErrorIs(t, buf.Reserve(1), gui.ErrBufferLimit)
	require.ErrorIs(t, gui.EmitQuad(buf, gui.Corners{}, gui.FullUV, gui.ColorRed, gui.TexColor), gui.ErrBufferLimit)
	assert.Equal(t, 3, buf.Len())
}

func TestQuadBufferDoublingClampsToLimit(t *testing.T) {
	buf := gui.NewQuadBuffer("test", gui.GrowDoubling, 6, nil)
	require.NoError(t, buf.Reserve(4))
	emitN(t, buf, 4)

	require.NoError(t, buf.Reserve(2))
	assert.Equal(t, 6, buf.Cap())
}

func TestQuadBufferClampKeepsStorage(t *testing.T) {
	buf := gui.NewQuadBuffer("test", gui.GrowExact, 4, nil)
	require.NoError(t, buf.Reserve(4))
	emitN(t, buf, 1)
	first := &buf.Vertices[0]

	require.NoError(t, buf.Reserve(3))
	assert.Equal(t, 4, buf.Cap())
	assert.Same(t, first, &buf.Vertices[0], "no reallocation at the limit")
}

func TestQuadBufferReserveNothing(t *testing.T) {
	buf := gui.NewQuadBuffer("test", gui.GrowExact, 0, nil)
	require.NoError(t, buf.Reserve(0))
	require.NoError(t, buf.Reserve(-1))
	assert.Equal(t, 0, buf.Cap())
}

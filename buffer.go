package gui

import (
	"fmt"
	"log/slog"
	"math"
)

const (
	verticesPerQuad = 4
	indicesPerQuad  = 6
)

// GrowthPolicy selects how a QuadBuffer grows when it runs out of room.
type GrowthPolicy uint8

const (
	// GrowExact allocates exactly the requested number of quads on first
	// use and grows by exactly the requested increment afterwards.
	GrowExact GrowthPolicy = iota
	// GrowDoubling at least doubles the capacity on every growth.
	GrowDoubling
)

// String returns the policy name.
func (p GrowthPolicy) String() string {
	switch p {
	case GrowExact:
		return "exact"
	case GrowDoubling:
		return "doubling"
	default:
		return "unknown"
	}
}

// QuadBuffer is a vertex buffer and its index buffer, sized in quads.
// Every quad is 4 vertices and 6 indices; Len never exceeds Cap.
//
// Vertices and Indices are handed to the renderer after a frame is built
// and must be treated as read-only until the next rebuild. Code that may
// trigger growth must address vertices by index, never by pointer.
type QuadBuffer struct {
	Vertices []Vertex // Vertex data, 4 per quad
	Indices  []uint32 // Index data, 6 per quad, triangle list

	name     string
	capacity int // in quads
	limit    int // max quads, 0 = index range only
	growth   GrowthPolicy
	logger   *slog.Logger
}

// NewQuadBuffer creates an empty buffer. Nothing is allocated until the
// first Reserve.
func NewQuadBuffer(name string, growth GrowthPolicy, limit int, logger *slog.Logger) *QuadBuffer {
	if logger == nil {
		logger = guiLogger
	}
	return &QuadBuffer{
		name:   name,
		limit:  limit,
		growth: growth,
		logger: logger,
	}
}

// Name returns the buffer name used in log records.
func (b *QuadBuffer) Name() string {
	return b.name
}

// Len returns the number of quads written since the last Reset.
func (b *QuadBuffer) Len() int {
	return len(b.Vertices) / verticesPerQuad
}

// Cap returns the number of quads the buffer can hold without growing.
func (b *QuadBuffer) Cap() int {
	return b.capacity
}

// VertexCount returns the number of vertices written.
func (b *QuadBuffer) VertexCount() int {
	return len(b.Vertices)
}

// Reset empties the buffer for a new frame.
// Retains allocated capacity to avoid reallocations.
func (b *QuadBuffer) Reset() {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
}

// Reserve guarantees room for n more quads. Content up to Len is kept.
//
// With GrowExact the first call allocates exactly n quads; later calls grow
// by exactly n whenever Len+n reaches Cap. With GrowDoubling the capacity
// grows to at least twice its size instead.
func (b *QuadBuffer) Reserve(n int) error {
	if n <= 0 {
		return nil
	}

	length := b.Len()
	var newCap int
	switch {
	case b.capacity == 0:
		newCap = n
	case length+n >= b.capacity:
		newCap = b.capacity + n
		if b.growth == GrowDoubling {
			newCap = max(2*b.capacity, length+n+1)
		}
	default:
		return nil
	}

	if b.limit > 0 && newCap > b.limit {
		// Doubling may overshoot a limit the request itself fits in.
		if length+n > b.limit {
			return fmt.Errorf("%s: reserve %d quads at %d/%d: %w", b.name, n, length, b.limit, ErrBufferLimit)
		}
		newCap = b.limit
	}
	if newCap <= b.capacity {
		return nil
	}
	if uint64(newCap)*verticesPerQuad > math.MaxUint32 {
		return fmt.Errorf("%s: %d quads overflow uint32 indices: %w", b.name, newCap, ErrBufferLimit)
	}

	b.grow(newCap)
	return nil
}

// grow reallocates both slices with room for newCap quads and copies the
// written content over.
func (b *QuadBuffer) grow(newCap int) {
	if verbose() {
		b.logger.Debug("quad buffer grow", "buffer", b.name, "from", b.capacity, "to", newCap)
	}

	vertices := make([]Vertex, len(b.Vertices), newCap*verticesPerQuad)
	copy(vertices, b.Vertices)
	indices := make([]uint32, len(b.Indices), newCap*indicesPerQuad)
	copy(indices, b.Indices)

	b.Vertices = vertices
	b.Indices = indices
	b.capacity = newCap
}

package gui

import (
	"fmt"
	"log/slog"
)

// Frame is the output of one build: a buffer pair for component quads and
// one for glyph quads. A Frame is owned by its Builder and is valid, and
// read-only, until the next Build.
type Frame struct {
	Components *QuadBuffer
	Glyphs     *QuadBuffer

	visible int
}

// Visible returns the number of components drawn in this frame.
func (f *Frame) Visible() int {
	return f.visible
}

// reset empties both buffer pairs. Capacities are retained.
func (f *Frame) reset() {
	f.Components.Reset()
	f.Glyphs.Reset()
	f.visible = 0
}

// Builder turns a component tree into a Frame once per rendered frame.
//
// A Builder is single-threaded: Build runs to completion on the calling
// goroutine and the returned Frame must not be read concurrently with the
// next Build.
type Builder struct {
	screen ScreenSpace
	fonts  FontMetrics
	frame  *Frame

	growth    GrowthPolicy
	quadLimit int
	logger    *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger. A nil logger keeps the package logger.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithGrowth sets how the frame buffers grow.
func WithGrowth(p GrowthPolicy) BuilderOption {
	return func(b *Builder) { b.growth = p }
}

// WithQuadLimit caps each buffer pair at n quads. Zero means no cap
// beyond the uint32 index range.
func WithQuadLimit(n int) BuilderOption {
	return func(b *Builder) { b.quadLimit = max(n, 0) }
}

// NewBuilder creates a Builder. fonts may be nil if no component carries
// text.
func NewBuilder(screen ScreenSpace, fonts FontMetrics, opts ...BuilderOption) *Builder {
	b := &Builder{
		screen: screen,
		fonts:  fonts,
		growth: GrowExact,
		logger: guiLogger,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.frame = &Frame{
		Components: NewQuadBuffer("components", b.growth, b.quadLimit, b.logger),
		Glyphs:     NewQuadBuffer("glyphs", b.growth, b.quadLimit, b.logger),
	}
	return b
}

// SetFonts replaces the font metrics provider.
func (b *Builder) SetFonts(fonts FontMetrics) {
	b.fonts = fonts
}

// Build rebuilds both buffer pairs from tree. Components are drawn depth
// first, so children cover their parent and later siblings cover earlier
// ones. Invisible components and their subtrees contribute nothing.
//
// On error no frame is returned; the buffers are rebuilt from scratch on
// the next call.
func (b *Builder) Build(tree *Tree) (*Frame, error) {
	if tree == nil {
		return nil, ErrNilTree
	}

	b.frame.reset()
	if err := b.buildComponent(tree, tree.Root()); err != nil {
		b.frame.reset()
		return nil, fmt.Errorf("build frame: %w", err)
	}

	if verbose() {
		b.logger.Debug("frame built",
			"visible", b.frame.visible,
			"componentQuads", b.frame.Components.Len(),
			"glyphQuads", b.frame.Glyphs.Len(),
		)
	}
	return b.frame, nil
}

// buildComponent emits the quads of h and its subtree.
func (b *Builder) buildComponent(tree *Tree, h Handle) error {
	c, err := tree.Get(h)
	if err != nil {
		return err
	}
	if !c.Visible {
		return nil
	}
	b.frame.visible++

	if err := b.frame.Components.Reserve(1); err != nil {
		return fmt.Errorf("component %s: %w", c.id, err)
	}
	corners := b.screen.PixelRectToScreen(c.Box.X, c.Box.Y, c.Box.W, c.Box.H)
	if err := EmitQuad(b.frame.Components, corners, c.UV, c.Color, c.Texture); err != nil {
		return fmt.Errorf("component %s: %w", c.id, err)
	}

	if c.Text != "" {
		if err := b.layoutText(c); err != nil {
			return fmt.Errorf("component %s text: %w", c.id, err)
		}
	}

	for _, child := range c.children {
		if err := b.buildComponent(tree, child); err != nil {
			return err
		}
	}
	return nil
}

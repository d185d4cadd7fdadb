package gui

// Renderer is the interface for drawing a built frame.
type Renderer interface {
	Render(frame *Frame) error
}

// GUI drives the per-frame cycle: update component behaviour, rebuild the
// buffers, hand them to the renderer.
type GUI struct {
	tree     *Tree
	builder  *Builder
	renderer Renderer
	frame    *Frame
}

// New creates a GUI for tree. renderer may be nil, in which case frames are
// built but not drawn.
func New(tree *Tree, builder *Builder, renderer Renderer) *GUI {
	return &GUI{
		tree:     tree,
		builder:  builder,
		renderer: renderer,
	}
}

// Tree returns the component tree.
func (g *GUI) Tree() *Tree {
	return g.tree
}

// Frame advances the GUI by dt seconds, rebuilds the buffers and renders
// them. The frame is handed to the renderer only after it is fully built.
func (g *GUI) Frame(dt float64) error {
	g.tree.Update(dt)

	frame, err := g.builder.Build(g.tree)
	if err != nil {
		g.frame = nil
		return err
	}
	g.frame = frame

	if g.renderer == nil {
		return nil
	}
	return g.renderer.Render(frame)
}

// LastFrame returns the most recently built frame, or nil if the last build
// failed. It is valid until the next call to Frame.
func (g *GUI) LastFrame() *Frame {
	return g.frame
}

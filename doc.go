/*
Package gui turns a tree of rectangular components into GPU-ready vertex
and index buffers, rebuilt from scratch every frame.

# Overview

Each frame the Builder walks the component Tree depth first. Every visible
component contributes one background quad to the component buffer pair;
components carrying text are word-wrapped into their box and contribute one
glyph quad per visible character to the glyph buffer pair. Children are
drawn after their parent, so they appear on top. Invisible components hide
their whole subtree.

Nothing is cached between frames. Buffers keep their capacity, so a stable
scene stops allocating after the first few frames.

# Quick Start

	atlas := fontatlas.New()
	atlas.Load(gui.FontDefault, goregular.TTF)

	viewport := gui.NewViewport(800, 600)
	tree := gui.NewTree(gui.Box{W: 800, H: 600})

	label := tree.Create(gui.Box{X: 50, Y: 50, W: 200, H: 100}, gui.KindTextBox)
	tree.MustGet(label).Text = "Hello World"
	tree.Attach(tree.Root(), label)

	renderer, _ := opengl.NewRenderer(atlas)
	ui := gui.New(tree, gui.NewBuilder(viewport, atlas), renderer)

	// Game loop
	for !window.ShouldClose() {
	    ui.Frame(deltaTime)
	    window.SwapBuffers()
	}

# Coordinates

Component boxes are in integer pixels with the origin at the bottom-left of
the framebuffer. A ScreenSpace (usually a Viewport) converts them to
normalized device coordinates when quads are emitted. Text lines grow
downward from the top of the box.

# Vertex Format

A Vertex is 9 float32 values: position (2), uv (2), rgba (4) and a
texture mode. TexColor vertices sample a 1x1 white texture, TexBitmap
vertices the glyph atlas, so one shader draws both buffer pairs. Indices
are uint32, forming a triangle list with two triangles per quad.

# Text Layout

Lines break greedily at the last space that fits the box width. A word
wider than the box is split between characters; a single character wider
than the box is put on its own line. Explicit newlines end a line, and
whitespace at the start of a line is skipped.

Horizontal alignment offsets each line by HAlign * (boxWidth - lineWidth) / 2.
AlignJustify lays lines out from the left and spreads the remaining width
over the line's spaces; lines without spaces stay left aligned. Vertical
alignment shifts the finished block down by VAlign * (boxHeight - textHeight) / 2.

# Logging

The package logs through log/slog to stderr. Debug records (buffer growth,
frame summaries) are enabled with SetVerbose(true); a Builder can be given
its own logger with WithLogger.
*/
package gui

// Example reproduces a small scene: a debug overlay, a clickable text box
// and a second box that the first one recolours on click.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/font/gofont/goregular"

	gui "github.com/go-theft-auto/quadgui"
	"github.com/go-theft-auto/quadgui/backend/opengl"
	"github.com/go-theft-auto/quadgui/fontatlas"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "gui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()
	gui.SetVerbose(*verbose)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	atlas := fontatlas.New()
	if err := atlas.Load(gui.FontDefault, goregular.TTF); err != nil {
		return err
	}

	renderer, err := opengl.NewRenderer(atlas)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	viewport := gui.NewViewport(window.GetFramebufferSize())
	tree, err := buildScene(viewport)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	opengl.NewGLFWAdapter(window, tree, viewport)

	ui := gui.New(tree, gui.NewBuilder(viewport, atlas), renderer)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := now - last
		last = now

		w, h := viewport.Size()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := ui.Frame(dt); err != nil {
			return fmt.Errorf("gui frame: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

func buildScene(viewport *gui.Viewport) (*gui.Tree, error) {
	xres, yres := viewport.Size()
	tree := gui.NewTree(gui.Box{W: xres, H: yres})
	root := tree.Root()

	debug := tree.Create(gui.Box{X: 0, Y: yres - 75, W: 150, H: 75}, gui.KindDebug)

	clickMe := tree.Create(gui.Box{X: 50, Y: 50, W: 100, H: 100}, gui.KindTextBox)
	c := tree.MustGet(clickMe)
	c.Color = gui.ColorGreen
	c.HAlign, c.VAlign = gui.AlignCenter, gui.AlignTop
	c.Clickable = true
	c.Hoverable = true
	c.Text = "Click Me!"

	target := tree.Create(gui.Box{X: 150, Y: 150, W: 250, H: 250}, gui.KindTextBox)
	t := tree.MustGet(target)
	t.Color = gui.ColorMagenta
	t.HAlign, t.VAlign = gui.AlignJustify, gui.AlignMiddle
	t.Text = "Click the green box to give this one a new colour."

	for _, h := range []gui.Handle{debug, clickMe, target} {
		if err := tree.Attach(root, h); err != nil {
			return nil, err
		}
	}
	if err := tree.SetReference(clickMe, target); err != nil {
		return nil, err
	}
	return tree, nil
}

package opengl

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/quadgui"
)

// GLFWAdapter connects a GLFW window to a gui tree and viewport: it keeps
// the viewport in sync with the framebuffer size and hit-tests the cursor
// to deliver hover and click events. Hover reaches every hoverable
// component, hidden or not; clicks only reach visible ones.
type GLFWAdapter struct {
	window   *glfw.Window
	tree     *gui.Tree
	viewport *gui.Viewport
	logger   *slog.Logger
}

// NewGLFWAdapter creates an adapter and installs its window callbacks.
func NewGLFWAdapter(window *glfw.Window, tree *gui.Tree, viewport *gui.Viewport) *GLFWAdapter {
	a := &GLFWAdapter{
		window:   window,
		tree:     tree,
		viewport: viewport,
		logger:   gui.Logger(),
	}

	viewport.Resize(window.GetFramebufferSize())

	window.SetFramebufferSizeCallback(a.framebufferSizeCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)

	return a
}

func (a *GLFWAdapter) framebufferSizeCallback(w *glfw.Window, width, height int) {
	a.viewport.Resize(width, height)
}

func (a *GLFWAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	x, y := a.cursorPixel(xpos, ypos)
	a.tree.WalkAll(func(h gui.Handle, c *gui.Component) bool {
		if c.Hoverable {
			if err := a.tree.Hover(h, c.Box.Contains(x, y)); err != nil {
				a.logger.Debug("hover", "handle", h, "err", err)
			}
		}
		return true
	})
}

func (a *GLFWAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	guiButton, ok := glfwMouseButtonToGUI(button)
	if !ok || action == glfw.Repeat {
		return
	}

	x, y := a.cursorPixel(a.window.GetCursorPos())
	var hits []gui.Handle
	a.tree.Walk(func(h gui.Handle, c *gui.Component) bool {
		if c.Clickable && c.Box.Contains(x, y) {
			hits = append(hits, h)
		}
		return true
	})
	// Click behaviour may restyle other components; collect first.
	for _, h := range hits {
		if err := a.tree.Click(h, guiButton, action == glfw.Press); err != nil {
			a.logger.Debug("click", "handle", h, "err", err)
		}
	}
}

// cursorPixel maps window coordinates to framebuffer pixels, accounting
// for HiDPI scaling.
func (a *GLFWAdapter) cursorPixel(xpos, ypos float64) (int, int) {
	ww, wh := a.window.GetSize()
	fw, fh := a.viewport.Size()
	if ww > 0 && wh > 0 {
		xpos *= float64(fw) / float64(ww)
		ypos *= float64(fh) / float64(wh)
	}
	return a.viewport.ScreenToPixel(xpos, ypos)
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) (gui.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle, true
	default:
		return 0, false
	}
}

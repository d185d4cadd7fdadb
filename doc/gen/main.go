// Command gen renders one text box per alignment mode, captures framebuffer
// pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/font/gofont/goregular"

	gui "github.com/go-theft-auto/quadgui"
	"github.com/go-theft-auto/quadgui/backend/opengl"
	"github.com/go-theft-auto/quadgui/fontatlas"
)

const sample = "The quick brown fox jumps over the lazy dog. Pack my box with five dozen liquor jugs."

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single text box screenshot to capture.
type screenshot struct {
	name   string // filename without extension
	width  int    // viewport width
	height int    // viewport height
	halign gui.HAlign
	valign gui.VAlign
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
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

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

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, atlas, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, atlas *fontatlas.Atlas, s screenshot, outDir string) error {
	// The hidden window stays at 800x600 (larger than every screenshot);
	// only the viewport follows the screenshot size.
	viewport := gui.NewViewport(s.width, s.height)

	tree := gui.NewTree(gui.Box{W: s.width, H: s.height})
	box := tree.Create(gui.Box{X: 20, Y: 20, W: s.width - 40, H: s.height - 40}, gui.KindTextBox)
	c := tree.MustGet(box)
	c.Color = gui.RGBA(230, 230, 220, 255)
	c.Text = sample
	c.FontSize = 20
	c.HAlign = s.halign
	c.VAlign = s.valign
	if err := tree.Attach(tree.Root(), box); err != nil {
		return err
	}

	ui := gui.New(tree, gui.NewBuilder(viewport, atlas), renderer)

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := ui.Frame(1.0 / 60.0); err != nil {
		return err
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns one screenshot per alignment combination.
func buildScreenshots() []screenshot {
	var shots []screenshot
	for _, ha := range []gui.HAlign{gui.AlignLeft, gui.AlignCenter, gui.AlignRight, gui.AlignJustify} {
		for _, va := range []gui.VAlign{gui.AlignTop, gui.AlignMiddle, gui.AlignBottom} {
			shots = append(shots, screenshot{
				name:   fmt.Sprintf("text_%s_%s", ha, va),
				width:  320,
				height: 240,
				halign: ha,
				valign: va,
			})
		}
	}
	return shots
}

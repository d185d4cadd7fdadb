package gui

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind identifies the behaviour variant of a component.
type Kind uint8

const (
	KindDefault Kind = iota // Plain rectangle, no behaviour
	KindTextBox             // Text, hover highlight, click recolours a referenced component
	KindDebug               // Shows frame timing
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindTextBox:
		return "textbox"
	case KindDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// TextBox colours.
var (
	textBoxColor        = ColorGreen
	textBoxHoveredColor = ColorCyan
)

// debugRefresh is how often, in seconds, a debug component refreshes its text.
const debugRefresh = 0.5

// Component is one rectangle of the tree. Exported fields are plain
// properties; the tree owns structure (parent, children, references).
type Component struct {
	Box       Box
	Color     Color       // Background colour
	Texture   TextureMode // Background texture mode
	UV        UVRect      // Background atlas region, used with TexBitmap
	TextColor Color

	Text     string
	Font     FontID
	FontSize int
	HAlign   HAlign
	VAlign   VAlign

	Visible   bool
	Hoverable bool
	Clickable bool

	id       uuid.UUID
	kind     Kind
	parent   Handle
	children []Handle
	hovered  bool

	// KindTextBox
	ref Handle

	// KindDebug
	elapsed float64
	frames  int
}

// ID returns the component's stable identifier.
func (c *Component) ID() uuid.UUID { return c.id }

// Kind returns the component's behaviour variant.
func (c *Component) Kind() Kind { return c.kind }

// Parent returns the parent handle, the zero Handle for the root.
func (c *Component) Parent() Handle { return c.parent }

// Children returns the child handles in draw order.
func (c *Component) Children() []Handle { return c.children }

// Hovered reports whether the cursor is over a hoverable component.
func (c *Component) Hovered() bool { return c.hovered }

// Reference returns the component a TextBox acts on when clicked.
func (c *Component) Reference() Handle { return c.ref }

// init sets the defaults of a freshly created component of kind k.
func (c *Component) init(k Kind, box Box) {
	*c = Component{
		Box:       box,
		Color:     ColorWhite,
		Texture:   TexColor,
		UV:        FullUV,
		TextColor: ColorBlack,
		Visible:   true,
		FontSize:  16,
		id:        uuid.New(),
		kind:      k,
	}

	switch k {
	case KindTextBox:
		c.HAlign = AlignLeft
		c.VAlign = AlignTop
		c.FontSize = 24
	case KindDebug:
		c.Color = RGBA(0, 0, 0, 160)
		c.TextColor = ColorWhite
		c.Text = "fps: -"
	}
}

// update advances per-frame behaviour by dt seconds.
func (t *Tree) update(c *Component, dt float64) {
	switch c.kind {
	case KindDebug:
		c.elapsed += dt
		c.frames++
		if c.elapsed >= debugRefresh {
			c.Text = fmt.Sprintf("fps: %.0f\nms: %.2f", float64(c.frames)/c.elapsed, 1000*c.elapsed/float64(c.frames))
			c.elapsed, c.frames = 0, 0
		}
	}
}

// hover applies the hover behaviour of c.
func (t *Tree) hover(c *Component, on bool) {
	switch c.kind {
	case KindTextBox:
		if c.hovered && !on {
			c.hovered = false
			c.Color = textBoxColor
		} else if !c.hovered && on {
			c.hovered = true
			c.Color = textBoxHoveredColor
		}
	default:
		c.hovered = on
	}
}

// click applies the click behaviour of c.
func (t *Tree) click(c *Component, button MouseButton, pressed bool) {
	switch c.kind {
	case KindTextBox:
		if button != MouseButtonLeft || !pressed || c.ref == (Handle{}) {
			return
		}
		target, err := t.Get(c.ref)
		if err != nil {
			t.logger.Warn("textbox reference is gone", "component", c.id, "err", err)
			return
		}
		target.Color = RGBA(uint8(t.rng.IntN(256)), uint8(t.rng.IntN(256)), uint8(t.rng.IntN(256)), 255)
	}
}

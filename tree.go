package gui

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Handle refers to a component of a Tree. The zero Handle refers to
// nothing. A handle goes stale when its component is destroyed; stale
// handles are rejected rather than resolved to a reused slot.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.gen == 0 }

// String returns the handle as "index:generation".
func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.index, h.gen)
}

type slot struct {
	gen  uint32
	live bool
	comp Component
}

// Tree is an arena of components. Each component owns its children;
// references between components (see SetReference) are plain handles.
//
// Tree is not safe for concurrent use. It is read by the Builder once per
// frame on the thread that drives the frame loop.
type Tree struct {
	slots []*slot
	free  []uint32
	byID  map[uuid.UUID]Handle
	root  Handle

	rng    *rand.Rand
	logger *slog.Logger
}

// TreeOption configures a Tree.
type TreeOption func(*Tree)

// WithTreeLogger sets the logger for component behaviour warnings.
func WithTreeLogger(l *slog.Logger) TreeOption {
	return func(t *Tree) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithSeed seeds the random source used by component behaviour.
func WithSeed(seed uint64) TreeOption {
	return func(t *Tree) { t.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// NewTree creates a tree whose root covers box. The root is transparent
// and not hoverable.
func NewTree(box Box, opts ...TreeOption) *Tree {
	t := &Tree{
		byID:   make(map[uuid.UUID]Handle),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger: guiLogger,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.root = t.Create(box, KindDefault)
	root := t.slots[t.root.index]
	root.comp.Color = ColorTransparent
	return t
}

// Root returns the root handle.
func (t *Tree) Root() Handle {
	return t.root
}

// Len returns the number of live components.
func (t *Tree) Len() int {
	return len(t.byID)
}

// Create adds an unattached component of kind k and returns its handle.
func (t *Tree) Create(box Box, k Kind) Handle {
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = uint32(len(t.slots))
		t.slots = append(t.slots, &slot{})
	}

	s := t.slots[idx]
	s.gen++
	s.live = true
	s.comp.init(k, box)

	h := Handle{index: idx, gen: s.gen}
	t.byID[s.comp.id] = h
	return h
}

// Get returns the component h refers to. The pointer stays valid until the
// component is destroyed.
func (t *Tree) Get(h Handle) (*Component, error) {
	if h.IsZero() || int(h.index) >= len(t.slots) {
		return nil, fmt.Errorf("handle %s: %w", h, ErrInvalidHandle)
	}
	s := t.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, fmt.Errorf("handle %s is stale: %w", h, ErrInvalidHandle)
	}
	return &s.comp, nil
}

// MustGet is like Get but panics on an invalid handle. It is meant for
// scene setup code where handles come straight from Create.
func (t *Tree) MustGet(h Handle) *Component {
	c, err := t.Get(h)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the handle of the component with the given ID.
func (t *Tree) Lookup(id uuid.UUID) (Handle, bool) {
	h, ok := t.byID[id]
	return h, ok
}

// Attach appends child to parent's children. A child that already has a
// parent is moved.
func (t *Tree) Attach(parent, child Handle) error {
	p, err := t.Get(parent)
	if err != nil {
		return fmt.Errorf("attach: parent: %w", err)
	}
	c, err := t.Get(child)
	if err != nil {
		return fmt.Errorf("attach: child: %w", err)
	}
	if child == t.root {
		return fmt.Errorf("attach: root cannot be a child: %w", ErrInvalidHandle)
	}
	for a := parent; !a.IsZero(); a = t.slots[a.index].comp.parent {
		if a == child {
			return fmt.Errorf("attach: %s is an ancestor of %s: %w", child, parent, ErrInvalidHandle)
		}
	}

	if !c.parent.IsZero() {
		t.unlink(c.parent, child)
	}
	c.parent = parent
	p.children = append(p.children, child)
	return nil
}

// unlink removes child from parent's children.
func (t *Tree) unlink(parent, child Handle) {
	p, err := t.Get(parent)
	if err != nil {
		return
	}
	for i, h := range p.children {
		if h == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			return
		}
	}
}

// Destroy removes h and its whole subtree. Handles to removed components,
// including references held by other components, become stale.
func (t *Tree) Destroy(h Handle) error {
	c, err := t.Get(h)
	if err != nil {
		return fmt.Errorf("destroy: %w", err)
	}
	if h == t.root {
		return fmt.Errorf("destroy: root: %w", ErrInvalidHandle)
	}
	if !c.parent.IsZero() {
		t.unlink(c.parent, h)
	}
	t.release(h)
	return nil
}

// release frees h and its descendants.
func (t *Tree) release(h Handle) {
	s := t.slots[h.index]
	for _, child := range s.comp.children {
		t.release(child)
	}
	delete(t.byID, s.comp.id)
	s.live = false
	s.comp = Component{}
	t.free = append(t.free, h.index)
}

// SetReference makes the TextBox h act on ref when clicked.
func (t *Tree) SetReference(h, ref Handle) error {
	c, err := t.Get(h)
	if err != nil {
		return fmt.Errorf("set reference: %w", err)
	}
	if c.kind != KindTextBox {
		return fmt.Errorf("set reference: %s is a %s component, not a textbox", h, c.kind)
	}
	if _, err := t.Get(ref); err != nil {
		return fmt.Errorf("set reference: target: %w", err)
	}
	c.ref = ref
	return nil
}

// Walk visits visible components depth first, parents before children and
// siblings in order. Invisible components and their subtrees are skipped.
// Walk stops early when fn returns false.
func (t *Tree) Walk(fn func(h Handle, c *Component) bool) {
	t.walk(t.root, fn)
}

func (t *Tree) walk(h Handle, fn func(Handle, *Component) bool) bool {
	c, err := t.Get(h)
	if err != nil || !c.Visible {
		return true
	}
	if !fn(h, c) {
		return false
	}
	for _, child := range c.children {
		if !t.walk(child, fn) {
			return false
		}
	}
	return true
}

// WalkAll is like Walk but also visits invisible components and their
// subtrees.
func (t *Tree) WalkAll(fn func(h Handle, c *Component) bool) {
	t.walkAll(t.root, fn)
}

func (t *Tree) walkAll(h Handle, fn func(Handle, *Component) bool) bool {
	c, err := t.Get(h)
	if err != nil {
		return true
	}
	if !fn(h, c) {
		return false
	}
	for _, child := range c.children {
		if !t.walkAll(child, fn) {
			return false
		}
	}
	return true
}

// Update advances per-frame behaviour of all visible components.
func (t *Tree) Update(dt float64) {
	t.Walk(func(_ Handle, c *Component) bool {
		t.update(c, dt)
		return true
	})
}

// Hover tells a hoverable component whether the cursor is over it.
func (t *Tree) Hover(h Handle, on bool) error {
	c, err := t.Get(h)
	if err != nil {
		return fmt.Errorf("hover: %w", err)
	}
	if c.Hoverable {
		t.hover(c, on)
	}
	return nil
}

// Click delivers a mouse button event to a clickable component.
func (t *Tree) Click(h Handle, button MouseButton, pressed bool) error {
	c, err := t.Get(h)
	if err != nil {
		return fmt.Errorf("click: %w", err)
	}
	if c.Clickable {
		t.click(c, button, pressed)
	}
	return nil
}

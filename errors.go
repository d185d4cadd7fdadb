package gui

import "errors"

// Sentinel errors for the gui package.
var (
	// ErrBufferLimit is returned when a quad buffer would have to grow past
	// its configured limit or past the range of uint32 indices.
	ErrBufferLimit = errors.New("gui: quad buffer limit exceeded")

	// ErrNoFont is returned when a text component is built without a
	// font metrics provider.
	ErrNoFont = errors.New("gui: no font metrics provider")

	// ErrInvalidHandle is returned for a handle that does not refer to a
	// live component of the tree.
	ErrInvalidHandle = errors.New("gui: invalid component handle")

	// ErrNilTree is returned when building a frame without a tree.
	ErrNilTree = errors.New("gui: nil tree")
)

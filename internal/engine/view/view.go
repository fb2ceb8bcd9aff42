package view

import (
	"github.com/dshills/countjump/internal/engine/buffer"
)

// Viewport is a snapshot of the visible state: cursor position and the
// first visible line. Saving and restoring a Viewport brackets any
// operation that must leave no trace on failure.
type Viewport struct {
	Cursor buffer.Position
	Top    int
}

// View owns the cursor and presentation state for a single buffer.
// It is not safe for concurrent use; the host serializes all editing
// commands onto one goroutine.
type View struct {
	buf    *buffer.Buffer
	cursor buffer.Position
	top    int

	sel        Selection
	selActive  bool
	lastSel    Selection
	hasLastSel bool

	folds []Fold

	// wrapDepth counts outstanding caret-wrap acquisitions. While
	// positive, single-step cursor movement may cross line boundaries.
	wrapDepth int

	jumps []JumpEntry
}

// New creates a view over the given buffer with the cursor at (1,1).
func New(buf *buffer.Buffer) *View {
	return &View{
		buf:    buf,
		cursor: buffer.Position{Line: 1, Col: 1},
		top:    1,
	}
}

// Buffer returns the underlying buffer.
func (v *View) Buffer() *buffer.Buffer {
	return v.buf
}

// Cursor returns the current cursor position.
func (v *View) Cursor() buffer.Position {
	return v.cursor
}

// SetCursor moves the cursor, clamping to a valid buffer location.
// Setting the sentinel position is ignored.
func (v *View) SetCursor(p buffer.Position) {
	if p.IsNone() {
		return
	}
	v.cursor = v.buf.Clamp(p)
	v.scrollIntoView()
}

// Top returns the first visible line.
func (v *View) Top() int {
	return v.top
}

// SetTop sets the first visible line, clamped to the buffer.
func (v *View) SetTop(line int) {
	if line < 1 {
		line = 1
	}
	if max := v.buf.LineCount(); line > max {
		line = max
	}
	v.top = line
}

// scrollIntoView keeps the scroll top at or above the cursor line.
// Fine-grained scrolling belongs to the renderer; the view only
// guarantees the cursor is not above the visible window.
func (v *View) scrollIntoView() {
	if v.cursor.Line < v.top {
		v.top = v.cursor.Line
	}
}

// SaveView captures the cursor and scroll position.
func (v *View) SaveView() Viewport {
	return Viewport{Cursor: v.cursor, Top: v.top}
}

// RestoreView restores a previously saved cursor and scroll position.
func (v *View) RestoreView(vp Viewport) {
	if !vp.Cursor.IsNone() {
		v.cursor = v.buf.Clamp(vp.Cursor)
	}
	v.SetTop(vp.Top)
}

// AcquireCaretWrap temporarily permits single-step cursor movement to
// cross line boundaries. The returned release function restores the
// prior state and is safe to call more than once; callers defer it so
// the capability never leaks past the operation that needed it.
func (v *View) AcquireCaretWrap() (release func()) {
	v.wrapDepth++
	released := false
	return func() {
		if !released {
			released = true
			v.wrapDepth--
		}
	}
}

// CaretWrapEnabled returns true while a caret-wrap acquisition is held.
func (v *View) CaretWrapEnabled() bool {
	return v.wrapDepth > 0
}

package view

import (
	"github.com/dshills/countjump/internal/engine/buffer"
)

// Kind indicates the granularity of a selection.
type Kind uint8

const (
	// Charwise selects character by character.
	Charwise Kind = iota

	// Linewise selects whole lines.
	Linewise

	// Blockwise selects a rectangular block.
	Blockwise
)

// String returns a string representation of the selection kind.
func (k Kind) String() string {
	switch k {
	case Charwise:
		return "charwise"
	case Linewise:
		return "linewise"
	case Blockwise:
		return "blockwise"
	default:
		return "unknown"
	}
}

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the moving end, which
// follows the cursor. Anchor may come after Head for backward selections.
type Selection struct {
	Anchor buffer.Position
	Head   buffer.Position
	Kind   Kind
}

// Start returns the earlier of Anchor and Head.
func (s Selection) Start() buffer.Position {
	if s.Anchor.After(s.Head) {
		return s.Head
	}
	return s.Anchor
}

// End returns the later of Anchor and Head.
func (s Selection) End() buffer.Position {
	if s.Anchor.After(s.Head) {
		return s.Anchor
	}
	return s.Head
}

// StartSelection begins a selection of the given kind anchored at the
// current cursor position.
func (v *View) StartSelection(kind Kind) {
	v.sel = Selection{Anchor: v.cursor, Head: v.cursor, Kind: kind}
	v.selActive = true
}

// ExtendSelectionTo moves the selection head (and the cursor) to p.
// Without an active selection this is just a cursor move.
func (v *View) ExtendSelectionTo(p buffer.Position) {
	v.SetCursor(p)
	if v.selActive {
		v.sel.Head = v.cursor
	}
}

// Selection returns the active selection, if any.
func (v *View) Selection() (Selection, bool) {
	return v.sel, v.selActive
}

// LeaveSelection deactivates the selection, remembering it so a later
// ReenterSelection can restore it unchanged.
func (v *View) LeaveSelection() {
	if !v.selActive {
		return
	}
	v.lastSel = v.sel
	v.hasLastSel = true
	v.selActive = false
}

// ReenterSelection reactivates the most recently left selection and
// moves the cursor to its head. Returns false if there is none.
func (v *View) ReenterSelection() bool {
	if v.selActive {
		return true
	}
	if !v.hasLastSel {
		return false
	}
	v.sel = v.lastSel
	v.selActive = true
	v.cursor = v.buf.Clamp(v.sel.Head)
	return true
}

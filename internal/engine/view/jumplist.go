package view

import (
	"github.com/google/uuid"

	"github.com/dshills/countjump/internal/engine/buffer"
)

// JumpEntry records an origin position in the back-navigation history.
type JumpEntry struct {
	// ID uniquely identifies the entry for host-side bookkeeping
	// (marks, session persistence).
	ID string

	// Origin is the cursor position before the jump.
	Origin buffer.Position
}

// PushJump records the given origin on the back-navigation stack and
// returns the created entry.
func (v *View) PushJump(origin buffer.Position) JumpEntry {
	entry := JumpEntry{ID: uuid.NewString(), Origin: origin}
	v.jumps = append(v.jumps, entry)
	return entry
}

// PopJump removes and returns the most recently pushed origin.
// Each pushed origin is retrievable exactly once.
func (v *View) PopJump() (buffer.Position, bool) {
	if len(v.jumps) == 0 {
		return buffer.None, false
	}
	entry := v.jumps[len(v.jumps)-1]
	v.jumps = v.jumps[:len(v.jumps)-1]
	return entry.Origin, true
}

// JumpDepth returns the number of recorded origins.
func (v *View) JumpDepth() int {
	return len(v.jumps)
}

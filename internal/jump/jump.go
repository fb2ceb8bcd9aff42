package jump

import (
	"errors"

	"github.com/dshills/countjump/internal/bell"
	"github.com/dshills/countjump/internal/engine/buffer"
	"github.com/dshills/countjump/internal/engine/view"
	"github.com/dshills/countjump/internal/search"
)

// ErrNoMatch indicates a scan exhausted the buffer before satisfying
// its count. Reported alongside the sentinel position by callers that
// surface errors.
var ErrNoMatch = errors.New("no match")

// LocateFunc finds the count-th target position relative to the
// cursor of v. It must return the sentinel position on failure and be
// free of cursor side effects when it does.
type LocateFunc func(v *view.View, count int) buffer.Position

// Jumper drives counted searches and commits their results.
type Jumper struct {
	bell bell.Ringer
}

// New creates a Jumper that raises failures on the given ringer.
// A nil ringer falls back to the silent bell.
func New(r bell.Ringer) *Jumper {
	if r == nil {
		r = bell.Null{}
	}
	return &Jumper{bell: r}
}

// CountSearch repeats the positioned search count times from the
// current cursor and commits the cursor to the final match.
//
// The motion is all-or-nothing: if any iteration misses, the view is
// restored to its pre-search state, the bell rings once, and the
// sentinel is returned. The accept-match-at-cursor modifier applies
// only to the first iteration; later iterations would otherwise stall
// on the same match. On success any fold hiding the target is opened.
func (j *Jumper) CountSearch(v *view.View, count int, pat search.Pattern, flags search.Flags) buffer.Position {
	pos := j.countSearch(v, count, pat, flags)
	if pos.IsNone() {
		j.bell.Ring()
	}
	return pos
}

// countSearch is CountSearch without the bell, for composition under
// Commit (which rings for its locate function).
func (j *Jumper) countSearch(v *view.View, count int, pat search.Pattern, flags search.Flags) buffer.Position {
	if count < 1 {
		count = 1
	}
	saved := v.SaveView()

	var pos buffer.Position
	f := flags
	for i := 0; i < count; i++ {
		if i > 0 {
			f.AcceptAtCursor = false
		}
		pos = search.Find(v, pat, f)
		if pos.IsNone() {
			v.RestoreView(saved)
			return buffer.None
		}
		v.SetCursor(pos)
	}

	v.OpenFoldsAt(pos)
	return pos
}

// SearchLocator adapts a counted pattern search into a LocateFunc.
// The returned locator is silent on failure; Commit owns the bell.
func (j *Jumper) SearchLocator(pat search.Pattern, flags search.Flags) LocateFunc {
	return func(v *view.View, count int) buffer.Position {
		return j.countSearch(v, count, pat, flags)
	}
}

// Commit runs locate and, on success, commits the result as the new
// cursor position: the origin is pushed onto the back-navigation
// history, visual mode extends the re-entered selection, and
// operator-pending-to-end nudges one character past the target
// (crossing the line end under a scoped caret-wrap acquisition).
//
// On failure the view is restored, the bell rings once, and the
// sentinel is returned.
func (j *Jumper) Commit(v *view.View, mode Mode, locate LocateFunc, count int) buffer.Position {
	if count < 1 {
		count = 1
	}
	saved := v.SaveView()
	origin := v.Cursor()

	if mode == ModeVisual {
		v.ReenterSelection()
	}

	pos := locate(v, count)
	if pos.IsNone() {
		v.RestoreView(saved)
		j.bell.Ring()
		return buffer.None
	}

	v.PushJump(origin)
	if mode == ModeVisual {
		v.ExtendSelectionTo(pos)
	} else {
		v.SetCursor(pos)
	}

	if mode == ModeOperatorPendingToEnd {
		release := v.AcquireCaretWrap()
		defer release()
		v.SetCursor(v.StepForward(v.Cursor()))
	}

	return v.Cursor()
}

// JumpBack pops the most recent origin off the back-navigation
// history and moves the cursor there. Returns the sentinel (and rings)
// when the history is empty.
func (j *Jumper) JumpBack(v *view.View) buffer.Position {
	origin, ok := v.PopJump()
	if !ok {
		j.bell.Ring()
		return buffer.None
	}
	v.SetCursor(origin)
	return v.Cursor()
}

package textobj

import (
	"errors"

	"github.com/dshills/countjump/internal/bell"
	"github.com/dshills/countjump/internal/engine/buffer"
	"github.com/dshills/countjump/internal/engine/view"
	"github.com/dshills/countjump/internal/jump"
)

// ErrNotEnclosed indicates the located span does not contain the
// cursor: the end boundary came out before the position the selection
// was requested from.
var ErrNotEnclosed = errors.New("span does not enclose cursor")

// Variant selects between the inner and around forms of a text object.
type Variant uint8

const (
	// Inner excludes the delimiting boundaries from the selection.
	Inner Variant = iota

	// Around includes the delimiting boundaries.
	Around
)

// String returns a string representation of the variant.
func (va Variant) String() string {
	switch va {
	case Inner:
		return "inner"
	case Around:
		return "around"
	default:
		return "unknown"
	}
}

// SpanBuilder produces selections delimited by a begin and an end
// boundary. The begin locator scans backward for the enclosing span's
// opening boundary; the end locator scans forward for its close.
type SpanBuilder struct {
	begin jump.LocateFunc
	end   jump.LocateFunc
	kind  view.Kind
	bell  bell.Ringer
}

// NewSpanBuilder creates a span builder. A nil ringer falls back to
// the silent bell.
func NewSpanBuilder(begin, end jump.LocateFunc, kind view.Kind, ringer bell.Ringer) *SpanBuilder {
	if ringer == nil {
		ringer = bell.Null{}
	}
	return &SpanBuilder{begin: begin, end: end, kind: kind, bell: ringer}
}

// Select carves out the span enclosing the cursor and activates it as
// the view's selection.
//
// The begin locator always runs with count 1: a text object selects
// the span enclosing the cursor, not an earlier one. The user count is
// passed to the end locator, extending the selection across further
// spans. Both locators start from the original cursor position.
//
// On any failure the view is restored, the bell rings, and in visual
// mode only the prior selection is re-entered unchanged. An
// operator-pending failure must leave no selection at all, or the
// operator would apply to a stale range.
func (b *SpanBuilder) Select(v *view.View, mode jump.Mode, variant Variant, count int) (view.Selection, error) {
	if count < 1 {
		count = 1
	}
	saved := v.SaveView()
	origin := v.Cursor()

	fail := func(err error) (view.Selection, error) {
		v.RestoreView(saved)
		if mode == jump.ModeVisual {
			v.ReenterSelection()
		}
		b.bell.Ring()
		return view.Selection{}, err
	}

	begin := b.begin(v, 1)
	if begin.IsNone() {
		return fail(jump.ErrNoMatch)
	}

	v.SetCursor(origin)
	end := b.end(v, count)
	if end.IsNone() {
		return fail(jump.ErrNoMatch)
	}
	if end.Before(origin) {
		return fail(ErrNotEnclosed)
	}

	if variant == Inner {
		begin, end = b.shrink(v, begin, end)
		if begin.IsNone() || end.IsNone() || begin.After(end) {
			return fail(ErrNotEnclosed)
		}
	}

	v.LeaveSelection()
	v.SetCursor(begin)
	v.StartSelection(b.kind)
	v.ExtendSelectionTo(end)

	sel, _ := v.Selection()
	return sel, nil
}

// shrink nudges both boundaries one step inward for the inner variant:
// one grapheme for charwise spans (crossing line ends under a scoped
// caret-wrap acquisition), one line for linewise spans.
func (b *SpanBuilder) shrink(v *view.View, begin, end buffer.Position) (buffer.Position, buffer.Position) {
	if b.kind == view.Linewise {
		if begin.Line+1 > end.Line-1 {
			return buffer.None, buffer.None
		}
		endLine := end.Line - 1
		col := v.Buffer().LineLen(endLine)
		if col < 1 {
			col = 1
		}
		return buffer.Position{Line: begin.Line + 1, Col: 1},
			buffer.Position{Line: endLine, Col: col}
	}

	release := v.AcquireCaretWrap()
	defer release()
	return v.StepForward(begin), v.StepBackward(end)
}

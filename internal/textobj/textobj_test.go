package textobj

import (
	"testing"

	"github.com/dshills/countjump/internal/bell"
	"github.com/dshills/countjump/internal/engine/buffer"
	"github.com/dshills/countjump/internal/engine/view"
	"github.com/dshills/countjump/internal/jump"
	"github.com/dshills/countjump/internal/search"
)

func viewAt(line, col int, lines ...string) *view.View {
	v := view.New(buffer.FromLines(lines))
	v.SetCursor(buffer.Position{Line: line, Col: col})
	return v
}

// parenBuilder selects spans delimited by ( and ).
func parenBuilder(kind view.Kind, ringer bell.Ringer, wrapEnd bool) *SpanBuilder {
	j := jump.New(nil)
	begin := j.SearchLocator(search.MustPattern(`\(`, true), search.Flags{AcceptAtCursor: true})
	end := j.SearchLocator(search.MustPattern(`\)`, false), search.Flags{AcceptAtCursor: true, Wrap: wrapEnd})
	return NewSpanBuilder(begin, end, kind, ringer)
}

func TestSelectAround(t *testing.T) {
	v := viewAt(1, 5, "ab (cde) fg")
	b := parenBuilder(view.Charwise, nil, false)

	sel, err := b.Select(v, jump.ModeNormal, Around, 1)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.Anchor != (buffer.Position{Line: 1, Col: 4}) {
		t.Errorf("anchor = %v, want (1:4)", sel.Anchor)
	}
	if sel.Head != (buffer.Position{Line: 1, Col: 8}) {
		t.Errorf("head = %v, want (1:8)", sel.Head)
	}
}

func TestSelectInner(t *testing.T) {
	v := viewAt(1, 5, "ab (cde) fg")
	b := parenBuilder(view.Charwise, nil, false)

	sel, err := b.Select(v, jump.ModeNormal, Inner, 1)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.Anchor != (buffer.Position{Line: 1, Col: 5}) {
		t.Errorf("anchor = %v, want (1:5)", sel.Anchor)
	}
	if sel.Head != (buffer.Position{Line: 1, Col: 7}) {
		t.Errorf("head = %v, want (1:7)", sel.Head)
	}
}

func TestSelectInnerAcrossLines(t *testing.T) {
	v := viewAt(2, 1, "x (a", "bc", "d) y")
	b := parenBuilder(view.Charwise, nil, false)

	sel, err := b.Select(v, jump.ModeNormal, Inner, 1)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.Anchor != (buffer.Position{Line: 1, Col: 4}) {
		t.Errorf("anchor = %v, want (1:4)", sel.Anchor)
	}
	if sel.Head != (buffer.Position{Line: 3, Col: 1}) {
		t.Errorf("head = %v, want (3:1)", sel.Head)
	}
}

func TestSelectEndLocatorGetsUserCount(t *testing.T) {
	v := viewAt(1, 5, "ab (cde) (fgh) ij")
	b := parenBuilder(view.Charwise, nil, false)

	sel, err := b.Select(v, jump.ModeNormal, Around, 2)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.Head != (buffer.Position{Line: 1, Col: 14}) {
		t.Errorf("head with count 2 = %v, want (1:14)", sel.Head)
	}
	// Begin stays at the enclosing span regardless of count.
	if sel.Anchor != (buffer.Position{Line: 1, Col: 4}) {
		t.Errorf("anchor with count 2 = %v, want (1:4)", sel.Anchor)
	}
}

func TestSelectLinewise(t *testing.T) {
	lines := []string{"begin", "one", "two", "end"}
	j := jump.New(nil)
	b := NewSpanBuilder(
		j.SearchLocator(search.MustPattern(`^begin$`, true), search.Flags{AcceptAtCursor: true}),
		j.SearchLocator(search.MustPattern(`^end$`, false), search.Flags{AcceptAtCursor: true}),
		view.Linewise, nil)

	t.Run("around", func(t *testing.T) {
		v := viewAt(2, 1, lines...)
		sel, err := b.Select(v, jump.ModeNormal, Around, 1)
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if sel.Anchor.Line != 1 || sel.Head.Line != 4 {
			t.Errorf("around lines = %d..%d, want 1..4", sel.Anchor.Line, sel.Head.Line)
		}
	})

	t.Run("inner excludes delimiter lines", func(t *testing.T) {
		v := viewAt(2, 1, lines...)
		sel, err := b.Select(v, jump.ModeNormal, Inner, 1)
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if sel.Anchor != (buffer.Position{Line: 2, Col: 1}) {
			t.Errorf("anchor = %v, want (2:1)", sel.Anchor)
		}
		if sel.Head != (buffer.Position{Line: 3, Col: 3}) {
			t.Errorf("head = %v, want (3:3)", sel.Head)
		}
	})

	t.Run("inner with adjacent delimiters fails", func(t *testing.T) {
		v := viewAt(1, 1, "begin", "end")
		sel, err := b.Select(v, jump.ModeNormal, Inner, 1)
		if err != ErrNotEnclosed {
			t.Fatalf("Select = %+v, %v; want ErrNotEnclosed", sel, err)
		}
	})
}

func TestSelectEnclosureGuard(t *testing.T) {
	// The only ) is before the cursor; with wrap-around the end
	// locator finds it behind the origin, which must be rejected.
	v := viewAt(3, 1, "(x", ") y", "cursor here", "(z")
	ringer := &bell.Counter{}
	b := parenBuilder(view.Charwise, ringer, true)

	_, err := b.Select(v, jump.ModeOperatorPending, Around, 1)
	if err != ErrNotEnclosed {
		t.Fatalf("err = %v, want ErrNotEnclosed", err)
	}
	if cur := v.Cursor(); cur != (buffer.Position{Line: 3, Col: 1}) {
		t.Errorf("cursor after failure = %v, want (3:1)", cur)
	}
	if ringer.Count != 1 {
		t.Errorf("bell rang %d times, want 1", ringer.Count)
	}
	if _, active := v.Selection(); active {
		t.Error("operator-pending failure left an active selection")
	}
}

func TestSelectNoMatch(t *testing.T) {
	v := viewAt(1, 1, "no delimiters here")
	b := parenBuilder(view.Charwise, nil, false)

	if _, err := b.Select(v, jump.ModeNormal, Around, 1); err != jump.ErrNoMatch {
		t.Fatalf("err = %v, want ErrNoMatch", err)
	}
}

func TestSelectFailureReentersVisualSelectionOnly(t *testing.T) {
	v := viewAt(1, 6, "(abc) x")
	v.StartSelection(view.Charwise)
	v.ExtendSelectionTo(buffer.Position{Line: 1, Col: 7})
	v.LeaveSelection()
	v.SetCursor(buffer.Position{Line: 1, Col: 6})

	b := parenBuilder(view.Charwise, nil, false)

	// No ) ahead of the cursor: the select fails.
	if _, err := b.Select(v, jump.ModeVisual, Around, 1); err == nil {
		t.Fatal("expected failure")
	}
	sel, active := v.Selection()
	if !active {
		t.Fatal("visual failure did not re-enter prior selection")
	}
	if sel.Head != (buffer.Position{Line: 1, Col: 7}) {
		t.Errorf("re-entered head = %v, want (1:7)", sel.Head)
	}
}

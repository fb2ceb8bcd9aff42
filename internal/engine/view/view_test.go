package view

import (
	"testing"

	"github.com/dshills/countjump/internal/engine/buffer"
)

func testView(lines ...string) *View {
	return New(buffer.FromLines(lines))
}

func TestSetCursorClamps(t *testing.T) {
	v := testView("hello", "", "hi")

	tests := []struct {
		name string
		set  buffer.Position
		want buffer.Position
	}{
		{"valid", buffer.Position{Line: 1, Col: 3}, buffer.Position{Line: 1, Col: 3}},
		{"past line end", buffer.Position{Line: 1, Col: 50}, buffer.Position{Line: 1, Col: 5}},
		{"past buffer end", buffer.Position{Line: 9, Col: 1}, buffer.Position{Line: 3, Col: 1}},
		{"empty line", buffer.Position{Line: 2, Col: 4}, buffer.Position{Line: 2, Col: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v.SetCursor(tt.set)
			if got := v.Cursor(); got != tt.want {
				t.Errorf("SetCursor(%v): cursor = %v, want %v", tt.set, got, tt.want)
			}
		})
	}
}

func TestSetCursorIgnoresSentinel(t *testing.T) {
	v := testView("abc")
	v.SetCursor(buffer.Position{Line: 1, Col: 2})
	v.SetCursor(buffer.None)
	if got := v.Cursor(); got != (buffer.Position{Line: 1, Col: 2}) {
		t.Errorf("cursor moved on sentinel: %v", got)
	}
}

func TestSaveRestoreView(t *testing.T) {
	v := testView("a", "b", "c", "d")
	v.SetCursor(buffer.Position{Line: 3, Col: 1})
	v.SetTop(2)

	saved := v.SaveView()
	v.SetCursor(buffer.Position{Line: 1, Col: 1})
	v.RestoreView(saved)

	if got := v.Cursor(); got != (buffer.Position{Line: 3, Col: 1}) {
		t.Errorf("cursor after restore = %v, want (3:1)", got)
	}
	if got := v.Top(); got != 2 {
		t.Errorf("top after restore = %d, want 2", got)
	}
}

func TestCaretWrapScoped(t *testing.T) {
	v := testView("ab", "cd")

	if v.CaretWrapEnabled() {
		t.Fatal("caret wrap enabled before acquire")
	}

	release := v.AcquireCaretWrap()
	if !v.CaretWrapEnabled() {
		t.Fatal("caret wrap not enabled after acquire")
	}

	inner := v.AcquireCaretWrap()
	inner()
	if !v.CaretWrapEnabled() {
		t.Fatal("outer acquisition lost after nested release")
	}

	release()
	if v.CaretWrapEnabled() {
		t.Fatal("caret wrap leaked after release")
	}

	// Double release must not underflow.
	release()
	if v.CaretWrapEnabled() {
		t.Fatal("double release corrupted wrap state")
	}
}

func TestStepForward(t *testing.T) {
	v := testView("ab", "cd")

	tests := []struct {
		name string
		wrap bool
		from buffer.Position
		want buffer.Position
	}{
		{"within line", false, buffer.Position{Line: 1, Col: 1}, buffer.Position{Line: 1, Col: 2}},
		{"stuck at line end", false, buffer.Position{Line: 1, Col: 2}, buffer.Position{Line: 1, Col: 2}},
		{"wraps at line end", true, buffer.Position{Line: 1, Col: 2}, buffer.Position{Line: 2, Col: 1}},
		{"stuck at buffer end", true, buffer.Position{Line: 2, Col: 2}, buffer.Position{Line: 2, Col: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wrap {
				release := v.AcquireCaretWrap()
				defer release()
			}
			if got := v.StepForward(tt.from); got != tt.want {
				t.Errorf("StepForward(%v) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestStepForwardGrapheme(t *testing.T) {
	// é is two bytes; a single step must cross the whole cluster.
	v := testView("héx")
	got := v.StepForward(buffer.Position{Line: 1, Col: 2})
	if got != (buffer.Position{Line: 1, Col: 4}) {
		t.Errorf("StepForward over multi-byte cluster = %v, want (1:4)", got)
	}
}

func TestStepBackward(t *testing.T) {
	v := testView("ab", "cd")

	tests := []struct {
		name string
		wrap bool
		from buffer.Position
		want buffer.Position
	}{
		{"within line", false, buffer.Position{Line: 2, Col: 2}, buffer.Position{Line: 2, Col: 1}},
		{"stuck at line start", false, buffer.Position{Line: 2, Col: 1}, buffer.Position{Line: 2, Col: 1}},
		{"wraps to previous line end", true, buffer.Position{Line: 2, Col: 1}, buffer.Position{Line: 1, Col: 2}},
		{"stuck at buffer start", true, buffer.Position{Line: 1, Col: 1}, buffer.Position{Line: 1, Col: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wrap {
				release := v.AcquireCaretWrap()
				defer release()
			}
			if got := v.StepBackward(tt.from); got != tt.want {
				t.Errorf("StepBackward(%v) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestSelectionLifecycle(t *testing.T) {
	v := testView("alpha", "beta", "gamma")
	v.SetCursor(buffer.Position{Line: 1, Col: 2})

	v.StartSelection(Charwise)
	v.ExtendSelectionTo(buffer.Position{Line: 2, Col: 3})

	sel, ok := v.Selection()
	if !ok {
		t.Fatal("no active selection after StartSelection")
	}
	if sel.Anchor != (buffer.Position{Line: 1, Col: 2}) {
		t.Errorf("anchor = %v, want (1:2)", sel.Anchor)
	}
	if sel.Head != (buffer.Position{Line: 2, Col: 3}) {
		t.Errorf("head = %v, want (2:3)", sel.Head)
	}

	v.LeaveSelection()
	if _, ok := v.Selection(); ok {
		t.Fatal("selection still active after LeaveSelection")
	}

	if !v.ReenterSelection() {
		t.Fatal("ReenterSelection failed")
	}
	sel, ok = v.Selection()
	if !ok || sel.Head != (buffer.Position{Line: 2, Col: 3}) {
		t.Errorf("reentered selection = %+v, active %v", sel, ok)
	}
	if got := v.Cursor(); got != sel.Head {
		t.Errorf("cursor after reenter = %v, want head %v", got, sel.Head)
	}
}

func TestSelectionStartEnd(t *testing.T) {
	backward := Selection{
		Anchor: buffer.Position{Line: 3, Col: 1},
		Head:   buffer.Position{Line: 1, Col: 2},
	}
	if got := backward.Start(); got != (buffer.Position{Line: 1, Col: 2}) {
		t.Errorf("Start = %v", got)
	}
	if got := backward.End(); got != (buffer.Position{Line: 3, Col: 1}) {
		t.Errorf("End = %v", got)
	}
}

func TestFolds(t *testing.T) {
	v := testView("a", "b", "c", "d", "e")
	v.AddFold(2, 4)

	if !v.IsFolded(3) {
		t.Fatal("line 3 should be folded")
	}
	if v.IsFolded(1) || v.IsFolded(5) {
		t.Fatal("lines outside fold reported folded")
	}

	v.OpenFoldsAt(buffer.Position{Line: 3, Col: 1})
	if v.IsFolded(3) {
		t.Fatal("fold still closed after OpenFoldsAt")
	}
}

func TestJumplistPopsOnce(t *testing.T) {
	v := testView("a", "b")
	origin := buffer.Position{Line: 1, Col: 1}

	entry := v.PushJump(origin)
	if entry.ID == "" {
		t.Error("jump entry has empty ID")
	}

	got, ok := v.PopJump()
	if !ok || got != origin {
		t.Fatalf("PopJump = %v, %v; want %v, true", got, ok, origin)
	}

	if _, ok := v.PopJump(); ok {
		t.Fatal("origin retrievable more than once")
	}
}

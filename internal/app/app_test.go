package app

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/countjump/internal/bell"
	"github.com/dshills/countjump/internal/engine/buffer"
	"github.com/dshills/countjump/internal/engine/view"
)

const sampleText = "one\ntwo\n\nthree\nfour\n\nfive\n"

func newTestApp(t *testing.T, content string, opts Options) *Application {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing sample: %v", err)
	}
	opts.Path = path
	opts.LogOutput = io.Discard
	opts.LogLevel = LogLevelError
	a, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(a.Close)
	return a
}

func press(t *testing.T, a *Application, keys string) {
	t.Helper()
	for _, r := range keys {
		if err := a.handleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)); err != nil {
			t.Fatalf("key %q: %v", r, err)
		}
	}
}

func TestParagraphMotion(t *testing.T) {
	a := newTestApp(t, sampleText, Options{})

	press(t, a, "]p")
	if got := a.View().Cursor(); got != (buffer.Position{Line: 4, Col: 1}) {
		t.Fatalf("]p moved to %v, want 4,1", got)
	}
}

func TestCountPrefix(t *testing.T) {
	a := newTestApp(t, sampleText, Options{})

	press(t, a, "2]p")
	if got := a.View().Cursor(); got != (buffer.Position{Line: 7, Col: 1}) {
		t.Fatalf("2]p moved to %v, want 7,1", got)
	}
}

func TestJumpBack(t *testing.T) {
	a := newTestApp(t, sampleText, Options{})

	press(t, a, "]p")
	if err := a.handleKey(tcell.NewEventKey(tcell.KeyCtrlO, 0, tcell.ModNone)); err != nil {
		t.Fatalf("ctrl-o: %v", err)
	}
	if got := a.View().Cursor(); got != (buffer.Position{Line: 1, Col: 1}) {
		t.Fatalf("jump back landed at %v, want 1,1", got)
	}
}

func TestVisualToggleAndExtend(t *testing.T) {
	a := newTestApp(t, sampleText, Options{})

	press(t, a, "v]p")
	sel, active := a.View().Selection()
	if !active {
		t.Fatal("selection not active after v")
	}
	if sel.Head.Line != 4 {
		t.Errorf("selection head on line %d, want 4", sel.Head.Line)
	}

	press(t, a, "v")
	if _, active := a.View().Selection(); active {
		t.Error("second v should leave visual")
	}

	press(t, a, "gv")
	if _, active := a.View().Selection(); !active {
		t.Error("gv should re-enter the last selection")
	}
}

func TestAroundParagraphObject(t *testing.T) {
	a := newTestApp(t, sampleText, Options{})
	a.View().SetCursor(buffer.Position{Line: 4, Col: 2})

	press(t, a, "ap")
	sel, active := a.View().Selection()
	if !active {
		t.Fatal("no selection after ap")
	}
	if sel.Kind != view.Linewise {
		t.Errorf("paragraph object kind = %v, want linewise", sel.Kind)
	}
	if sel.Start().Line != 4 || sel.End().Line != 5 {
		t.Errorf("ap selected lines %d..%d, want 4..5", sel.Start().Line, sel.End().Line)
	}
}

func TestUnknownSequenceRingsBell(t *testing.T) {
	a := newTestApp(t, sampleText, Options{})
	counter := &bell.Counter{}
	a.bell.r = counter

	press(t, a, "]x")
	if counter.Count != 1 {
		t.Errorf("bell rang %d times, want 1", counter.Count)
	}
	if a.pending != "" {
		t.Errorf("pending not cleared: %q", a.pending)
	}
}

func TestEscapeClearsState(t *testing.T) {
	a := newTestApp(t, sampleText, Options{})

	press(t, a, "12v")
	if err := a.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); err != nil {
		t.Fatalf("escape: %v", err)
	}
	if _, active := a.View().Selection(); active {
		t.Error("escape left selection active")
	}
	if a.count.Active {
		t.Error("escape left count active")
	}
}

func TestQuitKeys(t *testing.T) {
	a := newTestApp(t, sampleText, Options{})

	if err := a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); !errors.Is(err, ErrQuit) {
		t.Errorf("q returned %v, want ErrQuit", err)
	}
	if err := a.handleKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)); !errors.Is(err, ErrQuit) {
		t.Errorf("ctrl-c returned %v, want ErrQuit", err)
	}
}

func TestConfigAndLuaWiring(t *testing.T) {
	dir := t.TempDir()

	script := filepath.Join(dir, "heading.lua")
	if err := os.WriteFile(script, []byte(`
countjump.register_predicate("heading", function(lineno, text)
    return text:sub(1, 1) == "#"
end)
`), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	cfg := filepath.Join(dir, "countjump.toml")
	if err := os.WriteFile(cfg, []byte(`
[[jump]]
name = "heading"
lua = "heading"
linewise = true
keys = { next-start = "]h" }
`), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	a := newTestApp(t, "intro\n# one\nbody\n# two\nbody\n", Options{
		ConfigPath: cfg,
		Scripts:    []string{script},
	})

	press(t, a, "]h")
	if got := a.View().Cursor(); got.Line != 2 {
		t.Fatalf("]h moved to line %d, want 2", got.Line)
	}
	press(t, a, "]h")
	if got := a.View().Cursor(); got.Line != 4 {
		t.Fatalf("second ]h moved to line %d, want 4", got.Line)
	}
}

func TestStatusLine(t *testing.T) {
	a := newTestApp(t, sampleText, Options{})

	s := a.status()
	if !strings.Contains(s, "NORMAL") || !strings.Contains(s, "1,1") {
		t.Errorf("status = %q", s)
	}

	press(t, a, "v")
	if s := a.status(); !strings.Contains(s, "VISUAL") {
		t.Errorf("status in visual = %q", s)
	}

	press(t, a, "2")
	if s := a.status(); !strings.Contains(s, "2") {
		t.Errorf("status with count = %q", s)
	}
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(Options{Path: "/nonexistent/file.txt", LogOutput: io.Discard})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var oe *OperationError
	if !errors.As(err, &oe) || oe.Op != "open" {
		t.Errorf("error = %v, want open OperationError", err)
	}
}

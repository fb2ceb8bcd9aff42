package app

import (
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/countjump/internal/engine/view"
	"github.com/dshills/countjump/internal/jump"
	"github.com/dshills/countjump/internal/motion"
	"github.com/dshills/countjump/internal/textobj"
)

// handleKey processes one key event. It returns ErrQuit when the user
// asks to leave.
func (a *Application) handleKey(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return ErrQuit
	case tcell.KeyEscape:
		a.view.LeaveSelection()
		a.resetPending()
		return nil
	case tcell.KeyCtrlO:
		a.jumper.JumpBack(a.view)
		a.resetPending()
		return nil
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return nil
}

func (a *Application) handleRune(r rune) error {
	if a.objPending != 0 {
		a.selectObject(a.objPending, r)
		a.resetPending()
		return nil
	}

	// gv re-enters the last visual selection.
	if a.pending == "g" && r == 'v' {
		a.view.ReenterSelection()
		a.resetPending()
		return nil
	}

	if a.pending == "" {
		if a.count.AccumulateDigit(r) {
			return nil
		}
		switch r {
		case 'q':
			return ErrQuit
		case 'v':
			if _, active := a.view.Selection(); active {
				a.view.LeaveSelection()
			} else {
				a.view.StartSelection(view.Charwise)
			}
			a.count.Reset()
			return nil
		case 'i', 'a':
			a.objPending = r
			return nil
		case 'g':
			if !a.registry.HasPrefix("g") {
				a.pending = "g"
				return nil
			}
		}
	}

	a.pending += string(r)
	if m := a.registry.Motion(a.pending); m != nil {
		a.runMotion(m)
		a.resetPending()
		return nil
	}
	if a.registry.HasPrefix(a.pending) {
		return nil
	}

	a.logger.Debug("unknown sequence %q", a.pending)
	a.bell.Ring()
	a.resetPending()
	return nil
}

func (a *Application) runMotion(m *motion.Motion) {
	mode := jump.ModeNormal
	if _, active := a.view.Selection(); active {
		mode = jump.ModeVisual
	}
	target := a.jumper.Commit(a.view, mode, m.Locate, a.count.Get())
	if target.IsNone() {
		a.logger.Debug("motion %s: no target", m.Name)
	}
}

func (a *Application) selectObject(prefix, key rune) {
	obj := a.registry.TextObject(string(key))
	if obj == nil {
		a.bell.Ring()
		return
	}

	variant := textobj.Around
	if prefix == 'i' {
		variant = textobj.Inner
	}
	mode := jump.ModeNormal
	if _, active := a.view.Selection(); active {
		mode = jump.ModeVisual
	}
	if _, err := obj.Builder.Select(a.view, mode, variant, a.count.Get()); err != nil {
		a.logger.Debug("object %s: %v", obj.Name, err)
	}
}

func (a *Application) resetPending() {
	a.count.Reset()
	a.pending = ""
	a.objPending = 0
}

// status builds the bottom status line.
func (a *Application) status() string {
	cur := a.view.Cursor()
	mode := "NORMAL"
	if _, active := a.view.Selection(); active {
		mode = "VISUAL"
	}

	typed := ""
	if a.count.Active {
		typed = fmt.Sprintf("%d", a.count.Value)
	}
	if a.objPending != 0 {
		typed += string(a.objPending)
	}
	typed += a.pending

	s := fmt.Sprintf(" %s  %s  %d,%d", filepath.Base(a.opts.Path), mode, cur.Line, cur.Col)
	if typed != "" {
		s += "  " + typed
	}
	if depth := a.view.JumpDepth(); depth > 0 {
		s += fmt.Sprintf("  [%d jumps]", depth)
	}
	return s
}

func (a *Application) render() {
	if a.screen == nil {
		return
	}
	a.screen.Render(a.view, a.status())
}

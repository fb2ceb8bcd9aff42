package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/countjump/internal/engine/buffer"
	"github.com/dshills/countjump/internal/engine/view"
)

// Screen wraps a tcell screen for single-view rendering.
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// New creates a screen backed by the process terminal.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{screen: s}, nil
}

// NewWith wraps an existing tcell screen, such as a simulation screen
// in tests.
func NewWith(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Init initializes the underlying terminal.
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Init()
}

// Fini restores the terminal state.
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Fini()
}

// Size returns the terminal dimensions.
func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Size()
}

// PollEvent blocks for the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Ring sounds the terminal bell. Implements bell.Ringer.
func (s *Screen) Ring() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.screen.Beep()
}

// Render draws the view's visible lines, the selection, the cursor,
// and a status line on the bottom row.
func (s *Screen) Render(v *view.View, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Clear()
	width, height := s.screen.Size()
	if height < 2 {
		s.screen.Show()
		return
	}

	plain := tcell.StyleDefault
	selected := plain.Reverse(true)

	sel, active := v.Selection()
	top := v.Top()
	buf := v.Buffer()

	for row := 0; row < height-1; row++ {
		line := top + row
		if line > buf.LineCount() {
			break
		}
		text := buf.LineText(line)
		x := 0
		col := 1
		for _, r := range text {
			if x >= width {
				break
			}
			style := plain
			if active && inSelection(sel, line, col) {
				style = selected
			}
			s.screen.SetContent(x, row, r, nil, style)
			x += runewidth.RuneWidth(r)
			col += len(string(r))
		}
		if active && text == "" && inSelection(sel, line, 1) {
			s.screen.SetContent(0, row, ' ', nil, selected)
		}
	}

	statusStyle := plain.Reverse(true)
	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		s.screen.SetContent(x, height-1, r, nil, statusStyle)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		s.screen.SetContent(x, height-1, ' ', nil, statusStyle)
	}

	cur := v.Cursor()
	if cur.Line >= top && cur.Line < top+height-1 {
		s.screen.ShowCursor(screenCol(buf.LineText(cur.Line), cur.Col), cur.Line-top)
	} else {
		s.screen.HideCursor()
	}

	s.screen.Show()
}

// screenCol converts a 1-based byte column into a 0-based screen
// column, accounting for wide runes.
func screenCol(text string, col int) int {
	if col < 1 {
		return 0
	}
	if col > len(text) {
		return runewidth.StringWidth(text)
	}
	return runewidth.StringWidth(text[:col-1])
}

// inSelection reports whether the cell at line, col falls inside the
// selection.
func inSelection(sel view.Selection, line, col int) bool {
	start, end := sel.Start(), sel.End()
	switch sel.Kind {
	case view.Linewise:
		return line >= start.Line && line <= end.Line
	case view.Blockwise:
		lo, hi := start.Col, end.Col
		if lo > hi {
			lo, hi = hi, lo
		}
		return line >= start.Line && line <= end.Line && col >= lo && col <= hi
	default:
		p := buffer.Position{Line: line, Col: col}
		return !p.Before(start) && !p.After(end)
	}
}

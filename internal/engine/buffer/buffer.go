package buffer

import "strings"

// Buffer is a line-oriented view of a text document.
// Line numbers are 1-based throughout; out-of-range access returns
// zero values rather than panicking, so scanners can probe one line
// past either edge without bounds bookkeeping.
//
// The scanners never mutate a Buffer; the buffer is rebuilt (or
// replaced) by the host when the document changes, which is why
// regions are recomputed on every query and never cached.
type Buffer struct {
	lines []string
}

// New creates a buffer from raw text. Line endings are normalized:
// both "\r\n" and bare "\n" delimit lines.
func New(text string) *Buffer {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return &Buffer{lines: strings.Split(text, "\n")}
}

// FromLines creates a buffer from pre-split lines.
// The slice is copied so later mutation by the caller cannot change
// the buffer underneath an in-progress scan.
func FromLines(lines []string) *Buffer {
	if len(lines) == 0 {
		lines = []string{""}
	}
	copied := make([]string, len(lines))
	copy(copied, lines)
	return &Buffer{lines: copied}
}

// LineCount returns the number of lines in the buffer.
// An empty buffer has one (empty) line, matching editor convention.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineText returns the text of the given 1-based line.
// Returns "" for out-of-range lines.
func (b *Buffer) LineText(line int) string {
	if line < 1 || line > len(b.lines) {
		return ""
	}
	return b.lines[line-1]
}

// LineLen returns the byte length of the given 1-based line.
func (b *Buffer) LineLen(line int) int {
	return len(b.LineText(line))
}

// InRange returns true if the 1-based line number exists in the buffer.
func (b *Buffer) InRange(line int) bool {
	return line >= 1 && line <= len(b.lines)
}

// Clamp constrains a position to a valid buffer location.
// The sentinel position is passed through unchanged.
func (b *Buffer) Clamp(p Position) Position {
	if p.IsNone() {
		return p
	}
	if p.Line < 1 {
		p.Line = 1
	}
	if p.Line > len(b.lines) {
		p.Line = len(b.lines)
	}
	if p.Col < 1 {
		p.Col = 1
	}
	if max := b.LineLen(p.Line); p.Col > max {
		if max < 1 {
			max = 1
		}
		p.Col = max
	}
	return p
}

// EndPosition returns the position of the last byte of the last line
// (column 1 if the last line is empty).
func (b *Buffer) EndPosition() Position {
	last := len(b.lines)
	col := len(b.lines[last-1])
	if col < 1 {
		col = 1
	}
	return Position{Line: last, Col: col}
}

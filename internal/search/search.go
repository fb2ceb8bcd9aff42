package search

import (
	"regexp"

	"github.com/dshills/countjump/internal/engine/buffer"
	"github.com/dshills/countjump/internal/engine/view"
)

// Pattern is a compiled regular expression plus its scan direction.
type Pattern struct {
	// Regexp is the compiled expression. A nil Regexp never matches.
	Regexp *regexp.Regexp

	// Backward scans toward the start of the buffer when true.
	Backward bool
}

// NewPattern compiles expr into a Pattern.
func NewPattern(expr string, backward bool) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{Regexp: re, Backward: backward}, nil
}

// MustPattern compiles expr and panics on error. For tests and
// built-in definitions with literal expressions.
func MustPattern(expr string, backward bool) Pattern {
	return Pattern{Regexp: regexp.MustCompile(expr), Backward: backward}
}

// Flags modify a single positioned search.
type Flags struct {
	// AcceptAtCursor allows a match starting exactly at the cursor
	// position to count as found.
	AcceptAtCursor bool

	// MoveToEnd reports the position of the last byte of the match
	// instead of its first.
	MoveToEnd bool

	// Wrap continues the scan from the opposite end of the buffer
	// when the first pass finds nothing.
	Wrap bool
}

// Find locates the nearest match of pat relative to the cursor of v.
// Returns the sentinel position when nothing matches. The cursor is
// not moved.
func Find(v *view.View, pat Pattern, flags Flags) buffer.Position {
	if pat.Regexp == nil {
		return buffer.None
	}
	if pat.Backward {
		return findBackward(v.Buffer(), v.Cursor(), pat.Regexp, flags)
	}
	return findForward(v.Buffer(), v.Cursor(), pat.Regexp, flags)
}

func findForward(buf *buffer.Buffer, cur buffer.Position, re *regexp.Regexp, flags Flags) buffer.Position {
	// First byte index a match may start at on the cursor line.
	min := cur.Col
	if flags.AcceptAtCursor {
		min = cur.Col - 1
	}

	last := buf.LineCount()
	for line := cur.Line; line <= last; line++ {
		from := 0
		if line == cur.Line {
			from = min
		}
		if p := firstMatchFrom(buf, line, re, from, flags.MoveToEnd); !p.IsNone() {
			return p
		}
	}
	if flags.Wrap {
		for line := 1; line <= cur.Line; line++ {
			if p := firstMatchFrom(buf, line, re, 0, flags.MoveToEnd); !p.IsNone() {
				return p
			}
		}
	}
	return buffer.None
}

func findBackward(buf *buffer.Buffer, cur buffer.Position, re *regexp.Regexp, flags Flags) buffer.Position {
	// Exclusive upper bound on the byte index a match may start at on
	// the cursor line.
	max := cur.Col - 1
	if flags.AcceptAtCursor {
		max = cur.Col
	}

	for line := cur.Line; line >= 1; line-- {
		before := buf.LineLen(line) + 1
		if line == cur.Line {
			before = max
		}
		if p := lastMatchBefore(buf, line, re, before, flags.MoveToEnd); !p.IsNone() {
			return p
		}
	}
	if flags.Wrap {
		for line := buf.LineCount(); line >= cur.Line; line-- {
			before := buf.LineLen(line) + 1
			if p := lastMatchBefore(buf, line, re, before, flags.MoveToEnd); !p.IsNone() {
				return p
			}
		}
	}
	return buffer.None
}

// firstMatchFrom returns the first match on the line starting at or
// after byte index from.
func firstMatchFrom(buf *buffer.Buffer, line int, re *regexp.Regexp, from int, toEnd bool) buffer.Position {
	for _, m := range re.FindAllStringIndex(buf.LineText(line), -1) {
		if m[0] >= from {
			return matchPosition(line, m, toEnd)
		}
	}
	return buffer.None
}

// lastMatchBefore returns the last match on the line starting strictly
// before byte index before.
func lastMatchBefore(buf *buffer.Buffer, line int, re *regexp.Regexp, before int, toEnd bool) buffer.Position {
	var found []int
	for _, m := range re.FindAllStringIndex(buf.LineText(line), -1) {
		if m[0] < before {
			found = m
		}
	}
	if found == nil {
		return buffer.None
	}
	return matchPosition(line, found, toEnd)
}

func matchPosition(line int, m []int, toEnd bool) buffer.Position {
	col := m[0] + 1
	if toEnd && m[1] > m[0] {
		col = m[1]
	}
	return buffer.Position{Line: line, Col: col}
}

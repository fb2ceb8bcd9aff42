package region

import (
	"regexp"
	"strings"

	"github.com/dshills/countjump/internal/engine/buffer"
	"github.com/dshills/countjump/internal/engine/view"
)

// LinePredicate reports whether a buffer line belongs to a region.
// col is the 1-based column of the first match within the line, or 0
// when the predicate is purely line-level and has no column of its own.
type LinePredicate func(line int, text string) (col int, ok bool)

// PatternPredicate builds a predicate from a regular expression: a
// line belongs to the region when the pattern matches anywhere on it,
// and the boundary column is the match start.
func PatternPredicate(re *regexp.Regexp) LinePredicate {
	return func(line int, text string) (int, bool) {
		loc := re.FindStringIndex(text)
		if loc == nil {
			return 0, false
		}
		return loc[0] + 1, true
	}
}

// NonBlank is a line-level predicate matching lines containing any
// non-whitespace character. Paragraph-style regions are runs of
// non-blank lines.
func NonBlank(line int, text string) (int, bool) {
	return 0, strings.TrimSpace(text) != ""
}

// eval applies the predicate with buffer bounds checking.
// Out-of-range lines never belong to a region.
func eval(buf *buffer.Buffer, pred LinePredicate, line int) (int, bool) {
	if !buf.InRange(line) {
		return 0, false
	}
	return pred(line, buf.LineText(line))
}

// edge follows the run of consecutive matching lines from line in the
// given direction and returns the last matching line with its column.
// line must itself match.
func edge(buf *buffer.Buffer, pred LinePredicate, line, col, step int) (int, int) {
	for {
		nextCol, ok := eval(buf, pred, line+step)
		if !ok {
			return line, col
		}
		line += step
		col = nextCol
	}
}

// ScanRegionEnd returns the far border, in the scan direction, of the
// count-th region at or after the cursor line. The region the cursor
// is inside (or the first region reached when the cursor is between
// regions) counts as the first. Returns the sentinel when fewer than
// count regions exist in that direction.
func ScanRegionEnd(v *view.View, count int, pred LinePredicate, step int) buffer.Position {
	if step != 1 && step != -1 {
		return buffer.None
	}
	if count < 1 {
		count = 1
	}

	buf := v.Buffer()
	line := v.Cursor().Line

	for {
		col, ok := eval(buf, pred, line)
		for !ok {
			line += step
			if !buf.InRange(line) {
				return buffer.None
			}
			col, ok = eval(buf, pred, line)
		}

		endLine, endCol := edge(buf, pred, line, col, step)
		count--
		if count == 0 {
			return buffer.Position{Line: endLine, Col: endCol}
		}

		line = endLine + step
		if !buf.InRange(line) {
			return buffer.None
		}
	}
}

// ScanNextRegionBoundary returns the count-th region boundary of the
// requested kind (start or end, in the scan direction) strictly ahead
// of the cursor.
//
// The starting line may be inside a region, on its trailing border, or
// between regions; each case resolves so that only boundaries ahead of
// the cursor are counted. In particular, when the cursor is inside a
// region with further region lines ahead, that region's far border is
// the first end-boundary ahead, so with count 1 and wantEnd the scan
// stops there; counting the current region a second time was a
// long-standing off-by-one in this family of motions.
func ScanNextRegionBoundary(v *view.View, count int, pred LinePredicate, step int, wantEnd bool) buffer.Position {
	if step != 1 && step != -1 {
		return buffer.None
	}
	if count < 1 {
		count = 1
	}

	buf := v.Buffer()
	line := v.Cursor().Line
	remaining := count

	col, in := eval(buf, pred, line)
	_, nextIn := eval(buf, pred, line+step)

	switch {
	case in && nextIn:
		endLine, endCol := edge(buf, pred, line, col, step)
		if remaining == 1 && wantEnd {
			return buffer.Position{Line: endLine, Col: endCol}
		}
		// The current region's far border was the first end ahead;
		// it consumes a count only when ends are being counted.
		if wantEnd {
			remaining--
		}
		line = endLine + step
	case in:
		// On the trailing border: the current region is finished,
		// none of its boundaries lie ahead.
		line += step
	}

	for {
		startCol, ok := 0, false
		for {
			if !buf.InRange(line) {
				return buffer.None
			}
			startCol, ok = eval(buf, pred, line)
			if ok {
				break
			}
			line += step
		}

		remaining--
		if remaining == 0 {
			if wantEnd {
				endLine, endCol := edge(buf, pred, line, startCol, step)
				return buffer.Position{Line: endLine, Col: endCol}
			}
			return buffer.Position{Line: line, Col: startCol}
		}

		endLine, _ := edge(buf, pred, line, startCol, step)
		line = endLine + step
	}
}

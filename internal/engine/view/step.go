package view

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/countjump/internal/engine/buffer"
)

// StepForward returns p advanced by one grapheme cluster. Stepping off
// the end of a line crosses onto the first column of the next line only
// while the caret-wrap capability is held; otherwise (and at the end of
// the buffer) p is returned unchanged.
func (v *View) StepForward(p buffer.Position) buffer.Position {
	if p.IsNone() {
		return p
	}
	p = v.buf.Clamp(p)
	line := v.buf.LineText(p.Line)
	idx := p.Col - 1

	if idx < len(line) {
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(line[idx:], -1)
		next := idx + len(cluster)
		if next < len(line) {
			return buffer.Position{Line: p.Line, Col: next + 1}
		}
	}
	if v.CaretWrapEnabled() && v.buf.InRange(p.Line+1) {
		return buffer.Position{Line: p.Line + 1, Col: 1}
	}
	return p
}

// StepBackward returns p moved back by one grapheme cluster, crossing
// onto the last column of the previous line only while the caret-wrap
// capability is held.
func (v *View) StepBackward(p buffer.Position) buffer.Position {
	if p.IsNone() {
		return p
	}
	p = v.buf.Clamp(p)

	if p.Col > 1 {
		line := v.buf.LineText(p.Line)
		idx := p.Col - 1
		if idx > len(line) {
			idx = len(line)
		}
		// Walk grapheme clusters to find the boundary preceding idx.
		prev := 0
		rest := line
		off := 0
		for rest != "" && off < idx {
			cluster, remainder, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
			if off+len(cluster) >= idx {
				break
			}
			prev = off + len(cluster)
			off += len(cluster)
			rest = remainder
		}
		return buffer.Position{Line: p.Line, Col: prev + 1}
	}
	if v.CaretWrapEnabled() && v.buf.InRange(p.Line-1) {
		col := v.buf.LineLen(p.Line - 1)
		if col < 1 {
			col = 1
		}
		return buffer.Position{Line: p.Line - 1, Col: col}
	}
	return p
}

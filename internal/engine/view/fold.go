package view

import (
	"github.com/dshills/countjump/internal/engine/buffer"
)

// Fold is a closed or open range of whole lines.
type Fold struct {
	Start int // 1-based first line
	End   int // 1-based last line, inclusive
	Open  bool
}

// AddFold registers a closed fold covering [start, end].
// Degenerate ranges are ignored.
func (v *View) AddFold(start, end int) {
	if start < 1 || end < start || !v.buf.InRange(start) {
		return
	}
	v.folds = append(v.folds, Fold{Start: start, End: end})
}

// IsFolded returns true if the line is hidden inside a closed fold.
func (v *View) IsFolded(line int) bool {
	for _, f := range v.folds {
		if !f.Open && line >= f.Start && line <= f.End {
			return true
		}
	}
	return false
}

// OpenFoldsAt opens every closed fold enclosing the given position, so
// a jump target becomes visible. Positions outside any fold are a no-op.
func (v *View) OpenFoldsAt(p buffer.Position) {
	if p.IsNone() {
		return
	}
	for i := range v.folds {
		f := &v.folds[i]
		if !f.Open && p.Line >= f.Start && p.Line <= f.End {
			f.Open = true
		}
	}
}

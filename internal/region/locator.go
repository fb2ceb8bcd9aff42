package region

import (
	"github.com/dshills/countjump/internal/engine/buffer"
	"github.com/dshills/countjump/internal/engine/view"
	"github.com/dshills/countjump/internal/jump"
)

// RegionEndLocator adapts ScanRegionEnd into a locate function for the
// jump committer.
func RegionEndLocator(pred LinePredicate, step int) jump.LocateFunc {
	return func(v *view.View, count int) buffer.Position {
		return ScanRegionEnd(v, count, pred, step)
	}
}

// BoundaryLocator adapts ScanNextRegionBoundary into a locate function
// for the jump committer.
func BoundaryLocator(pred LinePredicate, step int, wantEnd bool) jump.LocateFunc {
	return func(v *view.View, count int) buffer.Position {
		return ScanNextRegionBoundary(v, count, pred, step, wantEnd)
	}
}

// Package buffer provides the line-oriented text buffer and position
// types used by the jump and region scanners.
//
// Positions are 1-based in both line and column, matching the host
// editor convention. The zero Position (0,0) is reserved as the
// "no match" sentinel; no valid buffer location ever has a zero
// component.
package buffer

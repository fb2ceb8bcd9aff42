package buffer

import "fmt"

// Position represents a line and column location in a buffer.
// Both Line and Col are 1-based. Col is a byte offset within the line
// plus one, so a position is addressable even on an empty line (Col 1).
// Position is an immutable value type.
type Position struct {
	Line int // 1-based line number
	Col  int // 1-based byte column within the line
}

// None is the sentinel position meaning "no match". It compares before
// every valid position.
var None = Position{}

// IsNone returns true if this is the no-match sentinel.
func (p Position) IsNone() bool {
	return p.Line == 0 && p.Col == 0
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Lines are compared first, then columns.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

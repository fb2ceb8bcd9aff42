package jump

// Mode describes how a committed jump interacts with the editor.
type Mode uint8

const (
	// ModeNormal moves the cursor.
	ModeNormal Mode = iota

	// ModeVisual re-enters and extends the active selection.
	ModeVisual

	// ModeOperatorPending moves the cursor for a pending operator;
	// the operator's range ends just before the target.
	ModeOperatorPending

	// ModeOperatorPendingToEnd is operator-pending toward the end of
	// a delimited span: the target is extended one character past
	// itself so the operator covers the span's final character.
	ModeOperatorPendingToEnd
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeVisual:
		return "visual"
	case ModeOperatorPending:
		return "operator-pending"
	case ModeOperatorPendingToEnd:
		return "operator-pending-to-end"
	default:
		return "unknown"
	}
}

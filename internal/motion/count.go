package motion

import "math"

// CountState accumulates a count prefix while keys are being read.
type CountState struct {
	// Value is the accumulated count value.
	Value int

	// Active indicates a count is being accumulated.
	Active bool
}

// Reset clears the count state.
func (c *CountState) Reset() {
	c.Value = 0
	c.Active = false
}

// AccumulateDigit adds a digit to the count, returning true if the
// rune was accepted. Only ASCII digits count, and a leading '0' is
// not a count (it is conventionally a motion of its own).
func (c *CountState) AccumulateDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}

	digit := int(r - '0')
	if !c.Active && digit == 0 {
		return false
	}
	c.Active = true

	// Cap rather than overflow on absurd counts.
	if c.Value > (math.MaxInt-digit)/10 {
		c.Value = math.MaxInt / 10
		return true
	}

	c.Value = c.Value*10 + digit
	return true
}

// Get returns the effective count: 1 when no count was typed.
func (c *CountState) Get() int {
	if c.Value <= 0 {
		return 1
	}
	return c.Value
}

// Package search implements the positioned regex search primitive the
// jump drivers are built on: find the next (or previous) match of a
// pattern relative to the cursor, with optional wrap-around,
// accept-match-at-cursor, and land-on-match-end modifiers.
//
// Find is pure: it never moves the cursor. Callers that want the
// classic search motion commit the returned position themselves.
package search

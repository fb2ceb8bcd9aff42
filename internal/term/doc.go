// Package term is the tcell terminal front end. It draws the visible
// slice of a view, highlights the active selection, and doubles as the
// terminal bell.
package term

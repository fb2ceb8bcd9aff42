// Package view provides the editor context handle the jump primitives
// operate against: a buffer plus cursor, scroll position, selection
// state, fold table, and jump history.
//
// Core scanners receive a *View explicitly instead of reaching for
// ambient editor state, so they can be exercised against synthetic
// buffers in tests. Only the View mutates cursor state; scanners are
// read-only and report positions for a committer to apply.
package view

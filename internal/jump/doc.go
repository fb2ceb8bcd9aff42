// Package jump implements the counted-search driver and the jump
// committer: locate the Nth occurrence of something, then either
// commit the cursor there (recording the origin for back-navigation)
// or roll back and ring the bell.
//
// Locate functions are first-class values; motions and text objects
// are closures binding their pattern or predicate, never dispatch
// through generated names.
package jump

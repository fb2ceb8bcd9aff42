// Package region implements scanning over regions: maximal runs of
// consecutive lines satisfying a predicate. Regions are never
// materialized or cached; every scan recomputes them against the live
// buffer, since the buffer can change between invocations.
//
// The scanners are pure: they report a position (or the sentinel) and
// never move the cursor. Committing the result, ringing the bell on
// failure, and jumplist bookkeeping belong to the jump package.
package region

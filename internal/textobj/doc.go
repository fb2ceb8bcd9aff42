// Package textobj builds text-object selections: given a locator for a
// span's begin boundary and one for its end boundary, carve out the
// selection enclosing the cursor, in an inner (delimiters excluded) or
// around (delimiters included) variant.
package textobj

// Package motion registers jump motions and text objects under key
// sequences. A Definition binds a name and keys to either a pattern
// pair (begin/end regex) or a line predicate, and expands into motions
// whose locate functions are first-class closures carrying their bound
// parameters.
package motion

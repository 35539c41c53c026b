// Package primitives provides the input vocabulary of a calculator session:
// immutable Events and the key parser that turns text into them.
//
// Validation of keys happens here. The calcx core assumes every Digit and
// Operation it receives is valid.
package primitives

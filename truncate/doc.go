// Package truncate provides the text operations bounded rendering is built
// on: rune-safe length clipping with an ellipsis, comment stripping, and
// collapsing multi-line text into a single line.
//
// The partial package composes these into its budget enforcement; they are
// also usable on their own for log and diagnostic output.
//
// # Basic Usage
//
// Clip a string to a maximum rune count:
//
//	short := truncate.ToLength(s, 32)
//
// Collapse rendered multi-line text into one line, dropping trailing
// # comments and leading indentation:
//
//	line := truncate.SingleLine(text)
//
// Enforce a hard total length with a trailing ellipsis:
//
//	out := truncate.Cap(line, 80)
//
// # UTF-8 Support
//
// All lengths count runes, not bytes, so multi-byte characters are never
// split.
package truncate

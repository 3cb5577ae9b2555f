// Package dumpkit provides bounded, partial rendering of in-memory values.
//
// dumpkit turns arbitrary nested values (scalars, sequences, mappings)
// into compact one-line text for logs, debugging output, and audit trails.
// Unlike a serializer it deliberately loses information: long strings are
// clipped, oversized sequences and mappings are truncated with an ellipsis
// marker, and the whole line is capped to a total length. Each subpackage
// can be used independently:
//
//   - partial: the bounded dump engine with key policies and masking
//   - dump: the underlying generic value-to-text renderer with filter hooks
//   - truncate: rune-safe clipping and single-line collapsing primitives
//   - profile: named limit profiles from TOML/YAML files, with hot reload
//
// # Quick Start
//
// Render with defaults (80-char line, 5 elements or keys per node):
//
//	import "github.com/randalmurphal/dumpkit/partial"
//	out, _ := partial.Dump([]any{1, "some long string", 3, 4, 5, 6, 7})
//	// [1, "some long string", 3, 4, 5, ...]
//
// Reuse a configured printer:
//
//	p := partial.New(partial.Options{MaxTotalLen: 200, HideKeys: []string{"password"}})
//	log.Printf("request: %s", p.Render(req))
//
// Load limits from a shared profile file:
//
//	import "github.com/randalmurphal/dumpkit/profile"
//	f, _ := profile.Load("dump-profiles.toml")
//	opts, _ := f.Options("audit")
//
// # Design Philosophy
//
//   - Each package usable independently
//   - Sensible defaults with full configurability
//   - Truncation is normal behavior, signaled in the output, never an error
//   - Interfaces for extensibility, concrete types for simplicity
package dumpkit

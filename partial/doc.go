// Package partial renders in-memory values as bounded one-line dumps.
//
// Unlike a serializer, the output deliberately loses information when the
// value is large: long strings are clipped with an ellipsis, sequences and
// mappings beyond a configured size are truncated, and the whole line is
// capped to a total length. The target is operational tooling (logs,
// debugging output, audit trails) where seeing enough of a value compactly
// beats seeing all of it.
//
// # Basic Usage
//
// Render a value with defaults (80-char line, 32-char strings, 5 elements
// or keys per node):
//
//	out, _ := partial.Dump([]any{1, "some long string", 3, 4, 5, 6, 7})
//	// [1, "some long string", 3, 4, 5, ...]
//
// Configure limits with a trailing Options:
//
//	out, _ := partial.Dump(req, resp, partial.Options{MaxTotalLen: 200})
//
// Or build a Printer once and reuse it:
//
//	p := partial.New(partial.Options{
//		MaxKeys:  10,
//		HideKeys: []string{"password"},
//		MaskKeys: regexp.MustCompile(`(?i)token|secret`),
//	})
//	log.Info("request", "body", p.Render(body))
//
// # Key Policies
//
// Three key lists control which mapping entries survive truncation:
// PreciousKeys are never dropped, WorthlessKeys are dropped first, and
// HideKeys are always dropped. Hidden wins over precious when a key is
// listed in both. MaskKeys replaces the values of matching keys with the
// mask token, and PairFilter rewrites entries arbitrarily: masking in
// place, renaming, or fanning one entry out into several.
//
// # Truncation Markers
//
// A trailing "..." inside a sequence or mapping is the only signal that
// entries were omitted; output without it is complete. The output is not
// parseable back into a value once truncation has occurred.
//
// # Diagnostics
//
// Print is a logging convenience that writes the rendered line to
// DiagnosticOutput (os.Stderr by default) as well as returning it.
package partial

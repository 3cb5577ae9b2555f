// Package dump renders arbitrary Go values as compact, deterministic text.
//
// The renderer walks a value graph and produces syntactically valid nested
// text: quoted strings, bracketed sequences, braced mappings with sorted
// keys, and struct literals for struct values. Short composites render on a
// single line; composites that exceed the line width wrap into an indented
// multi-line form.
//
// # Basic Usage
//
// Render a value with the default renderer:
//
//	text := dump.Dump(map[string]any{"name": "ada", "id": 7})
//	// {id: 7, name: "ada"}
//
// # Filters
//
// A Filter hook is invoked at every node before it renders, and may replace
// the node with pre-rendered text or with a substitute value:
//
//	r := dump.NewRenderer().WithFilter(func(v dump.Value) *dump.Swap {
//		if s, ok := v.Interface().(string); ok && len(s) > 8 {
//			return &dump.Swap{Value: s[:8]}
//		}
//		return nil
//	})
//	text := r.Render(value)
//
// Filters are the extension point the partial package builds its truncation
// engine on; they can also be used directly for redaction or custom
// formatting of individual nodes.
//
// # Determinism and Cycles
//
// Mapping keys are sorted by their rendered form, so equal values always
// render to equal text. Self-referential graphs are detected with a pointer
// guard; a revisited node renders as <cycle> instead of recursing forever.
package dump

package partial

import (
	"reflect"
	"regexp"
	"unicode/utf8"

	"github.com/randalmurphal/dumpkit/dump"
	"github.com/randalmurphal/dumpkit/truncate"
)

// engine holds the state of one truncation pass. Nested passes derive a new
// engine value instead of mutating shared state, so an inner pass can never
// leak its flags into sibling renders.
type engine struct {
	opts      Options
	precious  map[string]bool
	worthless map[string]bool
	hidden    map[string]bool

	// inner marks a nested pass: its output is spliced into a parent's
	// text, so the total-length budget must not apply.
	inner bool

	// skipTransformRoot suppresses the pair transform on the root mapping
	// of a nested pass. The outer pass already transformed it; applying it
	// again would double-mask.
	skipTransformRoot bool
}

func newEngine(opts Options) *engine {
	o := opts.normalized()
	return &engine{
		opts:      o,
		precious:  keySet(o.PreciousKeys),
		worthless: keySet(o.WorthlessKeys),
		hidden:    keySet(o.HideKeys),
	}
}

// nested derives the engine for a recursive render of a reduced node.
func (e *engine) nested(skipTransformRoot bool) *engine {
	child := *e
	child.inner = true
	child.skipTransformRoot = skipTransformRoot
	return &child
}

// render produces the node text for one value with truncation applied.
func (e *engine) render(v any) string {
	return dump.NewRenderer().WithFilter(e.filter).Render(v)
}

// filter is the per-node decision procedure, handed to the renderer. Rules
// apply in priority order; a node no rule claims falls through to the
// caller's generic Filter, and finally renders normally.
func (e *engine) filter(node dump.Value) *dump.Swap {
	switch node.Kind() {
	case dump.KindScalar:
		if sw := e.clipScalar(node); sw != nil {
			return sw
		}
	case dump.KindSequence:
		if sw := e.shrinkSequence(node); sw != nil {
			return sw
		}
	case dump.KindMapping:
		if sw := e.reduceMapping(node); sw != nil {
			return sw
		}
	}
	if e.opts.Filter != nil {
		return e.opts.Filter(node)
	}
	return nil
}

// clipScalar clips strings over the length limit. The clipped string is a
// direct replacement value: it needs no nested rendering and, being exactly
// MaxLen runes, cannot be clipped again.
func (e *engine) clipScalar(node dump.Value) *dump.Swap {
	if e.opts.MaxLen == NoLimit {
		return nil
	}
	s, ok := stringScalar(node.Interface())
	if !ok || utf8.RuneCountInString(s) <= e.opts.MaxLen {
		return nil
	}
	return &dump.Swap{Value: truncate.ToLength(s, e.opts.MaxLen)}
}

// shrinkSequence renders the first MaxElems elements through a nested pass
// and patches the truncation marker into the resulting text.
func (e *engine) shrinkSequence(node dump.Value) *dump.Swap {
	limit := e.opts.MaxElems
	if limit == NoLimit || node.Len() <= limit {
		return nil
	}
	rv := derefValue(node.Interface())
	prefix := make([]any, limit)
	for i := 0; i < limit; i++ {
		prefix[i] = rv.Index(i).Interface()
	}
	text := e.nested(false).render(prefix)
	return &dump.Swap{Text: insertMarker(text)}
}

// reduceMapping builds a working copy through the pair transform, applies
// key selection when the pre-transform key count is over the limit, and
// re-renders through a nested pass when either changed the mapping. Only
// true key truncation earns the marker.
func (e *engine) reduceMapping(node dump.Value) *dump.Swap {
	pairs := mapPairs(node.Interface())

	changed := false
	if !e.skipTransformRoot || node.Depth() > 0 {
		pairs, changed = e.transformPairs(pairs)
	}

	limit := e.opts.MaxKeys
	truncated := false
	if limit != NoLimit && node.Len() > limit {
		pairs = selectKeys(pairs, limit, e.precious, e.worthless, e.hidden)
		truncated = true
	} else if len(e.hidden) > 0 {
		// Hidden keys are dropped even when the mapping is under the key
		// limit; that forces a re-render but earns no marker.
		kept := make([]Pair, 0, len(pairs))
		for _, p := range pairs {
			if !e.hidden[p.Key] {
				kept = append(kept, p)
			}
		}
		if len(kept) != len(pairs) {
			pairs = kept
			changed = true
		}
	}

	if !changed && !truncated {
		return nil
	}

	reduced := make(map[string]any, len(pairs))
	for _, p := range pairs {
		reduced[p.Key] = p.Value
	}
	text := e.nested(true).render(reduced)
	if truncated {
		text = insertMarker(text)
	}
	return &dump.Swap{Text: text}
}

var (
	markedRe = regexp.MustCompile(`,\s*\.\.\.\s*[\]}]\s*$`)
	closerRe = regexp.MustCompile(`,?\s*([\]}])\s*$`)
)

// insertMarker splices ", ..." in front of a rendered node's closing
// delimiter. The substitution happens once: text already carrying the
// marker is returned as is.
func insertMarker(text string) string {
	if markedRe.MatchString(text) {
		return text
	}
	if text == "[]" || text == "{}" {
		return text[:1] + truncate.Ellipsis + text[1:]
	}
	return closerRe.ReplaceAllString(text, ", ...$1")
}

// stringScalar extracts a string from string-like scalars: strings, byte
// slices, and pointers to either.
func stringScalar(v any) (string, bool) {
	rv := derefValue(v)
	if !rv.IsValid() {
		return "", false
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), true
		}
	}
	return "", false
}

// derefValue unwraps pointers and interfaces down to the concrete value.
func derefValue(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

package dump

import "reflect"

// Value describes a node the renderer is about to emit. It is handed to the
// configured Filter, which inspects the node and decides whether to replace
// it.
type Value struct {
	v     any
	kind  Kind
	depth int
}

// Interface returns the underlying value.
func (v Value) Interface() any {
	return v.v
}

// Kind returns the node's shape classification.
func (v Value) Kind() Kind {
	return v.kind
}

// Depth returns the node's depth in the current render. The root is depth 0.
func (v Value) Depth() int {
	return v.depth
}

// Len returns the element count for sequences and the key count for
// mappings. Scalars and structs report 0.
func (v Value) Len() int {
	rv := deref(v.v)
	if !rv.IsValid() {
		return 0
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	default:
		return 0
	}
}

// Swap is a filter's replacement for a node. Exactly one of Text or Value
// should be set: Text is spliced into the output verbatim, Value is rendered
// in the node's place (without re-filtering the replacement's root, so a
// filter cannot loop on its own substitution). Comment, if set, is attached
// as a trailing # comment when the enclosing composite renders multi-line.
type Swap struct {
	Text    string
	Value   any
	Comment string
}

// Filter is invoked at every node before it renders. Returning nil leaves
// the node to render normally.
type Filter func(v Value) *Swap

package dump

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// DefaultWidth is the single-line width limit beyond which composites wrap
// into indented multi-line form.
const DefaultWidth = 60

// CycleToken replaces a node that is already being rendered higher up the
// value graph.
const CycleToken = "<cycle>"

// Renderer converts values to text. The zero value is not usable; create
// one with NewRenderer.
type Renderer struct {
	filter Filter
	width  int
}

// NewRenderer creates a renderer with the default line width and no filter.
func NewRenderer() *Renderer {
	return &Renderer{width: DefaultWidth}
}

// WithFilter sets the per-node filter hook.
func (r *Renderer) WithFilter(f Filter) *Renderer {
	r.filter = f
	return r
}

// WithWidth sets the single-line width limit. Values below 1 are ignored.
func (r *Renderer) WithWidth(n int) *Renderer {
	if n > 0 {
		r.width = n
	}
	return r
}

// Render produces the textual form of v.
func (r *Renderer) Render(v any) string {
	st := &renderState{r: r, seen: make(map[uintptr]bool)}
	return st.render(v, 0, false).text
}

// Dump renders v with a default renderer.
func Dump(v any) string {
	return NewRenderer().Render(v)
}

// node is one rendered subtree plus an optional trailing comment.
type node struct {
	text    string
	comment string
}

// item is one element or entry inside a composite.
type item struct {
	text    string
	comment string
}

type renderState struct {
	r    *Renderer
	seen map[uintptr]bool
}

func (s *renderState) render(v any, depth int, skipFilter bool) node {
	if !skipFilter && s.r.filter != nil {
		if sw := s.r.filter(Value{v: v, kind: KindOf(v), depth: depth}); sw != nil {
			if sw.Text != "" {
				return node{text: sw.Text, comment: sw.Comment}
			}
			n := s.render(sw.Value, depth, true)
			if sw.Comment != "" {
				n.comment = sw.Comment
			}
			return n
		}
	}

	if v == nil {
		return node{text: "nil"}
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return node{text: "nil"}
		}
		if rv.Kind() == reflect.Pointer {
			p := rv.Pointer()
			if s.seen[p] {
				return node{text: CycleToken}
			}
			s.seen[p] = true
			defer delete(s.seen, p)
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return node{text: "nil"}
	}

	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return node{text: strconv.Quote(string(rv.Bytes()))}
		}
		p := rv.Pointer()
		if p != 0 {
			if s.seen[p] {
				return node{text: CycleToken}
			}
			s.seen[p] = true
			defer delete(s.seen, p)
		}
		return s.renderSequence(rv, depth)

	case reflect.Array:
		return s.renderSequence(rv, depth)

	case reflect.Map:
		p := rv.Pointer()
		if p != 0 {
			if s.seen[p] {
				return node{text: CycleToken}
			}
			s.seen[p] = true
			defer delete(s.seen, p)
		}
		return s.renderMapping(rv, depth)

	case reflect.Struct:
		return s.renderStruct(rv, depth)

	default:
		return node{text: scalarText(rv)}
	}
}

func (s *renderState) renderSequence(rv reflect.Value, depth int) node {
	items := make([]item, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		child := s.render(rv.Index(i).Interface(), depth+1, false)
		items[i] = item{text: child.text, comment: child.comment}
	}
	return node{text: s.compose("[", "]", items)}
}

func (s *renderState) renderMapping(rv reflect.Value, depth int) node {
	items := make([]item, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := keyText(iter.Key())
		child := s.render(iter.Value().Interface(), depth+1, false)
		items = append(items, item{text: key + ": " + child.text, comment: child.comment})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].text < items[j].text })
	return node{text: s.compose("{", "}", items)}
}

func (s *renderState) renderStruct(rv reflect.Value, depth int) node {
	t := rv.Type()
	items := make([]item, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		child := s.render(rv.Field(i).Interface(), depth+1, false)
		items = append(items, item{text: f.Name + ": " + child.text, comment: child.comment})
	}
	return node{text: s.compose(t.Name()+"{", "}", items)}
}

// compose lays out a composite's items either on one line or in indented
// multi-line form, depending on width, embedded newlines, and comments.
func (s *renderState) compose(open, close string, items []item) string {
	if len(items) == 0 {
		return open + close
	}

	single := true
	for _, it := range items {
		if it.comment != "" || strings.Contains(it.text, "\n") {
			single = false
			break
		}
	}
	if single {
		texts := make([]string, len(items))
		for i, it := range items {
			texts[i] = it.text
		}
		line := open + strings.Join(texts, ", ") + close
		if len(line) <= s.r.width {
			return line
		}
	}

	var b strings.Builder
	b.WriteString(open)
	b.WriteString("\n")
	for _, it := range items {
		lines := strings.Split(it.text, "\n")
		for j, ln := range lines {
			b.WriteString("  ")
			b.WriteString(ln)
			if j < len(lines)-1 {
				b.WriteString("\n")
			}
		}
		b.WriteString(",")
		if it.comment != "" {
			b.WriteString(" # ")
			b.WriteString(it.comment)
		}
		b.WriteString("\n")
	}
	b.WriteString(close)
	return b.String()
}

// keyText renders a mapping key. Identifier-like string keys render bare,
// everything else renders as a scalar.
func keyText(rv reflect.Value) string {
	for rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "nil"
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.String {
		s := rv.String()
		if isIdent(s) {
			return s
		}
		return strconv.Quote(s)
	}
	return scalarText(rv)
}

func scalarText(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	default:
		return fmt.Sprintf("%v", rv.Interface())
	}
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

package dump

import (
	"strings"
	"testing"
)

func TestDump_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "hello", `"hello"`},
		{"empty string", "", `""`},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"float", 3.5, "3.5"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"nil", nil, "nil"},
		{"bytes as string", []byte("raw"), `"raw"`},
		{"string with quotes", `a "b" c`, `"a \"b\" c"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dump(tt.in); got != tt.want {
				t.Errorf("Dump(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDump_Sequences(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"empty", []any{}, "[]"},
		{"ints", []int{1, 2, 3}, "[1, 2, 3]"},
		{"mixed", []any{1, "two", true}, `[1, "two", true]`},
		{"nested", []any{[]int{1}, []int{2}}, "[[1], [2]]"},
		{"array", [3]int{7, 8, 9}, "[7, 8, 9]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dump(tt.in); got != tt.want {
				t.Errorf("Dump() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDump_Mappings(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"empty", map[string]any{}, "{}"},
		{"sorted keys", map[string]int{"b": 2, "a": 1, "c": 3}, "{a: 1, b: 2, c: 3}"},
		{"quoted key", map[string]int{"two words": 1}, `{"two words": 1}`},
		{"int keys", map[int]string{2: "b", 1: "a"}, `{1: "a", 2: "b"}`},
		{"nested", map[string]any{"inner": map[string]int{"x": 1}}, "{inner: {x: 1}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dump(tt.in); got != tt.want {
				t.Errorf("Dump() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDump_Struct(t *testing.T) {
	type point struct {
		X int
		Y int
	}
	got := Dump(point{X: 1, Y: 2})
	want := "point{X: 1, Y: 2}"
	if got != want {
		t.Errorf("Dump() = %q, want %q", got, want)
	}
}

func TestDump_StructSkipsUnexported(t *testing.T) {
	type mixed struct {
		Public int
		secret int
	}
	got := Dump(mixed{Public: 1, secret: 2})
	want := "mixed{Public: 1}"
	if got != want {
		t.Errorf("Dump() = %q, want %q", got, want)
	}
}

func TestDump_Pointer(t *testing.T) {
	n := 5
	if got := Dump(&n); got != "5" {
		t.Errorf("Dump(&n) = %q, want %q", got, "5")
	}

	var p *int
	if got := Dump(p); got != "nil" {
		t.Errorf("Dump(nil ptr) = %q, want %q", got, "nil")
	}
}

func TestDump_Cycle(t *testing.T) {
	m := map[string]any{}
	m["self"] = m

	got := Dump(m)
	want := "{self: <cycle>}"
	if got != want {
		t.Errorf("Dump(cyclic map) = %q, want %q", got, want)
	}
}

func TestDump_CycleThroughSlice(t *testing.T) {
	s := make([]any, 1)
	s[0] = s

	got := Dump(s)
	want := "[" + CycleToken + "]"
	if got != want {
		t.Errorf("Dump(cyclic slice) = %q, want %q", got, want)
	}
}

func TestDump_SharedValueIsNotACycle(t *testing.T) {
	shared := map[string]int{"x": 1}
	got := Dump([]any{shared, shared})
	want := "[{x: 1}, {x: 1}]"
	if got != want {
		t.Errorf("Dump(shared) = %q, want %q", got, want)
	}
}

func TestRenderer_Wrapping(t *testing.T) {
	long := []string{
		strings.Repeat("a", 30),
		strings.Repeat("b", 30),
	}
	got := NewRenderer().Render(long)
	if !strings.Contains(got, "\n") {
		t.Errorf("expected multi-line output for wide composite, got %q", got)
	}
	if !strings.HasPrefix(got, "[\n") || !strings.HasSuffix(got, "\n]") {
		t.Errorf("unexpected multi-line shape: %q", got)
	}
}

func TestRenderer_WithWidth(t *testing.T) {
	v := []int{1, 2, 3}
	wide := NewRenderer().WithWidth(200).Render(v)
	if wide != "[1, 2, 3]" {
		t.Errorf("wide render = %q, want single line", wide)
	}

	narrow := NewRenderer().WithWidth(4).Render(v)
	if !strings.Contains(narrow, "\n") {
		t.Errorf("narrow render = %q, want multi-line", narrow)
	}
}

func TestRenderer_FilterText(t *testing.T) {
	f := func(v Value) *Swap {
		if s, ok := v.Interface().(string); ok && s == "secret" {
			return &Swap{Text: `"***"`}
		}
		return nil
	}
	got := NewRenderer().WithFilter(f).Render([]any{"ok", "secret"})
	want := `["ok", "***"]`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderer_FilterValue(t *testing.T) {
	f := func(v Value) *Swap {
		if s, ok := v.Interface().(string); ok && len(s) > 4 {
			return &Swap{Value: s[:4]}
		}
		return nil
	}
	got := NewRenderer().WithFilter(f).Render("abcdefgh")
	want := `"abcd"`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderer_FilterComment(t *testing.T) {
	f := func(v Value) *Swap {
		if n, ok := v.Interface().(int); ok && n > 100 {
			return &Swap{Value: n, Comment: "large"}
		}
		return nil
	}
	got := NewRenderer().WithFilter(f).Render([]int{1, 500})
	if !strings.Contains(got, "# large") {
		t.Errorf("expected comment in output, got %q", got)
	}
	if !strings.Contains(got, "\n") {
		t.Errorf("comments should force multi-line layout, got %q", got)
	}
}

func TestRenderer_FilterDepth(t *testing.T) {
	var depths []int
	f := func(v Value) *Swap {
		if _, ok := v.Interface().(int); ok {
			depths = append(depths, v.Depth())
		}
		return nil
	}
	NewRenderer().WithFilter(f).Render([]any{1, []any{2}})

	if len(depths) != 2 || depths[0] != 1 || depths[1] != 2 {
		t.Errorf("depths = %v, want [1 2]", depths)
	}
}

package dump

import "reflect"

// Kind classifies a node into the shapes the renderer distinguishes.
type Kind int

const (
	// KindScalar covers strings, numbers, booleans, nil, and []byte.
	KindScalar Kind = iota

	// KindSequence covers slices and arrays (except []byte).
	KindSequence

	// KindMapping covers maps.
	KindMapping

	// KindStruct covers struct values.
	KindStruct
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// KindOf classifies a value, dereferencing pointers and interfaces first.
// []byte counts as a scalar: it renders as a quoted string, not element by
// element.
func KindOf(v any) Kind {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return KindScalar
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return KindScalar
	}
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return KindScalar
		}
		return KindSequence
	case reflect.Array:
		return KindSequence
	case reflect.Map:
		return KindMapping
	case reflect.Struct:
		return KindStruct
	default:
		return KindScalar
	}
}

// deref unwraps pointers and interfaces down to the concrete value.
// Returns an invalid Value for nil.
func deref(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

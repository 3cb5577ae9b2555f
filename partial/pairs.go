package partial

import (
	"fmt"
	"reflect"
	"sort"
)

// mapPairs flattens a mapping into key-sorted pairs. Non-string keys are
// stringified, so key policies and masks apply to their textual form.
func mapPairs(v any) []Pair {
	rv := derefValue(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil
	}
	pairs := make([]Pair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key()
		for key.Kind() == reflect.Interface && !key.IsNil() {
			key = key.Elem()
		}
		var ks string
		if key.Kind() == reflect.String {
			ks = key.String()
		} else {
			ks = fmt.Sprintf("%v", key.Interface())
		}
		pairs = append(pairs, Pair{Key: ks, Value: iter.Value().Interface()})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs
}

// transformPairs applies the PairFilter and then the mask pattern to every
// entry. Reports whether any entry changed, which forces a re-render of the
// mapping even when no key truncation happens.
func (e *engine) transformPairs(pairs []Pair) ([]Pair, bool) {
	if e.opts.PairFilter == nil && e.opts.MaskKeys == nil {
		return pairs, false
	}

	changed := false
	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		replacements := []Pair{p}
		if e.opts.PairFilter != nil {
			replacements = e.opts.PairFilter(p.Key, p.Value)
			if !unchangedPair(p, replacements) {
				changed = true
			}
		}
		for _, rp := range replacements {
			if e.opts.MaskKeys != nil && e.opts.MaskKeys.MatchString(rp.Key) {
				if s, ok := rp.Value.(string); !ok || s != e.opts.MaskToken {
					rp.Value = e.opts.MaskToken
					changed = true
				}
			}
			out = append(out, rp)
		}
	}
	return out, changed
}

// unchangedPair reports whether a PairFilter result is the identity.
func unchangedPair(p Pair, replacements []Pair) bool {
	return len(replacements) == 1 &&
		replacements[0].Key == p.Key &&
		reflect.DeepEqual(replacements[0].Value, p.Value)
}

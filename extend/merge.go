package extend

import (
	"maps"
	"reflect"
	"sort"
)

// MergeSetting combines an incoming setting value with the value
// already stored under the same name. The first matching case wins:
//
//  1. no existing value: the incoming value is stored as-is;
//  2. existing sequence: the incoming value (coerced to a one-element
//     sequence if it is not one) is appended after the existing
//     elements, duplicates allowed;
//  3. existing mapping, incoming mapping: shallow merge into a new
//     map, incoming keys win;
//  4. existing mapping, incoming sequence: the existing mapping
//     becomes the first element of the incoming sequence;
//  5. anything else (scalar existing included): the incoming value
//     overwrites.
//
// Neither input is mutated; merged mappings and sequences are fresh
// values.
func MergeSetting(existing, incoming any) any {
	if existing == nil {
		return incoming
	}
	if seq, ok := asSequence(existing); ok {
		in, ok := asSequence(incoming)
		if !ok {
			in = []any{incoming}
		}
		merged := make([]any, 0, len(seq)+len(in))
		merged = append(merged, seq...)
		return append(merged, in...)
	}
	if cur, ok := asMapping(existing); ok {
		if in, ok := asMapping(incoming); ok {
			merged := make(map[string]any, len(cur)+len(in))
			maps.Copy(merged, cur)
			maps.Copy(merged, in)
			return merged
		}
		if in, ok := asSequence(incoming); ok {
			merged := make([]any, 0, len(in)+1)
			merged = append(merged, existing)
			return append(merged, in...)
		}
	}
	return incoming
}

// asSequence reports whether v is a sequence and returns it as []any.
func asSequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case []any:
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	seq := make([]any, rv.Len())
	for i := range seq {
		seq[i] = rv.Index(i).Interface()
	}
	return seq, true
}

// asMapping reports whether v is a string-keyed mapping and returns it
// as map[string]any.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	mapped := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		mapped[iter.Key().String()] = iter.Value().Interface()
	}
	return mapped, true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

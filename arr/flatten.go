package arr

import "reflect"

// Flatten removes one level of nesting: elements that are slices (of any
// element type) are spliced in, every other element passes through
// unchanged.
//
//	arr.Flatten([]any{1, []any{2, 3}, []int{4}, []any{5, []any{6}}})
//	// → [1 2 3 4 5 [6]]
//
// For a typed [][]T use [Collapse].
func Flatten(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		if sub, ok := asSlice(item); ok {
			out = append(out, sub...)
		} else {
			out = append(out, item)
		}
	}
	return out
}

// DeepFlatten recursively flattens nested slices of arbitrary depth until no
// element is itself a slice.
func DeepFlatten(items []any) []any {
	out := make([]any, 0, len(items))
	var walk func([]any)
	walk = func(level []any) {
		for _, item := range level {
			if sub, ok := asSlice(item); ok {
				walk(sub)
			} else {
				out = append(out, item)
			}
		}
	}
	walk(items)
	return out
}

// Compact returns items without nil elements: nil interfaces, pointers,
// maps, slices, funcs and channels are dropped.
func Compact[T any](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !isNil(item) {
			out = append(out, item)
		}
	}
	return out
}

// asSlice reports whether v holds a slice and, if so, returns its elements
// boxed as []any.
func asSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

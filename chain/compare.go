package chain

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
)

// refKey identifies a slice, map or func value by its address.
type refKey struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// identity returns a comparable key for v. Comparable values are their own
// key; slices, maps and funcs are keyed by reference; remaining values (such
// as structs holding a slice) fall back to their Go-syntax representation.
func identity(v any) any {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Slice:
		return refKey{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}
	case reflect.Map, reflect.Func:
		return refKey{typ: rv.Type(), ptr: rv.Pointer()}
	}
	if rv.Comparable() {
		return v
	}
	return fmt.Sprintf("%T:%#v", v, v)
}

// compareNatural orders numbers numerically, strings lexically and false
// before true. Mixed or other kinds compare by their fmt.Sprint form.
func compareNatural(a, b any) int {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.IsValid() && rb.IsValid() {
		fa, aok := toFloat(a)
		fb, bok := toFloat(b)
		switch {
		case ra.CanInt() && rb.CanInt():
			return cmp.Compare(ra.Int(), rb.Int())
		case ra.CanUint() && rb.CanUint():
			return cmp.Compare(ra.Uint(), rb.Uint())
		case aok && bok:
			return cmp.Compare(fa, fb)
		case ra.Kind() == reflect.String && rb.Kind() == reflect.String:
			return strings.Compare(ra.String(), rb.String())
		case ra.Kind() == reflect.Bool && rb.Kind() == reflect.Bool:
			return cmp.Compare(boolRank(ra.Bool()), boolRank(rb.Bool()))
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// toFloat converts any integer or float kind to float64.
func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch {
	case !rv.IsValid():
		return 0, false
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	case rv.CanFloat():
		return rv.Float(), true
	}
	return 0, false
}

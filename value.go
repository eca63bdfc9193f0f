package ddd

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// ValueObject is a domain object without identity, compared structurally via
// its equality components. Fields outside the components are carried but
// ignored for comparison.
type ValueObject interface {
	// EqualityComponents returns the fields that determine equality, in
	// declared order.
	EqualityComponents() []any
}

// Equal reports whether two value objects have pairwise equal components.
func Equal(a, b ValueObject) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ac, bc := a.EqualityComponents(), b.EqualityComponents()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !deepEqual(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// Compare totally orders two value objects: components are compared in
// declared order and the first unequal component decides. It returns -1, 0
// or +1.
func Compare(a, b ValueObject) int {
	ac, bc := a.EqualityComponents(), b.EqualityComponents()
	for i := range ac {
		if i >= len(bc) {
			return 1
		}
		if c := compareComponent(ac[i], bc[i]); c != 0 {
			return c
		}
	}
	if len(ac) < len(bc) {
		return -1
	}
	return 0
}

func compareComponent(a, b any) int {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.IsValid() && bv.IsValid() && av.Kind() == bv.Kind() {
		switch av.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(av.Int(), bv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return cmp.Compare(av.Uint(), bv.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(av.Float(), bv.Float())
		case reflect.String:
			return strings.Compare(av.String(), bv.String())
		case reflect.Bool:
			switch {
			case av.Bool() == bv.Bool():
				return 0
			case bv.Bool():
				return -1
			default:
				return 1
			}
		}
	}

	// Components without a natural order fall back to their string form.
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// deepEqual is a helper function for deep comparison.
func deepEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

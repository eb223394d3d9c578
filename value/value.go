// Package value implements the dynamic JSON value model the engine
// operates on: null, boolean, integer, floating point number, string,
// ordered array, and insertion-order-preserving object.
//
// Values are represented as plain Go any, using one of: nil, bool, int64,
// float64, string, *Array, or *Object. Any other concrete type passed to
// the engine is treated as an opaque scalar that navigation steps skip
// over and filter comparisons never consider equal or ordered.
package value

// IsNumber reports whether v is an int64 or float64.
func IsNumber(v any) bool {
	switch v.(type) {
	case int64, float64:
		return true
	default:
		return false
	}
}

// AsFloat64 converts v to a float64 if it is a numeric value.
func AsFloat64(v any) (float64, bool) {
	switch v := v.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// Len returns the number of elements in v if it is an *Array or *Object,
// the number of runes if it is a string, and 0, false otherwise.
func Len(v any) (int, bool) {
	switch v := v.(type) {
	case *Array:
		return v.Len(), true
	case *Object:
		return v.Len(), true
	case string:
		return len([]rune(v)), true
	default:
		return 0, false
	}
}

// DeepEqual reports whether a and b are structurally equal JSON values.
func DeepEqual(a, b any) bool {
	if af, ok := AsFloat64(a); ok {
		bf, ok := AsFloat64(b)
		return ok && af == bf
	}

	switch a := a.(type) {
	case nil:
		return b == nil
	case bool:
		b, ok := b.(bool)
		return ok && a == b
	case string:
		b, ok := b.(string)
		return ok && a == b
	case *Array:
		b, ok := b.(*Array)
		if !ok || a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !DeepEqual(a.At(i), b.At(i)) {
				return false
			}
		}
		return true
	case *Object:
		b, ok := b.(*Object)
		if !ok || a.Len() != b.Len() {
			return false
		}
		for _, k := range a.Keys() {
			bv, ok := b.Get(k)
			if !ok {
				return false
			}
			av, _ := a.Get(k)
			if !DeepEqual(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Less reports whether a is ordered strictly before b. Only numeric pairs
// and string pairs are ordered; any other combination returns false.
func Less(a, b any) bool {
	if af, ok := AsFloat64(a); ok {
		if bf, ok := AsFloat64(b); ok {
			return af < bf
		}
		return false
	}

	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as < bs
		}
	}

	return false
}

// SameType reports whether a and b belong to the same comparison class:
// both numeric, or both nil, both bool, both string, both *Array, or
// both *Object. Any other concrete type belongs to no class.
func SameType(a, b any) bool {
	if IsNumber(a) && IsNumber(b) {
		return true
	}
	switch a.(type) {
	case nil:
		return b == nil
	case bool:
		_, ok := b.(bool)
		return ok
	case string:
		_, ok := b.(string)
		return ok
	case *Array:
		_, ok := b.(*Array)
		return ok
	case *Object:
		_, ok := b.(*Object)
		return ok
	default:
		return false
	}
}

package spec

import "github.com/pathlang/jsonpath/value"

// CompOp is a filter comparison operator.
type CompOp uint8

const (
	// EqualOp is ==.
	EqualOp CompOp = iota
	// NotEqualOp is !=.
	NotEqualOp
	// LessOp is <.
	LessOp
	// LessOrEqualOp is <=.
	LessOrEqualOp
	// GreaterOp is >.
	GreaterOp
	// GreaterOrEqualOp is >=.
	GreaterOrEqualOp
)

// String returns op's source syntax.
func (op CompOp) String() string {
	switch op {
	case EqualOp:
		return "=="
	case NotEqualOp:
		return "!="
	case LessOp:
		return "<"
	case LessOrEqualOp:
		return "<="
	case GreaterOp:
		return ">"
	case GreaterOrEqualOp:
		return ">="
	default:
		return "?"
	}
}

// compareOne evaluates op against a single pair of values, mirroring the
// teacher's equalTo/lessThan/sameType comparison helpers: equality and
// inequality are defined for any pair via value.DeepEqual, while
// ordering operators require a and b to be value.SameType and fall back
// to false otherwise. value.Less orders only numbers and strings, so for
// other same-type pairs (two bools, two nulls) < and > are always false
// and <= and >= hold exactly when the two values are equal.
func compareOne(op CompOp, a, b any) bool {
	switch op {
	case EqualOp:
		return value.DeepEqual(a, b)
	case NotEqualOp:
		return !value.DeepEqual(a, b)
	case LessOp:
		return value.SameType(a, b) && value.Less(a, b)
	case LessOrEqualOp:
		return value.SameType(a, b) && (value.Less(a, b) || value.DeepEqual(a, b))
	case GreaterOp:
		return value.SameType(a, b) && value.Less(b, a)
	case GreaterOrEqualOp:
		return value.SameType(a, b) && (value.Less(b, a) || value.DeepEqual(a, b))
	default:
		return false
	}
}

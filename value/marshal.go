package value

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// marshalJSON marshals a single Value Model node (nil, bool, int64,
// float64, string, *Array, or *Object) to JSON. Numbers and strings defer
// to encoding/json for correct escaping; *Array and *Object recurse
// through their own MarshalJSON.
func marshalJSON(v any) ([]byte, error) {
	switch v := v.(type) {
	case nil:
		return []byte("null"), nil
	case bool:
		if v {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case int64:
		return []byte(strconv.FormatInt(v, 10)), nil
	case float64:
		return json.Marshal(v)
	case string:
		return json.Marshal(v)
	case *Array:
		return v.MarshalJSON()
	case *Object:
		return v.MarshalJSON()
	default:
		return nil, fmt.Errorf("value: cannot marshal %T", v)
	}
}

// Marshal marshals a Value Model tree (as returned by Decode, or built by
// hand from *Object/*Array/scalars) to its compact JSON representation.
func Marshal(v any) ([]byte, error) {
	return marshalJSON(v)
}

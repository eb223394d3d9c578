package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads a single JSON value from r into the engine's Value Model,
// preserving object key order. It uses json.Decoder.Token, which the
// standard library exposes precisely so callers can build their own
// in-memory representations instead of the order-losing map[string]any
// encoding/json.Unmarshal produces by default.
func Decode(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}
	return v, nil
}

// DecodeString is a convenience wrapper around Decode for an in-memory
// JSON string.
func DecodeString(s string) (any, error) {
	return Decode(bytes.NewReader([]byte(s)))
}

// decodeValue decodes the next JSON value token from dec.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

// decodeToken converts tok, the token just read from dec, into a Value
// Model node, consuming further tokens from dec for arrays and objects.
func decodeToken(dec *json.Decoder, tok json.Token) (any, error) {
	switch tok := tok.(type) {
	case json.Delim:
		switch tok {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", tok)
		}
	case json.Number:
		return decodeNumber(tok)
	case string:
		return tok, nil
	case bool:
		return tok, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected token %v (%T)", tok, tok)
	}
}

// decodeNumber converts a json.Number to int64 if it has no fractional or
// exponent part, and float64 otherwise.
func decodeNumber(n json.Number) (any, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", n.String(), err)
	}
	return f, nil
}

// decodeArray decodes a JSON array, dec having already consumed the
// opening '['.
func decodeArray(dec *json.Decoder) (*Array, error) {
	arr := NewArray()
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr.Append(v)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, err
	}
	return arr, nil
}

// decodeObject decodes a JSON object, dec having already consumed the
// opening '{'. Key order is preserved.
func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, err
	}
	return obj, nil
}

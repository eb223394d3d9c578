package value

import (
	"bytes"
)

// Object is an insertion-order-preserving JSON object. The zero value is
// an empty object ready to use.
type Object struct {
	keys []string
	vals map[string]any
}

// NewObject returns a new, empty Object.
func NewObject() *Object {
	return &Object{vals: map[string]any{}}
}

// Len returns the number of members in o.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns o's keys in insertion order. The returned slice must not be
// modified by the caller.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is present in o.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set sets key to val, appending key to the insertion order if it is new.
// Mutates o in place.
func (o *Object) Set(key string, val any) {
	if o.vals == nil {
		o.vals = map[string]any{}
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = val
}

// Delete removes key from o, if present. Mutates o in place.
func (o *Object) Delete(key string) {
	if o == nil {
		return
	}
	if _, ok := o.vals[key]; !ok {
		return
	}
	delete(o.vals, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Values returns o's values in key insertion order.
func (o *Object) Values() []any {
	vals := make([]any, len(o.Keys()))
	for i, k := range o.Keys() {
		vals[i], _ = o.Get(k)
	}
	return vals
}

// MarshalJSON writes o as a JSON object, preserving key order. Implements
// json.Marshaler.
func (o *Object) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte('{')
	for i, k := range o.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := marshalJSON(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		v, _ := o.Get(k)
		vb, err := marshalJSON(v)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String returns a compact JSON representation of o, or "{}" on marshal
// failure (which cannot happen for a well-formed value tree).
func (o *Object) String() string {
	b, err := o.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(b)
}

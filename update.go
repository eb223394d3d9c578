package jsonpath

import (
	"fmt"
	"strconv"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/pathlang/jsonpath/spec"
	"github.com/pathlang/jsonpath/value"
)

// Update runs p against root and replaces every matched value with
// newValue, mutating root's *value.Object/*value.Array tree in place.
// Per the design note this mutation strategy follows: for each match,
// resolve its parent locator, then index or assign into that parent —
// there is no attempt at structural sharing between old and new trees.
// A match at the document root itself (an empty NormalizedPath, as from
// the trivial expression "$") cannot be replaced in place, since there
// is no parent container to assign into, and is skipped.
func (p *Path) Update(root any, newValue any) error {
	return p.UpdateFunc(root, func(any) any { return newValue })
}

// UpdateFunc is like Update, but computes each match's replacement by
// calling fn with the match's current value, so the new value can
// depend on the old one. Matches are evaluated once, up front, against
// the original document; an earlier match's mutation can change the
// shape of the tree an ancestor of a later match sits in (e.g. replacing
// an object with a scalar), leaving that later match's recorded path
// unable to be resolved any more. Per spec.md §4.6/§7's silent-skip
// convention, such a match is simply skipped rather than aborting the
// rest of the update.
func (p *Path) UpdateFunc(root any, fn func(any) any) error {
	ms, err := p.expr.Evaluate(root)
	if err != nil {
		return err
	}
	for _, m := range ms {
		applyUpdate(root, m, fn)
	}
	return nil
}

// applyUpdate resolves m's parent container within root and assigns
// fn(m.Value) into it at m's final locator. If m's path no longer
// resolves — because an earlier match in the same batch mutated an
// ancestor out from under it — applyUpdate skips m silently instead of
// reporting an error.
func applyUpdate(root any, m spec.Match, fn func(any) any) {
	if len(m.Path) == 0 {
		return
	}
	parent, err := navigate(root, m.Path[:len(m.Path)-1])
	if err != nil {
		return
	}
	newVal := fn(m.Value)
	switch loc := m.Path[len(m.Path)-1].(type) {
	case spec.Key:
		obj, ok := parent.(*value.Object)
		if !ok {
			return
		}
		obj.Set(string(loc), newVal)
	case spec.Index:
		arr, ok := parent.(*value.Array)
		if !ok {
			return
		}
		if int(loc) < 0 || int(loc) >= arr.Len() {
			return
		}
		arr.Set(int(loc), newVal)
	}
}

// navigate walks path's locators from root, returning the value found
// at its end.
func navigate(root any, path spec.NormalizedPath) (any, error) {
	cur := root
	for _, loc := range path {
		switch l := loc.(type) {
		case spec.Key:
			obj, ok := cur.(*value.Object)
			if !ok {
				return nil, fmt.Errorf("jsonpath: cannot navigate key %q into %T", l, cur)
			}
			v, ok := obj.Get(string(l))
			if !ok {
				return nil, fmt.Errorf("jsonpath: missing key %q", l)
			}
			cur = v
		case spec.Index:
			arr, ok := cur.(*value.Array)
			if !ok {
				return nil, fmt.Errorf("jsonpath: cannot navigate index %d into %T", l, cur)
			}
			if int(l) < 0 || int(l) >= arr.Len() {
				return nil, fmt.Errorf("jsonpath: index %d out of range", l)
			}
			cur = arr.At(int(l))
		default:
			return nil, fmt.Errorf("jsonpath: unknown locator type %T", l)
		}
	}
	return cur, nil
}

// ToPatch runs p against root and describes the would-be replacement of
// every matched value with newValue as an RFC 6902 JSON Patch document
// (a list of "replace" operations), without mutating root. The patch is
// round-tripped through github.com/evanphx/json-patch/v5's decoder as a
// validity check before being returned.
func (p *Path) ToPatch(root any, newValue any) ([]byte, error) {
	ms, err := p.expr.Evaluate(root)
	if err != nil {
		return nil, err
	}
	newValBytes, err := value.Marshal(newValue)
	if err != nil {
		return nil, fmt.Errorf("jsonpath: marshaling patch value: %w", err)
	}

	buf := new(strings.Builder)
	buf.WriteByte('[')
	written := 0
	for _, m := range ms {
		if len(m.Path) == 0 {
			continue
		}
		if written > 0 {
			buf.WriteByte(',')
		}
		written++
		buf.WriteString(`{"op":"replace","path":"`)
		buf.WriteString(toJSONPointer(m.Path))
		buf.WriteString(`","value":`)
		buf.Write(newValBytes)
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	patchBytes := []byte(buf.String())

	if _, err := jsonpatch.DecodePatch(patchBytes); err != nil {
		return nil, fmt.Errorf("jsonpath: generated patch is invalid: %w", err)
	}
	return patchBytes, nil
}

// toJSONPointer renders path as an RFC 6901 JSON Pointer, escaping ~ as
// ~0 and / as ~1 within each key segment.
func toJSONPointer(path spec.NormalizedPath) string {
	buf := new(strings.Builder)
	for _, loc := range path {
		buf.WriteByte('/')
		switch l := loc.(type) {
		case spec.Key:
			s := string(l)
			s = strings.ReplaceAll(s, "~", "~0")
			s = strings.ReplaceAll(s, "/", "~1")
			buf.WriteString(s)
		case spec.Index:
			buf.WriteString(strconv.Itoa(int(l)))
		}
	}
	return buf.String()
}

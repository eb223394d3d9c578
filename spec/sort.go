package spec

import (
	"fmt"
	"strings"

	"github.com/pathlang/jsonpath/value"
)

// SortKey is one key in a Sort step's ordering: the dotted member Path
// to compare by (e.g. ["author", "name"] for "author.name"), and
// whether matches should be ordered Descending.
type SortKey struct {
	Path       []string
	Descending bool
}

// Sort reorders the elements of each array in the current working set
// by one or more member values, per the [/(k1,~k2)] segment: a bare
// name sorts ascending, a name prefixed with ~ sorts descending, and a
// key may itself be a dotted sub-path (spec.md §4.2). Ties on the
// leading key are broken by subsequent keys, in order. Per spec.md
// §4.3, an element missing a key named by a SortKey sorts before every
// element that has that key present, regardless of that key's
// direction; two elements both missing the same key are tied on it and
// fall through to the next key, or to input order if it was the last.
// Per spec.md §7, comparing two present values of incompatible types at
// the same sort key is a caller error, not a silent skip: Apply returns
// an error wrapping ErrType.
type Sort struct {
	Keys []SortKey
}

// NewSort returns a Sort step ordering by keys, in priority order.
func NewSort(keys ...SortKey) *Sort {
	return &Sort{Keys: keys}
}

// Apply implements Step.
func (s *Sort) Apply(ms []Match, _ any) ([]Match, error) {
	out := make([]Match, 0, len(ms))
	for _, m := range ms {
		arr, ok := m.Value.(*value.Array)
		if !ok {
			continue
		}
		items := make([]Match, arr.Len())
		for i, v := range arr.Items() {
			items[i] = m.child(Index(i), v)
		}
		if err := s.stableSort(items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// stableSort orders items in place via stable insertion sort, so a
// type-mismatch error can be surfaced as soon as it's found rather than
// losing it inside a comparator callback that isn't allowed to fail.
func (s *Sort) stableSort(items []Match) error {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0; j-- {
			less, err := s.less(items[j].Value, items[j-1].Value)
			if err != nil {
				return err
			}
			if !less {
				break
			}
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
	return nil
}

// less reports whether a should sort before b according to s.Keys,
// falling through to the next key on a tie. Returns an error wrapping
// ErrType if a and b both have a given key but its values are not of
// the same comparison class.
func (s *Sort) less(a, b any) (bool, error) {
	for _, k := range s.Keys {
		av, aok := memberOf(a, k.Path)
		bv, bok := memberOf(b, k.Path)
		switch {
		case !aok && !bok:
			continue
		case !aok:
			return true, nil
		case !bok:
			return false, nil
		}
		if !value.SameType(av, bv) {
			return false, fmt.Errorf("%w: cannot compare %T and %T at sort key %q", ErrType, av, bv, strings.Join(k.Path, "."))
		}
		if value.Less(av, bv) {
			return !k.Descending, nil
		}
		if value.Less(bv, av) {
			return k.Descending, nil
		}
	}
	return false, nil
}

// memberOf walks path's dotted member names from v, returning the value
// found at its end and true, or false if any step along the way is not
// an *value.Object or lacks the named member.
func memberOf(v any, path []string) (any, bool) {
	cur := v
	for _, name := range path {
		obj, ok := cur.(*value.Object)
		if !ok {
			return nil, false
		}
		val, ok := obj.Get(name)
		if !ok {
			return nil, false
		}
		cur = val
	}
	return cur, true
}

// writeTo implements stringWriter.
func (s *Sort) writeTo(buf *strings.Builder) {
	buf.WriteString("[/(")
	for i, k := range s.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if k.Descending {
			buf.WriteByte('~')
		}
		buf.WriteString(strings.Join(k.Path, "."))
	}
	buf.WriteString(")]")
}

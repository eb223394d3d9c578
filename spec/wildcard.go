package spec

import (
	"strings"

	"github.com/pathlang/jsonpath/value"
)

// Wildcard selects every member of an object or every element of an
// array in the current working set, in the value's natural (insertion
// or index) order. Scalar matches produce no children.
type Wildcard struct{}

// NewWildcard returns a Wildcard step.
func NewWildcard() *Wildcard {
	return &Wildcard{}
}

// Apply implements Step.
func (w *Wildcard) Apply(ms []Match, _ any) ([]Match, error) {
	out := make([]Match, 0, len(ms))
	for _, m := range ms {
		switch v := m.Value.(type) {
		case *value.Object:
			for _, k := range v.Keys() {
				val, _ := v.Get(k)
				out = append(out, m.child(Key(k), val))
			}
		case *value.Array:
			for i, val := range v.Items() {
				out = append(out, m.child(Index(i), val))
			}
		}
	}
	return out, nil
}

// writeTo implements stringWriter.
func (w *Wildcard) writeTo(buf *strings.Builder) {
	buf.WriteString("[*]")
}

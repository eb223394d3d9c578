package spec

import (
	"strings"

	"github.com/pathlang/jsonpath/value"
)

// Child selects one or more named members from each object in the
// current working set, in the order Names is given, per spec.md §3.2's
// "Child(keys): a non-empty ordered list of string keys." Each present
// name produces its own sibling Match; matches whose value is not an
// *value.Object, or a name absent from the object, contribute nothing
// for that name: a missing member is simply absent from the result, not
// an error.
type Child struct {
	Names []string
}

// NewChild returns a Child step selecting names, in order.
func NewChild(names ...string) *Child {
	return &Child{Names: names}
}

// Apply implements Step.
func (c *Child) Apply(ms []Match, _ any) ([]Match, error) {
	out := make([]Match, 0, len(ms)*len(c.Names))
	for _, m := range ms {
		obj, ok := m.Value.(*value.Object)
		if !ok {
			continue
		}
		for _, name := range c.Names {
			v, ok := obj.Get(name)
			if !ok {
				continue
			}
			out = append(out, m.child(Key(name), v))
		}
	}
	return out, nil
}

// writeTo implements stringWriter.
func (c *Child) writeTo(buf *strings.Builder) {
	buf.WriteByte('[')
	for i, name := range c.Names {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\'')
		for _, r := range name {
			switch r {
			case '\'':
				buf.WriteString(`\'`)
			case '\\':
				buf.WriteString(`\\`)
			default:
				buf.WriteRune(r)
			}
		}
		buf.WriteByte('\'')
	}
	buf.WriteByte(']')
}

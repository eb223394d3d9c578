package spec

import (
	"strings"

	"github.com/pathlang/jsonpath/value"
)

// Extract projects each object in the current working set down to a new
// object containing only the named Fields, in the order given, via the
// (f1,f2) segment. Fields absent from the source object are omitted
// from the projection rather than appearing with a null value. Extract
// does not descend into a named member the way Child does: the result
// is a synthesized object, so the Match's NormalizedPath is unchanged
// from its input (there is no single locator that names "this object's
// f1-and-f2 projection"). Per spec.md §4.3, a Seq (*value.Array) Match
// distributes the extraction across its elements instead: each element
// that is itself an object contributes its own projection as a sibling
// Match, addressed by its element index, the same way Wildcard expands
// an array.
type Extract struct {
	Fields []string
}

// NewExtract returns an Extract step projecting fields, in order.
func NewExtract(fields ...string) *Extract {
	return &Extract{Fields: fields}
}

// Apply implements Step.
func (e *Extract) Apply(ms []Match, _ any) ([]Match, error) {
	out := make([]Match, 0, len(ms))
	for _, m := range ms {
		switch v := m.Value.(type) {
		case *value.Object:
			out = append(out, Match{Value: e.project(v), Path: m.Path})
		case *value.Array:
			for i, item := range v.Items() {
				obj, ok := item.(*value.Object)
				if !ok {
					continue
				}
				out = append(out, m.child(Index(i), e.project(obj)))
			}
		}
	}
	return out, nil
}

// project builds obj's projection onto e.Fields, in order.
func (e *Extract) project(obj *value.Object) *value.Object {
	proj := value.NewObject()
	for _, f := range e.Fields {
		if v, ok := obj.Get(f); ok {
			proj.Set(f, v)
		}
	}
	return proj
}

// writeTo implements stringWriter.
func (e *Extract) writeTo(buf *strings.Builder) {
	buf.WriteByte('(')
	for i, f := range e.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(f)
	}
	buf.WriteByte(')')
}

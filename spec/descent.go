package spec

import (
	"strings"

	"github.com/pathlang/jsonpath/value"
)

// Descent implements the recursive-descent segment (..): it expands
// every Match in the working set into itself plus all of its
// descendants, visited in pre-order (parent before children, and
// objects/arrays visited in their natural key/index order), before
// handing the expanded list on to Next. Next is folded into Descent
// itself, rather than left as a separate Step in the Expression's step
// list, so that the segment immediately following ".." sees the fully
// expanded descendant set in one Apply call.
type Descent struct {
	Next Step
	// MaxDepth, if positive, caps how many levels of descendants are
	// visited below each starting Match. Zero means unlimited. Set by
	// the jsonpath.WithMaxDepth compile option as a guard against
	// pathologically deep or cyclic-looking documents.
	MaxDepth int
}

// NewDescent returns a Descent step whose following segment is next.
func NewDescent(next Step) *Descent {
	return &Descent{Next: next}
}

// Apply implements Step.
func (d *Descent) Apply(ms []Match, root any) ([]Match, error) {
	expanded := make([]Match, 0, len(ms))
	for _, m := range ms {
		expanded = append(expanded, collectDescendants(m, d.MaxDepth, 0)...)
	}
	return d.Next.Apply(expanded, root)
}

// collectDescendants returns m followed by every descendant of m.Value,
// in pre-order, stopping at maxDepth levels below the original starting
// Match when maxDepth is positive.
func collectDescendants(m Match, maxDepth, depth int) []Match {
	out := []Match{m}
	if maxDepth > 0 && depth >= maxDepth {
		return out
	}
	switch v := m.Value.(type) {
	case *value.Object:
		for _, k := range v.Keys() {
			val, _ := v.Get(k)
			out = append(out, collectDescendants(m.child(Key(k), val), maxDepth, depth+1)...)
		}
	case *value.Array:
		for i, val := range v.Items() {
			out = append(out, collectDescendants(m.child(Index(i), val), maxDepth, depth+1)...)
		}
	}
	return out
}

// writeTo implements stringWriter.
func (d *Descent) writeTo(buf *strings.Builder) {
	buf.WriteString("..")
	d.Next.writeTo(buf)
}

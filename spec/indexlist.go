package spec

import (
	"strconv"
	"strings"

	"github.com/pathlang/jsonpath/value"
)

// IndexList selects one or more elements from each array in the current
// working set by position, in the order the indices are given (not
// necessarily ascending). Negative indices count from the end of the
// array, per spec: -1 is the last element. Out-of-range indices are
// dropped silently.
type IndexList struct {
	Indices []int
}

// NewIndexList returns an IndexList step selecting indices, in order.
func NewIndexList(indices ...int) *IndexList {
	return &IndexList{Indices: indices}
}

// Apply implements Step.
func (il *IndexList) Apply(ms []Match, _ any) ([]Match, error) {
	out := make([]Match, 0, len(ms)*len(il.Indices))
	for _, m := range ms {
		arr, ok := m.Value.(*value.Array)
		if !ok {
			continue
		}
		n := arr.Len()
		for _, i := range il.Indices {
			idx := i
			if idx < 0 {
				idx += n
			}
			if idx < 0 || idx >= n {
				continue
			}
			out = append(out, m.child(Index(idx), arr.At(idx)))
		}
	}
	return out, nil
}

// writeTo implements stringWriter.
func (il *IndexList) writeTo(buf *strings.Builder) {
	buf.WriteByte('[')
	for i, idx := range il.Indices {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Itoa(idx))
	}
	buf.WriteByte(']')
}

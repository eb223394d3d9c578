package spec

import (
	"strconv"
	"strings"

	"github.com/pathlang/jsonpath/value"
)

// Slice selects a range of elements from each array in the current
// working set, using Python-style [start:end:step] semantics: start is
// inclusive, end is exclusive, and either bound may be omitted (nil) to
// mean "from the beginning" / "through the end". Negative bounds count
// from the end of the array. Step defaults to 1 and may be negative, in
// which case the slice walks from start down to (but not including) end.
// A zero step is invalid.
type Slice struct {
	Start *int
	End   *int
	Step  int
}

// NewSlice returns a Slice step. start and end may be nil to mean
// "unbounded" on that side; a zero step defaults to 1.
func NewSlice(start, end *int, step int) *Slice {
	if step == 0 {
		step = 1
	}
	return &Slice{Start: start, End: end, Step: step}
}

// Apply implements Step.
func (s *Slice) Apply(ms []Match, _ any) ([]Match, error) {
	out := make([]Match, 0, len(ms))
	for _, m := range ms {
		arr, ok := m.Value.(*value.Array)
		if !ok {
			continue
		}
		n := arr.Len()
		lo, hi := s.bounds(n)
		if s.Step > 0 {
			for i := lo; i < hi; i += s.Step {
				out = append(out, m.child(Index(i), arr.At(i)))
			}
		} else {
			for i := lo; i > hi; i += s.Step {
				out = append(out, m.child(Index(i), arr.At(i)))
			}
		}
	}
	return out, nil
}

// bounds normalizes s's Start/End against an array of length n into a
// concrete [lo, hi) range appropriate for s.Step's sign, clamped to
// valid indices.
func (s *Slice) bounds(n int) (lo, hi int) {
	if s.Step > 0 {
		lo, hi = 0, n
		if s.Start != nil {
			lo = normIndex(*s.Start, n)
		}
		if s.End != nil {
			hi = normIndex(*s.End, n)
		}
		return clamp(lo, 0, n), clamp(hi, 0, n)
	}
	lo, hi = n-1, -1
	if s.Start != nil {
		lo = normIndex(*s.Start, n)
	}
	if s.End != nil {
		hi = normIndex(*s.End, n)
	}
	return clamp(lo, -1, n-1), clamp(hi, -1, n-1)
}

// clamp limits i to the closed range [min, max].
func clamp(i, min, max int) int {
	if i < min {
		return min
	}
	if i > max {
		return max
	}
	return i
}

// normIndex converts a possibly-negative slice bound to an absolute
// array index, per spec: -1 refers to the last element.
func normIndex(i, n int) int {
	if i < 0 {
		return i + n
	}
	return i
}

// writeTo implements stringWriter.
func (s *Slice) writeTo(buf *strings.Builder) {
	buf.WriteByte('[')
	if s.Start != nil {
		buf.WriteString(strconv.Itoa(*s.Start))
	}
	buf.WriteByte(':')
	if s.End != nil {
		buf.WriteString(strconv.Itoa(*s.End))
	}
	if s.Step != 1 {
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(s.Step))
	}
	buf.WriteByte(']')
}

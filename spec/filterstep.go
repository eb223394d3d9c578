package spec

import (
	"strings"

	"github.com/pathlang/jsonpath/value"
)

// FilterStep selects the members of each array or object in the
// current working set for which Pred holds, per the [?(...)] segment.
// Pred is evaluated once per candidate element, with that element bound
// as the filter's current node (@) and the overall document bound as
// root ($).
type FilterStep struct {
	Pred Predicate
}

// NewFilterStep returns a FilterStep testing pred against each
// candidate element.
func NewFilterStep(pred Predicate) *FilterStep {
	return &FilterStep{Pred: pred}
}

// Apply implements Step.
func (f *FilterStep) Apply(ms []Match, root any) ([]Match, error) {
	out := make([]Match, 0, len(ms))
	for _, m := range ms {
		switch v := m.Value.(type) {
		case *value.Array:
			for i, item := range v.Items() {
				ok, err := f.Pred.Eval(item, root)
				if err != nil {
					return nil, err
				}
				if ok {
					out = append(out, m.child(Index(i), item))
				}
			}
		case *value.Object:
			for _, k := range v.Keys() {
				item, _ := v.Get(k)
				ok, err := f.Pred.Eval(item, root)
				if err != nil {
					return nil, err
				}
				if ok {
					out = append(out, m.child(Key(k), item))
				}
			}
		}
	}
	return out, nil
}

// writeTo implements stringWriter.
func (f *FilterStep) writeTo(buf *strings.Builder) {
	buf.WriteString("[?(")
	f.Pred.writeTo(buf)
	buf.WriteString(")]")
}

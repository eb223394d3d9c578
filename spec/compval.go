package spec

import (
	"strconv"
	"strings"

	"github.com/pathlang/jsonpath/value"
)

// CompVal is one side of a filter Comparison (or the operand of an
// Existence or Membership test): something that resolves, against a
// current filter node and the document root, to zero or more values.
type CompVal interface {
	stringWriter
	// Values resolves cv against cur (the node the enclosing filter is
	// currently testing) and root (the document root). A Literal always
	// returns exactly one value; a SubPath may return zero (absent),
	// one, or many.
	Values(cur, root any) ([]any, error)
}

// Literal is a CompVal holding a fixed value parsed directly from the
// filter expression's source text: a JSON string, number, bool, or
// null, or a *value.Array of such values for a bracketed list literal
// (the right operand of in / not in).
type Literal struct {
	Value any
}

// NewLiteral returns a Literal wrapping v.
func NewLiteral(v any) *Literal {
	return &Literal{Value: v}
}

// Values implements CompVal.
func (l *Literal) Values(_, _ any) ([]any, error) {
	return []any{l.Value}, nil
}

// writeTo implements stringWriter.
func (l *Literal) writeTo(buf *strings.Builder) {
	switch v := l.Value.(type) {
	case string:
		buf.WriteByte('"')
		buf.WriteString(strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(v))
		buf.WriteByte('"')
	case *value.Array:
		buf.WriteByte('[')
		for i, item := range v.Items() {
			if i > 0 {
				buf.WriteByte(',')
			}
			NewLiteral(item).writeTo(buf)
		}
		buf.WriteByte(']')
	case int64:
		buf.WriteString(strconv.FormatInt(v, 10))
	case float64:
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case bool:
		buf.WriteString(strconv.FormatBool(v))
	case nil:
		buf.WriteString("null")
	}
}

// SubPath is a CompVal that re-enters the evaluator: @ or $ followed by
// zero or more Steps. This is the "restricted re-entry" from filter
// predicates back into ordinary path evaluation — the same Step.Apply
// machinery used at the top level, just seeded from the current filter
// node (or, for a $-rooted sub-path, the document root) instead of from
// the outer document root.
type SubPath struct {
	Root  bool
	Steps []Step
}

// NewSubPath returns a SubPath. If root is true the sub-path is
// evaluated from the document root ($...); otherwise from the current
// filter node (@...).
func NewSubPath(root bool, steps []Step) *SubPath {
	return &SubPath{Root: root, Steps: steps}
}

// Values implements CompVal.
func (sp *SubPath) Values(cur, root any) ([]any, error) {
	seed := cur
	if sp.Root {
		seed = root
	}
	ms, err := applySteps(sp.Steps, seed, root)
	if err != nil {
		return nil, err
	}
	return MatchList(ms).Values(), nil
}

// writeTo implements stringWriter.
func (sp *SubPath) writeTo(buf *strings.Builder) {
	if sp.Root {
		buf.WriteByte('$')
	} else {
		buf.WriteByte('@')
	}
	for _, s := range sp.Steps {
		s.writeTo(buf)
	}
}

package spec

import "strings"

// Expression is a fully compiled JSONPath query: an ordered list of Steps
// applied after the implicit Root.
type Expression struct {
	steps []Step
}

// NewExpression returns a new Expression consisting of steps.
func NewExpression(steps []Step) *Expression {
	return &Expression{steps: steps}
}

// Steps returns e's Steps.
func (e *Expression) Steps() []Step {
	return e.steps
}

// Evaluate applies e's Steps to root and returns the resulting working
// set of Matches, each carrying both its value and the NormalizedPath
// that reaches it from root.
func (e *Expression) Evaluate(root any) ([]Match, error) {
	return applySteps(e.steps, root, root)
}

// String returns a normalized reconstruction of e. It is not guaranteed
// to be byte-identical to the original input expression (whitespace and
// key quoting style are not preserved), but it is itself a valid,
// equivalent expression for this dialect.
func (e *Expression) String() string {
	buf := new(strings.Builder)
	buf.WriteByte('$')
	for _, s := range e.steps {
		s.writeTo(buf)
	}
	return buf.String()
}

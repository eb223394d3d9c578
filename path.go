// Package jsonpath implements a pragmatic, RFC 9535-inspired JSONPath
// dialect: dot and bracket child access, recursive descent, index lists
// and slices, [?(...)] filter predicates, and this dialect's own
// [/(k1,~k2)] sort and (f1,f2) field-extractor segments. Strict RFC
// 9535 conformance is not a goal; see the package-level documentation
// in SPEC_FULL.md for the full grammar.
package jsonpath

import (
	"github.com/pathlang/jsonpath/parser"
	"github.com/pathlang/jsonpath/spec"
)

// Path represents a compiled JSONPath query.
type Path struct {
	expr *spec.Expression
}

// New wraps expr as a Path. Most callers should use Compile or
// MustCompile instead of constructing an Expression directly.
func New(expr *spec.Expression) *Path {
	return &Path{expr: expr}
}

// String returns a normalized reconstruction of p's source expression.
func (p *Path) String() string {
	return p.expr.String()
}

// Expression returns p's underlying compiled Expression.
func (p *Path) Expression() *spec.Expression {
	return p.expr
}

// Compile parses expr and returns the resulting Path. Returns an error
// wrapping parser.ErrSyntax on malformed input.
func Compile(expr string) (*Path, error) {
	e, err := parser.Parse(expr)
	if err != nil {
		return nil, err
	}
	return &Path{expr: e}, nil
}

// MustCompile is like Compile but panics on error. Intended for
// compile-time-constant expressions, such as package-level variable
// initializers.
func MustCompile(expr string) *Path {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Select runs p against input, the root JSON value, and returns the
// matched values in document order.
func (p *Path) Select(input any) []any {
	ms, err := p.expr.Evaluate(input)
	if err != nil {
		return nil
	}
	return spec.MatchList(ms).Values()
}

// SelectMatches runs p against input and returns the full Match list,
// pairing each result value with its NormalizedPath.
func (p *Path) SelectMatches(input any) ([]spec.Match, error) {
	return p.expr.Evaluate(input)
}

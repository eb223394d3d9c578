package spec

import (
	"regexp"
	"strings"

	"github.com/pathlang/jsonpath/value"
)

// Predicate is a compiled filter-expression node: the body of a
// [?(...)] segment. Eval tests pred against cur, the array or object
// element currently under consideration, and root, the document root
// (needed by any $-rooted SubPath operands).
type Predicate interface {
	stringWriter
	Eval(cur, root any) (bool, error)
}

// Or is a logical disjunction; Eval reports true as soon as any operand
// does, short-circuiting the rest.
type Or struct {
	Operands []Predicate
}

// Eval implements Predicate.
func (o *Or) Eval(cur, root any) (bool, error) {
	for _, p := range o.Operands {
		ok, err := p.Eval(cur, root)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (o *Or) writeTo(buf *strings.Builder) {
	writeJoined(buf, o.Operands, " or ")
}

// And is a logical conjunction; Eval reports false as soon as any
// operand does, short-circuiting the rest.
type And struct {
	Operands []Predicate
}

// Eval implements Predicate.
func (a *And) Eval(cur, root any) (bool, error) {
	for _, p := range a.Operands {
		ok, err := p.Eval(cur, root)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (a *And) writeTo(buf *strings.Builder) {
	writeJoined(buf, a.Operands, " and ")
}

func writeJoined(buf *strings.Builder, ps []Predicate, sep string) {
	buf.WriteByte('(')
	for i, p := range ps {
		if i > 0 {
			buf.WriteString(sep)
		}
		p.writeTo(buf)
	}
	buf.WriteByte(')')
}

// Not is a logical negation.
type Not struct {
	Operand Predicate
}

// Eval implements Predicate.
func (n *Not) Eval(cur, root any) (bool, error) {
	ok, err := n.Operand.Eval(cur, root)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func (n *Not) writeTo(buf *strings.Builder) {
	buf.WriteString("not ")
	n.Operand.writeTo(buf)
}

// Comparison tests Left Op Right. Per the resolved "multi-valued
// sub-path comparisons" open question, when either side is a SubPath
// that resolves to more than one value, the comparison is existential:
// true if Op holds for at least one (left, right) pairing. If either
// side resolves to no values at all (an absent member), the comparison
// is false, except that NotEqualOp between an absent side and a present
// one is true. Two absent sides compare false under every operator,
// NotEqualOp included.
type Comparison struct {
	Op    CompOp
	Left  CompVal
	Right CompVal
}

// Eval implements Predicate.
func (c *Comparison) Eval(cur, root any) (bool, error) {
	lv, err := c.Left.Values(cur, root)
	if err != nil {
		return false, err
	}
	rv, err := c.Right.Values(cur, root)
	if err != nil {
		return false, err
	}
	if len(lv) == 0 || len(rv) == 0 {
		return c.Op == NotEqualOp && len(lv) != len(rv), nil
	}
	for _, a := range lv {
		for _, b := range rv {
			if compareOne(c.Op, a, b) {
				return true, nil
			}
		}
	}
	return false, nil
}

func (c *Comparison) writeTo(buf *strings.Builder) {
	c.Left.writeTo(buf)
	buf.WriteByte(' ')
	buf.WriteString(c.Op.String())
	buf.WriteByte(' ')
	c.Right.writeTo(buf)
}

// Membership tests whether Needle's value occurs within Haystack, per
// the in / not in operators. Per spec.md §4.4, Haystack may resolve to
// a Seq (*value.Array, tested element-wise), a Map (*value.Object,
// tested by key), or a string (tested as a substring); anything else is
// compared to Needle directly as a single candidate. If Haystack is
// itself multi-valued (an @-rooted sub-path yielding more than one
// match), every resolved value is tested in turn.
type Membership struct {
	Needle   CompVal
	Haystack CompVal
	Negate   bool
}

// Eval implements Predicate.
func (m *Membership) Eval(cur, root any) (bool, error) {
	nv, err := m.Needle.Values(cur, root)
	if err != nil {
		return false, err
	}
	if len(nv) == 0 {
		return m.Negate, nil
	}
	hv, err := m.Haystack.Values(cur, root)
	if err != nil {
		return false, err
	}

	found := false
outer:
	for _, h := range hv {
		if s, ok := h.(string); ok {
			for _, n := range nv {
				if ns, ok := n.(string); ok && strings.Contains(s, ns) {
					found = true
					break outer
				}
			}
			continue
		}
		for _, c := range membershipElements(h) {
			for _, n := range nv {
				if value.DeepEqual(n, c) {
					found = true
					break outer
				}
			}
		}
	}
	if m.Negate {
		return !found, nil
	}
	return found, nil
}

// membershipElements returns h's membership-test candidates: an
// *value.Array's elements, an *value.Object's keys (as strings), or h
// itself as the sole candidate for any other type.
func membershipElements(h any) []any {
	switch h := h.(type) {
	case *value.Array:
		return h.Items()
	case *value.Object:
		keys := h.Keys()
		out := make([]any, len(keys))
		for i, k := range keys {
			out[i] = k
		}
		return out
	default:
		return []any{h}
	}
}

func (m *Membership) writeTo(buf *strings.Builder) {
	m.Needle.writeTo(buf)
	if m.Negate {
		buf.WriteString(" not in ")
	} else {
		buf.WriteString(" in ")
	}
	m.Haystack.writeTo(buf)
}

// RegexMatch tests whether Target's value (required to be a string)
// matches a regex literal compiled at parse time, per spec §4.4's
// compile-once-not-per-match design.
type RegexMatch struct {
	Target CompVal
	Re     *regexp.Regexp
	src    string
}

// NewRegexMatch returns a RegexMatch testing target against the
// compiled pattern re. src is retained only for String/writeTo
// reconstruction.
func NewRegexMatch(target CompVal, re *regexp.Regexp, src string) *RegexMatch {
	return &RegexMatch{Target: target, Re: re, src: src}
}

// Eval implements Predicate.
func (r *RegexMatch) Eval(cur, root any) (bool, error) {
	vals, err := r.Target.Values(cur, root)
	if err != nil {
		return false, err
	}
	for _, v := range vals {
		if s, ok := v.(string); ok && r.Re.MatchString(s) {
			return true, nil
		}
	}
	return false, nil
}

func (r *RegexMatch) writeTo(buf *strings.Builder) {
	r.Target.writeTo(buf)
	buf.WriteString(" =~ /")
	buf.WriteString(r.src)
	buf.WriteByte('/')
	if strings.HasPrefix(r.Re.String(), "(?i)") && !strings.HasPrefix(r.src, "(?i)") {
		buf.WriteByte('i')
	}
}

// Existence tests whether Target resolves to at least one value,
// per the bare-subpath "@.field" filter shorthand.
type Existence struct {
	Target CompVal
}

// Eval implements Predicate.
func (e *Existence) Eval(cur, root any) (bool, error) {
	vals, err := e.Target.Values(cur, root)
	if err != nil {
		return false, err
	}
	return len(vals) > 0, nil
}

func (e *Existence) writeTo(buf *strings.Builder) {
	e.Target.writeTo(buf)
}

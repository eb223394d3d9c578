package parser

import (
	"regexp"

	"github.com/pathlang/jsonpath/spec"
	"github.com/pathlang/jsonpath/value"
)

// parseFilter consumes a ?(...) filter segment's content (the leading
// '[' and trailing ']' are consumed by parseBracket) and compiles its
// predicate body with the usual atom -> not -> comparison -> and -> or
// precedence climb, mirroring the teacher's
// parseLogicalOrExpr/parseLogicalAndExpr/parseBasicExpr structure.
func (p *Parser) parseFilter() (spec.Step, error) {
	if err := p.expect('?'); err != nil {
		return nil, err
	}
	if err := p.expect('('); err != nil {
		return nil, p.errorf("expected ( after ?")
	}
	pred, err := p.parseOrExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if err := p.expect(')'); err != nil {
		return nil, p.errorf("expected ) to close filter segment")
	}
	return spec.NewFilterStep(pred), nil
}

// tryKeyword consumes and reports whether kw appears at the current
// position as a whole word (not a prefix of a longer identifier).
// Callers are expected to have skipped leading space already.
func (p *Parser) tryKeyword(kw string) bool {
	end := p.pos + len(kw)
	if end > len(p.buf) || p.buf[p.pos:end] != kw {
		return false
	}
	if end < len(p.buf) && isIdentCont(p.buf[end]) {
		return false
	}
	p.pos = end
	return true
}

// parseOrExpr parses a sequence of and-expressions joined by "or".
func (p *Parser) parseOrExpr() (spec.Predicate, error) {
	first, err := p.parseAndExpr()
	if err != nil {
		return nil, err
	}
	operands := []spec.Predicate{first}
	for {
		p.skipSpace()
		if !p.tryKeyword("or") {
			break
		}
		p.skipSpace()
		next, err := p.parseAndExpr()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	if len(operands) == 1 {
		return operands[0], nil
	}
	return &spec.Or{Operands: operands}, nil
}

// parseAndExpr parses a sequence of not-expressions joined by "and".
func (p *Parser) parseAndExpr() (spec.Predicate, error) {
	first, err := p.parseNotExpr()
	if err != nil {
		return nil, err
	}
	operands := []spec.Predicate{first}
	for {
		p.skipSpace()
		if !p.tryKeyword("and") {
			break
		}
		p.skipSpace()
		next, err := p.parseNotExpr()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	if len(operands) == 1 {
		return operands[0], nil
	}
	return &spec.And{Operands: operands}, nil
}

// parseNotExpr parses an optional "not" prefix over an atom.
func (p *Parser) parseNotExpr() (spec.Predicate, error) {
	p.skipSpace()
	if p.tryKeyword("not") {
		p.skipSpace()
		operand, err := p.parseNotExpr()
		if err != nil {
			return nil, err
		}
		return &spec.Not{Operand: operand}, nil
	}
	return p.parseAtom()
}

// parseAtom parses a parenthesized sub-predicate or a single
// comparison/membership/regex/existence test.
func (p *Parser) parseAtom() (spec.Predicate, error) {
	p.skipSpace()
	if p.peek() == '(' {
		p.pos++
		pred, err := p.parseOrExpr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if err := p.expect(')'); err != nil {
			return nil, p.errorf("expected ) to close parenthesized predicate")
		}
		return pred, nil
	}
	return p.parseComparison()
}

// parseComparison parses a CompVal and then, if an operator follows,
// the rest of a Comparison, Membership, or RegexMatch; a bare CompVal
// with no following operator is an Existence test.
func (p *Parser) parseComparison() (spec.Predicate, error) {
	left, err := p.parseCompVal()
	if err != nil {
		return nil, err
	}
	p.skipSpace()

	if op, ok := p.tryCompOp(); ok {
		p.skipSpace()
		right, err := p.parseCompVal()
		if err != nil {
			return nil, err
		}
		if hasWildcardStep(left) || hasWildcardStep(right) {
			return nil, p.errorf("[*] sub-paths may only be used as a bare existence test")
		}
		return &spec.Comparison{Op: op, Left: left, Right: right}, nil
	}

	if p.tryKeyword("not") {
		p.skipSpace()
		if !p.tryKeyword("in") {
			return nil, p.errorf("expected 'in' after 'not'")
		}
		p.skipSpace()
		right, err := p.parseCompVal()
		if err != nil {
			return nil, err
		}
		if hasWildcardStep(left) || hasWildcardStep(right) {
			return nil, p.errorf("[*] sub-paths may only be used as a bare existence test")
		}
		return &spec.Membership{Needle: left, Haystack: right, Negate: true}, nil
	}

	if p.tryKeyword("in") {
		p.skipSpace()
		right, err := p.parseCompVal()
		if err != nil {
			return nil, err
		}
		if hasWildcardStep(left) || hasWildcardStep(right) {
			return nil, p.errorf("[*] sub-paths may only be used as a bare existence test")
		}
		return &spec.Membership{Needle: left, Haystack: right}, nil
	}

	if p.peek() == '=' && p.peekAt(1) == '~' {
		p.pos += 2
		p.skipSpace()
		src, err := p.scanRegex()
		if err != nil {
			return nil, err
		}
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, p.errorf("invalid regex literal: %v", err)
		}
		if hasWildcardStep(left) {
			return nil, p.errorf("[*] sub-paths may only be used as a bare existence test")
		}
		return spec.NewRegexMatch(left, re, regexSource(src)), nil
	}

	return &spec.Existence{Target: left}, nil
}

// regexSource strips a leading (?i) case-insensitivity marker back off
// before storing it for reconstruction via String/writeTo, since
// spec.NewRegexMatch's src is meant to echo the original /pattern/
// literal rather than the Go-specific inline flag form.
func regexSource(compiled string) string {
	const ci = "(?i)"
	if len(compiled) >= len(ci) && compiled[:len(ci)] == ci {
		return compiled[len(ci):]
	}
	return compiled
}

// tryCompOp consumes and reports a comparison operator at the current
// position, preferring the two-byte forms.
func (p *Parser) tryCompOp() (spec.CompOp, bool) {
	two := ""
	if p.pos+2 <= len(p.buf) {
		two = p.buf[p.pos : p.pos+2]
	}
	switch two {
	case "==":
		p.pos += 2
		return spec.EqualOp, true
	case "!=":
		p.pos += 2
		return spec.NotEqualOp, true
	case "<=":
		p.pos += 2
		return spec.LessOrEqualOp, true
	case ">=":
		p.pos += 2
		return spec.GreaterOrEqualOp, true
	}
	switch p.peek() {
	case '<':
		p.pos++
		return spec.LessOp, true
	case '>':
		p.pos++
		return spec.GreaterOp, true
	}
	return 0, false
}

// parseCompVal parses a single comparable value: a JSON literal (null,
// bool, number, quoted string, or bracketed array literal), or a
// $-rooted or @-rooted sub-path.
func (p *Parser) parseCompVal() (spec.CompVal, error) {
	p.skipSpace()
	switch {
	case p.peek() == '@':
		p.pos++
		steps, err := p.parseSubPathSteps()
		if err != nil {
			return nil, err
		}
		return spec.NewSubPath(false, steps), nil
	case p.peek() == '$':
		p.pos++
		steps, err := p.parseSubPathSteps()
		if err != nil {
			return nil, err
		}
		return spec.NewSubPath(true, steps), nil
	case p.peek() == '\'' || p.peek() == '"':
		s, err := p.scanQuotedString()
		if err != nil {
			return nil, err
		}
		return spec.NewLiteral(s), nil
	case p.peek() == '[':
		return p.parseListLiteral()
	case isDigit(p.peek()) || p.peek() == '-':
		n, err := p.scanNumber()
		if err != nil {
			return nil, err
		}
		return spec.NewLiteral(n), nil
	case p.tryKeyword("true"):
		return spec.NewLiteral(true), nil
	case p.tryKeyword("false"):
		return spec.NewLiteral(false), nil
	case p.tryKeyword("null"):
		return spec.NewLiteral(nil), nil
	default:
		return nil, p.errorf("expected a comparable value")
	}
}

// parseListLiteral parses a bracketed literal array used as the right
// operand of in / not in, e.g. ['red','green'].
func (p *Parser) parseListLiteral() (spec.CompVal, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	items := make([]any, 0, 4)
	p.skipSpace()
	if p.peek() != ']' {
		for {
			p.skipSpace()
			cv, err := p.parseCompVal()
			if err != nil {
				return nil, err
			}
			lit, ok := cv.(*spec.Literal)
			if !ok {
				return nil, p.errorf("list literal elements must be literals")
			}
			items = append(items, lit.Value)
			p.skipSpace()
			if p.peek() == ',' {
				p.pos++
				continue
			}
			break
		}
	}
	if err := p.expect(']'); err != nil {
		return nil, p.errorf("expected ] to close list literal")
	}
	return spec.NewLiteral(value.NewArray(items...)), nil
}

// parseSubPathSteps parses the Step sequence following @ or $ inside a
// filter predicate. A wildcard step is syntactically permitted here;
// parseComparison rejects it afterward unless the sub-path is used
// bare, as an Existence test — per the resolved design decision, a
// wildcard sub-path's multiplicity has no well-defined comparison
// semantics in this dialect, but "does this have any elements at all"
// is still meaningful.
func (p *Parser) parseSubPathSteps() ([]spec.Step, error) {
	var steps []spec.Step
	for {
		switch p.peek() {
		case '.', '[':
			step, err := p.parseOneSegment()
			if err != nil {
				return nil, err
			}
			steps = append(steps, step)
		default:
			return steps, nil
		}
	}
}

// hasWildcardStep reports whether cv is a SubPath containing any
// Wildcard step, including one folded into a Descent (..*).
func hasWildcardStep(cv spec.CompVal) bool {
	sp, ok := cv.(*spec.SubPath)
	if !ok {
		return false
	}
	for _, s := range sp.Steps {
		for {
			d, ok := s.(*spec.Descent)
			if !ok {
				break
			}
			s = d.Next
		}
		if _, ok := s.(*spec.Wildcard); ok {
			return true
		}
	}
	return false
}

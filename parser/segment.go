package parser

import "github.com/pathlang/jsonpath/spec"

// Parse compiles expr, this dialect's JSONPath syntax, into a
// spec.Expression. expr must begin with the root identifier $.
func Parse(expr string) (*spec.Expression, error) {
	p := newParser(expr)
	if err := p.expect('$'); err != nil {
		return nil, p.errorf("expression must start with $")
	}
	steps, err := p.parseSteps()
	if err != nil {
		return nil, err
	}
	return spec.NewExpression(steps), nil
}

// parseSteps consumes segments from p until eof, returning the
// resulting flat Step list. Each call to parseOneSegment consumes
// exactly one segment; a ".." segment additionally consumes the single
// segment following it and folds it into a Descent step, per spec.md
// §3.2 ("the segment immediately following .. is not independently
// optional").
func (p *Parser) parseSteps() ([]spec.Step, error) {
	var steps []spec.Step
	for {
		p.skipSpace()
		if p.eof() {
			return steps, nil
		}
		step, err := p.parseOneSegment()
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
}

// parseOneSegment consumes and compiles exactly one segment: a dot
// child (.name, .'quoted name', or .. descent), a bracketed segment
// ([...]), or a parenthesized field extractor ((f1,f2)).
func (p *Parser) parseOneSegment() (spec.Step, error) {
	switch p.peek() {
	case '.':
		p.pos++
		if p.peek() == '.' {
			p.pos++
			if p.eof() {
				return nil, p.errorf("trailing .. is not allowed")
			}
			if p.peek() != '[' && p.peek() != '(' {
				// A name (..name, ..*, ..'quoted') follows: re-read the
				// second '.' as the start of a dot-child segment.
				p.pos--
			}
			next, err := p.parseOneSegment()
			if err != nil {
				return nil, err
			}
			return spec.NewDescent(next), nil
		}
		if p.peek() == '*' {
			p.pos++
			return spec.NewWildcard(), nil
		}
		if p.peek() == '\'' || p.peek() == '"' {
			name, err := p.scanQuotedString()
			if err != nil {
				return nil, err
			}
			return spec.NewChild(name), nil
		}
		name, err := p.scanIdentifier()
		if err != nil {
			return nil, err
		}
		return spec.NewChild(name), nil
	case '[':
		return p.parseBracket()
	case '(':
		return p.parseExtract()
	default:
		return nil, p.errorf("unexpected character %q", p.peek())
	}
}

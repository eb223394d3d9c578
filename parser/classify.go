package parser

import "github.com/pathlang/jsonpath/spec"

// parseBracket consumes a single [...] segment and classifies its
// content by leading character/shape, per spec.md §4.2: [*] wildcard,
// ['key'] or ["key"] quoted child, [?( ... )] filter, [/( ... )] sort,
// a bare comma list of integers index list, and anything containing a
// top-level ':' a slice.
func (p *Parser) parseBracket() (spec.Step, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	p.skipSpace()

	var step spec.Step
	var err error
	switch {
	case p.peek() == '*':
		p.pos++
		step = spec.NewWildcard()
	case p.peek() == '\'' || p.peek() == '"':
		step, err = p.parseChildList()
	case p.peek() == '?':
		step, err = p.parseFilter()
	case p.peek() == '/':
		step, err = p.parseSort()
	default:
		step, err = p.parseIndexOrSlice()
	}
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if err := p.expect(']'); err != nil {
		return nil, p.errorf("expected closing ]")
	}
	return step, nil
}

// parseIndexOrSlice consumes the content of an unquoted, non-wildcard
// bracket segment: either a comma-separated IndexList (0, 0,1,2, or a
// single negative index) or, if a top-level ':' is present, a Slice.
func (p *Parser) parseIndexOrSlice() (spec.Step, error) {
	depth := 0
	hasColon := false
scan:
	for i := p.pos; i < len(p.buf); i++ {
		switch p.buf[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ':':
			if depth == 0 {
				hasColon = true
			}
		case ']':
			if depth == 0 {
				break scan
			}
		}
	}
	if hasColon {
		return p.parseSlice()
	}
	return p.parseIndexList()
}

// parseChildList consumes a comma-separated list of quoted keys, e.g.
// ['a','b'], per spec.md §4.2's "Child with a comma-separated list of
// keys."
func (p *Parser) parseChildList() (spec.Step, error) {
	var names []string
	for {
		p.skipSpace()
		name, err := p.scanQuotedString()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		p.skipSpace()
		if p.peek() != ',' {
			break
		}
		p.pos++
	}
	return spec.NewChild(names...), nil
}

// parseIndexList consumes a comma-separated list of bare integers.
func (p *Parser) parseIndexList() (spec.Step, error) {
	var indices []int
	for {
		p.skipSpace()
		n, err := p.scanInt()
		if err != nil {
			return nil, err
		}
		indices = append(indices, n)
		p.skipSpace()
		if p.peek() != ',' {
			break
		}
		p.pos++
	}
	return spec.NewIndexList(indices...), nil
}

// parseSlice consumes a [start:end:step] expression, where start, end,
// and step are each optional.
func (p *Parser) parseSlice() (spec.Step, error) {
	start, err := p.parseOptionalInt()
	if err != nil {
		return nil, err
	}
	if err := p.expect(':'); err != nil {
		return nil, p.errorf("expected : in slice")
	}
	end, err := p.parseOptionalInt()
	if err != nil {
		return nil, err
	}
	step := 0
	if p.peek() == ':' {
		p.pos++
		p.skipSpace()
		if p.peek() != ']' {
			step, err = p.scanInt()
			if err != nil {
				return nil, err
			}
			if step == 0 {
				return nil, p.errorf("slice step must not be 0")
			}
		}
	}
	return spec.NewSlice(start, end, step), nil
}

// parseOptionalInt scans a bare integer if one is present at the
// current position, or returns nil if the slice bound was omitted
// (the next significant byte is ':' or ']').
func (p *Parser) parseOptionalInt() (*int, error) {
	p.skipSpace()
	if p.peek() == ':' || p.peek() == ']' {
		return nil, nil
	}
	n, err := p.scanInt()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

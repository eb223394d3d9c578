package parser

import "github.com/pathlang/jsonpath/spec"

// parseSort consumes a /(k1,~k2,...) sort segment's content (the
// leading '[' and trailing ']' are consumed by parseBracket). A bare
// name sorts ascending; a name prefixed with ~ sorts descending. Per
// spec.md §4.2, each key may itself be a dotted sub-path (e.g.
// author.name), parsed here into a SortKey.Path.
func (p *Parser) parseSort() (spec.Step, error) {
	if err := p.expect('/'); err != nil {
		return nil, err
	}
	if err := p.expect('('); err != nil {
		return nil, p.errorf("expected ( after /")
	}
	var keys []spec.SortKey
	for {
		p.skipSpace()
		desc := false
		if p.peek() == '~' {
			desc = true
			p.pos++
		}
		path, err := p.parseDottedPath()
		if err != nil {
			return nil, err
		}
		keys = append(keys, spec.SortKey{Path: path, Descending: desc})
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expect(')'); err != nil {
		return nil, p.errorf("expected ) to close sort segment")
	}
	return spec.NewSort(keys...), nil
}

// parseDottedPath scans a sort key's name, optionally followed by one
// or more ".name" continuations, e.g. author.name.
func (p *Parser) parseDottedPath() ([]string, error) {
	first, err := p.scanIdentifier()
	if err != nil {
		return nil, err
	}
	path := []string{first}
	for p.peek() == '.' && isIdentStart(p.peekAt(1)) {
		p.pos++
		name, err := p.scanIdentifier()
		if err != nil {
			return nil, err
		}
		path = append(path, name)
	}
	return path, nil
}

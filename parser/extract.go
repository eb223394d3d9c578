package parser

import "github.com/pathlang/jsonpath/spec"

// parseExtract consumes a (f1,f2,...) field extractor segment.
func (p *Parser) parseExtract() (spec.Step, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	var fields []string
	for {
		p.skipSpace()
		name, err := p.scanIdentifier()
		if err != nil {
			return nil, err
		}
		fields = append(fields, name)
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expect(')'); err != nil {
		return nil, p.errorf("expected ) to close field extractor")
	}
	return spec.NewExtract(fields...), nil
}

package parser

import (
	"github.com/pseudomuto/ddlast/pkg/ast"
)

// parseColumn parses
//
//	name dataType columnConstraint*
func (p *parser) parseColumn() (*ast.Column, error) {
	name, err := p.parseIdent("column name")
	if err != nil {
		return nil, err
	}

	typ, args, err := p.parseDataType()
	if err != nil {
		return nil, err
	}

	col := &ast.Column{Name: name, Type: typ, TypeArgs: args}
	for p.atColumnConstraint() {
		constraints, err := p.parseColumnConstraint()
		if err != nil {
			return nil, err
		}

		col.Constraints = append(col.Constraints, constraints...)
	}

	return col, nil
}

package parser

import (
	"github.com/pseudomuto/ddlast/pkg/ast"
)

// columnConstraintKeywords start a column constraint.
var columnConstraintKeywords = []string{
	"CONSTRAINT", "NOT", "NULL", "PRIMARY", "UNIQUE", "REFERENCES", "DEFAULT",
}

func isConstraintKeyword(tok Token) bool {
	for _, kw := range columnConstraintKeywords {
		if tok.Is(kw) {
			return true
		}
	}

	return false
}

func (p *parser) atColumnConstraint() bool {
	return isConstraintKeyword(p.peek())
}

// atTableConstraint reports whether the next table entry is a constraint
// rather than a column.
func (p *parser) atTableConstraint() bool {
	tok := p.peek()
	return tok.Is("CONSTRAINT") || tok.Is("PRIMARY") || tok.Is("UNIQUE") || tok.Is("FOREIGN")
}

// parseConstraintName parses an optional CONSTRAINT name prefix.
func (p *parser) parseConstraintName() (string, error) {
	if !p.acceptKeyword("CONSTRAINT") {
		return "", nil
	}

	return p.parseIdent("constraint name")
}

// parseColumnConstraint parses one constraint body with its optional name.
// PRIMARY KEY AUTOINCREMENT yields two constraints; the name, if any, goes to
// the primary key.
func (p *parser) parseColumnConstraint() ([]ast.ColumnConstraint, error) {
	name, err := p.parseConstraintName()
	if err != nil {
		return nil, err
	}

	tok := p.next()
	switch {
	case tok.Is("NOT"):
		if err := p.expectKeyword("NULL"); err != nil {
			return nil, err
		}
		return []ast.ColumnConstraint{ast.NotNullConstraint{Name: name}}, nil

	case tok.Is("NULL"):
		return []ast.ColumnConstraint{ast.NullConstraint{Name: name}}, nil

	case tok.Is("PRIMARY"):
		if err := p.expectKeyword("KEY"); err != nil {
			return nil, err
		}

		constraints := []ast.ColumnConstraint{ast.PrimaryKeyConstraint{Name: name}}
		if p.acceptKeyword("AUTOINCREMENT") {
			constraints = append(constraints, ast.AutoincrementConstraint{})
		}
		return constraints, nil

	case tok.Is("UNIQUE"):
		return []ast.ColumnConstraint{ast.UniqueConstraint{Name: name}}, nil

	case tok.Is("REFERENCES"):
		fk, err := p.parseColumnReference()
		if err != nil {
			return nil, err
		}
		fk.Name = name
		return []ast.ColumnConstraint{fk}, nil

	case tok.Is("DEFAULT"):
		value, err := p.parseDefaultValue()
		if err != nil {
			return nil, err
		}
		return []ast.ColumnConstraint{ast.DefaultConstraint{Name: name, Value: value}}, nil
	}

	return nil, p.unexpected(tok, "column constraint")
}

// parseColumnReference parses the part of a column foreign key after
// REFERENCES:
//
//	table '(' column ')' referentialAction*
func (p *parser) parseColumnReference() (ast.ForeignKeyConstraint, error) {
	var fk ast.ForeignKeyConstraint

	table, err := p.parseIdent("referenced table")
	if err != nil {
		return fk, err
	}

	if err := p.expectPunct("("); err != nil {
		return fk, err
	}

	column, err := p.parseIdent("referenced column")
	if err != nil {
		return fk, err
	}

	if err := p.expectPunct(")"); err != nil {
		return fk, err
	}

	fk.ReferencedTable = table
	fk.ReferencedColumn = column
	fk.OnDelete, fk.OnUpdate, err = p.parseReferentialActions()
	return fk, err
}

// parseTableConstraint parses
//
//	(CONSTRAINT name)? ( PRIMARY KEY identList
//	                   | UNIQUE identList
//	                   | FOREIGN KEY identList REFERENCES table identList referentialAction* )
func (p *parser) parseTableConstraint() (ast.TableConstraint, error) {
	name, err := p.parseConstraintName()
	if err != nil {
		return nil, err
	}

	tok := p.next()
	switch {
	case tok.Is("PRIMARY"):
		if err := p.expectKeyword("KEY"); err != nil {
			return nil, err
		}

		cols, err := p.parseIdentList("column name")
		if err != nil {
			return nil, err
		}
		return &ast.TablePrimaryKey{Name: name, Columns: cols}, nil

	case tok.Is("UNIQUE"):
		cols, err := p.parseIdentList("column name")
		if err != nil {
			return nil, err
		}
		return &ast.TableUnique{Name: name, Columns: cols}, nil

	case tok.Is("FOREIGN"):
		if err := p.expectKeyword("KEY"); err != nil {
			return nil, err
		}

		cols, err := p.parseIdentList("column name")
		if err != nil {
			return nil, err
		}

		if err := p.expectKeyword("REFERENCES"); err != nil {
			return nil, err
		}

		table, err := p.parseIdent("referenced table")
		if err != nil {
			return nil, err
		}

		refs, err := p.parseIdentList("referenced column")
		if err != nil {
			return nil, err
		}

		fk := &ast.TableForeignKey{Name: name, Columns: cols, ReferencedTable: table, ReferencedColumns: refs}
		fk.OnDelete, fk.OnUpdate, err = p.parseReferentialActions()
		if err != nil {
			return nil, err
		}
		return fk, nil
	}

	return nil, p.unexpected(tok, "PRIMARY KEY, UNIQUE or FOREIGN KEY")
}

// parseReferentialActions parses any number of ON DELETE / ON UPDATE clauses.
// A repeated clause overrides the earlier one.
func (p *parser) parseReferentialActions() (onDelete, onUpdate string, err error) {
	for p.acceptKeyword("ON") {
		tok := p.next()
		switch {
		case tok.Is("DELETE"):
			onDelete, err = p.parseReferentialAction()
		case tok.Is("UPDATE"):
			onUpdate, err = p.parseReferentialAction()
		default:
			err = p.unexpected(tok, "DELETE or UPDATE")
		}

		if err != nil {
			return "", "", err
		}
	}

	return onDelete, onUpdate, nil
}

// parseReferentialAction returns the action as written. The two-word actions
// SET NULL, SET DEFAULT and NO ACTION are joined with a single space; any
// other single word is accepted without validation.
func (p *parser) parseReferentialAction() (string, error) {
	tok := p.next()
	if tok.Kind != TokenIdent {
		return "", p.unexpected(tok, "referential action")
	}

	switch {
	case tok.Is("SET"):
		next := p.peek()
		if !next.Is("NULL") && !next.Is("DEFAULT") {
			return "", p.unexpected(next, "NULL or DEFAULT")
		}
		p.next()
		return tok.Value + " " + next.Value, nil

	case tok.Is("NO"):
		next := p.peek()
		if !next.Is("ACTION") {
			return "", p.unexpected(next, "ACTION")
		}
		p.next()
		return tok.Value + " " + next.Value, nil
	}

	return tok.Value, nil
}

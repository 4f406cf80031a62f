package parser

import (
	"github.com/pseudomuto/ddlast/pkg/ast"
)

// parseCreateTable parses
//
//	CREATE TABLE [IF NOT EXISTS] name '(' entry (',' entry)* ')' ';'
//
// The table's inline comments come from its header (CREATE ... '(') and its
// footer (')' ';'); comments between them belong to the entries.
func (p *parser) parseCreateTable() (*ast.CreateTable, error) {
	start := p.pos
	if err := p.expectKeyword("CREATE"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("TABLE"); err != nil {
		return nil, err
	}

	table := &ast.CreateTable{}
	if p.acceptKeyword("IF") {
		if err := p.expectKeyword("NOT"); err != nil {
			return nil, err
		}
		if err := p.expectKeyword("EXISTS"); err != nil {
			return nil, err
		}
		table.IfNotExists = true
	}

	name, err := p.parseIdent("table name")
	if err != nil {
		return nil, err
	}
	table.Name = name

	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	header := p.pos

	for more := true; more; {
		var entry ast.TableEntry
		entry, more, err = p.parseTableEntry()
		if err != nil {
			return nil, err
		}

		table.Entries = append(table.Entries, entry)
	}

	footer := p.pos
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	if err := p.expectPunct(";"); err != nil {
		return nil, err
	}

	table.InlineComment = append(p.inlineComments(start, header), p.inlineComments(footer, p.pos)...)
	table.BlockComment = blockComment(p.tokens[start])
	return table, nil
}

// parseTableEntry parses a column or table constraint together with the comma
// that follows it, if any. more reports whether a comma was consumed.
func (p *parser) parseTableEntry() (entry ast.TableEntry, more bool, err error) {
	start := p.pos
	if p.atTableConstraint() {
		entry, err = p.parseTableConstraint()
	} else {
		entry, err = p.parseColumn()
	}
	if err != nil {
		return nil, false, err
	}

	more = p.acceptPunct(",")

	c := commentsOf(entry)
	c.InlineComment = p.inlineComments(start, p.pos)
	c.BlockComment = blockComment(p.tokens[start])
	return entry, more, nil
}

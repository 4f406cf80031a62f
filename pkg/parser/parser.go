package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/pseudomuto/ddlast/pkg/ast"
)

// parser walks a token slice produced by attachComments. It owns pos; nothing
// else reads or moves it. The last token is always TokenEOF.
type parser struct {
	tokens []Token
	pos    int
}

// Parse parses CREATE TABLE statements from an io.Reader and returns the
// resulting document.
//
// Example usage:
//
//	file, err := os.Open("schema.sql")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	doc, err := parser.Parse(file)
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
// Returns an error if the reader cannot be read or contains invalid DDL.
func Parse(reader io.Reader) (*ast.Document, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read DDL")
	}

	return ParseString(string(data))
}

// ParseString parses CREATE TABLE statements from a string. This is the
// primary entry point.
//
// Example usage:
//
//	doc, err := parser.ParseString(`
//		-- Registered users
//		create table users( -- one row per account
//			id integer not null primary key autoincrement,
//			name varchar(200) default 'anonymous',
//			team_id integer constraint fk_team references teams(id) on delete cascade
//		);
//	`)
//	if err != nil {
//		var perr *parser.ParseError
//		if errors.As(err, &perr) {
//			log.Fatalf("line %d: %s", perr.Pos.Line, perr.Msg)
//		}
//	}
//
//	for _, table := range doc.CreateTables() {
//		fmt.Println(table.Name, table.BlockComment, table.InlineComment)
//	}
//
// The first error aborts parsing; no partial document is ever returned. The
// returned error wraps a *ParseError carrying the position of the problem.
func ParseString(sql string) (*ast.Document, error) {
	tokens, err := Tokenize(sql)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse DDL")
	}

	p := &parser{tokens: attachComments(tokens)}
	doc, err := p.parseDocument()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse DDL")
	}

	return doc, nil
}

func (p *parser) parseDocument() (*ast.Document, error) {
	doc := &ast.Document{Orders: []ast.Statement{}}
	for p.peek().Kind != TokenEOF {
		// Empty statements
		if p.acceptPunct(";") {
			continue
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		doc.Orders = append(doc.Orders, stmt)
	}

	return doc, nil
}

func (p *parser) parseStatement() (ast.Statement, error) {
	if p.peek().Is("CREATE") && p.peekAt(1).Is("TABLE") {
		return p.parseCreateTable()
	}

	return nil, p.unexpected(p.peek(), "CREATE TABLE")
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) peekAt(n int) Token {
	if i := p.pos + n; i < len(p.tokens) {
		return p.tokens[i]
	}

	return p.tokens[len(p.tokens)-1]
}

// next consumes and returns the current token. EOF is never consumed.
func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}

	return tok
}

func (p *parser) acceptKeyword(kw string) bool {
	if p.peek().Is(kw) {
		p.next()
		return true
	}

	return false
}

func (p *parser) expectKeyword(kw string) error {
	if !p.acceptKeyword(kw) {
		return p.unexpected(p.peek(), strings.ToUpper(kw))
	}

	return nil
}

func (p *parser) acceptPunct(s string) bool {
	if p.peek().IsPunct(s) {
		p.next()
		return true
	}

	return false
}

func (p *parser) expectPunct(s string) error {
	if !p.acceptPunct(s) {
		return p.unexpected(p.peek(), fmt.Sprintf("%q", s))
	}

	return nil
}

// parseIdent consumes a plain or quoted identifier. what names the expected
// identifier in error messages.
func (p *parser) parseIdent(what string) (string, error) {
	tok := p.peek()
	if tok.Kind != TokenIdent && tok.Kind != TokenQuotedIdent {
		return "", p.unexpected(tok, what)
	}

	p.next()
	return tok.Value, nil
}

// parseIdentList parses '(' ident (',' ident)* ')'.
func (p *parser) parseIdentList(what string) ([]string, error) {
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}

	var names []string
	for {
		name, err := p.parseIdent(what)
		if err != nil {
			return nil, err
		}

		names = append(names, name)
		if !p.acceptPunct(",") {
			break
		}
	}

	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}

	return names, nil
}

func (p *parser) unexpected(tok Token, expected string) *ParseError {
	if tok.Kind == TokenEOF {
		return errorf(tok.Pos, "unexpected end of input, expected %s", expected)
	}

	return errorf(tok.Pos, "unexpected %s %q, expected %s", strings.ToLower(tok.Kind.String()), tok.Raw, expected)
}

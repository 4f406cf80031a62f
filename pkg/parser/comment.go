package parser

import (
	"strings"

	"github.com/pseudomuto/ddlast/pkg/ast"
)

// attachComments removes comment tokens from tokens and hangs them on the
// remaining ones.
//
// Standalone comments are collected in Leading of the next token. An inline
// comment goes to Comments of the token it follows on the same line, or of
// the next token when nothing precedes it on that line.
func attachComments(tokens []Token) []Token {
	var (
		code    = make([]Token, 0, len(tokens))
		leading []Token
		orphans []string
	)

	for _, tok := range tokens {
		if tok.Kind != TokenComment {
			tok.Leading, leading = leading, nil
			tok.Comments, orphans = orphans, nil
			code = append(code, tok)
			continue
		}

		if !tok.Inline {
			leading = append(leading, tok)
			continue
		}

		if n := len(code); n > 0 && code[n-1].EndLine == tok.Pos.Line {
			code[n-1].Comments = append(code[n-1].Comments, tok.Value)
		} else {
			orphans = append(orphans, tok.Value)
		}
	}

	return code
}

// blockComment returns the standalone comments directly above tok joined by
// newlines. Only the run of comments on consecutive lines ending on the line
// before tok counts; anything above a blank or code line is dropped.
func blockComment(tok Token) string {
	var (
		lines []string
		next  = tok.Pos.Line
	)

	for i := len(tok.Leading) - 1; i >= 0; i-- {
		c := tok.Leading[i]
		if c.EndLine != next-1 {
			break
		}

		lines = append([]string{c.Value}, lines...)
		next = c.Pos.Line
	}

	return strings.Join(lines, "\n")
}

// inlineComments returns the inline comments attached to tokens[from:to].
func (p *parser) inlineComments(from, to int) []string {
	var comments []string
	for _, tok := range p.tokens[from:to] {
		comments = append(comments, tok.Comments...)
	}

	return comments
}

// commentsOf returns the comment fields of a table entry.
func commentsOf(entry ast.TableEntry) *ast.Commented {
	switch e := entry.(type) {
	case *ast.Column:
		return &e.Commented
	case *ast.TablePrimaryKey:
		return &e.Commented
	case *ast.TableUnique:
		return &e.Commented
	case *ast.TableForeignKey:
		return &e.Commented
	default:
		return nil
	}
}

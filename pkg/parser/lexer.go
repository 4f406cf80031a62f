package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/pseudomuto/ddlast/pkg/utils"
)

// TokenKind classifies a Token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenQuotedIdent
	TokenString
	TokenInt
	TokenFloat
	TokenPunct
	TokenComment
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:         "EOF",
	TokenIdent:       "Ident",
	TokenQuotedIdent: "QuotedIdent",
	TokenString:      "String",
	TokenInt:         "Int",
	TokenFloat:       "Float",
	TokenPunct:       "Punct",
	TokenComment:     "Comment",
}

func (k TokenKind) String() string {
	return tokenKindNames[k]
}

// Token is a classified piece of DDL text.
//
// Value holds the meaningful text: string literals with '' resolved, quoted
// identifiers without their quotes and comments without their delimiters.
// Raw is the text exactly as it appeared in the input.
type Token struct {
	Kind    TokenKind
	Value   string
	Raw     string
	Pos     lexer.Position
	EndLine int

	// Inline is set on comments that share a line with a non-comment token.
	// Comments without it stand on their own lines.
	Inline bool

	// Filled in by attachComments on non-comment tokens.
	Comments []string
	Leading  []Token
}

// Is reports whether the token is the unquoted keyword kw, ignoring case.
func (t Token) Is(kw string) bool {
	return t.Kind == TokenIdent && strings.EqualFold(t.Value, kw)
}

// IsPunct reports whether the token is the punctuation p.
func (t Token) IsPunct(p string) bool {
	return t.Kind == TokenPunct && t.Value == p
}

var ddlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `--[^\r\n]*`},
	{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
	{Name: "UnterminatedComment", Pattern: `/\*`},
	{Name: "String", Pattern: `'([^']|'')*'`},
	{Name: "UnterminatedString", Pattern: `'`},
	{Name: "QuotedIdent", Pattern: "`([^`]|``)*`|\"([^\"]|\"\")*\""},
	{Name: "UnterminatedIdent", Pattern: "[`\"]"},
	{Name: "Number", Pattern: `\d+(\.\d*)?|\.\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_$]*`},
	{Name: "Punct", Pattern: `[(),;.=+\-*/<>]`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Illegal", Pattern: `.`},
})

var symbols = ddlLexer.Symbols()

// Tokenize splits sql into tokens, comments included, and terminates the
// result with a TokenEOF token. Unterminated strings, comments or quoted
// identifiers and illegal characters fail with a *ParseError.
func Tokenize(sql string) ([]Token, error) {
	lex, err := ddlLexer.LexString("", sql)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create lexer")
	}

	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		var perr interface {
			Message() string
			Position() lexer.Position
		}
		if errors.As(err, &perr) {
			return nil, errorf(perr.Position(), "%s", perr.Message())
		}

		return nil, errors.Wrap(err, "failed to tokenize")
	}

	tokens := make([]Token, 0, len(raw))
	codeLines := make(map[int]bool)
	for _, rt := range raw {
		tok := Token{
			Raw:     rt.Value,
			Value:   rt.Value,
			Pos:     rt.Pos,
			EndLine: rt.Pos.Line + strings.Count(rt.Value, "\n"),
		}

		switch rt.Type {
		case lexer.EOF:
			tok.Kind = TokenEOF
		case symbols["Whitespace"]:
			continue
		case symbols["Comment"]:
			tok.Kind = TokenComment
			tok.Value = strings.TrimSpace(strings.TrimPrefix(rt.Value, "--"))
		case symbols["MultilineComment"]:
			tok.Kind = TokenComment
			tok.Value = strings.TrimSpace(rt.Value[2 : len(rt.Value)-2])
		case symbols["String"]:
			tok.Kind = TokenString
			tok.Value = utils.UnquoteString(rt.Value)
		case symbols["QuotedIdent"]:
			tok.Kind = TokenQuotedIdent
			tok.Value = utils.UnquoteIdentifier(rt.Value)
		case symbols["Number"]:
			tok.Kind = TokenInt
			if utils.IsFloatLiteral(rt.Value) {
				tok.Kind = TokenFloat
			}
		case symbols["Ident"]:
			tok.Kind = TokenIdent
		case symbols["Punct"]:
			tok.Kind = TokenPunct
		case symbols["UnterminatedComment"]:
			return nil, errorf(rt.Pos, "unterminated comment")
		case symbols["UnterminatedString"]:
			return nil, errorf(rt.Pos, "unterminated string literal")
		case symbols["UnterminatedIdent"]:
			return nil, errorf(rt.Pos, "unterminated quoted identifier")
		default:
			return nil, errorf(rt.Pos, "illegal character %q", rt.Value)
		}

		if tok.Kind != TokenComment && tok.Kind != TokenEOF {
			for line := tok.Pos.Line; line <= tok.EndLine; line++ {
				codeLines[line] = true
			}
		}

		tokens = append(tokens, tok)
	}

	for i := range tokens {
		if tokens[i].Kind != TokenComment {
			continue
		}

		for line := tokens[i].Pos.Line; line <= tokens[i].EndLine; line++ {
			if codeLines[line] {
				tokens[i].Inline = true
				break
			}
		}
	}

	return tokens, nil
}

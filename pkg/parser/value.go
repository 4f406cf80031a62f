package parser

import (
	"strconv"

	"github.com/pseudomuto/ddlast/pkg/ast"
)

// parseDefaultValue parses the value of a DEFAULT clause:
//
//	ident              -> ast.SQLExprValue (as written)
//	'string'           -> ast.StringValue ('' resolved by the tokenizer)
//	[+-]integer        -> ast.IntValue
//	[+-]decimal        -> ast.FloatValue
func (p *parser) parseDefaultValue() (ast.Value, error) {
	tok := p.next()
	switch tok.Kind {
	case TokenIdent:
		return ast.SQLExprValue{Value: tok.Value}, nil
	case TokenString:
		return ast.StringValue{Value: tok.Value}, nil
	case TokenInt, TokenFloat:
		return numericValue("", tok)
	case TokenPunct:
		if tok.Value == "-" || tok.Value == "+" {
			num := p.next()
			if num.Kind != TokenInt && num.Kind != TokenFloat {
				return nil, p.unexpected(num, "number")
			}
			return numericValue(tok.Value, num)
		}
	}

	return nil, p.unexpected(tok, "default value")
}

func numericValue(sign string, tok Token) (ast.Value, error) {
	text := sign + tok.Value
	if tok.Kind == TokenFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, errorf(tok.Pos, "invalid number %s", text)
		}
		return ast.FloatValue{Value: f}, nil
	}

	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, errorf(tok.Pos, "invalid integer %s", text)
	}
	return ast.IntValue{Value: n}, nil
}

package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// arity is the allowed number of numeric arguments of a data type.
type arity struct {
	min, max int
}

func (a arity) String() string {
	switch {
	case a.max == 0:
		return "no arguments"
	case a.min == 1 && a.max == 1:
		return "exactly 1 argument"
	case a.min == a.max:
		return fmt.Sprintf("exactly %d arguments", a.min)
	case a.min == 0:
		return fmt.Sprintf("at most %d arguments", a.max)
	default:
		return fmt.Sprintf("%d or %d arguments", a.min, a.max)
	}
}

var (
	// typeArity lists the data types with a fixed arity, keyed by lower case
	// name. Other type names are accepted with up to two arguments.
	typeArity = map[string]arity{
		"int":       {0, 0},
		"integer":   {0, 0},
		"bigint":    {0, 0},
		"smallint":  {0, 0},
		"tinyint":   {0, 0},
		"real":      {0, 0},
		"date":      {0, 0},
		"time":      {0, 0},
		"datetime":  {0, 0},
		"timestamp": {0, 0},
		"text":      {0, 0},
		"char":      {1, 1},
		"varchar":   {1, 1},
		"float":     {1, 1},
		"decimal":   {1, 2},
		"numeric":   {1, 2},
	}

	defaultArity = arity{0, 2}
)

// parseDataType parses
//
//	ident ('(' int (',' int)* ')')?
//
// and checks the argument count against typeArity. The name is returned as
// written; args is nil when no argument list was present.
func (p *parser) parseDataType() (string, []int, error) {
	tok := p.peek()
	if tok.Kind != TokenIdent || isConstraintKeyword(tok) {
		return "", nil, p.unexpected(tok, "data type")
	}
	p.next()

	var args []int
	if p.acceptPunct("(") {
		for {
			arg := p.next()
			if arg.Kind != TokenInt {
				return "", nil, p.unexpected(arg, "integer type argument")
			}

			n, err := strconv.Atoi(arg.Value)
			if err != nil {
				return "", nil, errorf(arg.Pos, "invalid type argument %q", arg.Value)
			}

			args = append(args, n)
			if !p.acceptPunct(",") {
				break
			}
		}

		if err := p.expectPunct(")"); err != nil {
			return "", nil, err
		}
	}

	a, ok := typeArity[strings.ToLower(tok.Value)]
	if !ok {
		a = defaultArity
	}

	if len(args) < a.min || len(args) > a.max {
		return "", nil, errorf(tok.Pos, "type %s takes %s, got %d", tok.Value, a, len(args))
	}

	return tok.Value, args, nil
}

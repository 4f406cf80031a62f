// Package utils provides small helpers shared by the ast and parser packages.
//
// # Identifier Utilities (identifier.go)
//
// Quoted identifiers may be written with backticks or double quotes. The
// parser stores the bare name:
//
//	name := utils.UnquoteIdentifier("`order-id`")
//	// Result: order-id
//
//	if utils.IsQuotedIdentifier(raw) {
//		// never treated as a keyword
//	}
//
// # Literal Utilities (literal.go)
//
// SQL string literals use single quotes and escape a quote by doubling it:
//
//	value := utils.UnquoteString("'John '' Wick'")
//	// Result: John ' Wick
package utils

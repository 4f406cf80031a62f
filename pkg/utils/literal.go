package utils

import "strings"

// UnquoteString converts a single-quoted SQL string literal into its value.
// The surrounding quotes are removed and every doubled quote ('') becomes a
// single quote. Input that is not a complete literal is returned unchanged.
//
// Examples:
//   - "'John '' Wick'" -> "John ' Wick"
//   - "''" -> ""
//   - "abc" -> "abc"
func UnquoteString(raw string) string {
	if len(raw) < 2 || raw[0] != '\'' || raw[len(raw)-1] != '\'' {
		return raw
	}

	return strings.ReplaceAll(raw[1:len(raw)-1], "''", "'")
}

// IsFloatLiteral reports whether a numeric literal is written with a decimal point.
func IsFloatLiteral(raw string) bool {
	return strings.Contains(raw, ".")
}

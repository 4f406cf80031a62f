package utils

import "strings"

// IsQuotedIdentifier checks if s is a single identifier wrapped in backticks or
// double quotes.
//
// Examples:
//   - "`table`" -> true
//   - "\"table\"" -> true
//   - "table" -> false
//   - "`table\"" -> false (mismatched quotes)
//   - "" -> false
func IsQuotedIdentifier(s string) bool {
	if len(s) < 2 {
		return false
	}

	q := s[0]
	return (q == '`' || q == '"') && s[len(s)-1] == q
}

// UnquoteIdentifier removes the surrounding quotes from a quoted identifier and
// collapses doubled quote characters inside it. Unquoted input is returned as-is.
//
// Examples:
//   - "`order-id`" -> "order-id"
//   - "\"user \"\"name\"\"\"" -> "user \"name\""
//   - "users" -> "users"
func UnquoteIdentifier(s string) string {
	if !IsQuotedIdentifier(s) {
		return s
	}

	q := string(s[0])
	return strings.ReplaceAll(s[1:len(s)-1], q+q, q)
}

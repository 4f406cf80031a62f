package parser_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/pseudomuto/ddlast/pkg/ast"
	. "github.com/pseudomuto/ddlast/pkg/parser"
)

// parseTable parses sql, which must hold exactly one CREATE TABLE statement.
func parseTable(t *testing.T, sql string) *ast.CreateTable {
	t.Helper()

	doc, err := ParseString(sql)
	require.NoError(t, err)
	require.Len(t, doc.Orders, 1)

	table, ok := doc.Orders[0].(*ast.CreateTable)
	require.True(t, ok, "expected *ast.CreateTable, got %T", doc.Orders[0])
	return table
}

// parseColumn wraps def in a single-column table and returns the column.
func parseColumn(t *testing.T, def string) *ast.Column {
	t.Helper()

	table := parseTable(t, "create table t1(\n  "+def+"\n);")
	require.Len(t, table.Entries, 1)

	col, ok := table.Entries[0].(*ast.Column)
	require.True(t, ok, "expected *ast.Column, got %T", table.Entries[0])
	return col
}

// requireParseError asserts that err wraps a *ParseError and returns it.
func requireParseError(t *testing.T, err error) *ParseError {
	t.Helper()

	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr), "expected *ParseError in %v", err)
	require.Positive(t, perr.Pos.Line)
	require.Positive(t, perr.Pos.Column)
	return perr
}

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pseudomuto/ddlast/pkg/ast"
	. "github.com/pseudomuto/ddlast/pkg/parser"
)

func TestCreateTable(t *testing.T) {
	t.Parallel()

	table := parseTable(t, `
		CREATE TABLE IF NOT EXISTS orders (
			id integer not null primary key autoincrement,
			customer_id integer not null,
			sku varchar(32),
			constraint pk_orders primary key (id),
			unique (customer_id, sku),
			constraint fk_customer foreign key (customer_id) references customers (id) on delete cascade on update set default
		);`)

	require.Equal(t, "orders", table.Name)
	require.True(t, table.IfNotExists)
	require.Len(t, table.Entries, 6)
	require.Len(t, table.Columns(), 3)
	require.Len(t, table.Constraints(), 3)

	require.Equal(t, []string{"id", "customer_id", "sku"}, []string{
		table.Columns()[0].Name, table.Columns()[1].Name, table.Columns()[2].Name,
	})

	require.Equal(t, &ast.TablePrimaryKey{Name: "pk_orders", Columns: []string{"id"}}, table.Entries[3])
	require.Equal(t, &ast.TableUnique{Columns: []string{"customer_id", "sku"}}, table.Entries[4])
	require.Equal(t, &ast.TableForeignKey{
		Name:              "fk_customer",
		Columns:           []string{"customer_id"},
		ReferencedTable:   "customers",
		ReferencedColumns: []string{"id"},
		OnDelete:          "cascade",
		OnUpdate:          "set default",
	}, table.Entries[5])
}

func TestCreateTableEntriesKeepSourceOrder(t *testing.T) {
	t.Parallel()

	table := parseTable(t, "create table t1(a integer, primary key (a, b), b text, unique (b));")
	require.IsType(t, &ast.Column{}, table.Entries[0])
	require.IsType(t, &ast.TablePrimaryKey{}, table.Entries[1])
	require.IsType(t, &ast.Column{}, table.Entries[2])
	require.IsType(t, &ast.TableUnique{}, table.Entries[3])
}

func TestQuotedTableName(t *testing.T) {
	t.Parallel()

	table := parseTable(t, "create table `user-db` (\"select\" text);")
	require.Equal(t, "user-db", table.Name)
	require.Equal(t, "select", table.Columns()[0].Name)
	require.False(t, table.IfNotExists)
}

func TestMultipleStatements(t *testing.T) {
	t.Parallel()

	doc, err := ParseString(`
		create table t1(a integer);
		;
		create table t2(b integer);
		create table t3(c integer);;
	`)
	require.NoError(t, err)
	require.Len(t, doc.Orders, 3)

	var names []string
	for _, table := range doc.CreateTables() {
		names = append(names, table.Name)
	}
	require.Equal(t, []string{"t1", "t2", "t3"}, names)
}

func TestEmptyInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace", input: " \n\t "},
		{name: "comments only", input: "-- nothing here\n/* or here */"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseString(tt.input)
			require.NoError(t, err)
			require.NotNil(t, doc.Orders)
			require.Empty(t, doc.Orders)
		})
	}
}

func TestCreateTableErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sql    string
		line   int
		column int
		msg    string
	}{
		{
			name: "missing closing paren", sql: "create table t1(a integer;",
			line: 1, column: 26, msg: `unexpected punct ";", expected ")"`,
		},
		{
			name: "missing opening paren", sql: "create table t1 a integer);",
			line: 1, column: 17, msg: `unexpected ident "a", expected "("`,
		},
		{
			name: "missing semicolon before next statement", sql: "create table t1(a integer)\ncreate table t2(b integer);",
			line: 2, column: 1, msg: `unexpected ident "create", expected ";"`,
		},
		{
			name: "missing table name", sql: "create table (a integer);",
			line: 1, column: 14, msg: `unexpected punct "(", expected table name`,
		},
		{
			name: "no columns", sql: "create table t1();",
			line: 1, column: 17, msg: `unexpected punct ")", expected column name`,
		},
		{
			name: "trailing comma", sql: "create table t1(a integer,);",
			line: 1, column: 27, msg: `unexpected punct ")", expected column name`,
		},
		{
			name: "incomplete if not exists", sql: "create table if exists t1(a integer);",
			line: 1, column: 17, msg: `unexpected ident "exists", expected NOT`,
		},
		{
			name: "unsupported statement", sql: "drop table t1;",
			line: 1, column: 1, msg: `unexpected ident "drop", expected CREATE TABLE`,
		},
		{
			name: "create something else", sql: "create view v1 as select 1;",
			line: 1, column: 1, msg: `unexpected ident "create", expected CREATE TABLE`,
		},
		{
			name: "foreign key without references", sql: "create table t1(a integer, foreign key (a) t2(b));",
			line: 1, column: 44, msg: `unexpected ident "t2", expected REFERENCES`,
		},
		{
			name: "table constraint without columns", sql: "create table t1(a integer, primary key);",
			line: 1, column: 39, msg: `unexpected punct ")", expected "("`,
		},
		{
			name: "table constraint without body", sql: "create table t1(a integer, constraint c1 check (a));",
			line: 1, column: 42, msg: `unexpected ident "check", expected PRIMARY KEY, UNIQUE or FOREIGN KEY`,
		},
		{
			name: "unterminated string", sql: "create table t1(a text default 'abc);",
			line: 1, column: 32, msg: "unterminated string literal",
		},
		{
			name: "illegal character", sql: "create table t1(a integer @);",
			line: 1, column: 27, msg: `illegal character "@"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseString(tt.sql)
			require.Nil(t, doc)

			perr := requireParseError(t, err)
			require.Equal(t, tt.msg, perr.Message())
			require.Equal(t, tt.line, perr.Pos.Line)
			require.Equal(t, tt.column, perr.Pos.Column)
		})
	}
}

func TestMissingSemicolonAtEnd(t *testing.T) {
	t.Parallel()

	doc, err := ParseString("create table t1(a integer)")
	require.Nil(t, doc)

	perr := requireParseError(t, err)
	require.Equal(t, `unexpected end of input, expected ";"`, perr.Message())
	require.Equal(t, 1, perr.Pos.Line)
}

package ast_test

import (
	"testing"

	. "github.com/pseudomuto/ddlast/pkg/ast"
	"github.com/stretchr/testify/require"
)

func TestCreateTableAccessors(t *testing.T) {
	t.Parallel()

	doc := sampleDocument()
	tables := doc.CreateTables()
	require.Len(t, tables, 1)

	table := tables[0]
	require.Equal(t, StatementCreateTable, table.StatementType())
	require.Len(t, table.Columns(), 1)
	require.Len(t, table.Constraints(), 1)
	require.Equal(t, ConstraintPrimaryKey, table.Constraints()[0].ConstraintType())
	require.Equal(t, "pk", table.Constraints()[0].ConstraintName())
	require.Equal(t, "line 1\nline 2", table.GetBlockComment())
	require.Nil(t, table.Column("missing"))

	col := table.Column("a")
	require.NotNil(t, col)
	require.True(t, col.HasConstraint(ConstraintNotNull))
	require.False(t, col.HasConstraint(ConstraintUnique))
	require.Equal(t, SQLExprValue{Value: "current_timestamp"}, col.Default())
	require.Equal(t, []string{"comment on a"}, col.GetInlineComment())
	require.Empty(t, col.GetBlockComment())
}

func TestValueTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    Value
		expected ValueType
	}{
		{value: SQLExprValue{Value: "current_timestamp"}, expected: ValueSQLExpr},
		{value: StringValue{Value: "x"}, expected: ValueString},
		{value: IntValue{Value: 1}, expected: ValueInt},
		{value: FloatValue{Value: 1.5}, expected: ValueFloat},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.expected), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, tt.value.ValueType())
		})
	}
}

func TestColumnWithoutDefault(t *testing.T) {
	t.Parallel()

	col := &Column{Name: "a", Type: "integer"}
	require.Nil(t, col.Default())
	require.False(t, col.HasConstraint(ConstraintDefault))
}

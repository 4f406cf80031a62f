package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pseudomuto/ddlast/pkg/ast"
)

func TestTableComments(t *testing.T) {
	t.Parallel()

	t.Run("inline comments on table", func(t *testing.T) {
		t.Parallel()

		table := parseTable(t, `
      create table t1( -- comment on t1 #1
        a integer
      ); -- comment on t1 #2
      `)
		require.Equal(t, []string{"comment on t1 #1", "comment on t1 #2"}, table.InlineComment)
		require.Empty(t, table.BlockComment)
		require.Empty(t, table.Columns()[0].InlineComment)
	})

	t.Run("block comments on table", func(t *testing.T) {
		t.Parallel()

		table := parseTable(t, `
      -- comment on t1 #1
      -- comment on t1 #2
      create table t1(
        a integer
      );
      `)
		require.Equal(t, "comment on t1 #1\ncomment on t1 #2", table.BlockComment)
		require.Empty(t, table.InlineComment)
	})

	t.Run("block and inline comments together", func(t *testing.T) {
		t.Parallel()

		table := parseTable(t, `
      -- block
      create table t1( -- inline
        a integer
      );
      `)
		require.Equal(t, "block", table.BlockComment)
		require.Equal(t, []string{"inline"}, table.InlineComment)
	})

	t.Run("blank line separates block comment", func(t *testing.T) {
		t.Parallel()

		table := parseTable(t, `
      -- file header

      -- comment on t1
      create table t1(a integer);
      `)
		require.Equal(t, "comment on t1", table.BlockComment)
	})

	t.Run("blank line before table drops comment", func(t *testing.T) {
		t.Parallel()

		table := parseTable(t, `
      -- file header

      create table t1(a integer);
      `)
		require.Empty(t, table.BlockComment)
	})

	t.Run("multiline block comment", func(t *testing.T) {
		t.Parallel()

		table := parseTable(t, `
      /* first
         second */
      create table t1(a integer);
      `)
		require.Equal(t, "first\n         second", table.BlockComment)
	})
}

func TestColumnComments(t *testing.T) {
	t.Parallel()

	t.Run("inline comments on column", func(t *testing.T) {
		t.Parallel()

		table := parseTable(t, `
      create table t1(
        a        -- comment on a #1
        integer, -- comment on a #2
        b       -- comment on b #1
        integer -- comment on b #2
      );
      `)
		require.Equal(t, []string{"comment on a #1", "comment on a #2"}, table.Entries[0].GetInlineComment())
		require.Equal(t, []string{"comment on b #1", "comment on b #2"}, table.Entries[1].GetInlineComment())
		require.Empty(t, table.InlineComment)
	})

	t.Run("block comments on column", func(t *testing.T) {
		t.Parallel()

		table := parseTable(t, `
      create table t1(
        -- comment on a #1
        -- comment on a #2
        a integer
      );
      `)
		require.Equal(t, "comment on a #1\ncomment on a #2", table.Entries[0].GetBlockComment())
		require.Empty(t, table.BlockComment)
	})

	t.Run("block comment only reaches the next column", func(t *testing.T) {
		t.Parallel()

		table := parseTable(t, `
      create table t1(
        a integer,
        -- comment on b
        b integer
      );
      `)
		require.Empty(t, table.Entries[0].GetBlockComment())
		require.Equal(t, "comment on b", table.Entries[1].GetBlockComment())
	})

	t.Run("comment before code on the same line", func(t *testing.T) {
		t.Parallel()

		table := parseTable(t, `
      create table t1(
        /* leading */ a integer
      );
      `)
		require.Equal(t, []string{"leading"}, table.Entries[0].GetInlineComment())
		require.Empty(t, table.Entries[0].GetBlockComment())
	})

	t.Run("comments on table constraint", func(t *testing.T) {
		t.Parallel()

		table := parseTable(t, `
      create table t1(
        a integer,
        -- composite key
        primary key (a) -- inline
      );
      `)
		pk, ok := table.Entries[1].(*ast.TablePrimaryKey)
		require.True(t, ok)
		require.Equal(t, "composite key", pk.BlockComment)
		require.Equal(t, []string{"inline"}, pk.InlineComment)
	})

	t.Run("trailing comment on comma belongs to the column before it", func(t *testing.T) {
		t.Parallel()

		table := parseTable(t, "create table t1(a integer, -- on a\n b integer);")
		require.Equal(t, []string{"on a"}, table.Entries[0].GetInlineComment())
		require.Empty(t, table.Entries[1].GetInlineComment())
	})
}

// Package parser turns SQL CREATE TABLE statements into the tree defined by
// package ast.
//
// Parsing happens in three steps:
//
//  1. Tokenize splits the text into tokens using a participle lexer. Every
//     comment token records whether it shares a line with code (an inline
//     comment) or stands on its own line.
//  2. The comment attacher removes comments from the stream and hangs them on
//     neighbouring tokens.
//  3. A recursive-descent parser walks the remaining tokens with an index
//     cursor and builds the ast.Document in source order.
//
// Supported grammar:
//
//	CREATE TABLE [IF NOT EXISTS] name (
//	    column type[(n[, m])] [column constraint ...],
//	    [CONSTRAINT name] PRIMARY KEY (col, ...),
//	    [CONSTRAINT name] UNIQUE (col, ...),
//	    [CONSTRAINT name] FOREIGN KEY (col, ...) REFERENCES table (col, ...) [ON DELETE action] [ON UPDATE action]
//	);
//
// Column constraints, each optionally preceded by CONSTRAINT name:
//
//	NOT NULL | NULL | PRIMARY KEY [AUTOINCREMENT] | UNIQUE
//	REFERENCES table (col) [ON DELETE action] [ON UPDATE action]
//	DEFAULT value
//
// Keywords are case-insensitive. Identifiers may be quoted with backticks or
// double quotes. Comments use -- or /* */.
//
// Comments are attached to tables, columns and table constraints:
//
//	-- Becomes the table's block comment.
//	-- Consecutive lines are joined with newlines.
//	create table t1( -- inline comment on t1
//	    -- block comment on a
//	    a integer, -- inline comment on a
//	    b integer  -- inline comment on b
//	); -- inline comment on t1
//
// The parser targets complete schema files. The first error stops it and is
// reported as a *ParseError with a line and column; no partial result is
// returned.
//
// Basic usage:
//
//	doc, err := parser.ParseString("create table t1(a integer not null primary key);")
//	if err != nil {
//		return err
//	}
//
//	table := doc.Orders[0].(*ast.CreateTable)
package parser

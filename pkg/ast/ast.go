package ast

// StatementType identifies the kind of a top-level statement.
type StatementType string

// StatementCreateTable is the only statement type produced by the parser.
const StatementCreateTable StatementType = "createTable"

type (
	// Document is the result of parsing a DDL text. Orders holds one entry per
	// top-level statement, in source order.
	Document struct {
		Orders []Statement `json:"orders" yaml:"orders"`
	}

	// Statement is a top-level statement. *CreateTable is the only variant.
	Statement interface {
		StatementType() StatementType
		isStatement()
	}

	// CommentAccessor is implemented by every node that carries comments.
	CommentAccessor interface {
		GetInlineComment() []string
		GetBlockComment() string
	}

	// Commented holds the comments attached to a node.
	//
	// InlineComment lists the -- or /* */ comments that share a line with the
	// node's own tokens, in source order. BlockComment is the newline-joined text
	// of the standalone comment lines directly above the node.
	Commented struct {
		InlineComment []string `json:"inlineComment,omitempty" yaml:"inlineComment,omitempty"`
		BlockComment  string   `json:"blockComment,omitempty" yaml:"blockComment,omitempty"`
	}

	// CreateTable represents a CREATE TABLE statement.
	CreateTable struct {
		Name        string       `json:"name" yaml:"name"`
		IfNotExists bool         `json:"ifNotExists,omitempty" yaml:"ifNotExists,omitempty"`
		Entries     []TableEntry `json:"entries" yaml:"entries"`
		Commented   `yaml:",inline"`
	}

	// TableEntry is an element of a table definition: a *Column or a
	// TableConstraint.
	TableEntry interface {
		CommentAccessor
		isTableEntry()
	}

	// Column is a column definition. TypeArgs holds the numeric arguments exactly
	// as written (e.g. varchar(25) or decimal(4, 2)) and is nil when the type
	// had none.
	Column struct {
		Name        string             `json:"name" yaml:"name"`
		Type        string             `json:"type" yaml:"type"`
		TypeArgs    []int              `json:"typeArgs,omitempty" yaml:"typeArgs,omitempty,flow"`
		Constraints []ColumnConstraint `json:"constraints,omitempty" yaml:"constraints,omitempty"`
		Commented   `yaml:",inline"`
	}
)

// GetInlineComment returns the inline comments.
func (c Commented) GetInlineComment() []string {
	return c.InlineComment
}

// GetBlockComment returns the block comment, or "" when there is none.
func (c Commented) GetBlockComment() string {
	return c.BlockComment
}

// StatementType returns StatementCreateTable.
func (*CreateTable) StatementType() StatementType { return StatementCreateTable }

func (*CreateTable) isStatement() {}

func (*Column) isTableEntry() {}
func (*TablePrimaryKey) isTableEntry() {}
func (*TableUnique) isTableEntry() {}
func (*TableForeignKey) isTableEntry() {}

// CreateTables returns the CREATE TABLE statements of the document in order.
func (d *Document) CreateTables() []*CreateTable {
	var tables []*CreateTable
	for _, stmt := range d.Orders {
		if t, ok := stmt.(*CreateTable); ok {
			tables = append(tables, t)
		}
	}

	return tables
}

// Columns returns the column entries of the table in order.
func (t *CreateTable) Columns() []*Column {
	var cols []*Column
	for _, entry := range t.Entries {
		if col, ok := entry.(*Column); ok {
			cols = append(cols, col)
		}
	}

	return cols
}

// Column returns the column with the given name, or nil.
func (t *CreateTable) Column(name string) *Column {
	for _, col := range t.Columns() {
		if col.Name == name {
			return col
		}
	}

	return nil
}

// Constraints returns the table-level constraints in order.
func (t *CreateTable) Constraints() []TableConstraint {
	var constraints []TableConstraint
	for _, entry := range t.Entries {
		if c, ok := entry.(TableConstraint); ok {
			constraints = append(constraints, c)
		}
	}

	return constraints
}

// HasConstraint reports whether the column declares a constraint of type ct.
func (c *Column) HasConstraint(ct ConstraintType) bool {
	for _, constraint := range c.Constraints {
		if constraint.ConstraintType() == ct {
			return true
		}
	}

	return false
}

// Default returns the column's DEFAULT value, or nil.
func (c *Column) Default() Value {
	for _, constraint := range c.Constraints {
		if d, ok := constraint.(DefaultConstraint); ok {
			return d.Value
		}
	}

	return nil
}

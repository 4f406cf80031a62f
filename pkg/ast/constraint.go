package ast

// ConstraintType discriminates column and table constraints.
type ConstraintType string

const (
	ConstraintNotNull       ConstraintType = "notNull"
	ConstraintNull          ConstraintType = "null"
	ConstraintPrimaryKey    ConstraintType = "primaryKey"
	ConstraintAutoincrement ConstraintType = "autoincrement"
	ConstraintUnique        ConstraintType = "unique"
	ConstraintForeignKey    ConstraintType = "foreignKey"
	ConstraintDefault       ConstraintType = "default"
)

type (
	// ColumnConstraint is a constraint declared on a column. Name is set only when
	// the constraint was introduced by CONSTRAINT <name>.
	ColumnConstraint interface {
		ConstraintType() ConstraintType
		ConstraintName() string
		isColumnConstraint()
	}

	// NotNullConstraint is NOT NULL.
	NotNullConstraint struct {
		Name string `json:"name,omitempty" yaml:"name,omitempty"`
	}

	// NullConstraint is NULL.
	NullConstraint struct {
		Name string `json:"name,omitempty" yaml:"name,omitempty"`
	}

	// PrimaryKeyConstraint is PRIMARY KEY. A following AUTOINCREMENT is a separate
	// AutoincrementConstraint.
	PrimaryKeyConstraint struct {
		Name string `json:"name,omitempty" yaml:"name,omitempty"`
	}

	// AutoincrementConstraint is the AUTOINCREMENT that follows PRIMARY KEY.
	AutoincrementConstraint struct {
		Name string `json:"name,omitempty" yaml:"name,omitempty"`
	}

	// UniqueConstraint is UNIQUE.
	UniqueConstraint struct {
		Name string `json:"name,omitempty" yaml:"name,omitempty"`
	}

	// ForeignKeyConstraint is REFERENCES table(column) with its optional
	// referential actions, kept verbatim (e.g. "cascade", "set null").
	ForeignKeyConstraint struct {
		Name             string `json:"name,omitempty" yaml:"name,omitempty"`
		ReferencedTable  string `json:"referencedTable" yaml:"referencedTable"`
		ReferencedColumn string `json:"referencedColumn" yaml:"referencedColumn"`
		OnDelete         string `json:"onDelete,omitempty" yaml:"onDelete,omitempty"`
		OnUpdate         string `json:"onUpdate,omitempty" yaml:"onUpdate,omitempty"`
	}

	// DefaultConstraint is DEFAULT <value>.
	DefaultConstraint struct {
		Name  string `json:"name,omitempty" yaml:"name,omitempty"`
		Value Value  `json:"value" yaml:"value"`
	}
)

type (
	// TableConstraint is a constraint declared as its own entry of a table
	// definition.
	TableConstraint interface {
		TableEntry
		ConstraintType() ConstraintType
		ConstraintName() string
	}

	// TablePrimaryKey is PRIMARY KEY (col, ...).
	TablePrimaryKey struct {
		Name      string   `json:"name,omitempty" yaml:"name,omitempty"`
		Columns   []string `json:"columns" yaml:"columns,flow"`
		Commented `yaml:",inline"`
	}

	// TableUnique is UNIQUE (col, ...).
	TableUnique struct {
		Name      string   `json:"name,omitempty" yaml:"name,omitempty"`
		Columns   []string `json:"columns" yaml:"columns,flow"`
		Commented `yaml:",inline"`
	}

	// TableForeignKey is FOREIGN KEY (col, ...) REFERENCES table(col, ...).
	TableForeignKey struct {
		Name              string   `json:"name,omitempty" yaml:"name,omitempty"`
		Columns           []string `json:"columns" yaml:"columns,flow"`
		ReferencedTable   string   `json:"referencedTable" yaml:"referencedTable"`
		ReferencedColumns []string `json:"referencedColumns" yaml:"referencedColumns,flow"`
		OnDelete          string   `json:"onDelete,omitempty" yaml:"onDelete,omitempty"`
		OnUpdate          string   `json:"onUpdate,omitempty" yaml:"onUpdate,omitempty"`
		Commented         `yaml:",inline"`
	}
)

func (NotNullConstraint) ConstraintType() ConstraintType       { return ConstraintNotNull }
func (NullConstraint) ConstraintType() ConstraintType          { return ConstraintNull }
func (PrimaryKeyConstraint) ConstraintType() ConstraintType    { return ConstraintPrimaryKey }
func (AutoincrementConstraint) ConstraintType() ConstraintType { return ConstraintAutoincrement }
func (UniqueConstraint) ConstraintType() ConstraintType        { return ConstraintUnique }
func (ForeignKeyConstraint) ConstraintType() ConstraintType    { return ConstraintForeignKey }
func (DefaultConstraint) ConstraintType() ConstraintType       { return ConstraintDefault }
func (*TablePrimaryKey) ConstraintType() ConstraintType        { return ConstraintPrimaryKey }
func (*TableUnique) ConstraintType() ConstraintType            { return ConstraintUnique }
func (*TableForeignKey) ConstraintType() ConstraintType        { return ConstraintForeignKey }

func (c NotNullConstraint) ConstraintName() string       { return c.Name }
func (c NullConstraint) ConstraintName() string          { return c.Name }
func (c PrimaryKeyConstraint) ConstraintName() string    { return c.Name }
func (c AutoincrementConstraint) ConstraintName() string { return c.Name }
func (c UniqueConstraint) ConstraintName() string        { return c.Name }
func (c ForeignKeyConstraint) ConstraintName() string    { return c.Name }
func (c DefaultConstraint) ConstraintName() string       { return c.Name }
func (c *TablePrimaryKey) ConstraintName() string        { return c.Name }
func (c *TableUnique) ConstraintName() string            { return c.Name }
func (c *TableForeignKey) ConstraintName() string        { return c.Name }

func (NotNullConstraint) isColumnConstraint()       {}
func (NullConstraint) isColumnConstraint()          {}
func (PrimaryKeyConstraint) isColumnConstraint()    {}
func (AutoincrementConstraint) isColumnConstraint() {}
func (UniqueConstraint) isColumnConstraint()        {}
func (ForeignKeyConstraint) isColumnConstraint()    {}
func (DefaultConstraint) isColumnConstraint()       {}

// MarshalJSON encodes the constraint with its constraintType discriminator.
func (c NotNullConstraint) MarshalJSON() ([]byte, error) {
	type plain NotNullConstraint
	return marshalTaggedJSON(constraintKey, string(c.ConstraintType()), plain(c))
}

// MarshalJSON encodes the constraint with its constraintType discriminator.
func (c NullConstraint) MarshalJSON() ([]byte, error) {
	type plain NullConstraint
	return marshalTaggedJSON(constraintKey, string(c.ConstraintType()), plain(c))
}

// MarshalJSON encodes the constraint with its constraintType discriminator.
func (c PrimaryKeyConstraint) MarshalJSON() ([]byte, error) {
	type plain PrimaryKeyConstraint
	return marshalTaggedJSON(constraintKey, string(c.ConstraintType()), plain(c))
}

// MarshalJSON encodes the constraint with its constraintType discriminator.
func (c AutoincrementConstraint) MarshalJSON() ([]byte, error) {
	type plain AutoincrementConstraint
	return marshalTaggedJSON(constraintKey, string(c.ConstraintType()), plain(c))
}

// MarshalJSON encodes the constraint with its constraintType discriminator.
func (c UniqueConstraint) MarshalJSON() ([]byte, error) {
	type plain UniqueConstraint
	return marshalTaggedJSON(constraintKey, string(c.ConstraintType()), plain(c))
}

// MarshalJSON encodes the constraint with its constraintType discriminator.
func (c ForeignKeyConstraint) MarshalJSON() ([]byte, error) {
	type plain ForeignKeyConstraint
	return marshalTaggedJSON(constraintKey, string(c.ConstraintType()), plain(c))
}

// MarshalJSON encodes the constraint with its constraintType discriminator.
func (c DefaultConstraint) MarshalJSON() ([]byte, error) {
	type plain DefaultConstraint
	return marshalTaggedJSON(constraintKey, string(c.ConstraintType()), plain(c))
}

// MarshalJSON encodes the constraint with its constraintType discriminator.
func (c *TablePrimaryKey) MarshalJSON() ([]byte, error) {
	type plain TablePrimaryKey
	return marshalTaggedJSON(constraintKey, string(c.ConstraintType()), (*plain)(c))
}

// MarshalJSON encodes the constraint with its constraintType discriminator.
func (c *TableUnique) MarshalJSON() ([]byte, error) {
	type plain TableUnique
	return marshalTaggedJSON(constraintKey, string(c.ConstraintType()), (*plain)(c))
}

// MarshalJSON encodes the constraint with its constraintType discriminator.
func (c *TableForeignKey) MarshalJSON() ([]byte, error) {
	type plain TableForeignKey
	return marshalTaggedJSON(constraintKey, string(c.ConstraintType()), (*plain)(c))
}

// MarshalYAML encodes the constraint with its constraintType discriminator.
func (c NotNullConstraint) MarshalYAML() (any, error) {
	type plain NotNullConstraint
	return marshalTaggedYAML(constraintKey, string(c.ConstraintType()), plain(c))
}

// MarshalYAML encodes the constraint with its constraintType discriminator.
func (c NullConstraint) MarshalYAML() (any, error) {
	type plain NullConstraint
	return marshalTaggedYAML(constraintKey, string(c.ConstraintType()), plain(c))
}

// MarshalYAML encodes the constraint with its constraintType discriminator.
func (c PrimaryKeyConstraint) MarshalYAML() (any, error) {
	type plain PrimaryKeyConstraint
	return marshalTaggedYAML(constraintKey, string(c.ConstraintType()), plain(c))
}

// MarshalYAML encodes the constraint with its constraintType discriminator.
func (c AutoincrementConstraint) MarshalYAML() (any, error) {
	type plain AutoincrementConstraint
	return marshalTaggedYAML(constraintKey, string(c.ConstraintType()), plain(c))
}

// MarshalYAML encodes the constraint with its constraintType discriminator.
func (c UniqueConstraint) MarshalYAML() (any, error) {
	type plain UniqueConstraint
	return marshalTaggedYAML(constraintKey, string(c.ConstraintType()), plain(c))
}

// MarshalYAML encodes the constraint with its constraintType discriminator.
func (c ForeignKeyConstraint) MarshalYAML() (any, error) {
	type plain ForeignKeyConstraint
	return marshalTaggedYAML(constraintKey, string(c.ConstraintType()), plain(c))
}

// MarshalYAML encodes the constraint with its constraintType discriminator.
func (c DefaultConstraint) MarshalYAML() (any, error) {
	type plain DefaultConstraint
	return marshalTaggedYAML(constraintKey, string(c.ConstraintType()), plain(c))
}

// MarshalYAML encodes the constraint with its constraintType discriminator.
func (c *TablePrimaryKey) MarshalYAML() (any, error) {
	type plain TablePrimaryKey
	return marshalTaggedYAML(constraintKey, string(c.ConstraintType()), (*plain)(c))
}

// MarshalYAML encodes the constraint with its constraintType discriminator.
func (c *TableUnique) MarshalYAML() (any, error) {
	type plain TableUnique
	return marshalTaggedYAML(constraintKey, string(c.ConstraintType()), (*plain)(c))
}

// MarshalYAML encodes the constraint with its constraintType discriminator.
func (c *TableForeignKey) MarshalYAML() (any, error) {
	type plain TableForeignKey
	return marshalTaggedYAML(constraintKey, string(c.ConstraintType()), (*plain)(c))
}

var (
	_ ColumnConstraint = NotNullConstraint{}
	_ ColumnConstraint = NullConstraint{}
	_ ColumnConstraint = PrimaryKeyConstraint{}
	_ ColumnConstraint = AutoincrementConstraint{}
	_ ColumnConstraint = UniqueConstraint{}
	_ ColumnConstraint = ForeignKeyConstraint{}
	_ ColumnConstraint = DefaultConstraint{}

	_ TableConstraint = (*TablePrimaryKey)(nil)
	_ TableConstraint = (*TableUnique)(nil)
	_ TableConstraint = (*TableForeignKey)(nil)
)

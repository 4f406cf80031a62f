package ast

// ValueType discriminates default values.
type ValueType string

const (
	ValueSQLExpr ValueType = "sqlExpr"
	ValueString  ValueType = "string"
	ValueInt     ValueType = "int"
	ValueFloat   ValueType = "float"
)

type (
	// Value is the value of a DEFAULT clause.
	Value interface {
		ValueType() ValueType
		isValue()
	}

	// SQLExprValue is a bare keyword or identifier such as current_timestamp,
	// kept as written.
	SQLExprValue struct {
		Value string `json:"value" yaml:"value"`
	}

	// StringValue is a single-quoted literal with '' escapes resolved.
	StringValue struct {
		Value string `json:"value" yaml:"value"`
	}

	// IntValue is a numeric literal written without a decimal point.
	IntValue struct {
		Value int64 `json:"value" yaml:"value"`
	}

	// FloatValue is a numeric literal written with a decimal point.
	FloatValue struct {
		Value float64 `json:"value" yaml:"value"`
	}
)

func (SQLExprValue) ValueType() ValueType { return ValueSQLExpr }
func (StringValue) ValueType() ValueType  { return ValueString }
func (IntValue) ValueType() ValueType     { return ValueInt }
func (FloatValue) ValueType() ValueType   { return ValueFloat }

func (SQLExprValue) isValue() {}
func (StringValue) isValue()  {}
func (IntValue) isValue()     {}
func (FloatValue) isValue()   {}

// MarshalJSON encodes the value with its type discriminator.
func (v SQLExprValue) MarshalJSON() ([]byte, error) {
	type plain SQLExprValue
	return marshalTaggedJSON(valueKey, string(v.ValueType()), plain(v))
}

// MarshalJSON encodes the value with its type discriminator.
func (v StringValue) MarshalJSON() ([]byte, error) {
	type plain StringValue
	return marshalTaggedJSON(valueKey, string(v.ValueType()), plain(v))
}

// MarshalJSON encodes the value with its type discriminator.
func (v IntValue) MarshalJSON() ([]byte, error) {
	type plain IntValue
	return marshalTaggedJSON(valueKey, string(v.ValueType()), plain(v))
}

// MarshalJSON encodes the value with its type discriminator.
func (v FloatValue) MarshalJSON() ([]byte, error) {
	type plain FloatValue
	return marshalTaggedJSON(valueKey, string(v.ValueType()), plain(v))
}

// MarshalYAML encodes the value with its type discriminator.
func (v SQLExprValue) MarshalYAML() (any, error) {
	type plain SQLExprValue
	return marshalTaggedYAML(valueKey, string(v.ValueType()), plain(v))
}

// MarshalYAML encodes the value with its type discriminator.
func (v StringValue) MarshalYAML() (any, error) {
	type plain StringValue
	return marshalTaggedYAML(valueKey, string(v.ValueType()), plain(v))
}

// MarshalYAML encodes the value with its type discriminator.
func (v IntValue) MarshalYAML() (any, error) {
	type plain IntValue
	return marshalTaggedYAML(valueKey, string(v.ValueType()), plain(v))
}

// MarshalYAML encodes the value with its type discriminator.
func (v FloatValue) MarshalYAML() (any, error) {
	type plain FloatValue
	return marshalTaggedYAML(valueKey, string(v.ValueType()), plain(v))
}

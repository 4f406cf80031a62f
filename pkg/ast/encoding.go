package ast

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Discriminator keys of the tagged unions.
const (
	statementKey  = "statementType"
	constraintKey = "constraintType"
	valueKey      = "type"
)

// MarshalJSON encodes the statement with its statementType discriminator.
func (t *CreateTable) MarshalJSON() ([]byte, error) {
	type plain CreateTable
	return marshalTaggedJSON(statementKey, string(t.StatementType()), (*plain)(t))
}

// MarshalYAML encodes the statement with its statementType discriminator.
func (t *CreateTable) MarshalYAML() (any, error) {
	type plain CreateTable
	return marshalTaggedYAML(statementKey, string(t.StatementType()), (*plain)(t))
}

// marshalTaggedJSON encodes v, which must encode to a JSON object, and puts
// key: tag in front of its fields.
func marshalTaggedJSON(key, tag string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s", tag)
	}

	var buf bytes.Buffer
	buf.WriteString(`{"` + key + `":"` + tag + `"`)
	if len(body) > len("{}") {
		buf.WriteByte(',')
		buf.Write(body[1:])
	} else {
		buf.WriteByte('}')
	}

	return buf.Bytes(), nil
}

// marshalTaggedYAML is the YAML counterpart of marshalTaggedJSON. It returns
// a mapping node whose first pair is key: tag.
func marshalTaggedYAML(key, tag string, v any) (any, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s", tag)
	}

	if node.Kind != yaml.MappingNode {
		return nil, errors.Errorf("failed to encode %s: expected a mapping, got kind %d", tag, node.Kind)
	}

	node.Content = append([]*yaml.Node{
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: tag},
	}, node.Content...)

	return &node, nil
}

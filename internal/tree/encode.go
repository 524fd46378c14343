package tree

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the object with keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := writeJSON(&buf, k); err != nil {
			return nil, err
		}

		buf.WriteByte(':')

		if err := writeJSON(&buf, o.values[k]); err != nil {
			return nil, fmt.Errorf("failed to encode key %q: %w", k, err)
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML encodes the object as a YAML mapping with keys in insertion order.
func (o *Object) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, k := range o.keys {
		var val yaml.Node
		if err := val.Encode(o.values[k]); err != nil {
			return nil, fmt.Errorf("failed to encode key %q: %w", k, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}

	return node, nil
}

// EncodeJSON renders v as JSON without HTML escaping. A non-empty indent
// produces multi-line output.
func EncodeJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer

	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}

	if indent == "" {
		return buf.Bytes(), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", indent); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// EncodeYAML renders v as a YAML document.
func EncodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}

	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return err
	}

	// Encoder always terminates the value with a newline.
	buf.Truncate(buf.Len() - 1)

	return nil
}

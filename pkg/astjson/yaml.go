package astjson

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML renders a JSON document as block-style YAML, keeping member order.
func ToYAML(doc []byte) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(doc, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	blockStyle(&root)

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(&root); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}

	return buf.Bytes(), nil
}

// JSON parses as flow-style YAML with quoted strings. Clearing those styles
// makes the encoder emit nested blocks and plain scalars; it still quotes
// strings that would otherwise read back as another type.
func blockStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle | yaml.DoubleQuotedStyle | yaml.SingleQuotedStyle

	for _, child := range n.Content {
		blockStyle(child)
	}
}

package estree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/Sumatoshi-tech/astbridge/pkg/astjson"
)

// JSON has no infinity; +Inf is written as a literal that overflows float64,
// which is how ESTree producers serialize 2e308.
const infinityJSON = "1e400"

var registry = newRegistry()

func newRegistry() *astjson.Registry {
	r := astjson.NewRegistry("estree", reflect.TypeFor[Node]())
	for _, proto := range prototypes() {
		r.Register(proto)
	}

	r.SetUnknown(func(kind string, fields map[string]json.RawMessage) astjson.Node {
		return &Unknown{Kind: kind, Fields: fields}
	})

	return r
}

// Registry returns the kind registry of the ESTree taxonomy.
func Registry() *astjson.Registry {
	return registry
}

// Decode parses an ESTree JSON document. Unregistered kinds become Unknown
// nodes.
func Decode(data []byte) (Node, error) {
	n, err := registry.Decode(data)
	if err != nil || n == nil {
		return nil, err
	}

	node, ok := n.(Node)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an estree node", astjson.ErrKindMismatch, n.Type())
	}

	return node, nil
}

// Encode renders a tree as compact JSON.
func Encode(node Node) ([]byte, error) {
	return registry.Encode(node)
}

// Unknown is a node whose kind is not part of the taxonomy. It keeps the
// decoded members so it can be written back unchanged.
type Unknown struct {
	Kind   string
	Fields map[string]json.RawMessage
}

func (n *Unknown) Type() string { return n.Kind }

func (*Unknown) estreeNode() {}

// MarshalJSON writes the kept members with the kind as "type".
func (n *Unknown) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(n.Fields)+1)
	for k, v := range n.Fields {
		fields[k] = v
	}

	kind, err := json.Marshal(n.Kind)
	if err != nil {
		return nil, err
	}

	fields["type"] = kind

	return json.Marshal(fields)
}

type literalJSON struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
	Regex *RegExp         `json:"regex,omitempty"`
}

// MarshalJSON encodes the literal with its value in the "value" member.
func (l *Literal) MarshalJSON() ([]byte, error) {
	value, err := marshalLiteralValue(l.Value)
	if err != nil {
		return nil, err
	}

	if l.Regex != nil {
		value = json.RawMessage("null")
	}

	return json.Marshal(literalJSON{Type: KindLiteral, Value: value, Regex: l.Regex})
}

// UnmarshalJSON decodes a literal. Numbers that overflow float64 decode to
// +Inf or -Inf.
func (l *Literal) UnmarshalJSON(data []byte) error {
	var raw literalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	l.Regex = raw.Regex
	if l.Regex != nil {
		l.Value = nil

		return nil
	}

	value, err := unmarshalLiteralValue(raw.Value)
	if err != nil {
		return err
	}

	l.Value = value

	return nil
}

func marshalLiteralValue(v any) (json.RawMessage, error) {
	switch v := v.(type) {
	case float64:
		switch {
		case math.IsInf(v, 1):
			return json.RawMessage(infinityJSON), nil
		case math.IsInf(v, -1):
			return json.RawMessage("-" + infinityJSON), nil
		case math.IsNaN(v):
			return nil, errors.New("NaN literal value")
		}

		return json.RawMessage(strconv.FormatFloat(v, 'g', -1, 64)), nil
	case nil, string, bool:
		return json.Marshal(v)
	default:
		return nil, fmt.Errorf("unsupported literal value of type %T", v)
	}
}

func unmarshalLiteralValue(raw json.RawMessage) (any, error) {
	raw = bytes.TrimSpace(raw)

	switch {
	case len(raw) == 0 || string(raw) == "null":
		return nil, nil
	case raw[0] == '"':
		var s string
		err := json.Unmarshal(raw, &s)

		return s, err
	case string(raw) == "true" || string(raw) == "false":
		return string(raw) == "true", nil
	case raw[0] == '{' || raw[0] == '[':
		return nil, fmt.Errorf("literal value must be a scalar, got %s", raw)
	}

	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("literal value %s: %w", raw, err)
	}

	return f, nil
}

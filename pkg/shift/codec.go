package shift

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/Sumatoshi-tech/astbridge/pkg/astjson"
)

var registry = newRegistry()

func newRegistry() *astjson.Registry {
	r := astjson.NewRegistry("shift", reflect.TypeFor[Node]())
	for _, proto := range prototypes() {
		r.Register(proto)
	}

	r.SetUnknown(func(kind string, fields map[string]json.RawMessage) astjson.Node {
		return &Unknown{Kind: kind, Fields: fields}
	})

	return r
}

// Registry returns the kind registry of the Shift taxonomy.
func Registry() *astjson.Registry {
	return registry
}

// Decode parses a Shift JSON document. Unregistered kinds become Unknown
// nodes.
func Decode(data []byte) (Node, error) {
	n, err := registry.Decode(data)
	if err != nil || n == nil {
		return nil, err
	}

	node, ok := n.(Node)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a shift node", astjson.ErrKindMismatch, n.Type())
	}

	return node, nil
}

// Encode renders a tree as compact JSON.
func Encode(node Node) ([]byte, error) {
	return registry.Encode(node)
}

// Unknown is a node whose kind is not part of the taxonomy.
type Unknown struct {
	Kind   string
	Fields map[string]json.RawMessage
}

func (n *Unknown) Type() string { return n.Kind }

func (*Unknown) shiftNode() {}

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

package estree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/astbridge/pkg/astjson"
	"github.com/Sumatoshi-tech/astbridge/pkg/estree"
)

func TestDecodeProgram(t *testing.T) {
	t.Parallel()

	doc := `{
	  "type": "Program",
	  "sourceType": "script",
	  "body": [
	    {"type": "ExpressionStatement", "expression": {"type": "Literal", "value": "use strict"}},
	    {"type": "VariableDeclaration", "kind": "let", "declarations": [
	      {"type": "VariableDeclarator", "id": {"type": "Identifier", "name": "x"},
	       "init": {"type": "Literal", "value": 1.5, "raw": "1.5"}}
	    ]},
	    {"type": "ExpressionStatement", "expression": {"type": "ArrayExpression", "elements": [null, {"type": "Literal", "value": 1e400}]}}
	  ]
	}`

	node, err := estree.Decode([]byte(doc))
	require.NoError(t, err)

	want := &estree.Program{
		SourceType: "script",
		Body: []estree.Node{
			&estree.ExpressionStatement{Expression: &estree.Literal{Value: "use strict"}},
			&estree.VariableDeclaration{Kind: "let", Declarations: []*estree.VariableDeclarator{
				{ID: &estree.Identifier{Name: "x"}, Init: &estree.Literal{Value: 1.5}},
			}},
			&estree.ExpressionStatement{Expression: &estree.ArrayExpression{Elements: []estree.Node{
				nil, &estree.Literal{Value: math.Inf(1)},
			}}},
		},
	}
	assert.Equal(t, want, node)
}

func TestLiteralValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lit  *estree.Literal
		json string
	}{
		{name: "null", lit: &estree.Literal{}, json: `{"type":"Literal","value":null}`},
		{name: "true", lit: &estree.Literal{Value: true}, json: `{"type":"Literal","value":true}`},
		{name: "string", lit: &estree.Literal{Value: "a\"b"}, json: `{"type":"Literal","value":"a\"b"}`},
		{name: "integer", lit: &estree.Literal{Value: 42.0}, json: `{"type":"Literal","value":42}`},
		{name: "fraction", lit: &estree.Literal{Value: 0.25}, json: `{"type":"Literal","value":0.25}`},
		{name: "large", lit: &estree.Literal{Value: 1e21}, json: `{"type":"Literal","value":1e+21}`},
		{name: "infinity", lit: &estree.Literal{Value: math.Inf(1)}, json: `{"type":"Literal","value":1e400}`},
		{
			name: "regex",
			lit:  &estree.Literal{Regex: &estree.RegExp{Pattern: "a+", Flags: "gi"}},
			json: `{"type":"Literal","value":null,"regex":{"pattern":"a+","flags":"gi"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := estree.Encode(tt.lit)
			require.NoError(t, err)
			assert.JSONEq(t, tt.json, string(data))

			back, err := estree.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, tt.lit, back)
		})
	}
}

func TestDirectiveMember(t *testing.T) {
	t.Parallel()

	plain := &estree.ExpressionStatement{Expression: &estree.Literal{Value: "x"}}

	data, err := estree.Encode(plain)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ExpressionStatement","expression":{"type":"Literal","value":"x"}}`, string(data))

	doc := `{"type":"ExpressionStatement","expression":{"type":"Literal","value":"use strict"},"directive":"use strict"}`

	node, err := estree.Decode([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, &estree.ExpressionStatement{
		Expression: &estree.Literal{Value: "use strict"},
		Directive:  "use strict",
	}, node)

	data, err = estree.Encode(node)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(data))
}

func TestLiteralRejectsCompositeValue(t *testing.T) {
	t.Parallel()

	_, err := estree.Decode([]byte(`{"type":"Literal","value":{"a":1}}`))
	require.ErrorIs(t, err, astjson.ErrMalformedDocument)
}

func TestLiteralRejectsNaN(t *testing.T) {
	t.Parallel()

	_, err := estree.Encode(&estree.Literal{Value: math.NaN()})
	require.Error(t, err)
}

func TestUnknownKindRoundTrip(t *testing.T) {
	t.Parallel()

	doc := `{"type":"ExpressionStatement","expression":{"type":"Frobnicate","weight":3}}`

	node, err := estree.Decode([]byte(doc))
	require.NoError(t, err)

	stmt, ok := node.(*estree.ExpressionStatement)
	require.True(t, ok)

	unknown, ok := stmt.Expression.(*estree.Unknown)
	require.True(t, ok)
	assert.Equal(t, "Frobnicate", unknown.Type())

	data, err := estree.Encode(node)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(data))
}

func TestKindMismatch(t *testing.T) {
	t.Parallel()

	_, err := estree.Decode([]byte(`{"type":"TryStatement","block":{"type":"Identifier","name":"x"}}`))
	require.ErrorIs(t, err, astjson.ErrKindMismatch)
}

func TestRegistryCoversEveryKind(t *testing.T) {
	t.Parallel()

	kinds := estree.Registry().Kinds()

	assert.Len(t, kinds, 65)
	assert.Contains(t, kinds, estree.KindProgram)
	assert.Contains(t, kinds, estree.KindExportSpecifier)
	assert.Contains(t, kinds, estree.KindMetaProperty)
}

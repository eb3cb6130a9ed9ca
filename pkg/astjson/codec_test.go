package astjson_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/astbridge/pkg/astjson"
)

type testNode interface {
	astjson.Node
	testNode()
}

type list struct {
	Items []testNode `json:"items"`
	Label string     `json:"label,omitempty"`
}

type leaf struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type pair struct {
	First  *leaf    `json:"first"`
	Second testNode `json:"second"`
}

type opaque struct {
	Kind   string
	Fields map[string]json.RawMessage
}

func (*list) Type() string { return "List" }
func (*leaf) Type() string { return "Leaf" }
func (*pair) Type() string { return "Pair" }
func (o *opaque) Type() string { return o.Kind }

func (*list) testNode() {}
func (*leaf) testNode() {}
func (*pair) testNode() {}
func (*opaque) testNode() {}

func newTestRegistry(withUnknown bool) *astjson.Registry {
	r := astjson.NewRegistry("test", reflect.TypeFor[testNode]())
	r.Register(&list{})
	r.Register(&leaf{})
	r.Register(&pair{})

	if withUnknown {
		r.SetUnknown(func(kind string, fields map[string]json.RawMessage) astjson.Node {
			return &opaque{Kind: kind, Fields: fields}
		})
	}

	return r
}

func TestRegistryKinds(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(false)

	assert.Equal(t, "test", r.Name())
	assert.Equal(t, []string{"Leaf", "List", "Pair"}, r.Kinds())
	assert.True(t, r.Has("Pair"))
	assert.False(t, r.Has("Frobnicate"))
}

func TestRegisterRejectsNonStruct(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(false)

	assert.Panics(t, func() { r.Register(kindString("Bad")) })
}

type kindString string

func (k kindString) Type() string { return string(k) }

func TestDecodeNestedTree(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(false)

	doc := `{"type":"List","items":[{"type":"Leaf","name":"a","score":1.5},null,
		{"type":"Pair","first":{"type":"Leaf","name":"b","score":0},"second":{"type":"List","items":[]}}]}`

	node, err := r.Decode([]byte(doc))
	require.NoError(t, err)

	want := &list{Items: []testNode{
		&leaf{Name: "a", Score: 1.5},
		nil,
		&pair{First: &leaf{Name: "b"}, Second: &list{}},
	}}
	assert.Equal(t, want, node)
}

func TestDecodeNull(t *testing.T) {
	t.Parallel()

	node, err := newTestRegistry(false).Decode([]byte(" null "))
	require.NoError(t, err)
	assert.Nil(t, node)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{name: "not json", doc: `{`, want: astjson.ErrMalformedDocument},
		{name: "array root", doc: `[]`, want: astjson.ErrMalformedDocument},
		{name: "missing type", doc: `{"name":"x"}`, want: astjson.ErrMalformedDocument},
		{name: "numeric type", doc: `{"type":3}`, want: astjson.ErrMalformedDocument},
		{name: "unknown kind", doc: `{"type":"Frobnicate"}`, want: astjson.ErrUnknownKind},
		{name: "wrong concrete kind", doc: `{"type":"Pair","first":{"type":"List"}}`, want: astjson.ErrKindMismatch},
		{name: "bad scalar", doc: `{"type":"Leaf","score":"high"}`, want: astjson.ErrMalformedDocument},
		{name: "bad list", doc: `{"type":"List","items":{}}`, want: astjson.ErrMalformedDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newTestRegistry(false).Decode([]byte(tt.doc))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeUnknownFallback(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(true)

	node, err := r.Decode([]byte(`{"type":"List","items":[{"type":"Frobnicate","x":1}]}`))
	require.NoError(t, err)

	l, ok := node.(*list)
	require.True(t, ok)
	require.Len(t, l.Items, 1)

	unknown, ok := l.Items[0].(*opaque)
	require.True(t, ok)
	assert.Equal(t, "Frobnicate", unknown.Type())
	assert.JSONEq(t, `1`, string(unknown.Fields["x"]))
}

func TestEncode(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(false)

	tree := &list{Items: []testNode{&leaf{Name: "a<b", Score: 2}, nil, &pair{}}}

	data, err := r.Encode(tree)
	require.NoError(t, err)

	assert.Equal(t,
		`{"type":"List","items":[{"type":"Leaf","name":"a<b","score":2},null,`+
			`{"type":"Pair","first":null,"second":null}],"label":null}`,
		string(data))
}

func TestEncodeNil(t *testing.T) {
	t.Parallel()

	data, err := newTestRegistry(false).Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestEncodeDecodePreservesTree(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(false)
	tree := &list{
		Label: "outer",
		Items: []testNode{&pair{First: &leaf{Name: "x", Score: -3}, Second: &list{Label: "inner"}}},
	}

	data, err := r.EncodeIndent(tree, "", "  ")
	require.NoError(t, err)

	back, err := r.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, tree, back)
}

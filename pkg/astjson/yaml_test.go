package astjson_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/astbridge/pkg/astjson"
)

func TestToYAMLKeepsOrderAndBlockStyle(t *testing.T) {
	t.Parallel()

	out, err := astjson.ToYAML([]byte(`{"type":"List","items":[{"type":"Leaf","name":"a","score":1}],"label":null}`))
	require.NoError(t, err)

	text := string(out)
	assert.NotContains(t, text, "{")
	assert.Less(t, strings.Index(text, "type:"), strings.Index(text, "items:"))
	assert.Less(t, strings.Index(text, "items:"), strings.Index(text, "label:"))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, map[string]any{
		"type":  "List",
		"items": []any{map[string]any{"type": "Leaf", "name": "a", "score": 1}},
		"label": nil,
	}, decoded)
}

func TestToYAMLEmptyList(t *testing.T) {
	t.Parallel()

	out, err := astjson.ToYAML([]byte(`{"type":"List","items":[]}`))
	require.NoError(t, err)
	assert.Equal(t, "type: List\nitems: []\n", string(out))
}

func TestToYAMLQuotesAmbiguousStrings(t *testing.T) {
	t.Parallel()

	out, err := astjson.ToYAML([]byte(`{"type":"Directive","rawValue":"true","n":1}`))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, map[string]any{"type": "Directive", "rawValue": "true", "n": 1}, decoded)
}

func TestToYAMLRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := astjson.ToYAML([]byte("{\"type\": ["))
	require.ErrorIs(t, err, astjson.ErrMalformedDocument)
}

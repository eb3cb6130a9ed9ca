package convert_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/astbridge/pkg/convert"
	"github.com/Sumatoshi-tech/astbridge/pkg/estree"
	"github.com/Sumatoshi-tech/astbridge/pkg/shift"
)

func id(name string) *estree.Identifier { return &estree.Identifier{Name: name} }

func num(v float64) *estree.Literal { return &estree.Literal{Value: v} }

func ref(name string) *shift.IdentifierExpression { return &shift.IdentifierExpression{Name: name} }

func quasi(raw string, tail bool) *estree.TemplateElement {
	return &estree.TemplateElement{Value: estree.TemplateValue{Raw: raw, Cooked: raw}, Tail: tail}
}

func TestBinaryExpression(t *testing.T) {
	t.Parallel()

	in := &estree.BinaryExpression{Operator: "+", Left: num(1), Right: num(2)}

	out, err := convert.ToShift(in)
	require.NoError(t, err)

	assert.Equal(t, &shift.BinaryExpression{
		Operator: "+",
		Left:     &shift.LiteralNumericExpression{Value: 1},
		Right:    &shift.LiteralNumericExpression{Value: 2},
	}, out)

	back, err := convert.ToESTree(out)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestSwitchDefaultSplit(t *testing.T) {
	t.Parallel()

	empty := []estree.Node{&estree.EmptyStatement{}}
	in := &estree.SwitchStatement{
		Discriminant: id("a"),
		Cases: []*estree.SwitchCase{
			{Test: num(1), Consequent: empty},
			{Consequent: empty},
			{Test: num(2), Consequent: empty},
		},
	}

	out, err := convert.ToShift(in)
	require.NoError(t, err)

	shiftEmpty := []shift.Node{&shift.EmptyStatement{}}
	assert.Equal(t, &shift.SwitchStatementWithDefault{
		Discriminant:     ref("a"),
		PreDefaultCases:  []*shift.SwitchCase{{Test: &shift.LiteralNumericExpression{Value: 1}, Consequent: shiftEmpty}},
		DefaultCase:      &shift.SwitchDefault{Consequent: shiftEmpty},
		PostDefaultCases: []*shift.SwitchCase{{Test: &shift.LiteralNumericExpression{Value: 2}, Consequent: shiftEmpty}},
	}, out)

	back, err := convert.ToESTree(out)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestSequenceFlatten(t *testing.T) {
	t.Parallel()

	in := &shift.BinaryExpression{
		Operator: ",",
		Left:     &shift.BinaryExpression{Operator: ",", Left: ref("a"), Right: ref("b")},
		Right:    ref("c"),
	}

	out, err := convert.ToESTree(in)
	require.NoError(t, err)
	assert.Equal(t, &estree.SequenceExpression{Expressions: []estree.Node{id("a"), id("b"), id("c")}}, out)

	back, err := convert.ToShift(out)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestTemplateInterleave(t *testing.T) {
	t.Parallel()

	in := &estree.TemplateLiteral{
		Quasis:      []*estree.TemplateElement{quasi("head", false), quasi("mid", false), quasi("tail", true)},
		Expressions: []estree.Node{id("x"), id("y")},
	}

	out, err := convert.ToShift(in)
	require.NoError(t, err)

	assert.Equal(t, &shift.TemplateExpression{Elements: []shift.Node{
		&shift.TemplateElement{RawValue: "head"},
		ref("x"),
		&shift.TemplateElement{RawValue: "mid"},
		ref("y"),
		&shift.TemplateElement{RawValue: "tail"},
	}}, out)

	back, err := convert.ToESTree(out)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestDirectiveSurvivesRoundTrip(t *testing.T) {
	t.Parallel()

	in := &shift.Script{
		Directives: []*shift.Directive{{RawValue: "use strict"}},
		Statements: []shift.Node{&shift.ExpressionStatement{Expression: ref("x")}},
	}

	out, err := convert.ToESTree(in)
	require.NoError(t, err)

	program, ok := out.(*estree.Program)
	require.True(t, ok)
	require.Len(t, program.Body, 2)
	assert.Equal(t, &estree.ExpressionStatement{
		Expression: &estree.Literal{Value: "use strict"},
		Directive:  "use strict",
	}, program.Body[0])
	assert.Equal(t, &estree.ExpressionStatement{Expression: id("x")}, program.Body[1])

	data, err := estree.Encode(program)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"directive":"use strict"`)

	decoded, err := estree.Decode(data)
	require.NoError(t, err)

	back, err := convert.ToShift(decoded)
	require.NoError(t, err)
	assert.Equal(t, in, back)

	again, err := convert.ToESTree(back)
	require.NoError(t, err)
	assert.Equal(t, program, again)
}

func TestArrowBodyFollowsBodyKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		arrow *estree.ArrowFunctionExpression
		want  shift.Node
	}{
		{
			name:  "expression body without flag",
			arrow: &estree.ArrowFunctionExpression{Body: id("x")},
			want:  ref("x"),
		},
		{
			name:  "block body with flag",
			arrow: &estree.ArrowFunctionExpression{Body: &estree.BlockStatement{}, Expression: true},
			want:  &shift.FunctionBody{},
		},
		{
			name:  "missing body",
			arrow: &estree.ArrowFunctionExpression{},
			want:  &shift.FunctionBody{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := convert.ToShift(tt.arrow)
			require.NoError(t, err)

			arrow, ok := out.(*shift.ArrowExpression)
			require.True(t, ok)
			assert.Equal(t, tt.want, arrow.Body)
		})
	}

	out, err := convert.ToShift(&estree.ArrowFunctionExpression{Body: id("x")})
	require.NoError(t, err)

	back, err := convert.ToESTree(out)
	require.NoError(t, err)
	assert.Equal(t, &estree.ArrowFunctionExpression{Body: id("x"), Expression: true}, back)
}

func TestUnrecognizedKind(t *testing.T) {
	t.Parallel()

	node, err := estree.Decode([]byte(`{"type":"Frobnicate","x":1}`))
	require.NoError(t, err)

	out, err := convert.ToShift(node)
	require.ErrorIs(t, err, convert.ErrUnrecognizedKind)
	assert.Nil(t, out)

	var kindErr *convert.UnrecognizedKindError
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, "Frobnicate", kindErr.Kind)
	assert.Equal(t, convert.ToShiftDirection, kindErr.Direction)
}

func TestUnrecognizedKindStopsTheWholeTree(t *testing.T) {
	t.Parallel()

	doc := `{"type":"Program","sourceType":"script","body":[
	  {"type":"ExpressionStatement","expression":{"type":"Literal","value":1}},
	  {"type":"ExpressionStatement","expression":{"type":"CallExpression","callee":{"type":"Identifier","name":"f"},
	    "arguments":[{"type":"Frobnicate"}]}}
	]}`

	node, err := estree.Decode([]byte(doc))
	require.NoError(t, err)

	out, err := convert.ToShift(node)
	require.ErrorIs(t, err, convert.ErrUnrecognizedKind)
	assert.Nil(t, out)
}

func TestContextOnlyKinds(t *testing.T) {
	t.Parallel()

	_, err := convert.ToShift(id("x"))
	require.ErrorIs(t, err, convert.ErrUnrecognizedKind)

	_, err = convert.ToShift(&estree.ClassBody{})
	require.ErrorIs(t, err, convert.ErrUnrecognizedKind)

	_, err = convert.ToESTree(&shift.FormalParameters{})

	var kindErr *convert.UnrecognizedKindError
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, shift.KindFormalParameters, kindErr.Kind)
	assert.Equal(t, convert.ToESTreeDirection, kindErr.Direction)
}

func TestStructuralViolations(t *testing.T) {
	t.Parallel()

	fn := &estree.FunctionExpression{Body: &estree.BlockStatement{}}

	estreeInputs := map[string]estree.Node{
		"two defaults":    &estree.SwitchStatement{Discriminant: id("x"), Cases: []*estree.SwitchCase{{}, {}}},
		"empty sequence":  &estree.SequenceExpression{},
		"single sequence": &estree.SequenceExpression{Expressions: []estree.Node{id("a")}},
		"template arity": &estree.TemplateLiteral{
			Quasis:      []*estree.TemplateElement{quasi("a", true)},
			Expressions: []estree.Node{id("x")},
		},
		"computed static member": &estree.MemberExpression{Object: id("o"), Property: num(1)},
		"negative infinity":      &estree.Literal{Value: math.Inf(-1)},
		"default import not first": &estree.ImportDeclaration{
			Specifiers: []estree.Node{
				&estree.ImportSpecifier{Local: id("a"), Imported: id("a")},
				&estree.ImportDefaultSpecifier{Local: id("d")},
			},
			Source: &estree.Literal{Value: "m"},
		},
		"namespace with named": &estree.ImportDeclaration{
			Specifiers: []estree.Node{
				&estree.ImportNamespaceSpecifier{Local: id("ns")},
				&estree.ImportSpecifier{Local: id("a"), Imported: id("a")},
			},
			Source: &estree.Literal{Value: "m"},
		},
		"numeric module source": &estree.ExportAllDeclaration{Source: num(1)},
		"unknown property kind": &estree.ObjectExpression{Properties: []*estree.Property{
			{Key: id("a"), Value: fn, Kind: "bogus"},
		}},
		"unknown meta property": &estree.MetaProperty{Meta: "import", Property: "meta"},
		"shorthand with literal key": &estree.ObjectExpression{Properties: []*estree.Property{
			{Key: num(1), Value: num(1), Kind: "init", Shorthand: true},
		}},
	}

	for name, node := range estreeInputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, err := convert.ToShift(node)
			require.ErrorIs(t, err, convert.ErrStructuralViolation)
			assert.Nil(t, out)

			var structErr *convert.StructuralError
			require.ErrorAs(t, err, &structErr)
			assert.NotEmpty(t, structErr.Kind)
		})
	}

	shiftInputs := map[string]shift.Node{
		"even template":            &shift.TemplateExpression{Elements: []shift.Node{&shift.TemplateElement{}, ref("x")}},
		"expression in quasi slot": &shift.TemplateExpression{Elements: []shift.Node{ref("x")}},
		"missing default clause":   &shift.SwitchStatementWithDefault{Discriminant: ref("x")},
		"non member in object":     &shift.ObjectExpression{Properties: []shift.Node{ref("x")}},
		"bad property name":        &shift.DataProperty{Name: ref("x"), Expression: ref("y")},
	}

	for name, node := range shiftInputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, err := convert.ToESTree(node)
			require.ErrorIs(t, err, convert.ErrStructuralViolation)
			assert.Nil(t, out)
		})
	}
}

func TestNilConvertsToNil(t *testing.T) {
	t.Parallel()

	out, err := convert.ToShift(nil)
	require.NoError(t, err)
	assert.Nil(t, out)

	back, err := convert.ToESTree(nil)
	require.NoError(t, err)
	assert.Nil(t, back)
}

func TestKinds(t *testing.T) {
	t.Parallel()

	toShift := convert.NewShiftConverter().Kinds()
	assert.Len(t, toShift, len(estree.Registry().Kinds())-2)
	assert.NotContains(t, toShift, estree.KindIdentifier)
	assert.NotContains(t, toShift, estree.KindClassBody)
	assert.Contains(t, toShift, estree.KindProgram)
	assert.IsIncreasing(t, toShift)

	toESTree := convert.NewESTreeConverter().Kinds()
	assert.Len(t, toESTree, len(shift.Registry().Kinds())-1)
	assert.NotContains(t, toESTree, shift.KindFormalParameters)
	assert.IsIncreasing(t, toESTree)
}

func TestWithTemplateCooker(t *testing.T) {
	t.Parallel()

	in := &shift.TemplateExpression{Elements: []shift.Node{&shift.TemplateElement{RawValue: `a\tb`}}}

	plain, err := convert.ToESTree(in)
	require.NoError(t, err)
	assert.Equal(t, &estree.TemplateLiteral{
		Quasis: []*estree.TemplateElement{{Value: estree.TemplateValue{Raw: `a\tb`, Cooked: `a\tb`}, Tail: true}},
	}, plain)

	var calls []string

	c := convert.NewESTreeConverter(convert.WithTemplateCooker(func(raw string) string {
		calls = append(calls, raw)

		return "cooked"
	}))

	cooked, err := c.Convert(in)
	require.NoError(t, err)
	assert.Equal(t, []string{`a\tb`}, calls)

	literal, ok := cooked.(*estree.TemplateLiteral)
	require.True(t, ok)
	assert.Equal(t, "cooked", literal.Quasis[0].Value.Cooked)
	assert.Equal(t, `a\tb`, literal.Quasis[0].Value.Raw)
}

func TestConvertersAreSafeForConcurrentUse(t *testing.T) {
	t.Parallel()

	node, err := estree.Decode([]byte(estreeCorpus["statements"]))
	require.NoError(t, err)

	want, err := convert.ToShift(node)
	require.NoError(t, err)

	var wg sync.WaitGroup

	results := make([]shift.Node, 8)
	errs := make([]error, len(results))

	for i := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i], errs[i] = convert.ToShift(node)
		}()
	}

	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
}

package convert

import (
	"math"

	"github.com/Sumatoshi-tech/astbridge/pkg/estree"
	"github.com/Sumatoshi-tech/astbridge/pkg/shift"
)

// Option configures an ESTreeConverter.
type Option func(*ESTreeConverter)

// WithTemplateCooker sets the function that computes the cooked value of a
// template chunk from its raw text. Without it the cooked value is the raw
// text.
func WithTemplateCooker(cook func(raw string) string) Option {
	return func(c *ESTreeConverter) {
		c.cook = cook
	}
}

// ESTreeConverter translates Shift trees into ESTree trees. It is immutable
// and safe for concurrent use.
type ESTreeConverter struct {
	table *dispatchTable[shift.Node, estree.Node]
	cook  func(string) string
}

// NewESTreeConverter builds the Shift to ESTree rule table.
func NewESTreeConverter(opts ...Option) *ESTreeConverter {
	c := &ESTreeConverter{table: newDispatchTable[shift.Node, estree.Node](ToESTreeDirection)}
	for _, opt := range opts {
		opt(c)
	}

	c.register()

	return c
}

// Convert translates node and its subtree. A nil node converts to nil.
func (c *ESTreeConverter) Convert(node shift.Node) (estree.Node, error) {
	if isNil(node) {
		return nil, nil
	}

	return c.table.dispatch(node)
}

// Kinds lists the Shift kinds with a context-free rule.
func (c *ESTreeConverter) Kinds() []string {
	return c.table.kinds()
}

//nolint:funlen // one line per kind
func (c *ESTreeConverter) register() {
	t := c.table

	handle(t, c.script)
	handle(t, c.module)
	handle(t, func(n *shift.Directive) (estree.Node, error) { return directiveStatement(n), nil })
	handle(t, func(n *shift.Block) (estree.Node, error) { return c.block(n) })
	handle(t, c.blockStatement)
	handle(t, func(n *shift.BreakStatement) (estree.Node, error) {
		return &estree.BreakStatement{Label: optionalIdentifier(n.Label)}, nil
	})
	handle(t, func(n *shift.ContinueStatement) (estree.Node, error) {
		return &estree.ContinueStatement{Label: optionalIdentifier(n.Label)}, nil
	})
	handle(t, func(*shift.DebuggerStatement) (estree.Node, error) { return &estree.DebuggerStatement{}, nil })
	handle(t, c.doWhileStatement)
	handle(t, func(*shift.EmptyStatement) (estree.Node, error) { return &estree.EmptyStatement{}, nil })
	handle(t, c.expressionStatement)
	handle(t, c.forInStatement)
	handle(t, c.forOfStatement)
	handle(t, c.forStatement)
	handle(t, c.ifStatement)
	handle(t, c.labeledStatement)
	handle(t, c.returnStatement)
	handle(t, c.switchStatement)
	handle(t, c.switchStatementWithDefault)
	handle(t, func(n *shift.SwitchCase) (estree.Node, error) { return c.switchCase(n) })
	handle(t, func(n *shift.SwitchDefault) (estree.Node, error) { return c.switchDefault(n) })
	handle(t, c.throwStatement)
	handle(t, c.tryCatchStatement)
	handle(t, c.tryFinallyStatement)
	handle(t, func(n *shift.CatchClause) (estree.Node, error) { return c.catchClause(n) })
	handle(t, c.variableDeclarationStatement)
	handle(t, func(n *shift.VariableDeclaration) (estree.Node, error) { return c.variableDeclaration(n) })
	handle(t, func(n *shift.VariableDeclarator) (estree.Node, error) { return c.variableDeclarator(n) })
	handle(t, c.whileStatement)
	handle(t, c.withStatement)
	handle(t, c.functionDeclaration)
	handle(t, c.functionExpression)
	handle(t, c.arrowExpression)
	handle(t, func(n *shift.FunctionBody) (estree.Node, error) { return c.functionBody(n) })
	handle(t, c.classDeclaration)
	handle(t, c.classExpression)
	handle(t, func(n *shift.ClassElement) (estree.Node, error) { return c.classElement(n) })
	handle(t, func(n *shift.Method) (estree.Node, error) { return c.objectMember(n) })
	handle(t, func(n *shift.Getter) (estree.Node, error) { return c.objectMember(n) })
	handle(t, func(n *shift.Setter) (estree.Node, error) { return c.objectMember(n) })
	handle(t, c.dataProperty)
	handle(t, func(n *shift.ShorthandProperty) (estree.Node, error) { return shorthandProperty(n.Name), nil })
	handle(t, c.computedPropertyName)
	handle(t, func(n *shift.StaticPropertyName) (estree.Node, error) { return staticPropertyLiteral(n.Value), nil })
	handle(t, func(n *shift.BindingIdentifier) (estree.Node, error) { return &estree.Identifier{Name: n.Name}, nil })
	handle(t, c.bindingWithDefault)
	handle(t, c.arrayBinding)
	handle(t, c.objectBinding)
	handle(t, func(n *shift.BindingPropertyIdentifier) (estree.Node, error) { return c.bindingPropertyIdentifier(n) })
	handle(t, func(n *shift.BindingPropertyProperty) (estree.Node, error) { return c.bindingPropertyProperty(n) })
	handle(t, func(n *shift.IdentifierExpression) (estree.Node, error) { return &estree.Identifier{Name: n.Name}, nil })
	handle(t, func(n *shift.LiteralBooleanExpression) (estree.Node, error) { return &estree.Literal{Value: n.Value}, nil })
	handle(t, func(*shift.LiteralInfinityExpression) (estree.Node, error) { return &estree.Literal{Value: math.Inf(1)}, nil })
	handle(t, func(*shift.LiteralNullExpression) (estree.Node, error) { return &estree.Literal{}, nil })
	handle(t, func(n *shift.LiteralNumericExpression) (estree.Node, error) { return &estree.Literal{Value: n.Value}, nil })
	handle(t, func(n *shift.LiteralRegExpExpression) (estree.Node, error) {
		return &estree.Literal{Regex: &estree.RegExp{Pattern: n.Pattern, Flags: n.Flags}}, nil
	})
	handle(t, func(n *shift.LiteralStringExpression) (estree.Node, error) { return &estree.Literal{Value: n.Value}, nil })
	handle(t, c.arrayExpression)
	handle(t, c.assignmentExpression)
	handle(t, c.compoundAssignmentExpression)
	handle(t, c.binaryExpression)
	handle(t, c.callExpression)
	handle(t, c.computedMemberExpression)
	handle(t, c.staticMemberExpression)
	handle(t, c.conditionalExpression)
	handle(t, c.newExpression)
	handle(t, func(*shift.NewTargetExpression) (estree.Node, error) {
		return &estree.MetaProperty{Meta: "new", Property: "target"}, nil
	})
	handle(t, c.objectExpression)
	handle(t, c.unaryExpression)
	handle(t, c.updateExpression)
	handle(t, c.templateExpression)
	handle(t, func(n *shift.TemplateElement) (estree.Node, error) { return c.templateElement(n), nil })
	handle(t, func(*shift.ThisExpression) (estree.Node, error) { return &estree.ThisExpression{}, nil })
	handle(t, c.yieldExpression)
	handle(t, c.yieldGeneratorExpression)
	handle(t, c.spreadElement)
	handle(t, func(*shift.Super) (estree.Node, error) { return &estree.Super{}, nil })
	handle(t, c.importDeclaration)
	handle(t, c.importNamespace)
	handle(t, func(n *shift.ImportSpecifier) (estree.Node, error) { return importSpecifier(n), nil })
	handle(t, func(n *shift.ExportAllFrom) (estree.Node, error) {
		return &estree.ExportAllDeclaration{Source: sourceLiteral(n.ModuleSpecifier)}, nil
	})
	handle(t, c.exportFrom)
	handle(t, c.export)
	handle(t, c.exportDefault)
	handle(t, func(n *shift.ExportSpecifier) (estree.Node, error) { return exportSpecifierNode(n), nil })
}

// Program and bodies.

func (c *ESTreeConverter) script(n *shift.Script) (estree.Node, error) {
	body, err := c.bodyWithPrologue(n.Directives, n.Statements)
	if err != nil {
		return nil, err
	}

	return &estree.Program{Body: body, SourceType: "script"}, nil
}

func (c *ESTreeConverter) module(n *shift.Module) (estree.Node, error) {
	body, err := c.bodyWithPrologue(n.Directives, n.Items)
	if err != nil {
		return nil, err
	}

	return &estree.Program{Body: body, SourceType: "module"}, nil
}

// bodyWithPrologue lists directives as string-literal expression statements
// ahead of the statements.
func (c *ESTreeConverter) bodyWithPrologue(directives []*shift.Directive, stmts []shift.Node) ([]estree.Node, error) {
	var body []estree.Node

	for _, d := range directives {
		if d == nil {
			return nil, structuralf(shift.KindDirective, "missing directive")
		}

		body = append(body, directiveStatement(d))
	}

	for _, stmt := range stmts {
		converted, err := c.Convert(stmt)
		if err != nil {
			return nil, err
		}

		body = append(body, converted)
	}

	return body, nil
}

func directiveStatement(d *shift.Directive) *estree.ExpressionStatement {
	return &estree.ExpressionStatement{Expression: &estree.Literal{Value: d.RawValue}, Directive: d.RawValue}
}

func (c *ESTreeConverter) functionBody(n *shift.FunctionBody) (*estree.BlockStatement, error) {
	if n == nil {
		return &estree.BlockStatement{}, nil
	}

	body, err := c.bodyWithPrologue(n.Directives, n.Statements)
	if err != nil {
		return nil, err
	}

	return &estree.BlockStatement{Body: body}, nil
}

func (c *ESTreeConverter) block(n *shift.Block) (*estree.BlockStatement, error) {
	if n == nil {
		return &estree.BlockStatement{}, nil
	}

	body, err := mapList(n.Statements, c.Convert)
	if err != nil {
		return nil, err
	}

	return &estree.BlockStatement{Body: body}, nil
}

// Statements.

func (c *ESTreeConverter) blockStatement(n *shift.BlockStatement) (estree.Node, error) {
	return c.block(n.Block)
}

func (c *ESTreeConverter) doWhileStatement(n *shift.DoWhileStatement) (estree.Node, error) {
	body, err := c.Convert(n.Body)
	if err != nil {
		return nil, err
	}

	test, err := c.Convert(n.Test)
	if err != nil {
		return nil, err
	}

	return &estree.DoWhileStatement{Body: body, Test: test}, nil
}

func (c *ESTreeConverter) expressionStatement(n *shift.ExpressionStatement) (estree.Node, error) {
	expr, err := c.Convert(n.Expression)
	if err != nil {
		return nil, err
	}

	return &estree.ExpressionStatement{Expression: expr}, nil
}

func (c *ESTreeConverter) forInStatement(n *shift.ForInStatement) (estree.Node, error) {
	left, right, body, err := c.convert3(n.Left, n.Right, n.Body)
	if err != nil {
		return nil, err
	}

	return &estree.ForInStatement{Left: left, Right: right, Body: body}, nil
}

func (c *ESTreeConverter) forOfStatement(n *shift.ForOfStatement) (estree.Node, error) {
	left, right, body, err := c.convert3(n.Left, n.Right, n.Body)
	if err != nil {
		return nil, err
	}

	return &estree.ForOfStatement{Left: left, Right: right, Body: body}, nil
}

func (c *ESTreeConverter) forStatement(n *shift.ForStatement) (estree.Node, error) {
	init, test, update, err := c.convert3(n.Init, n.Test, n.Update)
	if err != nil {
		return nil, err
	}

	body, err := c.Convert(n.Body)
	if err != nil {
		return nil, err
	}

	return &estree.ForStatement{Init: init, Test: test, Update: update, Body: body}, nil
}

func (c *ESTreeConverter) ifStatement(n *shift.IfStatement) (estree.Node, error) {
	test, consequent, alternate, err := c.convert3(n.Test, n.Consequent, n.Alternate)
	if err != nil {
		return nil, err
	}

	return &estree.IfStatement{Test: test, Consequent: consequent, Alternate: alternate}, nil
}

// convert3 converts three sibling children in order.
func (c *ESTreeConverter) convert3(a, b, d shift.Node) (estree.Node, estree.Node, estree.Node, error) {
	x, err := c.Convert(a)
	if err != nil {
		return nil, nil, nil, err
	}

	y, err := c.Convert(b)
	if err != nil {
		return nil, nil, nil, err
	}

	z, err := c.Convert(d)
	if err != nil {
		return nil, nil, nil, err
	}

	return x, y, z, nil
}

func (c *ESTreeConverter) labeledStatement(n *shift.LabeledStatement) (estree.Node, error) {
	body, err := c.Convert(n.Body)
	if err != nil {
		return nil, err
	}

	return &estree.LabeledStatement{Label: &estree.Identifier{Name: n.Label}, Body: body}, nil
}

func (c *ESTreeConverter) returnStatement(n *shift.ReturnStatement) (estree.Node, error) {
	arg, err := c.Convert(n.Expression)
	if err != nil {
		return nil, err
	}

	return &estree.ReturnStatement{Argument: arg}, nil
}

func (c *ESTreeConverter) switchStatement(n *shift.SwitchStatement) (estree.Node, error) {
	discriminant, err := c.Convert(n.Discriminant)
	if err != nil {
		return nil, err
	}

	cases, err := mapList(n.Cases, c.switchCase)
	if err != nil {
		return nil, err
	}

	return &estree.SwitchStatement{Discriminant: discriminant, Cases: cases}, nil
}

func (c *ESTreeConverter) switchStatementWithDefault(n *shift.SwitchStatementWithDefault) (estree.Node, error) {
	discriminant, err := c.Convert(n.Discriminant)
	if err != nil {
		return nil, err
	}

	pre, err := mapList(n.PreDefaultCases, c.switchCase)
	if err != nil {
		return nil, err
	}

	def, err := c.switchDefault(n.DefaultCase)
	if err != nil {
		return nil, err
	}

	post, err := mapList(n.PostDefaultCases, c.switchCase)
	if err != nil {
		return nil, err
	}

	return &estree.SwitchStatement{Discriminant: discriminant, Cases: mergeDefaultCase(pre, def, post)}, nil
}

func (c *ESTreeConverter) switchCase(n *shift.SwitchCase) (*estree.SwitchCase, error) {
	if n == nil {
		return nil, structuralf(shift.KindSwitchStatement, "missing case clause")
	}

	test, err := c.Convert(n.Test)
	if err != nil {
		return nil, err
	}

	consequent, err := mapList(n.Consequent, c.Convert)
	if err != nil {
		return nil, err
	}

	return &estree.SwitchCase{Test: test, Consequent: consequent}, nil
}

func (c *ESTreeConverter) switchDefault(n *shift.SwitchDefault) (*estree.SwitchCase, error) {
	if n == nil {
		return nil, structuralf(shift.KindSwitchStatementWithDefault, "missing default clause")
	}

	consequent, err := mapList(n.Consequent, c.Convert)
	if err != nil {
		return nil, err
	}

	return &estree.SwitchCase{Consequent: consequent}, nil
}

func (c *ESTreeConverter) throwStatement(n *shift.ThrowStatement) (estree.Node, error) {
	arg, err := c.Convert(n.Expression)
	if err != nil {
		return nil, err
	}

	return &estree.ThrowStatement{Argument: arg}, nil
}

func (c *ESTreeConverter) tryCatchStatement(n *shift.TryCatchStatement) (estree.Node, error) {
	block, err := c.block(n.Body)
	if err != nil {
		return nil, err
	}

	handler, err := c.catchClause(n.CatchClause)
	if err != nil {
		return nil, err
	}

	return &estree.TryStatement{Block: block, Handler: handler}, nil
}

func (c *ESTreeConverter) tryFinallyStatement(n *shift.TryFinallyStatement) (estree.Node, error) {
	block, err := c.block(n.Body)
	if err != nil {
		return nil, err
	}

	handler, err := c.catchClause(n.CatchClause)
	if err != nil {
		return nil, err
	}

	finalizer, err := c.block(n.Finalizer)
	if err != nil {
		return nil, err
	}

	return &estree.TryStatement{Block: block, Handler: handler, Finalizer: finalizer}, nil
}

func (c *ESTreeConverter) catchClause(n *shift.CatchClause) (*estree.CatchClause, error) {
	if n == nil {
		return nil, nil
	}

	param, err := c.Convert(n.Binding)
	if err != nil {
		return nil, err
	}

	body, err := c.block(n.Body)
	if err != nil {
		return nil, err
	}

	return &estree.CatchClause{Param: param, Body: body}, nil
}

func (c *ESTreeConverter) variableDeclarationStatement(n *shift.VariableDeclarationStatement) (estree.Node, error) {
	if n.Declaration == nil {
		return nil, structuralf(shift.KindVariableDeclarationStatement, "missing declaration")
	}

	return c.variableDeclaration(n.Declaration)
}

func (c *ESTreeConverter) variableDeclaration(n *shift.VariableDeclaration) (*estree.VariableDeclaration, error) {
	declarations, err := mapList(n.Declarators, c.variableDeclarator)
	if err != nil {
		return nil, err
	}

	return &estree.VariableDeclaration{Declarations: declarations, Kind: n.Kind}, nil
}

func (c *ESTreeConverter) variableDeclarator(n *shift.VariableDeclarator) (*estree.VariableDeclarator, error) {
	if n == nil {
		return nil, structuralf(shift.KindVariableDeclaration, "missing declarator")
	}

	id, err := c.Convert(n.Binding)
	if err != nil {
		return nil, err
	}

	init, err := c.Convert(n.Init)
	if err != nil {
		return nil, err
	}

	return &estree.VariableDeclarator{ID: id, Init: init}, nil
}

func (c *ESTreeConverter) whileStatement(n *shift.WhileStatement) (estree.Node, error) {
	test, err := c.Convert(n.Test)
	if err != nil {
		return nil, err
	}

	body, err := c.Convert(n.Body)
	if err != nil {
		return nil, err
	}

	return &estree.WhileStatement{Test: test, Body: body}, nil
}

func (c *ESTreeConverter) withStatement(n *shift.WithStatement) (estree.Node, error) {
	object, err := c.Convert(n.Object)
	if err != nil {
		return nil, err
	}

	body, err := c.Convert(n.Body)
	if err != nil {
		return nil, err
	}

	return &estree.WithStatement{Object: object, Body: body}, nil
}

// Functions.

// formalParameters flattens Shift parameters into ESTree's parallel params
// and defaults lists.
func (c *ESTreeConverter) formalParameters(n *shift.FormalParameters) ([]estree.Node, []estree.Node, error) {
	if n == nil {
		return nil, nil, nil
	}

	items, err := mapList(n.Items, c.formalParameter)
	if err != nil {
		return nil, nil, err
	}

	rest, err := c.Convert(n.Rest)
	if err != nil {
		return nil, nil, err
	}

	params, defaults := packParams(items, rest)

	return params, defaults, nil
}

func (c *ESTreeConverter) formalParameter(item shift.Node) (formalParam, error) {
	if withDefault, ok := item.(*shift.BindingWithDefault); ok && withDefault != nil {
		binding, err := c.Convert(withDefault.Binding)
		if err != nil {
			return formalParam{}, err
		}

		init, err := c.Convert(withDefault.Init)
		if err != nil {
			return formalParam{}, err
		}

		return formalParam{Binding: binding, Default: init}, nil
	}

	binding, err := c.Convert(item)
	if err != nil {
		return formalParam{}, err
	}

	return formalParam{Binding: binding}, nil
}

func (c *ESTreeConverter) function(params *shift.FormalParameters, body *shift.FunctionBody, generator bool) (*estree.FunctionExpression, error) {
	ps, defaults, err := c.formalParameters(params)
	if err != nil {
		return nil, err
	}

	block, err := c.functionBody(body)
	if err != nil {
		return nil, err
	}

	return &estree.FunctionExpression{Params: ps, Defaults: defaults, Body: block, Generator: generator}, nil
}

func (c *ESTreeConverter) functionDeclaration(n *shift.FunctionDeclaration) (estree.Node, error) {
	fn, err := c.function(n.Params, n.Body, n.IsGenerator)
	if err != nil {
		return nil, err
	}

	return &estree.FunctionDeclaration{
		ID:        optionalBindingIdentifier(n.Name),
		Params:    fn.Params,
		Defaults:  fn.Defaults,
		Body:      fn.Body,
		Generator: fn.Generator,
	}, nil
}

func (c *ESTreeConverter) functionExpression(n *shift.FunctionExpression) (estree.Node, error) {
	fn, err := c.function(n.Params, n.Body, n.IsGenerator)
	if err != nil {
		return nil, err
	}

	fn.ID = optionalBindingIdentifier(n.Name)

	return fn, nil
}

func (c *ESTreeConverter) arrowExpression(n *shift.ArrowExpression) (estree.Node, error) {
	params, defaults, err := c.formalParameters(n.Params)
	if err != nil {
		return nil, err
	}

	arrow := &estree.ArrowFunctionExpression{Params: params, Defaults: defaults}

	if body, ok := n.Body.(*shift.FunctionBody); ok {
		block, err := c.functionBody(body)
		if err != nil {
			return nil, err
		}

		arrow.Body = block

		return arrow, nil
	}

	expr, err := c.Convert(n.Body)
	if err != nil {
		return nil, err
	}

	arrow.Body = expr
	arrow.Expression = true

	return arrow, nil
}

// Classes.

func (c *ESTreeConverter) classDeclaration(n *shift.ClassDeclaration) (estree.Node, error) {
	super, body, err := c.classParts(n.Super, n.Elements)
	if err != nil {
		return nil, err
	}

	return &estree.ClassDeclaration{ID: optionalBindingIdentifier(n.Name), SuperClass: super, Body: body}, nil
}

func (c *ESTreeConverter) classExpression(n *shift.ClassExpression) (estree.Node, error) {
	super, body, err := c.classParts(n.Super, n.Elements)
	if err != nil {
		return nil, err
	}

	return &estree.ClassExpression{ID: optionalBindingIdentifier(n.Name), SuperClass: super, Body: body}, nil
}

func (c *ESTreeConverter) classParts(super shift.Node, elements []*shift.ClassElement) (estree.Node, *estree.ClassBody, error) {
	superClass, err := c.Convert(super)
	if err != nil {
		return nil, nil, err
	}

	methods, err := mapList(elements, c.classElement)
	if err != nil {
		return nil, nil, err
	}

	return superClass, &estree.ClassBody{Body: methods}, nil
}

func (c *ESTreeConverter) classElement(n *shift.ClassElement) (*estree.MethodDefinition, error) {
	if n == nil {
		return nil, structuralf(shift.KindClassElement, "missing class element")
	}

	kind, name, fn, err := c.methodFunction(n.Method)
	if err != nil {
		return nil, err
	}

	key, computed, err := c.propertyKey(name)
	if err != nil {
		return nil, err
	}

	if kind == "method" && !n.IsStatic && isStaticName(name, "constructor") {
		kind = "constructor"
	}

	return &estree.MethodDefinition{Key: key, Value: fn, Kind: kind, Computed: computed, Static: n.IsStatic}, nil
}

// methodFunction splits a Method, Getter or Setter into its ESTree kind
// ("method", "get" or "set"), its name and its function value.
func (c *ESTreeConverter) methodFunction(node shift.Node) (string, shift.Node, *estree.FunctionExpression, error) {
	if isNil(node) {
		return "", nil, nil, structuralf(shift.KindClassElement, "missing method")
	}

	switch m := node.(type) {
	case *shift.Method:
		fn, err := c.function(m.Params, m.Body, m.IsGenerator)

		return "method", m.Name, fn, err
	case *shift.Getter:
		fn, err := c.function(nil, m.Body, false)

		return "get", m.Name, fn, err
	case *shift.Setter:
		var params *shift.FormalParameters
		if !isNil(m.Param) {
			params = &shift.FormalParameters{Items: []shift.Node{m.Param}}
		}

		fn, err := c.function(params, m.Body, false)

		return "set", m.Name, fn, err
	default:
		return "", nil, nil, structuralf(node.Type(), "not a method, getter or setter")
	}
}

// objectMember converts a Method, Getter or Setter in an object literal.
func (c *ESTreeConverter) objectMember(n shift.Node) (estree.Node, error) {
	kind, name, fn, err := c.methodFunction(n)
	if err != nil {
		return nil, err
	}

	key, computed, err := c.propertyKey(name)
	if err != nil {
		return nil, err
	}

	p := &estree.Property{Key: key, Value: fn, Kind: kind, Computed: computed}
	if kind == "method" {
		p.Kind = "init"
		p.Method = true
	}

	return p, nil
}

// propertyKey converts a property name into an ESTree key and its computed
// flag.
func (c *ESTreeConverter) propertyKey(name shift.Node) (estree.Node, bool, error) {
	switch n := name.(type) {
	case *shift.StaticPropertyName:
		if n == nil {
			break
		}

		return staticPropertyLiteral(n.Value), false, nil
	case *shift.ComputedPropertyName:
		if n == nil {
			break
		}

		expr, err := c.Convert(n.Expression)

		return expr, true, err
	}

	if isNil(name) {
		return nil, false, structuralf(shift.KindStaticPropertyName, "missing property name")
	}

	return nil, false, structuralf(name.Type(), "not a property name")
}

func isStaticName(name shift.Node, value string) bool {
	static, ok := name.(*shift.StaticPropertyName)

	return ok && static != nil && static.Value == value
}

func (c *ESTreeConverter) dataProperty(n *shift.DataProperty) (estree.Node, error) {
	key, computed, err := c.propertyKey(n.Name)
	if err != nil {
		return nil, err
	}

	value, err := c.Convert(n.Expression)
	if err != nil {
		return nil, err
	}

	return &estree.Property{Key: key, Value: value, Kind: "init", Computed: computed}, nil
}

func shorthandProperty(name string) *estree.Property {
	return &estree.Property{
		Key:       &estree.Identifier{Name: name},
		Value:     &estree.Identifier{Name: name},
		Kind:      "init",
		Shorthand: true,
	}
}

func (c *ESTreeConverter) computedPropertyName(n *shift.ComputedPropertyName) (estree.Node, error) {
	return c.Convert(n.Expression)
}

func (c *ESTreeConverter) objectExpression(n *shift.ObjectExpression) (estree.Node, error) {
	properties, err := mapList(n.Properties, c.property)
	if err != nil {
		return nil, err
	}

	return &estree.ObjectExpression{Properties: properties}, nil
}

// property converts an object literal member, all of which become ESTree
// Property nodes.
func (c *ESTreeConverter) property(n shift.Node) (*estree.Property, error) {
	converted, err := c.Convert(n)
	if err != nil {
		return nil, err
	}

	p, ok := converted.(*estree.Property)
	if !ok || p == nil {
		kind := "nil"
		if !isNil(n) {
			kind = n.Type()
		}

		return nil, structuralf(shift.KindObjectExpression, "%s is not an object member", kind)
	}

	return p, nil
}

// Bindings.

func (c *ESTreeConverter) bindingWithDefault(n *shift.BindingWithDefault) (estree.Node, error) {
	left, err := c.Convert(n.Binding)
	if err != nil {
		return nil, err
	}

	right, err := c.Convert(n.Init)
	if err != nil {
		return nil, err
	}

	return &estree.AssignmentPattern{Left: left, Right: right}, nil
}

func (c *ESTreeConverter) arrayBinding(n *shift.ArrayBinding) (estree.Node, error) {
	elements, err := mapList(n.Elements, c.Convert)
	if err != nil {
		return nil, err
	}

	if !isNil(n.RestElement) {
		rest, err := c.Convert(n.RestElement)
		if err != nil {
			return nil, err
		}

		elements = append(elements, &estree.RestElement{Argument: rest})
	}

	return &estree.ArrayPattern{Elements: elements}, nil
}

func (c *ESTreeConverter) objectBinding(n *shift.ObjectBinding) (estree.Node, error) {
	properties, err := mapList(n.Properties, c.property)
	if err != nil {
		return nil, err
	}

	return &estree.ObjectPattern{Properties: properties}, nil
}

func (c *ESTreeConverter) bindingPropertyIdentifier(n *shift.BindingPropertyIdentifier) (*estree.Property, error) {
	if n.Binding == nil {
		return nil, structuralf(shift.KindBindingPropertyIdentifier, "missing binding")
	}

	p := shorthandProperty(n.Binding.Name)

	if !isNil(n.Init) {
		init, err := c.Convert(n.Init)
		if err != nil {
			return nil, err
		}

		p.Value = &estree.AssignmentPattern{Left: p.Value, Right: init}
	}

	return p, nil
}

func (c *ESTreeConverter) bindingPropertyProperty(n *shift.BindingPropertyProperty) (*estree.Property, error) {
	key, computed, err := c.propertyKey(n.Name)
	if err != nil {
		return nil, err
	}

	value, err := c.Convert(n.Binding)
	if err != nil {
		return nil, err
	}

	return &estree.Property{Key: key, Value: value, Kind: "init", Computed: computed}, nil
}

// Expressions.

func (c *ESTreeConverter) arrayExpression(n *shift.ArrayExpression) (estree.Node, error) {
	elements, err := mapList(n.Elements, c.Convert)
	if err != nil {
		return nil, err
	}

	return &estree.ArrayExpression{Elements: elements}, nil
}

func (c *ESTreeConverter) assignmentExpression(n *shift.AssignmentExpression) (estree.Node, error) {
	return c.assignment("=", n.Binding, n.Expression)
}

func (c *ESTreeConverter) compoundAssignmentExpression(n *shift.CompoundAssignmentExpression) (estree.Node, error) {
	return c.assignment(n.Operator, n.Binding, n.Expression)
}

func (c *ESTreeConverter) assignment(operator string, binding, expression shift.Node) (estree.Node, error) {
	left, err := c.Convert(binding)
	if err != nil {
		return nil, err
	}

	right, err := c.Convert(expression)
	if err != nil {
		return nil, err
	}

	return &estree.AssignmentExpression{Operator: operator, Left: left, Right: right}, nil
}

func (c *ESTreeConverter) binaryExpression(n *shift.BinaryExpression) (estree.Node, error) {
	if n.Operator == commaOperator {
		expressions, err := mapList(flattenSequence(n), c.Convert)
		if err != nil {
			return nil, err
		}

		return &estree.SequenceExpression{Expressions: expressions}, nil
	}

	left, err := c.Convert(n.Left)
	if err != nil {
		return nil, err
	}

	right, err := c.Convert(n.Right)
	if err != nil {
		return nil, err
	}

	if n.Operator == "||" || n.Operator == "&&" {
		return &estree.LogicalExpression{Operator: n.Operator, Left: left, Right: right}, nil
	}

	return &estree.BinaryExpression{Operator: n.Operator, Left: left, Right: right}, nil
}

func (c *ESTreeConverter) callExpression(n *shift.CallExpression) (estree.Node, error) {
	callee, args, err := c.invocation(n.Callee, n.Arguments)
	if err != nil {
		return nil, err
	}

	return &estree.CallExpression{Callee: callee, Arguments: args}, nil
}

func (c *ESTreeConverter) newExpression(n *shift.NewExpression) (estree.Node, error) {
	callee, args, err := c.invocation(n.Callee, n.Arguments)
	if err != nil {
		return nil, err
	}

	return &estree.NewExpression{Callee: callee, Arguments: args}, nil
}

func (c *ESTreeConverter) invocation(callee shift.Node, arguments []shift.Node) (estree.Node, []estree.Node, error) {
	target, err := c.Convert(callee)
	if err != nil {
		return nil, nil, err
	}

	args, err := mapList(arguments, c.Convert)
	if err != nil {
		return nil, nil, err
	}

	return target, args, nil
}

func (c *ESTreeConverter) computedMemberExpression(n *shift.ComputedMemberExpression) (estree.Node, error) {
	object, err := c.Convert(n.Object)
	if err != nil {
		return nil, err
	}

	property, err := c.Convert(n.Expression)
	if err != nil {
		return nil, err
	}

	return &estree.MemberExpression{Object: object, Property: property, Computed: true}, nil
}

func (c *ESTreeConverter) staticMemberExpression(n *shift.StaticMemberExpression) (estree.Node, error) {
	object, err := c.Convert(n.Object)
	if err != nil {
		return nil, err
	}

	return &estree.MemberExpression{Object: object, Property: &estree.Identifier{Name: n.Property}}, nil
}

func (c *ESTreeConverter) conditionalExpression(n *shift.ConditionalExpression) (estree.Node, error) {
	test, consequent, alternate, err := c.convert3(n.Test, n.Consequent, n.Alternate)
	if err != nil {
		return nil, err
	}

	return &estree.ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}, nil
}

func (c *ESTreeConverter) unaryExpression(n *shift.UnaryExpression) (estree.Node, error) {
	arg, err := c.Convert(n.Operand)
	if err != nil {
		return nil, err
	}

	return &estree.UnaryExpression{Operator: n.Operator, Prefix: true, Argument: arg}, nil
}

func (c *ESTreeConverter) updateExpression(n *shift.UpdateExpression) (estree.Node, error) {
	arg, err := c.Convert(n.Operand)
	if err != nil {
		return nil, err
	}

	return &estree.UpdateExpression{Operator: n.Operator, Prefix: n.IsPrefix, Argument: arg}, nil
}

func (c *ESTreeConverter) templateExpression(n *shift.TemplateExpression) (estree.Node, error) {
	elements, err := mapList(n.Elements, c.Convert)
	if err != nil {
		return nil, err
	}

	quasis, expressions, err := deinterleaveTemplate(elements)
	if err != nil {
		return nil, err
	}

	literal := &estree.TemplateLiteral{Quasis: quasis, Expressions: expressions}
	if isNil(n.Tag) {
		return literal, nil
	}

	tag, err := c.Convert(n.Tag)
	if err != nil {
		return nil, err
	}

	return &estree.TaggedTemplateExpression{Tag: tag, Quasi: literal}, nil
}

func (c *ESTreeConverter) templateElement(n *shift.TemplateElement) *estree.TemplateElement {
	cooked := n.RawValue
	if c.cook != nil {
		cooked = c.cook(n.RawValue)
	}

	return &estree.TemplateElement{Value: estree.TemplateValue{Raw: n.RawValue, Cooked: cooked}}
}

func (c *ESTreeConverter) yieldExpression(n *shift.YieldExpression) (estree.Node, error) {
	arg, err := c.Convert(n.Expression)
	if err != nil {
		return nil, err
	}

	return &estree.YieldExpression{Argument: arg}, nil
}

func (c *ESTreeConverter) yieldGeneratorExpression(n *shift.YieldGeneratorExpression) (estree.Node, error) {
	arg, err := c.Convert(n.Expression)
	if err != nil {
		return nil, err
	}

	return &estree.YieldExpression{Argument: arg, Delegate: true}, nil
}

func (c *ESTreeConverter) spreadElement(n *shift.SpreadElement) (estree.Node, error) {
	arg, err := c.Convert(n.Expression)
	if err != nil {
		return nil, err
	}

	return &estree.SpreadElement{Argument: arg}, nil
}

// Modules.

func (c *ESTreeConverter) importDeclaration(n *shift.Import) (estree.Node, error) {
	clause := importClause{}
	if n.DefaultBinding != nil {
		clause.Default = &estree.ImportDefaultSpecifier{Local: &estree.Identifier{Name: n.DefaultBinding.Name}}
	}

	for _, spec := range n.NamedImports {
		if spec == nil {
			return nil, structuralf(shift.KindImport, "missing import specifier")
		}

		clause.Named = append(clause.Named, importSpecifier(spec))
	}

	return &estree.ImportDeclaration{
		Specifiers: joinImportSpecifiers(clause),
		Source:     sourceLiteral(n.ModuleSpecifier),
	}, nil
}

func (c *ESTreeConverter) importNamespace(n *shift.ImportNamespace) (estree.Node, error) {
	if n.NamespaceBinding == nil {
		return nil, structuralf(shift.KindImportNamespace, "missing namespace binding")
	}

	clause := importClause{
		Namespace: &estree.ImportNamespaceSpecifier{Local: &estree.Identifier{Name: n.NamespaceBinding.Name}},
	}
	if n.DefaultBinding != nil {
		clause.Default = &estree.ImportDefaultSpecifier{Local: &estree.Identifier{Name: n.DefaultBinding.Name}}
	}

	return &estree.ImportDeclaration{
		Specifiers: joinImportSpecifiers(clause),
		Source:     sourceLiteral(n.ModuleSpecifier),
	}, nil
}

func importSpecifier(n *shift.ImportSpecifier) *estree.ImportSpecifier {
	var local string
	if n.Binding != nil {
		local = n.Binding.Name
	}

	imported := n.Name
	if imported == "" {
		imported = local
	}

	return &estree.ImportSpecifier{
		Local:    &estree.Identifier{Name: local},
		Imported: &estree.Identifier{Name: imported},
	}
}

func (c *ESTreeConverter) exportFrom(n *shift.ExportFrom) (estree.Node, error) {
	specs := make([]*estree.ExportSpecifier, 0, len(n.NamedExports))

	for _, s := range n.NamedExports {
		if s == nil {
			return nil, structuralf(shift.KindExportFrom, "missing export specifier")
		}

		specs = append(specs, exportSpecifierNode(s))
	}

	if len(specs) == 0 {
		specs = nil
	}

	return &estree.ExportNamedDeclaration{Specifiers: specs, Source: sourceLiteral(n.ModuleSpecifier)}, nil
}

func (c *ESTreeConverter) export(n *shift.Export) (estree.Node, error) {
	decl, err := c.Convert(n.Declaration)
	if err != nil {
		return nil, err
	}

	return &estree.ExportNamedDeclaration{Declaration: decl}, nil
}

func (c *ESTreeConverter) exportDefault(n *shift.ExportDefault) (estree.Node, error) {
	decl, err := c.Convert(n.Body)
	if err != nil {
		return nil, err
	}

	return &estree.ExportDefaultDeclaration{Declaration: decl}, nil
}

func exportSpecifierNode(n *shift.ExportSpecifier) *estree.ExportSpecifier {
	local := n.Name
	if local == "" {
		local = n.ExportedName
	}

	return &estree.ExportSpecifier{
		Local:    &estree.Identifier{Name: local},
		Exported: &estree.Identifier{Name: n.ExportedName},
	}
}

func optionalIdentifier(name string) *estree.Identifier {
	if name == "" {
		return nil
	}

	return &estree.Identifier{Name: name}
}

func optionalBindingIdentifier(id *shift.BindingIdentifier) *estree.Identifier {
	if id == nil {
		return nil
	}

	return &estree.Identifier{Name: id.Name}
}

// sourceLiteral builds a module source literal; an empty specifier means no
// source.
func sourceLiteral(specifier string) *estree.Literal {
	if specifier == "" {
		return nil
	}

	return &estree.Literal{Value: specifier}
}

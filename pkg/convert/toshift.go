package convert

import (
	"math"

	"github.com/Sumatoshi-tech/astbridge/pkg/estree"
	"github.com/Sumatoshi-tech/astbridge/pkg/shift"
)

// ShiftConverter translates ESTree trees into Shift trees. It is immutable
// and safe for concurrent use.
type ShiftConverter struct {
	table *dispatchTable[estree.Node, shift.Node]
}

// NewShiftConverter builds the ESTree to Shift rule table.
func NewShiftConverter() *ShiftConverter {
	c := &ShiftConverter{table: newDispatchTable[estree.Node, shift.Node](ToShiftDirection)}
	c.register()

	return c
}

// Convert translates node and its subtree. A nil node converts to nil.
func (c *ShiftConverter) Convert(node estree.Node) (shift.Node, error) {
	if isNil(node) {
		return nil, nil
	}

	return c.table.dispatch(node)
}

// Kinds lists the ESTree kinds with a context-free rule.
func (c *ShiftConverter) Kinds() []string {
	return c.table.kinds()
}

//nolint:funlen // one line per kind
func (c *ShiftConverter) register() {
	t := c.table

	handle(t, c.program)
	handle(t, c.literal)
	handle(t, c.expressionStatement)
	handle(t, c.blockStatement)
	handle(t, func(*estree.EmptyStatement) (shift.Node, error) { return &shift.EmptyStatement{}, nil })
	handle(t, func(*estree.DebuggerStatement) (shift.Node, error) { return &shift.DebuggerStatement{}, nil })
	handle(t, c.withStatement)
	handle(t, c.returnStatement)
	handle(t, c.labeledStatement)
	handle(t, func(n *estree.BreakStatement) (shift.Node, error) {
		return &shift.BreakStatement{Label: identifierName(n.Label)}, nil
	})
	handle(t, func(n *estree.ContinueStatement) (shift.Node, error) {
		return &shift.ContinueStatement{Label: identifierName(n.Label)}, nil
	})
	handle(t, c.ifStatement)
	handle(t, c.switchStatement)
	handle(t, c.switchClause)
	handle(t, c.throwStatement)
	handle(t, c.tryStatement)
	handle(t, func(n *estree.CatchClause) (shift.Node, error) { return c.catchClause(n) })
	handle(t, c.whileStatement)
	handle(t, c.doWhileStatement)
	handle(t, c.forStatement)
	handle(t, c.forInStatement)
	handle(t, c.forOfStatement)
	handle(t, c.functionDeclaration)
	handle(t, c.variableDeclarationStatement)
	handle(t, func(n *estree.VariableDeclarator) (shift.Node, error) { return c.variableDeclarator(n) })
	handle(t, func(*estree.ThisExpression) (shift.Node, error) { return &shift.ThisExpression{}, nil })
	handle(t, func(*estree.Super) (shift.Node, error) { return &shift.Super{}, nil })
	handle(t, c.arrayExpression)
	handle(t, c.objectExpression)
	handle(t, c.property)
	handle(t, c.functionExpression)
	handle(t, c.arrowFunctionExpression)
	handle(t, c.classDeclaration)
	handle(t, c.classExpression)
	handle(t, func(n *estree.MethodDefinition) (shift.Node, error) { return c.classElement(n) })
	handle(t, c.unaryExpression)
	handle(t, c.updateExpression)
	handle(t, c.binaryExpression)
	handle(t, c.logicalExpression)
	handle(t, c.assignmentExpression)
	handle(t, c.conditionalExpression)
	handle(t, c.callExpression)
	handle(t, c.newExpression)
	handle(t, c.memberExpression)
	handle(t, c.sequenceExpression)
	handle(t, c.yieldExpression)
	handle(t, func(n *estree.TemplateLiteral) (shift.Node, error) { return c.templateExpression(nil, n) })
	handle(t, c.taggedTemplateExpression)
	handle(t, func(n *estree.TemplateElement) (shift.Node, error) { return templateElement(n), nil })
	handle(t, c.metaProperty)
	handle(t, func(n *estree.SpreadElement) (shift.Node, error) { return c.spreadElement(n) })
	handle(t, func(n *estree.RestElement) (shift.Node, error) { return c.toBinding(n.Argument) })
	handle(t, c.assignmentPattern)
	handle(t, c.arrayPattern)
	handle(t, c.objectPattern)
	handle(t, c.importDeclaration)
	handle(t, func(n *estree.ImportSpecifier) (shift.Node, error) { return c.importSpecifier(n) })
	handle(t, func(n *estree.ImportDefaultSpecifier) (shift.Node, error) { return c.toBinding(n.Local) })
	handle(t, func(n *estree.ImportNamespaceSpecifier) (shift.Node, error) { return c.toBinding(n.Local) })
	handle(t, c.exportAllDeclaration)
	handle(t, c.exportNamedDeclaration)
	handle(t, c.exportDefaultDeclaration)
	handle(t, func(n *estree.ExportSpecifier) (shift.Node, error) { return exportSpecifier(n), nil })
}

// Program and bodies.

func (c *ShiftConverter) program(n *estree.Program) (shift.Node, error) {
	prologue, body := splitDirectives(n.Body)

	directives, err := mapList(prologue, directive)
	if err != nil {
		return nil, err
	}

	stmts, err := mapList(body, c.Convert)
	if err != nil {
		return nil, err
	}

	if n.SourceType == "module" {
		return &shift.Module{Directives: directives, Items: stmts}, nil
	}

	return &shift.Script{Directives: directives, Statements: stmts}, nil
}

func directive(stmt estree.Node) (*shift.Directive, error) {
	value, ok := directiveValue(stmt)
	if !ok {
		return nil, structuralf(stmt.Type(), "not a directive")
	}

	return &shift.Directive{RawValue: value}, nil
}

func (c *ShiftConverter) functionBody(block *estree.BlockStatement) (*shift.FunctionBody, error) {
	if block == nil {
		return &shift.FunctionBody{}, nil
	}

	prologue, body := splitDirectives(block.Body)

	directives, err := mapList(prologue, directive)
	if err != nil {
		return nil, err
	}

	stmts, err := mapList(body, c.Convert)
	if err != nil {
		return nil, err
	}

	return &shift.FunctionBody{Directives: directives, Statements: stmts}, nil
}

func (c *ShiftConverter) block(n *estree.BlockStatement) (*shift.Block, error) {
	if n == nil {
		return nil, nil
	}

	stmts, err := mapList(n.Body, c.Convert)
	if err != nil {
		return nil, err
	}

	return &shift.Block{Statements: stmts}, nil
}

// Literals.

func (c *ShiftConverter) literal(n *estree.Literal) (shift.Node, error) {
	if n.Regex != nil {
		return &shift.LiteralRegExpExpression{Pattern: n.Regex.Pattern, Flags: n.Regex.Flags}, nil
	}

	switch v := n.Value.(type) {
	case nil:
		return &shift.LiteralNullExpression{}, nil
	case bool:
		return &shift.LiteralBooleanExpression{Value: v}, nil
	case string:
		return &shift.LiteralStringExpression{Value: v}, nil
	case float64:
		if math.IsInf(v, 1) {
			return &shift.LiteralInfinityExpression{}, nil
		}

		if math.IsInf(v, -1) || math.IsNaN(v) {
			return nil, structuralf(estree.KindLiteral, "numeric literal %v has no source form", v)
		}

		return &shift.LiteralNumericExpression{Value: v}, nil
	default:
		return nil, structuralf(estree.KindLiteral, "unsupported literal value of Go type %T", v)
	}
}

// Statements.

func (c *ShiftConverter) expressionStatement(n *estree.ExpressionStatement) (shift.Node, error) {
	expr, err := c.toExpression(n.Expression)
	if err != nil {
		return nil, err
	}

	return &shift.ExpressionStatement{Expression: expr}, nil
}

func (c *ShiftConverter) blockStatement(n *estree.BlockStatement) (shift.Node, error) {
	b, err := c.block(n)
	if err != nil {
		return nil, err
	}

	return &shift.BlockStatement{Block: b}, nil
}

func (c *ShiftConverter) withStatement(n *estree.WithStatement) (shift.Node, error) {
	object, err := c.toExpression(n.Object)
	if err != nil {
		return nil, err
	}

	body, err := c.Convert(n.Body)
	if err != nil {
		return nil, err
	}

	return &shift.WithStatement{Object: object, Body: body}, nil
}

func (c *ShiftConverter) returnStatement(n *estree.ReturnStatement) (shift.Node, error) {
	expr, err := c.toExpression(n.Argument)
	if err != nil {
		return nil, err
	}

	return &shift.ReturnStatement{Expression: expr}, nil
}

func (c *ShiftConverter) labeledStatement(n *estree.LabeledStatement) (shift.Node, error) {
	body, err := c.Convert(n.Body)
	if err != nil {
		return nil, err
	}

	return &shift.LabeledStatement{Label: identifierName(n.Label), Body: body}, nil
}

func (c *ShiftConverter) ifStatement(n *estree.IfStatement) (shift.Node, error) {
	test, err := c.toExpression(n.Test)
	if err != nil {
		return nil, err
	}

	consequent, err := c.Convert(n.Consequent)
	if err != nil {
		return nil, err
	}

	alternate, err := c.Convert(n.Alternate)
	if err != nil {
		return nil, err
	}

	return &shift.IfStatement{Test: test, Consequent: consequent, Alternate: alternate}, nil
}

func (c *ShiftConverter) switchStatement(n *estree.SwitchStatement) (shift.Node, error) {
	discriminant, err := c.toExpression(n.Discriminant)
	if err != nil {
		return nil, err
	}

	pre, def, post, err := splitDefaultCase(n.Cases)
	if err != nil {
		return nil, err
	}

	preCases, err := mapList(pre, c.switchCase)
	if err != nil {
		return nil, err
	}

	if def == nil {
		return &shift.SwitchStatement{Discriminant: discriminant, Cases: preCases}, nil
	}

	defaultCase, err := c.switchDefault(def)
	if err != nil {
		return nil, err
	}

	postCases, err := mapList(post, c.switchCase)
	if err != nil {
		return nil, err
	}

	return &shift.SwitchStatementWithDefault{
		Discriminant:     discriminant,
		PreDefaultCases:  preCases,
		DefaultCase:      defaultCase,
		PostDefaultCases: postCases,
	}, nil
}

// switchClause converts a clause seen outside its switch statement.
func (c *ShiftConverter) switchClause(n *estree.SwitchCase) (shift.Node, error) {
	if n.Test == nil {
		return c.switchDefault(n)
	}

	return c.switchCase(n)
}

func (c *ShiftConverter) switchCase(n *estree.SwitchCase) (*shift.SwitchCase, error) {
	if n == nil {
		return nil, structuralf(estree.KindSwitchStatement, "missing case clause")
	}

	test, err := c.toExpression(n.Test)
	if err != nil {
		return nil, err
	}

	consequent, err := mapList(n.Consequent, c.Convert)
	if err != nil {
		return nil, err
	}

	return &shift.SwitchCase{Test: test, Consequent: consequent}, nil
}

func (c *ShiftConverter) switchDefault(n *estree.SwitchCase) (*shift.SwitchDefault, error) {
	consequent, err := mapList(n.Consequent, c.Convert)
	if err != nil {
		return nil, err
	}

	return &shift.SwitchDefault{Consequent: consequent}, nil
}

func (c *ShiftConverter) throwStatement(n *estree.ThrowStatement) (shift.Node, error) {
	expr, err := c.toExpression(n.Argument)
	if err != nil {
		return nil, err
	}

	return &shift.ThrowStatement{Expression: expr}, nil
}

func (c *ShiftConverter) tryStatement(n *estree.TryStatement) (shift.Node, error) {
	body, err := c.block(n.Block)
	if err != nil {
		return nil, err
	}

	catch, err := c.catchClause(n.Handler)
	if err != nil {
		return nil, err
	}

	if n.Finalizer == nil {
		return &shift.TryCatchStatement{Body: body, CatchClause: catch}, nil
	}

	finalizer, err := c.block(n.Finalizer)
	if err != nil {
		return nil, err
	}

	return &shift.TryFinallyStatement{Body: body, CatchClause: catch, Finalizer: finalizer}, nil
}

func (c *ShiftConverter) catchClause(n *estree.CatchClause) (*shift.CatchClause, error) {
	if n == nil {
		return nil, nil
	}

	binding, err := c.toBinding(n.Param)
	if err != nil {
		return nil, err
	}

	body, err := c.block(n.Body)
	if err != nil {
		return nil, err
	}

	return &shift.CatchClause{Binding: binding, Body: body}, nil
}

func (c *ShiftConverter) whileStatement(n *estree.WhileStatement) (shift.Node, error) {
	test, err := c.toExpression(n.Test)
	if err != nil {
		return nil, err
	}

	body, err := c.Convert(n.Body)
	if err != nil {
		return nil, err
	}

	return &shift.WhileStatement{Test: test, Body: body}, nil
}

func (c *ShiftConverter) doWhileStatement(n *estree.DoWhileStatement) (shift.Node, error) {
	body, err := c.Convert(n.Body)
	if err != nil {
		return nil, err
	}

	test, err := c.toExpression(n.Test)
	if err != nil {
		return nil, err
	}

	return &shift.DoWhileStatement{Body: body, Test: test}, nil
}

func (c *ShiftConverter) forStatement(n *estree.ForStatement) (shift.Node, error) {
	init, err := c.declarationOr(n.Init, c.toExpression)
	if err != nil {
		return nil, err
	}

	test, err := c.toExpression(n.Test)
	if err != nil {
		return nil, err
	}

	update, err := c.toExpression(n.Update)
	if err != nil {
		return nil, err
	}

	body, err := c.Convert(n.Body)
	if err != nil {
		return nil, err
	}

	return &shift.ForStatement{Init: init, Test: test, Update: update, Body: body}, nil
}

func (c *ShiftConverter) forInStatement(n *estree.ForInStatement) (shift.Node, error) {
	left, right, body, err := c.iteration(n.Left, n.Right, n.Body)
	if err != nil {
		return nil, err
	}

	return &shift.ForInStatement{Left: left, Right: right, Body: body}, nil
}

func (c *ShiftConverter) forOfStatement(n *estree.ForOfStatement) (shift.Node, error) {
	left, right, body, err := c.iteration(n.Left, n.Right, n.Body)
	if err != nil {
		return nil, err
	}

	return &shift.ForOfStatement{Left: left, Right: right, Body: body}, nil
}

func (c *ShiftConverter) iteration(left, right, body estree.Node) (shift.Node, shift.Node, shift.Node, error) {
	head, err := c.declarationOr(left, c.toBinding)
	if err != nil {
		return nil, nil, nil, err
	}

	iterable, err := c.toExpression(right)
	if err != nil {
		return nil, nil, nil, err
	}

	stmt, err := c.Convert(body)
	if err != nil {
		return nil, nil, nil, err
	}

	return head, iterable, stmt, nil
}

// declarationOr converts a slot that may hold a variable declaration, as in
// loop heads and exports. A declaration stays a bare VariableDeclaration;
// anything else goes through classify.
func (c *ShiftConverter) declarationOr(node estree.Node, classify func(estree.Node) (shift.Node, error)) (shift.Node, error) {
	decl, ok := node.(*estree.VariableDeclaration)
	if !ok || decl == nil {
		return classify(node)
	}

	return c.variableDeclaration(decl)
}

func (c *ShiftConverter) variableDeclarationStatement(n *estree.VariableDeclaration) (shift.Node, error) {
	decl, err := c.variableDeclaration(n)
	if err != nil {
		return nil, err
	}

	return &shift.VariableDeclarationStatement{Declaration: decl}, nil
}

func (c *ShiftConverter) variableDeclaration(n *estree.VariableDeclaration) (*shift.VariableDeclaration, error) {
	declarators, err := mapList(n.Declarations, c.variableDeclarator)
	if err != nil {
		return nil, err
	}

	return &shift.VariableDeclaration{Kind: n.Kind, Declarators: declarators}, nil
}

func (c *ShiftConverter) variableDeclarator(n *estree.VariableDeclarator) (*shift.VariableDeclarator, error) {
	if n == nil {
		return nil, structuralf(estree.KindVariableDeclaration, "missing declarator")
	}

	binding, err := c.toBinding(n.ID)
	if err != nil {
		return nil, err
	}

	init, err := c.toExpression(n.Init)
	if err != nil {
		return nil, err
	}

	return &shift.VariableDeclarator{Binding: binding, Init: init}, nil
}

// Functions.

func (c *ShiftConverter) formalParameters(params, defaults []estree.Node) (*shift.FormalParameters, error) {
	items, rest := unpackParams(params, defaults)

	converted, err := mapList(items, c.formalParameter)
	if err != nil {
		return nil, err
	}

	restBinding, err := c.toBinding(rest)
	if err != nil {
		return nil, err
	}

	return &shift.FormalParameters{Items: converted, Rest: restBinding}, nil
}

func (c *ShiftConverter) formalParameter(p formalParam) (shift.Node, error) {
	binding, err := c.toBinding(p.Binding)
	if err != nil {
		return nil, err
	}

	if isNil(p.Default) {
		return binding, nil
	}

	init, err := c.toExpression(p.Default)
	if err != nil {
		return nil, err
	}

	return &shift.BindingWithDefault{Binding: binding, Init: init}, nil
}

func (c *ShiftConverter) functionDeclaration(n *estree.FunctionDeclaration) (shift.Node, error) {
	params, body, err := c.signature(n.Params, n.Defaults, n.Body)
	if err != nil {
		return nil, err
	}

	return &shift.FunctionDeclaration{
		IsGenerator: n.Generator,
		Name:        bindingIdentifier(n.ID),
		Params:      params,
		Body:        body,
	}, nil
}

func (c *ShiftConverter) functionExpression(n *estree.FunctionExpression) (shift.Node, error) {
	params, body, err := c.signature(n.Params, n.Defaults, n.Body)
	if err != nil {
		return nil, err
	}

	return &shift.FunctionExpression{
		IsGenerator: n.Generator,
		Name:        bindingIdentifier(n.ID),
		Params:      params,
		Body:        body,
	}, nil
}

func (c *ShiftConverter) signature(params, defaults []estree.Node, block *estree.BlockStatement) (*shift.FormalParameters, *shift.FunctionBody, error) {
	formals, err := c.formalParameters(params, defaults)
	if err != nil {
		return nil, nil, err
	}

	body, err := c.functionBody(block)
	if err != nil {
		return nil, nil, err
	}

	return formals, body, nil
}

func (c *ShiftConverter) arrowFunctionExpression(n *estree.ArrowFunctionExpression) (shift.Node, error) {
	params, err := c.formalParameters(n.Params, n.Defaults)
	if err != nil {
		return nil, err
	}

	// The body's kind decides its form, not the expression flag.
	if block, ok := n.Body.(*estree.BlockStatement); ok || isNil(n.Body) {
		body, err := c.functionBody(block)
		if err != nil {
			return nil, err
		}

		return &shift.ArrowExpression{Params: params, Body: body}, nil
	}

	body, err := c.toExpression(n.Body)
	if err != nil {
		return nil, err
	}

	return &shift.ArrowExpression{Params: params, Body: body}, nil
}

// Classes.

func (c *ShiftConverter) classDeclaration(n *estree.ClassDeclaration) (shift.Node, error) {
	super, elements, err := c.classParts(n.SuperClass, n.Body)
	if err != nil {
		return nil, err
	}

	return &shift.ClassDeclaration{Name: bindingIdentifier(n.ID), Super: super, Elements: elements}, nil
}

func (c *ShiftConverter) classExpression(n *estree.ClassExpression) (shift.Node, error) {
	super, elements, err := c.classParts(n.SuperClass, n.Body)
	if err != nil {
		return nil, err
	}

	return &shift.ClassExpression{Name: bindingIdentifier(n.ID), Super: super, Elements: elements}, nil
}

func (c *ShiftConverter) classParts(superClass estree.Node, body *estree.ClassBody) (shift.Node, []*shift.ClassElement, error) {
	super, err := c.toExpression(superClass)
	if err != nil {
		return nil, nil, err
	}

	if body == nil {
		return super, nil, nil
	}

	elements, err := mapList(body.Body, c.classElement)
	if err != nil {
		return nil, nil, err
	}

	return super, elements, nil
}

func (c *ShiftConverter) classElement(n *estree.MethodDefinition) (*shift.ClassElement, error) {
	if n == nil {
		return nil, structuralf(estree.KindClassBody, "missing method definition")
	}

	method, err := c.methodLike(n.Key, n.Computed, n.Kind, n.Value)
	if err != nil {
		return nil, err
	}

	return &shift.ClassElement{IsStatic: n.Static, Method: method}, nil
}

// methodLike builds a Method, Getter or Setter from a key and its function.
// kind is an ESTree property or method-definition kind.
func (c *ShiftConverter) methodLike(key estree.Node, computed bool, kind string, fn *estree.FunctionExpression) (shift.Node, error) {
	if fn == nil {
		return nil, structuralf(estree.KindFunctionExpression, "%s has no function value", kind)
	}

	name, err := c.toPropertyName(key, computed)
	if err != nil {
		return nil, err
	}

	params, body, err := c.signature(fn.Params, fn.Defaults, fn.Body)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "get":
		return &shift.Getter{Name: name, Body: body}, nil
	case "set":
		param := params.Rest
		if len(params.Items) > 0 {
			param = params.Items[0]
		}

		return &shift.Setter{Name: name, Param: param, Body: body}, nil
	case "init", "method", "constructor":
		return &shift.Method{IsGenerator: fn.Generator, Name: name, Params: params, Body: body}, nil
	default:
		return nil, structuralf(estree.KindMethodDefinition, "unknown method kind %q", kind)
	}
}

// Objects and arrays.

func (c *ShiftConverter) arrayExpression(n *estree.ArrayExpression) (shift.Node, error) {
	elements, err := mapList(n.Elements, c.toArgument)
	if err != nil {
		return nil, err
	}

	return &shift.ArrayExpression{Elements: elements}, nil
}

func (c *ShiftConverter) objectExpression(n *estree.ObjectExpression) (shift.Node, error) {
	properties, err := mapList(n.Properties, c.property)
	if err != nil {
		return nil, err
	}

	return &shift.ObjectExpression{Properties: properties}, nil
}

// property converts an object literal member.
func (c *ShiftConverter) property(n *estree.Property) (shift.Node, error) {
	if n == nil {
		return nil, structuralf(estree.KindObjectExpression, "missing property")
	}

	switch n.Kind {
	case "get", "set":
		fn, _ := n.Value.(*estree.FunctionExpression)

		return c.methodLike(n.Key, n.Computed, n.Kind, fn)
	case "init", "":
	default:
		return nil, structuralf(estree.KindProperty, "unknown property kind %q", n.Kind)
	}

	if n.Method {
		fn, _ := n.Value.(*estree.FunctionExpression)

		return c.methodLike(n.Key, n.Computed, "method", fn)
	}

	if n.Shorthand {
		key, ok := n.Key.(*estree.Identifier)
		if !ok || key == nil {
			return nil, structuralf(estree.KindProperty, "shorthand key must be an identifier")
		}

		return &shift.ShorthandProperty{Name: key.Name}, nil
	}

	name, err := c.toPropertyName(n.Key, n.Computed)
	if err != nil {
		return nil, err
	}

	value, err := c.toExpression(n.Value)
	if err != nil {
		return nil, err
	}

	return &shift.DataProperty{Name: name, Expression: value}, nil
}

// Operators.

func (c *ShiftConverter) unaryExpression(n *estree.UnaryExpression) (shift.Node, error) {
	operand, err := c.toExpression(n.Argument)
	if err != nil {
		return nil, err
	}

	return &shift.UnaryExpression{Operator: n.Operator, Operand: operand}, nil
}

func (c *ShiftConverter) updateExpression(n *estree.UpdateExpression) (shift.Node, error) {
	operand, err := c.toBinding(n.Argument)
	if err != nil {
		return nil, err
	}

	return &shift.UpdateExpression{IsPrefix: n.Prefix, Operator: n.Operator, Operand: operand}, nil
}

func (c *ShiftConverter) binaryExpression(n *estree.BinaryExpression) (shift.Node, error) {
	return c.binary(n.Operator, n.Left, n.Right)
}

func (c *ShiftConverter) logicalExpression(n *estree.LogicalExpression) (shift.Node, error) {
	return c.binary(n.Operator, n.Left, n.Right)
}

func (c *ShiftConverter) binary(operator string, left, right estree.Node) (shift.Node, error) {
	l, err := c.toExpression(left)
	if err != nil {
		return nil, err
	}

	r, err := c.toExpression(right)
	if err != nil {
		return nil, err
	}

	return &shift.BinaryExpression{Operator: operator, Left: l, Right: r}, nil
}

func (c *ShiftConverter) assignmentExpression(n *estree.AssignmentExpression) (shift.Node, error) {
	binding, err := c.toBinding(n.Left)
	if err != nil {
		return nil, err
	}

	expr, err := c.toExpression(n.Right)
	if err != nil {
		return nil, err
	}

	if n.Operator == "=" {
		return &shift.AssignmentExpression{Binding: binding, Expression: expr}, nil
	}

	return &shift.CompoundAssignmentExpression{Operator: n.Operator, Binding: binding, Expression: expr}, nil
}

func (c *ShiftConverter) conditionalExpression(n *estree.ConditionalExpression) (shift.Node, error) {
	test, err := c.toExpression(n.Test)
	if err != nil {
		return nil, err
	}

	consequent, err := c.toExpression(n.Consequent)
	if err != nil {
		return nil, err
	}

	alternate, err := c.toExpression(n.Alternate)
	if err != nil {
		return nil, err
	}

	return &shift.ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}, nil
}

func (c *ShiftConverter) callExpression(n *estree.CallExpression) (shift.Node, error) {
	callee, args, err := c.invocation(n.Callee, n.Arguments)
	if err != nil {
		return nil, err
	}

	return &shift.CallExpression{Callee: callee, Arguments: args}, nil
}

func (c *ShiftConverter) newExpression(n *estree.NewExpression) (shift.Node, error) {
	callee, args, err := c.invocation(n.Callee, n.Arguments)
	if err != nil {
		return nil, err
	}

	return &shift.NewExpression{Callee: callee, Arguments: args}, nil
}

func (c *ShiftConverter) invocation(callee estree.Node, arguments []estree.Node) (shift.Node, []shift.Node, error) {
	target, err := c.toExpression(callee)
	if err != nil {
		return nil, nil, err
	}

	args, err := mapList(arguments, c.toArgument)
	if err != nil {
		return nil, nil, err
	}

	return target, args, nil
}

func (c *ShiftConverter) memberExpression(n *estree.MemberExpression) (shift.Node, error) {
	object, err := c.toExpression(n.Object)
	if err != nil {
		return nil, err
	}

	if n.Computed {
		expr, err := c.toExpression(n.Property)
		if err != nil {
			return nil, err
		}

		return &shift.ComputedMemberExpression{Object: object, Expression: expr}, nil
	}

	property, ok := n.Property.(*estree.Identifier)
	if !ok || property == nil {
		return nil, structuralf(estree.KindMemberExpression, "non-computed property must be an identifier")
	}

	return &shift.StaticMemberExpression{Object: object, Property: property.Name}, nil
}

func (c *ShiftConverter) sequenceExpression(n *estree.SequenceExpression) (shift.Node, error) {
	operands, err := mapList(n.Expressions, c.toExpression)
	if err != nil {
		return nil, err
	}

	return foldSequence(operands)
}

func (c *ShiftConverter) yieldExpression(n *estree.YieldExpression) (shift.Node, error) {
	expr, err := c.toExpression(n.Argument)
	if err != nil {
		return nil, err
	}

	if n.Delegate {
		return &shift.YieldGeneratorExpression{Expression: expr}, nil
	}

	return &shift.YieldExpression{Expression: expr}, nil
}

func (c *ShiftConverter) metaProperty(n *estree.MetaProperty) (shift.Node, error) {
	if n.Meta != "new" || n.Property != "target" {
		return nil, structuralf(estree.KindMetaProperty, "unsupported meta property %s.%s", n.Meta, n.Property)
	}

	return &shift.NewTargetExpression{}, nil
}

func (c *ShiftConverter) spreadElement(n *estree.SpreadElement) (shift.Node, error) {
	expr, err := c.toExpression(n.Argument)
	if err != nil {
		return nil, err
	}

	return &shift.SpreadElement{Expression: expr}, nil
}

// Templates.

func (c *ShiftConverter) taggedTemplateExpression(n *estree.TaggedTemplateExpression) (shift.Node, error) {
	if n.Quasi == nil {
		return nil, structuralf(estree.KindTaggedTemplateExpression, "missing template")
	}

	return c.templateExpression(n.Tag, n.Quasi)
}

func (c *ShiftConverter) templateExpression(tag estree.Node, n *estree.TemplateLiteral) (shift.Node, error) {
	parts, err := interleaveTemplate(n.Quasis, n.Expressions)
	if err != nil {
		return nil, err
	}

	elements := make([]shift.Node, len(parts))

	for i, part := range parts {
		if i%2 == 0 {
			elements[i] = templateElement(part.(*estree.TemplateElement)) //nolint:forcetypeassert // even slots hold quasis

			continue
		}

		expr, err := c.toExpression(part)
		if err != nil {
			return nil, err
		}

		elements[i] = expr
	}

	tagExpr, err := c.toExpression(tag)
	if err != nil {
		return nil, err
	}

	return &shift.TemplateExpression{Tag: tagExpr, Elements: elements}, nil
}

func templateElement(n *estree.TemplateElement) *shift.TemplateElement {
	return &shift.TemplateElement{RawValue: n.Value.Raw}
}

// Patterns.

func (c *ShiftConverter) assignmentPattern(n *estree.AssignmentPattern) (shift.Node, error) {
	binding, err := c.toBinding(n.Left)
	if err != nil {
		return nil, err
	}

	init, err := c.toExpression(n.Right)
	if err != nil {
		return nil, err
	}

	return &shift.BindingWithDefault{Binding: binding, Init: init}, nil
}

func (c *ShiftConverter) arrayPattern(n *estree.ArrayPattern) (shift.Node, error) {
	elements, rest := splitRestElement(n.Elements)

	bindings, err := mapList(elements, c.toBinding)
	if err != nil {
		return nil, err
	}

	restBinding, err := c.toBinding(rest)
	if err != nil {
		return nil, err
	}

	return &shift.ArrayBinding{Elements: bindings, RestElement: restBinding}, nil
}

func (c *ShiftConverter) objectPattern(n *estree.ObjectPattern) (shift.Node, error) {
	properties, err := mapList(n.Properties, func(p *estree.Property) (shift.Node, error) {
		if p == nil {
			return nil, structuralf(estree.KindObjectPattern, "missing property")
		}

		return c.bindingProperty(p)
	})
	if err != nil {
		return nil, err
	}

	return &shift.ObjectBinding{Properties: properties}, nil
}

// Modules.

func (c *ShiftConverter) importDeclaration(n *estree.ImportDeclaration) (shift.Node, error) {
	clause, err := splitImportSpecifiers(n.Specifiers)
	if err != nil {
		return nil, err
	}

	module, err := moduleSpecifier(estree.KindImportDeclaration, n.Source)
	if err != nil {
		return nil, err
	}

	var defaultBinding *shift.BindingIdentifier
	if clause.Default != nil {
		defaultBinding = bindingIdentifier(clause.Default.Local)
	}

	if clause.Namespace != nil {
		return &shift.ImportNamespace{
			DefaultBinding:   defaultBinding,
			NamespaceBinding: bindingIdentifier(clause.Namespace.Local),
			ModuleSpecifier:  module,
		}, nil
	}

	named, err := mapList(clause.Named, c.importSpecifier)
	if err != nil {
		return nil, err
	}

	return &shift.Import{DefaultBinding: defaultBinding, NamedImports: named, ModuleSpecifier: module}, nil
}

func (c *ShiftConverter) importSpecifier(n *estree.ImportSpecifier) (*shift.ImportSpecifier, error) {
	if n.Local == nil {
		return nil, structuralf(estree.KindImportSpecifier, "missing local binding")
	}

	spec := &shift.ImportSpecifier{Binding: bindingIdentifier(n.Local)}
	if n.Imported != nil && n.Imported.Name != n.Local.Name {
		spec.Name = n.Imported.Name
	}

	return spec, nil
}

func (c *ShiftConverter) exportAllDeclaration(n *estree.ExportAllDeclaration) (shift.Node, error) {
	module, err := moduleSpecifier(estree.KindExportAllDeclaration, n.Source)
	if err != nil {
		return nil, err
	}

	return &shift.ExportAllFrom{ModuleSpecifier: module}, nil
}

func (c *ShiftConverter) exportNamedDeclaration(n *estree.ExportNamedDeclaration) (shift.Node, error) {
	if !isNil(n.Declaration) {
		decl, err := c.declarationOr(n.Declaration, c.Convert)
		if err != nil {
			return nil, err
		}

		return &shift.Export{Declaration: decl}, nil
	}

	module, err := moduleSpecifier(estree.KindExportNamedDeclaration, n.Source)
	if err != nil {
		return nil, err
	}

	specs := make([]*shift.ExportSpecifier, 0, len(n.Specifiers))

	for _, s := range n.Specifiers {
		if s == nil {
			return nil, structuralf(estree.KindExportNamedDeclaration, "missing specifier")
		}

		specs = append(specs, exportSpecifier(s))
	}

	if len(specs) == 0 {
		specs = nil
	}

	return &shift.ExportFrom{NamedExports: specs, ModuleSpecifier: module}, nil
}

func (c *ShiftConverter) exportDefaultDeclaration(n *estree.ExportDefaultDeclaration) (shift.Node, error) {
	var (
		body shift.Node
		err  error
	)

	switch n.Declaration.(type) {
	case *estree.FunctionDeclaration, *estree.ClassDeclaration:
		body, err = c.Convert(n.Declaration)
	default:
		body, err = c.toExpression(n.Declaration)
	}

	if err != nil {
		return nil, err
	}

	return &shift.ExportDefault{Body: body}, nil
}

func exportSpecifier(n *estree.ExportSpecifier) *shift.ExportSpecifier {
	exported := identifierName(n.Exported)
	local := identifierName(n.Local)

	if exported == "" {
		exported = local
	}

	spec := &shift.ExportSpecifier{ExportedName: exported}
	if local != exported {
		spec.Name = local
	}

	return spec
}

func moduleSpecifier(kind string, source *estree.Literal) (string, error) {
	if source == nil {
		return "", nil
	}

	s, ok := source.Value.(string)
	if !ok {
		return "", structuralf(kind, "module source must be a string literal")
	}

	return s, nil
}

// Package shift defines the Shift syntax tree for ES2015 programs.
//
// Shift distinguishes roles the ESTree format leaves implicit: bindings,
// identifier references and property names have their own kinds, literals are
// split by type, and switch statements, try statements, directives and
// function bodies are modeled explicitly.
package shift

// Node is a Shift syntax tree node.
type Node interface {
	Type() string
	shiftNode()
}

// Script is the root of a program parsed as a script.
type Script struct {
	Directives []*Directive `json:"directives"`
	Statements []Node       `json:"statements"`
}

// Module is the root of a program parsed as a module. Items are statements,
// import and export declarations.
type Module struct {
	Directives []*Directive `json:"directives"`
	Items      []Node       `json:"items"`
}

// Directive is one entry of a directive prologue, such as "use strict".
type Directive struct {
	RawValue string `json:"rawValue"`
}

type Block struct {
	Statements []Node `json:"statements"`
}

// Statements.

type BlockStatement struct {
	Block *Block `json:"block"`
}

// BreakStatement has an empty Label when unlabeled.
type BreakStatement struct {
	Label string `json:"label,omitempty"`
}

type ContinueStatement struct {
	Label string `json:"label,omitempty"`
}

type DebuggerStatement struct{}

type DoWhileStatement struct {
	Body Node `json:"body"`
	Test Node `json:"test"`
}

type EmptyStatement struct{}

type ExpressionStatement struct {
	Expression Node `json:"expression"`
}

// ForInStatement is a for-in loop. Left is a VariableDeclaration or a binding.
type ForInStatement struct {
	Left  Node `json:"left"`
	Right Node `json:"right"`
	Body  Node `json:"body"`
}

type ForOfStatement struct {
	Left  Node `json:"left"`
	Right Node `json:"right"`
	Body  Node `json:"body"`
}

// ForStatement Init is a VariableDeclaration or an expression.
type ForStatement struct {
	Init   Node `json:"init"`
	Test   Node `json:"test"`
	Update Node `json:"update"`
	Body   Node `json:"body"`
}

type IfStatement struct {
	Test       Node `json:"test"`
	Consequent Node `json:"consequent"`
	Alternate  Node `json:"alternate"`
}

type LabeledStatement struct {
	Label string `json:"label"`
	Body  Node   `json:"body"`
}

type ReturnStatement struct {
	Expression Node `json:"expression"`
}

// SwitchStatement has no default clause.
type SwitchStatement struct {
	Discriminant Node          `json:"discriminant"`
	Cases        []*SwitchCase `json:"cases"`
}

// SwitchStatementWithDefault splits its clauses around the default clause.
type SwitchStatementWithDefault struct {
	Discriminant     Node           `json:"discriminant"`
	PreDefaultCases  []*SwitchCase  `json:"preDefaultCases"`
	DefaultCase      *SwitchDefault `json:"defaultCase"`
	PostDefaultCases []*SwitchCase  `json:"postDefaultCases"`
}

type SwitchCase struct {
	Test       Node   `json:"test"`
	Consequent []Node `json:"consequent"`
}

type SwitchDefault struct {
	Consequent []Node `json:"consequent"`
}

type ThrowStatement struct {
	Expression Node `json:"expression"`
}

// TryCatchStatement is a try statement without a finally block.
type TryCatchStatement struct {
	Body        *Block       `json:"body"`
	CatchClause *CatchClause `json:"catchClause"`
}

// TryFinallyStatement is a try statement with a finally block and an optional
// catch clause.
type TryFinallyStatement struct {
	Body        *Block       `json:"body"`
	CatchClause *CatchClause `json:"catchClause"`
	Finalizer   *Block       `json:"finalizer"`
}

type CatchClause struct {
	Binding Node   `json:"binding"`
	Body    *Block `json:"body"`
}

type VariableDeclarationStatement struct {
	Declaration *VariableDeclaration `json:"declaration"`
}

// VariableDeclaration declares bindings with Kind "var", "let" or "const".
type VariableDeclaration struct {
	Kind        string                `json:"kind"`
	Declarators []*VariableDeclarator `json:"declarators"`
}

type VariableDeclarator struct {
	Binding Node `json:"binding"`
	Init    Node `json:"init"`
}

type WhileStatement struct {
	Test Node `json:"test"`
	Body Node `json:"body"`
}

type WithStatement struct {
	Object Node `json:"object"`
	Body   Node `json:"body"`
}

// Functions and classes.

type FunctionDeclaration struct {
	IsGenerator bool               `json:"isGenerator"`
	Name        *BindingIdentifier `json:"name"`
	Params      *FormalParameters  `json:"params"`
	Body        *FunctionBody      `json:"body"`
}

type FunctionExpression struct {
	IsGenerator bool               `json:"isGenerator"`
	Name        *BindingIdentifier `json:"name"`
	Params      *FormalParameters  `json:"params"`
	Body        *FunctionBody      `json:"body"`
}

// ArrowExpression Body is a FunctionBody or an expression.
type ArrowExpression struct {
	Params *FormalParameters `json:"params"`
	Body   Node              `json:"body"`
}

// FormalParameters items are bindings or BindingWithDefault nodes; Rest is
// the binding of a trailing rest parameter.
type FormalParameters struct {
	Items []Node `json:"items"`
	Rest  Node   `json:"rest"`
}

type FunctionBody struct {
	Directives []*Directive `json:"directives"`
	Statements []Node       `json:"statements"`
}

type ClassDeclaration struct {
	Name     *BindingIdentifier `json:"name"`
	Super    Node               `json:"super"`
	Elements []*ClassElement    `json:"elements"`
}

type ClassExpression struct {
	Name     *BindingIdentifier `json:"name"`
	Super    Node               `json:"super"`
	Elements []*ClassElement    `json:"elements"`
}

// ClassElement wraps a Method, Getter or Setter.
type ClassElement struct {
	IsStatic bool `json:"isStatic"`
	Method   Node `json:"method"`
}

// Method, Getter and Setter names are StaticPropertyName or
// ComputedPropertyName nodes.
type Method struct {
	IsGenerator bool              `json:"isGenerator"`
	Name        Node              `json:"name"`
	Params      *FormalParameters `json:"params"`
	Body        *FunctionBody     `json:"body"`
}

type Getter struct {
	Name Node          `json:"name"`
	Body *FunctionBody `json:"body"`
}

type Setter struct {
	Name  Node          `json:"name"`
	Param Node          `json:"param"`
	Body  *FunctionBody `json:"body"`
}

type DataProperty struct {
	Name       Node `json:"name"`
	Expression Node `json:"expression"`
}

type ShorthandProperty struct {
	Name string `json:"name"`
}

type ComputedPropertyName struct {
	Expression Node `json:"expression"`
}

// StaticPropertyName holds a non-computed property name as a string,
// whatever its spelling in source.
type StaticPropertyName struct {
	Value string `json:"value"`
}

// Bindings.

type BindingIdentifier struct {
	Name string `json:"name"`
}

type BindingWithDefault struct {
	Binding Node `json:"binding"`
	Init    Node `json:"init"`
}

// ArrayBinding elements may be nil (holes).
type ArrayBinding struct {
	Elements    []Node `json:"elements"`
	RestElement Node   `json:"restElement"`
}

type ObjectBinding struct {
	Properties []Node `json:"properties"`
}

type BindingPropertyIdentifier struct {
	Binding *BindingIdentifier `json:"binding"`
	Init    Node               `json:"init"`
}

type BindingPropertyProperty struct {
	Name    Node `json:"name"`
	Binding Node `json:"binding"`
}

// Expressions.

type IdentifierExpression struct {
	Name string `json:"name"`
}

type LiteralBooleanExpression struct {
	Value bool `json:"value"`
}

// LiteralInfinityExpression is a numeric literal too large for float64.
type LiteralInfinityExpression struct{}

type LiteralNullExpression struct{}

type LiteralNumericExpression struct {
	Value float64 `json:"value"`
}

type LiteralRegExpExpression struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

type LiteralStringExpression struct {
	Value string `json:"value"`
}

// ArrayExpression elements may be nil (holes) or SpreadElement.
type ArrayExpression struct {
	Elements []Node `json:"elements"`
}

// AssignmentExpression is a plain "=" assignment.
type AssignmentExpression struct {
	Binding    Node `json:"binding"`
	Expression Node `json:"expression"`
}

type CompoundAssignmentExpression struct {
	Operator   string `json:"operator"`
	Binding    Node   `json:"binding"`
	Expression Node   `json:"expression"`
}

// BinaryExpression covers arithmetic, relational, logical and comma
// operators.
type BinaryExpression struct {
	Operator string `json:"operator"`
	Left     Node   `json:"left"`
	Right    Node   `json:"right"`
}

type CallExpression struct {
	Callee    Node   `json:"callee"`
	Arguments []Node `json:"arguments"`
}

type ComputedMemberExpression struct {
	Object     Node `json:"object"`
	Expression Node `json:"expression"`
}

type StaticMemberExpression struct {
	Object   Node   `json:"object"`
	Property string `json:"property"`
}

type ConditionalExpression struct {
	Test       Node `json:"test"`
	Consequent Node `json:"consequent"`
	Alternate  Node `json:"alternate"`
}

type NewExpression struct {
	Callee    Node   `json:"callee"`
	Arguments []Node `json:"arguments"`
}

type NewTargetExpression struct{}

// ObjectExpression properties are DataProperty, ShorthandProperty, Method,
// Getter or Setter nodes.
type ObjectExpression struct {
	Properties []Node `json:"properties"`
}

type UnaryExpression struct {
	Operator string `json:"operator"`
	Operand  Node   `json:"operand"`
}

type UpdateExpression struct {
	IsPrefix bool   `json:"isPrefix"`
	Operator string `json:"operator"`
	Operand  Node   `json:"operand"`
}

// TemplateExpression elements alternate TemplateElement and expression nodes,
// starting and ending with a TemplateElement. Tag is nil for untagged
// templates.
type TemplateExpression struct {
	Tag      Node   `json:"tag"`
	Elements []Node `json:"elements"`
}

type TemplateElement struct {
	RawValue string `json:"rawValue"`
}

type ThisExpression struct{}

type YieldExpression struct {
	Expression Node `json:"expression"`
}

type YieldGeneratorExpression struct {
	Expression Node `json:"expression"`
}

type SpreadElement struct {
	Expression Node `json:"expression"`
}

type Super struct{}

// Modules.

type Import struct {
	DefaultBinding  *BindingIdentifier `json:"defaultBinding"`
	NamedImports    []*ImportSpecifier `json:"namedImports"`
	ModuleSpecifier string             `json:"moduleSpecifier"`
}

type ImportNamespace struct {
	DefaultBinding   *BindingIdentifier `json:"defaultBinding"`
	NamespaceBinding *BindingIdentifier `json:"namespaceBinding"`
	ModuleSpecifier  string             `json:"moduleSpecifier"`
}

// ImportSpecifier Name is the imported name; empty when it equals the binding.
type ImportSpecifier struct {
	Name    string             `json:"name,omitempty"`
	Binding *BindingIdentifier `json:"binding"`
}

type ExportAllFrom struct {
	ModuleSpecifier string `json:"moduleSpecifier"`
}

// ExportFrom is an export list, re-exported from ModuleSpecifier when it is
// not empty.
type ExportFrom struct {
	NamedExports    []*ExportSpecifier `json:"namedExports"`
	ModuleSpecifier string             `json:"moduleSpecifier,omitempty"`
}

// Export Declaration is a FunctionDeclaration, ClassDeclaration or
// VariableDeclaration.
type Export struct {
	Declaration Node `json:"declaration"`
}

// ExportDefault Body is a FunctionDeclaration, ClassDeclaration or an
// expression.
type ExportDefault struct {
	Body Node `json:"body"`
}

// ExportSpecifier Name is the local name; empty when it equals ExportedName.
type ExportSpecifier struct {
	Name         string `json:"name,omitempty"`
	ExportedName string `json:"exportedName"`
}

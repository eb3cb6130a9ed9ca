// Package estree defines the ESTree (SpiderMonkey Parser API) syntax tree for
// ES2015 programs.
//
// Every node kind is a pointer to a struct implementing Node. Fields whose kind
// is fixed use concrete pointer types; overloaded positions use Node. An absent
// child is nil and an empty list is a nil slice.
package estree

// Node is an ESTree syntax tree node.
type Node interface {
	Type() string
	estreeNode()
}

// Program is the root of a script or module.
type Program struct {
	Body       []Node `json:"body"`
	SourceType string `json:"sourceType"`
}

// Identifier is a name in any role: binding, reference, label or key.
type Identifier struct {
	Name string `json:"name"`
}

// RegExp holds the source of a regular expression literal.
type RegExp struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

// Literal is a number, string, boolean, null or regular expression literal.
// Value holds float64, string, bool or nil; a regular expression literal has a
// nil Value and a non-nil Regex. The value +Inf stands for numeric literals
// that overflow float64.
type Literal struct {
	Value any
	Regex *RegExp
}

// Statements.

// ExpressionStatement is also the form of a directive; Directive then holds
// the raw directive text.
type ExpressionStatement struct {
	Expression Node   `json:"expression"`
	Directive  string `json:"directive,omitzero"`
}

type BlockStatement struct {
	Body []Node `json:"body"`
}

type EmptyStatement struct{}

type DebuggerStatement struct{}

type WithStatement struct {
	Object Node `json:"object"`
	Body   Node `json:"body"`
}

type ReturnStatement struct {
	Argument Node `json:"argument"`
}

type LabeledStatement struct {
	Label *Identifier `json:"label"`
	Body  Node        `json:"body"`
}

type BreakStatement struct {
	Label *Identifier `json:"label"`
}

type ContinueStatement struct {
	Label *Identifier `json:"label"`
}

type IfStatement struct {
	Test       Node `json:"test"`
	Consequent Node `json:"consequent"`
	Alternate  Node `json:"alternate"`
}

type SwitchStatement struct {
	Discriminant Node          `json:"discriminant"`
	Cases        []*SwitchCase `json:"cases"`
}

// SwitchCase is a case clause; a nil Test marks the default clause.
type SwitchCase struct {
	Test       Node   `json:"test"`
	Consequent []Node `json:"consequent"`
}

type ThrowStatement struct {
	Argument Node `json:"argument"`
}

type TryStatement struct {
	Block     *BlockStatement `json:"block"`
	Handler   *CatchClause    `json:"handler"`
	Finalizer *BlockStatement `json:"finalizer"`
}

type CatchClause struct {
	Param Node            `json:"param"`
	Body  *BlockStatement `json:"body"`
}

type WhileStatement struct {
	Test Node `json:"test"`
	Body Node `json:"body"`
}

type DoWhileStatement struct {
	Body Node `json:"body"`
	Test Node `json:"test"`
}

// ForStatement is a C-style for loop. Init is a VariableDeclaration or an
// expression.
type ForStatement struct {
	Init   Node `json:"init"`
	Test   Node `json:"test"`
	Update Node `json:"update"`
	Body   Node `json:"body"`
}

// ForInStatement is a for-in loop. Left is a VariableDeclaration or a pattern.
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

// Declarations.

type FunctionDeclaration struct {
	ID         *Identifier     `json:"id"`
	Params     []Node          `json:"params"`
	Defaults   []Node          `json:"defaults"`
	Body       *BlockStatement `json:"body"`
	Generator  bool            `json:"generator"`
	Expression bool            `json:"expression"`
}

// VariableDeclaration declares bindings with Kind "var", "let" or "const".
type VariableDeclaration struct {
	Declarations []*VariableDeclarator `json:"declarations"`
	Kind         string                `json:"kind"`
}

type VariableDeclarator struct {
	ID   Node `json:"id"`
	Init Node `json:"init"`
}

// Expressions.

type ThisExpression struct{}

type Super struct{}

// ArrayExpression elements may be nil (holes) or SpreadElement.
type ArrayExpression struct {
	Elements []Node `json:"elements"`
}

type ObjectExpression struct {
	Properties []*Property `json:"properties"`
}

// Property is an object literal member or an object pattern member. Kind is
// "init", "get" or "set".
type Property struct {
	Key       Node   `json:"key"`
	Value     Node   `json:"value"`
	Kind      string `json:"kind"`
	Method    bool   `json:"method"`
	Shorthand bool   `json:"shorthand"`
	Computed  bool   `json:"computed"`
}

type FunctionExpression struct {
	ID         *Identifier     `json:"id"`
	Params     []Node          `json:"params"`
	Defaults   []Node          `json:"defaults"`
	Body       *BlockStatement `json:"body"`
	Generator  bool            `json:"generator"`
	Expression bool            `json:"expression"`
}

// ArrowFunctionExpression has a BlockStatement body, or an expression body
// when Expression is set.
type ArrowFunctionExpression struct {
	ID         *Identifier `json:"id"`
	Params     []Node      `json:"params"`
	Defaults   []Node      `json:"defaults"`
	Body       Node        `json:"body"`
	Generator  bool        `json:"generator"`
	Expression bool        `json:"expression"`
}

type ClassDeclaration struct {
	ID         *Identifier `json:"id"`
	SuperClass Node        `json:"superClass"`
	Body       *ClassBody  `json:"body"`
}

type ClassExpression struct {
	ID         *Identifier `json:"id"`
	SuperClass Node        `json:"superClass"`
	Body       *ClassBody  `json:"body"`
}

type ClassBody struct {
	Body []*MethodDefinition `json:"body"`
}

// MethodDefinition is a class member. Kind is "constructor", "method", "get"
// or "set".
type MethodDefinition struct {
	Key      Node                `json:"key"`
	Value    *FunctionExpression `json:"value"`
	Kind     string              `json:"kind"`
	Computed bool                `json:"computed"`
	Static   bool                `json:"static"`
}

type UnaryExpression struct {
	Operator string `json:"operator"`
	Prefix   bool   `json:"prefix"`
	Argument Node   `json:"argument"`
}

type UpdateExpression struct {
	Operator string `json:"operator"`
	Prefix   bool   `json:"prefix"`
	Argument Node   `json:"argument"`
}

type BinaryExpression struct {
	Operator string `json:"operator"`
	Left     Node   `json:"left"`
	Right    Node   `json:"right"`
}

// LogicalExpression is a || or && expression.
type LogicalExpression struct {
	Operator string `json:"operator"`
	Left     Node   `json:"left"`
	Right    Node   `json:"right"`
}

// AssignmentExpression covers "=" and the compound operators.
type AssignmentExpression struct {
	Operator string `json:"operator"`
	Left     Node   `json:"left"`
	Right    Node   `json:"right"`
}

type ConditionalExpression struct {
	Test       Node `json:"test"`
	Consequent Node `json:"consequent"`
	Alternate  Node `json:"alternate"`
}

type CallExpression struct {
	Callee    Node   `json:"callee"`
	Arguments []Node `json:"arguments"`
}

type NewExpression struct {
	Callee    Node   `json:"callee"`
	Arguments []Node `json:"arguments"`
}

// MemberExpression is a.b, or a[b] when Computed is set.
type MemberExpression struct {
	Object   Node `json:"object"`
	Property Node `json:"property"`
	Computed bool `json:"computed"`
}

type SequenceExpression struct {
	Expressions []Node `json:"expressions"`
}

type YieldExpression struct {
	Argument Node `json:"argument"`
	Delegate bool `json:"delegate"`
}

// TemplateLiteral interleaves quasis with expressions; it always holds one
// more quasi than expressions.
type TemplateLiteral struct {
	Quasis      []*TemplateElement `json:"quasis"`
	Expressions []Node             `json:"expressions"`
}

type TaggedTemplateExpression struct {
	Tag   Node             `json:"tag"`
	Quasi *TemplateLiteral `json:"quasi"`
}

// TemplateValue is the raw source text of a template chunk and its value
// after escape processing.
type TemplateValue struct {
	Raw    string `json:"raw"`
	Cooked string `json:"cooked"`
}

type TemplateElement struct {
	Value TemplateValue `json:"value"`
	Tail  bool          `json:"tail"`
}

// MetaProperty is a meta.property expression such as new.target.
type MetaProperty struct {
	Meta     string `json:"meta"`
	Property string `json:"property"`
}

type SpreadElement struct {
	Argument Node `json:"argument"`
}

// Patterns.

type RestElement struct {
	Argument Node `json:"argument"`
}

type AssignmentPattern struct {
	Left  Node `json:"left"`
	Right Node `json:"right"`
}

// ArrayPattern elements may be nil (holes); a trailing RestElement collects
// the remainder.
type ArrayPattern struct {
	Elements []Node `json:"elements"`
}

type ObjectPattern struct {
	Properties []*Property `json:"properties"`
}

// Modules.

// ImportDeclaration specifiers are ImportDefaultSpecifier,
// ImportNamespaceSpecifier or ImportSpecifier nodes.
type ImportDeclaration struct {
	Specifiers []Node   `json:"specifiers"`
	Source     *Literal `json:"source"`
}

type ImportSpecifier struct {
	Local    *Identifier `json:"local"`
	Imported *Identifier `json:"imported"`
}

type ImportDefaultSpecifier struct {
	Local *Identifier `json:"local"`
}

type ImportNamespaceSpecifier struct {
	Local *Identifier `json:"local"`
}

type ExportAllDeclaration struct {
	Source *Literal `json:"source"`
}

// ExportNamedDeclaration exports either a declaration or a specifier list,
// the latter optionally re-exported from Source.
type ExportNamedDeclaration struct {
	Declaration Node               `json:"declaration"`
	Specifiers  []*ExportSpecifier `json:"specifiers"`
	Source      *Literal           `json:"source"`
}

type ExportDefaultDeclaration struct {
	Declaration Node `json:"declaration"`
}

type ExportSpecifier struct {
	Local    *Identifier `json:"local"`
	Exported *Identifier `json:"exported"`
}

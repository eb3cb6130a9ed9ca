package estree

// Kind names, as they appear in the "type" member of a node.
const (
	KindProgram                  = "Program"
	KindIdentifier               = "Identifier"
	KindLiteral                  = "Literal"
	KindExpressionStatement      = "ExpressionStatement"
	KindBlockStatement           = "BlockStatement"
	KindEmptyStatement           = "EmptyStatement"
	KindDebuggerStatement        = "DebuggerStatement"
	KindWithStatement            = "WithStatement"
	KindReturnStatement          = "ReturnStatement"
	KindLabeledStatement         = "LabeledStatement"
	KindBreakStatement           = "BreakStatement"
	KindContinueStatement        = "ContinueStatement"
	KindIfStatement              = "IfStatement"
	KindSwitchStatement          = "SwitchStatement"
	KindSwitchCase               = "SwitchCase"
	KindThrowStatement           = "ThrowStatement"
	KindTryStatement             = "TryStatement"
	KindCatchClause              = "CatchClause"
	KindWhileStatement           = "WhileStatement"
	KindDoWhileStatement         = "DoWhileStatement"
	KindForStatement             = "ForStatement"
	KindForInStatement           = "ForInStatement"
	KindForOfStatement           = "ForOfStatement"
	KindFunctionDeclaration      = "FunctionDeclaration"
	KindVariableDeclaration      = "VariableDeclaration"
	KindVariableDeclarator       = "VariableDeclarator"
	KindThisExpression           = "ThisExpression"
	KindSuper                    = "Super"
	KindArrayExpression          = "ArrayExpression"
	KindObjectExpression         = "ObjectExpression"
	KindProperty                 = "Property"
	KindFunctionExpression       = "FunctionExpression"
	KindArrowFunctionExpression  = "ArrowFunctionExpression"
	KindClassDeclaration         = "ClassDeclaration"
	KindClassExpression          = "ClassExpression"
	KindClassBody                = "ClassBody"
	KindMethodDefinition         = "MethodDefinition"
	KindUnaryExpression          = "UnaryExpression"
	KindUpdateExpression         = "UpdateExpression"
	KindBinaryExpression         = "BinaryExpression"
	KindLogicalExpression        = "LogicalExpression"
	KindAssignmentExpression     = "AssignmentExpression"
	KindConditionalExpression    = "ConditionalExpression"
	KindCallExpression           = "CallExpression"
	KindNewExpression            = "NewExpression"
	KindMemberExpression         = "MemberExpression"
	KindSequenceExpression       = "SequenceExpression"
	KindYieldExpression          = "YieldExpression"
	KindTemplateLiteral          = "TemplateLiteral"
	KindTaggedTemplateExpression = "TaggedTemplateExpression"
	KindTemplateElement          = "TemplateElement"
	KindMetaProperty             = "MetaProperty"
	KindSpreadElement            = "SpreadElement"
	KindRestElement              = "RestElement"
	KindAssignmentPattern        = "AssignmentPattern"
	KindArrayPattern             = "ArrayPattern"
	KindObjectPattern            = "ObjectPattern"
	KindImportDeclaration        = "ImportDeclaration"
	KindImportSpecifier          = "ImportSpecifier"
	KindImportDefaultSpecifier   = "ImportDefaultSpecifier"
	KindImportNamespaceSpecifier = "ImportNamespaceSpecifier"
	KindExportAllDeclaration     = "ExportAllDeclaration"
	KindExportNamedDeclaration   = "ExportNamedDeclaration"
	KindExportDefaultDeclaration = "ExportDefaultDeclaration"
	KindExportSpecifier          = "ExportSpecifier"
)

func (*Program) Type() string { return KindProgram }
func (*Identifier) Type() string { return KindIdentifier }
func (*Literal) Type() string { return KindLiteral }
func (*ExpressionStatement) Type() string { return KindExpressionStatement }
func (*BlockStatement) Type() string { return KindBlockStatement }
func (*EmptyStatement) Type() string { return KindEmptyStatement }
func (*DebuggerStatement) Type() string { return KindDebuggerStatement }
func (*WithStatement) Type() string { return KindWithStatement }
func (*ReturnStatement) Type() string { return KindReturnStatement }
func (*LabeledStatement) Type() string { return KindLabeledStatement }
func (*BreakStatement) Type() string { return KindBreakStatement }
func (*ContinueStatement) Type() string { return KindContinueStatement }
func (*IfStatement) Type() string { return KindIfStatement }
func (*SwitchStatement) Type() string { return KindSwitchStatement }
func (*SwitchCase) Type() string { return KindSwitchCase }
func (*ThrowStatement) Type() string { return KindThrowStatement }
func (*TryStatement) Type() string { return KindTryStatement }
func (*CatchClause) Type() string { return KindCatchClause }
func (*WhileStatement) Type() string { return KindWhileStatement }
func (*DoWhileStatement) Type() string { return KindDoWhileStatement }
func (*ForStatement) Type() string { return KindForStatement }
func (*ForInStatement) Type() string { return KindForInStatement }
func (*ForOfStatement) Type() string { return KindForOfStatement }
func (*FunctionDeclaration) Type() string { return KindFunctionDeclaration }
func (*VariableDeclaration) Type() string { return KindVariableDeclaration }
func (*VariableDeclarator) Type() string { return KindVariableDeclarator }
func (*ThisExpression) Type() string { return KindThisExpression }
func (*Super) Type() string { return KindSuper }
func (*ArrayExpression) Type() string { return KindArrayExpression }
func (*ObjectExpression) Type() string { return KindObjectExpression }
func (*Property) Type() string { return KindProperty }
func (*FunctionExpression) Type() string { return KindFunctionExpression }
func (*ArrowFunctionExpression) Type() string { return KindArrowFunctionExpression }
func (*ClassDeclaration) Type() string { return KindClassDeclaration }
func (*ClassExpression) Type() string { return KindClassExpression }
func (*ClassBody) Type() string { return KindClassBody }
func (*MethodDefinition) Type() string { return KindMethodDefinition }
func (*UnaryExpression) Type() string { return KindUnaryExpression }
func (*UpdateExpression) Type() string { return KindUpdateExpression }
func (*BinaryExpression) Type() string { return KindBinaryExpression }
func (*LogicalExpression) Type() string { return KindLogicalExpression }
func (*AssignmentExpression) Type() string { return KindAssignmentExpression }
func (*ConditionalExpression) Type() string { return KindConditionalExpression }
func (*CallExpression) Type() string { return KindCallExpression }
func (*NewExpression) Type() string { return KindNewExpression }
func (*MemberExpression) Type() string { return KindMemberExpression }
func (*SequenceExpression) Type() string { return KindSequenceExpression }
func (*YieldExpression) Type() string { return KindYieldExpression }
func (*TemplateLiteral) Type() string { return KindTemplateLiteral }
func (*TaggedTemplateExpression) Type() string { return KindTaggedTemplateExpression }
func (*TemplateElement) Type() string { return KindTemplateElement }
func (*MetaProperty) Type() string { return KindMetaProperty }
func (*SpreadElement) Type() string { return KindSpreadElement }
func (*RestElement) Type() string { return KindRestElement }
func (*AssignmentPattern) Type() string { return KindAssignmentPattern }
func (*ArrayPattern) Type() string { return KindArrayPattern }
func (*ObjectPattern) Type() string { return KindObjectPattern }
func (*ImportDeclaration) Type() string { return KindImportDeclaration }
func (*ImportSpecifier) Type() string { return KindImportSpecifier }
func (*ImportDefaultSpecifier) Type() string { return KindImportDefaultSpecifier }
func (*ImportNamespaceSpecifier) Type() string { return KindImportNamespaceSpecifier }
func (*ExportAllDeclaration) Type() string { return KindExportAllDeclaration }
func (*ExportNamedDeclaration) Type() string { return KindExportNamedDeclaration }
func (*ExportDefaultDeclaration) Type() string { return KindExportDefaultDeclaration }
func (*ExportSpecifier) Type() string { return KindExportSpecifier }

func (*Program) estreeNode() {}
func (*Identifier) estreeNode() {}
func (*Literal) estreeNode() {}
func (*ExpressionStatement) estreeNode() {}
func (*BlockStatement) estreeNode() {}
func (*EmptyStatement) estreeNode() {}
func (*DebuggerStatement) estreeNode() {}
func (*WithStatement) estreeNode() {}
func (*ReturnStatement) estreeNode() {}
func (*LabeledStatement) estreeNode() {}
func (*BreakStatement) estreeNode() {}
func (*ContinueStatement) estreeNode() {}
func (*IfStatement) estreeNode() {}
func (*SwitchStatement) estreeNode() {}
func (*SwitchCase) estreeNode() {}
func (*ThrowStatement) estreeNode() {}
func (*TryStatement) estreeNode() {}
func (*CatchClause) estreeNode() {}
func (*WhileStatement) estreeNode() {}
func (*DoWhileStatement) estreeNode() {}
func (*ForStatement) estreeNode() {}
func (*ForInStatement) estreeNode() {}
func (*ForOfStatement) estreeNode() {}
func (*FunctionDeclaration) estreeNode() {}
func (*VariableDeclaration) estreeNode() {}
func (*VariableDeclarator) estreeNode() {}
func (*ThisExpression) estreeNode() {}
func (*Super) estreeNode() {}
func (*ArrayExpression) estreeNode() {}
func (*ObjectExpression) estreeNode() {}
func (*Property) estreeNode() {}
func (*FunctionExpression) estreeNode() {}
func (*ArrowFunctionExpression) estreeNode() {}
func (*ClassDeclaration) estreeNode() {}
func (*ClassExpression) estreeNode() {}
func (*ClassBody) estreeNode() {}
func (*MethodDefinition) estreeNode() {}
func (*UnaryExpression) estreeNode() {}
func (*UpdateExpression) estreeNode() {}
func (*BinaryExpression) estreeNode() {}
func (*LogicalExpression) estreeNode() {}
func (*AssignmentExpression) estreeNode() {}
func (*ConditionalExpression) estreeNode() {}
func (*CallExpression) estreeNode() {}
func (*NewExpression) estreeNode() {}
func (*MemberExpression) estreeNode() {}
func (*SequenceExpression) estreeNode() {}
func (*YieldExpression) estreeNode() {}
func (*TemplateLiteral) estreeNode() {}
func (*TaggedTemplateExpression) estreeNode() {}
func (*TemplateElement) estreeNode() {}
func (*MetaProperty) estreeNode() {}
func (*SpreadElement) estreeNode() {}
func (*RestElement) estreeNode() {}
func (*AssignmentPattern) estreeNode() {}
func (*ArrayPattern) estreeNode() {}
func (*ObjectPattern) estreeNode() {}
func (*ImportDeclaration) estreeNode() {}
func (*ImportSpecifier) estreeNode() {}
func (*ImportDefaultSpecifier) estreeNode() {}
func (*ImportNamespaceSpecifier) estreeNode() {}
func (*ExportAllDeclaration) estreeNode() {}
func (*ExportNamedDeclaration) estreeNode() {}
func (*ExportDefaultDeclaration) estreeNode() {}
func (*ExportSpecifier) estreeNode() {}

// prototypes lists one zero value per kind, for registries and tables.
func prototypes() []Node {
	return []Node{
		&Program{},
		&Identifier{},
		&Literal{},
		&ExpressionStatement{},
		&BlockStatement{},
		&EmptyStatement{},
		&DebuggerStatement{},
		&WithStatement{},
		&ReturnStatement{},
		&LabeledStatement{},
		&BreakStatement{},
		&ContinueStatement{},
		&IfStatement{},
		&SwitchStatement{},
		&SwitchCase{},
		&ThrowStatement{},
		&TryStatement{},
		&CatchClause{},
		&WhileStatement{},
		&DoWhileStatement{},
		&ForStatement{},
		&ForInStatement{},
		&ForOfStatement{},
		&FunctionDeclaration{},
		&VariableDeclaration{},
		&VariableDeclarator{},
		&ThisExpression{},
		&Super{},
		&ArrayExpression{},
		&ObjectExpression{},
		&Property{},
		&FunctionExpression{},
		&ArrowFunctionExpression{},
		&ClassDeclaration{},
		&ClassExpression{},
		&ClassBody{},
		&MethodDefinition{},
		&UnaryExpression{},
		&UpdateExpression{},
		&BinaryExpression{},
		&LogicalExpression{},
		&AssignmentExpression{},
		&ConditionalExpression{},
		&CallExpression{},
		&NewExpression{},
		&MemberExpression{},
		&SequenceExpression{},
		&YieldExpression{},
		&TemplateLiteral{},
		&TaggedTemplateExpression{},
		&TemplateElement{},
		&MetaProperty{},
		&SpreadElement{},
		&RestElement{},
		&AssignmentPattern{},
		&ArrayPattern{},
		&ObjectPattern{},
		&ImportDeclaration{},
		&ImportSpecifier{},
		&ImportDefaultSpecifier{},
		&ImportNamespaceSpecifier{},
		&ExportAllDeclaration{},
		&ExportNamedDeclaration{},
		&ExportDefaultDeclaration{},
		&ExportSpecifier{},
	}
}

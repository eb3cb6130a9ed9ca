package shift

// Kind names, as they appear in the "type" member of a node.
const (
	KindScript                       = "Script"
	KindModule                       = "Module"
	KindDirective                    = "Directive"
	KindBlock                        = "Block"
	KindBlockStatement               = "BlockStatement"
	KindBreakStatement               = "BreakStatement"
	KindContinueStatement            = "ContinueStatement"
	KindDebuggerStatement            = "DebuggerStatement"
	KindDoWhileStatement             = "DoWhileStatement"
	KindEmptyStatement               = "EmptyStatement"
	KindExpressionStatement          = "ExpressionStatement"
	KindForInStatement               = "ForInStatement"
	KindForOfStatement               = "ForOfStatement"
	KindForStatement                 = "ForStatement"
	KindIfStatement                  = "IfStatement"
	KindLabeledStatement             = "LabeledStatement"
	KindReturnStatement              = "ReturnStatement"
	KindSwitchStatement              = "SwitchStatement"
	KindSwitchStatementWithDefault   = "SwitchStatementWithDefault"
	KindSwitchCase                   = "SwitchCase"
	KindSwitchDefault                = "SwitchDefault"
	KindThrowStatement               = "ThrowStatement"
	KindTryCatchStatement            = "TryCatchStatement"
	KindTryFinallyStatement          = "TryFinallyStatement"
	KindCatchClause                  = "CatchClause"
	KindVariableDeclarationStatement = "VariableDeclarationStatement"
	KindVariableDeclaration          = "VariableDeclaration"
	KindVariableDeclarator           = "VariableDeclarator"
	KindWhileStatement               = "WhileStatement"
	KindWithStatement                = "WithStatement"
	KindFunctionDeclaration          = "FunctionDeclaration"
	KindFunctionExpression           = "FunctionExpression"
	KindArrowExpression              = "ArrowExpression"
	KindFormalParameters             = "FormalParameters"
	KindFunctionBody                 = "FunctionBody"
	KindClassDeclaration             = "ClassDeclaration"
	KindClassExpression              = "ClassExpression"
	KindClassElement                 = "ClassElement"
	KindMethod                       = "Method"
	KindGetter                       = "Getter"
	KindSetter                       = "Setter"
	KindDataProperty                 = "DataProperty"
	KindShorthandProperty            = "ShorthandProperty"
	KindComputedPropertyName         = "ComputedPropertyName"
	KindStaticPropertyName           = "StaticPropertyName"
	KindBindingIdentifier            = "BindingIdentifier"
	KindBindingWithDefault           = "BindingWithDefault"
	KindArrayBinding                 = "ArrayBinding"
	KindObjectBinding                = "ObjectBinding"
	KindBindingPropertyIdentifier    = "BindingPropertyIdentifier"
	KindBindingPropertyProperty      = "BindingPropertyProperty"
	KindIdentifierExpression         = "IdentifierExpression"
	KindLiteralBooleanExpression     = "LiteralBooleanExpression"
	KindLiteralInfinityExpression    = "LiteralInfinityExpression"
	KindLiteralNullExpression        = "LiteralNullExpression"
	KindLiteralNumericExpression     = "LiteralNumericExpression"
	KindLiteralRegExpExpression      = "LiteralRegExpExpression"
	KindLiteralStringExpression      = "LiteralStringExpression"
	KindArrayExpression              = "ArrayExpression"
	KindAssignmentExpression         = "AssignmentExpression"
	KindCompoundAssignmentExpression = "CompoundAssignmentExpression"
	KindBinaryExpression             = "BinaryExpression"
	KindCallExpression               = "CallExpression"
	KindComputedMemberExpression     = "ComputedMemberExpression"
	KindStaticMemberExpression       = "StaticMemberExpression"
	KindConditionalExpression        = "ConditionalExpression"
	KindNewExpression                = "NewExpression"
	KindNewTargetExpression          = "NewTargetExpression"
	KindObjectExpression             = "ObjectExpression"
	KindUnaryExpression              = "UnaryExpression"
	KindUpdateExpression             = "UpdateExpression"
	KindTemplateExpression           = "TemplateExpression"
	KindTemplateElement              = "TemplateElement"
	KindThisExpression               = "ThisExpression"
	KindYieldExpression              = "YieldExpression"
	KindYieldGeneratorExpression     = "YieldGeneratorExpression"
	KindSpreadElement                = "SpreadElement"
	KindSuper                        = "Super"
	KindImport                       = "Import"
	KindImportNamespace              = "ImportNamespace"
	KindImportSpecifier              = "ImportSpecifier"
	KindExportAllFrom                = "ExportAllFrom"
	KindExportFrom                   = "ExportFrom"
	KindExport                       = "Export"
	KindExportDefault                = "ExportDefault"
	KindExportSpecifier              = "ExportSpecifier"
)

func (*Script) Type() string { return KindScript }
func (*Module) Type() string { return KindModule }
func (*Directive) Type() string { return KindDirective }
func (*Block) Type() string { return KindBlock }
func (*BlockStatement) Type() string { return KindBlockStatement }
func (*BreakStatement) Type() string { return KindBreakStatement }
func (*ContinueStatement) Type() string { return KindContinueStatement }
func (*DebuggerStatement) Type() string { return KindDebuggerStatement }
func (*DoWhileStatement) Type() string { return KindDoWhileStatement }
func (*EmptyStatement) Type() string { return KindEmptyStatement }
func (*ExpressionStatement) Type() string { return KindExpressionStatement }
func (*ForInStatement) Type() string { return KindForInStatement }
func (*ForOfStatement) Type() string { return KindForOfStatement }
func (*ForStatement) Type() string { return KindForStatement }
func (*IfStatement) Type() string { return KindIfStatement }
func (*LabeledStatement) Type() string { return KindLabeledStatement }
func (*ReturnStatement) Type() string { return KindReturnStatement }
func (*SwitchStatement) Type() string { return KindSwitchStatement }
func (*SwitchStatementWithDefault) Type() string { return KindSwitchStatementWithDefault }
func (*SwitchCase) Type() string { return KindSwitchCase }
func (*SwitchDefault) Type() string { return KindSwitchDefault }
func (*ThrowStatement) Type() string { return KindThrowStatement }
func (*TryCatchStatement) Type() string { return KindTryCatchStatement }
func (*TryFinallyStatement) Type() string { return KindTryFinallyStatement }
func (*CatchClause) Type() string { return KindCatchClause }
func (*VariableDeclarationStatement) Type() string { return KindVariableDeclarationStatement }
func (*VariableDeclaration) Type() string { return KindVariableDeclaration }
func (*VariableDeclarator) Type() string { return KindVariableDeclarator }
func (*WhileStatement) Type() string { return KindWhileStatement }
func (*WithStatement) Type() string { return KindWithStatement }
func (*FunctionDeclaration) Type() string { return KindFunctionDeclaration }
func (*FunctionExpression) Type() string { return KindFunctionExpression }
func (*ArrowExpression) Type() string { return KindArrowExpression }
func (*FormalParameters) Type() string { return KindFormalParameters }
func (*FunctionBody) Type() string { return KindFunctionBody }
func (*ClassDeclaration) Type() string { return KindClassDeclaration }
func (*ClassExpression) Type() string { return KindClassExpression }
func (*ClassElement) Type() string { return KindClassElement }
func (*Method) Type() string { return KindMethod }
func (*Getter) Type() string { return KindGetter }
func (*Setter) Type() string { return KindSetter }
func (*DataProperty) Type() string { return KindDataProperty }
func (*ShorthandProperty) Type() string { return KindShorthandProperty }
func (*ComputedPropertyName) Type() string { return KindComputedPropertyName }
func (*StaticPropertyName) Type() string { return KindStaticPropertyName }
func (*BindingIdentifier) Type() string { return KindBindingIdentifier }
func (*BindingWithDefault) Type() string { return KindBindingWithDefault }
func (*ArrayBinding) Type() string { return KindArrayBinding }
func (*ObjectBinding) Type() string { return KindObjectBinding }
func (*BindingPropertyIdentifier) Type() string { return KindBindingPropertyIdentifier }
func (*BindingPropertyProperty) Type() string { return KindBindingPropertyProperty }
func (*IdentifierExpression) Type() string { return KindIdentifierExpression }
func (*LiteralBooleanExpression) Type() string { return KindLiteralBooleanExpression }
func (*LiteralInfinityExpression) Type() string { return KindLiteralInfinityExpression }
func (*LiteralNullExpression) Type() string { return KindLiteralNullExpression }
func (*LiteralNumericExpression) Type() string { return KindLiteralNumericExpression }
func (*LiteralRegExpExpression) Type() string { return KindLiteralRegExpExpression }
func (*LiteralStringExpression) Type() string { return KindLiteralStringExpression }
func (*ArrayExpression) Type() string { return KindArrayExpression }
func (*AssignmentExpression) Type() string { return KindAssignmentExpression }
func (*CompoundAssignmentExpression) Type() string { return KindCompoundAssignmentExpression }
func (*BinaryExpression) Type() string { return KindBinaryExpression }
func (*CallExpression) Type() string { return KindCallExpression }
func (*ComputedMemberExpression) Type() string { return KindComputedMemberExpression }
func (*StaticMemberExpression) Type() string { return KindStaticMemberExpression }
func (*ConditionalExpression) Type() string { return KindConditionalExpression }
func (*NewExpression) Type() string { return KindNewExpression }
func (*NewTargetExpression) Type() string { return KindNewTargetExpression }
func (*ObjectExpression) Type() string { return KindObjectExpression }
func (*UnaryExpression) Type() string { return KindUnaryExpression }
func (*UpdateExpression) Type() string { return KindUpdateExpression }
func (*TemplateExpression) Type() string { return KindTemplateExpression }
func (*TemplateElement) Type() string { return KindTemplateElement }
func (*ThisExpression) Type() string { return KindThisExpression }
func (*YieldExpression) Type() string { return KindYieldExpression }
func (*YieldGeneratorExpression) Type() string { return KindYieldGeneratorExpression }
func (*SpreadElement) Type() string { return KindSpreadElement }
func (*Super) Type() string { return KindSuper }
func (*Import) Type() string { return KindImport }
func (*ImportNamespace) Type() string { return KindImportNamespace }
func (*ImportSpecifier) Type() string { return KindImportSpecifier }
func (*ExportAllFrom) Type() string { return KindExportAllFrom }
func (*ExportFrom) Type() string { return KindExportFrom }
func (*Export) Type() string { return KindExport }
func (*ExportDefault) Type() string { return KindExportDefault }
func (*ExportSpecifier) Type() string { return KindExportSpecifier }

func (*Script) shiftNode() {}
func (*Module) shiftNode() {}
func (*Directive) shiftNode() {}
func (*Block) shiftNode() {}
func (*BlockStatement) shiftNode() {}
func (*BreakStatement) shiftNode() {}
func (*ContinueStatement) shiftNode() {}
func (*DebuggerStatement) shiftNode() {}
func (*DoWhileStatement) shiftNode() {}
func (*EmptyStatement) shiftNode() {}
func (*ExpressionStatement) shiftNode() {}
func (*ForInStatement) shiftNode() {}
func (*ForOfStatement) shiftNode() {}
func (*ForStatement) shiftNode() {}
func (*IfStatement) shiftNode() {}
func (*LabeledStatement) shiftNode() {}
func (*ReturnStatement) shiftNode() {}
func (*SwitchStatement) shiftNode() {}
func (*SwitchStatementWithDefault) shiftNode() {}
func (*SwitchCase) shiftNode() {}
func (*SwitchDefault) shiftNode() {}
func (*ThrowStatement) shiftNode() {}
func (*TryCatchStatement) shiftNode() {}
func (*TryFinallyStatement) shiftNode() {}
func (*CatchClause) shiftNode() {}
func (*VariableDeclarationStatement) shiftNode() {}
func (*VariableDeclaration) shiftNode() {}
func (*VariableDeclarator) shiftNode() {}
func (*WhileStatement) shiftNode() {}
func (*WithStatement) shiftNode() {}
func (*FunctionDeclaration) shiftNode() {}
func (*FunctionExpression) shiftNode() {}
func (*ArrowExpression) shiftNode() {}
func (*FormalParameters) shiftNode() {}
func (*FunctionBody) shiftNode() {}
func (*ClassDeclaration) shiftNode() {}
func (*ClassExpression) shiftNode() {}
func (*ClassElement) shiftNode() {}
func (*Method) shiftNode() {}
func (*Getter) shiftNode() {}
func (*Setter) shiftNode() {}
func (*DataProperty) shiftNode() {}
func (*ShorthandProperty) shiftNode() {}
func (*ComputedPropertyName) shiftNode() {}
func (*StaticPropertyName) shiftNode() {}
func (*BindingIdentifier) shiftNode() {}
func (*BindingWithDefault) shiftNode() {}
func (*ArrayBinding) shiftNode() {}
func (*ObjectBinding) shiftNode() {}
func (*BindingPropertyIdentifier) shiftNode() {}
func (*BindingPropertyProperty) shiftNode() {}
func (*IdentifierExpression) shiftNode() {}
func (*LiteralBooleanExpression) shiftNode() {}
func (*LiteralInfinityExpression) shiftNode() {}
func (*LiteralNullExpression) shiftNode() {}
func (*LiteralNumericExpression) shiftNode() {}
func (*LiteralRegExpExpression) shiftNode() {}
func (*LiteralStringExpression) shiftNode() {}
func (*ArrayExpression) shiftNode() {}
func (*AssignmentExpression) shiftNode() {}
func (*CompoundAssignmentExpression) shiftNode() {}
func (*BinaryExpression) shiftNode() {}
func (*CallExpression) shiftNode() {}
func (*ComputedMemberExpression) shiftNode() {}
func (*StaticMemberExpression) shiftNode() {}
func (*ConditionalExpression) shiftNode() {}
func (*NewExpression) shiftNode() {}
func (*NewTargetExpression) shiftNode() {}
func (*ObjectExpression) shiftNode() {}
func (*UnaryExpression) shiftNode() {}
func (*UpdateExpression) shiftNode() {}
func (*TemplateExpression) shiftNode() {}
func (*TemplateElement) shiftNode() {}
func (*ThisExpression) shiftNode() {}
func (*YieldExpression) shiftNode() {}
func (*YieldGeneratorExpression) shiftNode() {}
func (*SpreadElement) shiftNode() {}
func (*Super) shiftNode() {}
func (*Import) shiftNode() {}
func (*ImportNamespace) shiftNode() {}
func (*ImportSpecifier) shiftNode() {}
func (*ExportAllFrom) shiftNode() {}
func (*ExportFrom) shiftNode() {}
func (*Export) shiftNode() {}
func (*ExportDefault) shiftNode() {}
func (*ExportSpecifier) shiftNode() {}

// prototypes lists one zero value per kind, for registries and tables.
func prototypes() []Node {
	return []Node{
		&Script{},
		&Module{},
		&Directive{},
		&Block{},
		&BlockStatement{},
		&BreakStatement{},
		&ContinueStatement{},
		&DebuggerStatement{},
		&DoWhileStatement{},
		&EmptyStatement{},
		&ExpressionStatement{},
		&ForInStatement{},
		&ForOfStatement{},
		&ForStatement{},
		&IfStatement{},
		&LabeledStatement{},
		&ReturnStatement{},
		&SwitchStatement{},
		&SwitchStatementWithDefault{},
		&SwitchCase{},
		&SwitchDefault{},
		&ThrowStatement{},
		&TryCatchStatement{},
		&TryFinallyStatement{},
		&CatchClause{},
		&VariableDeclarationStatement{},
		&VariableDeclaration{},
		&VariableDeclarator{},
		&WhileStatement{},
		&WithStatement{},
		&FunctionDeclaration{},
		&FunctionExpression{},
		&ArrowExpression{},
		&FormalParameters{},
		&FunctionBody{},
		&ClassDeclaration{},
		&ClassExpression{},
		&ClassElement{},
		&Method{},
		&Getter{},
		&Setter{},
		&DataProperty{},
		&ShorthandProperty{},
		&ComputedPropertyName{},
		&StaticPropertyName{},
		&BindingIdentifier{},
		&BindingWithDefault{},
		&ArrayBinding{},
		&ObjectBinding{},
		&BindingPropertyIdentifier{},
		&BindingPropertyProperty{},
		&IdentifierExpression{},
		&LiteralBooleanExpression{},
		&LiteralInfinityExpression{},
		&LiteralNullExpression{},
		&LiteralNumericExpression{},
		&LiteralRegExpExpression{},
		&LiteralStringExpression{},
		&ArrayExpression{},
		&AssignmentExpression{},
		&CompoundAssignmentExpression{},
		&BinaryExpression{},
		&CallExpression{},
		&ComputedMemberExpression{},
		&StaticMemberExpression{},
		&ConditionalExpression{},
		&NewExpression{},
		&NewTargetExpression{},
		&ObjectExpression{},
		&UnaryExpression{},
		&UpdateExpression{},
		&TemplateExpression{},
		&TemplateElement{},
		&ThisExpression{},
		&YieldExpression{},
		&YieldGeneratorExpression{},
		&SpreadElement{},
		&Super{},
		&Import{},
		&ImportNamespace{},
		&ImportSpecifier{},
		&ExportAllFrom{},
		&ExportFrom{},
		&Export{},
		&ExportDefault{},
		&ExportSpecifier{},
	}
}

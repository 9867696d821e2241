package luaast

// Node is any element of the Lua syntax tree
type Node interface {
	render(r *Renderer)
}

// Statement is a node which occupies one or more full lines of output
type Statement interface {
	Node
	statementNode()
}

// Expression is a node which produces a value
type Expression interface {
	Node
	expressionNode()
}

// -----------------------------------------------------------------------------

// IdentifierName is a (possibly dotted) name: `System`, `MyApp.Models`
type IdentifierName struct {
	Value string
}

// NewIdentifier creates a new identifier name
func NewIdentifier(value string) *IdentifierName {
	return &IdentifierName{Value: value}
}

// Well-known identifiers of the CSharp.Lua runtime
var (
	System               = NewIdentifier("System")
	Global               = NewIdentifier("global")
	UsingDeclare         = NewIdentifier("System.import")
	NamespaceDeclare     = NewIdentifier("System.namespace")
	Namespace            = NewIdentifier("namespace")
	Class                = NewIdentifier("class")
	Linq                 = NewIdentifier("Linq")
	SystemLinqEnumerable = NewIdentifier("System.Linq.Enumerable")
)

// MemberAccess is `Target.Member`
type MemberAccess struct {
	Target Expression
	Member *IdentifierName
}

// StringLiteral is a quoted string
type StringLiteral struct {
	Value string
}

// TableInitializer is an empty table constructor `{}`
type TableInitializer struct{}

// Invocation is a call `Target(Args...)`
type Invocation struct {
	Target Expression
	Args   []Expression
}

// NewInvocation creates a new invocation of target with the given arguments
func NewInvocation(target Expression, args ...Expression) *Invocation {
	return &Invocation{Target: target, Args: args}
}

// FunctionExpression is an anonymous function value
type FunctionExpression struct {
	Params []*IdentifierName
	Body   *StatementList
}

// NewFunctionExpression creates a function with an empty body
func NewFunctionExpression(params ...*IdentifierName) *FunctionExpression {
	return &FunctionExpression{Params: params, Body: &StatementList{}}
}

// AddParameter appends a parameter to the function
func (fe *FunctionExpression) AddParameter(param *IdentifierName) {
	fe.Params = append(fe.Params, param)
}

func (*IdentifierName) expressionNode()     {}
func (*MemberAccess) expressionNode()       {}
func (*StringLiteral) expressionNode()      {}
func (*TableInitializer) expressionNode()   {}
func (*Invocation) expressionNode()         {}
func (*FunctionExpression) expressionNode() {}

// -----------------------------------------------------------------------------

// ShortComment is a single line comment: `--Text`
type ShortComment struct {
	Text string
}

// LocalDeclaration is `local Name` or `local Name = Value` when Value is set
type LocalDeclaration struct {
	Name  *IdentifierName
	Value Expression
}

// Assignment is `Left = Right`
type Assignment struct {
	Left, Right Expression
}

// ExpressionStatement is an expression evaluated for its side effects
type ExpressionStatement struct {
	Expr Expression
}

// ReturnStatement is `return Values...`
type ReturnStatement struct {
	Values []Expression
}

// StatementList is a flat run of statements rendered at the same level
type StatementList struct {
	Statements []Statement
}

// Add appends statements to the list
func (sl *StatementList) Add(stmts ...Statement) {
	sl.Statements = append(sl.Statements, stmts...)
}

// Len returns the number of statements in the list
func (sl *StatementList) Len() int {
	return len(sl.Statements)
}

// NamespaceDeclaration is a namespace-level declaration: it renders as
// `System.namespace("Name", function (namespace) Body end)`
type NamespaceDeclaration struct {
	Name string
	Body *StatementList
}

// NewNamespaceDeclaration creates a namespace declaration with an empty body
func NewNamespaceDeclaration(name string) *NamespaceDeclaration {
	return &NamespaceDeclaration{Name: name, Body: &StatementList{}}
}

func (*ShortComment) statementNode()         {}
func (*LocalDeclaration) statementNode()     {}
func (*Assignment) statementNode()           {}
func (*ExpressionStatement) statementNode()  {}
func (*ReturnStatement) statementNode()      {}
func (*StatementList) statementNode()        {}
func (*NamespaceDeclaration) statementNode() {}

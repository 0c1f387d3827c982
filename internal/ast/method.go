package ast

import "github.com/enci/wren-analyzer/internal/token"

// MethodKind distinguishes the four method signature forms.
type MethodKind uint8

const (
	// MethodName is an ordinary named method, e.g. `foo(a, b)`.
	MethodName MethodKind = iota
	// MethodSubscript is a `[a, b]` subscript operator method.
	MethodSubscript
	// MethodInfix is a binary operator method, e.g. `+(other)`.
	MethodInfix
	// MethodUnary is a unary prefix operator method, `!` or `~`, written
	// with no parameter list. A `-` method is always MethodInfix.
	MethodUnary
)

// Method is a class member. A foreign method has a nil Body; all
// others require one. A setter's Name is shared with its getter but
// IsSetter distinguishes the two in the type checker's registry.
type Method struct {
	Kind        MethodKind
	Foreign     bool
	Static      bool
	Construct   bool
	IsSetter    bool
	Name        token.Token
	Params      []*Parameter
	SetterParam *Parameter
	ReturnType  *TypeAnnotation
	Body        *Body
}

func (*Method) node() {}

// Body is a method or block-argument body. It carries at most one of
// Expression or Statements; both nil denotes an empty block.
type Body struct {
	Params     []*Parameter
	Expression Expr
	Statements []Stmt
}

func (*Body) node() {}

// Parameter is a name with an optional type annotation.
type Parameter struct {
	Name token.Token
	Type *TypeAnnotation
}

func (*Parameter) node() {}

// TypeAnnotation names a single type by its identifier token.
type TypeAnnotation struct {
	Name token.Token
}

func (*TypeAnnotation) node() {}

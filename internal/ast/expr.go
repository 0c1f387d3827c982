package ast

import "github.com/enci/wren-analyzer/internal/token"

// Num is a numeric literal.
type Num struct{ Tok token.Token }

// String is a (possibly raw) string literal with no interpolation.
type String struct{ Tok token.Token }

// Bool is the `true` or `false` literal.
type Bool struct {
	Tok   token.Token
	Value bool
}

// Null is the `null` literal.
type Null struct{ Tok token.Token }

// This is a `this` reference.
type This struct{ Tok token.Token }

// Field is a single-underscore instance field reference.
type Field struct{ Tok token.Token }

// StaticField is a double-underscore static field reference.
type StaticField struct{ Tok token.Token }

// List is a `[ ... ]` list literal.
type List struct {
	LBracket, RBracket token.Token
	Elements           []Expr
}

// Map is a `{ key: value, ... }` map literal.
type Map struct {
	LBrace, RBrace token.Token
	Keys, Values   []Expr
}

// Interpolation is a string with embedded expressions:
// len(Strings) == len(Exprs)+1, alternating string segment and
// expression, e.g. `"a %(b) c"` has two Strings and one Expr.
type Interpolation struct {
	Strings []token.Token
	Exprs   []Expr
}

// Grouping is a parenthesized expression.
type Grouping struct {
	LParen, RParen token.Token
	Inner          Expr
}

// Prefix is a unary prefix operation: `- ! ~`.
type Prefix struct {
	Op    token.Token
	Right Expr
}

// Infix is a binary operation, including the `is` type test.
type Infix struct {
	Op          token.Token
	Left, Right Expr
}

// Call is the sole representation of a name reference and of a method
// call: a bare identifier `foo` is `Call{Receiver: nil, Name: foo}`.
// HasArguments distinguishes an absent argument list (`foo`, `a.b`)
// from an empty one (`foo()`, `a.b()`).
type Call struct {
	Receiver      Expr
	Dot           token.Token
	Name          token.Token
	Arguments     []Expr
	HasArguments  bool
	BlockArgument *Body
}

// Subscript is a `receiver[args]` access.
type Subscript struct {
	Receiver           Expr
	LBracket, RBracket token.Token
	Arguments          []Expr
}

// Assignment is a `target = value` expression.
type Assignment struct {
	Target Expr
	Op     token.Token
	Value  Expr
}

// Conditional is a `cond ? then : else` expression.
type Conditional struct {
	Cond, Then, Else Expr
	Question, Colon  token.Token
}

// Super is a `super` or `super.name` reference, with the same optional
// call suffix as Call.
type Super struct {
	Tok           token.Token
	Dot           token.Token
	Name          token.Token
	HasName       bool
	Arguments     []Expr
	HasArguments  bool
	BlockArgument *Body
}

func (*Num) node()            {}
func (*String) node()         {}
func (*Bool) node()           {}
func (*Null) node()           {}
func (*This) node()           {}
func (*Field) node()          {}
func (*StaticField) node()    {}
func (*List) node()           {}
func (*Map) node()            {}
func (*Interpolation) node()  {}
func (*Grouping) node()       {}
func (*Prefix) node()         {}
func (*Infix) node()          {}
func (*Call) node()           {}
func (*Subscript) node()      {}
func (*Assignment) node()     {}
func (*Conditional) node()    {}
func (*Super) node()          {}

func (*Num) exprNode()            {}
func (*String) exprNode()         {}
func (*Bool) exprNode()           {}
func (*Null) exprNode()           {}
func (*This) exprNode()           {}
func (*Field) exprNode()          {}
func (*StaticField) exprNode()    {}
func (*List) exprNode()           {}
func (*Map) exprNode()            {}
func (*Interpolation) exprNode()  {}
func (*Grouping) exprNode()       {}
func (*Prefix) exprNode()         {}
func (*Infix) exprNode()          {}
func (*Call) exprNode()           {}
func (*Subscript) exprNode()      {}
func (*Assignment) exprNode()     {}
func (*Conditional) exprNode()    {}
func (*Super) exprNode()          {}

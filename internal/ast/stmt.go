package ast

import "github.com/enci/wren-analyzer/internal/token"

// Var is a `var name (: Type)? (= expr)?` declaration.
type Var struct {
	Name  token.Token
	Type  *TypeAnnotation
	Value Expr
}

// ImportName is one name in an import's `for` clause, with an optional
// alias that replaces it in the resolved binding.
type ImportName struct {
	Name  token.Token
	Alias *token.Token
}

// Import is an `import "path" (for a, b as c)?` statement. A bare
// import (no `for` clause) has a nil Names.
type Import struct {
	Path  token.Token
	Names []ImportName
}

// Class is a `(foreign)? class Name (is Super)? { ... }` declaration.
type Class struct {
	Name       token.Token
	Superclass *token.Token
	Foreign    bool
	Methods    []*Method
}

// If is an `if (cond) then (else else)?` statement.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// For is a `for (name (: Type)? in iterable) body` statement.
type For struct {
	Var      token.Token
	Type     *TypeAnnotation
	Iterable Expr
	Body     Stmt
}

// While is a `while (cond) body` statement.
type While struct {
	Cond Expr
	Body Stmt
}

// Return is a `return (expr)?` statement.
type Return struct {
	Tok   token.Token
	Value Expr
}

// Block is a `{ ... }` statement sequence.
type Block struct {
	Statements []Stmt
}

// Break is a `break` statement.
type Break struct{ Tok token.Token }

// Continue is a `continue` statement.
type Continue struct{ Tok token.Token }

// ExprStmt wraps an expression used in statement position.
type ExprStmt struct{ X Expr }

func (*Var) node()      {}
func (*Class) node()    {}
func (*Import) node()   {}
func (*If) node()       {}
func (*For) node()      {}
func (*While) node()    {}
func (*Return) node()   {}
func (*Block) node()    {}
func (*Break) node()    {}
func (*Continue) node() {}
func (*ExprStmt) node() {}

func (*Var) stmtNode()      {}
func (*Class) stmtNode()    {}
func (*Import) stmtNode()   {}
func (*If) stmtNode()       {}
func (*For) stmtNode()      {}
func (*While) stmtNode()    {}
func (*Return) stmtNode()   {}
func (*Block) stmtNode()    {}
func (*Break) stmtNode()    {}
func (*Continue) stmtNode() {}
func (*ExprStmt) stmtNode() {}

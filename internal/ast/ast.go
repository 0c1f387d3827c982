// Package ast defines the Wren abstract syntax tree: a closed sum of
// node variants produced by the parser and walked by the resolver and
// type checker. Nodes are immutable once built and reference tokens
// that share the lifetime of the source buffer they were scanned from.
package ast

// Node is implemented by every AST node.
type Node interface {
	node()
}

// Expr is implemented by every expression variant.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement variant.
type Stmt interface {
	Node
	stmtNode()
}

// Module is the root of a parsed file: an ordered sequence of
// top-level statements (definitions and statements alike).
type Module struct {
	Path       string
	Statements []Stmt
}

func (*Module) node() {}

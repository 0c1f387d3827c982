// Package visitor defines the traversal contract shared by the
// resolver and type checker: each dispatches on an AST node's dynamic
// type and may selectively override the default walk.
package visitor

import "github.com/enci/wren-analyzer/internal/ast"

// Visitor is implemented by a pass over the AST. Each method receives
// a node and a walk function that continues the default traversal into
// that node's children; a Visitor that wants the default behavior for
// a given node simply calls walk. The argument passed to walk is
// ignored, so passes call walk(nil).
type Visitor interface {
	VisitModule(m *ast.Module, walk func(ast.Node))
	VisitStmt(s ast.Stmt, walk func(ast.Node))
	VisitExpr(e ast.Expr, walk func(ast.Node))
	VisitBody(b *ast.Body, walk func(ast.Node))
}

// Walk performs a depth-first traversal of node in source order,
// invoking v's Visit* methods and recursing into children via the
// default walker unless v itself recurses differently.
func Walk(v Visitor, n ast.Node) {
	if n == nil {
		return
	}
	switch node := n.(type) {
	case *ast.Module:
		v.VisitModule(node, func(ast.Node) { walkModuleChildren(v, node) })
	case ast.Stmt:
		v.VisitStmt(node, func(ast.Node) { walkStmtChildren(v, node) })
	case ast.Expr:
		v.VisitExpr(node, func(ast.Node) { walkExprChildren(v, node) })
	}
}

func walkModuleChildren(v Visitor, m *ast.Module) {
	for _, s := range m.Statements {
		Walk(v, s)
	}
}

func walkStmtChildren(v Visitor, s ast.Stmt) {
	switch node := s.(type) {
	case *ast.Var:
		if node.Value != nil {
			Walk(v, node.Value)
		}
	case *ast.Class:
		for _, m := range node.Methods {
			walkMethod(v, m)
		}
	case *ast.Import:
		// leaf: no child expressions
	case *ast.If:
		Walk(v, node.Cond)
		Walk(v, node.Then)
		if node.Else != nil {
			Walk(v, node.Else)
		}
	case *ast.For:
		Walk(v, node.Iterable)
		Walk(v, node.Body)
	case *ast.While:
		Walk(v, node.Cond)
		Walk(v, node.Body)
	case *ast.Return:
		if node.Value != nil {
			Walk(v, node.Value)
		}
	case *ast.Block:
		for _, st := range node.Statements {
			Walk(v, st)
		}
	case *ast.Break, *ast.Continue:
		// leaf
	case *ast.ExprStmt:
		Walk(v, node.X)
	}
}

// WalkBody visits b through v's VisitBody hook, letting a pass that
// needs to re-enter a body's own scope rules (e.g. after handling a
// Method's signature separately) do so explicitly.
func WalkBody(v Visitor, b *ast.Body) {
	if b == nil {
		return
	}
	walkBody(v, b)
}

func walkMethod(v Visitor, m *ast.Method) {
	if m.Body != nil {
		walkBody(v, m.Body)
	}
}

func walkBody(v Visitor, b *ast.Body) {
	v.VisitBody(b, func(ast.Node) { walkBodyChildren(v, b) })
}

func walkBodyChildren(v Visitor, b *ast.Body) {
	if b.Expression != nil {
		Walk(v, b.Expression)
	}
	for _, s := range b.Statements {
		Walk(v, s)
	}
}

func walkExprChildren(v Visitor, e ast.Expr) {
	switch node := e.(type) {
	case *ast.Num, *ast.String, *ast.Bool, *ast.Null, *ast.This, *ast.Field, *ast.StaticField:
		// leaves
	case *ast.List:
		for _, el := range node.Elements {
			Walk(v, el)
		}
	case *ast.Map:
		for i := range node.Keys {
			Walk(v, node.Keys[i])
			Walk(v, node.Values[i])
		}
	case *ast.Interpolation:
		for _, x := range node.Exprs {
			Walk(v, x)
		}
	case *ast.Grouping:
		Walk(v, node.Inner)
	case *ast.Prefix:
		Walk(v, node.Right)
	case *ast.Infix:
		Walk(v, node.Left)
		Walk(v, node.Right)
	case *ast.Call:
		if node.Receiver != nil {
			Walk(v, node.Receiver)
		}
		for _, a := range node.Arguments {
			Walk(v, a)
		}
		if node.BlockArgument != nil {
			walkBody(v, node.BlockArgument)
		}
	case *ast.Subscript:
		Walk(v, node.Receiver)
		for _, a := range node.Arguments {
			Walk(v, a)
		}
	case *ast.Assignment:
		Walk(v, node.Target)
		Walk(v, node.Value)
	case *ast.Conditional:
		Walk(v, node.Cond)
		Walk(v, node.Then)
		Walk(v, node.Else)
	case *ast.Super:
		for _, a := range node.Arguments {
			Walk(v, a)
		}
		if node.BlockArgument != nil {
			walkBody(v, node.BlockArgument)
		}
	}
}

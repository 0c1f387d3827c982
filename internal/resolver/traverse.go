package resolver

import "github.com/enci/wren-analyzer/internal/ast"

func (r *Resolver) VisitModule(m *ast.Module, walk func(ast.Node)) {
	walk(nil)
	if !r.bareImport {
		r.checkForwardReferences()
	}
}

func (r *Resolver) VisitStmt(s ast.Stmt, walk func(ast.Node)) {
	switch node := s.(type) {
	case *ast.Class:
		r.declare(node.Name.Text, node.Name)
		r.beginClass()
		walk(nil)
		r.endClass()
	case *ast.For:
		r.begin()
		r.declare(node.Var.Text, node.Var)
		walk(nil)
		r.end()
	case *ast.Import:
		if len(node.Names) == 0 {
			r.bareImport = true
		} else {
			for _, n := range node.Names {
				name := n.Name
				if n.Alias != nil {
					name = *n.Alias
				}
				r.declare(name.Text, name)
			}
		}
	case *ast.Var:
		r.declare(node.Name.Text, node.Name)
		walk(nil)
	case *ast.Block:
		r.begin()
		walk(nil)
		r.end()
	default:
		walk(nil)
	}
}

func (r *Resolver) VisitExpr(e ast.Expr, walk func(ast.Node)) {
	if call, ok := e.(*ast.Call); ok && call.Receiver == nil {
		r.resolve(call.Name.Text, call.Name)
	}
	walk(nil)
}

func (r *Resolver) VisitBody(b *ast.Body, walk func(ast.Node)) {
	r.begin()
	for _, p := range b.Params {
		r.declare(p.Name.Text, p.Name)
	}
	walk(nil)
	r.end()
}

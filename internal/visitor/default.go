package visitor

import "github.com/enci/wren-analyzer/internal/ast"

// Base implements Visitor by always taking the default walk. Embed it
// in a pass and override only the Visit* methods that need custom
// scope handling.
type Base struct{}

func (Base) VisitModule(_ *ast.Module, walk func(ast.Node)) { walk(nil) }
func (Base) VisitStmt(_ ast.Stmt, walk func(ast.Node))      { walk(nil) }
func (Base) VisitExpr(_ ast.Expr, walk func(ast.Node))      { walk(nil) }
func (Base) VisitBody(_ *ast.Body, walk func(ast.Node))     { walk(nil) }

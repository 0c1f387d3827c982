package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enci/wren-analyzer/internal/ast"
	"github.com/enci/wren-analyzer/internal/token"
)

type countingVisitor struct {
	Base
	calls []string
}

func (c *countingVisitor) VisitExpr(e ast.Expr, walk func(ast.Node)) {
	if call, ok := e.(*ast.Call); ok {
		c.calls = append(c.calls, call.Name.Text)
	}
	walk(nil)
}

func TestWalkVisitsCallsInSourceOrder(t *testing.T) {
	module := &ast.Module{
		Statements: []ast.Stmt{
			&ast.ExprStmt{X: &ast.Call{Name: token.Token{Text: "a"}}},
			&ast.ExprStmt{X: &ast.Infix{
				Left:  &ast.Call{Name: token.Token{Text: "b"}},
				Right: &ast.Call{Name: token.Token{Text: "c"}},
			}},
		},
	}

	v := &countingVisitor{}
	Walk(v, module)

	assert.Equal(t, []string{"a", "b", "c"}, v.calls)
}

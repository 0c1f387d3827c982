package typecheck

import (
	"github.com/enci/wren-analyzer/internal/ast"
	"github.com/enci/wren-analyzer/internal/token"
)

// exprToken picks a representative token to anchor a diagnostic about
// an arbitrary expression node.
func exprToken(e ast.Expr) token.Token {
	switch node := e.(type) {
	case *ast.Num:
		return node.Tok
	case *ast.String:
		return node.Tok
	case *ast.Bool:
		return node.Tok
	case *ast.Null:
		return node.Tok
	case *ast.This:
		return node.Tok
	case *ast.Field:
		return node.Tok
	case *ast.StaticField:
		return node.Tok
	case *ast.List:
		return node.LBracket
	case *ast.Map:
		return node.LBrace
	case *ast.Interpolation:
		if len(node.Strings) > 0 {
			return node.Strings[0]
		}
		return token.Token{}
	case *ast.Grouping:
		return node.LParen
	case *ast.Prefix:
		return node.Op
	case *ast.Infix:
		return node.Op
	case *ast.Call:
		return node.Name
	case *ast.Subscript:
		return node.LBracket
	case *ast.Assignment:
		return node.Op
	case *ast.Conditional:
		return node.Question
	case *ast.Super:
		return node.Tok
	default:
		return token.Token{}
	}
}

package parser

import (
	"github.com/enci/wren-analyzer/internal/ast"
	"github.com/enci/wren-analyzer/internal/token"
)

// parseBody handles both method bodies and block-argument bodies: an
// optional leading `|param, list|`, then either an immediate `}`
// (empty), a single expression, or a run of definitions.
func (p *Parser) parseBody() *ast.Body {
	p.expect(token.LBrace)

	var params []*ast.Parameter
	if p.current.Kind == token.Pipe {
		params = p.parseBlockParams()
	}

	if p.current.Kind == token.RBrace {
		p.advance()
		return &ast.Body{Params: params}
	}

	if p.current.Kind != token.Line {
		expr := p.parseExpression()
		p.ignoreLine()
		p.expect(token.RBrace)
		return &ast.Body{Params: params, Expression: expr}
	}

	p.ignoreLine()
	var stmts []ast.Stmt
	for p.current.Kind != token.RBrace && p.current.Kind != token.Eof {
		stmts = append(stmts, p.parseDefinition())
		if p.current.Kind == token.RBrace {
			break
		}
		p.consumeLine()
	}
	p.expect(token.RBrace)
	return &ast.Body{Params: params, Statements: stmts}
}

func (p *Parser) parseBlockParams() []*ast.Parameter {
	p.expect(token.Pipe)
	var params []*ast.Parameter
	for p.current.Kind != token.Pipe && p.current.Kind != token.Eof {
		params = append(params, p.parseParameter())
		if p.current.Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.Pipe)
	return params
}

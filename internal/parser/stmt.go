package parser

import (
	"github.com/enci/wren-analyzer/internal/ast"
	"github.com/enci/wren-analyzer/internal/token"
)

func (p *Parser) parseStatement() ast.Stmt {
	switch p.current.Kind {
	case token.KwBreak:
		tok := p.advance()
		return &ast.Break{Tok: tok}
	case token.KwContinue:
		tok := p.advance()
		return &ast.Continue{Tok: tok}
	case token.KwIf:
		return p.parseIf()
	case token.KwFor:
		return p.parseFor()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwReturn:
		return p.parseReturn()
	case token.LBrace:
		return p.parseBlock()
	default:
		return &ast.ExprStmt{X: p.parseExpression()}
	}
}

func (p *Parser) parseIf() *ast.If {
	p.expect(token.KwIf)
	p.expect(token.LParen)
	p.ignoreLine()
	cond := p.parseExpression()
	p.expect(token.RParen)
	then := p.parseStatement()
	var els ast.Stmt
	if p.current.Kind == token.KwElse {
		p.advance()
		els = p.parseStatement()
	}
	return &ast.If{Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseFor() *ast.For {
	p.expect(token.KwFor)
	p.expect(token.LParen)
	name := p.expect(token.Name)
	typ := p.parseOptionalTypeAnnotation()
	p.expect(token.KwIn)
	p.ignoreLine()
	iterable := p.parseExpression()
	p.expect(token.RParen)
	body := p.parseStatement()
	return &ast.For{Var: name, Type: typ, Iterable: iterable, Body: body}
}

func (p *Parser) parseWhile() *ast.While {
	p.expect(token.KwWhile)
	p.expect(token.LParen)
	p.ignoreLine()
	cond := p.parseExpression()
	p.expect(token.RParen)
	body := p.parseStatement()
	return &ast.While{Cond: cond, Body: body}
}

func (p *Parser) parseReturn() *ast.Return {
	tok := p.expect(token.KwReturn)
	if p.current.Kind == token.Line || p.current.Kind == token.Eof {
		return &ast.Return{Tok: tok}
	}
	return &ast.Return{Tok: tok, Value: p.parseExpression()}
}

func (p *Parser) parseBlock() *ast.Block {
	p.expect(token.LBrace)
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
	return &ast.Block{Statements: stmts}
}

package parser

import (
	"fmt"

	"github.com/enci/wren-analyzer/internal/ast"
	"github.com/enci/wren-analyzer/internal/token"
)

func (p *Parser) parsePrimary() ast.Expr {
	switch p.current.Kind {
	case token.LParen:
		return p.parseGrouping()
	case token.LBracket:
		return p.parseListLiteral()
	case token.LBrace:
		return p.parseMapLiteral()
	case token.Name:
		return p.parseIdentCall()
	case token.KwSuper:
		return p.parseSuper()
	case token.KwTrue:
		return &ast.Bool{Tok: p.advance(), Value: true}
	case token.KwFalse:
		return &ast.Bool{Tok: p.advance(), Value: false}
	case token.KwNull:
		return &ast.Null{Tok: p.advance()}
	case token.KwThis:
		return &ast.This{Tok: p.advance()}
	case token.Field:
		return &ast.Field{Tok: p.advance()}
	case token.StaticField:
		return &ast.StaticField{Tok: p.advance()}
	case token.Number:
		return &ast.Num{Tok: p.advance()}
	case token.String:
		return &ast.String{Tok: p.advance()}
	case token.Interpolation:
		return p.parseInterpolation()
	default:
		tok := p.current
		p.errorAt(tok, fmt.Sprintf("unexpected token %s", tok.Kind))
		p.advance()
		return &ast.Null{Tok: tok}
	}
}

func (p *Parser) parseGrouping() ast.Expr {
	lp := p.advance()
	p.ignoreLine()
	inner := p.parseExpression()
	p.ignoreLine()
	rp := p.expect(token.RParen)
	return &ast.Grouping{LParen: lp, RParen: rp, Inner: inner}
}

func (p *Parser) parseListLiteral() ast.Expr {
	lb := p.advance()
	p.ignoreLine()
	var elems []ast.Expr
	for p.current.Kind != token.RBracket && p.current.Kind != token.Eof {
		elems = append(elems, p.parseExpression())
		p.ignoreLine()
		if p.current.Kind == token.Comma {
			p.advance()
			p.ignoreLine()
			continue
		}
		break
	}
	rb := p.expect(token.RBracket)
	return &ast.List{LBracket: lb, RBracket: rb, Elements: elems}
}

func (p *Parser) parseMapLiteral() ast.Expr {
	lb := p.advance()
	p.ignoreLine()
	var keys, values []ast.Expr
	for p.current.Kind != token.RBrace && p.current.Kind != token.Eof {
		k := p.parseExpression()
		p.ignoreLine()
		p.expect(token.Colon)
		p.ignoreLine()
		v := p.parseExpression()
		keys = append(keys, k)
		values = append(values, v)
		p.ignoreLine()
		if p.current.Kind == token.Comma {
			p.advance()
			p.ignoreLine()
			continue
		}
		break
	}
	rb := p.expect(token.RBrace)
	return &ast.Map{LBrace: lb, RBrace: rb, Keys: keys, Values: values}
}

// parseIdentCall parses a bare identifier as a Call — the parser never
// produces a distinct name expression.
func (p *Parser) parseIdentCall() ast.Expr {
	name := p.expect(token.Name)
	call := &ast.Call{Name: name}
	p.parseCallSuffix(&call.Arguments, &call.HasArguments, &call.BlockArgument)
	return call
}

func (p *Parser) parseSuper() ast.Expr {
	tok := p.advance()
	sup := &ast.Super{Tok: tok}
	if p.current.Kind == token.Dot {
		sup.Dot = p.advance()
		sup.Name = p.expect(token.Name)
		sup.HasName = true
	}
	p.parseCallSuffix(&sup.Arguments, &sup.HasArguments, &sup.BlockArgument)
	return sup
}

// parseInterpolation reads alternating Interpolation-kind string
// segments (each followed by an embedded expression) and terminates
// with a final String-kind segment.
func (p *Parser) parseInterpolation() ast.Expr {
	var strs []token.Token
	var exprs []ast.Expr
	for {
		tok := p.advance()
		strs = append(strs, tok)
		if tok.Kind == token.String {
			break
		}
		exprs = append(exprs, p.parseExpression())
	}
	return &ast.Interpolation{Strings: strs, Exprs: exprs}
}

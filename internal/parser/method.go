package parser

import (
	"github.com/enci/wren-analyzer/internal/ast"
	"github.com/enci/wren-analyzer/internal/token"
)

// parseMethod parses one class member: modifiers, a signature, an
// optional setter clause, an optional return type, and (unless
// foreign) a body.
func (p *Parser) parseMethod() *ast.Method {
	m := &ast.Method{}
	if p.current.Kind == token.KwForeign {
		m.Foreign = true
		p.advance()
	}
	if p.current.Kind == token.KwStatic {
		m.Static = true
		p.advance()
	}
	if p.current.Kind == token.KwConstruct {
		m.Construct = true
		p.advance()
	}

	switch {
	case p.current.Kind == token.LBracket:
		m.Kind = ast.MethodSubscript
		m.Name = p.current
		m.Params = p.parseBracketParams()
	case token.IsInfixOperator(p.current.Kind):
		m.Kind = ast.MethodInfix
		m.Name = p.current
		p.advance()
		if p.current.Kind == token.LParen {
			m.Params = p.parseParenParams()
		}
	case token.IsUnaryPrefixOperator(p.current.Kind):
		m.Kind = ast.MethodUnary
		m.Name = p.current
		p.advance()
	default:
		m.Kind = ast.MethodName
		m.Name = p.expect(token.Name)
		if p.current.Kind == token.LParen {
			m.Params = p.parseParenParams()
		}
	}

	if p.current.Kind == token.Assign {
		p.advance()
		p.expect(token.LParen)
		param := p.parseParameter()
		p.expect(token.RParen)
		m.IsSetter = true
		m.SetterParam = param
	}

	if p.current.Kind == token.Arrow {
		p.advance()
		name := p.expect(token.Name)
		m.ReturnType = &ast.TypeAnnotation{Name: name}
	}

	if !m.Foreign {
		m.Body = p.parseBody()
		// A method's own parameters live in its body's scope; methods
		// never carry a separate `|param|` block-argument list.
		m.Body.Params = m.Params
	}
	return m
}

func (p *Parser) parseParameter() *ast.Parameter {
	name := p.expect(token.Name)
	return &ast.Parameter{Name: name, Type: p.parseOptionalTypeAnnotation()}
}

func (p *Parser) parseBracketParams() []*ast.Parameter {
	p.expect(token.LBracket)
	var params []*ast.Parameter
	for p.current.Kind != token.RBracket && p.current.Kind != token.Eof {
		params = append(params, p.parseParameter())
		if p.current.Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBracket)
	return params
}

func (p *Parser) parseParenParams() []*ast.Parameter {
	p.expect(token.LParen)
	p.ignoreLine()
	params := []*ast.Parameter{}
	for p.current.Kind != token.RParen && p.current.Kind != token.Eof {
		params = append(params, p.parseParameter())
		p.ignoreLine()
		if p.current.Kind == token.Comma {
			p.advance()
			p.ignoreLine()
			continue
		}
		break
	}
	p.expect(token.RParen)
	return params
}

package parser

import (
	"github.com/enci/wren-analyzer/internal/ast"
	"github.com/enci/wren-analyzer/internal/token"
)

// parseDefinition recognizes, in order: class; foreign class; import;
// var; falling through to a statement.
func (p *Parser) parseDefinition() ast.Stmt {
	switch p.current.Kind {
	case token.KwClass:
		return p.parseClass(false)
	case token.KwForeign:
		p.advance()
		return p.parseClass(true)
	case token.KwImport:
		return p.parseImport()
	case token.KwVar:
		return p.parseVar()
	default:
		return p.parseStatement()
	}
}

func (p *Parser) parseVar() *ast.Var {
	p.expect(token.KwVar)
	name := p.expect(token.Name)
	typ := p.parseOptionalTypeAnnotation()
	var value ast.Expr
	if p.current.Kind == token.Assign {
		p.advance()
		p.ignoreLine()
		value = p.parseExpression()
	}
	return &ast.Var{Name: name, Type: typ, Value: value}
}

func (p *Parser) parseOptionalTypeAnnotation() *ast.TypeAnnotation {
	if p.current.Kind != token.Colon {
		return nil
	}
	p.advance()
	name := p.expect(token.Name)
	return &ast.TypeAnnotation{Name: name}
}

func (p *Parser) parseImport() *ast.Import {
	p.expect(token.KwImport)
	path := p.expect(token.String)
	var names []ast.ImportName
	if p.current.Kind == token.KwFor {
		p.advance()
		for {
			name := p.expect(token.Name)
			entry := ast.ImportName{Name: name}
			if p.current.Kind == token.Name && p.current.Text == "as" {
				p.advance()
				alias := p.expect(token.Name)
				entry.Alias = &alias
			}
			names = append(names, entry)
			if p.current.Kind == token.Comma {
				p.advance()
				continue
			}
			break
		}
	}
	return &ast.Import{Path: path, Names: names}
}

func (p *Parser) parseClass(foreign bool) *ast.Class {
	p.expect(token.KwClass)
	name := p.expect(token.Name)
	var super *token.Token
	if p.current.Kind == token.KwIs {
		p.advance()
		s := p.expect(token.Name)
		super = &s
	}
	methods := p.parseClassBody()
	return &ast.Class{Name: name, Superclass: super, Foreign: foreign, Methods: methods}
}

func (p *Parser) parseClassBody() []*ast.Method {
	p.expect(token.LBrace)
	p.ignoreLine()
	var methods []*ast.Method
	for p.current.Kind != token.RBrace && p.current.Kind != token.Eof {
		methods = append(methods, p.parseMethod())
		if p.current.Kind == token.RBrace {
			break
		}
		p.consumeLine()
	}
	p.expect(token.RBrace)
	return methods
}

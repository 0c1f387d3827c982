package parser

import (
	"github.com/enci/wren-analyzer/internal/ast"
	"github.com/enci/wren-analyzer/internal/token"
)

// parseCallChain accepts a primary followed by any run of `[args]`
// subscripts and `.name` accesses, tolerating a newline before a
// chained dot via speculative lookahead.
func (p *Parser) parseCallChain() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch {
		case p.current.Kind == token.LBracket:
			expr = p.parseSubscript(expr)
		case p.current.Kind == token.Dot:
			expr = p.parseDotAccess(expr)
		case p.current.Kind == token.Line && p.tryCommitNewlineDot():
			expr = p.parseDotAccess(expr)
		default:
			return expr
		}
	}
}

// tryCommitNewlineDot speculatively consumes a run of Line tokens
// while p.current is Line; if the token after them is a dot, it
// commits by leaving p.current positioned there. Otherwise every
// speculatively read token is pushed back and the chain stops.
func (p *Parser) tryCommitNewlineDot() bool {
	var buffered []token.Token
	for p.current.Kind == token.Line {
		buffered = append(buffered, p.advance())
	}
	if p.current.Kind == token.Dot {
		return true
	}
	buffered = append(buffered, p.current)
	p.pushback(buffered)
	return false
}

func (p *Parser) parseSubscript(receiver ast.Expr) ast.Expr {
	lb := p.advance()
	p.ignoreLine()
	args := p.parseArgList(token.RBracket)
	p.ignoreLine()
	rb := p.expect(token.RBracket)
	return &ast.Subscript{Receiver: receiver, LBracket: lb, RBracket: rb, Arguments: args}
}

func (p *Parser) parseDotAccess(receiver ast.Expr) ast.Expr {
	dot := p.advance()
	p.ignoreLine()
	name := p.expect(token.Name)
	call := &ast.Call{Receiver: receiver, Dot: dot, Name: name}
	p.parseCallSuffix(&call.Arguments, &call.HasArguments, &call.BlockArgument)
	return call
}

// parseCallSuffix parses the optional `(arg-list)` and optional block
// argument shared by Call and Super.
func (p *Parser) parseCallSuffix(args *[]ast.Expr, hasArgs *bool, block **ast.Body) {
	if p.current.Kind == token.LParen {
		p.advance()
		p.ignoreLine()
		*args = p.parseArgList(token.RParen)
		p.ignoreLine()
		p.expect(token.RParen)
		*hasArgs = true
	}
	if p.current.Kind == token.LBrace {
		*block = p.parseBody()
	}
}

func (p *Parser) parseArgList(closeKind token.Kind) []ast.Expr {
	var args []ast.Expr
	if p.current.Kind == closeKind {
		return args
	}
	for {
		args = append(args, p.parseExpression())
		p.ignoreLine()
		if p.current.Kind == token.Comma {
			p.advance()
			p.ignoreLine()
			continue
		}
		break
	}
	return args
}

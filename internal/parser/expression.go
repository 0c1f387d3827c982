package parser

import (
	"github.com/enci/wren-analyzer/internal/ast"
	"github.com/enci/wren-analyzer/internal/token"
)

// parseExpression is the entry point for the whole precedence chain,
// from assignment (lowest) down to primary (highest). Ignore-line is
// applied after every binary operator before recursing to the right
// operand.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() ast.Expr {
	left := p.parseConditional()
	if p.current.Kind == token.Assign {
		op := p.advance()
		p.ignoreLine()
		right := p.parseAssignment()
		return &ast.Assignment{Target: left, Op: op, Value: right}
	}
	return left
}

func (p *Parser) parseConditional() ast.Expr {
	cond := p.parseLogicalOr()
	if p.current.Kind != token.Question {
		return cond
	}
	q := p.advance()
	p.ignoreLine()
	then := p.parseConditional()
	colon := p.expect(token.Colon)
	p.ignoreLine()
	els := p.parseConditional()
	return &ast.Conditional{Cond: cond, Then: then, Else: els, Question: q, Colon: colon}
}

// binaryLevel builds a left-associative chain over next for every
// token kind in ops, applying ignore-line before each right operand.
func (p *Parser) binaryLevel(next func() ast.Expr, ops ...token.Kind) ast.Expr {
	left := next()
	for p.matchesAny(ops) {
		op := p.advance()
		p.ignoreLine()
		right := next()
		left = &ast.Infix{Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) matchesAny(kinds []token.Kind) bool {
	for _, k := range kinds {
		if p.current.Kind == k {
			return true
		}
	}
	return false
}

func (p *Parser) parseLogicalOr() ast.Expr {
	return p.binaryLevel(p.parseLogicalAnd, token.PipePipe)
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	return p.binaryLevel(p.parseEquality, token.AmpAmp)
}

func (p *Parser) parseEquality() ast.Expr {
	return p.binaryLevel(p.parseTypeTest, token.EqEq, token.BangEq)
}

func (p *Parser) parseTypeTest() ast.Expr {
	return p.binaryLevel(p.parseComparison, token.KwIs)
}

func (p *Parser) parseComparison() ast.Expr {
	return p.binaryLevel(p.parseBitwiseOr, token.Lt, token.LtEq, token.Gt, token.GtEq)
}

func (p *Parser) parseBitwiseOr() ast.Expr {
	return p.binaryLevel(p.parseBitwiseXor, token.Pipe)
}

func (p *Parser) parseBitwiseXor() ast.Expr {
	return p.binaryLevel(p.parseBitwiseAnd, token.Caret)
}

func (p *Parser) parseBitwiseAnd() ast.Expr {
	return p.binaryLevel(p.parseShift, token.Amp)
}

func (p *Parser) parseShift() ast.Expr {
	return p.binaryLevel(p.parseRange, token.LtLt, token.GtGt)
}

func (p *Parser) parseRange() ast.Expr {
	return p.binaryLevel(p.parseTerm, token.DotDot, token.DotDotDot)
}

func (p *Parser) parseTerm() ast.Expr {
	return p.binaryLevel(p.parseFactor, token.Plus, token.Minus)
}

func (p *Parser) parseFactor() ast.Expr {
	return p.binaryLevel(p.parsePrefix, token.Star, token.Slash, token.Percent)
}

// parsePrefix is right-recursive: `- ! ~` may stack.
func (p *Parser) parsePrefix() ast.Expr {
	if p.current.Kind == token.Minus || p.current.Kind == token.Bang || p.current.Kind == token.Tilde {
		op := p.advance()
		return &ast.Prefix{Op: op, Right: p.parsePrefix()}
	}
	return p.parseCallChain()
}

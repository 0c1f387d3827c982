package parser

import (
	"fmt"

	"github.com/enci/wren-analyzer/internal/diag"
	"github.com/enci/wren-analyzer/internal/token"
)

// advance returns the current token and moves to the next one, drawing
// from the pushback queue first if it holds anything.
func (p *Parser) advance() token.Token {
	prev := p.current
	if len(p.lookahead) > 0 {
		p.current = p.lookahead[0]
		p.lookahead = p.lookahead[1:]
	} else {
		p.current = p.sc.ReadToken()
	}
	return prev
}

// pushback requeues tokens so the next advance calls return them, in
// order, before drawing from the scanner again. toks[0] becomes the
// new current token.
func (p *Parser) pushback(toks []token.Token) {
	if len(toks) == 0 {
		return
	}
	p.lookahead = append(toks[1:], p.lookahead...)
	p.current = toks[0]
}

// expect consumes current if it matches kind, else reports a
// parse-error at current's span and consumes it anyway, so the parser
// always makes progress.
func (p *Parser) expect(kind token.Kind) token.Token {
	if p.current.Kind == kind {
		return p.advance()
	}
	p.errorAt(p.current, fmt.Sprintf("expected %s but found %s", kind, p.current.Kind))
	return p.advance()
}

// ignoreLine skips any run of Line tokens without requiring one.
func (p *Parser) ignoreLine() {
	for p.current.Kind == token.Line {
		p.advance()
	}
}

// consumeLine requires at least one Line token, then ignores the rest.
// Eof and Rbrace are accepted as implicit terminators with no
// diagnostic, since a final statement need not carry a trailing
// newline before the block or file ends.
func (p *Parser) consumeLine() {
	if p.current.Kind == token.Line {
		p.ignoreLine()
		return
	}
	if p.current.Kind == token.Eof || p.current.Kind == token.RBrace {
		return
	}
	p.errorAt(p.current, "expected newline")
}

func (p *Parser) errorAt(tok token.Token, msg string) {
	if p.reporter == nil {
		return
	}
	length := tok.Length
	if length == 0 {
		length = 1
	}
	p.reporter.Report(diag.NewError(diag.CodeParseError, diag.Span{Start: tok.Start, Length: length}, msg))
}

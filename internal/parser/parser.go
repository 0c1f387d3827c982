// Package parser implements a recursive-descent parser over the
// scanner's token stream, producing an ast.Module and a stream of
// parse-error diagnostics.
package parser

import (
	"github.com/enci/wren-analyzer/internal/ast"
	"github.com/enci/wren-analyzer/internal/diag"
	"github.com/enci/wren-analyzer/internal/lexer"
	"github.com/enci/wren-analyzer/internal/source"
	"github.com/enci/wren-analyzer/internal/token"
)

// Options configures a Parser.
type Options struct {
	Reporter diag.Reporter
}

// Parser holds one token of lookahead in current, plus a small
// pushback queue used by the multi-line dot-chain lookahead.
type Parser struct {
	sc        *lexer.Scanner
	current   token.Token
	lookahead []token.Token
	reporter  diag.Reporter
}

// New creates a Parser over buf.
func New(buf *source.Buffer, opts Options) *Parser {
	p := &Parser{sc: lexer.New(buf), reporter: opts.Reporter}
	p.current = p.sc.ReadToken()
	return p
}

// ParseModule parses the entire token stream into a Module.
func (p *Parser) ParseModule() *ast.Module {
	p.ignoreLine()
	var stmts []ast.Stmt
	for p.current.Kind != token.Eof {
		stmts = append(stmts, p.parseDefinition())
		if p.current.Kind == token.Eof {
			break
		}
		p.consumeLine()
	}
	return &ast.Module{Statements: stmts}
}

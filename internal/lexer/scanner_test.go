package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enci/wren-analyzer/internal/source"
	"github.com/enci/wren-analyzer/internal/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	buf := source.New("t.wren", []byte(src))
	sc := New(buf)
	var toks []token.Token
	for {
		tok := sc.ReadToken()
		toks = append(toks, tok)
		if tok.Kind == token.Eof {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestScannerRoundTrip(t *testing.T) {
	src := "var x = 1 + 2"
	toks := scanAll(t, src)
	var rebuilt string
	for _, tk := range toks[:len(toks)-1] {
		rebuilt += tk.Text
	}
	assert.Equal(t, "varx=1+2", rebuilt) // spaces are not tokens
	assert.Equal(t, []token.Kind{token.KwVar, token.Name, token.Assign, token.Number, token.Plus, token.Number, token.Eof}, kinds(toks))
}

func TestScannerNumbers(t *testing.T) {
	toks := scanAll(t, "0xFF 3.14 1..2")
	assert.Equal(t, "0xFF", toks[0].Text)
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, "3.14", toks[1].Text)
	assert.Equal(t, token.Number, toks[1].Kind)
	assert.Equal(t, []token.Kind{token.Number, token.DotDot, token.Number}, kinds(toks[2:5]))
}

func TestScannerInterpolation(t *testing.T) {
	toks := scanAll(t, `"hello %(name)"`)
	assert.Equal(t, []token.Kind{token.Interpolation, token.Name, token.String, token.Eof}, kinds(toks))
	assert.Equal(t, `"hello %(`, toks[0].Text)
	assert.Equal(t, "name", toks[1].Text)
	assert.Equal(t, `)"`, toks[2].Text)
}

func TestScannerNestedInterpolationParens(t *testing.T) {
	toks := scanAll(t, `"x %(f(1, 2))"`)
	assert.Equal(t, []token.Kind{
		token.Interpolation, token.Name, token.LParen, token.Number,
		token.Comma, token.Number, token.RParen, token.String, token.Eof,
	}, kinds(toks))
	assert.Equal(t, `)"`, toks[7].Text)
}

func TestScannerRawString(t *testing.T) {
	toks := scanAll(t, `"""a %(b) "c"""`)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, `"""a %(b) "c"""`, toks[0].Text)
}

func TestScannerBlockCommentNesting(t *testing.T) {
	toks := scanAll(t, "/* a /* b */ c */ 1")
	assert.Equal(t, []token.Kind{token.Number, token.Eof}, kinds(toks))
}

func TestScannerMinusVsArrow(t *testing.T) {
	toks := scanAll(t, "a - b -> c")
	assert.Equal(t, []token.Kind{token.Name, token.Minus, token.Name, token.Arrow, token.Name, token.Eof}, kinds(toks))
}

func TestScannerFieldClassification(t *testing.T) {
	toks := scanAll(t, "_a __b c")
	assert.Equal(t, []token.Kind{token.Field, token.StaticField, token.Name, token.Eof}, kinds(toks))
}

func TestScannerAttributeProducesNoToken(t *testing.T) {
	toks := scanAll(t, "#attr(1, 2)\nvar x = 1")
	assert.Equal(t, []token.Kind{token.Line, token.KwVar, token.Name, token.Assign, token.Number, token.Eof}, kinds(toks))
}

func TestScannerShebangAndBOM(t *testing.T) {
	src := "\xEF\xBB\xBF#!/usr/bin/env wren\nvar x = 1"
	toks := scanAll(t, src)
	assert.Equal(t, []token.Kind{token.Line, token.KwVar, token.Name, token.Assign, token.Number, token.Eof}, kinds(toks))
}

func TestScannerUnterminatedStringIsSilentlyClosed(t *testing.T) {
	toks := scanAll(t, `"never closed`)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, token.Eof, toks[1].Kind)
}

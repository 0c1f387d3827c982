// Package lexer turns Wren source bytes into a stream of tokens.
package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/enci/wren-analyzer/internal/source"
	"github.com/enci/wren-analyzer/internal/token"
)

// Scanner produces tokens lazily from a source buffer. It holds the
// current byte offset and a stack of interpolation depths: each element
// counts open parentheses inside a currently-open "%(...)" expression.
type Scanner struct {
	buf         *source.Buffer
	off         uint32
	interpStack []int
}

// New creates a Scanner over buf, skipping a leading UTF-8 BOM and a
// leading shebang line if present.
func New(buf *source.Buffer) *Scanner {
	s := &Scanner{buf: buf}
	s.skipBOM()
	s.skipShebang()
	return s
}

func (s *Scanner) skipBOM() {
	if s.buf.Len() >= 3 && s.buf.ByteAt(0) == 0xEF && s.buf.ByteAt(1) == 0xBB && s.buf.ByteAt(2) == 0xBF {
		s.off = 3
	}
}

func (s *Scanner) skipShebang() {
	if s.peek() == '#' && s.peekAt(1) == '!' {
		for !s.eof() && s.peek() != '\n' {
			s.bump()
		}
	}
}

func (s *Scanner) eof() bool { return s.off >= s.buf.Len() }

func (s *Scanner) peek() byte { return s.buf.ByteAt(s.off) }

func (s *Scanner) peekAt(n uint32) byte { return s.buf.ByteAt(s.off + n) }

func (s *Scanner) bump() byte {
	b := s.buf.ByteAt(s.off)
	if !s.eof() {
		s.off++
	}
	return b
}

type mark uint32

func (s *Scanner) mark() mark { return mark(s.off) }

func (s *Scanner) spanFrom(m mark) (start, length uint32) {
	u, err := safecast.Conv[uint32](m)
	if err != nil {
		panic(fmt.Errorf("lexer: mark overflow: %w", err))
	}
	return u, s.off - u
}

func (s *Scanner) textFrom(m mark) string {
	start, length := s.spanFrom(m)
	return s.buf.Slice(start, start+length)
}

func (s *Scanner) emit(kind token.Kind, m mark) token.Token {
	start, length := s.spanFrom(m)
	return token.Token{Kind: kind, Start: start, Length: length, Text: s.buf.Slice(start, start+length)}
}

// ReadToken returns the next significant token, or Eof once exhausted.
func (s *Scanner) ReadToken() token.Token {
	s.skipTrivia()

	if s.eof() {
		return token.Token{Kind: token.Eof, Start: s.off, Length: 0}
	}

	ch := s.peek()
	switch {
	case ch == '\n':
		m := s.mark()
		s.bump()
		return s.emit(token.Line, m)
	case ch == '"':
		return s.scanString()
	case isDigit(ch):
		return s.scanNumber()
	case ch == '.' && isDigit(s.peekAt(1)):
		return s.scanNumber()
	case isIdentStart(ch):
		return s.scanIdentOrKeyword()
	default:
		return s.scanOperator()
	}
}

// skipTrivia consumes spaces, tabs, carriage returns, line comments,
// block comments, and attribute lines. It stops before a line feed, which
// is scanned by ReadToken as a Line token.
func (s *Scanner) skipTrivia() {
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\r':
			s.bump()
		case '/':
			if s.peekAt(1) == '/' {
				for !s.eof() && s.peek() != '\n' {
					s.bump()
				}
				continue
			}
			if s.peekAt(1) == '*' {
				s.skipBlockComment()
				continue
			}
			return
		case '#':
			s.skipAttribute()
		default:
			return
		}
	}
}

// skipBlockComment consumes a /* ... */ comment, honoring arbitrary
// nesting. An unterminated comment is silently closed at Eof.
func (s *Scanner) skipBlockComment() {
	s.bump() // '/'
	s.bump() // '*'
	depth := 1
	for !s.eof() && depth > 0 {
		if s.peek() == '/' && s.peekAt(1) == '*' {
			s.bump()
			s.bump()
			depth++
			continue
		}
		if s.peek() == '*' && s.peekAt(1) == '/' {
			s.bump()
			s.bump()
			depth--
			continue
		}
		s.bump()
	}
}

// skipAttribute consumes a '#' (optionally '#!') attribute line, tracking
// parenthesis depth so a grouped attribute value may span lines. The
// terminating line feed is left for the caller to scan as a Line token.
func (s *Scanner) skipAttribute() {
	s.bump() // '#'
	if s.peek() == '!' {
		s.bump()
	}
	depth := 0
	for !s.eof() {
		switch s.peek() {
		case '\n':
			if depth == 0 {
				return
			}
			s.bump()
		case '(':
			depth++
			s.bump()
		case ')':
			if depth > 0 {
				depth--
			}
			s.bump()
		default:
			s.bump()
		}
	}
}

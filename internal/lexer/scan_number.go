package lexer

import "github.com/enci/wren-analyzer/internal/token"

// scanNumber scans a decimal or hexadecimal numeric literal: a leading
// "0x" enters hex mode and consumes one or more hex digits; otherwise a
// run of digits, an optional fractional part (only when the byte after
// '.' is itself a digit), and an optional exponent.
func (s *Scanner) scanNumber() token.Token {
	m := s.mark()

	if s.peek() == '0' && (s.peekAt(1) == 'x' || s.peekAt(1) == 'X') {
		s.bump()
		s.bump()
		for !s.eof() && isHexDigit(s.peek()) {
			s.bump()
		}
		return s.emit(token.Number, m)
	}

	for !s.eof() && isDigit(s.peek()) {
		s.bump()
	}

	if s.peek() == '.' && isDigit(s.peekAt(1)) {
		s.bump()
		for !s.eof() && isDigit(s.peek()) {
			s.bump()
		}
	}

	if s.peek() == 'e' || s.peek() == 'E' {
		save := s.off
		s.bump()
		if s.peek() == '+' || s.peek() == '-' {
			s.bump()
		}
		if isDigit(s.peek()) {
			for !s.eof() && isDigit(s.peek()) {
				s.bump()
			}
		} else {
			s.off = save
		}
	}

	return s.emit(token.Number, m)
}

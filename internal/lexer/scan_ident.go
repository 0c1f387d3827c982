package lexer

import "github.com/enci/wren-analyzer/internal/token"

// scanIdentOrKeyword scans a run of identifier bytes and classifies it as a
// keyword, a plain Name, a single-underscore Field, or a double-underscore
// StaticField.
func (s *Scanner) scanIdentOrKeyword() token.Token {
	m := s.mark()
	for !s.eof() && isIdentPart(s.peek()) {
		s.bump()
	}
	text := s.textFrom(m)

	switch {
	case len(text) >= 2 && text[0] == '_' && text[1] == '_':
		return s.emit(token.StaticField, m)
	case len(text) >= 1 && text[0] == '_':
		return s.emit(token.Field, m)
	}

	if kind, ok := token.LookupKeyword(text); ok {
		return s.emit(kind, m)
	}
	return s.emit(token.Name, m)
}

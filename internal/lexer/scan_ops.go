package lexer

import "github.com/enci/wren-analyzer/internal/token"

// scanOperator scans a single punctuator by maximal munch, or a lone
// unrecognized byte as an Error token. When an interpolation is open,
// '(' and ')' also adjust the depth stack; a ')' that closes the last
// open depth does not become an RParen token, instead resuming the
// enclosing string literal as the first byte of the next String or
// Interpolation token.
func (s *Scanner) scanOperator() token.Token {
	m := s.mark()
	ch := s.bump()

	switch ch {
	case '+':
		return s.emit(token.Plus, m)
	case '-':
		if s.peek() == '>' {
			s.bump()
			return s.emit(token.Arrow, m)
		}
		return s.emit(token.Minus, m)
	case '*':
		return s.emit(token.Star, m)
	case '/':
		return s.emit(token.Slash, m)
	case '%':
		return s.emit(token.Percent, m)
	case '=':
		if s.peek() == '=' {
			s.bump()
			return s.emit(token.EqEq, m)
		}
		return s.emit(token.Assign, m)
	case '!':
		if s.peek() == '=' {
			s.bump()
			return s.emit(token.BangEq, m)
		}
		return s.emit(token.Bang, m)
	case '~':
		return s.emit(token.Tilde, m)
	case '<':
		if s.peek() == '=' {
			s.bump()
			return s.emit(token.LtEq, m)
		}
		if s.peek() == '<' {
			s.bump()
			return s.emit(token.LtLt, m)
		}
		return s.emit(token.Lt, m)
	case '>':
		if s.peek() == '=' {
			s.bump()
			return s.emit(token.GtEq, m)
		}
		if s.peek() == '>' {
			s.bump()
			return s.emit(token.GtGt, m)
		}
		return s.emit(token.Gt, m)
	case '&':
		if s.peek() == '&' {
			s.bump()
			return s.emit(token.AmpAmp, m)
		}
		return s.emit(token.Amp, m)
	case '|':
		if s.peek() == '|' {
			s.bump()
			return s.emit(token.PipePipe, m)
		}
		return s.emit(token.Pipe, m)
	case '^':
		return s.emit(token.Caret, m)
	case '?':
		return s.emit(token.Question, m)
	case ':':
		return s.emit(token.Colon, m)
	case ',':
		return s.emit(token.Comma, m)
	case '.':
		if s.peek() == '.' {
			s.bump()
			if s.peek() == '.' {
				s.bump()
				return s.emit(token.DotDotDot, m)
			}
			return s.emit(token.DotDot, m)
		}
		return s.emit(token.Dot, m)
	case '(':
		if len(s.interpStack) > 0 {
			s.interpStack[len(s.interpStack)-1]++
		}
		return s.emit(token.LParen, m)
	case ')':
		if len(s.interpStack) > 0 {
			top := len(s.interpStack) - 1
			s.interpStack[top]--
			if s.interpStack[top] == 0 {
				s.interpStack = s.interpStack[:top]
				return s.resumeString(m)
			}
		}
		return s.emit(token.RParen, m)
	case '{':
		return s.emit(token.LBrace, m)
	case '}':
		return s.emit(token.RBrace, m)
	case '[':
		return s.emit(token.LBracket, m)
	case ']':
		return s.emit(token.RBracket, m)
	default:
		return s.emit(token.Error, m)
	}
}

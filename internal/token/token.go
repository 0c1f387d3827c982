package token

// Token is a single lexical token: its kind, its byte span into the
// source, and the exact source text it covers.
type Token struct {
	Kind   Kind
	Start  uint32
	Length uint32
	Text   string
}

// End returns the byte offset one past the token's last byte.
func (t Token) End() uint32 { return t.Start + t.Length }

// IsLiteral reports whether the token is a numeric, string, boolean, or
// null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String, Interpolation, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a Wren keyword.
func (t Token) IsKeyword() bool {
	_, ok := keywords[t.Text]
	return ok && t.Kind != Name && t.Kind != Field && t.Kind != StaticField
}

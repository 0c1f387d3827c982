package token

var kindNames = map[Kind]string{
	Error:         "Error",
	Eof:           "Eof",
	Line:          "Line",
	Name:          "Name",
	Field:         "Field",
	StaticField:   "StaticField",
	KwBreak:       "break",
	KwClass:       "class",
	KwConstruct:   "construct",
	KwContinue:    "continue",
	KwElse:        "else",
	KwFalse:       "false",
	KwFor:         "for",
	KwForeign:     "foreign",
	KwIf:          "if",
	KwImport:      "import",
	KwIn:          "in",
	KwIs:          "is",
	KwNull:        "null",
	KwReturn:      "return",
	KwStatic:      "static",
	KwSuper:       "super",
	KwThis:        "this",
	KwTrue:        "true",
	KwVar:         "var",
	KwWhile:       "while",
	Number:        "Number",
	String:        "String",
	Interpolation: "Interpolation",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Assign:        "=",
	EqEq:          "==",
	Bang:          "!",
	BangEq:        "!=",
	Tilde:         "~",
	Lt:            "<",
	LtEq:          "<=",
	LtLt:          "<<",
	Gt:            ">",
	GtEq:          ">=",
	GtGt:          ">>",
	Amp:           "&",
	AmpAmp:        "&&",
	Pipe:          "|",
	PipePipe:      "||",
	Caret:         "^",
	Question:      "?",
	Colon:         ":",
	Comma:         ",",
	Dot:           ".",
	DotDot:        "..",
	DotDotDot:     "...",
	Arrow:         "->",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	LBracket:      "[",
	RBracket:      "]",
}

// String returns a human-readable name for the token kind, used in
// diagnostic messages.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "?"
}

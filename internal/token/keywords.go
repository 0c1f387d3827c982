package token

var keywords = map[string]Kind{
	"break":     KwBreak,
	"class":     KwClass,
	"construct": KwConstruct,
	"continue":  KwContinue,
	"else":      KwElse,
	"false":     KwFalse,
	"for":       KwFor,
	"foreign":   KwForeign,
	"if":        KwIf,
	"import":    KwImport,
	"in":        KwIn,
	"is":        KwIs,
	"null":      KwNull,
	"return":    KwReturn,
	"static":    KwStatic,
	"super":     KwSuper,
	"this":      KwThis,
	"true":      KwTrue,
	"var":       KwVar,
	"while":     KwWhile,
}

// LookupKeyword reports whether ident is a Wren keyword, returning its kind.
// Keywords are case-sensitive; only exact lowercase spellings match.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// infixOperators are the token kinds that may name a binary operator method
// in a class body, per the operator-overload signature grammar.
var infixOperators = map[Kind]bool{
	Plus: true, Minus: true, Star: true, Slash: true, Percent: true,
	Lt: true, LtEq: true, LtLt: true, Gt: true, GtEq: true, GtGt: true,
	EqEq: true, BangEq: true, Amp: true, Pipe: true, Caret: true,
	DotDot: true, DotDotDot: true,
}

// IsInfixOperator reports whether kind can name an operator-overload method
// with a binary signature.
func IsInfixOperator(k Kind) bool { return infixOperators[k] }

// unaryPrefixOperators are the token kinds that may name a unary operator
// method in a class body.
var unaryPrefixOperators = map[Kind]bool{
	Bang: true, Tilde: true,
}

// IsUnaryPrefixOperator reports whether kind can name an operator-overload
// method with a unary prefix signature.
func IsUnaryPrefixOperator(k Kind) bool { return unaryPrefixOperators[k] }

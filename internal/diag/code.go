package diag

// Code identifies a diagnostic's origin. The vocabulary is closed: the
// analyzer never emits a code outside this set.
type Code string

const (
	// CodeParseError marks a syntax error raised by the parser.
	CodeParseError Code = "parse-error"
	// CodeDuplicateVariable marks a redeclaration in the same scope.
	CodeDuplicateVariable Code = "duplicate-variable"
	// CodeUndefinedVariable marks a reference to an unresolved name.
	CodeUndefinedVariable Code = "undefined-variable"
	// CodeTypeMismatch marks a declared-vs-inferred type conflict.
	CodeTypeMismatch Code = "type-mismatch"
	// CodeUnknownMethod marks a call to a method absent from every
	// known step of the receiver's superclass chain.
	CodeUnknownMethod Code = "unknown-method"
)

func (c Code) String() string { return string(c) }

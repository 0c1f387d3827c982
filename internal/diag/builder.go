package diag

// New constructs a Diagnostic directly.
func New(sev Severity, code Code, primary Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

// NewError is a shortcut for New with SevError.
func NewError(code Code, primary Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// NewWarning is a shortcut for New with SevWarning.
func NewWarning(code Code, primary Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

// WithNote returns a copy of d with a note appended.
func (d Diagnostic) WithNote(sp Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

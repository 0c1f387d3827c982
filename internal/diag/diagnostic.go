package diag

// Span is a byte range into a source buffer.
type Span struct {
	Start  uint32
	Length uint32
}

// End returns the offset one past the span's last byte.
func (s Span) End() uint32 { return s.Start + s.Length }

// Note is a secondary annotation attached to a Diagnostic, e.g.
// pointing back at a prior declaration.
type Note struct {
	Span Span
	Msg  string
}

// Diagnostic is a single finding from the scanner, parser, resolver,
// or type checker.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  Span
	Notes    []Note
}

package diag

// Reporter is the minimal contract each pipeline stage reports
// findings through. BagReporter is the sole implementation used by
// the analyzer; it exists as an interface so parser/resolver/checker
// code depends only on the capability, not the storage.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter adapts a Bag to Reporter.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// ReportBuilder accumulates a diagnostic's notes before emitting it to
// a Reporter exactly once.
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

// NewReportBuilder starts a builder bound to r.
func NewReportBuilder(r Reporter, sev Severity, code Code, primary Span, msg string) *ReportBuilder {
	return &ReportBuilder{reporter: r, diag: New(sev, code, primary, msg)}
}

// ReportError is a shortcut for NewReportBuilder with SevError.
func ReportError(r Reporter, code Code, primary Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevError, code, primary, msg)
}

// ReportWarning is a shortcut for NewReportBuilder with SevWarning.
func ReportWarning(r Reporter, code Code, primary Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevWarning, code, primary, msg)
}

// WithNote appends a note to the diagnostic under construction.
func (b *ReportBuilder) WithNote(sp Span, msg string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag.Notes = append(b.diag.Notes, Note{Span: sp, Msg: msg})
	return b
}

// Emit sends the diagnostic to the underlying reporter exactly once.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	if b.reporter != nil {
		b.reporter.Report(b.diag)
	}
	b.emitted = true
}

// Diagnostic returns the accumulated diagnostic without emitting it.
func (b *ReportBuilder) Diagnostic() Diagnostic {
	if b == nil {
		return Diagnostic{}
	}
	return b.diag
}

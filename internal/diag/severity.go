package diag

// Severity ranks a diagnostic's importance.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for advisory findings from the type checker.
	SevWarning
	// SevError is for diagnostics that count as an analysis failure.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return "unknown"
	}
}

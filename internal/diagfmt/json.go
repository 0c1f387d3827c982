package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/enci/wren-analyzer/internal/diag"
	"github.com/enci/wren-analyzer/internal/source"
)

// spanJSON mirrors spec.md §6's `{ start: byteOffset, length:
// byteCount }` diagnostic span shape.
type spanJSON struct {
	Start  uint32 `json:"start"`
	Length uint32 `json:"length"`
}

type noteJSON struct {
	Message string   `json:"message"`
	Span    spanJSON `json:"span"`
}

type diagnosticJSON struct {
	Message  string     `json:"message"`
	Severity string     `json:"severity"`
	Span     spanJSON   `json:"span"`
	Source   string     `json:"source"`
	Code     string     `json:"code,omitempty"`
	Notes    []noteJSON `json:"notes,omitempty"`
}

func toDiagnosticJSON(d diag.Diagnostic) diagnosticJSON {
	out := diagnosticJSON{
		Message:  d.Message,
		Severity: d.Severity.String(),
		Span:     spanJSON{Start: d.Primary.Start, Length: d.Primary.Length},
		Source:   "wren-analyzer",
		Code:     d.Code.String(),
	}
	for _, n := range d.Notes {
		out.Notes = append(out.Notes, noteJSON{
			Message: n.Msg,
			Span:    spanJSON{Start: n.Span.Start, Length: n.Span.Length},
		})
	}
	return out
}

// JSON writes diags as a single JSON array in pipeline order, per
// spec.md §6's diagnostic record contract. buf is unused for the
// record shape itself but kept for signature symmetry with Pretty and
// MsgPack, and for callers that may want to extend it with path info.
func JSON(w io.Writer, diags []diag.Diagnostic, buf *source.Buffer, opts JSONOpts) error {
	_ = opts
	_ = buf
	out := make([]diagnosticJSON, 0, len(diags))
	for _, d := range diags {
		out = append(out, toDiagnosticJSON(d))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/enci/wren-analyzer/internal/diag"
	"github.com/enci/wren-analyzer/internal/source"
)

// MsgPack encodes diags in the same array shape as JSON, for tooling
// that wants to avoid a JSON decode.
func MsgPack(w io.Writer, diags []diag.Diagnostic, buf *source.Buffer) error {
	_ = buf
	out := make([]diagnosticJSON, 0, len(diags))
	for _, d := range diags {
		out = append(out, toDiagnosticJSON(d))
	}
	return msgpack.NewEncoder(w).Encode(out)
}

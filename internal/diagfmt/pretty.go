package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/enci/wren-analyzer/internal/diag"
	"github.com/enci/wren-analyzer/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func displayPath(path string, mode PathMode) string {
	if mode == PathModeBasename {
		return filepath.Base(path)
	}
	return path
}

// Pretty writes diags in `[path line:col] Severity: message` form,
// each followed by its source line and a caret underline of length
// max(1, span.length) starting at column span.start.
func Pretty(w io.Writer, diags []diag.Diagnostic, buf *source.Buffer, opts PrettyOpts) {
	path := displayPath(buf.Path(), opts.PathMode)
	for _, d := range diags {
		line := buf.LineAt(d.Primary.Start)
		col := buf.ColumnAt(d.Primary.Start)

		sevText := strings.ToUpper(d.Severity.String()[:1]) + d.Severity.String()[1:]
		if opts.Color {
			sevText = severityColor(d.Severity).Sprint(sevText)
		}
		fmt.Fprintf(w, "[%s %d:%d] %s: %s\n", path, line, col, sevText, d.Message)

		underlineLen := d.Primary.Length
		if underlineLen == 0 {
			underlineLen = 1
		}
		fmt.Fprintln(w, buf.LineText(line))
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", int(col-1)), strings.Repeat("^", int(underlineLen)))

		for _, note := range d.Notes {
			noteLine := buf.LineAt(note.Span.Start)
			noteCol := buf.ColumnAt(note.Span.Start)
			fmt.Fprintf(w, "  note: [%s %d:%d] %s\n", path, noteLine, noteCol, note.Msg)
		}
	}
}

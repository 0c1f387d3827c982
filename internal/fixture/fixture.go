// Package fixture implements the expected-diagnostic marker
// convention used by the analyzer's own testdata fixtures: a line
// containing `// expect warning` or `// expect error` (optionally
// `line N` to target another line) records an expectation that the
// analyzer must produce a diagnostic of that severity on that line.
// `// skip:` or `// nontest` anywhere in the file marks it as
// non-executing.
package fixture

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strconv"

	"github.com/enci/wren-analyzer/internal/diag"
)

// Expectation is a single `// expect ...` marker parsed from a fixture.
type Expectation struct {
	Line     uint32
	Severity diag.Severity
}

var expectPattern = regexp.MustCompile(`//\s*expect\s+(warning|error)(?:\s+line\s+(\d+))?`)

// Parse scans text for expectation markers and the skip/nontest
// sentinel. Line numbers are 1-based and count every line including
// empty ones, matching the fixture's own line numbering.
func Parse(text []byte) (expectations []Expectation, skip bool) {
	scanner := bufio.NewScanner(bytes.NewReader(text))
	var line uint32
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if bytes.Contains([]byte(text), []byte("// skip:")) || bytes.Contains([]byte(text), []byte("// nontest")) {
			skip = true
		}
		m := expectPattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		target := line
		if m[2] != "" {
			n, err := strconv.ParseUint(m[2], 10, 32)
			if err == nil {
				target = uint32(n)
			}
		}
		sev := diag.SevWarning
		if m[1] == "error" {
			sev = diag.SevError
		}
		expectations = append(expectations, Expectation{Line: target, Severity: sev})
	}
	return expectations, skip
}

// LineResolver reports the 1-based line containing offset.
// *source.Buffer satisfies it; taking an interface keeps this package
// from importing source (the harness only needs offset-to-line
// resolution for already-parsed diagnostics, not general-purpose
// buffer access).
type LineResolver interface {
	LineAt(offset uint32) uint32
}

// Check matches expectations against the diagnostics an analysis run
// produced, returning a description of every unmet or unexpected
// diagnostic. An empty result means the fixture's expectations were
// satisfied exactly.
func Check(expectations []Expectation, diags []diag.Diagnostic, lines LineResolver) []string {
	remaining := make([]Expectation, len(expectations))
	copy(remaining, expectations)

	var problems []string
	for _, d := range diags {
		line := lines.LineAt(d.Primary.Start)
		matched := -1
		for i, exp := range remaining {
			if exp.Line == line && exp.Severity == d.Severity {
				matched = i
				break
			}
		}
		if matched == -1 {
			problems = append(problems, fmt.Sprintf("unexpected %s at line %d: %s", d.Severity, line, d.Message))
			continue
		}
		remaining = append(remaining[:matched], remaining[matched+1:]...)
	}
	for _, exp := range remaining {
		problems = append(problems, fmt.Sprintf("missing expected %s at line %d", exp.Severity, exp.Line))
	}
	return problems
}

package diagfmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/enci/wren-analyzer/internal/diag"
	"github.com/enci/wren-analyzer/internal/source"
)

func sampleDiags() []diag.Diagnostic {
	return []diag.Diagnostic{
		{
			Severity: diag.SevWarning,
			Code:     diag.CodeTypeMismatch,
			Message:  `x is declared as Num but initialized with a String`,
			Primary:  diag.Span{Start: 4, Length: 1},
		},
	}
}

func TestPrettyWritesLocationSeverityAndCaret(t *testing.T) {
	buf := source.New("t.wren", []byte("var x: Num = \"hi\""))
	var out bytes.Buffer

	Pretty(&out, sampleDiags(), buf, PrettyOpts{})

	text := out.String()
	assert.Contains(t, text, "[t.wren 1:5] Warning: x is declared as Num but initialized with a String")
	assert.Contains(t, text, "var x: Num = \"hi\"")
	assert.Contains(t, text, "    ^")
}

func TestPrettyBasenamePathMode(t *testing.T) {
	buf := source.New("/a/b/t.wren", []byte("var x: Num = \"hi\""))
	var out bytes.Buffer

	Pretty(&out, sampleDiags(), buf, PrettyOpts{PathMode: PathModeBasename})

	assert.Contains(t, out.String(), "[t.wren 1:5]")
	assert.NotContains(t, out.String(), "/a/b/")
}

func TestPrettyColorKeepsSeverityText(t *testing.T) {
	buf := source.New("t.wren", []byte("var x: Num = \"hi\""))
	var out bytes.Buffer

	Pretty(&out, sampleDiags(), buf, PrettyOpts{Color: true})

	assert.Contains(t, out.String(), "Warning")
}

func TestPrettyCaretLengthMatchesSpanWithFloorOfOne(t *testing.T) {
	buf := source.New("t.wren", []byte("x = 1"))
	zeroLen := []diag.Diagnostic{{
		Severity: diag.SevError,
		Code:     diag.CodeUndefinedVariable,
		Message:  "undefined variable x",
		Primary:  diag.Span{Start: 0, Length: 0},
	}}
	var out bytes.Buffer

	Pretty(&out, zeroLen, buf, PrettyOpts{})

	assert.Contains(t, out.String(), "\n^\n")
}

func TestJSONEncodesArrayWithSpecShape(t *testing.T) {
	buf := source.New("t.wren", []byte("var x: Num = \"hi\""))
	var out bytes.Buffer

	err := JSON(&out, sampleDiags(), buf, JSONOpts{})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, `"message"`)
	assert.Contains(t, text, `"severity": "warning"`)
	assert.Contains(t, text, `"start": 4`)
	assert.Contains(t, text, `"length": 1`)
	assert.Contains(t, text, `"source": "wren-analyzer"`)
	assert.Contains(t, text, `"code": "type-mismatch"`)
}

func TestJSONEmptyDiagsEncodesEmptyArray(t *testing.T) {
	buf := source.New("t.wren", []byte(""))
	var out bytes.Buffer

	err := JSON(&out, nil, buf, JSONOpts{})
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out.String())
}

func TestMsgPackRoundTripsSameDataAsJSON(t *testing.T) {
	buf := source.New("t.wren", []byte("var x: Num = \"hi\""))
	var out bytes.Buffer

	err := MsgPack(&out, sampleDiags(), buf)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Bytes())

	var decoded []diagnosticJSON
	require.NoError(t, msgpack.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, []diagnosticJSON{toDiagnosticJSON(sampleDiags()[0])}, decoded)
}

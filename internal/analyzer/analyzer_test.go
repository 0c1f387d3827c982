package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enci/wren-analyzer/internal/diag"
)

func TestAnalyzeVarTypeMismatch(t *testing.T) {
	result := Analyze([]byte(`var x: Num = "hello"`), "t.wren")
	require.Len(t, result.Diagnostics, 1)
	d := result.Diagnostics[0]
	assert.Equal(t, diag.CodeTypeMismatch, d.Code)
	assert.Contains(t, d.Message, "Num")
	assert.Contains(t, d.Message, "String")
}

func TestAnalyzeAssignmentMismatchExactlyOneWarning(t *testing.T) {
	result := Analyze([]byte("var x: Num = 42\nx = \"oops\""), "t.wren")
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, diag.SevWarning, result.Diagnostics[0].Severity)
}

func TestAnalyzeUnknownStaticMethodMentionsClassAndName(t *testing.T) {
	src := "class Foo {\n  construct new() {}\n  static bar() { 1 }\n}\nFoo.baz()"
	result := Analyze([]byte(src), "t.wren")
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, diag.CodeUnknownMethod, result.Diagnostics[0].Code)
	assert.Contains(t, result.Diagnostics[0].Message, "Foo")
	assert.Contains(t, result.Diagnostics[0].Message, "baz")
}

func TestAnalyzeSystemPrintKnownFooUnknown(t *testing.T) {
	clean := Analyze([]byte(`System.print("x")`), "t.wren")
	assert.Empty(t, clean.Diagnostics)

	dirty := Analyze([]byte("System.foo()"), "t.wren")
	require.Len(t, dirty.Diagnostics, 1)
	assert.Equal(t, diag.CodeUnknownMethod, dirty.Diagnostics[0].Code)
}

func TestAnalyzeUserInstanceMethodSwap(t *testing.T) {
	ok := Analyze([]byte("class Foo {\n  construct new() {}\n  bar() { \"\" }\n}\nvar f: Foo = Foo.new()\nf.bar()"), "t.wren")
	assert.Empty(t, ok.Diagnostics)

	warn := Analyze([]byte("class Foo {\n  construct new() {}\n  bar() { \"\" }\n}\nvar f: Foo = Foo.new()\nf.baz()"), "t.wren")
	require.Len(t, warn.Diagnostics, 1)
	assert.Equal(t, diag.CodeUnknownMethod, warn.Diagnostics[0].Code)
}

func TestAnalyzeInferredStringMethods(t *testing.T) {
	ok := Analyze([]byte("var s = \"hello\"\ns.contains(\"h\")"), "t.wren")
	assert.Empty(t, ok.Diagnostics)

	warn := Analyze([]byte("var s = \"hello\"\ns.nonsense()"), "t.wren")
	require.Len(t, warn.Diagnostics, 1)
	assert.Contains(t, warn.Diagnostics[0].Message, "String")
	assert.Contains(t, warn.Diagnostics[0].Message, "nonsense")
}

func TestAnalyzeTypeCheckerSilentAfterResolverError(t *testing.T) {
	result := Analyze([]byte("var x: Num = undeclared\nvar x = 1"), "t.wren")
	for _, d := range result.Diagnostics {
		assert.NotEqual(t, diag.CodeTypeMismatch, d.Code)
		assert.NotEqual(t, diag.CodeUnknownMethod, d.Code)
	}
}

func TestAnalyzeOrdersParserDiagnosticsBeforeResolverDiagnostics(t *testing.T) {
	// A parse error near the top of the file and an unresolved name
	// further down; pipeline order (not offset order) must put the
	// parser's diagnostic first regardless of where either token sits.
	src := "var 5 = 1\nSystem.print(undeclared)"
	result := Analyze([]byte(src), "t.wren")
	require.Len(t, result.Diagnostics, 2)
	assert.Equal(t, diag.CodeParseError, result.Diagnostics[0].Code)
	assert.Equal(t, diag.CodeUndefinedVariable, result.Diagnostics[1].Code)
}

func TestParseOnlyPopulatesOnlyParserDiagnostics(t *testing.T) {
	result := ParseOnly([]byte("var x = "), "t.wren")
	found := false
	for _, d := range result.Diagnostics {
		if d.Code == diag.CodeParseError {
			found = true
		}
	}
	assert.True(t, found)
}

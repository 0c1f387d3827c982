package typecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enci/wren-analyzer/internal/diag"
	"github.com/enci/wren-analyzer/internal/parser"
	"github.com/enci/wren-analyzer/internal/source"
)

func checkSource(t *testing.T, src string) *diag.Bag {
	t.Helper()
	buf := source.New("t.wren", []byte(src))
	bag := diag.NewBag(0)
	reporter := diag.BagReporter{Bag: bag}
	p := parser.New(buf, parser.Options{Reporter: reporter})
	module := p.ParseModule()
	New(reporter).Check(module)
	return bag
}

func codesOf(bag *diag.Bag) []diag.Code {
	var cs []diag.Code
	for _, d := range bag.Items() {
		cs = append(cs, d.Code)
	}
	return cs
}

func TestTypecheckVarDeclaredTypeMismatch(t *testing.T) {
	bag := checkSource(t, "var x: String = 5")
	assert.Contains(t, codesOf(bag), diag.CodeTypeMismatch)
}

func TestTypecheckVarDeclaredTypeMatches(t *testing.T) {
	bag := checkSource(t, "var x: Num = 5")
	assert.Empty(t, codesOf(bag))
}

func TestTypecheckAssignmentMismatch(t *testing.T) {
	bag := checkSource(t, "var x: Num = 1\nx = \"oops\"")
	assert.Contains(t, codesOf(bag), diag.CodeTypeMismatch)
}

func TestTypecheckMethodReturnTypeMismatch(t *testing.T) {
	bag := checkSource(t, "class Foo {\n  bar() -> String {\n    return 5\n  }\n}")
	assert.Contains(t, codesOf(bag), diag.CodeTypeMismatch)
}

func TestTypecheckMethodReturnTypeMatches(t *testing.T) {
	bag := checkSource(t, "class Foo {\n  bar() -> Num {\n    return 5\n  }\n}")
	assert.Empty(t, codesOf(bag))
}

func TestTypecheckUnknownMethodOnCoreClass(t *testing.T) {
	bag := checkSource(t, "var x: Num = 5\nx.frobnicate()")
	assert.Contains(t, codesOf(bag), diag.CodeUnknownMethod)
}

func TestTypecheckKnownMethodViaCoreSuperclass(t *testing.T) {
	bag := checkSource(t, "var x: List = []\nx.each")
	assert.Empty(t, codesOf(bag))
}

func TestTypecheckUnknownReceiverTypeIsSkipped(t *testing.T) {
	bag := checkSource(t, "foo.doAnything()")
	assert.Empty(t, codesOf(bag))
}

func TestTypecheckUserClassInstanceMethodKnown(t *testing.T) {
	bag := checkSource(t, "class Foo {\n  construct new() {}\n  bar() {}\n}\nvar x: Foo = Foo.new()\nx.bar()")
	assert.Empty(t, codesOf(bag))
}

func TestTypecheckUserClassUnknownInstanceMethod(t *testing.T) {
	bag := checkSource(t, "class Foo {\n  construct new() {}\n  bar() {}\n}\nvar x: Foo = Foo.new()\nx.missing()")
	assert.Contains(t, codesOf(bag), diag.CodeUnknownMethod)
}

func TestTypecheckUserClassUnknownStaticMethod(t *testing.T) {
	bag := checkSource(t, "class Foo {\n  construct new() {}\n}\nFoo.wrong()")
	assert.Contains(t, codesOf(bag), diag.CodeUnknownMethod)
}

func TestTypecheckUserClassInheritedInstanceMethod(t *testing.T) {
	bag := checkSource(t, "class Base {\n  greet() {}\n}\nclass Foo is Base {\n  construct new() {}\n}\nvar x: Foo = Foo.new()\nx.greet()")
	assert.Empty(t, codesOf(bag))
}

func TestTypecheckThisResolvesToEnclosingClass(t *testing.T) {
	bag := checkSource(t, "class Foo {\n  bar() {}\n  baz() {\n    this.bar()\n  }\n}")
	assert.Empty(t, codesOf(bag))
}

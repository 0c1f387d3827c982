// Package analyzer wires the scanner, parser, resolver, and type
// checker into the library's public entry points.
package analyzer

import (
	"github.com/enci/wren-analyzer/internal/ast"
	"github.com/enci/wren-analyzer/internal/diag"
	"github.com/enci/wren-analyzer/internal/parser"
	"github.com/enci/wren-analyzer/internal/resolver"
	"github.com/enci/wren-analyzer/internal/source"
	"github.com/enci/wren-analyzer/internal/typecheck"
)

// Result is the outcome of one analysis run: the parsed module (always
// populated, even on parse errors, per the parser's error-recovery
// contract) and every diagnostic collected, in pipeline order.
type Result struct {
	Module      *ast.Module
	Diagnostics []diag.Diagnostic
}

// Analyze runs the full pipeline: parse, resolve, then type-check
// unless parsing or resolution already produced an error-severity
// diagnostic.
func Analyze(text []byte, path string) Result {
	buf := source.New(path, text)
	bag := diag.NewBag(0)
	reporter := diag.BagReporter{Bag: bag}

	p := parser.New(buf, parser.Options{Reporter: reporter})
	module := p.ParseModule()

	resolver.New(buf, reporter).Resolve(module)

	if !bag.HasErrors() {
		typecheck.New(reporter).Check(module)
	}

	return Result{Module: module, Diagnostics: bag.Items()}
}

// ParseOnly runs just the parser stage, returning the same result
// shape with only parser diagnostics populated.
func ParseOnly(text []byte, path string) Result {
	buf := source.New(path, text)
	bag := diag.NewBag(0)
	reporter := diag.BagReporter{Bag: bag}

	p := parser.New(buf, parser.Options{Reporter: reporter})
	module := p.ParseModule()

	return Result{Module: module, Diagnostics: bag.Items()}
}

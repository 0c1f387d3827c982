// Package typecheck implements a lint-grade consistency checker over a
// resolved module: it never reports an error, only advisory warnings
// about declared-vs-inferred type conflicts and calls to methods that
// cannot be found on any known step of a receiver's class chain.
package typecheck

import (
	"github.com/enci/wren-analyzer/internal/ast"
	"github.com/enci/wren-analyzer/internal/diag"
	"github.com/enci/wren-analyzer/internal/token"
	"github.com/enci/wren-analyzer/internal/visitor"
)

type classInfo struct {
	InstanceMethods map[string]bool
	StaticMethods   map[string]bool
	Superclass      string
}

type envFrame struct {
	declared map[string]string
	inferred map[string]string
}

type env struct{ frames []*envFrame }

func (e *env) push() { e.frames = append(e.frames, &envFrame{declared: map[string]string{}, inferred: map[string]string{}}) }
func (e *env) pop()  { e.frames = e.frames[:len(e.frames)-1] }

func (e *env) declare(name, typ string) {
	top := e.frames[len(e.frames)-1]
	top.declared[name] = typ
	top.inferred[name] = typ
}

func (e *env) setInferredOnly(name, typ string) {
	e.frames[len(e.frames)-1].inferred[name] = typ
}

func (e *env) declaredType(name string) (string, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if t, ok := e.frames[i].declared[name]; ok {
			return t, true
		}
	}
	return "", false
}

func (e *env) inferredType(name string) string {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if t, ok := e.frames[i].inferred[name]; ok {
			return t
		}
	}
	return ""
}

// Checker is a single-use visitor over one module.
type Checker struct {
	visitor.Base

	reporter    diag.Reporter
	userClasses map[string]*classInfo
	classStack  []string
	env         *env

	returnType    string
	hasReturnType bool
}

// New creates a Checker reporting through r.
func New(reporter diag.Reporter) *Checker {
	c := &Checker{reporter: reporter, env: &env{}}
	c.env.push() // module-level frame, for top-level var declarations
	return c
}

// Check runs the full pass over m. The caller is responsible for
// skipping this call entirely when an earlier stage already reported
// an error-severity diagnostic.
func (c *Checker) Check(m *ast.Module) {
	c.userClasses = buildRegistry(m)
	visitor.Walk(c, m)
}

func (c *Checker) warnAt(code diag.Code, tok token.Token, msg string) {
	if c.reporter == nil {
		return
	}
	length := tok.Length
	if length == 0 {
		length = 1
	}
	c.reporter.Report(diag.NewWarning(code, diag.Span{Start: tok.Start, Length: length}, msg))
}

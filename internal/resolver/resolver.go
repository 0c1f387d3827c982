// Package resolver walks a parsed module maintaining a lexical scope
// stack, flagging duplicate declarations and unresolved names per
// Wren's class-body scoping rules.
package resolver

import (
	"fmt"

	"github.com/enci/wren-analyzer/internal/ast"
	"github.com/enci/wren-analyzer/internal/diag"
	"github.com/enci/wren-analyzer/internal/source"
	"github.com/enci/wren-analyzer/internal/token"
	"github.com/enci/wren-analyzer/internal/visitor"
)

// builtins are pre-populated into the module scope; they never trigger
// undefined-variable and never carry a real declaration site.
var builtins = []string{
	"Bool", "Class", "Fiber", "Fn", "List", "Map", "MapKeySequence",
	"MapSequence", "MapValueSequence", "Null", "Num", "Object", "Range",
	"Sequence", "String", "StringByteSequence", "StringCodePointSequence",
	"System", "WhereSequence",
}

type scopeKind uint8

const (
	scopeNormal scopeKind = iota
	scopeClass
)

type declSite struct {
	Tok     token.Token
	Builtin bool
}

type scope struct {
	kind  scopeKind
	names map[string]declSite
}

func newScope(kind scopeKind) *scope {
	return &scope{kind: kind, names: make(map[string]declSite)}
}

// Resolver implements visitor.Visitor.
type Resolver struct {
	visitor.Base

	buf      *source.Buffer
	reporter diag.Reporter
	scopes   []*scope

	bareImport   bool
	forwardOrder []string
	forwardTok   map[string]token.Token
}

// New creates a Resolver with a fresh module scope pre-populated with
// Wren's built-in core classes.
func New(buf *source.Buffer, reporter diag.Reporter) *Resolver {
	module := newScope(scopeNormal)
	for _, name := range builtins {
		module.names[name] = declSite{Builtin: true}
	}
	return &Resolver{
		buf:        buf,
		reporter:   reporter,
		scopes:     []*scope{module},
		forwardTok: make(map[string]token.Token),
	}
}

// Resolve walks m, resolving and declaring names in traversal order.
func (r *Resolver) Resolve(m *ast.Module) {
	visitor.Walk(r, m)
}

// reportUndefined always reports at error severity: undefined-variable
// is a hard resolution failure, not a lint finding.
func (r *Resolver) reportUndefined(tok token.Token, name string) {
	if r.reporter == nil {
		return
	}
	length := tok.Length
	if length == 0 {
		length = 1
	}
	r.reporter.Report(diag.NewError(diag.CodeUndefinedVariable,
		diag.Span{Start: tok.Start, Length: length}, fmt.Sprintf("undefined variable %q", name)))
}

func (r *Resolver) reportDuplicate(tok token.Token, name string, prior declSite) {
	if r.reporter == nil {
		return
	}
	msg := fmt.Sprintf("%q is already declared in this scope", name)
	if !prior.Builtin {
		msg = fmt.Sprintf("%s (previous declaration on line %d)", msg, r.buf.LineAt(prior.Tok.Start))
	}
	length := tok.Length
	if length == 0 {
		length = 1
	}
	r.reporter.Report(diag.NewError(diag.CodeDuplicateVariable, diag.Span{Start: tok.Start, Length: length}, msg))
}

func (r *Resolver) declare(name string, tok token.Token) {
	top := r.scopes[len(r.scopes)-1]
	if top.kind == scopeClass {
		return
	}
	if prior, ok := top.names[name]; ok {
		r.reportDuplicate(tok, name, prior)
		return
	}
	top.names[name] = declSite{Tok: tok}
}

func isLowerInitial(name string) bool {
	return len(name) > 0 && name[0] >= 'a' && name[0] <= 'z'
}

func (r *Resolver) resolve(name string, useTok token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		s := r.scopes[i]
		if s.kind == scopeClass {
			if isLowerInitial(name) {
				return
			}
			if _, ok := r.scopes[0].names[name]; ok {
				return
			}
			if _, ok := r.forwardTok[name]; !ok {
				r.forwardTok[name] = useTok
				r.forwardOrder = append(r.forwardOrder, name)
			}
			return
		}
		if _, ok := s.names[name]; ok {
			return
		}
	}
	r.reportUndefined(useTok, name)
}

func (r *Resolver) begin()      { r.scopes = append(r.scopes, newScope(scopeNormal)) }
func (r *Resolver) end()        { r.scopes = r.scopes[:len(r.scopes)-1] }
func (r *Resolver) beginClass() { r.scopes = append(r.scopes, newScope(scopeClass)) }
func (r *Resolver) endClass()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) checkForwardReferences() {
	for _, name := range r.forwardOrder {
		if _, ok := r.scopes[0].names[name]; !ok {
			r.reportUndefined(r.forwardTok[name], name)
		}
	}
}

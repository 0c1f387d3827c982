package typecheck

import (
	"fmt"

	"github.com/enci/wren-analyzer/internal/ast"
	"github.com/enci/wren-analyzer/internal/diag"
	"github.com/enci/wren-analyzer/internal/visitor"
)

// VisitStmt covers the Var, For, Class, and Return rules; every other
// statement kind just recurses.
func (c *Checker) VisitStmt(s ast.Stmt, walk func(ast.Node)) {
	switch node := s.(type) {
	case *ast.Var:
		c.checkVar(node)
		walk(nil)
	case *ast.For:
		if node.Type != nil {
			c.env.push()
			c.env.declare(node.Var.Text, node.Type.Name.Text)
			walk(nil)
			c.env.pop()
		} else {
			walk(nil)
		}
	case *ast.Class:
		c.classStack = append(c.classStack, node.Name.Text)
		for _, m := range node.Methods {
			c.visitMethod(m)
		}
		c.classStack = c.classStack[:len(c.classStack)-1]
	case *ast.Return:
		c.checkReturn(node)
		walk(nil)
	default:
		walk(nil)
	}
}

func (c *Checker) checkVar(node *ast.Var) {
	if node.Type != nil {
		declared := node.Type.Name.Text
		c.env.declare(node.Name.Text, declared)
		if node.Value != nil {
			if lt := literalType(node.Value); lt != "" && lt != declared {
				c.warnAt(diag.CodeTypeMismatch, node.Name,
					fmt.Sprintf("%s is declared as %s but initialized with a %s", node.Name.Text, declared, lt))
			}
		}
		return
	}
	if node.Value != nil {
		if lt := literalType(node.Value); lt != "" {
			c.env.setInferredOnly(node.Name.Text, lt)
		}
	}
}

func (c *Checker) checkReturn(node *ast.Return) {
	if !c.hasReturnType {
		return
	}
	if node.Value != nil {
		if lt := literalType(node.Value); lt != "" && lt != c.returnType {
			c.warnAt(diag.CodeTypeMismatch, exprToken(node.Value),
				fmt.Sprintf("return value has type %s but the method returns %s", lt, c.returnType))
		}
		return
	}
	if c.returnType != "Null" {
		c.warnAt(diag.CodeTypeMismatch, node.Tok,
			fmt.Sprintf("bare return produces Null but the method returns %s", c.returnType))
	}
}

// visitMethod implements the Method-entry rule: push a frame, declare
// annotated parameters, record the declared return type for the
// duration of the body, then re-enter the generic Body traversal.
func (c *Checker) visitMethod(m *ast.Method) {
	if m.Foreign || m.Body == nil {
		return
	}
	c.env.push()
	for _, p := range m.Params {
		if p.Type != nil {
			c.env.declare(p.Name.Text, p.Type.Name.Text)
		}
	}
	prevType, prevHas := c.returnType, c.hasReturnType
	if m.ReturnType != nil {
		c.returnType, c.hasReturnType = m.ReturnType.Name.Text, true
	} else {
		c.returnType, c.hasReturnType = "", false
	}

	visitor.WalkBody(c, m.Body)

	c.returnType, c.hasReturnType = prevType, prevHas
	c.env.pop()
}

// VisitBody covers the Body rule. It runs for method bodies (entered
// from visitMethod, inside the frame it pushed) and for block-argument
// bodies; `for`/`while`/`if` blocks are ast.Block statements and do not
// pass through here.
func (c *Checker) VisitBody(b *ast.Body, walk func(ast.Node)) {
	c.env.push()
	for _, p := range b.Params {
		if p.Type != nil {
			c.env.declare(p.Name.Text, p.Type.Name.Text)
		}
	}
	if b.Expression != nil && c.hasReturnType {
		if lt := literalType(b.Expression); lt != "" && lt != c.returnType {
			c.warnAt(diag.CodeTypeMismatch, exprToken(b.Expression),
				fmt.Sprintf("expression has type %s but the method returns %s", lt, c.returnType))
		}
	}
	walk(nil)
	c.env.pop()
}

// VisitExpr covers the Assignment and Call rules.
func (c *Checker) VisitExpr(e ast.Expr, walk func(ast.Node)) {
	switch node := e.(type) {
	case *ast.Assignment:
		c.checkAssignment(node)
	case *ast.Call:
		if node.Receiver != nil {
			c.checkCall(node)
		}
	}
	walk(nil)
}

func (c *Checker) checkAssignment(node *ast.Assignment) {
	target, ok := node.Target.(*ast.Call)
	if !ok || target.Receiver != nil || target.HasArguments {
		return
	}
	declared, ok := c.env.declaredType(target.Name.Text)
	if !ok {
		return
	}
	if lt := literalType(node.Value); lt != "" && lt != declared {
		c.warnAt(diag.CodeTypeMismatch, target.Name,
			fmt.Sprintf("%s is declared as %s but assigned a %s", target.Name.Text, declared, lt))
	}
}

func (c *Checker) checkCall(node *ast.Call) {
	name := node.Name.Text

	if recv, ok := node.Receiver.(*ast.Call); ok && recv.Receiver == nil &&
		!recv.HasArguments && isUpperInitial(recv.Name.Text) {
		className := recv.Name.Text
		if info, ok := c.userClasses[className]; ok {
			if !info.StaticMethods[name] {
				c.warnAt(diag.CodeUnknownMethod, node.Name,
					fmt.Sprintf("class %s has no static method %q", className, name))
			}
			return
		}
		if methods, ok := coreStaticMethods[className]; ok {
			if !contains(methods, name) {
				c.warnAt(diag.CodeUnknownMethod, node.Name,
					fmt.Sprintf("class %s has no static method %q", className, name))
			}
		}
		return
	}

	recvType := c.inferType(node.Receiver)
	if recvType == "" || recvType == "Null" {
		return
	}
	found, anyKnown := c.methodExistsOnChain(recvType, name)
	if !found && anyKnown {
		c.warnAt(diag.CodeUnknownMethod, node.Name,
			fmt.Sprintf("no known method %q on %s", name, recvType))
	}
}

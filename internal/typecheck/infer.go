package typecheck

import "github.com/enci/wren-analyzer/internal/ast"

// literalType returns the type name a literal expression carries on
// its face, or "" if e is not a literal this checker recognizes.
func literalType(e ast.Expr) string {
	switch e.(type) {
	case *ast.Num:
		return "Num"
	case *ast.String:
		return "String"
	case *ast.Bool:
		return "Bool"
	case *ast.Null:
		return "Null"
	case *ast.List:
		return "List"
	case *ast.Map:
		return "Map"
	case *ast.Interpolation:
		return "String"
	default:
		return ""
	}
}

// inferType extends literalType with a few structural cases: `this`
// resolves to the enclosing class, a bare name looks up the
// environment's inferred type, a parenthesized expression delegates
// to its inner expression, and `ClassName.new(...)` is read as
// constructing an instance of ClassName.
func (c *Checker) inferType(e ast.Expr) string {
	if t := literalType(e); t != "" {
		return t
	}
	switch node := e.(type) {
	case *ast.This:
		if len(c.classStack) > 0 {
			return c.classStack[len(c.classStack)-1]
		}
		return ""
	case *ast.Grouping:
		return c.inferType(node.Inner)
	case *ast.Call:
		if node.Receiver == nil {
			if !node.HasArguments {
				return c.env.inferredType(node.Name.Text)
			}
			return ""
		}
		if node.Name.Text == "new" {
			if recv, ok := node.Receiver.(*ast.Call); ok && recv.Receiver == nil &&
				!recv.HasArguments && isUpperInitial(recv.Name.Text) {
				return recv.Name.Text
			}
		}
		return ""
	default:
		return ""
	}
}

// methodExistsOnChain walks startType's known instance-method chain,
// stopping at the first class not present in either registry. found
// reports whether name was located; anyKnown reports whether at least
// one step of the chain was a recognized class, which callers use to
// decide whether an unresolved name is worth a warning.
func (c *Checker) methodExistsOnChain(startType, name string) (found, anyKnown bool) {
	visited := make(map[string]bool)
	current := startType
	for current != "" && !visited[current] {
		visited[current] = true
		if info, ok := c.userClasses[current]; ok {
			anyKnown = true
			if info.InstanceMethods[name] {
				return true, anyKnown
			}
			current = info.Superclass
			continue
		}
		if methods, ok := coreInstanceMethods[current]; ok {
			anyKnown = true
			if contains(methods, name) {
				return true, anyKnown
			}
			current = coreSuperclassOf[current]
			continue
		}
		break
	}
	if contains(coreInstanceMethods["Object"], name) {
		return true, anyKnown
	}
	return false, anyKnown
}

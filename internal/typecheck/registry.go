package typecheck

import "github.com/enci/wren-analyzer/internal/ast"

// buildRegistry pre-scans a module's top-level class definitions,
// recording each class's instance and static method names and its
// superclass (if any). Wren classes are not nested, so a top-level
// scan is exhaustive.
func buildRegistry(m *ast.Module) map[string]*classInfo {
	reg := make(map[string]*classInfo)
	for _, s := range m.Statements {
		cls, ok := s.(*ast.Class)
		if !ok {
			continue
		}
		info := &classInfo{
			InstanceMethods: make(map[string]bool),
			StaticMethods:   make(map[string]bool),
		}
		if cls.Superclass != nil {
			info.Superclass = cls.Superclass.Text
		}
		for _, method := range cls.Methods {
			name := methodRegistryName(method)
			if method.Construct || method.Static {
				info.StaticMethods[name] = true
				continue
			}
			info.InstanceMethods[name] = true
			if method.IsSetter {
				info.InstanceMethods[name+"="] = true
			}
		}
		reg[cls.Name.Text] = info
	}
	return reg
}

func methodRegistryName(m *ast.Method) string {
	switch m.Kind {
	case ast.MethodSubscript:
		return "[]"
	default:
		return m.Name.Text
	}
}

func isUpperInitial(name string) bool {
	return len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z'
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

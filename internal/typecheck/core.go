package typecheck

// coreInstanceMethods is an intentionally partial table of Wren core
// library instance methods, keyed by class name. It exists to keep
// unknown-method noise low on common core calls, not to model the
// core library exhaustively. A class listed here counts as known, so a
// call to a real core method that the table omits is reported as an
// unknown-method warning rather than accepted.
var coreInstanceMethods = map[string][]string{
	"Object": {"toString", "type", "is"},
	"Bool":   {},
	"Null":   {},
	"Num": {
		"abs", "ceil", "floor", "round", "truncate", "fraction",
		"sqrt", "sign", "min", "max", "pow", "exp", "log",
		"sin", "cos", "tan", "atan", "atan2",
		"isInfinity", "isNan", "toString",
	},
	"String": {
		"count", "bytes", "codePoints", "contains", "startsWith", "endsWith",
		"indexOf", "trim", "trimStart", "trimEnd", "split", "replace",
		"iterate", "iteratorValue", "toString", "[]", "+", "*",
	},
	"List": {
		"add", "addAll", "clear", "count", "insert", "indexOf", "remove",
		"removeAt", "sort", "sorted", "swap", "map", "where", "reduce",
		"iterate", "iteratorValue", "toString", "[]", "[]=", "+",
	},
	"Map": {
		"containsKey", "remove", "clear", "count", "keys", "values",
		"iterate", "iteratorValue", "toString", "[]", "[]=",
	},
	"Range": {
		"from", "to", "min", "max", "isInclusive",
		"iterate", "iteratorValue", "toString",
	},
	"Fiber": {"call", "transfer", "error", "isDone", "try"},
	"Fn":    {"call", "arity"},
	"Sequence": {
		"all", "any", "contains", "count", "each", "isEmpty", "join",
		"map", "reduce", "skip", "take", "toList", "where",
	},
}

// coreStaticMethods mirrors coreInstanceMethods for the classes whose
// constructors and factory methods matter to unknown-method checks.
var coreStaticMethods = map[string][]string{
	"Object": {"same"},
	"Num":    {"fromString", "pi", "infinity", "nan", "largest", "smallest"},
	"String": {"fromCodePoint", "fromByte"},
	"List":   {"filled", "new"},
	"Map":    {"new"},
	"Fiber":  {"current", "yield", "abort", "suspend"},
	"Fn":     {"new"},
	"System": {"print", "write", "writeString", "clock", "gc"},
}

// coreSuperclassOf gives the fixed superclass chain for core sequence
// types; classes absent from this map have no further known step.
var coreSuperclassOf = map[string]string{
	"List":   "Sequence",
	"Map":    "Sequence",
	"Range":  "Sequence",
	"String": "Sequence",
}

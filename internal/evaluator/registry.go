package evaluator

import "sort"

// WordFunc is the implementation of a primitive word. Arity checking is
// the primitive's own responsibility (usually via Context.PopN).
type WordFunc func(ctx *Context) error

// Primitive describes one built-in word.
type Primitive struct {
	Name string
	// Params is the stack-effect sketch shown by help, e.g. "X Y -> Z".
	Params string
	// Doc is the one-line description shown by help.
	Doc string
	Fn  WordFunc
}

// primitives is the process-wide registry, populated by the init
// functions of the builtins files. Primitives always shadow user
// definitions of the same name.
var primitives = map[string]Primitive{}

// Register installs a primitive. Registering a name twice keeps the
// later registration.
func Register(p Primitive) {
	primitives[p.Name] = p
}

// Lookup finds a primitive by name.
func Lookup(name string) (Primitive, bool) {
	p, ok := primitives[name]
	return p, ok
}

// Names returns every registered primitive name in sorted order.
func Names() []string {
	out := make([]string, 0, len(primitives))
	for name := range primitives {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

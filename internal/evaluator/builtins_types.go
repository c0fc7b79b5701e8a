package evaluator

import (
	"github.com/funvibe/joy/internal/value"
)

func predicate(name, doc string, test func(ctx *Context, v value.Value) bool) {
	Register(Primitive{Name: name, Params: "X -> B", Doc: doc, Fn: func(ctx *Context) error {
		v, err := ctx.Pop(name)
		if err != nil {
			return err
		}
		ctx.Stack.Push(value.Boolean{Val: test(ctx, v)})
		return nil
	}})
}

// typeConditional registers one of the if<type> words: X [T] [F] pops
// all three, pushes X back, and executes T or F by X's kind.
func typeConditional(name string, match func(k value.Kind) bool) {
	Register(Primitive{Name: name, Params: "X [T] [F] -> ...", Doc: "Executes T or F according to the kind of X; X stays on the stack.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN(name, 3)
		if err != nil {
			return err
		}
		f, err := asQuotation(name, vs[0], 3)
		if err != nil {
			return err
		}
		t, err := asQuotation(name, vs[1], 2)
		if err != nil {
			return err
		}
		x := vs[2]
		ctx.Stack.Push(x)
		if match(x.Kind()) {
			return ctx.Evaluator().Execute(t)
		}
		return ctx.Evaluator().Execute(f)
	}})
}

// typeCode maps kinds to the classic numeric type codes: 2 user-defined
// symbol, 3 builtin symbol, 4 boolean, 5 char, 6 integer, 7 set,
// 8 string, 9 list or quotation, 10 float, 11 file, 0 unknown.
func typeCode(ctx *Context, v value.Value) int64 {
	switch v.Kind() {
	case value.KindSymbol:
		name := v.(value.Symbol).Name
		_, isPrimitive := Lookup(name)
		_, isUser := ctx.Evaluator().Definition(name)
		if isPrimitive && !isUser {
			return 3
		}
		return 2
	case value.KindBoolean:
		return 4
	case value.KindChar:
		return 5
	case value.KindInteger:
		return 6
	case value.KindSet:
		return 7
	case value.KindString:
		return 8
	case value.KindList, value.KindQuotation:
		return 9
	case value.KindFloat:
		return 10
	case value.KindFile:
		return 11
	}
	return 0
}

func init() {
	predicate("integer", "Tests whether the top item is an integer.", func(ctx *Context, v value.Value) bool {
		return v.Kind() == value.KindInteger
	})
	predicate("float", "Tests whether the top item is a float.", func(ctx *Context, v value.Value) bool {
		return v.Kind() == value.KindFloat
	})
	predicate("char", "Tests whether the top item is a character.", func(ctx *Context, v value.Value) bool {
		return v.Kind() == value.KindChar
	})
	predicate("string", "Tests whether the top item is a string.", func(ctx *Context, v value.Value) bool {
		return v.Kind() == value.KindString
	})
	predicate("list", "Tests whether the top item is a list or quotation.", func(ctx *Context, v value.Value) bool {
		return v.Kind() == value.KindList || v.Kind() == value.KindQuotation
	})
	predicate("logical", "Tests whether the top item is a boolean.", func(ctx *Context, v value.Value) bool {
		return v.Kind() == value.KindBoolean
	})
	predicate("set", "Tests whether the top item is a set.", func(ctx *Context, v value.Value) bool {
		return v.Kind() == value.KindSet
	})
	predicate("leaf", "Tests whether the top item is an atom rather than a list or quotation.", func(ctx *Context, v value.Value) bool {
		return v.Kind() != value.KindList && v.Kind() != value.KindQuotation
	})
	predicate("file", "Tests whether the top item is a file handle.", func(ctx *Context, v value.Value) bool {
		return v.Kind() == value.KindFile
	})
	predicate("user", "Tests whether the top item is a symbol bound to a user definition.", func(ctx *Context, v value.Value) bool {
		s, ok := v.(value.Symbol)
		if !ok {
			return false
		}
		_, defined := ctx.Evaluator().Definition(s.Name)
		return defined
	})

	Register(Primitive{Name: "sametype", Params: "X Y -> B", Doc: "Tests whether the top two items have the same kind.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("sametype", 2)
		if err != nil {
			return err
		}
		a, b := vs[1].Kind(), vs[0].Kind()
		// Lists and quotations count as one kind here, as in the list
		// predicate.
		norm := func(k value.Kind) value.Kind {
			if k == value.KindQuotation {
				return value.KindList
			}
			return k
		}
		ctx.Stack.Push(value.Boolean{Val: norm(a) == norm(b)})
		return nil
	}})

	Register(Primitive{Name: "typeof", Params: "X -> I", Doc: "Pushes the numeric type code of the top item.", Fn: func(ctx *Context) error {
		v, err := ctx.Pop("typeof")
		if err != nil {
			return err
		}
		ctx.Stack.Push(value.NewInt(typeCode(ctx, v)))
		return nil
	}})

	typeConditional("ifinteger", func(k value.Kind) bool { return k == value.KindInteger })
	typeConditional("ifchar", func(k value.Kind) bool { return k == value.KindChar })
	typeConditional("iflogical", func(k value.Kind) bool { return k == value.KindBoolean })
	typeConditional("ifset", func(k value.Kind) bool { return k == value.KindSet })
	typeConditional("ifstring", func(k value.Kind) bool { return k == value.KindString })
	typeConditional("iflist", func(k value.Kind) bool { return k == value.KindList || k == value.KindQuotation })
	typeConditional("iffloat", func(k value.Kind) bool { return k == value.KindFloat })
	typeConditional("iffile", func(k value.Kind) bool { return k == value.KindFile })
}

package evaluator

import (
	"github.com/funvibe/joy/internal/value"
)

func init() {
	Register(Primitive{Name: "id", Params: "->", Doc: "Does nothing.", Fn: func(ctx *Context) error {
		return nil
	}})

	Register(Primitive{Name: "dup", Params: "X -> X X", Doc: "Duplicates the top item.", Fn: func(ctx *Context) error {
		v, err := ctx.Pop("dup")
		if err != nil {
			return err
		}
		ctx.Stack.Push(v)
		ctx.Stack.Push(v)
		return nil
	}})

	Register(Primitive{Name: "pop", Params: "X ->", Doc: "Removes the top item.", Fn: func(ctx *Context) error {
		_, err := ctx.Pop("pop")
		return err
	}})

	Register(Primitive{Name: "swap", Params: "X Y -> Y X", Doc: "Exchanges the top two items.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("swap", 2)
		if err != nil {
			return err
		}
		ctx.Stack.Push(vs[0])
		ctx.Stack.Push(vs[1])
		return nil
	}})

	Register(Primitive{Name: "over", Params: "X Y -> X Y X", Doc: "Copies the second item to the top.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("over", 2)
		if err != nil {
			return err
		}
		ctx.Stack.Push(vs[1])
		ctx.Stack.Push(vs[0])
		ctx.Stack.Push(vs[1])
		return nil
	}})

	Register(Primitive{Name: "rotate", Params: "X Y Z -> Z Y X", Doc: "Reverses the top three items.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("rotate", 3)
		if err != nil {
			return err
		}
		ctx.Stack.Push(vs[0])
		ctx.Stack.Push(vs[1])
		ctx.Stack.Push(vs[2])
		return nil
	}})

	Register(Primitive{Name: "rollup", Params: "X Y Z -> Z X Y", Doc: "Moves the top item below the next two.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("rollup", 3)
		if err != nil {
			return err
		}
		ctx.Stack.Push(vs[0])
		ctx.Stack.Push(vs[2])
		ctx.Stack.Push(vs[1])
		return nil
	}})

	Register(Primitive{Name: "rolldown", Params: "X Y Z -> Y Z X", Doc: "Moves the third item to the top.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("rolldown", 3)
		if err != nil {
			return err
		}
		ctx.Stack.Push(vs[1])
		ctx.Stack.Push(vs[0])
		ctx.Stack.Push(vs[2])
		return nil
	}})

	Register(Primitive{Name: "dupd", Params: "X Y -> X X Y", Doc: "Duplicates the second item in place.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("dupd", 2)
		if err != nil {
			return err
		}
		ctx.Stack.Push(vs[1])
		ctx.Stack.Push(vs[1])
		ctx.Stack.Push(vs[0])
		return nil
	}})

	Register(Primitive{Name: "popd", Params: "X Y -> Y", Doc: "Removes the second item.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("popd", 2)
		if err != nil {
			return err
		}
		ctx.Stack.Push(vs[0])
		return nil
	}})

	Register(Primitive{Name: "swapd", Params: "X Y Z -> Y X Z", Doc: "Exchanges the second and third items.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("swapd", 3)
		if err != nil {
			return err
		}
		ctx.Stack.Push(vs[1])
		ctx.Stack.Push(vs[2])
		ctx.Stack.Push(vs[0])
		return nil
	}})

	Register(Primitive{Name: "choice", Params: "B T F -> T|F", Doc: "Selects T when B is truthy, F otherwise.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("choice", 3)
		if err != nil {
			return err
		}
		f, t, b := vs[0], vs[1], vs[2]
		if value.Truthy(b) {
			ctx.Stack.Push(t)
		} else {
			ctx.Stack.Push(f)
		}
		return nil
	}})

	Register(Primitive{Name: "stack", Params: ".. -> .. [..]", Doc: "Pushes the whole stack as a list, bottom to top.", Fn: func(ctx *Context) error {
		ctx.Stack.Push(value.List{Elems: ctx.Stack.Items()})
		return nil
	}})

	Register(Primitive{Name: "unstack", Params: "[..] -> ..", Doc: "Replaces the stack with the list's elements, last element on top.", Fn: func(ctx *Context) error {
		v, err := ctx.Pop("unstack")
		if err != nil {
			return err
		}
		elems, err := asAggregate("unstack", v, 1)
		if err != nil {
			return err
		}
		ctx.Stack.Clear()
		for _, e := range elems {
			ctx.Stack.Push(e)
		}
		return nil
	}})
}

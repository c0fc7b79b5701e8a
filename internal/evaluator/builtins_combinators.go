package evaluator

import (
	"github.com/funvibe/joy/internal/value"
)

// runGuarded executes a quotation against a checkpoint: the stack is
// snapshotted, q runs, the top of the resulting stack is returned as
// the outcome, and the snapshot becomes the live stack again. The
// surrounding program never sees q's stack effects.
func runGuarded(op string, ctx *Context, q value.Quotation) (value.Value, error) {
	id := ctx.SaveStack()
	if err := ctx.Evaluator().Execute(q); err != nil {
		ctx.RestoreStack(id)
		ctx.PopSaved()
		return nil, err
	}
	out, err := ctx.Pop(op)
	if err != nil {
		ctx.RestoreStack(id)
		ctx.PopSaved()
		return nil, err
	}
	if err := ctx.RestoreStack(id); err != nil {
		return nil, err
	}
	if err := ctx.PopSaved(); err != nil {
		return nil, err
	}
	return out, nil
}

func init() {
	Register(Primitive{Name: "i", Params: "[P] -> ...", Doc: "Executes the quotation on top of the stack.", Fn: func(ctx *Context) error {
		v, err := ctx.Pop("i")
		if err != nil {
			return err
		}
		q, err := asQuotation("i", v, 1)
		if err != nil {
			return err
		}
		return ctx.Evaluator().Execute(q)
	}})

	Register(Primitive{Name: "dip", Params: "X [P] -> ... X", Doc: "Executes P below the top item, then restores the item.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("dip", 2)
		if err != nil {
			return err
		}
		q, err := asQuotation("dip", vs[0], 2)
		if err != nil {
			return err
		}
		if err := ctx.Evaluator().Execute(q); err != nil {
			return err
		}
		ctx.Stack.Push(vs[1])
		return nil
	}})

	Register(Primitive{Name: "branch", Params: "B [T] [F] -> ...", Doc: "Executes T when B is truthy, F otherwise.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("branch", 3)
		if err != nil {
			return err
		}
		f, err := asQuotation("branch", vs[0], 3)
		if err != nil {
			return err
		}
		t, err := asQuotation("branch", vs[1], 2)
		if err != nil {
			return err
		}
		if value.Truthy(vs[2]) {
			return ctx.Evaluator().Execute(t)
		}
		return ctx.Evaluator().Execute(f)
	}})

	Register(Primitive{Name: "ifte", Params: "[B] [T] [F] -> ...", Doc: "Runs the test B against a checkpoint, then executes T or F on the restored stack.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("ifte", 3)
		if err != nil {
			return err
		}
		f, err := asQuotation("ifte", vs[0], 3)
		if err != nil {
			return err
		}
		t, err := asQuotation("ifte", vs[1], 2)
		if err != nil {
			return err
		}
		b, err := asQuotation("ifte", vs[2], 1)
		if err != nil {
			return err
		}
		cond, err := runGuarded("ifte", ctx, b)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return ctx.Evaluator().Execute(t)
		}
		return ctx.Evaluator().Execute(f)
	}})

	Register(Primitive{Name: "while", Params: "[B] [P] -> ...", Doc: "Executes P as long as the checkpointed test B yields a truthy top.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("while", 2)
		if err != nil {
			return err
		}
		body, err := asQuotation("while", vs[0], 2)
		if err != nil {
			return err
		}
		test, err := asQuotation("while", vs[1], 1)
		if err != nil {
			return err
		}
		for {
			cond, err := runGuarded("while", ctx, test)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			if err := ctx.Evaluator().Execute(body); err != nil {
				return err
			}
		}
	}})

	Register(Primitive{Name: "map", Params: "A [P] -> A'", Doc: "Applies P to each element against a checkpoint and collects the results.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("map", 2)
		if err != nil {
			return err
		}
		p, err := asQuotation("map", vs[0], 2)
		if err != nil {
			return err
		}
		elems, err := asAggregate("map", vs[1], 1)
		if err != nil {
			return err
		}
		id := ctx.SaveStack()
		results := make([]value.Value, 0, len(elems))
		for _, e := range elems {
			ctx.Stack.Push(e)
			if err := ctx.Evaluator().Execute(p); err != nil {
				ctx.RestoreStack(id)
				ctx.PopSaved()
				return err
			}
			out, err := ctx.Pop("map")
			if err != nil {
				ctx.RestoreStack(id)
				ctx.PopSaved()
				return err
			}
			results = append(results, out)
			ctx.RestoreStack(id)
		}
		ctx.RestoreStack(id)
		ctx.PopSaved()
		ctx.Stack.Push(value.MakeAggregate(vs[1].Kind(), results))
		return nil
	}})

	Register(Primitive{Name: "filter", Params: "A [P] -> A'", Doc: "Keeps the elements for which the checkpointed P yields a truthy top.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("filter", 2)
		if err != nil {
			return err
		}
		p, err := asQuotation("filter", vs[0], 2)
		if err != nil {
			return err
		}
		elems, err := asAggregate("filter", vs[1], 1)
		if err != nil {
			return err
		}
		id := ctx.SaveStack()
		var kept []value.Value
		for _, e := range elems {
			ctx.Stack.Push(e)
			if err := ctx.Evaluator().Execute(p); err != nil {
				ctx.RestoreStack(id)
				ctx.PopSaved()
				return err
			}
			out, err := ctx.Pop("filter")
			if err != nil {
				ctx.RestoreStack(id)
				ctx.PopSaved()
				return err
			}
			if value.Truthy(out) {
				kept = append(kept, e)
			}
			ctx.RestoreStack(id)
		}
		ctx.RestoreStack(id)
		ctx.PopSaved()
		ctx.Stack.Push(value.MakeAggregate(vs[1].Kind(), kept))
		return nil
	}})

	Register(Primitive{Name: "fold", Params: "A V [P] -> V'", Doc: "Folds P over the aggregate starting from V.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("fold", 3)
		if err != nil {
			return err
		}
		p, err := asQuotation("fold", vs[0], 3)
		if err != nil {
			return err
		}
		elems, err := asAggregate("fold", vs[2], 1)
		if err != nil {
			return err
		}
		ctx.Stack.Push(vs[1])
		for _, e := range elems {
			ctx.Stack.Push(e)
			if err := ctx.Evaluator().Execute(p); err != nil {
				return err
			}
		}
		return nil
	}})

	Register(Primitive{Name: "step", Params: "A [P] -> ...", Doc: "Executes P once per element, with the element pushed; no checkpoint.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("step", 2)
		if err != nil {
			return err
		}
		p, err := asQuotation("step", vs[0], 2)
		if err != nil {
			return err
		}
		elems, err := asAggregate("step", vs[1], 1)
		if err != nil {
			return err
		}
		for _, e := range elems {
			ctx.Stack.Push(e)
			if err := ctx.Evaluator().Execute(p); err != nil {
				return err
			}
		}
		return nil
	}})

	Register(Primitive{Name: "times", Params: "N [P] -> ...", Doc: "Executes P N times.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("times", 2)
		if err != nil {
			return err
		}
		p, err := asQuotation("times", vs[0], 2)
		if err != nil {
			return err
		}
		n, err := asInteger("times", vs[1], 1)
		if err != nil {
			return err
		}
		count, err := smallInt("times", n, 1)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			if err := ctx.Evaluator().Execute(p); err != nil {
				return err
			}
		}
		return nil
	}})
}

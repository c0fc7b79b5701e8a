package evaluator

import (
	"errors"

	"github.com/funvibe/joy/internal/diagnostics"
	"github.com/funvibe/joy/internal/value"
)

var errNoBridge = errors.New("no host bridge installed")

func popCode(ctx *Context, op string) (string, error) {
	v, err := ctx.Pop(op)
	if err != nil {
		return "", err
	}
	s, ok := v.(value.String)
	if !ok {
		return "", &diagnostics.TypeError{Op: op, Expected: "string", Actual: v.Kind().String(), Arg: 1}
	}
	return s.Val, nil
}

func init() {
	Register(Primitive{Name: "eval", Params: "S -> X", Doc: "Evaluates a host expression and pushes its result.", Fn: func(ctx *Context) error {
		code, err := popCode(ctx, "eval")
		if err != nil {
			return err
		}
		bridge := ctx.Evaluator().bridge
		if bridge == nil {
			return errNoBridge
		}
		out, err := bridge.Eval(code)
		if err != nil {
			return err
		}
		if ds, ok := ctx.Stack.(*DynamicStack); ok {
			ds.PushRaw(out)
			return nil
		}
		ctx.Stack.Push(WrapHost(out))
		return nil
	}})

	Register(Primitive{Name: "exec", Params: "S ->", Doc: "Runs a host statement for its side effects.", Fn: func(ctx *Context) error {
		code, err := popCode(ctx, "exec")
		if err != nil {
			return err
		}
		bridge := ctx.Evaluator().bridge
		if bridge == nil {
			return errNoBridge
		}
		return bridge.Exec(code)
	}})
}

package evaluator

import (
	"github.com/funvibe/joy/internal/diagnostics"
	"github.com/funvibe/joy/internal/value"
)

// valueTerm is the inverse of value.TermValue: a Symbol becomes a word
// reference again, everything else a literal push.
func valueTerm(v value.Value) value.Term {
	if s, ok := v.(value.Symbol); ok {
		return value.Word{Name: s.Name}
	}
	return value.Push{Val: v}
}

// consValue prepends x to aggregate agg, preserving agg's kind.
// Quotations stay quotations so built programs remain executable.
func consValue(op string, x, agg value.Value) (value.Value, error) {
	switch agg := agg.(type) {
	case value.Quotation:
		terms := make([]value.Term, 0, len(agg.Terms)+1)
		terms = append(terms, valueTerm(x))
		terms = append(terms, agg.Terms...)
		return value.Quotation{Terms: terms}, nil
	case value.List:
		elems := make([]value.Value, 0, len(agg.Elems)+1)
		elems = append(elems, x)
		elems = append(elems, agg.Elems...)
		return value.List{Elems: elems}, nil
	case value.String:
		c, ok := x.(value.Char)
		if !ok {
			return nil, &diagnostics.TypeError{Op: op, Expected: "char", Actual: x.Kind().String(), Arg: 1}
		}
		return value.String{Val: string(c.Val) + agg.Val}, nil
	case value.Set:
		n, err := asInteger(op, x, 1)
		if err != nil {
			return nil, err
		}
		member := int64(64)
		if n.IsInt64() {
			member = n.Int64()
		} else if n.Sign() < 0 {
			member = -1
		}
		next, ok := agg.With(member)
		if !ok {
			return nil, &diagnostics.SetMemberError{Member: member}
		}
		return next, nil
	}
	return nil, &diagnostics.TypeError{Op: op, Expected: "aggregate", Actual: agg.Kind().String(), Arg: 2}
}

// restValue removes the first element of agg, preserving its kind.
func restValue(op string, agg value.Value) (value.Value, error) {
	switch agg := agg.(type) {
	case value.Quotation:
		if len(agg.Terms) == 0 {
			return nil, &diagnostics.EmptyAggregateError{Op: op}
		}
		return value.Quotation{Terms: agg.Terms[1:]}, nil
	case value.List:
		if len(agg.Elems) == 0 {
			return nil, &diagnostics.EmptyAggregateError{Op: op}
		}
		return value.List{Elems: agg.Elems[1:]}, nil
	case value.String:
		runes := []rune(agg.Val)
		if len(runes) == 0 {
			return nil, &diagnostics.EmptyAggregateError{Op: op}
		}
		return value.String{Val: string(runes[1:])}, nil
	case value.Set:
		members := agg.Members()
		if len(members) == 0 {
			return nil, &diagnostics.EmptyAggregateError{Op: op}
		}
		return value.Set{Mask: agg.Mask &^ (1 << uint(members[0]))}, nil
	}
	return nil, &diagnostics.TypeError{Op: op, Expected: "aggregate", Actual: agg.Kind().String(), Arg: 1}
}

func firstValue(op string, agg value.Value) (value.Value, error) {
	elems, err := asAggregate(op, agg, 1)
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return nil, &diagnostics.EmptyAggregateError{Op: op}
	}
	return elems[0], nil
}

func indexValue(op string, agg value.Value, aggArg int, idx value.Value, idxArg int) (value.Value, error) {
	elems, err := asAggregate(op, agg, aggArg)
	if err != nil {
		return nil, err
	}
	n, err := asInteger(op, idx, idxArg)
	if err != nil {
		return nil, err
	}
	i, err := smallInt(op, n, idxArg)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(elems) {
		return nil, &diagnostics.TypeError{Op: op, Expected: "index within bounds", Actual: "integer", Arg: idxArg}
	}
	return elems[i], nil
}

func init() {
	Register(Primitive{Name: "cons", Params: "X A -> A'", Doc: "Prepends X to aggregate A.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("cons", 2)
		if err != nil {
			return err
		}
		out, err := consValue("cons", vs[1], vs[0])
		if err != nil {
			return err
		}
		ctx.Stack.Push(out)
		return nil
	}})

	Register(Primitive{Name: "swons", Params: "A X -> A'", Doc: "Prepends X to aggregate A (operands swapped).", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("swons", 2)
		if err != nil {
			return err
		}
		out, err := consValue("swons", vs[0], vs[1])
		if err != nil {
			return err
		}
		ctx.Stack.Push(out)
		return nil
	}})

	Register(Primitive{Name: "first", Params: "A -> X", Doc: "The first element of a non-empty aggregate.", Fn: func(ctx *Context) error {
		v, err := ctx.Pop("first")
		if err != nil {
			return err
		}
		out, err := firstValue("first", v)
		if err != nil {
			return err
		}
		ctx.Stack.Push(out)
		return nil
	}})

	Register(Primitive{Name: "rest", Params: "A -> A'", Doc: "The aggregate without its first element.", Fn: func(ctx *Context) error {
		v, err := ctx.Pop("rest")
		if err != nil {
			return err
		}
		out, err := restValue("rest", v)
		if err != nil {
			return err
		}
		ctx.Stack.Push(out)
		return nil
	}})

	Register(Primitive{Name: "uncons", Params: "A -> X A'", Doc: "Splits an aggregate into first element and rest.", Fn: func(ctx *Context) error {
		v, err := ctx.Pop("uncons")
		if err != nil {
			return err
		}
		head, err := firstValue("uncons", v)
		if err != nil {
			return err
		}
		tail, err := restValue("uncons", v)
		if err != nil {
			return err
		}
		ctx.Stack.Push(head)
		ctx.Stack.Push(tail)
		return nil
	}})

	Register(Primitive{Name: "unswons", Params: "A -> A' X", Doc: "Splits an aggregate into rest and first element.", Fn: func(ctx *Context) error {
		v, err := ctx.Pop("unswons")
		if err != nil {
			return err
		}
		head, err := firstValue("unswons", v)
		if err != nil {
			return err
		}
		tail, err := restValue("unswons", v)
		if err != nil {
			return err
		}
		ctx.Stack.Push(tail)
		ctx.Stack.Push(head)
		return nil
	}})

	Register(Primitive{Name: "null", Params: "X -> B", Doc: "Tests for an empty aggregate or a zero number.", Fn: func(ctx *Context) error {
		v, err := ctx.Pop("null")
		if err != nil {
			return err
		}
		if n, ok := value.AsNumber(v); ok {
			ctx.Stack.Push(value.Boolean{Val: n.IsZero()})
			return nil
		}
		elems, err := asAggregate("null", v, 1)
		if err != nil {
			return err
		}
		ctx.Stack.Push(value.Boolean{Val: len(elems) == 0})
		return nil
	}})

	Register(Primitive{Name: "small", Params: "X -> B", Doc: "Tests for an aggregate of at most one element, or the number 0 or 1.", Fn: func(ctx *Context) error {
		v, err := ctx.Pop("small")
		if err != nil {
			return err
		}
		if n, ok := value.AsNumber(v); ok {
			small := n.IsZero()
			if !small && n.IsInt {
				small = n.Int.Cmp(oneBig) == 0
			} else if !small {
				small = n.Float == 1
			}
			ctx.Stack.Push(value.Boolean{Val: small})
			return nil
		}
		elems, err := asAggregate("small", v, 1)
		if err != nil {
			return err
		}
		ctx.Stack.Push(value.Boolean{Val: len(elems) <= 1})
		return nil
	}})

	Register(Primitive{Name: "size", Params: "A -> N", Doc: "The number of elements in an aggregate.", Fn: func(ctx *Context) error {
		v, err := ctx.Pop("size")
		if err != nil {
			return err
		}
		elems, err := asAggregate("size", v, 1)
		if err != nil {
			return err
		}
		ctx.Stack.Push(value.NewInt(int64(len(elems))))
		return nil
	}})

	Register(Primitive{Name: "concat", Params: "A B -> C", Doc: "Concatenates two aggregates; the result keeps the first operand's kind when possible.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("concat", 2)
		if err != nil {
			return err
		}
		a, b := vs[1], vs[0]
		if aq, ok := a.(value.Quotation); ok {
			if bq, ok := b.(value.Quotation); ok {
				terms := make([]value.Term, 0, len(aq.Terms)+len(bq.Terms))
				terms = append(terms, aq.Terms...)
				terms = append(terms, bq.Terms...)
				ctx.Stack.Push(value.Quotation{Terms: terms})
				return nil
			}
		}
		if as, ok := a.(value.Set); ok {
			if bs, ok := b.(value.Set); ok {
				ctx.Stack.Push(value.Set{Mask: as.Mask | bs.Mask})
				return nil
			}
		}
		ae, err := asAggregate("concat", a, 1)
		if err != nil {
			return err
		}
		be, err := asAggregate("concat", b, 2)
		if err != nil {
			return err
		}
		elems := make([]value.Value, 0, len(ae)+len(be))
		elems = append(elems, ae...)
		elems = append(elems, be...)
		ctx.Stack.Push(value.MakeAggregate(a.Kind(), elems))
		return nil
	}})

	Register(Primitive{Name: "reverse", Params: "A -> A'", Doc: "Reverses an aggregate's element order.", Fn: func(ctx *Context) error {
		v, err := ctx.Pop("reverse")
		if err != nil {
			return err
		}
		switch v := v.(type) {
		case value.Quotation:
			terms := make([]value.Term, len(v.Terms))
			for i, t := range v.Terms {
				terms[len(v.Terms)-1-i] = t
			}
			ctx.Stack.Push(value.Quotation{Terms: terms})
			return nil
		case value.Set:
			// Sets are unordered; reversal is the identity.
			ctx.Stack.Push(v)
			return nil
		}
		elems, err := asAggregate("reverse", v, 1)
		if err != nil {
			return err
		}
		out := make([]value.Value, len(elems))
		for i, e := range elems {
			out[len(elems)-1-i] = e
		}
		ctx.Stack.Push(value.MakeAggregate(v.Kind(), out))
		return nil
	}})

	Register(Primitive{Name: "at", Params: "A I -> X", Doc: "The element at zero-based index I of aggregate A.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("at", 2)
		if err != nil {
			return err
		}
		out, err := indexValue("at", vs[1], 1, vs[0], 2)
		if err != nil {
			return err
		}
		ctx.Stack.Push(out)
		return nil
	}})

	Register(Primitive{Name: "of", Params: "I A -> X", Doc: "The element at zero-based index I of aggregate A (operands swapped).", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("of", 2)
		if err != nil {
			return err
		}
		out, err := indexValue("of", vs[0], 2, vs[1], 1)
		if err != nil {
			return err
		}
		ctx.Stack.Push(out)
		return nil
	}})
}

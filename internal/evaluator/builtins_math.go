package evaluator

import (
	"math"
	"math/big"

	"github.com/funvibe/joy/internal/diagnostics"
	"github.com/funvibe/joy/internal/value"
)

// binNumeric pops two operands and applies the integer or float path.
// The integer path runs only when both operands are integral; anything
// mixed goes through float64 and the result collapses back to Integer
// when exact.
func binNumeric(name string, intFn func(a, b *big.Int) *big.Int, floatFn func(a, b float64) float64) WordFunc {
	return func(ctx *Context) error {
		vs, err := ctx.PopN(name, 2)
		if err != nil {
			return err
		}
		b, err := asNumber(name, vs[0], 2)
		if err != nil {
			return err
		}
		a, err := asNumber(name, vs[1], 1)
		if err != nil {
			return err
		}
		if a.IsInt && b.IsInt {
			ctx.Stack.Push(value.FromBig(intFn(a.Int, b.Int)))
			return nil
		}
		ctx.Stack.Push(value.FromFloat(floatFn(a.AsFloat(), b.AsFloat())))
		return nil
	}
}

// floorQuoRem computes floored division: the quotient rounds toward
// negative infinity, the remainder takes the divisor's sign.
func floorQuoRem(a, b *big.Int) (*big.Int, *big.Int) {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
		r.Add(r, b)
	}
	return q, r
}

func floorMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func comparison(name string, accept func(c int) bool) WordFunc {
	return func(ctx *Context) error {
		vs, err := ctx.PopN(name, 2)
		if err != nil {
			return err
		}
		c, err := compareValues(name, vs[1], vs[0])
		if err != nil {
			return err
		}
		ctx.Stack.Push(value.Boolean{Val: accept(c)})
		return nil
	}
}

// compareValues orders two values: numbers by numeric value, strings
// lexicographically.
func compareValues(op string, a, b value.Value) (int, error) {
	an, aok := value.AsNumber(a)
	bn, bok := value.AsNumber(b)
	if aok && bok {
		return value.Compare(an, bn), nil
	}
	as, aok := a.(value.String)
	bs, bok := b.(value.String)
	if aok && bok {
		switch {
		case as.Val < bs.Val:
			return -1, nil
		case as.Val > bs.Val:
			return 1, nil
		}
		return 0, nil
	}
	return 0, &diagnostics.TypeError{Op: op, Expected: "comparable operands", Actual: a.Kind().String() + " and " + b.Kind().String()}
}

// logical pops two operands and applies either the set-mask or the
// truth-value form, mirroring the traditional overloading of the
// logical connectives over sets.
func logical(name string, maskFn func(a, b uint64) uint64, boolFn func(a, b bool) bool) WordFunc {
	return func(ctx *Context) error {
		vs, err := ctx.PopN(name, 2)
		if err != nil {
			return err
		}
		if as, ok := vs[1].(value.Set); ok {
			if bs, ok := vs[0].(value.Set); ok {
				ctx.Stack.Push(value.Set{Mask: maskFn(as.Mask, bs.Mask)})
				return nil
			}
		}
		ctx.Stack.Push(value.Boolean{Val: boolFn(value.Truthy(vs[1]), value.Truthy(vs[0]))})
		return nil
	}
}

func init() {
	Register(Primitive{Name: "+", Params: "X Y -> Z", Doc: "Adds two numbers.", Fn: binNumeric("+",
		func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) },
		func(a, b float64) float64 { return a + b })})

	Register(Primitive{Name: "-", Params: "X Y -> Z", Doc: "Subtracts the top number from the second.", Fn: binNumeric("-",
		func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) },
		func(a, b float64) float64 { return a - b })})

	Register(Primitive{Name: "*", Params: "X Y -> Z", Doc: "Multiplies two numbers.", Fn: binNumeric("*",
		func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) },
		func(a, b float64) float64 { return a * b })})

	Register(Primitive{Name: "/", Params: "X Y -> Z", Doc: "Divides the second number by the top, rounding toward negative infinity.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("/", 2)
		if err != nil {
			return err
		}
		b, err := asNumber("/", vs[0], 2)
		if err != nil {
			return err
		}
		a, err := asNumber("/", vs[1], 1)
		if err != nil {
			return err
		}
		if b.IsZero() {
			return &diagnostics.DivisionByZeroError{Op: "/"}
		}
		if a.IsInt && b.IsInt {
			q, _ := floorQuoRem(a.Int, b.Int)
			ctx.Stack.Push(value.FromBig(q))
			return nil
		}
		ctx.Stack.Push(value.FromFloat(math.Floor(a.AsFloat() / b.AsFloat())))
		return nil
	}})

	Register(Primitive{Name: "rem", Params: "X Y -> Z", Doc: "Remainder of floored division; the result takes the divisor's sign.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("rem", 2)
		if err != nil {
			return err
		}
		b, err := asNumber("rem", vs[0], 2)
		if err != nil {
			return err
		}
		a, err := asNumber("rem", vs[1], 1)
		if err != nil {
			return err
		}
		if b.IsZero() {
			return &diagnostics.DivisionByZeroError{Op: "rem"}
		}
		if a.IsInt && b.IsInt {
			_, r := floorQuoRem(a.Int, b.Int)
			ctx.Stack.Push(value.FromBig(r))
			return nil
		}
		ctx.Stack.Push(value.FromFloat(floorMod(a.AsFloat(), b.AsFloat())))
		return nil
	}})

	Register(Primitive{Name: "div", Params: "X Y -> Q R", Doc: "Pushes both the floored quotient and the remainder.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("div", 2)
		if err != nil {
			return err
		}
		b, err := asInteger("div", vs[0], 2)
		if err != nil {
			return err
		}
		a, err := asInteger("div", vs[1], 1)
		if err != nil {
			return err
		}
		if b.Sign() == 0 {
			return &diagnostics.DivisionByZeroError{Op: "div"}
		}
		q, r := floorQuoRem(a, b)
		ctx.Stack.Push(value.FromBig(q))
		ctx.Stack.Push(value.FromBig(r))
		return nil
	}})

	Register(Primitive{Name: "abs", Params: "X -> Y", Doc: "Absolute value.", Fn: unaryNumeric("abs",
		func(a *big.Int) *big.Int { return new(big.Int).Abs(a) },
		math.Abs)})

	Register(Primitive{Name: "neg", Params: "X -> Y", Doc: "Negation.", Fn: unaryNumeric("neg",
		func(a *big.Int) *big.Int { return new(big.Int).Neg(a) },
		func(a float64) float64 { return -a })})

	Register(Primitive{Name: "sign", Params: "X -> Y", Doc: "Pushes -1, 0 or 1 according to the sign of X.", Fn: func(ctx *Context) error {
		v, err := ctx.Pop("sign")
		if err != nil {
			return err
		}
		n, err := asNumber("sign", v, 1)
		if err != nil {
			return err
		}
		s := 0
		if n.IsInt {
			s = n.Int.Sign()
		} else if n.Float > 0 {
			s = 1
		} else if n.Float < 0 {
			s = -1
		}
		ctx.Stack.Push(value.NewInt(int64(s)))
		return nil
	}})

	Register(Primitive{Name: "succ", Params: "X -> Y", Doc: "Adds one.", Fn: unaryNumeric("succ",
		func(a *big.Int) *big.Int { return new(big.Int).Add(a, big.NewInt(1)) },
		func(a float64) float64 { return a + 1 })})

	Register(Primitive{Name: "pred", Params: "X -> Y", Doc: "Subtracts one.", Fn: unaryNumeric("pred",
		func(a *big.Int) *big.Int { return new(big.Int).Sub(a, big.NewInt(1)) },
		func(a float64) float64 { return a - 1 })})

	Register(Primitive{Name: "max", Params: "X Y -> Z", Doc: "The larger of two values.", Fn: extremum("max", 1)})
	Register(Primitive{Name: "min", Params: "X Y -> Z", Doc: "The smaller of two values.", Fn: extremum("min", -1)})

	Register(Primitive{Name: "<", Params: "X Y -> B", Doc: "Tests whether the second value is less than the top.", Fn: comparison("<", func(c int) bool { return c < 0 })})
	Register(Primitive{Name: "<=", Params: "X Y -> B", Doc: "Tests whether the second value is at most the top.", Fn: comparison("<=", func(c int) bool { return c <= 0 })})
	Register(Primitive{Name: ">", Params: "X Y -> B", Doc: "Tests whether the second value is greater than the top.", Fn: comparison(">", func(c int) bool { return c > 0 })})
	Register(Primitive{Name: ">=", Params: "X Y -> B", Doc: "Tests whether the second value is at least the top.", Fn: comparison(">=", func(c int) bool { return c >= 0 })})

	Register(Primitive{Name: "=", Params: "X Y -> B", Doc: "Tests equality; numbers compare by value across kinds.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("=", 2)
		if err != nil {
			return err
		}
		ctx.Stack.Push(value.Boolean{Val: value.Equal(vs[1], vs[0])})
		return nil
	}})

	Register(Primitive{Name: "!=", Params: "X Y -> B", Doc: "Tests inequality.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("!=", 2)
		if err != nil {
			return err
		}
		ctx.Stack.Push(value.Boolean{Val: !value.Equal(vs[1], vs[0])})
		return nil
	}})

	Register(Primitive{Name: "and", Params: "X Y -> Z", Doc: "Conjunction; intersection on sets.", Fn: logical("and",
		func(a, b uint64) uint64 { return a & b },
		func(a, b bool) bool { return a && b })})

	Register(Primitive{Name: "or", Params: "X Y -> Z", Doc: "Disjunction; union on sets.", Fn: logical("or",
		func(a, b uint64) uint64 { return a | b },
		func(a, b bool) bool { return a || b })})

	Register(Primitive{Name: "xor", Params: "X Y -> Z", Doc: "Exclusive disjunction; symmetric difference on sets.", Fn: logical("xor",
		func(a, b uint64) uint64 { return a ^ b },
		func(a, b bool) bool { return a != b })})

	Register(Primitive{Name: "not", Params: "X -> Y", Doc: "Logical negation; complement on sets.", Fn: func(ctx *Context) error {
		v, err := ctx.Pop("not")
		if err != nil {
			return err
		}
		if s, ok := v.(value.Set); ok {
			ctx.Stack.Push(value.Set{Mask: ^s.Mask})
			return nil
		}
		ctx.Stack.Push(value.Boolean{Val: !value.Truthy(v)})
		return nil
	}})
}

func unaryNumeric(name string, intFn func(a *big.Int) *big.Int, floatFn func(a float64) float64) WordFunc {
	return func(ctx *Context) error {
		v, err := ctx.Pop(name)
		if err != nil {
			return err
		}
		n, err := asNumber(name, v, 1)
		if err != nil {
			return err
		}
		if n.IsInt {
			ctx.Stack.Push(value.FromBig(intFn(n.Int)))
			return nil
		}
		ctx.Stack.Push(value.FromFloat(floatFn(n.Float)))
		return nil
	}
}

func extremum(name string, keep int) WordFunc {
	return func(ctx *Context) error {
		vs, err := ctx.PopN(name, 2)
		if err != nil {
			return err
		}
		c, err := compareValues(name, vs[1], vs[0])
		if err != nil {
			return err
		}
		if c == keep || c == 0 {
			ctx.Stack.Push(vs[1])
		} else {
			ctx.Stack.Push(vs[0])
		}
		return nil
	}
}

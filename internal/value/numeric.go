package value

import (
	"math"
	"math/big"
)

// Number is the normalized form of a value in numeric context. Exactly
// one of Int/Float is meaningful, selected by IsInt.
type Number struct {
	Int   *big.Int
	Float float64
	IsInt bool
}

// AsNumber views v through the numeric coercion rules: Integer and
// Float are themselves, Char contributes its code point, Boolean is
// 0 or 1. Any other kind is not numeric.
func AsNumber(v Value) (Number, bool) {
	switch v := v.(type) {
	case Integer:
		return Number{Int: v.Val, IsInt: true}, true
	case Float:
		return Number{Float: v.Val}, true
	case Char:
		return Number{Int: big.NewInt(int64(v.Val)), IsInt: true}, true
	case Boolean:
		if v.Val {
			return Number{Int: big.NewInt(1), IsInt: true}, true
		}
		return Number{Int: big.NewInt(0), IsInt: true}, true
	}
	return Number{}, false
}

// IsNumeric reports whether v is accepted by numeric operations.
func IsNumeric(v Value) bool {
	_, ok := AsNumber(v)
	return ok
}

func (n Number) AsFloat() float64 {
	if n.IsInt {
		f, _ := new(big.Float).SetInt(n.Int).Float64()
		return f
	}
	return n.Float
}

func (n Number) IsZero() bool {
	if n.IsInt {
		return n.Int.Sign() == 0
	}
	return n.Float == 0
}

// maxExactFloat is the largest magnitude at which float64 still
// represents every integer exactly (2^53).
const maxExactFloat = 1 << 53

// FromFloat builds a numeric result from a float computation. A result
// that is mathematically an exact integer collapses back to Integer to
// keep small integers exact.
func FromFloat(f float64) Value {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) <= maxExactFloat {
		return Integer{Val: big.NewInt(int64(f))}
	}
	return Float{Val: f}
}

// Compare orders two numbers: -1, 0 or +1. Mixed integer/float pairs
// compare as floats.
func Compare(a, b Number) int {
	if a.IsInt && b.IsInt {
		return a.Int.Cmp(b.Int)
	}
	af, bf := a.AsFloat(), b.AsFloat()
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	}
	return 0
}

package evaluator

import (
	"math/big"

	"github.com/funvibe/joy/internal/diagnostics"
	"github.com/funvibe/joy/internal/value"
)

var oneBig = big.NewInt(1)

// asQuotation views v as an executable program. Lists of values execute
// too: each element pushes itself, symbols run as words.
func asQuotation(op string, v value.Value, arg int) (value.Quotation, error) {
	switch v := v.(type) {
	case value.Quotation:
		return v, nil
	case value.List:
		terms := make([]value.Term, len(v.Elems))
		for i, e := range v.Elems {
			if s, ok := e.(value.Symbol); ok {
				terms[i] = value.Word{Name: s.Name}
			} else {
				terms[i] = value.Push{Val: e}
			}
		}
		return value.Quotation{Terms: terms}, nil
	}
	return value.Quotation{}, &diagnostics.TypeError{
		Op:       op,
		Expected: "quotation",
		Actual:   v.Kind().String(),
		Arg:      arg,
	}
}

func asNumber(op string, v value.Value, arg int) (value.Number, error) {
	n, ok := value.AsNumber(v)
	if !ok {
		return value.Number{}, &diagnostics.TypeError{
			Op:       op,
			Expected: "number",
			Actual:   v.Kind().String(),
			Arg:      arg,
		}
	}
	return n, nil
}

func asInteger(op string, v value.Value, arg int) (*big.Int, error) {
	n, err := asNumber(op, v, arg)
	if err != nil {
		return nil, err
	}
	if !n.IsInt {
		return nil, &diagnostics.TypeError{
			Op:       op,
			Expected: "integer",
			Actual:   v.Kind().String(),
			Arg:      arg,
		}
	}
	return n.Int, nil
}

func asAggregate(op string, v value.Value, arg int) ([]value.Value, error) {
	elems, ok := value.SeqView(v)
	if !ok {
		return nil, &diagnostics.TypeError{
			Op:       op,
			Expected: "aggregate",
			Actual:   v.Kind().String(),
			Arg:      arg,
		}
	}
	return elems, nil
}

// smallInt narrows a big integer to int for counts and indices.
func smallInt(op string, n *big.Int, arg int) (int, error) {
	if !n.IsInt64() {
		return 0, &diagnostics.TypeError{
			Op:       op,
			Expected: "small integer",
			Actual:   "integer",
			Arg:      arg,
		}
	}
	return int(n.Int64()), nil
}

package evaluator

import (
	"math/big"

	"github.com/funvibe/joy/internal/diagnostics"
	"github.com/funvibe/joy/internal/value"
)

// Stack is the LIFO of runtime values. Two implementations satisfy it:
// TypedStack keeps every slot as a tagged Value, DynamicStack keeps raw
// host data and defers tagging to access time (relaxed interop mode).
type Stack interface {
	Push(v value.Value)
	// Pop removes and returns the top value.
	Pop() (value.Value, error)
	// PopN removes n values atomically, returned top-first. On
	// underflow nothing is removed.
	PopN(n int) ([]value.Value, error)
	// Peek reads at depth without removing; 0 is the top.
	Peek(depth int) (value.Value, error)
	Depth() int
	Clear()
	// Items snapshots the contents bottom-to-top.
	Items() []value.Value
	// Copy returns an independent shallow clone.
	Copy() Stack
}

// TypedStack is the default, fully tagged stack.
type TypedStack struct {
	items []value.Value
}

func NewTypedStack() *TypedStack { return &TypedStack{} }

func (s *TypedStack) Push(v value.Value) {
	s.items = append(s.items, v)
}

func (s *TypedStack) Pop() (value.Value, error) {
	if len(s.items) == 0 {
		return nil, &diagnostics.StackUnderflowError{Op: "pop", Required: 1, Available: 0}
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

func (s *TypedStack) PopN(n int) ([]value.Value, error) {
	if n > len(s.items) {
		return nil, &diagnostics.StackUnderflowError{Op: "pop", Required: n, Available: len(s.items)}
	}
	out := make([]value.Value, n)
	for i := 0; i < n; i++ {
		out[i] = s.items[len(s.items)-1-i]
	}
	s.items = s.items[:len(s.items)-n]
	return out, nil
}

func (s *TypedStack) Peek(depth int) (value.Value, error) {
	if depth >= len(s.items) {
		return nil, &diagnostics.StackUnderflowError{Op: "peek", Required: depth + 1, Available: len(s.items)}
	}
	return s.items[len(s.items)-1-depth], nil
}

func (s *TypedStack) Depth() int { return len(s.items) }

func (s *TypedStack) Clear() { s.items = s.items[:0] }

func (s *TypedStack) Items() []value.Value {
	out := make([]value.Value, len(s.items))
	copy(out, s.items)
	return out
}

func (s *TypedStack) Copy() Stack {
	return &TypedStack{items: s.Items()}
}

// DynamicStack holds raw host values; tags are applied lazily when a
// slot is read. Language-side composites (quotations, sets, symbols,
// files) stay wrapped so programs keep working unchanged.
type DynamicStack struct {
	items []interface{}
}

func NewDynamicStack() *DynamicStack { return &DynamicStack{} }

func (s *DynamicStack) Push(v value.Value) {
	s.items = append(s.items, UnwrapHost(v))
}

// PushRaw pushes a host value without any conversion; the scripting
// bridge feeds results in through here.
func (s *DynamicStack) PushRaw(v interface{}) {
	s.items = append(s.items, v)
}

func (s *DynamicStack) Pop() (value.Value, error) {
	if len(s.items) == 0 {
		return nil, &diagnostics.StackUnderflowError{Op: "pop", Required: 1, Available: 0}
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return WrapHost(v), nil
}

// PopRaw removes and returns the top slot untagged.
func (s *DynamicStack) PopRaw() (interface{}, error) {
	if len(s.items) == 0 {
		return nil, &diagnostics.StackUnderflowError{Op: "pop", Required: 1, Available: 0}
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

func (s *DynamicStack) PopN(n int) ([]value.Value, error) {
	if n > len(s.items) {
		return nil, &diagnostics.StackUnderflowError{Op: "pop", Required: n, Available: len(s.items)}
	}
	out := make([]value.Value, n)
	for i := 0; i < n; i++ {
		out[i] = WrapHost(s.items[len(s.items)-1-i])
	}
	s.items = s.items[:len(s.items)-n]
	return out, nil
}

func (s *DynamicStack) Peek(depth int) (value.Value, error) {
	if depth >= len(s.items) {
		return nil, &diagnostics.StackUnderflowError{Op: "peek", Required: depth + 1, Available: len(s.items)}
	}
	return WrapHost(s.items[len(s.items)-1-depth]), nil
}

func (s *DynamicStack) Depth() int { return len(s.items) }

func (s *DynamicStack) Clear() { s.items = s.items[:0] }

func (s *DynamicStack) Items() []value.Value {
	out := make([]value.Value, len(s.items))
	for i, v := range s.items {
		out[i] = WrapHost(v)
	}
	return out
}

func (s *DynamicStack) Copy() Stack {
	items := make([]interface{}, len(s.items))
	copy(items, s.items)
	return &DynamicStack{items: items}
}

// WrapHost tags a raw host value. Unknown types land in Object, the
// escape hatch kind.
func WrapHost(v interface{}) value.Value {
	switch v := v.(type) {
	case value.Value:
		return v
	case nil:
		return value.Object{}
	case bool:
		return value.Boolean{Val: v}
	case int:
		return value.NewInt(int64(v))
	case int32:
		return value.NewInt(int64(v))
	case int64:
		return value.NewInt(v)
	case *big.Int:
		return value.FromBig(v)
	case float32:
		return value.Float{Val: float64(v)}
	case float64:
		return value.Float{Val: v}
	case string:
		return value.String{Val: v}
	case []interface{}:
		elems := make([]value.Value, len(v))
		for i, e := range v {
			elems[i] = WrapHost(e)
		}
		return value.List{Elems: elems}
	default:
		return value.Object{Val: v}
	}
}

// UnwrapHost strips the tag from scalar values for host consumption.
// Language-only kinds pass through unchanged; Char stays wrapped
// because a bare rune would re-tag as Integer and make the two stack
// modes disagree on the char predicate.
func UnwrapHost(v value.Value) interface{} {
	switch v := v.(type) {
	case value.Integer:
		return v.Val
	case value.Float:
		return v.Val
	case value.Boolean:
		return v.Val
	case value.String:
		return v.Val
	case value.List:
		out := make([]interface{}, len(v.Elems))
		for i, e := range v.Elems {
			out[i] = UnwrapHost(e)
		}
		return out
	case value.Object:
		return v.Val
	default:
		return v
	}
}

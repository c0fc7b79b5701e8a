package value

import (
	"math/big"
	"testing"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"integer", NewInt(42), "42"},
		{"big integer", FromBig(mustBig("123456789012345678901234567890")), "123456789012345678901234567890"},
		{"float keeps marker", Float{Val: 3}, "3.0"},
		{"float fraction", Float{Val: 2.5}, "2.5"},
		{"char", Char{Val: 'a'}, "'a'"},
		{"char newline", Char{Val: '\n'}, `'\n'`},
		{"boolean", Boolean{Val: true}, "true"},
		{"string quoted", String{Val: "hi\n"}, `"hi\n"`},
		{"symbol", Symbol{Name: "dup"}, "dup"},
		{"list", List{Elems: []Value{NewInt(1), String{Val: "a"}}}, `[1 "a"]`},
		{"empty list", List{}, "[]"},
		{"quotation", Quotation{Terms: []Term{Push{Val: NewInt(2)}, Word{Name: "dup"}}}, "[2 dup]"},
		{"set ascending", Set{Mask: 1<<5 | 1<<0 | 1<<3}, "{0 3 5}"},
		{"empty set", Set{}, "{}"},
		{"file", File{Name: "data.txt"}, "file:data.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Inspect(); got != tt.want {
				t.Errorf("Inspect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}
	return n
}

func TestTruthy(t *testing.T) {
	truthy := []Value{
		Boolean{Val: true}, NewInt(1), NewInt(-1), Float{Val: 0.5},
		Char{Val: 'a'}, String{Val: "x"},
		List{Elems: []Value{NewInt(1)}},
		Quotation{Terms: []Term{Word{Name: "dup"}}},
		Set{Mask: 1}, Symbol{Name: "w"},
	}
	falsy := []Value{
		Boolean{Val: false}, NewInt(0), Float{Val: 0},
		Char{Val: 0}, String{}, List{}, Quotation{}, Set{},
	}
	for _, v := range truthy {
		if !Truthy(v) {
			t.Errorf("Truthy(%s) = false, want true", v.Inspect())
		}
	}
	for _, v := range falsy {
		if Truthy(v) {
			t.Errorf("Truthy(%s) = true, want false", v.Inspect())
		}
	}
}

func TestEqual_NumericCrossKind(t *testing.T) {
	if !Equal(NewInt(3), Float{Val: 3}) {
		t.Error("3 and 3.0 should be equal")
	}
	if !Equal(Char{Val: 'A'}, NewInt(65)) {
		t.Error("'A' and 65 should be equal")
	}
	if Equal(NewInt(3), Float{Val: 3.5}) {
		t.Error("3 and 3.5 should differ")
	}
	if Equal(NewInt(3), String{Val: "3"}) {
		t.Error("3 and \"3\" should differ")
	}
}

func TestEqual_Structural(t *testing.T) {
	a := List{Elems: []Value{NewInt(1), List{Elems: []Value{NewInt(2)}}}}
	b := List{Elems: []Value{NewInt(1), List{Elems: []Value{NewInt(2)}}}}
	if !Equal(a, b) {
		t.Error("identical nested lists should be equal")
	}
	c := List{Elems: []Value{NewInt(1), List{Elems: []Value{NewInt(3)}}}}
	if Equal(a, c) {
		t.Error("different nested lists should differ")
	}
	q1 := Quotation{Terms: []Term{Push{Val: NewInt(1)}, Word{Name: "dup"}}}
	q2 := Quotation{Terms: []Term{Push{Val: NewInt(1)}, Word{Name: "dup"}}}
	if !Equal(q1, q2) {
		t.Error("identical quotations should be equal")
	}
}

func TestSet_Operations(t *testing.T) {
	s := Set{}
	s, ok := s.With(0)
	if !ok {
		t.Fatal("With(0) rejected")
	}
	s, _ = s.With(63)
	if !s.Has(0) || !s.Has(63) || s.Has(5) {
		t.Errorf("membership wrong: mask %b", s.Mask)
	}
	if _, ok := s.With(64); ok {
		t.Error("With(64) should be rejected")
	}
	if _, ok := s.With(-1); ok {
		t.Error("With(-1) should be rejected")
	}
	members := s.Members()
	if len(members) != 2 || members[0] != 0 || members[1] != 63 {
		t.Errorf("Members() = %v, want [0 63]", members)
	}
}

func TestSeqView(t *testing.T) {
	t.Run("string to chars", func(t *testing.T) {
		elems, ok := SeqView(String{Val: "ab"})
		if !ok || len(elems) != 2 {
			t.Fatalf("SeqView = %v, %v", elems, ok)
		}
		if c := elems[0].(Char); c.Val != 'a' {
			t.Errorf("first = %q, want 'a'", c.Val)
		}
	})
	t.Run("set ascending integers", func(t *testing.T) {
		elems, ok := SeqView(Set{Mask: 1<<4 | 1<<1})
		if !ok || len(elems) != 2 {
			t.Fatalf("SeqView = %v, %v", elems, ok)
		}
		if !Equal(elems[0], NewInt(1)) || !Equal(elems[1], NewInt(4)) {
			t.Errorf("elems = %s %s, want 1 4", elems[0].Inspect(), elems[1].Inspect())
		}
	})
	t.Run("quotation words become symbols", func(t *testing.T) {
		elems, ok := SeqView(Quotation{Terms: []Term{Word{Name: "dup"}}})
		if !ok || len(elems) != 1 {
			t.Fatalf("SeqView = %v, %v", elems, ok)
		}
		if s, ok := elems[0].(Symbol); !ok || s.Name != "dup" {
			t.Errorf("elem = %#v, want Symbol{dup}", elems[0])
		}
	})
	t.Run("non-aggregate", func(t *testing.T) {
		if _, ok := SeqView(NewInt(1)); ok {
			t.Error("integer should not have a sequence view")
		}
	})
}

func TestMakeAggregate_Degradation(t *testing.T) {
	t.Run("chars rebuild string", func(t *testing.T) {
		out := MakeAggregate(KindString, []Value{Char{Val: 'h'}, Char{Val: 'i'}})
		if s, ok := out.(String); !ok || s.Val != "hi" {
			t.Errorf("got %s, want \"hi\"", out.Inspect())
		}
	})
	t.Run("mixed string degrades to list", func(t *testing.T) {
		out := MakeAggregate(KindString, []Value{Char{Val: 'h'}, NewInt(1)})
		if out.Kind() != KindList {
			t.Errorf("kind = %s, want list", out.Kind())
		}
	})
	t.Run("in-range ints rebuild set", func(t *testing.T) {
		out := MakeAggregate(KindSet, []Value{NewInt(1), NewInt(9)})
		if s, ok := out.(Set); !ok || s.Mask != 1<<1|1<<9 {
			t.Errorf("got %s, want {1 9}", out.Inspect())
		}
	})
	t.Run("out-of-range set degrades to list", func(t *testing.T) {
		out := MakeAggregate(KindSet, []Value{NewInt(100)})
		if out.Kind() != KindList {
			t.Errorf("kind = %s, want list", out.Kind())
		}
	})
	t.Run("quotation flattens to list", func(t *testing.T) {
		out := MakeAggregate(KindQuotation, []Value{NewInt(1)})
		if out.Kind() != KindList {
			t.Errorf("kind = %s, want list", out.Kind())
		}
	})
}

func TestFromFloat_Collapse(t *testing.T) {
	if v := FromFloat(4); v.Kind() != KindInteger {
		t.Errorf("FromFloat(4) kind = %s, want integer", v.Kind())
	}
	if v := FromFloat(2.5); v.Kind() != KindFloat {
		t.Errorf("FromFloat(2.5) kind = %s, want float", v.Kind())
	}
	// Beyond 2^53 float64 loses integer precision; no collapse.
	if v := FromFloat(1e300); v.Kind() != KindFloat {
		t.Errorf("FromFloat(1e300) kind = %s, want float", v.Kind())
	}
}

func TestCompare(t *testing.T) {
	a, _ := AsNumber(NewInt(2))
	b, _ := AsNumber(Float{Val: 2.5})
	if Compare(a, b) != -1 {
		t.Error("2 < 2.5 expected")
	}
	c, _ := AsNumber(Char{Val: 'A'})
	d, _ := AsNumber(NewInt(65))
	if Compare(c, d) != 0 {
		t.Error("'A' should compare equal to 65")
	}
	e, _ := AsNumber(Boolean{Val: true})
	f, _ := AsNumber(NewInt(0))
	if Compare(e, f) != 1 {
		t.Error("true should compare greater than 0")
	}
}

package value

// The aggregate kinds — List, Quotation, String, Set — share one
// canonical ordered-sequence view: strings become chars, sets their
// members in ascending order, quotations their terms viewed as values.

// IsAggregate reports whether v supports the polymorphic sequence
// operations.
func IsAggregate(v Value) bool {
	switch v.Kind() {
	case KindList, KindQuotation, KindString, KindSet:
		return true
	}
	return false
}

// SeqView returns the canonical element sequence of an aggregate.
func SeqView(v Value) ([]Value, bool) {
	switch v := v.(type) {
	case List:
		return v.Elems, true
	case Quotation:
		out := make([]Value, len(v.Terms))
		for i, t := range v.Terms {
			out[i] = TermValue(t)
		}
		return out, true
	case String:
		runes := []rune(v.Val)
		out := make([]Value, len(runes))
		for i, r := range runes {
			out[i] = Char{Val: r}
		}
		return out, true
	case Set:
		members := v.Members()
		out := make([]Value, len(members))
		for i, m := range members {
			out[i] = NewInt(m)
		}
		return out, true
	}
	return nil, false
}

// MakeAggregate rebuilds an aggregate of the given kind from elements,
// degrading to List when the element types no longer permit the
// original kind: a String result needs all-Char elements, a Set result
// needs all-Integer elements within [0, 63]. Quotation inputs always
// yield a List (the terms have been flattened to values).
func MakeAggregate(kind Kind, elems []Value) Value {
	switch kind {
	case KindString:
		runes := make([]rune, 0, len(elems))
		for _, e := range elems {
			c, ok := e.(Char)
			if !ok {
				return List{Elems: elems}
			}
			runes = append(runes, c.Val)
		}
		return String{Val: string(runes)}
	case KindSet:
		s := Set{}
		for _, e := range elems {
			i, ok := e.(Integer)
			if !ok || !i.Val.IsInt64() {
				return List{Elems: elems}
			}
			next, ok := s.With(i.Val.Int64())
			if !ok {
				return List{Elems: elems}
			}
			s = next
		}
		return s
	default:
		return List{Elems: elems}
	}
}

// Equal implements the language's equality: numeric operands compare by
// value across kinds (3 = 3.0), everything else compares structurally.
func Equal(a, b Value) bool {
	an, aok := AsNumber(a)
	bn, bok := AsNumber(b)
	if aok && bok {
		return Compare(an, bn) == 0
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a := a.(type) {
	case String:
		return a.Val == b.(String).Val
	case Symbol:
		return a.Name == b.(Symbol).Name
	case List:
		bl := b.(List)
		if len(a.Elems) != len(bl.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], bl.Elems[i]) {
				return false
			}
		}
		return true
	case Quotation:
		return termsEqual(a.Terms, b.(Quotation).Terms)
	case Set:
		return a.Mask == b.(Set).Mask
	case File:
		return a.State == b.(File).State
	case Object:
		return a.Val == b.(Object).Val
	}
	return false
}

func termsEqual(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		switch at := a[i].(type) {
		case Push:
			bt, ok := b[i].(Push)
			if !ok || !Equal(at.Val, bt.Val) {
				return false
			}
		case Word:
			bt, ok := b[i].(Word)
			if !ok || at.Name != bt.Name {
				return false
			}
		case Def:
			bt, ok := b[i].(Def)
			if !ok || at.Name != bt.Name || !termsEqual(at.Body.Terms, bt.Body.Terms) {
				return false
			}
		}
	}
	return true
}

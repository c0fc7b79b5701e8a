package parser

import (
	"errors"
	"testing"

	"github.com/funvibe/joy/internal/diagnostics"
	"github.com/funvibe/joy/internal/value"
)

func mustParse(t *testing.T, source string) value.Quotation {
	t.Helper()
	q, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", source, err)
	}
	return q
}

func TestParse_Literals(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   value.Value
	}{
		{"integer", "42", value.NewInt(42)},
		{"negative", "-7", value.NewInt(-7)},
		{"float", "3.5", value.Float{Val: 3.5}},
		{"string", `"hi"`, value.String{Val: "hi"}},
		{"char", "'x'", value.Char{Val: 'x'}},
		{"true", "true", value.Boolean{Val: true}},
		{"false", "false", value.Boolean{Val: false}},
		{"set", "{0 3 5}", value.Set{Mask: 1 | 1<<3 | 1<<5}},
		{"empty set", "{}", value.Set{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mustParse(t, tt.source)
			if len(q.Terms) != 1 {
				t.Fatalf("term count = %d, want 1", len(q.Terms))
			}
			push, ok := q.Terms[0].(value.Push)
			if !ok {
				t.Fatalf("term = %T, want Push", q.Terms[0])
			}
			if !value.Equal(push.Val, tt.want) {
				t.Errorf("value = %s, want %s", push.Val.Inspect(), tt.want.Inspect())
			}
		})
	}
}

func TestParse_WordsStayUnresolved(t *testing.T) {
	q := mustParse(t, "undefined-word dup")
	if len(q.Terms) != 2 {
		t.Fatalf("term count = %d, want 2", len(q.Terms))
	}
	w, ok := q.Terms[0].(value.Word)
	if !ok || w.Name != "undefined-word" {
		t.Errorf("term 0 = %#v, want Word{undefined-word}", q.Terms[0])
	}
}

func TestParse_QuotationIsData(t *testing.T) {
	q := mustParse(t, "[1 dup [2]]")
	push, ok := q.Terms[0].(value.Push)
	if !ok {
		t.Fatalf("term = %T, want Push", q.Terms[0])
	}
	quot, ok := push.Val.(value.Quotation)
	if !ok {
		t.Fatalf("value kind = %s, want quotation", push.Val.Kind())
	}
	if len(quot.Terms) != 3 {
		t.Fatalf("inner terms = %d, want 3", len(quot.Terms))
	}
	if _, ok := quot.Terms[1].(value.Word); !ok {
		t.Errorf("inner term 1 = %T, want Word", quot.Terms[1])
	}
	if inner, ok := quot.Terms[2].(value.Push); !ok {
		t.Errorf("inner term 2 = %T, want Push", quot.Terms[2])
	} else if _, ok := inner.Val.(value.Quotation); !ok {
		t.Errorf("nested value kind = %s, want quotation", inner.Val.Kind())
	}
}

func TestParse_Definition(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"period terminator", "DEFINE square == dup * ."},
		{"semicolon terminator", "DEFINE square == dup * ;"},
		{"end of input", "DEFINE square == dup *"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mustParse(t, tt.source)
			if len(q.Terms) != 1 {
				t.Fatalf("term count = %d, want 1", len(q.Terms))
			}
			def, ok := q.Terms[0].(value.Def)
			if !ok {
				t.Fatalf("term = %T, want Def", q.Terms[0])
			}
			if def.Name != "square" {
				t.Errorf("name = %q, want square", def.Name)
			}
			if len(def.Body.Terms) != 2 {
				t.Errorf("body terms = %d, want 2", len(def.Body.Terms))
			}
		})
	}
}

func TestParse_TerminatorsProduceNothing(t *testing.T) {
	q := mustParse(t, "1 ; 2 .")
	if len(q.Terms) != 2 {
		t.Errorf("term count = %d, want 2", len(q.Terms))
	}
}

func TestParse_Errors(t *testing.T) {
	t.Run("unmatched bracket reports opening position", func(t *testing.T) {
		_, err := Parse("1 2\n  [3 4")
		var syntaxErr *diagnostics.SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("error = %v, want SyntaxError", err)
		}
		if syntaxErr.Line != 2 || syntaxErr.Column != 3 {
			t.Errorf("position = %d:%d, want 2:3", syntaxErr.Line, syntaxErr.Column)
		}
	})

	t.Run("set member out of range", func(t *testing.T) {
		_, err := Parse("{64}")
		var memberErr *diagnostics.SetMemberError
		if !errors.As(err, &memberErr) {
			t.Fatalf("error = %v, want SetMemberError", err)
		}
		if memberErr.Member != 64 {
			t.Errorf("member = %d, want 64", memberErr.Member)
		}
	})

	t.Run("negative set member", func(t *testing.T) {
		_, err := Parse("{-1}")
		var memberErr *diagnostics.SetMemberError
		if !errors.As(err, &memberErr) {
			t.Fatalf("error = %v, want SetMemberError", err)
		}
	})

	t.Run("non-integer set member", func(t *testing.T) {
		_, err := Parse("{1.5}")
		var typeErr *diagnostics.TypeError
		if !errors.As(err, &typeErr) {
			t.Fatalf("error = %v, want TypeError", err)
		}
		if typeErr.Op != "set" || typeErr.Actual != "float" {
			t.Errorf("error = %v, want op set / actual float", typeErr)
		}
	})

	t.Run("symbol set member", func(t *testing.T) {
		_, err := Parse("{dup}")
		var typeErr *diagnostics.TypeError
		if !errors.As(err, &typeErr) {
			t.Fatalf("error = %v, want TypeError", err)
		}
		if typeErr.Actual != "symbol" {
			t.Errorf("actual = %q, want symbol", typeErr.Actual)
		}
	})

	t.Run("scan error surfaces as syntax error", func(t *testing.T) {
		_, err := Parse(`"unterminated`)
		var syntaxErr *diagnostics.SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("error = %v, want SyntaxError", err)
		}
	})

	t.Run("definition without name", func(t *testing.T) {
		_, err := Parse("DEFINE == dup .")
		var syntaxErr *diagnostics.SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("error = %v, want SyntaxError", err)
		}
	})

	t.Run("stray closing bracket", func(t *testing.T) {
		_, err := Parse("1 ]")
		var syntaxErr *diagnostics.SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("error = %v, want SyntaxError", err)
		}
	})
}

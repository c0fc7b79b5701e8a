package evaluator

import (
	"sort"
	"testing"

	"github.com/funvibe/joy/internal/value"
)

func TestRegistry_CoreWordsPresent(t *testing.T) {
	for _, name := range []string{
		"dup", "pop", "swap", "+", "-", "*", "/", "rem",
		"cons", "first", "rest", "i", "dip", "ifte", "map", "filter",
		"fold", "step", "times", "while", "typeof", "put", "fopen",
	} {
		if _, ok := Lookup(name); !ok {
			t.Errorf("primitive %q is not registered", name)
		}
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no primitives registered")
	}
	if !sort.StringsAreSorted(names) {
		t.Error("Names() is not sorted")
	}
}

func TestRegistry_DocMetadata(t *testing.T) {
	p, ok := Lookup("dup")
	if !ok {
		t.Fatal("dup not registered")
	}
	if p.Params == "" || p.Doc == "" {
		t.Errorf("dup metadata incomplete: %+v", p)
	}
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	name := "test-word-override"
	Register(Primitive{Name: name, Fn: func(ctx *Context) error {
		ctx.Stack.Push(value.NewInt(1))
		return nil
	}})
	Register(Primitive{Name: name, Fn: func(ctx *Context) error {
		ctx.Stack.Push(value.NewInt(2))
		return nil
	}})
	defer delete(primitives, name)

	e := New()
	if err := e.Run(name); err != nil {
		t.Fatal(err)
	}
	top, _ := e.Ctx.Stack.Pop()
	if !value.Equal(top, value.NewInt(2)) {
		t.Errorf("top = %s, want 2", top.Inspect())
	}
}

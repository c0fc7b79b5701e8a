// Package evaluator executes parsed programs against a value stack. The
// primitive vocabulary registers itself into a process-wide table; user
// definitions live per-evaluator and are resolved late, at call time.
package evaluator

import (
	"io"
	"os"
	"sort"

	"github.com/funvibe/joy/internal/config"
	"github.com/funvibe/joy/internal/diagnostics"
	"github.com/funvibe/joy/internal/parser"
	"github.com/funvibe/joy/internal/value"
)

// HostBridge hands expressions to an embedding host. It is only
// consulted by the eval/exec words; a nil bridge makes those words
// fail.
type HostBridge interface {
	// Eval evaluates a host expression and returns its result.
	Eval(code string) (interface{}, error)
	// Exec runs a host statement for its side effects.
	Exec(code string) error
}

type Evaluator struct {
	Ctx *Context

	// Out receives the output of the printing words.
	Out io.Writer

	// MaxDepth bounds quotation nesting; 0 means the default ceiling.
	MaxDepth int

	depth       int
	definitions map[string]value.Quotation
	bridge      HostBridge
}

// New builds an evaluator over a fully tagged stack.
func New() *Evaluator {
	return newWith(NewTypedStack())
}

// NewDynamic builds an evaluator over a raw-host-value stack.
func NewDynamic() *Evaluator {
	return newWith(NewDynamicStack())
}

func newWith(s Stack) *Evaluator {
	e := &Evaluator{
		Out:         os.Stdout,
		MaxDepth:    config.DefaultRecursionLimit,
		definitions: map[string]value.Quotation{},
	}
	e.Ctx = &Context{Stack: s, eval: e}
	return e
}

// SetBridge installs the host bridge used by eval and exec.
func (e *Evaluator) SetBridge(b HostBridge) { e.bridge = b }

// Define binds a user word. Redefinition replaces the old body; the
// binding is consulted only when the word is next executed.
func (e *Evaluator) Define(name string, body value.Quotation) {
	e.definitions[name] = body
}

// Definition looks up a user word.
func (e *Evaluator) Definition(name string) (value.Quotation, bool) {
	q, ok := e.definitions[name]
	return q, ok
}

// Definitions returns the user-defined word names in sorted order.
func (e *Evaluator) Definitions() []string {
	out := make([]string, 0, len(e.definitions))
	for name := range e.definitions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Run parses and executes source against the current stack.
func (e *Evaluator) Run(source string) error {
	program, err := parser.Parse(source)
	if err != nil {
		return err
	}
	return e.Execute(program)
}

// Execute runs a quotation's terms in order. Each entry counts against
// the nesting ceiling, covering both combinator nesting and recursive
// user definitions.
func (e *Evaluator) Execute(q value.Quotation) error {
	limit := e.MaxDepth
	if limit <= 0 {
		limit = config.DefaultRecursionLimit
	}
	if e.depth >= limit {
		return &diagnostics.RecursionError{Depth: e.depth}
	}
	e.depth++
	defer func() { e.depth-- }()

	for _, t := range q.Terms {
		if err := e.executeTerm(t); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) executeTerm(t value.Term) error {
	switch t := t.(type) {
	case value.Push:
		e.Ctx.Stack.Push(t.Val)
		return nil
	case value.Word:
		return e.executeSymbol(t.Name)
	case value.Def:
		e.Define(t.Name, t.Body)
		return nil
	}
	return nil
}

// executeSymbol resolves a word at call time: primitives first, then
// user definitions.
func (e *Evaluator) executeSymbol(name string) error {
	if p, ok := Lookup(name); ok {
		return p.Fn(e.Ctx)
	}
	if body, ok := e.definitions[name]; ok {
		return e.Execute(body)
	}
	return &diagnostics.UndefinedWordError{Name: name}
}

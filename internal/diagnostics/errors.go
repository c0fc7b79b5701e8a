// Package diagnostics defines the interpreter's error taxonomy. Every
// failure the core can produce is a structured value from this package,
// distinct from host-runtime faults; callers match with errors.As.
package diagnostics

import "fmt"

// StackUnderflowError reports an operation that needed more stack items
// than were available.
type StackUnderflowError struct {
	Op        string
	Required  int
	Available int
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("%s: requires %d items, stack has %d", e.Op, e.Required, e.Available)
}

// TypeError reports a value of an unexpected type. Arg is the 1-based
// argument position when known, 0 otherwise.
type TypeError struct {
	Op       string
	Expected string
	Actual   string
	Arg      int
}

func (e *TypeError) Error() string {
	if e.Arg > 0 {
		return fmt.Sprintf("%s: argument %d expected %s, got %s", e.Op, e.Arg, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: expected %s, got %s", e.Op, e.Expected, e.Actual)
}

// UndefinedWordError reports a symbol bound to neither a primitive nor a
// user definition.
type UndefinedWordError struct {
	Name string
}

func (e *UndefinedWordError) Error() string {
	return fmt.Sprintf("undefined word: %s", e.Name)
}

// SyntaxError reports a scan or parse failure. Line and Column are
// 1-based; zero means the position is unknown.
type SyntaxError struct {
	Msg    string
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d, column %d", e.Msg, e.Line, e.Column)
	}
	return e.Msg
}

// SetMemberError reports a set member outside [0, 63].
type SetMemberError struct {
	Member int64
}

func (e *SetMemberError) Error() string {
	return fmt.Sprintf("set member %d out of valid range [0, 63]", e.Member)
}

// DivisionByZeroError reports a zero divisor in /, rem or div.
type DivisionByZeroError struct {
	Op string
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s: division by zero", e.Op)
}

// EmptyAggregateError reports an element access on an empty aggregate.
type EmptyAggregateError struct {
	Op string
}

func (e *EmptyAggregateError) Error() string {
	return fmt.Sprintf("%s: empty aggregate", e.Op)
}

// RecursionError reports that quotation execution exceeded the
// configured nesting ceiling.
type RecursionError struct {
	Depth int
}

func (e *RecursionError) Error() string {
	return fmt.Sprintf("recursion limit exceeded (depth %d)", e.Depth)
}

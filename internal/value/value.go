// Package value defines the runtime datum model: a closed tagged union
// of every value a program can manipulate, plus the Term representation
// of unevaluated program text. Values are immutable; aggregate
// operations build new values and may share structure.
package value

import (
	"bufio"
	"math/big"
	"os"
)

type Kind uint8

const (
	KindInteger Kind = iota
	KindFloat
	KindChar
	KindBoolean
	KindString
	KindSymbol
	KindList
	KindQuotation
	KindSet
	KindFile
	KindObject
)

var kindNames = [...]string{
	KindInteger:   "integer",
	KindFloat:     "float",
	KindChar:      "char",
	KindBoolean:   "boolean",
	KindString:    "string",
	KindSymbol:    "symbol",
	KindList:      "list",
	KindQuotation: "quotation",
	KindSet:       "set",
	KindFile:      "file",
	KindObject:    "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is the closed sum of runtime data. Every variant is a small
// struct with a value receiver; the Kind tag drives per-operation
// dispatch in the primitive library.
type Value interface {
	Kind() Kind
	Inspect() string
}

// Integer holds an arbitrary-precision signed integer.
type Integer struct {
	Val *big.Int
}

func NewInt(i int64) Integer     { return Integer{Val: big.NewInt(i)} }
func FromBig(i *big.Int) Integer { return Integer{Val: i} }
func (v Integer) Kind() Kind     { return KindInteger }

type Float struct {
	Val float64
}

func (v Float) Kind() Kind { return KindFloat }

// Char is a single Unicode code point.
type Char struct {
	Val rune
}

func (v Char) Kind() Kind { return KindChar }

type Boolean struct {
	Val bool
}

func (v Boolean) Kind() Kind { return KindBoolean }

type String struct {
	Val string
}

func (v String) Kind() Kind { return KindString }

// Symbol is an unresolved word reference as a first-class datum.
type Symbol struct {
	Name string
}

func (v Symbol) Kind() Kind { return KindSymbol }

// List is an ordered, heterogeneous, immutable sequence.
type List struct {
	Elems []Value
}

func (v List) Kind() Kind { return KindList }

// Quotation is an unevaluated program fragment: a List specialized to
// hold Terms. It is data until a combinator invokes it.
type Quotation struct {
	Terms []Term
}

func (v Quotation) Kind() Kind { return KindQuotation }

// Set is a subset of the integers 0..63, stored as a membership mask.
type Set struct {
	Mask uint64
}

func (v Set) Kind() Kind { return KindSet }

// SetWith returns s extended with member m; ok is false when m lies
// outside [0, 63].
func (v Set) With(m int64) (Set, bool) {
	if m < 0 || m > 63 {
		return v, false
	}
	return Set{Mask: v.Mask | 1<<uint(m)}, true
}

func (v Set) Has(m int64) bool {
	return m >= 0 && m <= 63 && v.Mask&(1<<uint(m)) != 0
}

// Members returns the set's members in ascending order.
func (v Set) Members() []int64 {
	var out []int64
	for i := int64(0); i < 64; i++ {
		if v.Mask&(1<<uint(i)) != 0 {
			out = append(out, i)
		}
	}
	return out
}

// FileState is the mutable backing of a File handle.
type FileState struct {
	Handle *os.File
	Reader *bufio.Reader
	AtEOF  bool
	Closed bool
}

// File is an opaque handle capability wrapping an open host file.
type File struct {
	Name  string
	State *FileState
}

func (v File) Kind() Kind { return KindFile }

// Object wraps an arbitrary host value. It only appears on the dynamic
// stack, never in parsed programs.
type Object struct {
	Val interface{}
}

func (v Object) Kind() Kind { return KindObject }

// Term is one syntactic unit of a program: a literal push, a late-bound
// word reference, or a definition statement.
type Term interface {
	term()
}

// Push is a literal term; executing it pushes Val (which may itself be
// a Quotation — quotations are pushed, not run).
type Push struct {
	Val Value
}

// Word is a symbol reference resolved at execution time.
type Word struct {
	Name string
}

// Def is a DEFINE statement. The evaluator registers Name -> Body and
// discards the term; it is not itself executable data.
type Def struct {
	Name string
	Body Quotation
}

func (Push) term() {}
func (Word) term() {}
func (Def) term()  {}

// TermValue converts a quotation term to the value it denotes when the
// quotation is viewed as an aggregate: literals are themselves, word
// references become Symbols.
func TermValue(t Term) Value {
	switch t := t.(type) {
	case Push:
		return t.Val
	case Word:
		return Symbol{Name: t.Name}
	case Def:
		return Symbol{Name: t.Name}
	}
	return nil
}

// Truthy reports the truth value used by conditionals: false, zero and
// empty aggregates are falsy, everything else is truthy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Boolean:
		return v.Val
	case Integer:
		return v.Val.Sign() != 0
	case Float:
		return v.Val != 0
	case Char:
		return v.Val != 0
	case String:
		return len(v.Val) > 0
	case List:
		return len(v.Elems) > 0
	case Quotation:
		return len(v.Terms) > 0
	case Set:
		return v.Mask != 0
	case Symbol:
		return true
	case File:
		return v.State != nil && !v.State.Closed
	case Object:
		return v.Val != nil
	}
	return false
}

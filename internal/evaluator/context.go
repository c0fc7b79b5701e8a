package evaluator

import (
	"github.com/funvibe/joy/internal/diagnostics"
	"github.com/funvibe/joy/internal/value"
)

// Context is what a primitive sees: the live stack, the dump of saved
// stack checkpoints, and a handle back to the evaluator for running
// quotations.
type Context struct {
	Stack Stack

	// saved is the dump: a stack of stack snapshots kept by combinators
	// across quotation calls. Checkpoint ids index into it.
	saved []Stack

	eval *Evaluator
}

// Evaluator returns the owning evaluator, for primitives that execute
// quotations or touch definitions.
func (c *Context) Evaluator() *Evaluator { return c.eval }

// SaveStack pushes a snapshot of the current stack onto the dump and
// returns its checkpoint id.
func (c *Context) SaveStack() int {
	c.saved = append(c.saved, c.Stack.Copy())
	return len(c.saved) - 1
}

func (c *Context) checkpoint(id int) (Stack, error) {
	if id < 0 || id >= len(c.saved) {
		return nil, &diagnostics.StackUnderflowError{Op: "restore", Required: id + 1, Available: len(c.saved)}
	}
	return c.saved[id], nil
}

// RestoreStack replaces the current stack with the checkpoint, leaving
// the checkpoint on the dump for further restores.
func (c *Context) RestoreStack(id int) error {
	s, err := c.checkpoint(id)
	if err != nil {
		return err
	}
	c.Stack = s.Copy()
	return nil
}

// PopSaved discards the newest checkpoint.
func (c *Context) PopSaved() error {
	if len(c.saved) == 0 {
		return &diagnostics.StackUnderflowError{Op: "restore", Required: 1, Available: 0}
	}
	c.saved = c.saved[:len(c.saved)-1]
	return nil
}

// GetSaved reads the item at depth (0 is the top) from a checkpoint
// without restoring it.
func (c *Context) GetSaved(id, depth int) (value.Value, error) {
	s, err := c.checkpoint(id)
	if err != nil {
		return nil, err
	}
	return s.Peek(depth)
}

// Pop is Stack.Pop with the calling word's name on the underflow error.
func (c *Context) Pop(op string) (value.Value, error) {
	v, err := c.Stack.Pop()
	if err != nil {
		return nil, &diagnostics.StackUnderflowError{Op: op, Required: 1, Available: c.Stack.Depth()}
	}
	return v, nil
}

// PopN is Stack.PopN with the calling word's name on the underflow
// error; values come back top-first.
func (c *Context) PopN(op string, n int) ([]value.Value, error) {
	vals, err := c.Stack.PopN(n)
	if err != nil {
		return nil, &diagnostics.StackUnderflowError{Op: op, Required: n, Available: c.Stack.Depth()}
	}
	return vals, nil
}

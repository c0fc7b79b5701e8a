package evaluator

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/funvibe/joy/internal/diagnostics"
	"github.com/funvibe/joy/internal/value"
)

func popFile(ctx *Context, op string) (value.File, error) {
	v, err := ctx.Pop(op)
	if err != nil {
		return value.File{}, err
	}
	f, ok := v.(value.File)
	if !ok {
		return value.File{}, &diagnostics.TypeError{Op: op, Expected: "file", Actual: v.Kind().String(), Arg: 1}
	}
	return f, nil
}

func init() {
	Register(Primitive{Name: "put", Params: "X ->", Doc: "Pops the top item and prints its display form.", Fn: func(ctx *Context) error {
		v, err := ctx.Pop("put")
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.Evaluator().Out, v.Inspect())
		return nil
	}})

	Register(Primitive{Name: "putchars", Params: "S ->", Doc: "Pops a string or char and writes it raw, without quotes or newline.", Fn: func(ctx *Context) error {
		v, err := ctx.Pop("putchars")
		if err != nil {
			return err
		}
		switch v := v.(type) {
		case value.String:
			fmt.Fprint(ctx.Evaluator().Out, v.Val)
		case value.Char:
			fmt.Fprint(ctx.Evaluator().Out, string(v.Val))
		default:
			return &diagnostics.TypeError{Op: "putchars", Expected: "string", Actual: v.Kind().String(), Arg: 1}
		}
		return nil
	}})

	Register(Primitive{Name: "newline", Params: "->", Doc: "Writes a newline.", Fn: func(ctx *Context) error {
		fmt.Fprintln(ctx.Evaluator().Out)
		return nil
	}})

	Register(Primitive{Name: "fopen", Params: "P M -> F", Doc: "Opens path P with mode \"r\", \"w\" or \"a\" and pushes the file handle.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("fopen", 2)
		if err != nil {
			return err
		}
		mode, ok := vs[0].(value.String)
		if !ok {
			return &diagnostics.TypeError{Op: "fopen", Expected: "string", Actual: vs[0].Kind().String(), Arg: 2}
		}
		path, ok := vs[1].(value.String)
		if !ok {
			return &diagnostics.TypeError{Op: "fopen", Expected: "string", Actual: vs[1].Kind().String(), Arg: 1}
		}
		var flag int
		switch mode.Val {
		case "r":
			flag = os.O_RDONLY
		case "w":
			flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		case "a":
			flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
		default:
			return &diagnostics.TypeError{Op: "fopen", Expected: `mode "r", "w" or "a"`, Actual: "string", Arg: 2}
		}
		handle, err := os.OpenFile(path.Val, flag, 0o644)
		if err != nil {
			return err
		}
		state := &value.FileState{Handle: handle}
		if mode.Val == "r" {
			state.Reader = bufio.NewReader(handle)
		}
		ctx.Stack.Push(value.File{Name: path.Val, State: state})
		return nil
	}})

	Register(Primitive{Name: "fclose", Params: "F ->", Doc: "Closes a file handle.", Fn: func(ctx *Context) error {
		f, err := popFile(ctx, "fclose")
		if err != nil {
			return err
		}
		if f.State == nil || f.State.Closed {
			return nil
		}
		f.State.Closed = true
		return f.State.Handle.Close()
	}})

	Register(Primitive{Name: "fgets", Params: "F -> F S", Doc: "Reads one line, newline included; at end of file pushes the empty string.", Fn: func(ctx *Context) error {
		f, err := popFile(ctx, "fgets")
		if err != nil {
			return err
		}
		if f.State == nil || f.State.Closed || f.State.Reader == nil {
			return &diagnostics.TypeError{Op: "fgets", Expected: "readable file", Actual: "file", Arg: 1}
		}
		line, err := f.State.Reader.ReadString('\n')
		if err == io.EOF {
			f.State.AtEOF = true
		} else if err != nil {
			return err
		}
		ctx.Stack.Push(f)
		ctx.Stack.Push(value.String{Val: line})
		return nil
	}})

	Register(Primitive{Name: "fputchars", Params: "F S -> F", Doc: "Writes a string to a file.", Fn: func(ctx *Context) error {
		vs, err := ctx.PopN("fputchars", 2)
		if err != nil {
			return err
		}
		s, ok := vs[0].(value.String)
		if !ok {
			return &diagnostics.TypeError{Op: "fputchars", Expected: "string", Actual: vs[0].Kind().String(), Arg: 2}
		}
		f, ok := vs[1].(value.File)
		if !ok {
			return &diagnostics.TypeError{Op: "fputchars", Expected: "file", Actual: vs[1].Kind().String(), Arg: 1}
		}
		if f.State == nil || f.State.Closed {
			return &diagnostics.TypeError{Op: "fputchars", Expected: "writable file", Actual: "file", Arg: 1}
		}
		if _, err := f.State.Handle.WriteString(s.Val); err != nil {
			return err
		}
		ctx.Stack.Push(f)
		return nil
	}})

	Register(Primitive{Name: "feof", Params: "F -> F B", Doc: "Tests whether a file has reached end of input.", Fn: func(ctx *Context) error {
		f, err := popFile(ctx, "feof")
		if err != nil {
			return err
		}
		atEOF := f.State == nil || f.State.Closed || f.State.AtEOF
		ctx.Stack.Push(f)
		ctx.Stack.Push(value.Boolean{Val: atEOF})
		return nil
	}})
}

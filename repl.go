package gocalc

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// dumper shows the node structs themselves rather than their prefix form.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
}

// Repl reads one expression per line from In and writes each result to Out.
// A failing line is reported to Err and does not stop the loop.
type Repl struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Prompt is written to Out before each line when non-empty.
	Prompt string

	Lenient bool
	Tree    bool // print the prefix form of each tree
	Dump    bool // spew the tree structure
}

// Run loops until In is exhausted. It returns the number of lines that
// failed, and an error only when reading In fails.
func (r *Repl) Run() (int, error) {
	errw := r.Err
	if errw == nil {
		errw = r.Out
	}
	var opts []Option
	if r.Lenient {
		opts = append(opts, WithLenient())
	}

	failed := 0
	rd := bufio.NewReader(r.In)
	for {
		if r.Prompt != "" {
			fmt.Fprint(r.Out, r.Prompt)
		}
		line, err := rd.ReadString('\n')
		if err != nil && err != io.EOF {
			return failed, err
		}
		if line == "" && err == io.EOF {
			break
		}
		if !r.evalLine(strings.TrimRight(line, "\r\n"), opts, errw) {
			failed++
		}
		if err == io.EOF {
			break
		}
	}
	if r.Prompt != "" {
		fmt.Fprintln(r.Out)
	}
	return failed, nil
}

// evalLine prints the result of one line and reports whether it succeeded.
// Blank lines succeed without output.
func (r *Repl) evalLine(line string, opts []Option, errw io.Writer) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}
	ret, err := r.eval(line, opts)
	if err != nil {
		fmt.Fprintf(errw, "error: %v\n", err)
		return false
	}
	fmt.Fprintln(r.Out, ret)
	return true
}

func (r *Repl) eval(line string, opts []Option) (Value, error) {
	if !r.Tree && !r.Dump {
		return Evaluate(line, opts...)
	}
	node, err := Parse(line, opts...)
	if err != nil {
		return Value{}, err
	}
	if r.Tree {
		fmt.Fprintln(r.Out, node)
	}
	if r.Dump {
		dumper.Fdump(r.Out, node)
	}
	return Eval(node)
}

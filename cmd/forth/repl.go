package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/peterh/liner"

	forth "github.com/jcorbin/goforth"
)

const prompt = "> "

// prompter is the part of *liner.State used by repl.
type prompter interface {
	Prompt(p string) (string, error)
	AppendHistory(item string)
	SetCtrlCAborts(aborts bool)
	Close() error
}

// repl evaluates one line at a time on a single interpreter, printing the
// stack after each; errors are reported, but do not end the session.
func (d *driver) repl(ctx context.Context, line prompter) error {
	defer line.Close()
	line.SetCtrlCAborts(true)

	f := forth.New(d.options("repl")...)
	for {
		input, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if input != "" {
			line.AppendHistory(input)
		}

		if err := d.replEval(ctx, f, input); err != nil {
			d.log.Printf("ERROR", "%v", err)
		}
		if f.FormatStack() == "" {
			fmt.Fprintln(d.out, "ok")
		} else {
			fmt.Fprintf(d.out, "%v ok\n", f)
		}
		if err := d.out.Flush(); err != nil {
			return err
		}
	}
}

func (d *driver) replEval(ctx context.Context, f *forth.Interpreter, input string) error {
	ctx, cancel := d.evalContext(ctx)
	defer cancel()
	return f.EvalContext(ctx, input)
}

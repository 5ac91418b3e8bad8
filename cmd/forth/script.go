package main

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	forth "github.com/jcorbin/goforth"
	"github.com/jcorbin/goforth/internal/fileinput"
	"github.com/jcorbin/goforth/internal/panicerr"
)

type scriptResult struct {
	name string
	f    *forth.Interpreter
	err  error
}

// runScripts evaluates every input on its own interpreter, at most d.jobs at
// a time, then reports their results in order.
func (d *driver) runScripts(ctx context.Context, inputs ...io.Reader) error {
	results := make([]scriptResult, len(inputs))

	var eg errgroup.Group
	if d.jobs > 0 {
		eg.SetLimit(d.jobs)
	}
	for i, r := range inputs {
		i, r := i, r
		res := &results[i]
		res.name = nameOf(r)
		eg.Go(func() error {
			if err := panicerr.Recover(res.name, func() error {
				res.f, res.err = d.runScript(ctx, res.name, r)
				return nil
			}); err != nil {
				res.err = err
			}
			return ctx.Err()
		})
	}
	err := eg.Wait()

	for _, res := range results {
		d.report(res, len(results) > 1)
	}
	return err
}

func (d *driver) runScript(ctx context.Context, name string, r io.Reader) (*forth.Interpreter, error) {
	if cl, ok := r.(io.Closer); ok {
		defer cl.Close()
	}

	ctx, cancel := d.evalContext(ctx)
	defer cancel()

	in := fileinput.Input{Queue: []io.Reader{r}}
	f := forth.New(d.options(name)...)
	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			return f, nil
		} else if err != nil {
			return f, err
		}
		if err := f.EvalContext(ctx, line.Text); err != nil {
			return f, fmt.Errorf("%v: %w", line.Location, err)
		}
	}
}

func (d *driver) options(name string) []forth.Option {
	var opts []forth.Option
	if d.trace {
		tracef := d.log.Leveledf("TRACE")
		opts = append(opts, forth.WithLogf(func(mess string, args ...interface{}) {
			tracef("%v: "+mess, append([]interface{}{name}, args...)...)
		}))
	}
	return opts
}

func (d *driver) report(res scriptResult, named bool) {
	if res.f != nil {
		if named {
			fmt.Fprintf(d.out, "%v: %v\n", res.name, res.f)
		} else {
			fmt.Fprintf(d.out, "%v\n", res.f)
		}
		if d.dump {
			d.log.ErrorIf(res.f.Dump(d.out))
		}
	}
	if res.err != nil {
		d.log.Errorf("%+v", res.err)
	}
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// Command forth evaluates forth scripts, or runs an interactive session.
//
// Each script given on the command line is evaluated line by line on its own
// interpreter, printing its final stack; with no arguments, standard input is
// evaluated instead, interactively if it is a terminal.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"github.com/peterh/liner"

	"github.com/jcorbin/goforth/internal/flushio"
	"github.com/jcorbin/goforth/internal/logio"
	"github.com/jcorbin/goforth/internal/runeio"
)

func main() {
	os.Exit(run())
}

func run() int {
	var log logio.Logger
	log.SetOutput(os.Stderr)

	var d driver
	var transcript string
	flag.DurationVar(&d.timeout, "timeout", 0, "specify a time limit for each script or line")
	flag.BoolVar(&d.trace, "trace", false, "enable trace logging")
	flag.BoolVar(&d.dump, "dump", false, "dump each interpreter after its final stack")
	flag.IntVar(&d.jobs, "j", 0, "limit how many scripts are evaluated at once")
	flag.StringVar(&transcript, "transcript", "", "also write output to the named file")
	flag.Parse()

	d.log = &log
	d.out = flushio.NewWriteFlusher(os.Stdout)
	if transcript != "" {
		f, err := os.Create(transcript)
		if err != nil {
			log.Errorf("%v", err)
			return log.ExitCode()
		}
		defer f.Close()
		d.out = flushio.WriteFlushers(d.out, flushio.NewWriteFlusher(f))
	}

	ctx := context.Background()
	switch {
	case flag.NArg() > 0:
		log.ErrorIf(d.runFiles(ctx, flag.Args()...))
	case isTerminal(os.Stdin):
		log.ErrorIf(d.repl(ctx, liner.NewLiner()))
	default:
		log.ErrorIf(d.runScripts(ctx, runeio.NamedReader("<stdin>", os.Stdin)))
	}
	log.ErrorIf(d.out.Flush())
	return log.ExitCode()
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0 && liner.TerminalSupported()
}

type driver struct {
	log *logio.Logger
	out flushio.WriteFlusher

	timeout time.Duration
	trace   bool
	dump    bool
	jobs    int
}

func (d *driver) evalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout != 0 {
		return context.WithTimeout(ctx, d.timeout)
	}
	return context.WithCancel(ctx)
}

func (d *driver) runFiles(ctx context.Context, names ...string) error {
	inputs := make([]io.Reader, 0, len(names))
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			d.log.Errorf("%v", err)
			continue
		}
		inputs = append(inputs, f)
	}
	return d.runScripts(ctx, inputs...)
}

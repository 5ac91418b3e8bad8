package forth

import (
	"bufio"
	"io"
)

// Dump writes a human readable listing of the stack and every custom word.
func (f *Interpreter) Dump(w io.Writer) error {
	dump := dumper{f: f, out: bufio.NewWriter(w)}
	dump.dump()
	return dump.out.Flush()
}

type dumper struct {
	f   *Interpreter
	out *bufio.Writer
}

func (dump dumper) dump() {
	dump.out.WriteString("# Forth Dump\n")
	dump.out.WriteString("  stack: ")
	dump.out.WriteString(dump.f.FormatStack())
	dump.out.WriteByte('\n')
	if pending := dump.f.queued(); len(pending) > 0 {
		dump.out.WriteString("  pending:")
		dump.writeTokens(pending)
		dump.out.WriteByte('\n')
	}
	dump.dumpWords()
}

func (dump dumper) dumpWords() {
	names := dump.f.Words()
	if len(names) == 0 {
		return
	}
	dump.out.WriteString("# Dictionary\n")
	for _, name := range names {
		dump.out.WriteString("  : ")
		dump.out.WriteString(name)
		dump.writeTokens(dump.f.words[name])
		dump.out.WriteString(" ;\n")
	}
}

func (dump dumper) writeTokens(tokens []string) {
	for _, token := range tokens {
		dump.out.WriteByte(' ')
		dump.out.WriteString(token)
	}
}

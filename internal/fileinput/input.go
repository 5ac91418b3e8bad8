// Package fileinput reads lines from a sequence of named input streams,
// tracking where each line came from.
package fileinput

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/goforth/internal/runeio"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Line is a line of text, without its line feed, along with its Location.
type Line struct {
	Location
	Text string
}

func (il Line) String() string { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading through a Queue of one or more
// input streams. Any stream that implements io.Closer is closed once it has
// been read.
type Input struct {
	src   io.Reader
	rr    runeio.Reader
	Queue []io.Reader
	Last  Line

	loc Location
	sb  strings.Builder
}

// ReadLine reads the next line, moving on to the next queued stream at the
// end of each one; the final line of a stream need not end with a line
// feed. Returns io.EOF once every stream is exhausted.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return Line{}, io.EOF
		}
		r, _, err := in.rr.ReadRune()
		if err == nil {
			if r == '\n' {
				return in.nextLine(), nil
			}
			in.sb.WriteRune(r)
			continue
		}

		partial := in.sb.Len() > 0
		var line Line
		if partial {
			line = in.nextLine()
		}
		in.closeIn()
		if err != io.EOF {
			return line, fmt.Errorf("%v: %w", in.loc, err)
		}
		if partial {
			return line, nil
		}
	}
}

func (in *Input) nextLine() Line {
	in.loc.Line++
	in.Last = Line{in.loc, in.sb.String()}
	in.sb.Reset()
	return in.Last
}

func (in *Input) closeIn() {
	if cl, ok := in.src.(io.Closer); ok {
		cl.Close()
	}
	in.src, in.rr = nil, nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.src, in.rr = r, runeio.NewReader(r)
	in.loc = Location{Name: nameOf(r)}
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

package forth

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/alecthomas/repr"
)

// Interpreter evaluates a small FORTH-like language over a stack of ints.
// Both the stack and the dictionary of custom words persist across calls to
// Eval.
type Interpreter struct {
	logging

	// The stack is a standard LIFO of ints; its top is the end of the slice.
	stack []int

	// Pending tokens, not yet resolved to instructions, in reverse order: the
	// next token is at the end.
	pending []string

	// The dictionary maps lower case names to the raw tokens captured by a
	// definition. Bodies are only resolved when they are dispatched, so a
	// word may refer to words defined after it.
	words map[string][]string
}

// New creates an interpreter with an empty stack and dictionary.
func New(opts ...Option) *Interpreter {
	var f Interpreter
	f.words = make(map[string][]string)
	Options(opts...).apply(&f)
	return &f
}

// Eval tokenizes and evaluates input, returning the first error encountered.
// Any tokens after an error are discarded; stack changes made before it remain.
func (f *Interpreter) Eval(input string) error {
	return f.EvalContext(context.Background(), input)
}

// EvalContext is like Eval, but also stops with ctx.Err() once ctx is done.
func (f *Interpreter) EvalContext(ctx context.Context, input string) error {
	f.logf(">", "eval %q", input)
	f.pending = f.pending[:0]
	f.enqueue(tokenize(input))
	if err := f.run(ctx); err != nil {
		if f.logfn != nil {
			f.logf("#", "halt error: %v pending: %s", err, repr.String(f.queued()))
		}
		f.pending = f.pending[:0]
		return err
	}
	return nil
}

func (f *Interpreter) run(ctx context.Context) error {
	for {
		token, ok := f.next()
		if !ok {
			return nil
		}
		in, err := f.compile(token)
		if err != nil {
			return err
		}
		if f.logfn != nil {
			f.logf("exec", "%v -- s:%v", in, f.stack)
		}
		if err := f.exec(in); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// define reads a definition, having just consumed its ":" token: a name, then
// body tokens up to a ";" token.
func (f *Interpreter) define() error {
	name, ok := f.nextNonEmpty()
	if !ok {
		return wordError{":", "missing name after", ErrInvalidWord}
	}
	if kind, _ := classify(name); kind != tokenWord {
		return wordError{name, "cannot define " + kind.String(), ErrInvalidWord}
	}

	var body []string
	for {
		token, ok := f.nextNonEmpty()
		if !ok {
			return wordError{name, "unterminated definition of", ErrInvalidWord}
		}
		if kind, _ := classify(token); kind == tokenEnd {
			break
		}
		body = append(body, token)
	}

	name = foldName(name)
	if f.logfn != nil {
		f.logf("def", "%v %s", name, repr.String(body))
	}
	f.words[name] = body
	return nil
}

//// pending token queue

// next pops the front token.
func (f *Interpreter) next() (string, bool) {
	i := len(f.pending) - 1
	if i < 0 {
		return "", false
	}
	token := f.pending[i]
	f.pending = f.pending[:i]
	return token, true
}

func (f *Interpreter) nextNonEmpty() (string, bool) {
	for {
		token, ok := f.next()
		if !ok || token != "" {
			return token, ok
		}
	}
}

// expand pushes tokens onto the front of the queue, preserving their order.
func (f *Interpreter) expand(tokens []string) {
	for i := len(tokens) - 1; i >= 0; i-- {
		f.pending = append(f.pending, tokens[i])
	}
}

// enqueue pushes tokens onto the back of the queue.
func (f *Interpreter) enqueue(tokens []string) {
	if len(tokens) == 0 {
		return
	}
	pending := make([]string, 0, len(tokens)+len(f.pending))
	for i := len(tokens) - 1; i >= 0; i-- {
		pending = append(pending, tokens[i])
	}
	f.pending = append(pending, f.pending...)
}

// queued returns pending tokens in queue order.
func (f *Interpreter) queued() []string {
	tokens := make([]string, len(f.pending))
	for i, token := range f.pending {
		tokens[len(tokens)-1-i] = token
	}
	return tokens
}

//// stack

func (f *Interpreter) push(val int) {
	f.stack = append(f.stack, val)
}

func (f *Interpreter) pop() (int, bool) {
	i := len(f.stack) - 1
	if i < 0 {
		return 0, false
	}
	val := f.stack[i]
	f.stack = f.stack[:i]
	return val, true
}

// Stack returns a copy of the stack, bottom first.
func (f *Interpreter) Stack() []int {
	stack := make([]int, len(f.stack))
	copy(stack, f.stack)
	return stack
}

// FormatStack renders the stack bottom to top as space separated base 10
// integers; an empty stack renders as "".
func (f *Interpreter) FormatStack() string {
	var sb strings.Builder
	for i, val := range f.stack {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(val))
	}
	return sb.String()
}

func (f *Interpreter) String() string { return f.FormatStack() }

//// dictionary

// Lookup returns a copy of the body captured by the named custom word.
func (f *Interpreter) Lookup(name string) ([]string, bool) {
	body, defined := f.words[foldName(name)]
	if !defined {
		return nil, false
	}
	return append([]string{}, body...), true
}

// Words returns the names of all custom words in sorted order.
func (f *Interpreter) Words() []string {
	names := make([]string, 0, len(f.words))
	for name := range f.words {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

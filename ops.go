package forth

import "strconv"

type opCode uint8

const (
	opNop opCode = iota
	opPush
	opDefine
	opCall
	opAdd
	opSub
	opMul
	opDiv
	opDup
	opDrop
	opSwap
	opOver
	opMax
)

var opCodeNames = [opMax]string{
	opNop:    "nop",
	opPush:   "push",
	opDefine: ":",
	opCall:   "call",
	opAdd:    "+",
	opSub:    "-",
	opMul:    "*",
	opDiv:    "/",
	opDup:    "dup",
	opDrop:   "drop",
	opSwap:   "swap",
	opOver:   "over",
}

// builtins maps the lower case name of every builtin word to its code.
var builtins = make(map[string]opCode, opMax-opAdd)

func init() {
	for code := opAdd; code < opMax; code++ {
		builtins[opCodeNames[code]] = code
	}
}

func (code opCode) String() string {
	if code < opMax {
		return opCodeNames[code]
	}
	return "op" + strconv.Itoa(int(code))
}

// instruction is a token resolved against the dictionary and builtins at the
// moment it is dispatched.
type instruction struct {
	code opCode
	n    int    // opPush value
	name string // opCall word
}

func (in instruction) String() string {
	switch in.code {
	case opPush:
		return "push(" + strconv.Itoa(in.n) + ")"
	case opCall:
		return "call(" + in.name + ")"
	default:
		return in.code.String()
	}
}

func (f *Interpreter) compile(token string) (instruction, error) {
	kind, n := classify(token)
	switch kind {
	case tokenEmpty:
		return instruction{code: opNop}, nil
	case tokenNumber:
		return instruction{code: opPush, n: n}, nil
	case tokenBegin:
		return instruction{code: opDefine}, nil
	case tokenEnd:
		return instruction{}, wordError{token, "no definition to end with", ErrInvalidWord}
	}

	name := foldName(token)
	if _, defined := f.words[name]; defined {
		return instruction{code: opCall, name: name}, nil
	}
	if code, isBuiltin := builtins[name]; isBuiltin {
		return instruction{code: code}, nil
	}
	return instruction{}, wordError{token, "", ErrUnknownWord}
}

func (f *Interpreter) exec(in instruction) error {
	switch in.code {
	case opNop:
		return nil
	case opPush:
		f.push(in.n)
		return nil
	case opDefine:
		return f.define()
	case opCall:
		f.expand(f.words[in.name])
		return nil
	case opAdd:
		return f.binary(in.code, func(a, b int) (int, error) { return a + b, nil })
	case opSub:
		return f.binary(in.code, func(a, b int) (int, error) { return a - b, nil })
	case opMul:
		return f.binary(in.code, func(a, b int) (int, error) { return a * b, nil })
	case opDiv:
		return f.binary(in.code, func(a, b int) (int, error) {
			if b == 0 {
				return 0, wordError{opDiv.String(), "", ErrDivisionByZero}
			}
			return a / b, nil
		})
	case opDup:
		return f.dup()
	case opDrop:
		return f.drop()
	case opSwap:
		return f.swap()
	case opOver:
		return f.over()
	}
	return wordError{in.String(), "cannot execute", ErrInvalidWord}
}

// binary pops b then a, and pushes op(a, b). Both operands are consumed even
// when op fails, or when only one was available.
func (f *Interpreter) binary(code opCode, op func(a, b int) (int, error)) error {
	b, bok := f.pop()
	a, aok := f.pop()
	if !aok || !bok {
		return underflow(code.String(), boolInt(aok)+boolInt(bok), 2)
	}
	c, err := op(a, b)
	if err != nil {
		return err
	}
	f.push(c)
	return nil
}

func (f *Interpreter) dup() error {
	if len(f.stack) < 1 {
		return underflow(opDup.String(), len(f.stack), 1)
	}
	f.push(f.stack[len(f.stack)-1])
	return nil
}

func (f *Interpreter) drop() error {
	if _, ok := f.pop(); !ok {
		return underflow(opDrop.String(), 0, 1)
	}
	return nil
}

func (f *Interpreter) swap() error {
	i := len(f.stack) - 1
	if i < 1 {
		return underflow(opSwap.String(), len(f.stack), 2)
	}
	f.stack[i-1], f.stack[i] = f.stack[i], f.stack[i-1]
	return nil
}

func (f *Interpreter) over() error {
	i := len(f.stack) - 2
	if i < 0 {
		return underflow(opOver.String(), len(f.stack), 2)
	}
	f.push(f.stack[i])
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

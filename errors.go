package forth

import (
	"errors"
	"fmt"
)

// Errors returned by Eval; the returned error wraps one of these, test with
// errors.Is.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrUnknownWord    = errors.New("unknown word")
	ErrInvalidWord    = errors.New("invalid word")
)

type wordError struct {
	word string
	why  string
	err  error
}

func (we wordError) Error() string {
	if we.why != "" {
		return fmt.Sprintf("%v: %v %q", we.err, we.why, we.word)
	}
	return fmt.Sprintf("%v %q", we.err, we.word)
}

func (we wordError) Unwrap() error { return we.err }

func underflow(word string, have, need int) error {
	return wordError{word, fmt.Sprintf("have %v of %v operands for", have, need), ErrStackUnderflow}
}

/*
Package forth implements a tiny FORTH-like language: whitespace separated
words operate on a stack of integers.

Numbers push themselves. The builtin words are:

	+ - * /   pop b then a, push a OP b; / truncates and fails on zero
	dup       push a copy of the top value
	drop      discard the top value
	swap      exchange the top two values
	over      push a copy of the second value

New words are defined with a colon definition:

	: square dup * ;

A definition captures its body tokens verbatim; they are looked up only when
the word is used, so a word may be used in a definition before it is itself
defined, and redefining a word changes the meaning of any word that uses it.
Custom words shadow builtins. Word names are case insensitive.

Evaluation stops at the first error, which wraps one of ErrDivisionByZero,
ErrStackUnderflow, ErrUnknownWord or ErrInvalidWord. The stack is not rolled
back, and both the stack and the dictionary carry over to the next Eval.
*/
package forth
